package ast

import (
	"github.com/zinclang/zinc/internal/token"
	"github.com/zinclang/zinc/internal/types"
)

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// IntLit represents an integer literal.
// Examples: 42, 0x1F, 0b1010, 1_000
type IntLit struct {
	BaseExpr
	Value int64  // Parsed value (underscores stripped, radix applied)
	Raw   string // Original source text
}

// FloatLit represents a floating-point literal.
// Examples: 3.14, 1.5e10f, 2f
type FloatLit struct {
	BaseExpr
	Value float64 // Parsed value
	Raw   string  // Original source text
}

// StringLit represents a string literal. Value is already unescaped.
type StringLit struct {
	BaseExpr
	Value string
}

// CharLit represents a character literal as a single byte.
type CharLit struct {
	BaseExpr
	Value byte
}

// BoolLit represents true or false.
type BoolLit struct {
	BaseExpr
	Value bool
}

// NullLit represents the null pointer literal.
type NullLit struct {
	BaseExpr
}

// -----------------------------------------------------------------------------
// References and operations
// -----------------------------------------------------------------------------

// Ident represents an identifier reference.
type Ident struct {
	BaseExpr
	Name string
}

// BinaryExpr represents a binary operation, including assignments.
// Examples: a + b, x == y, a = b
type BinaryExpr struct {
	BaseExpr
	Op    token.Token
	Left  Expr
	Right Expr
}

// UnaryExpr represents a prefix or postfix unary operation.
// Prefix: -x, !x, ~x, &x, *p, ++i, --i. Postfix: i++, i--.
type UnaryExpr struct {
	BaseExpr
	Op   token.Token
	Expr Expr
	Post bool // true for postfix ++/--
}

// TernaryExpr represents cond ? then : else.
type TernaryExpr struct {
	BaseExpr
	Cond Expr
	Then Expr
	Else Expr
}

// CallExpr represents a function call.
type CallExpr struct {
	BaseExpr
	Callee Expr
	Args   []Expr
}

// IndexExpr represents base[index].
type IndexExpr struct {
	BaseExpr
	Base  Expr
	Index Expr
}

// MemberExpr represents base.field or base->field.
type MemberExpr struct {
	BaseExpr
	Base  Expr
	Field string
	Arrow bool // true for ->, false for .
}

// CastExpr represents cast(Type) expr.
type CastExpr struct {
	BaseExpr
	Type *types.Type
	Expr Expr
}

// SizeofExpr represents sizeof(Type).
type SizeofExpr struct {
	BaseExpr
	Type *types.Type
}

// InitList represents a brace-delimited initializer list: {a, b, c}.
type InitList struct {
	BaseExpr
	Elems []Expr
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*FloatLit)(nil)
	_ Expr = (*StringLit)(nil)
	_ Expr = (*CharLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*NullLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*TernaryExpr)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*IndexExpr)(nil)
	_ Expr = (*MemberExpr)(nil)
	_ Expr = (*CastExpr)(nil)
	_ Expr = (*SizeofExpr)(nil)
	_ Expr = (*InitList)(nil)
)
