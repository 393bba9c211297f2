package ast

import "github.com/zinclang/zinc/internal/types"

// -----------------------------------------------------------------------------
// Basic statements
// -----------------------------------------------------------------------------

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	BaseStmt
	Expr Expr
}

// BlockStmt represents a braced block of statements.
type BlockStmt struct {
	BaseStmt
	Stmts []Stmt
}

// VarDecl represents a local or global variable declaration statement.
// Example: const i32 limit = 100;
type VarDecl struct {
	BaseStmt
	Name   string
	Type   *types.Type
	Init   Expr // nil if absent
	Const  bool
	Static bool
}

// -----------------------------------------------------------------------------
// Control flow
// -----------------------------------------------------------------------------

// IfStmt represents if (cond) stmt [else stmt].
type IfStmt struct {
	BaseStmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else
}

// WhileStmt represents while (cond) stmt.
type WhileStmt struct {
	BaseStmt
	Cond Expr
	Body Stmt
}

// DoWhileStmt represents do stmt while (cond);
type DoWhileStmt struct {
	BaseStmt
	Body Stmt
	Cond Expr
}

// ForStmt represents for (init?; cond?; post?) stmt.
// Init is a full statement (var decl or expression statement);
// Cond and Post are bare expressions.
type ForStmt struct {
	BaseStmt
	Init Stmt // nil if absent
	Cond Expr // nil if absent
	Post Expr // nil if absent
	Body Stmt
}

// SwitchStmt represents switch (cond) stmt. The body block's top-level
// statements are a flat sequence of CaseStmt/DefaultStmt markers
// interleaved with ordinary statements, as in C.
type SwitchStmt struct {
	BaseStmt
	Cond Expr
	Body Stmt
}

// CaseStmt represents a case expr: marker inside a switch body.
type CaseStmt struct {
	BaseStmt
	Value Expr
}

// DefaultStmt represents a default: marker inside a switch body.
type DefaultStmt struct {
	BaseStmt
}

// BreakStmt represents break;
type BreakStmt struct {
	BaseStmt
}

// ContinueStmt represents continue;
type ContinueStmt struct {
	BaseStmt
}

// ReturnStmt represents return [expr];
type ReturnStmt struct {
	BaseStmt
	Value Expr // nil for bare return
}

// GotoStmt represents goto label;
type GotoStmt struct {
	BaseStmt
	Label string
}

// LabelStmt represents a label declaration: name:
type LabelStmt struct {
	BaseStmt
	Name string
}

// AsmStmt represents asm( ... ); with the parenthesized content captured
// as an opaque string, passed through to output untouched.
type AsmStmt struct {
	BaseStmt
	Body string
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*BlockStmt)(nil)
	_ Stmt = (*VarDecl)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
	_ Stmt = (*DoWhileStmt)(nil)
	_ Stmt = (*ForStmt)(nil)
	_ Stmt = (*SwitchStmt)(nil)
	_ Stmt = (*CaseStmt)(nil)
	_ Stmt = (*DefaultStmt)(nil)
	_ Stmt = (*BreakStmt)(nil)
	_ Stmt = (*ContinueStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*GotoStmt)(nil)
	_ Stmt = (*LabelStmt)(nil)
	_ Stmt = (*AsmStmt)(nil)
)
