package ast

import "github.com/zinclang/zinc/internal/types"

// Param is one named, typed function parameter.
// Name is empty for unnamed parameters in import signatures.
type Param struct {
	Name string
	Type *types.Type
}

// Field is one named, typed struct or union field.
type Field struct {
	Name string
	Type *types.Type
}

// EnumMember is one enumerator, with an optional explicit value.
type EnumMember struct {
	Name     string
	Value    int64
	HasValue bool
}

// FuncDecl represents a function declaration or definition.
// A nil Body means a forward declaration.
type FuncDecl struct {
	BaseDecl
	Name     string
	Params   []Param
	Return   *types.Type
	Body     *BlockStmt // nil for forward declarations
	Variadic bool
	Extern   bool
	Export   bool // @export
	NoMangle bool // @nomangle
	Inline   bool // @inline
}

// ImportDecl represents a declared-but-not-defined external function
// signature: import fn name(types...) -> type;
type ImportDecl struct {
	BaseDecl
	Name     string
	Params   []Param
	Return   *types.Type
	Variadic bool
}

// StructDecl represents a struct or union declaration.
type StructDecl struct {
	BaseDecl
	Name   string
	Fields []Field
	Union  bool
	Packed bool // @packed
	Align  int  // @align(N); 0 if absent
}

// EnumDecl represents an enum declaration.
type EnumDecl struct {
	BaseDecl
	Name    string
	Members []EnumMember
}

// TypedefDecl represents typedef Type name;
type TypedefDecl struct {
	BaseDecl
	Name string
	Type *types.Type
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Decl = (*FuncDecl)(nil)
	_ Decl = (*ImportDecl)(nil)
	_ Decl = (*StructDecl)(nil)
	_ Decl = (*EnumDecl)(nil)
	_ Decl = (*TypedefDecl)(nil)
)
