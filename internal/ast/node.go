// Package ast defines the abstract syntax tree for Zinc programs.
//
// The tree is a strict exclusive-ownership tree: every node owns its
// children and no node is referenced from two parents. Nodes carry a
// source position for diagnostics.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── IntLit, FloatLit, StringLit, CharLit, BoolLit, NullLit
//	│   ├── Ident, IndexExpr, MemberExpr
//	│   ├── BinaryExpr, UnaryExpr, TernaryExpr
//	│   └── CallExpr, CastExpr, SizeofExpr, InitList
//	├── Stmt (interface) - statements that perform actions
//	│   ├── ExprStmt, BlockStmt, VarDecl
//	│   ├── IfStmt, WhileStmt, DoWhileStmt, ForStmt, SwitchStmt
//	│   ├── BreakStmt, ContinueStmt, GotoStmt, LabelStmt
//	│   └── ReturnStmt, CaseStmt, DefaultStmt, AsmStmt
//	└── Decl (interface) - top-level declarations
//	    ├── FuncDecl, ImportDecl
//	    └── StructDecl, EnumDecl, TypedefDecl
package ast

import "github.com/zinclang/zinc/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first token belonging to this node.
	Pos() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// Decl is the interface for top-level declarations.
type Decl interface {
	Node
	declNode() // marker method to prevent external implementations
}

// BaseExpr provides the position field for expression nodes.
type BaseExpr struct {
	NodePos token.Position
}

func (b *BaseExpr) Pos() token.Position { return b.NodePos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides the position field for statement nodes.
type BaseStmt struct {
	NodePos token.Position
}

func (b *BaseStmt) Pos() token.Position { return b.NodePos }
func (b *BaseStmt) stmtNode()           {}

// BaseDecl provides the position field for declaration nodes.
type BaseDecl struct {
	NodePos token.Position
}

func (b *BaseDecl) Pos() token.Position { return b.NodePos }
func (b *BaseDecl) declNode()           {}

// At constructs a BaseExpr at the given position.
func At(pos token.Position) BaseExpr { return BaseExpr{NodePos: pos} }

// StmtAt constructs a BaseStmt at the given position.
func StmtAt(pos token.Position) BaseStmt { return BaseStmt{NodePos: pos} }

// DeclAt constructs a BaseDecl at the given position.
func DeclAt(pos token.Position) BaseDecl { return BaseDecl{NodePos: pos} }

// Unit is the parse result for one source file: the filename and the
// ordered top-level declarations. It is handed from the parser to the
// code generator and has no behavior of its own.
type Unit struct {
	Filename string
	Decls    []Decl
}
