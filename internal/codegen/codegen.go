// Package codegen lowers a parsed Zinc translation unit to C source text.
//
// The emitted C targets C11 plus GNU statement expressions, which the trap
// macros need to return the checked value with its original type. Null
// dereference and division by zero are caught at runtime by ZN_NULLCHECK
// and ZN_DIVCHECK, each carrying the originating source location.
package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/token"
	"github.com/zinclang/zinc/internal/types"
)

// preamble is emitted at the top of every generated file. zn_trap reports
// the failed check and aborts; the check macros evaluate their operand
// exactly once. Only declaration-free headers are included so that
// imported functions never collide with libc prototypes (a program may
// import printf with a void* parameter, which stdio.h would reject).
const preamble = `#include <stdint.h>
#include <stdbool.h>
#include <stddef.h>

extern long write(int, const void *, unsigned long);
extern void exit(int);

static void zn_puts(const char *s) {
	unsigned long n = 0;
	while (s[n] != 0) n++;
	(void)write(2, s, n);
}

static void zn_trap(const char *kind, const char *file, int line) {
	char num[16];
	int i = 15;
	num[i] = 0;
	do {
		num[--i] = (char)('0' + line % 10);
		line /= 10;
	} while (line > 0 && i > 0);
	zn_puts("runtime error: ");
	zn_puts(kind);
	zn_puts(" at ");
	zn_puts(file);
	zn_puts(":");
	zn_puts(num + i);
	zn_puts("\n");
	exit(1);
}

#define ZN_NULLCHECK(p, file, line) \
	({ __typeof__(p) zn_chk = (p); \
	   if (zn_chk == 0) zn_trap("null pointer dereference", file, line); \
	   zn_chk; })

#define ZN_DIVCHECK(d, file, line) \
	({ __typeof__(d) zn_chk = (d); \
	   if (zn_chk == 0) zn_trap("division by zero", file, line); \
	   zn_chk; })

`

// Generator emits C text for one translation unit. The first write error
// is latched; subsequent writes are no-ops and Emit returns it.
type Generator struct {
	w        io.Writer
	indent   int
	err      error
	filename string // quoted into trap call sites
}

// New returns a Generator writing to w.
func New(w io.Writer) *Generator {
	return &Generator{w: w}
}

// String generates C source for the unit into a string.
func String(unit *ast.Unit) (string, error) {
	var sb strings.Builder
	if err := New(&sb).Emit(unit); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Emit writes the complete C translation of unit.
func (g *Generator) Emit(unit *ast.Unit) error {
	g.filename = unit.Filename
	g.print(preamble)
	for i, decl := range unit.Decls {
		if i > 0 {
			g.print("\n")
		}
		g.emitDecl(decl)
	}
	return g.err
}

func (g *Generator) print(s string) {
	if g.err != nil {
		return
	}
	_, g.err = io.WriteString(g.w, s)
}

func (g *Generator) printf(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}

// printIndent starts a line at the current indentation level.
func (g *Generator) printIndent() {
	for i := 0; i < g.indent; i++ {
		g.print("\t")
	}
}

// loc renders the trailing file/line arguments of a trap macro call.
func (g *Generator) loc(pos token.Position) string {
	return ", " + strconv.Quote(g.filename) + ", " + strconv.Itoa(pos.Line)
}

// -----------------------------------------------------------------------------
// Types
// -----------------------------------------------------------------------------

var primCNames = map[types.Kind]string{
	types.Void: "void",
	types.Bool: "bool",
	types.I8:   "int8_t",
	types.I16:  "int16_t",
	types.I32:  "int32_t",
	types.I64:  "int64_t",
	types.U8:   "uint8_t",
	types.U16:  "uint16_t",
	types.U32:  "uint32_t",
	types.U64:  "uint64_t",
	types.F32:  "float",
	types.F64:  "double",
}

// cDecl renders a C declarator for the given type and declared name.
// An empty name yields a bare type, as needed for casts and sizeof.
// Unsized arrays lower to pointers; Zinc function types lower to
// function pointers.
func cDecl(t *types.Type, name string) string {
	return cDeclarator(t, name)
}

func cDeclarator(t *types.Type, inner string) string {
	switch t.Kind {
	case types.Pointer:
		star := "*"
		if t.Const {
			star = "*const "
		}
		inner = star + inner
		if t.Elem.Kind == types.Array || t.Elem.Kind == types.Func {
			inner = "(" + inner + ")"
		}
		return cDeclarator(t.Elem, inner)

	case types.Array:
		if t.Size == types.SliceSize {
			return cDeclarator(types.PointerTo(t.Elem), inner)
		}
		inner += "[" + strconv.Itoa(t.Size) + "]"
		return cDeclarator(t.Elem, inner)

	case types.Func:
		var params strings.Builder
		if len(t.Params) == 0 {
			params.WriteString("void")
		}
		for i, p := range t.Params {
			if i > 0 {
				params.WriteString(", ")
			}
			params.WriteString(cDecl(p, ""))
		}
		star := "*"
		if t.Const {
			star = "*const "
		}
		inner = "(" + star + inner + ")(" + params.String() + ")"
		return cDeclarator(t.Return, inner)

	default:
		var base string
		switch t.Kind {
		case types.Named:
			base = t.Name
		case types.RawPtr:
			base = "void *"
		default:
			base = primCNames[t.Kind]
		}
		if t.Const {
			base = "const " + base
		}
		if inner == "" {
			return base
		}
		if strings.HasSuffix(base, "*") {
			return base + inner
		}
		return base + " " + inner
	}
}

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

func (g *Generator) emitDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.ImportDecl:
		g.print("extern ")
		g.emitFuncSig(d.Name, d.Params, d.Return, d.Variadic)
		g.print(";\n")

	case *ast.FuncDecl:
		g.emitFuncDecl(d)

	case *ast.StructDecl:
		g.emitStructDecl(d)

	case *ast.EnumDecl:
		g.emitEnumDecl(d)

	case *ast.TypedefDecl:
		g.printf("typedef %s;\n", cDecl(d.Type, d.Name))
	}
}

// emitFuncSig writes "ret name(params)" without qualifiers or terminator.
func (g *Generator) emitFuncSig(name string, params []ast.Param, ret *types.Type, variadic bool) {
	g.print(cDecl(ret, ""))
	g.print(" ")
	g.print(name)
	g.print("(")
	if len(params) == 0 && !variadic {
		g.print("void")
	}
	for i, p := range params {
		if i > 0 {
			g.print(", ")
		}
		g.print(cDecl(p.Type, p.Name))
	}
	if variadic {
		if len(params) > 0 {
			g.print(", ")
		}
		g.print("...")
	}
	g.print(")")
}

func (g *Generator) emitFuncDecl(d *ast.FuncDecl) {
	if d.Extern && d.Body == nil {
		g.print("extern ")
	}
	if d.Export {
		g.print("__attribute__((visibility(\"default\"))) ")
	}
	if d.Inline {
		// Bare C99 inline gives an inline definition with no external
		// symbol, so a non-inlined call fails to link.
		g.print("static inline ")
	}
	g.emitFuncSig(d.Name, d.Params, d.Return, d.Variadic)
	if d.Body == nil {
		g.print(";\n")
		return
	}
	g.print(" ")
	g.emitBlock(d.Body)
	g.print("\n")
}

func (g *Generator) emitStructDecl(d *ast.StructDecl) {
	kw := "struct"
	if d.Union {
		kw = "union"
	}
	// The typedef comes first on its own so fields may refer to the
	// aggregate's own name (self-referential nodes, mutual pairs).
	g.printf("typedef %s %s %s;\n", kw, d.Name, d.Name)
	g.printf("%s %s {\n", kw, d.Name)
	g.indent++
	for _, f := range d.Fields {
		g.printIndent()
		g.printf("%s;\n", cDecl(f.Type, f.Name))
	}
	g.indent--
	g.print("}")

	var attrs []string
	if d.Packed {
		attrs = append(attrs, "packed")
	}
	if d.Align > 0 {
		attrs = append(attrs, "aligned("+strconv.Itoa(d.Align)+")")
	}
	if len(attrs) > 0 {
		g.printf(" __attribute__((%s))", strings.Join(attrs, ", "))
	}
	g.print(";\n")
}

func (g *Generator) emitEnumDecl(d *ast.EnumDecl) {
	g.printf("typedef enum %s {\n", d.Name)
	g.indent++
	for _, m := range d.Members {
		g.printIndent()
		g.print(m.Name)
		if m.HasValue {
			g.printf(" = %d", m.Value)
		}
		g.print(",\n")
	}
	g.indent--
	g.printf("} %s;\n", d.Name)
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// emitBlock writes stmt as a braced block, wrapping a single statement
// in braces when necessary.
func (g *Generator) emitBlock(stmt ast.Stmt) {
	block, ok := stmt.(*ast.BlockStmt)
	if !ok {
		block = &ast.BlockStmt{Stmts: []ast.Stmt{stmt}}
	}
	g.print("{\n")
	g.indent++
	for _, s := range block.Stmts {
		g.emitStmt(s)
	}
	g.indent--
	g.printIndent()
	g.print("}")
}

func (g *Generator) emitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		g.printIndent()
		g.emitBlock(s)
		g.print("\n")

	case *ast.ExprStmt:
		g.printIndent()
		if s.Expr != nil {
			g.emitExpr(s.Expr)
		}
		g.print(";\n")

	case *ast.VarDecl:
		g.printIndent()
		g.emitVarDecl(s)
		g.print(";\n")

	case *ast.IfStmt:
		g.printIndent()
		g.print("if (")
		g.emitExpr(s.Cond)
		g.print(") ")
		g.emitBlock(s.Then)
		if s.Else != nil {
			g.print(" else ")
			if elif, ok := s.Else.(*ast.IfStmt); ok {
				g.emitIfTail(elif)
			} else {
				g.emitBlock(s.Else)
			}
		}
		g.print("\n")

	case *ast.WhileStmt:
		g.printIndent()
		g.print("while (")
		g.emitExpr(s.Cond)
		g.print(") ")
		g.emitBlock(s.Body)
		g.print("\n")

	case *ast.DoWhileStmt:
		g.printIndent()
		g.print("do ")
		g.emitBlock(s.Body)
		g.print(" while (")
		g.emitExpr(s.Cond)
		g.print(");\n")

	case *ast.ForStmt:
		g.printIndent()
		g.print("for (")
		if s.Init != nil {
			g.emitForInit(s.Init)
		}
		g.print("; ")
		if s.Cond != nil {
			g.emitExpr(s.Cond)
		}
		g.print("; ")
		if s.Post != nil {
			g.emitExpr(s.Post)
		}
		g.print(") ")
		g.emitBlock(s.Body)
		g.print("\n")

	case *ast.SwitchStmt:
		g.printIndent()
		g.print("switch (")
		g.emitExpr(s.Cond)
		g.print(") ")
		g.emitBlock(s.Body)
		g.print("\n")

	case *ast.CaseStmt:
		g.printIndent()
		g.print("case ")
		g.emitExpr(s.Value)
		g.print(":\n")

	case *ast.DefaultStmt:
		g.printIndent()
		g.print("default:\n")

	case *ast.BreakStmt:
		g.printIndent()
		g.print("break;\n")

	case *ast.ContinueStmt:
		g.printIndent()
		g.print("continue;\n")

	case *ast.ReturnStmt:
		g.printIndent()
		if s.Value == nil {
			g.print("return;\n")
		} else {
			g.print("return ")
			g.emitExpr(s.Value)
			g.print(";\n")
		}

	case *ast.GotoStmt:
		g.printIndent()
		g.printf("goto %s;\n", s.Label)

	case *ast.LabelStmt:
		// The trailing ';' keeps the label legal before declarations
		// and at the end of a block.
		g.printIndent()
		g.printf("%s:;\n", s.Name)

	case *ast.AsmStmt:
		g.printIndent()
		g.printf("__asm__ volatile (%s);\n", s.Body)
	}
}

// emitIfTail continues an "else if" chain without re-indenting.
func (g *Generator) emitIfTail(s *ast.IfStmt) {
	g.print("if (")
	g.emitExpr(s.Cond)
	g.print(") ")
	g.emitBlock(s.Then)
	if s.Else != nil {
		g.print(" else ")
		if elif, ok := s.Else.(*ast.IfStmt); ok {
			g.emitIfTail(elif)
		} else {
			g.emitBlock(s.Else)
		}
	}
}

// emitVarDecl writes the declaration without indentation or terminator
// so it can also serve as a for-loop init clause.
func (g *Generator) emitVarDecl(s *ast.VarDecl) {
	if s.Static {
		g.print("static ")
	}
	if s.Const {
		g.print("const ")
	}
	g.print(cDecl(s.Type, s.Name))
	if s.Init != nil {
		g.print(" = ")
		g.emitExpr(s.Init)
	}
}

func (g *Generator) emitForInit(init ast.Stmt) {
	switch s := init.(type) {
	case *ast.VarDecl:
		g.emitVarDecl(s)
	case *ast.ExprStmt:
		if s.Expr != nil {
			g.emitExpr(s.Expr)
		}
	}
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

func (g *Generator) emitExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.IntLit:
		g.print(strconv.FormatInt(e.Value, 10))

	case *ast.FloatLit:
		g.print(strconv.FormatFloat(e.Value, 'g', -1, 64))

	case *ast.StringLit:
		g.print(cQuoteString(e.Value))

	case *ast.CharLit:
		g.print(cQuoteChar(e.Value))

	case *ast.BoolLit:
		if e.Value {
			g.print("true")
		} else {
			g.print("false")
		}

	case *ast.NullLit:
		g.print("NULL")

	case *ast.Ident:
		g.print(e.Name)

	case *ast.BinaryExpr:
		g.emitBinary(e)

	case *ast.UnaryExpr:
		g.emitUnary(e)

	case *ast.TernaryExpr:
		g.print("(")
		g.emitExpr(e.Cond)
		g.print(" ? ")
		g.emitExpr(e.Then)
		g.print(" : ")
		g.emitExpr(e.Else)
		g.print(")")

	case *ast.CallExpr:
		g.emitExpr(e.Callee)
		g.print("(")
		for i, arg := range e.Args {
			if i > 0 {
				g.print(", ")
			}
			g.emitExpr(arg)
		}
		g.print(")")

	case *ast.IndexExpr:
		// Adding zero decays arrays to pointers so the null check
		// applies uniformly to pointer and array bases.
		g.print("(ZN_NULLCHECK((")
		g.emitExpr(e.Base)
		g.print(") + 0")
		g.print(g.loc(e.Pos()))
		g.print("))[")
		g.emitExpr(e.Index)
		g.print("]")

	case *ast.MemberExpr:
		if e.Arrow {
			g.print("ZN_NULLCHECK(")
			g.emitExpr(e.Base)
			g.print(g.loc(e.Pos()))
			g.print(")->")
		} else {
			g.emitExpr(e.Base)
			g.print(".")
		}
		g.print(e.Field)

	case *ast.CastExpr:
		g.printf("((%s)(", cDecl(e.Type, ""))
		g.emitExpr(e.Expr)
		g.print("))")

	case *ast.SizeofExpr:
		g.printf("sizeof(%s)", cDecl(e.Type, ""))

	case *ast.InitList:
		g.print("{")
		for i, el := range e.Elems {
			if i > 0 {
				g.print(", ")
			}
			g.emitExpr(el)
		}
		g.print("}")
	}
}

func (g *Generator) emitBinary(e *ast.BinaryExpr) {
	// Assignments are parenthesized like any other binary node: an
	// unparenthesized assignment used as an operand would reassociate,
	// turning (a = b) + c into a = (b + c).
	if e.Op.IsAssignOp() {
		g.print("(")
		g.emitExpr(e.Left)
		g.printf(" %s ", e.Op)
		if e.Op == token.DIV_ASSIGN || e.Op == token.MOD_ASSIGN {
			g.emitDivisor(e.Right, e.Pos())
		} else {
			g.emitExpr(e.Right)
		}
		g.print(")")
		return
	}

	g.print("(")
	g.emitExpr(e.Left)
	g.printf(" %s ", e.Op)
	if e.Op == token.DIV || e.Op == token.MOD {
		g.emitDivisor(e.Right, e.Pos())
	} else {
		g.emitExpr(e.Right)
	}
	g.print(")")
}

func (g *Generator) emitDivisor(e ast.Expr, pos token.Position) {
	g.print("ZN_DIVCHECK(")
	g.emitExpr(e)
	g.print(g.loc(pos))
	g.print(")")
}

func (g *Generator) emitUnary(e *ast.UnaryExpr) {
	if e.Post {
		g.print("(")
		g.emitExpr(e.Expr)
		g.printf("%s)", e.Op)
		return
	}
	if e.Op == token.MUL {
		g.print("(*ZN_NULLCHECK(")
		g.emitExpr(e.Expr)
		g.print(g.loc(e.Pos()))
		g.print("))")
		return
	}
	g.printf("(%s", e.Op)
	g.emitExpr(e.Expr)
	g.print(")")
}

// -----------------------------------------------------------------------------
// Literal quoting
// -----------------------------------------------------------------------------

// cQuoteString renders a string's bytes as a C string literal. Octal
// escapes are used for non-printable bytes since C's \x escape has no
// length limit and would swallow following hex digits.
func cQuoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		sb.WriteString(cEscape(s[i], '"'))
	}
	sb.WriteByte('"')
	return sb.String()
}

// cQuoteChar renders one byte as a C character literal.
func cQuoteChar(b byte) string {
	return "'" + cEscape(b, '\'') + "'"
}

func cEscape(b, quote byte) string {
	switch b {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\\':
		return `\\`
	case quote:
		return `\` + string(quote)
	}
	if b < 0x20 || b >= 0x7f {
		return fmt.Sprintf("\\%03o", b)
	}
	return string(b)
}
