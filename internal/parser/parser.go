package parser

import (
	"strconv"
	"strings"

	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/lexer"
	"github.com/zinclang/zinc/internal/token"
	"github.com/zinclang/zinc/internal/types"
)

// Parser is a recursive descent parser for Zinc translation units.
// It pulls tokens from the lexer on demand with one token of lookahead
// (plus the lexer's own Peek for identifier-led statements).
type Parser struct {
	lexer *lexer.Lexer
	tok   lexer.Token // Current token
}

// Parse parses a complete translation unit from source code.
// The first syntax error aborts parsing and is returned as *ParseError.
func Parse(src []byte, filename string) (unit *ast.Unit, err error) {
	p := &Parser{lexer: lexer.New(src, filename)}
	defer func() {
		if err != nil {
			unit = nil
		}
	}()
	defer p.recoverBailout(&err)
	p.next()

	unit = &ast.Unit{Filename: filename}
	for p.tok.Type != token.EOF {
		unit.Decls = append(unit.Decls, p.parseDecl())
	}
	return unit, nil
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (expr ast.Expr, err error) {
	p := &Parser{lexer: lexer.NewFromString(src, "")}
	defer p.recoverBailout(&err)
	p.next()
	expr = p.parseExpr()
	return expr, nil
}

// ParseStmt parses a single statement (useful for testing).
func ParseStmt(src string) (stmt ast.Stmt, err error) {
	p := &Parser{lexer: lexer.NewFromString(src, "")}
	defer p.recoverBailout(&err)
	p.next()
	stmt = p.parseStmt()
	return stmt, nil
}

// ParseType parses a single type (useful for testing).
func ParseType(src string) (typ *types.Type, err error) {
	p := &Parser{lexer: lexer.NewFromString(src, "")}
	defer p.recoverBailout(&err)
	p.next()
	typ = p.parseType()
	return typ, nil
}

func (p *Parser) recoverBailout(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token.
func (p *Parser) next() {
	p.tok = p.lexer.Next()
}

// expect checks that the current token is t, returns it, and advances.
func (p *Parser) expect(t token.Token) lexer.Token {
	if p.tok.Type != t {
		p.failf("expected %s, got %s", t, p.tokenDesc())
	}
	tok := p.tok
	p.next()
	return tok
}

// expectIdent expects an IDENT token and returns its name and position.
func (p *Parser) expectIdent() (string, token.Position) {
	tok := p.expect(token.IDENT)
	return tok.Value, tok.Pos
}

// accept consumes the current token if it matches t.
func (p *Parser) accept(t token.Token) bool {
	if p.tok.Type == t {
		p.next()
		return true
	}
	return false
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	switch p.tok.Type {
	case token.IDENT:
		return "identifier " + strconv.Quote(p.tok.Value)
	case token.INT, token.FLOAT:
		return strconv.Quote(p.tok.Value)
	case token.STRING:
		return "string literal"
	case token.CHAR:
		return "char literal"
	case token.ILLEGAL:
		// The ILLEGAL token's value carries the scanner's own message
		// (unterminated literal) or the unrecognized character.
		if len(p.tok.Value) == 1 {
			return "unexpected character " + strconv.Quote(p.tok.Value)
		}
		return p.tok.Value
	default:
		return strconv.Quote(p.tok.Type.String())
	}
}

// failf raises the fatal diagnostic at the current token.
func (p *Parser) failf(format string, args ...any) {
	p.failAt(p.tok.Pos, format, args...)
}

// failAt raises the fatal diagnostic at an explicit position.
func (p *Parser) failAt(pos token.Position, format string, args ...any) {
	panic(bailout{err: errorf(pos, p.lexer.Line(pos.Line), format, args...)})
}

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// attribute is one parsed @name or @name(value) marker.
type attribute struct {
	Name     string
	Value    string
	HasValue bool
	Pos      token.Position
}

// parseAttributes parses zero or more leading @name / @name(value)
// attributes. Which ones take effect depends on the declaration kind;
// unrecognized attributes are accepted and dropped.
func (p *Parser) parseAttributes() []attribute {
	var attrs []attribute
	for p.tok.Type == token.AT {
		pos := p.tok.Pos
		p.next()
		if p.tok.Type != token.IDENT && !p.tok.Type.IsKeyword() {
			p.failf("expected attribute name, got %s", p.tokenDesc())
		}
		a := attribute{Name: p.tok.Value, Pos: pos}
		p.next()
		if p.accept(token.LPAREN) {
			switch p.tok.Type {
			case token.INT, token.IDENT, token.STRING:
				a.Value = p.tok.Value
				a.HasValue = true
				p.next()
			default:
				p.failf("expected attribute value, got %s", p.tokenDesc())
			}
			p.expect(token.RPAREN)
		}
		attrs = append(attrs, a)
	}
	return attrs
}

// parseDecl parses one top-level declaration, dispatching on the
// leading keyword.
func (p *Parser) parseDecl() ast.Decl {
	attrs := p.parseAttributes()

	switch p.tok.Type {
	case token.KW_IMPORT:
		return p.parseImport()
	case token.KW_FN:
		return p.parseFunc(false, attrs)
	case token.KW_EXTERN:
		p.next()
		if p.tok.Type != token.KW_FN {
			p.failf("expected 'fn' after 'extern', got %s", p.tokenDesc())
		}
		return p.parseFunc(true, attrs)
	case token.KW_STRUCT:
		return p.parseStruct(false, attrs)
	case token.KW_UNION:
		return p.parseStruct(true, attrs)
	case token.KW_ENUM:
		return p.parseEnum()
	case token.KW_TYPEDEF:
		return p.parseTypedef()
	default:
		p.failf("expected declaration, got %s", p.tokenDesc())
		return nil
	}
}

// parseParams parses a parenthesized parameter list. Parameter names are
// optional (import signatures commonly omit them). A trailing "..."
// marks the function variadic.
func (p *Parser) parseParams() ([]ast.Param, bool) {
	p.expect(token.LPAREN)

	var params []ast.Param
	variadic := false
	first := true
	for p.tok.Type != token.RPAREN {
		if !first {
			p.expect(token.COMMA)
		}
		first = false

		if p.tok.Type == token.ELLIPSIS {
			p.next()
			variadic = true
			break
		}

		param := ast.Param{Type: p.parseType()}
		if p.tok.Type == token.IDENT {
			param.Name = p.tok.Value
			p.next()
		}
		params = append(params, param)
	}
	p.expect(token.RPAREN)
	return params, variadic
}

// parseReturnType parses an optional "-> type" suffix; absent means void.
func (p *Parser) parseReturnType() *types.Type {
	if p.accept(token.ARROW) {
		return p.parseType()
	}
	return types.Prim(types.Void)
}

// parseFunc parses a function definition or forward declaration.
func (p *Parser) parseFunc(extern bool, attrs []attribute) *ast.FuncDecl {
	pos := p.tok.Pos
	p.expect(token.KW_FN)
	name, _ := p.expectIdent()
	params, variadic := p.parseParams()
	ret := p.parseReturnType()

	fn := &ast.FuncDecl{
		BaseDecl: ast.DeclAt(pos),
		Name:     name,
		Params:   params,
		Return:   ret,
		Variadic: variadic,
		Extern:   extern,
	}
	for _, a := range attrs {
		switch a.Name {
		case "export":
			fn.Export = true
		case "nomangle":
			fn.NoMangle = true
		case "inline":
			fn.Inline = true
		}
	}

	if p.tok.Type == token.LBRACE {
		fn.Body = p.parseBlock()
	} else {
		p.expect(token.SEMICOLON)
	}
	return fn
}

// parseImport parses "import fn name(types...) -> type;".
func (p *Parser) parseImport() *ast.ImportDecl {
	pos := p.tok.Pos
	p.expect(token.KW_IMPORT)
	if p.tok.Type != token.KW_FN {
		p.failf("expected 'fn' after 'import', got %s", p.tokenDesc())
	}
	p.next()
	name, _ := p.expectIdent()
	params, variadic := p.parseParams()
	ret := p.parseReturnType()
	p.expect(token.SEMICOLON)

	return &ast.ImportDecl{
		BaseDecl: ast.DeclAt(pos),
		Name:     name,
		Params:   params,
		Return:   ret,
		Variadic: variadic,
	}
}

// parseStruct parses a struct or union declaration with its field list.
func (p *Parser) parseStruct(union bool, attrs []attribute) *ast.StructDecl {
	pos := p.tok.Pos
	p.next() // consume 'struct' or 'union'
	name, _ := p.expectIdent()

	st := &ast.StructDecl{
		BaseDecl: ast.DeclAt(pos),
		Name:     name,
		Union:    union,
	}
	for _, a := range attrs {
		switch a.Name {
		case "packed":
			st.Packed = true
		case "align":
			n, err := strconv.Atoi(a.Value)
			if !a.HasValue || err != nil || n <= 0 {
				p.failAt(a.Pos, "invalid align attribute value")
			}
			st.Align = n
		}
	}

	p.expect(token.LBRACE)
	for p.tok.Type != token.RBRACE {
		typ := p.parseType()
		fieldName, _ := p.expectIdent()
		p.expect(token.SEMICOLON)
		st.Fields = append(st.Fields, ast.Field{Name: fieldName, Type: typ})
	}
	p.expect(token.RBRACE)
	p.accept(token.SEMICOLON)
	return st
}

// parseEnum parses an enum declaration. The member list tolerates both
// comma-separated and bare newline-separated entries.
func (p *Parser) parseEnum() *ast.EnumDecl {
	pos := p.tok.Pos
	p.expect(token.KW_ENUM)
	name, _ := p.expectIdent()

	en := &ast.EnumDecl{BaseDecl: ast.DeclAt(pos), Name: name}

	p.expect(token.LBRACE)
	for p.tok.Type != token.RBRACE {
		memberName, _ := p.expectIdent()
		member := ast.EnumMember{Name: memberName}
		if p.accept(token.ASSIGN) {
			neg := p.accept(token.SUB)
			tok := p.expect(token.INT)
			value := p.parseIntValue(tok.Value, tok.Pos)
			if neg {
				value = -value
			}
			member.Value = value
			member.HasValue = true
		}
		en.Members = append(en.Members, member)
		p.accept(token.COMMA)
	}
	p.expect(token.RBRACE)
	p.accept(token.SEMICOLON)
	return en
}

// parseTypedef parses "typedef Type name;".
func (p *Parser) parseTypedef() *ast.TypedefDecl {
	pos := p.tok.Pos
	p.expect(token.KW_TYPEDEF)
	typ := p.parseType()
	name, _ := p.expectIdent()
	p.expect(token.SEMICOLON)

	return &ast.TypedefDecl{BaseDecl: ast.DeclAt(pos), Name: name, Type: typ}
}

// -----------------------------------------------------------------------------
// Types
// -----------------------------------------------------------------------------

var primKinds = map[token.Token]types.Kind{
	token.KW_VOID: types.Void,
	token.KW_BOOL: types.Bool,
	token.KW_I8:   types.I8,
	token.KW_I16:  types.I16,
	token.KW_I32:  types.I32,
	token.KW_I64:  types.I64,
	token.KW_U8:   types.U8,
	token.KW_U16:  types.U16,
	token.KW_U32:  types.U32,
	token.KW_U64:  types.U64,
	token.KW_F32:  types.F32,
	token.KW_F64:  types.F64,
	token.KW_PTR:  types.RawPtr,
}

// parseType parses a type: a base type followed by zero or more '*'
// levels and at most one trailing array suffix. Each '*' wraps the
// accumulated type left-to-right, so "i32**" is pointer to pointer to
// i32, and the array suffix wraps whatever pointer type was built.
func (p *Parser) parseType() *types.Type {
	var t *types.Type

	switch {
	case p.tok.Type == token.KW_CONST:
		p.next()
		t = p.parseType()
		t.Const = true
		return t

	case p.tok.Type.IsTypeName():
		t = types.Prim(primKinds[p.tok.Type])
		p.next()

	case p.tok.Type == token.IDENT:
		t = types.NamedType(p.tok.Value)
		p.next()

	case p.tok.Type == token.KW_FN:
		p.next()
		p.expect(token.LPAREN)
		var params []*types.Type
		first := true
		for p.tok.Type != token.RPAREN {
			if !first {
				p.expect(token.COMMA)
			}
			first = false
			params = append(params, p.parseType())
		}
		p.expect(token.RPAREN)
		p.expect(token.ARROW)
		t = types.FuncOf(params, p.parseType())

	default:
		p.failf("expected type, got %s", p.tokenDesc())
	}

	for p.tok.Type == token.MUL {
		t = types.PointerTo(t)
		p.next()
	}

	if p.accept(token.LBRACKET) {
		if p.accept(token.RBRACKET) {
			return types.ArrayOf(t, types.SliceSize)
		}
		tok := p.expect(token.INT)
		size := p.parseIntValue(tok.Value, tok.Pos)
		if size < 0 {
			p.failAt(tok.Pos, "array size must be non-negative")
		}
		p.expect(token.RBRACKET)
		return types.ArrayOf(t, int(size))
	}
	return t
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// parseBlock parses a braced block of statements.
func (p *Parser) parseBlock() *ast.BlockStmt {
	pos := p.tok.Pos
	p.expect(token.LBRACE)

	var stmts []ast.Stmt
	for p.tok.Type != token.RBRACE {
		if p.tok.Type == token.EOF {
			p.failf("expected '}', got end of file")
		}
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBRACE)

	return &ast.BlockStmt{BaseStmt: ast.StmtAt(pos), Stmts: stmts}
}

// parseStmt parses any statement.
func (p *Parser) parseStmt() ast.Stmt {
	pos := p.tok.Pos

	switch p.tok.Type {
	case token.LBRACE:
		return p.parseBlock()

	case token.KW_IF:
		p.next()
		p.expect(token.LPAREN)
		cond := p.parseExpr()
		p.expect(token.RPAREN)
		then := p.parseStmt()
		var els ast.Stmt
		if p.accept(token.KW_ELSE) {
			els = p.parseStmt()
		}
		return &ast.IfStmt{BaseStmt: ast.StmtAt(pos), Cond: cond, Then: then, Else: els}

	case token.KW_WHILE:
		p.next()
		p.expect(token.LPAREN)
		cond := p.parseExpr()
		p.expect(token.RPAREN)
		body := p.parseStmt()
		return &ast.WhileStmt{BaseStmt: ast.StmtAt(pos), Cond: cond, Body: body}

	case token.KW_DO:
		p.next()
		body := p.parseStmt()
		p.expect(token.KW_WHILE)
		p.expect(token.LPAREN)
		cond := p.parseExpr()
		p.expect(token.RPAREN)
		p.expect(token.SEMICOLON)
		return &ast.DoWhileStmt{BaseStmt: ast.StmtAt(pos), Body: body, Cond: cond}

	case token.KW_FOR:
		return p.parseForStmt()

	case token.KW_SWITCH:
		p.next()
		p.expect(token.LPAREN)
		cond := p.parseExpr()
		p.expect(token.RPAREN)
		body := p.parseStmt()
		return &ast.SwitchStmt{BaseStmt: ast.StmtAt(pos), Cond: cond, Body: body}

	case token.KW_CASE:
		p.next()
		value := p.parseExpr()
		p.expect(token.COLON)
		return &ast.CaseStmt{BaseStmt: ast.StmtAt(pos), Value: value}

	case token.KW_DEFAULT:
		p.next()
		p.expect(token.COLON)
		return &ast.DefaultStmt{BaseStmt: ast.StmtAt(pos)}

	case token.KW_RETURN:
		p.next()
		var value ast.Expr
		if p.tok.Type != token.SEMICOLON {
			value = p.parseExpr()
		}
		p.expect(token.SEMICOLON)
		return &ast.ReturnStmt{BaseStmt: ast.StmtAt(pos), Value: value}

	case token.KW_BREAK:
		p.next()
		p.expect(token.SEMICOLON)
		return &ast.BreakStmt{BaseStmt: ast.StmtAt(pos)}

	case token.KW_CONTINUE:
		p.next()
		p.expect(token.SEMICOLON)
		return &ast.ContinueStmt{BaseStmt: ast.StmtAt(pos)}

	case token.KW_GOTO:
		p.next()
		label, _ := p.expectIdent()
		p.expect(token.SEMICOLON)
		return &ast.GotoStmt{BaseStmt: ast.StmtAt(pos), Label: label}

	case token.KW_ASM:
		return p.parseAsmStmt()

	case token.KW_CONST:
		p.next()
		return p.parseVarDecl(pos, true, false)

	case token.KW_STATIC:
		p.next()
		return p.parseVarDecl(pos, false, true)

	case token.SEMICOLON:
		// Empty statement, e.g. the body of "foo: ;".
		p.next()
		return &ast.ExprStmt{BaseStmt: ast.StmtAt(pos)}

	case token.IDENT:
		return p.parseIdentStmt()

	case token.ILLEGAL:
		p.failf("%s", p.tokenDesc())
		return nil

	default:
		if p.tok.Type.IsTypeName() {
			return p.parseVarDecl(pos, false, false)
		}
		expr := p.parseExpr()
		p.expect(token.SEMICOLON)
		return &ast.ExprStmt{BaseStmt: ast.StmtAt(pos), Expr: expr}
	}
}

// parseForStmt parses for (init?; cond?; post?) stmt. The init slot is a
// full statement carrying its own terminator; cond and post are bare
// expressions.
func (p *Parser) parseForStmt() *ast.ForStmt {
	pos := p.tok.Pos
	p.expect(token.KW_FOR)
	p.expect(token.LPAREN)

	var init ast.Stmt
	if p.tok.Type == token.SEMICOLON {
		p.next()
	} else {
		init = p.parseStmt()
		switch init.(type) {
		case *ast.VarDecl, *ast.ExprStmt:
		default:
			p.failAt(init.Pos(), "for loop initializer must be a variable declaration or expression")
		}
	}

	var cond ast.Expr
	if p.tok.Type != token.SEMICOLON {
		cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)

	var post ast.Expr
	if p.tok.Type != token.RPAREN {
		post = p.parseExpr()
	}
	p.expect(token.RPAREN)

	body := p.parseStmt()
	return &ast.ForStmt{BaseStmt: ast.StmtAt(pos), Init: init, Cond: cond, Post: post, Body: body}
}

// parseAsmStmt parses asm( ... ); capturing the content between balanced
// parens as an opaque string: each inner token's literal text, with
// strings and chars re-quoted, joined by single spaces. Original layout
// is not preserved.
func (p *Parser) parseAsmStmt() *ast.AsmStmt {
	pos := p.tok.Pos
	p.expect(token.KW_ASM)
	p.expect(token.LPAREN)

	var parts []string
	depth := 1
	for {
		switch p.tok.Type {
		case token.EOF:
			p.failf("unterminated asm statement")
		case token.LPAREN:
			depth++
			parts = append(parts, "(")
		case token.RPAREN:
			depth--
			if depth == 0 {
				p.next()
				p.expect(token.SEMICOLON)
				return &ast.AsmStmt{BaseStmt: ast.StmtAt(pos), Body: strings.Join(parts, " ")}
			}
			parts = append(parts, ")")
		case token.STRING:
			parts = append(parts, strconv.Quote(p.tok.Value))
		case token.CHAR:
			parts = append(parts, quoteChar(p.tok.Value[0]))
		default:
			parts = append(parts, p.tok.Value)
		}
		p.next()
	}
}

// parseVarDecl parses "Type identifier [= expr]? ;" after any leading
// const/static modifier has been consumed.
func (p *Parser) parseVarDecl(pos token.Position, isConst, isStatic bool) *ast.VarDecl {
	typ := p.parseType()
	name, _ := p.expectIdent()

	decl := &ast.VarDecl{
		BaseStmt: ast.StmtAt(pos),
		Name:     name,
		Type:     typ,
		Const:    isConst,
		Static:   isStatic,
	}
	if p.accept(token.ASSIGN) {
		decl.Init = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	return decl
}

// parseIdentStmt disambiguates a statement that begins with a bare
// identifier using one extra token of lookahead:
//
//	identifier ':'        -> label
//	identifier identifier -> variable declaration with a named type
//	anything else         -> expression statement
func (p *Parser) parseIdentStmt() ast.Stmt {
	pos := p.tok.Pos
	name := p.tok.Value

	switch p.lexer.Peek().Type {
	case token.COLON:
		p.next() // identifier
		p.next() // colon
		return &ast.LabelStmt{BaseStmt: ast.StmtAt(pos), Name: name}

	case token.IDENT:
		p.next()
		varName, _ := p.expectIdent()
		decl := &ast.VarDecl{
			BaseStmt: ast.StmtAt(pos),
			Name:     varName,
			Type:     types.NamedType(name),
		}
		if p.accept(token.ASSIGN) {
			decl.Init = p.parseExpr()
		}
		p.expect(token.SEMICOLON)
		return decl

	default:
		// Expression statement: start from the identifier, run the
		// shared postfix chain, then fold a trailing assignment.
		p.next()
		expr := p.parsePostfixOps(&ast.Ident{BaseExpr: ast.At(pos), Name: name})
		if p.tok.Type.IsAssignOp() {
			op := p.tok.Type
			p.next()
			right := p.parseExpr()
			expr = &ast.BinaryExpr{BaseExpr: ast.At(pos), Op: op, Left: expr, Right: right}
		}
		p.expect(token.SEMICOLON)
		return &ast.ExprStmt{BaseStmt: ast.StmtAt(pos), Expr: expr}
	}
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// parseExpr parses a full expression.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

// parseAssign parses assignment expressions (right-associative).
func (p *Parser) parseAssign() ast.Expr {
	expr := p.parseTernary()
	if p.tok.Type.IsAssignOp() {
		op := p.tok.Type
		p.next()
		right := p.parseAssign()
		return &ast.BinaryExpr{BaseExpr: ast.At(expr.Pos()), Op: op, Left: expr, Right: right}
	}
	return expr
}

// parseTernary parses cond ? then : else with a right-associative
// else branch.
func (p *Parser) parseTernary() ast.Expr {
	expr := p.parseOr()
	if p.accept(token.QUESTION) {
		then := p.parseExpr()
		p.expect(token.COLON)
		els := p.parseTernary()
		return &ast.TernaryExpr{BaseExpr: ast.At(expr.Pos()), Cond: expr, Then: then, Else: els}
	}
	return expr
}

func (p *Parser) parseOr() ast.Expr {
	return p.parseBinaryLeft(p.parseAnd, token.OR)
}

func (p *Parser) parseAnd() ast.Expr {
	return p.parseBinaryLeft(p.parseBitOr, token.AND)
}

func (p *Parser) parseBitOr() ast.Expr {
	return p.parseBinaryLeft(p.parseBitXor, token.PIPE)
}

func (p *Parser) parseBitXor() ast.Expr {
	return p.parseBinaryLeft(p.parseBitAnd, token.CARET)
}

// parseBitAnd parses single-& expressions. The scanner already resolves
// the &/&& ambiguity by maximal munch, so AMP here is always binary.
func (p *Parser) parseBitAnd() ast.Expr {
	return p.parseBinaryLeft(p.parseEquality, token.AMP)
}

func (p *Parser) parseEquality() ast.Expr {
	return p.parseBinaryLeft(p.parseComparison, token.EQUALS, token.NOT_EQUALS)
}

func (p *Parser) parseComparison() ast.Expr {
	return p.parseBinaryLeft(p.parseShift, token.LESS, token.GREATER, token.LTE, token.GTE)
}

func (p *Parser) parseShift() ast.Expr {
	return p.parseBinaryLeft(p.parseAdditive, token.SHL, token.SHR)
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.parseBinaryLeft(p.parseMultiplicative, token.ADD, token.SUB)
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.parseBinaryLeft(p.parseUnary, token.MUL, token.DIV, token.MOD)
}

// parseBinaryLeft parses left-associative binary operators.
func (p *Parser) parseBinaryLeft(higher func() ast.Expr, ops ...token.Token) ast.Expr {
	expr := higher()
	for p.match(ops...) {
		op := p.tok.Type
		p.next()
		right := higher()
		expr = &ast.BinaryExpr{BaseExpr: ast.At(expr.Pos()), Op: op, Left: expr, Right: right}
	}
	return expr
}

// match returns true if the current token matches any of the given types.
func (p *Parser) match(ops ...token.Token) bool {
	for _, t := range ops {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// parseUnary parses prefix unary operators, cast, and sizeof.
// Address-of, dereference, and pre-increment/decrement share operator
// spellings with binary forms; position in the grammar disambiguates.
func (p *Parser) parseUnary() ast.Expr {
	pos := p.tok.Pos

	switch p.tok.Type {
	case token.SUB, token.NOT, token.TILDE, token.AMP, token.MUL, token.INCR, token.DECR:
		op := p.tok.Type
		p.next()
		operand := p.parseUnary()
		return &ast.UnaryExpr{BaseExpr: ast.At(pos), Op: op, Expr: operand}

	case token.KW_CAST:
		p.next()
		p.expect(token.LPAREN)
		typ := p.parseType()
		p.expect(token.RPAREN)
		operand := p.parseUnary()
		return &ast.CastExpr{BaseExpr: ast.At(pos), Type: typ, Expr: operand}

	case token.KW_SIZEOF:
		p.next()
		p.expect(token.LPAREN)
		typ := p.parseType()
		p.expect(token.RPAREN)
		return &ast.SizeofExpr{BaseExpr: ast.At(pos), Type: typ}

	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary expression followed by its postfix chain.
func (p *Parser) parsePostfix() ast.Expr {
	return p.parsePostfixOps(p.parsePrimary())
}

// parsePostfixOps parses the postfix chain (calls, indexing, member
// access, post-increment/decrement) on an already-parsed operand.
// Shared between general expression parsing and identifier-led
// statement disambiguation.
func (p *Parser) parsePostfixOps(expr ast.Expr) ast.Expr {
	for {
		pos := p.tok.Pos
		switch p.tok.Type {
		case token.LPAREN:
			p.next()
			var args []ast.Expr
			first := true
			for p.tok.Type != token.RPAREN {
				if !first {
					p.expect(token.COMMA)
				}
				first = false
				args = append(args, p.parseExpr())
			}
			p.expect(token.RPAREN)
			expr = &ast.CallExpr{BaseExpr: ast.At(expr.Pos()), Callee: expr, Args: args}

		case token.LBRACKET:
			p.next()
			index := p.parseExpr()
			p.expect(token.RBRACKET)
			expr = &ast.IndexExpr{BaseExpr: ast.At(expr.Pos()), Base: expr, Index: index}

		case token.DOT, token.ARROW:
			arrow := p.tok.Type == token.ARROW
			p.next()
			field, _ := p.expectIdent()
			expr = &ast.MemberExpr{BaseExpr: ast.At(expr.Pos()), Base: expr, Field: field, Arrow: arrow}

		case token.INCR, token.DECR:
			op := p.tok.Type
			p.next()
			expr = &ast.UnaryExpr{BaseExpr: ast.At(pos), Op: op, Expr: expr, Post: true}

		default:
			return expr
		}
	}
}

// parsePrimary parses primary expressions.
func (p *Parser) parsePrimary() ast.Expr {
	pos := p.tok.Pos

	switch p.tok.Type {
	case token.INT:
		raw := p.tok.Value
		p.next()
		return &ast.IntLit{BaseExpr: ast.At(pos), Value: p.parseIntValue(raw, pos), Raw: raw}

	case token.FLOAT:
		raw := p.tok.Value
		p.next()
		return &ast.FloatLit{BaseExpr: ast.At(pos), Value: p.parseFloatValue(raw, pos), Raw: raw}

	case token.STRING:
		value := p.tok.Value
		p.next()
		return &ast.StringLit{BaseExpr: ast.At(pos), Value: value}

	case token.CHAR:
		value := p.tok.Value[0]
		p.next()
		return &ast.CharLit{BaseExpr: ast.At(pos), Value: value}

	case token.KW_TRUE, token.KW_FALSE:
		value := p.tok.Type == token.KW_TRUE
		p.next()
		return &ast.BoolLit{BaseExpr: ast.At(pos), Value: value}

	case token.KW_NULL:
		p.next()
		return &ast.NullLit{BaseExpr: ast.At(pos)}

	case token.IDENT:
		name := p.tok.Value
		p.next()
		return &ast.Ident{BaseExpr: ast.At(pos), Name: name}

	case token.LPAREN:
		p.next()
		expr := p.parseExpr()
		p.expect(token.RPAREN)
		return expr

	case token.LBRACE:
		p.next()
		var elems []ast.Expr
		first := true
		for p.tok.Type != token.RBRACE {
			if !first {
				p.expect(token.COMMA)
				if p.tok.Type == token.RBRACE {
					break // tolerate a trailing comma
				}
			}
			first = false
			elems = append(elems, p.parseExpr())
		}
		p.expect(token.RBRACE)
		return &ast.InitList{BaseExpr: ast.At(pos), Elems: elems}

	case token.ILLEGAL:
		p.failf("%s", p.tokenDesc())
		return nil

	default:
		p.failf("expected expression, got %s", p.tokenDesc())
		return nil
	}
}

// -----------------------------------------------------------------------------
// Literal conversion
// -----------------------------------------------------------------------------

// parseIntValue converts an integer literal's raw text to its value:
// underscores are stripped, a trailing 'u' dropped, and the radix chosen
// by the 0x/0b/0o prefix, defaulting to decimal.
func (p *Parser) parseIntValue(raw string, pos token.Position) int64 {
	s := strings.ReplaceAll(raw, "_", "")
	s = strings.TrimSuffix(s, "u")

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		s, base = s[2:], 2
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		s, base = s[2:], 8
	}

	value, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		p.failAt(pos, "invalid integer literal %q", raw)
	}
	return value
}

// parseFloatValue converts a float literal's raw text to its value,
// stripping underscores and the trailing 'f' marker.
func (p *Parser) parseFloatValue(raw string, pos token.Position) float64 {
	s := strings.ReplaceAll(raw, "_", "")
	s = strings.TrimSuffix(s, "f")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.failAt(pos, "invalid float literal %q", raw)
	}
	return value
}

// quoteChar renders a char literal back to source form for asm capture.
func quoteChar(b byte) string {
	switch b {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\r':
		return `'\r'`
	case 0:
		return `'\0'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	default:
		return "'" + string(b) + "'"
	}
}
