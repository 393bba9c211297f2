// Package token defines lexical tokens for the Zinc language.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Literals and identifiers
	IDENT  // identifier
	INT    // integer literal
	FLOAT  // float literal
	STRING // string literal
	CHAR   // char literal

	// Operators and delimiters
	operatorStart
	ADD        // +
	ADD_ASSIGN // +=
	SUB        // -
	SUB_ASSIGN // -=
	MUL        // *
	MUL_ASSIGN // *=
	DIV        // /
	DIV_ASSIGN // /=
	MOD        // %
	MOD_ASSIGN // %=

	ASSIGN     // =
	EQUALS     // ==
	NOT_EQUALS // !=
	LESS       // <
	LTE        // <=
	GREATER    // >
	GTE        // >=

	AND        // &&
	OR         // ||
	NOT        // !
	AMP        // &
	AMP_ASSIGN // &=
	PIPE       // |
	OR_ASSIGN  // |=
	CARET      // ^
	XOR_ASSIGN // ^=
	TILDE      // ~
	SHL        // <<
	SHL_ASSIGN // <<=
	SHR        // >>
	SHR_ASSIGN // >>=

	INCR     // ++
	DECR     // --
	ARROW    // ->
	DOT      // .
	ELLIPSIS // ...

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	QUESTION  // ?
	AT        // @
	operatorEnd

	// Keywords: primitive type names
	typeStart
	KW_VOID // void
	KW_BOOL // bool
	KW_I8   // i8
	KW_I16  // i16
	KW_I32  // i32
	KW_I64  // i64
	KW_U8   // u8
	KW_U16  // u16
	KW_U32  // u32
	KW_U64  // u64
	KW_F32  // f32
	KW_F64  // f64
	KW_PTR  // ptr
	typeEnd

	// Keywords: control flow, declarations, operators, literals
	keywordStart
	KW_IF       // if
	KW_ELSE     // else
	KW_WHILE    // while
	KW_DO       // do
	KW_FOR      // for
	KW_SWITCH   // switch
	KW_CASE     // case
	KW_DEFAULT  // default
	KW_BREAK    // break
	KW_CONTINUE // continue
	KW_RETURN   // return
	KW_GOTO     // goto

	KW_FN      // fn
	KW_STRUCT  // struct
	KW_UNION   // union
	KW_ENUM    // enum
	KW_TYPEDEF // typedef
	KW_EXTERN  // extern
	KW_CONST   // const
	KW_STATIC  // static
	KW_IMPORT  // import
	KW_EXPORT  // export

	KW_SIZEOF // sizeof
	KW_TYPEOF // typeof
	KW_CAST   // cast
	KW_ASM    // asm

	KW_TRUE  // true
	KW_FALSE // false
	KW_NULL  // null
	keywordEnd
)

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword (including type names).
func (t Token) IsKeyword() bool {
	return (t > typeStart && t < typeEnd) || (t > keywordStart && t < keywordEnd)
}

// IsTypeName returns true if the token names a primitive type.
func (t Token) IsTypeName() bool {
	return t > typeStart && t < typeEnd
}

// IsLiteral returns true if the token is a literal or identifier.
func (t Token) IsLiteral() bool {
	switch t {
	case IDENT, INT, FLOAT, STRING, CHAR:
		return true
	default:
		return false
	}
}

// IsAssignOp returns true for assignment-class operators.
func (t Token) IsAssignOp() bool {
	switch t {
	case ASSIGN, ADD_ASSIGN, SUB_ASSIGN, MUL_ASSIGN, DIV_ASSIGN, MOD_ASSIGN,
		AMP_ASSIGN, OR_ASSIGN, XOR_ASSIGN, SHL_ASSIGN, SHR_ASSIGN:
		return true
	default:
		return false
	}
}

// keywords maps keyword spellings to their token types.
// Built once at package init, read-only thereafter.
var keywords = map[string]Token{
	"void": KW_VOID,
	"bool": KW_BOOL,
	"i8":   KW_I8,
	"i16":  KW_I16,
	"i32":  KW_I32,
	"i64":  KW_I64,
	"u8":   KW_U8,
	"u16":  KW_U16,
	"u32":  KW_U32,
	"u64":  KW_U64,
	"f32":  KW_F32,
	"f64":  KW_F64,
	"ptr":  KW_PTR,

	"if":       KW_IF,
	"else":     KW_ELSE,
	"while":    KW_WHILE,
	"do":       KW_DO,
	"for":      KW_FOR,
	"switch":   KW_SWITCH,
	"case":     KW_CASE,
	"default":  KW_DEFAULT,
	"break":    KW_BREAK,
	"continue": KW_CONTINUE,
	"return":   KW_RETURN,
	"goto":     KW_GOTO,

	"fn":      KW_FN,
	"struct":  KW_STRUCT,
	"union":   KW_UNION,
	"enum":    KW_ENUM,
	"typedef": KW_TYPEDEF,
	"extern":  KW_EXTERN,
	"const":   KW_CONST,
	"static":  KW_STATIC,
	"import":  KW_IMPORT,
	"export":  KW_EXPORT,

	"sizeof": KW_SIZEOF,
	"typeof": KW_TYPEOF,
	"cast":   KW_CAST,
	"asm":    KW_ASM,

	"true":  KW_TRUE,
	"false": KW_FALSE,
	"null":  KW_NULL,
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword token if the spelling is reserved, otherwise IDENT.
func LookupIdent(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// tokenNames maps token types to human-readable names for diagnostics.
var tokenNames = map[Token]string{
	ILLEGAL: "illegal",
	EOF:     "end of file",
	IDENT:   "identifier",
	INT:     "integer literal",
	FLOAT:   "float literal",
	STRING:  "string literal",
	CHAR:    "char literal",

	ADD: "+", ADD_ASSIGN: "+=",
	SUB: "-", SUB_ASSIGN: "-=",
	MUL: "*", MUL_ASSIGN: "*=",
	DIV: "/", DIV_ASSIGN: "/=",
	MOD: "%", MOD_ASSIGN: "%=",
	ASSIGN: "=", EQUALS: "==", NOT_EQUALS: "!=",
	LESS: "<", LTE: "<=", GREATER: ">", GTE: ">=",
	AND: "&&", OR: "||", NOT: "!",
	AMP: "&", AMP_ASSIGN: "&=",
	PIPE: "|", OR_ASSIGN: "|=",
	CARET: "^", XOR_ASSIGN: "^=",
	TILDE: "~",
	SHL:   "<<", SHL_ASSIGN: "<<=",
	SHR: ">>", SHR_ASSIGN: ">>=",
	INCR: "++", DECR: "--",
	ARROW: "->", DOT: ".", ELLIPSIS: "...",
	LPAREN: "(", RPAREN: ")",
	LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]",
	COMMA: ",", SEMICOLON: ";", COLON: ":", QUESTION: "?", AT: "@",

	KW_VOID: "void", KW_BOOL: "bool",
	KW_I8: "i8", KW_I16: "i16", KW_I32: "i32", KW_I64: "i64",
	KW_U8: "u8", KW_U16: "u16", KW_U32: "u32", KW_U64: "u64",
	KW_F32: "f32", KW_F64: "f64", KW_PTR: "ptr",
	KW_IF: "if", KW_ELSE: "else", KW_WHILE: "while", KW_DO: "do",
	KW_FOR: "for", KW_SWITCH: "switch", KW_CASE: "case", KW_DEFAULT: "default",
	KW_BREAK: "break", KW_CONTINUE: "continue", KW_RETURN: "return", KW_GOTO: "goto",
	KW_FN: "fn", KW_STRUCT: "struct", KW_UNION: "union", KW_ENUM: "enum",
	KW_TYPEDEF: "typedef", KW_EXTERN: "extern", KW_CONST: "const", KW_STATIC: "static",
	KW_IMPORT: "import", KW_EXPORT: "export",
	KW_SIZEOF: "sizeof", KW_TYPEOF: "typeof", KW_CAST: "cast", KW_ASM: "asm",
	KW_TRUE: "true", KW_FALSE: "false", KW_NULL: "null",
}

// String returns a human-readable name for the token type.
func (t Token) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "unknown"
}
