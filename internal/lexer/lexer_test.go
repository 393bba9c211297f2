// Package lexer provides Zinc source code tokenization.
package lexer

import (
	"testing"

	"github.com/zinclang/zinc/internal/token"
)

func TestScanBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"+", []token.Token{token.ADD, token.EOF}},
		{"-", []token.Token{token.SUB, token.EOF}},
		{"*", []token.Token{token.MUL, token.EOF}},
		{"/", []token.Token{token.DIV, token.EOF}},
		{"%", []token.Token{token.MOD, token.EOF}},
		{"++", []token.Token{token.INCR, token.EOF}},
		{"--", []token.Token{token.DECR, token.EOF}},
		{"+=", []token.Token{token.ADD_ASSIGN, token.EOF}},
		{"-=", []token.Token{token.SUB_ASSIGN, token.EOF}},
		{"*=", []token.Token{token.MUL_ASSIGN, token.EOF}},
		{"/=", []token.Token{token.DIV_ASSIGN, token.EOF}},
		{"%=", []token.Token{token.MOD_ASSIGN, token.EOF}},
		{"=", []token.Token{token.ASSIGN, token.EOF}},
		{"==", []token.Token{token.EQUALS, token.EOF}},
		{"!=", []token.Token{token.NOT_EQUALS, token.EOF}},
		{"<", []token.Token{token.LESS, token.EOF}},
		{"<=", []token.Token{token.LTE, token.EOF}},
		{">", []token.Token{token.GREATER, token.EOF}},
		{">=", []token.Token{token.GTE, token.EOF}},
		{"<<", []token.Token{token.SHL, token.EOF}},
		{"<<=", []token.Token{token.SHL_ASSIGN, token.EOF}},
		{">>", []token.Token{token.SHR, token.EOF}},
		{">>=", []token.Token{token.SHR_ASSIGN, token.EOF}},
		{"&&", []token.Token{token.AND, token.EOF}},
		{"||", []token.Token{token.OR, token.EOF}},
		{"!", []token.Token{token.NOT, token.EOF}},
		{"&", []token.Token{token.AMP, token.EOF}},
		{"&=", []token.Token{token.AMP_ASSIGN, token.EOF}},
		{"|", []token.Token{token.PIPE, token.EOF}},
		{"|=", []token.Token{token.OR_ASSIGN, token.EOF}},
		{"^", []token.Token{token.CARET, token.EOF}},
		{"^=", []token.Token{token.XOR_ASSIGN, token.EOF}},
		{"~", []token.Token{token.TILDE, token.EOF}},
		{"->", []token.Token{token.ARROW, token.EOF}},
		{".", []token.Token{token.DOT, token.EOF}},
		{"...", []token.Token{token.ELLIPSIS, token.EOF}},
		{"(", []token.Token{token.LPAREN, token.EOF}},
		{")", []token.Token{token.RPAREN, token.EOF}},
		{"{", []token.Token{token.LBRACE, token.EOF}},
		{"}", []token.Token{token.RBRACE, token.EOF}},
		{"[", []token.Token{token.LBRACKET, token.EOF}},
		{"]", []token.Token{token.RBRACKET, token.EOF}},
		{",", []token.Token{token.COMMA, token.EOF}},
		{";", []token.Token{token.SEMICOLON, token.EOF}},
		{":", []token.Token{token.COLON, token.EOF}},
		{"?", []token.Token{token.QUESTION, token.EOF}},
		{"@", []token.Token{token.AT, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input, "")
			for i, exp := range tt.expected {
				tok := l.Next()
				if tok.Type != exp {
					t.Errorf("token[%d]: expected %v, got %v", i, exp, tok.Type)
				}
			}
		})
	}
}

func TestScanKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Token
	}{
		{"void", token.KW_VOID},
		{"bool", token.KW_BOOL},
		{"i8", token.KW_I8},
		{"i16", token.KW_I16},
		{"i32", token.KW_I32},
		{"i64", token.KW_I64},
		{"u8", token.KW_U8},
		{"u16", token.KW_U16},
		{"u32", token.KW_U32},
		{"u64", token.KW_U64},
		{"f32", token.KW_F32},
		{"f64", token.KW_F64},
		{"ptr", token.KW_PTR},
		{"if", token.KW_IF},
		{"else", token.KW_ELSE},
		{"while", token.KW_WHILE},
		{"do", token.KW_DO},
		{"for", token.KW_FOR},
		{"switch", token.KW_SWITCH},
		{"case", token.KW_CASE},
		{"default", token.KW_DEFAULT},
		{"break", token.KW_BREAK},
		{"continue", token.KW_CONTINUE},
		{"return", token.KW_RETURN},
		{"goto", token.KW_GOTO},
		{"fn", token.KW_FN},
		{"struct", token.KW_STRUCT},
		{"union", token.KW_UNION},
		{"enum", token.KW_ENUM},
		{"typedef", token.KW_TYPEDEF},
		{"extern", token.KW_EXTERN},
		{"const", token.KW_CONST},
		{"static", token.KW_STATIC},
		{"import", token.KW_IMPORT},
		{"export", token.KW_EXPORT},
		{"sizeof", token.KW_SIZEOF},
		{"typeof", token.KW_TYPEOF},
		{"cast", token.KW_CAST},
		{"asm", token.KW_ASM},
		{"true", token.KW_TRUE},
		{"false", token.KW_FALSE},
		{"null", token.KW_NULL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input, "")
			tok := l.Next()
			if tok.Type != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tok.Type)
			}
			if tok.Value != tt.input {
				t.Errorf("expected value %q, got %q", tt.input, tok.Value)
			}
		})
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Token
		value    string
	}{
		{"0", token.INT, "0"},
		{"42", token.INT, "42"},
		{"0x1F", token.INT, "0x1F"},
		{"0XFF", token.INT, "0XFF"},
		{"0b1010", token.INT, "0b1010"},
		{"0o777", token.INT, "0o777"},
		{"1_000_000", token.INT, "1_000_000"},
		{"0xFF_FF", token.INT, "0xFF_FF"},
		{"42u", token.INT, "42u"},
		{"3.14", token.FLOAT, "3.14"},
		{"1.5e10", token.FLOAT, "1.5e10"},
		{"1.5e-3", token.FLOAT, "1.5e-3"},
		{"2E+8", token.FLOAT, "2E+8"},
		{"1.5e10f", token.FLOAT, "1.5e10f"},
		{"2.0f", token.FLOAT, "2.0f"},
		{"7f", token.FLOAT, "7f"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input, "")
			tok := l.Next()
			if tok.Type != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tok.Type)
			}
			if tok.Value != tt.value {
				t.Errorf("expected value %q, got %q", tt.value, tok.Value)
			}
			if eof := l.Next(); eof.Type != token.EOF {
				t.Errorf("expected EOF after literal, got %v", eof.Type)
			}
		})
	}
}

func TestScanStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"tab\there"`, "tab\there"},
		{`"line\n"`, "line\n"},
		{`"cr\r"`, "cr\r"},
		{`"nul\0"`, "nul\x00"},
		{`"quote\""`, `quote"`},
		{`"back\\slash"`, `back\slash`},
		{`"\x41\x42"`, "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input, "")
			tok := l.Next()
			if tok.Type != token.STRING {
				t.Fatalf("expected STRING, got %v", tok.Type)
			}
			if tok.Value != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tok.Value)
			}
		})
	}
}

func TestScanChars(t *testing.T) {
	tests := []struct {
		input    string
		expected byte
	}{
		{`'a'`, 'a'},
		{`'0'`, '0'},
		{`'\n'`, '\n'},
		{`'\t'`, '\t'},
		{`'\0'`, 0},
		{`'\\'`, '\\'},
		{`'\''`, '\''},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input, "")
			tok := l.Next()
			if tok.Type != token.CHAR {
				t.Fatalf("expected CHAR, got %v", tok.Type)
			}
			if len(tok.Value) != 1 || tok.Value[0] != tt.expected {
				t.Errorf("expected %q, got %q", string(tt.expected), tok.Value)
			}
		})
	}
}

func TestScanUnterminatedLiterals(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`"no closing quote`, "unterminated string literal"},
		{`'x`, "unterminated char literal"},
		{`'`, "unterminated char literal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input, "")
			tok := l.Next()
			if tok.Type != token.ILLEGAL {
				t.Fatalf("expected ILLEGAL, got %v", tok.Type)
			}
			if tok.Value != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tok.Value)
			}
		})
	}
}

func TestScanComments(t *testing.T) {
	src := "a // line comment\nb /* block\ncomment */ c"
	l := NewFromString(src, "test.zn")

	expected := []struct {
		value string
		line  int
	}{
		{"a", 1},
		{"b", 2},
		{"c", 3},
	}
	for _, exp := range expected {
		tok := l.Next()
		if tok.Type != token.IDENT || tok.Value != exp.value {
			t.Fatalf("expected identifier %q, got %v %q", exp.value, tok.Type, tok.Value)
		}
		if tok.Pos.Line != exp.line {
			t.Errorf("%q: expected line %d, got %d", exp.value, exp.line, tok.Pos.Line)
		}
	}
	if tok := l.Next(); tok.Type != token.EOF {
		t.Errorf("expected EOF, got %v", tok.Type)
	}
}

func TestPositions(t *testing.T) {
	src := "fn main() {\n    return 0;\n}"
	l := NewFromString(src, "main.zn")

	expected := []struct {
		typ       token.Token
		line, col int
	}{
		{token.KW_FN, 1, 1},
		{token.IDENT, 1, 4},
		{token.LPAREN, 1, 8},
		{token.RPAREN, 1, 9},
		{token.LBRACE, 1, 11},
		{token.KW_RETURN, 2, 5},
		{token.INT, 2, 12},
		{token.SEMICOLON, 2, 13},
		{token.RBRACE, 3, 1},
		{token.EOF, 3, 2},
	}
	for i, exp := range expected {
		tok := l.Next()
		if tok.Type != exp.typ {
			t.Fatalf("token[%d]: expected %v, got %v", i, exp.typ, tok.Type)
		}
		if tok.Pos.Line != exp.line || tok.Pos.Column != exp.col {
			t.Errorf("token[%d] %v: expected %d:%d, got %d:%d",
				i, exp.typ, exp.line, exp.col, tok.Pos.Line, tok.Pos.Column)
		}
		if tok.Pos.Filename != "main.zn" {
			t.Errorf("token[%d]: expected filename main.zn, got %q", i, tok.Pos.Filename)
		}
	}
}

func TestPeek(t *testing.T) {
	l := NewFromString("a b c", "")

	if tok := l.Peek(); tok.Type != token.IDENT || tok.Value != "a" {
		t.Fatalf("Peek: expected a, got %q", tok.Value)
	}
	// Peek must not consume.
	if tok := l.Peek(); tok.Value != "a" {
		t.Fatalf("second Peek: expected a, got %q", tok.Value)
	}
	if tok := l.Next(); tok.Value != "a" {
		t.Fatalf("Next after Peek: expected a, got %q", tok.Value)
	}
	if tok := l.Next(); tok.Value != "b" {
		t.Fatalf("expected b, got %q", tok.Value)
	}
	if tok := l.Peek(); tok.Value != "c" {
		t.Fatalf("Peek: expected c, got %q", tok.Value)
	}
	if tok := l.Next(); tok.Value != "c" {
		t.Fatalf("expected c, got %q", tok.Value)
	}
	if tok := l.Peek(); tok.Type != token.EOF {
		t.Fatalf("Peek at end: expected EOF, got %v", tok.Type)
	}
}

func TestRepeatedEOF(t *testing.T) {
	l := NewFromString("", "")
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Type != token.EOF {
			t.Fatalf("call %d: expected EOF, got %v", i, tok.Type)
		}
	}
}

func TestLine(t *testing.T) {
	l := NewFromString("first\nsecond\nthird", "")

	tests := []struct {
		n        int
		expected string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{0, ""},
		{4, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := l.Line(tt.n); got != tt.expected {
			t.Errorf("Line(%d): expected %q, got %q", tt.n, tt.expected, got)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := NewFromString("a $ b", "")

	if tok := l.Next(); tok.Type != token.IDENT {
		t.Fatalf("expected IDENT, got %v", tok.Type)
	}
	tok := l.Next()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %v", tok.Type)
	}
	if tok.Value != "$" {
		t.Errorf("expected value %q, got %q", "$", tok.Value)
	}
}
