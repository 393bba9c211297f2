// Package lexer provides Zinc source code tokenization.
package lexer

import (
	"github.com/zinclang/zinc/internal/token"
)

// Token represents a scanned token with its position and value.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// Lexer tokenizes Zinc source code. It produces a finite sequence of
// tokens ending in EOF, then repeats EOF on every call past the end.
// One token of pushback is available through Peek.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Byte offset just past the current character
	chOff   int            // Byte offset of the current character
	pos     token.Position // Position of the current character
	nextPos token.Position // Position of the next character

	peeked *Token // Cached token from Peek, drained by Next
}

// New creates a new Lexer for the given source code. The filename is
// attached to every token position for diagnostics.
func New(src []byte, filename string) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Filename: filename,
			Line:     1,
			Column:   1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src, filename string) *Lexer {
	return New([]byte(src), filename)
}

// Next scans and returns the next token, draining the Peek cache first.
func (l *Lexer) Next() Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.scan()
}

// Peek returns the next token without consuming it. At most one token
// is buffered; repeated Peek calls return the same token.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		tok := l.scan()
		l.peeked = &tok
	}
	return *l.peeked
}

// Line returns the raw text of the 1-based source line n, or the empty
// string if n is out of range. Used only for diagnostic rendering.
func (l *Lexer) Line(n int) string {
	if n < 1 {
		return ""
	}
	line := 1
	start := 0
	for i := 0; i <= len(l.src); i++ {
		if i == len(l.src) || l.src[i] == '\n' {
			if line == n {
				return string(l.src[start:i])
			}
			line++
			start = i + 1
		}
	}
	return ""
}

func (l *Lexer) scan() Token {
	l.skipSpaceAndComments()

	pos := l.pos

	// EOF
	if l.ch == 0 {
		return Token{Type: token.EOF, Pos: l.nextPos}
	}

	if isIdentStart(l.ch) {
		return l.scanIdent(pos)
	}
	if isDigit(l.ch) {
		return l.scanNumber(pos)
	}

	switch l.ch {
	case '"':
		return l.scanString(pos)
	case '\'':
		return l.scanChar(pos)

	case '+':
		l.next()
		if l.ch == '+' {
			l.next()
			return Token{Type: token.INCR, Pos: pos, Value: "++"}
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.ADD_ASSIGN, Pos: pos, Value: "+="}
		}
		return Token{Type: token.ADD, Pos: pos, Value: "+"}

	case '-':
		l.next()
		if l.ch == '-' {
			l.next()
			return Token{Type: token.DECR, Pos: pos, Value: "--"}
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.SUB_ASSIGN, Pos: pos, Value: "-="}
		}
		if l.ch == '>' {
			l.next()
			return Token{Type: token.ARROW, Pos: pos, Value: "->"}
		}
		return Token{Type: token.SUB, Pos: pos, Value: "-"}

	case '*':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.MUL_ASSIGN, Pos: pos, Value: "*="}
		}
		return Token{Type: token.MUL, Pos: pos, Value: "*"}

	case '/':
		// Comments were skipped above, so this is division.
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.DIV_ASSIGN, Pos: pos, Value: "/="}
		}
		return Token{Type: token.DIV, Pos: pos, Value: "/"}

	case '%':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.MOD_ASSIGN, Pos: pos, Value: "%="}
		}
		return Token{Type: token.MOD, Pos: pos, Value: "%"}

	case '=':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.EQUALS, Pos: pos, Value: "=="}
		}
		return Token{Type: token.ASSIGN, Pos: pos, Value: "="}

	case '!':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.NOT_EQUALS, Pos: pos, Value: "!="}
		}
		return Token{Type: token.NOT, Pos: pos, Value: "!"}

	case '<':
		l.next()
		if l.ch == '<' {
			l.next()
			if l.ch == '=' {
				l.next()
				return Token{Type: token.SHL_ASSIGN, Pos: pos, Value: "<<="}
			}
			return Token{Type: token.SHL, Pos: pos, Value: "<<"}
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.LTE, Pos: pos, Value: "<="}
		}
		return Token{Type: token.LESS, Pos: pos, Value: "<"}

	case '>':
		l.next()
		if l.ch == '>' {
			l.next()
			if l.ch == '=' {
				l.next()
				return Token{Type: token.SHR_ASSIGN, Pos: pos, Value: ">>="}
			}
			return Token{Type: token.SHR, Pos: pos, Value: ">>"}
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.GTE, Pos: pos, Value: ">="}
		}
		return Token{Type: token.GREATER, Pos: pos, Value: ">"}

	case '&':
		l.next()
		if l.ch == '&' {
			l.next()
			return Token{Type: token.AND, Pos: pos, Value: "&&"}
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.AMP_ASSIGN, Pos: pos, Value: "&="}
		}
		return Token{Type: token.AMP, Pos: pos, Value: "&"}

	case '|':
		l.next()
		if l.ch == '|' {
			l.next()
			return Token{Type: token.OR, Pos: pos, Value: "||"}
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.OR_ASSIGN, Pos: pos, Value: "|="}
		}
		return Token{Type: token.PIPE, Pos: pos, Value: "|"}

	case '^':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.XOR_ASSIGN, Pos: pos, Value: "^="}
		}
		return Token{Type: token.CARET, Pos: pos, Value: "^"}

	case '~':
		l.next()
		return Token{Type: token.TILDE, Pos: pos, Value: "~"}

	case '.':
		if l.byteAt(0) == '.' && l.byteAt(1) == '.' {
			l.next()
			l.next()
			l.next()
			return Token{Type: token.ELLIPSIS, Pos: pos, Value: "..."}
		}
		l.next()
		return Token{Type: token.DOT, Pos: pos, Value: "."}

	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos, Value: "("}
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos, Value: ")"}
	case '{':
		l.next()
		return Token{Type: token.LBRACE, Pos: pos, Value: "{"}
	case '}':
		l.next()
		return Token{Type: token.RBRACE, Pos: pos, Value: "}"}
	case '[':
		l.next()
		return Token{Type: token.LBRACKET, Pos: pos, Value: "["}
	case ']':
		l.next()
		return Token{Type: token.RBRACKET, Pos: pos, Value: "]"}
	case ',':
		l.next()
		return Token{Type: token.COMMA, Pos: pos, Value: ","}
	case ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos, Value: ";"}
	case ':':
		l.next()
		return Token{Type: token.COLON, Pos: pos, Value: ":"}
	case '?':
		l.next()
		return Token{Type: token.QUESTION, Pos: pos, Value: "?"}
	case '@':
		l.next()
		return Token{Type: token.AT, Pos: pos, Value: "@"}

	default:
		ch := l.ch
		l.next()
		return Token{Type: token.ILLEGAL, Pos: pos, Value: string(ch)}
	}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := l.chOff
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	start := l.chOff

	// Radix prefixes: the literal text is kept verbatim, the parser
	// interprets the digits later.
	if l.ch == '0' {
		switch l.byteAt(0) {
		case 'x', 'X':
			l.next()
			l.next()
			for isHexDigit(l.ch) || l.ch == '_' {
				l.next()
			}
			return Token{Type: token.INT, Pos: pos, Value: string(l.src[start:l.endOffset()])}
		case 'b', 'B':
			l.next()
			l.next()
			for l.ch == '0' || l.ch == '1' || l.ch == '_' {
				l.next()
			}
			return Token{Type: token.INT, Pos: pos, Value: string(l.src[start:l.endOffset()])}
		case 'o', 'O':
			l.next()
			l.next()
			for (l.ch >= '0' && l.ch <= '7') || l.ch == '_' {
				l.next()
			}
			return Token{Type: token.INT, Pos: pos, Value: string(l.src[start:l.endOffset()])}
		}
	}

	isFloat := false
	for isDigit(l.ch) || l.ch == '_' {
		l.next()
	}

	// A '.' introduces a fraction only when followed by a digit, so
	// "1.x" leaves the dot for member access.
	if l.ch == '.' && isDigit(l.byteAt(0)) {
		isFloat = true
		l.next()
		for isDigit(l.ch) || l.ch == '_' {
			l.next()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.next()
		if l.ch == '+' || l.ch == '-' {
			l.next()
		}
		for isDigit(l.ch) || l.ch == '_' {
			l.next()
		}
	}

	if l.ch == 'f' {
		isFloat = true
		l.next()
	} else if l.ch == 'u' {
		// Consumed without semantic effect.
		l.next()
	}

	typ := token.INT
	if isFloat {
		typ = token.FLOAT
	}
	return Token{Type: typ, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanString(pos token.Position) Token {
	l.next() // consume opening quote

	var sb []byte
	for l.ch != 0 && l.ch != '"' {
		if l.ch == '\\' {
			l.next()
			switch l.ch {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case 'r':
				sb = append(sb, '\r')
			case '0':
				sb = append(sb, 0)
			case '\\':
				sb = append(sb, '\\')
			case '"':
				sb = append(sb, '"')
			case 'x':
				// Exactly two hex digit characters, parsed as a byte.
				hi := hexValue(l.byteAt(0))
				lo := hexValue(l.byteAt(1))
				l.next()
				l.next()
				sb = append(sb, byte(hi*16+lo))
			default:
				sb = append(sb, l.ch)
			}
			l.next()
		} else {
			sb = append(sb, l.ch)
			l.next()
		}
	}

	if l.ch != '"' {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated string literal"}
	}
	l.next() // consume closing quote

	return Token{Type: token.STRING, Pos: pos, Value: string(sb)}
}

func (l *Lexer) scanChar(pos token.Position) Token {
	l.next() // consume opening quote

	var value byte
	if l.ch == '\\' {
		l.next()
		switch l.ch {
		case 'n':
			value = '\n'
		case 't':
			value = '\t'
		case 'r':
			value = '\r'
		case '0':
			value = 0
		case '\\':
			value = '\\'
		case '\'':
			value = '\''
		case '"':
			value = '"'
		default:
			value = l.ch
		}
		l.next()
	} else {
		value = l.ch
		l.next()
	}

	if l.ch != '\'' {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated char literal"}
	}
	l.next() // consume closing quote

	return Token{Type: token.CHAR, Pos: pos, Value: string(value)}
}

// skipSpaceAndComments skips whitespace and both comment forms in a loop
// until real content or EOF.
func (l *Lexer) skipSpaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.next()
		}
		if l.ch == '/' && l.byteAt(0) == '/' {
			for l.ch != 0 && l.ch != '\n' {
				l.next()
			}
			continue
		}
		if l.ch == '/' && l.byteAt(0) == '*' {
			l.next() // /
			l.next() // *
			for l.ch != 0 && !(l.ch == '*' && l.byteAt(0) == '/') {
				l.next()
			}
			if l.ch != 0 {
				l.next() // *
				l.next() // /
			}
			continue
		}
		return
	}
}

// next advances to the next character.
func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = 0
		l.chOff = len(l.src)
		return
	}

	l.pos = l.nextPos
	l.chOff = l.offset
	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// byteAt returns the byte n positions after the current character,
// or 0 past the end of input.
func (l *Lexer) byteAt(n int) byte {
	idx := l.offset + n
	if idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF the current-character offset already points past the input.
func (l *Lexer) endOffset() int {
	if l.ch == 0 {
		return len(l.src)
	}
	return l.chOff
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch - 'a' + 10)
	default:
		return int(ch - 'A' + 10)
	}
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
