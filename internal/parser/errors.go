// Package parser provides a recursive descent parser for Zinc.
package parser

import (
	"fmt"
	"strings"

	"github.com/zinclang/zinc/internal/token"
)

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and renders the full diagnostic:
// message, locator, source line, and a caret under the offending column.
type ParseError struct {
	Pos     token.Position // Position where the error occurred
	Message string         // Human-readable error message
	SrcLine string         // Raw text of the offending source line
}

// Error returns the rendered multi-line diagnostic.
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Pos.IsValid() {
		sb.WriteByte('\n')
		sb.WriteString(e.Pos.String())
		if e.SrcLine != "" {
			sb.WriteByte('\n')
			sb.WriteString(e.SrcLine)
			sb.WriteByte('\n')
			col := e.Pos.Column
			if col < 1 {
				col = 1
			}
			sb.WriteString(strings.Repeat(" ", col-1))
			sb.WriteByte('^')
		}
	}
	return sb.String()
}

// errorf creates a ParseError at the given position with a formatted message.
func errorf(pos token.Position, srcLine, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		SrcLine: srcLine,
	}
}

// bailout carries the fatal diagnostic out of the recursive descent.
// Parsing aborts at the first syntax error; the entry points recover
// it and return the error. No partial AST is produced.
type bailout struct {
	err *ParseError
}
