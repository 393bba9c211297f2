package zinc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zinclang/zinc/internal/codegen"
	"github.com/zinclang/zinc/internal/parser"
)

// Version is the zinc version string.
const Version = "0.1.0"

// Translate compiles Zinc source text to C source text.
// filename is used in diagnostics and in the generated runtime checks;
// it does not need to refer to a real file.
//
// Example:
//
//	cSource, err := zinc.Translate(src, "main.zn")
func Translate(src, filename string) (string, error) {
	unit, err := parser.Parse([]byte(src), filename)
	if err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			return "", publicParseError(pe)
		}
		return "", &ParseError{Message: err.Error()}
	}
	return codegen.String(unit)
}

// TranslateFile reads a Zinc source file and compiles it to C source text.
func TranslateFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Translate(string(src), path)
}

// publicParseError converts the internal parser error to the public type,
// rendering the source context (offending line plus caret) when available.
func publicParseError(pe *parser.ParseError) *ParseError {
	var context string
	if pe.SrcLine != "" {
		col := pe.Pos.Column
		if col < 1 {
			col = 1
		}
		context = pe.SrcLine + "\n" + strings.Repeat(" ", col-1) + "^"
	}
	return &ParseError{
		Filename: pe.Pos.Filename,
		Line:     pe.Pos.Line,
		Column:   pe.Pos.Column,
		Message:  pe.Message,
		Context:  context,
	}
}
