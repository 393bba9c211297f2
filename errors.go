package zinc

import (
	"fmt"
)

// ParseError represents a syntax error in Zinc source code.
type ParseError struct {
	Filename string // Source file name, may be empty
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Message  string // Error description
	Context  string // Rendered source line and caret, may be empty
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.Filename != "" {
		loc = e.Filename + ":" + loc
	}
	s := fmt.Sprintf("parse error at %s: %s", loc, e.Message)
	if e.Context != "" {
		s += "\n" + e.Context
	}
	return s
}

// BuildError represents a failure of the system C compiler on
// generated code. The generated C is expected to always compile, so
// this usually indicates a toolchain problem.
type BuildError struct {
	Output string // Captured compiler diagnostics
}

func (e *BuildError) Error() string {
	return "Compilation failed"
}

// ExitError represents a normal exit with a non-zero status code.
// This is not an error condition; it indicates the program run by
// BuildAndRun exited with the given status.
type ExitError struct {
	Code int // Exit status code
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// IsExitError reports whether err is an ExitError and returns the exit code.
// Returns (code, true) if err is an ExitError, or (0, false) otherwise.
func IsExitError(err error) (int, bool) {
	if e, ok := err.(*ExitError); ok {
		return e.Code, true
	}
	return 0, false
}
