// Package zinc provides a source-to-source compiler from the Zinc
// systems language to C.
//
// Zinc is a small, statically typed language with C-like semantics:
// fixed-width integer and float types, pointers, fixed arrays and
// unsized "slice" views, structs, unions, enums, and a C-compatible
// function call model. The compiler is a pure front end: it lexes,
// parses, and lowers Zinc to C11 text, delegating optimization and
// machine-code generation to a system C compiler.
//
// # Quick Start
//
// To translate source text:
//
//	cSource, err := zinc.Translate(src, "main.zn")
//
// Or directly from a file:
//
//	cSource, err := zinc.TranslateFile("main.zn")
//
// # Building and Running
//
// BuildAndRun hands generated C to the system C compiler and runs the
// result:
//
//	code, err := zinc.BuildAndRun(cSource, &zinc.Config{CC: "gcc"})
//
// # Safety Traps
//
// Generated C carries runtime checks: every pointer dereference,
// arrow member access, and index operation is null-checked, and every
// division or remainder checks the divisor for zero. A failed check
// reports the Zinc source location and aborts.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseError]: syntax errors in Zinc source, with position and
//     rendered source context
//   - [BuildError]: the system C compiler rejected the generated code
//   - [ExitError]: a program run via BuildAndRun exited non-zero
package zinc
