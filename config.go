package zinc

import (
	"io"
	"os"
)

// Config holds configuration options for building and running
// translated programs.
type Config struct {
	// CC is the C compiler command (default: "cc").
	CC string

	// CFlags are extra arguments passed to the C compiler,
	// inserted before the input and output paths.
	CFlags []string

	// Stdout is the writer the compiled program's standard output
	// goes to (default: os.Stdout).
	Stdout io.Writer

	// Stderr is the writer for the compiled program's standard error
	// and the C compiler's diagnostics (default: os.Stderr).
	Stderr io.Writer

	// TempDir is where the intermediate C file and binary are placed
	// (default: os.TempDir()).
	TempDir string
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.CC == "" {
		c.CC = "cc"
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
}
