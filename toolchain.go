package zinc

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// BuildAndRun compiles generated C source with the system C compiler
// and runs the resulting binary. It returns the program's exit code.
//
// A non-zero exit is reported both in the returned code and as an
// *ExitError, matching the convention that callers can propagate the
// code directly:
//
//	code, err := zinc.BuildAndRun(cSource, nil)
//	if _, ok := zinc.IsExitError(err); ok {
//	    os.Exit(code)
//	}
func BuildAndRun(cSource string, config *Config) (int, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	cPath := filepath.Join(config.TempDir, "zinc_out.c")
	binPath := filepath.Join(config.TempDir, "zinc_out")

	if err := os.WriteFile(cPath, []byte(cSource), 0o644); err != nil {
		return 0, fmt.Errorf("cannot write %s: %w", cPath, err)
	}
	defer os.Remove(cPath)
	defer os.Remove(binPath)

	args := append([]string{}, config.CFlags...)
	args = append(args, cPath, "-o", binPath)

	var ccOut strings.Builder
	cc := exec.Command(config.CC, args...)
	cc.Stdout = &ccOut
	cc.Stderr = &ccOut
	if err := cc.Run(); err != nil {
		fmt.Fprint(config.Stderr, ccOut.String())
		return 0, &BuildError{Output: ccOut.String()}
	}

	run := exec.Command(binPath)
	run.Stdout = config.Stdout
	run.Stderr = config.Stderr
	if err := run.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			return code, &ExitError{Code: code}
		}
		return 0, fmt.Errorf("cannot run %s: %w", binPath, err)
	}
	return 0, nil
}
