// zincc - Zinc compiler driver
//
// Translates Zinc source to C and optionally builds and runs it with
// the system C compiler. Arguments are parsed manually so options may
// appear before or after the input file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/zinclang/zinc"
)

// version is set at build time via -ldflags.
var version = "dev"

const (
	shortUsage = "usage: zincc <input.zn> [-o output.c] [--run]"
	longUsage  = `Options:
  -o, --output file  write generated C to file (default: stdout)
  --run              compile the generated C and run it
  -h, --help         show this help message
  --version          show zincc version and exit
`
)

func main() {
	var inputPath string
	var outputPath string
	runAfter := false

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch arg {
		case "-o", "--output":
			if i+1 >= len(os.Args) {
				errorExitf("option needs an argument: %s", arg)
			}
			i++
			outputPath = os.Args[i]
		case "--run":
			runAfter = true
		case "-h", "--help":
			fmt.Printf("zincc %s - Zinc compiler\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "--version":
			fmt.Printf("zincc version %s\n", version)
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				errorExitf("unknown option: %s", arg)
			}
			if inputPath != "" {
				errorExitf("multiple input files: %s and %s", inputPath, arg)
			}
			inputPath = arg
		}
	}

	if inputPath == "" {
		errorExitf("no input file\n%s", shortUsage)
	}

	cSource, err := zinc.TranslateFile(inputPath)
	if err != nil {
		errorExit(err)
	}

	if runAfter {
		code, err := zinc.BuildAndRun(cSource, nil)
		if err != nil {
			if _, ok := zinc.IsExitError(err); ok {
				os.Exit(code)
			}
			errorExit(err)
		}
		os.Exit(0)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(cSource), 0o644); err != nil {
			errorExitf("cannot write %s: %v", outputPath, err)
		}
	} else {
		fmt.Print(cSource)
	}
}

// errorExitf prints a formatted error message and exits with code 1.
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints an error and exits with code 1.
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
