package zinc_test

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/zinclang/zinc"
)

const sampleProgram = `
import fn printf(ptr, ...) -> i32;

struct Point {
	i32 x;
	i32 y;
}

fn norm1(Point* p) -> i32 {
	return p->x + p->y;
}

fn main() -> i32 {
	Point pt;
	pt.x = 3;
	pt.y = 4;
	i32 n = norm1(&pt);
	printf("norm1=%d\n", n);
	return n - 7;
}
`

func TestTranslate(t *testing.T) {
	out, err := zinc.Translate(sampleProgram, "sample.zn")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	for _, s := range []string{
		"#include <stdint.h>",
		"typedef struct Point Point;",
		"extern int32_t printf(void *, ...);",
		"int32_t norm1(Point *p)",
		"ZN_NULLCHECK(p",
		"int32_t main(void)",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q", s)
		}
	}
}

func TestTranslateParseError(t *testing.T) {
	// Two syntax errors; only the first is reported.
	src := "fn f( {\nfn g( {\n"
	_, err := zinc.Translate(src, "bad.zn")
	if err == nil {
		t.Fatal("expected error")
	}
	pe, ok := err.(*zinc.ParseError)
	if !ok {
		t.Fatalf("expected *zinc.ParseError, got %T", err)
	}
	if pe.Filename != "bad.zn" || pe.Line != 1 {
		t.Errorf("expected bad.zn:1, got %s:%d", pe.Filename, pe.Line)
	}
	if !strings.Contains(pe.Error(), "^") {
		t.Errorf("rendered error lacks caret context: %q", pe.Error())
	}
}

func TestTranslateFileMissing(t *testing.T) {
	if _, err := zinc.TranslateFile("no/such/file.zn"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBuildAndRun(t *testing.T) {
	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("cc not available")
	}

	cSource, err := zinc.Translate(sampleProgram, "sample.zn")
	if err != nil {
		t.Fatal(err)
	}

	var stdout strings.Builder
	code, err := zinc.BuildAndRun(cSource, &zinc.Config{
		Stdout:  &stdout,
		TempDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("BuildAndRun: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if got := stdout.String(); got != "norm1=7\n" {
		t.Errorf("expected output %q, got %q", "norm1=7\n", got)
	}
}

func TestBuildAndRunExitCode(t *testing.T) {
	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("cc not available")
	}

	cSource, err := zinc.Translate("fn main() -> i32 { return 3; }", "exit.zn")
	if err != nil {
		t.Fatal(err)
	}
	code, err := zinc.BuildAndRun(cSource, &zinc.Config{TempDir: t.TempDir()})
	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
	if c, ok := zinc.IsExitError(err); !ok || c != 3 {
		t.Errorf("expected ExitError with code 3, got %v", err)
	}
}
