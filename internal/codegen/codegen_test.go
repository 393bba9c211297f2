package codegen

import (
	"strings"
	"testing"

	"github.com/zinclang/zinc/internal/parser"
)

// gen parses Zinc source and returns the emitted C.
func gen(t *testing.T, src string) string {
	t.Helper()
	unit, err := parser.Parse([]byte(src), "test.zn")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := String(unit)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	return out
}

func wantContains(t *testing.T, out string, substrs ...string) {
	t.Helper()
	for _, s := range substrs {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q\n%s", s, out)
		}
	}
}

func TestPreamble(t *testing.T) {
	out := gen(t, "fn main() -> i32 { return 0; }")
	wantContains(t, out,
		"#include <stdint.h>",
		"#include <stdbool.h>",
		"#include <stddef.h>",
		"static void zn_trap",
		"#define ZN_NULLCHECK",
		"#define ZN_DIVCHECK",
	)
}

func TestNullCheckArrow(t *testing.T) {
	out := gen(t, "fn f(Node* p) -> i32 { return p->value; }")
	wantContains(t, out, `ZN_NULLCHECK(p, "test.zn", 1)->value`)
}

func TestNullCheckDeref(t *testing.T) {
	out := gen(t, "fn f(i32* p) -> i32 { return *p; }")
	wantContains(t, out, `(*ZN_NULLCHECK(p, "test.zn", 1))`)
}

func TestNullCheckIndex(t *testing.T) {
	out := gen(t, "fn f(i32[] a) -> i32 { return a[2]; }")
	wantContains(t, out, `(ZN_NULLCHECK((a) + 0, "test.zn", 1))[2]`)
}

func TestDotMemberUnchecked(t *testing.T) {
	out := gen(t, "fn f() -> i32 { Point p; return p.x; }")
	wantContains(t, out, "p.x")
	if strings.Contains(out, `ZN_NULLCHECK(p, "test.zn"`) {
		t.Errorf("dot member access must not be null-checked\n%s", out)
	}
}

func TestDivCheck(t *testing.T) {
	out := gen(t, "fn f(i32 a, i32 b) -> i32 { return a / b + a % b; }")
	wantContains(t, out,
		`(a / ZN_DIVCHECK(b, "test.zn", 1))`,
		`(a % ZN_DIVCHECK(b, "test.zn", 1))`,
	)
}

func TestDivAssignCheck(t *testing.T) {
	out := gen(t, "fn f(i32 a, i32 b) { a /= b; a %= b; }")
	wantContains(t, out,
		`a /= ZN_DIVCHECK(b, "test.zn", 1)`,
		`a %= ZN_DIVCHECK(b, "test.zn", 1)`,
	)
}

func TestImportPrototype(t *testing.T) {
	out := gen(t, "import fn printf(ptr, ...) -> i32;")
	wantContains(t, out, "extern int32_t printf(void *, ...);")
}

func TestFunctionSignatures(t *testing.T) {
	out := gen(t, `
fn add(i32 a, i32 b) -> i32 { return a + b; }
extern fn hook(u8* buf, u64 len) -> bool;
fn tick() {}
`)
	wantContains(t, out,
		"int32_t add(int32_t a, int32_t b) {",
		"extern bool hook(uint8_t *buf, uint64_t len);",
		"void tick(void) {",
	)
}

func TestFuncAttributes(t *testing.T) {
	out := gen(t, "@export fn visible() -> i32 { return 1; }\n@inline fn fast() -> i32 { return 2; }")
	wantContains(t, out,
		`__attribute__((visibility("default"))) int32_t visible(void)`,
		"static inline int32_t fast(void)",
	)
}

func TestStructEmission(t *testing.T) {
	out := gen(t, "@packed @align(8) struct Header { u32 magic; u8 flags; }")
	wantContains(t, out,
		"typedef struct Header Header;",
		"struct Header {",
		"uint32_t magic;",
		"uint8_t flags;",
		"} __attribute__((packed, aligned(8)));",
	)
}

func TestUnionEmission(t *testing.T) {
	out := gen(t, "union Value { i64 i; f64 f; }")
	wantContains(t, out, "typedef union Value Value;", "union Value {")
}

func TestEnumEmission(t *testing.T) {
	out := gen(t, "enum Color { RED, GREEN = 5, BLUE }")
	wantContains(t, out,
		"typedef enum Color {",
		"RED,",
		"GREEN = 5,",
		"BLUE,",
		"} Color;",
	)
}

func TestTypedefEmission(t *testing.T) {
	out := gen(t, "typedef u8* bytes;")
	wantContains(t, out, "typedef uint8_t *bytes;")
}

func TestDeclarators(t *testing.T) {
	out := gen(t, `
typedef fn(i32, ptr) -> i32 Handler;

fn f() {
	i32* p;
	i32[4] a;
	u8[] view;
	static fn() -> void cb;
}
`)
	wantContains(t, out,
		"typedef int32_t (*Handler)(int32_t, void *);",
		"int32_t *p;",
		"int32_t a[4];",
		"uint8_t *view;",
		"static void (*cb)(void);",
	)
}

func TestCastAndSizeof(t *testing.T) {
	out := gen(t, "fn f(ptr p) -> i32 { return *cast(i32*) p + cast(i32) sizeof(u64); }")
	wantContains(t, out,
		"((int32_t *)(p))",
		"sizeof(uint64_t)",
		"((int32_t)(",
	)
}

func TestControlFlowEmission(t *testing.T) {
	out := gen(t, `
fn f(i32 n) -> i32 {
	i32 sum = 0;
	for (i32 i = 0; i < n; i++) {
		sum += i;
	}
	do {
		sum--;
	} while (sum > 100);
	switch (sum) {
	case 0:
		goto done;
	default:
		break;
	}
	while (sum < 0) sum++;
done:
	return sum;
}
`)
	wantContains(t, out,
		"for (int32_t i = 0; (i < n); (i++)) {",
		"do {",
		"} while ((sum > 100));",
		"switch (sum) {",
		"case 0:",
		"goto done;",
		"default:",
		"break;",
		"while ((sum < 0)) {",
		"done:;",
		"return sum;",
	)
}

func TestAsmEmission(t *testing.T) {
	out := gen(t, `fn f() { asm("nop"); }`)
	wantContains(t, out, `__asm__ volatile ("nop");`)
}

func TestLiterals(t *testing.T) {
	out := gen(t, `
fn f() {
	i32 x = 0x1F;
	f64 y = 2.5;
	bool b = true;
	ptr p = null;
	u8 c = 'A';
	ptr s = "hi\n";
}
`)
	wantContains(t, out,
		"int32_t x = 31;",
		"double y = 2.5;",
		"bool b = true;",
		"void *p = NULL;",
		"uint8_t c = 'A';",
		`void *s = "hi\n";`,
	)
}

func TestInitList(t *testing.T) {
	out := gen(t, "fn f() { i32[3] a = {1, 2, 3}; }")
	wantContains(t, out, "int32_t a[3] = {1, 2, 3};")
}

func TestAssignmentOperandGrouping(t *testing.T) {
	out := gen(t, "fn f(i32 a, i32 b, i32 c) -> i32 { return (a = b) + c; }")
	wantContains(t, out, "((a = b) + c)")
}

func TestSelfReferentialStruct(t *testing.T) {
	out := gen(t, "struct Node { Node* next; i32 value; }")
	wantContains(t, out,
		"typedef struct Node Node;",
		"struct Node {",
		"Node *next;",
	)
}

func TestTernaryEmission(t *testing.T) {
	out := gen(t, "fn f(i32 a) -> i32 { return a > 0 ? a : -a; }")
	wantContains(t, out, "((a > 0) ? a : (-a))")
}

func TestStaticAndConstLocals(t *testing.T) {
	out := gen(t, "fn f() { static i32 hits = 0; const i32 cap = 8; }")
	wantContains(t, out,
		"static int32_t hits = 0;",
		"const int32_t cap = 8;",
	)
}
