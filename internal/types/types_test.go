package types

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		typ      *Type
		expected string
	}{
		{Prim(I32), "i32"},
		{Prim(Void), "void"},
		{Prim(RawPtr), "ptr"},
		{NamedType("Point"), "Point"},
		{PointerTo(Prim(U8)), "u8*"},
		{PointerTo(PointerTo(Prim(I32))), "i32**"},
		{ArrayOf(Prim(U8), 16), "u8[16]"},
		{ArrayOf(PointerTo(PointerTo(Prim(I32))), SliceSize), "i32**[]"},
		{FuncOf([]*Type{Prim(I32), Prim(RawPtr)}, Prim(Void)), "fn(i32, ptr) -> void"},
		{FuncOf(nil, Prim(I64)), "fn() -> i64"},
		{&Type{Kind: I32, Const: true}, "const i32"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	for _, k := range []Kind{I8, I16, I32, I64, U8, U16, U32, U64} {
		if !Prim(k).IsInteger() {
			t.Errorf("kind %v: expected IsInteger", k)
		}
	}
	if Prim(F32).IsInteger() || Prim(Bool).IsInteger() {
		t.Error("f32 and bool are not integers")
	}
	if !Prim(F32).IsFloat() || !Prim(F64).IsFloat() {
		t.Error("expected IsFloat for f32 and f64")
	}
	if !Prim(RawPtr).IsPointerLike() {
		t.Error("ptr is pointer-like")
	}
	if !PointerTo(Prim(I32)).IsPointerLike() {
		t.Error("i32* is pointer-like")
	}
	if !ArrayOf(Prim(U8), SliceSize).IsPointerLike() {
		t.Error("unsized arrays are pointer-like")
	}
	if ArrayOf(Prim(U8), 4).IsPointerLike() {
		t.Error("sized arrays are not pointer-like")
	}
}
