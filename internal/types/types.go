// Package types defines the recursive type representation for Zinc.
package types

import (
	"strconv"
	"strings"
)

// Kind classifies a Type.
type Kind int

const (
	Void Kind = iota
	Bool
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	RawPtr // the opaque "ptr" type
	Named  // a type alias or aggregate referenced by name, resolved later
	Pointer
	Array
	Func
)

// SliceSize is the Array size sentinel for an unsized array ("slice").
const SliceSize = -1

// Type is a recursive description of a Zinc type.
//
// Exactly one of the composite fields is populated according to Kind:
// Elem for Pointer and Array (plus Size for Array), Params/Return for Func,
// Name for Named. The Const qualifier is orthogonal to Kind.
type Type struct {
	Kind  Kind
	Const bool

	Elem   *Type   // Pointer pointee, Array element
	Size   int     // Array element count; SliceSize for an unsized array
	Params []*Type // Func parameter types, in order
	Return *Type   // Func return type
	Name   string  // Named reference, e.g. a struct or typedef name
}

// Prim returns a primitive type of the given kind.
func Prim(k Kind) *Type { return &Type{Kind: k} }

// NamedType returns a reference to a type by name.
// Resolution against an actual declaration is deferred (there is no
// type-checking pass; the code generator trusts the name).
func NamedType(name string) *Type { return &Type{Kind: Named, Name: name} }

// PointerTo returns a pointer type with the given pointee.
func PointerTo(elem *Type) *Type { return &Type{Kind: Pointer, Elem: elem} }

// ArrayOf returns an array type. size is the fixed element count,
// or SliceSize for an unsized array.
func ArrayOf(elem *Type, size int) *Type {
	return &Type{Kind: Array, Elem: elem, Size: size}
}

// FuncOf returns a function type.
func FuncOf(params []*Type, ret *Type) *Type {
	return &Type{Kind: Func, Params: params, Return: ret}
}

// IsInteger returns true for signed or unsigned integer types.
func (t *Type) IsInteger() bool {
	switch t.Kind {
	case I8, I16, I32, I64, U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

// IsFloat returns true for floating-point types.
func (t *Type) IsFloat() bool {
	return t.Kind == F32 || t.Kind == F64
}

// IsPointerLike returns true for types with pointer representation:
// pointers, the raw ptr type, and unsized arrays.
func (t *Type) IsPointerLike() bool {
	switch t.Kind {
	case Pointer, RawPtr:
		return true
	case Array:
		return t.Size == SliceSize
	default:
		return false
	}
}

var primNames = map[Kind]string{
	Void: "void", Bool: "bool",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	F32: "f32", F64: "f64",
	RawPtr: "ptr",
}

// String renders the type in Zinc source syntax, e.g. "i32**[]" or
// "const fn(i32, ptr) -> void".
func (t *Type) String() string {
	var sb strings.Builder
	if t.Const {
		sb.WriteString("const ")
	}
	switch t.Kind {
	case Named:
		sb.WriteString(t.Name)
	case Pointer:
		sb.WriteString(t.Elem.String())
		sb.WriteByte('*')
	case Array:
		sb.WriteString(t.Elem.String())
		if t.Size == SliceSize {
			sb.WriteString("[]")
		} else {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(t.Size))
			sb.WriteByte(']')
		}
	case Func:
		sb.WriteString("fn(")
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
		sb.WriteString(") -> ")
		sb.WriteString(t.Return.String())
	default:
		sb.WriteString(primNames[t.Kind])
	}
	return sb.String()
}
