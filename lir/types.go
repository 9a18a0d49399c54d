package lir

import (
	"fmt"
	"strings"
)

// Type represents a type that can be given to an LIR value.  The LIR type
// system is a simplified, "machine-like" lowering of Sable's surface type
// system: it records only the structure the optimizer needs to reason about.
type Type interface {
	// Repr returns the string representation of the LIR type.
	Repr() string
}

// -----------------------------------------------------------------------------

// PrimType represents an LIR primitive type.  It must be one of the
// enumerated LIR primitive types.
type PrimType int

// Enumeration of LIR PrimTypes.
const (
	PrimUnit = iota
	PrimBool
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimF32
	PrimF64
	PrimString
	PrimNever
)

func (pt PrimType) Repr() string {
	switch pt {
	case PrimUnit:
		return "unit"
	case PrimBool:
		return "bool"
	case PrimI8:
		return "i8"
	case PrimI16:
		return "i16"
	case PrimI32:
		return "i32"
	case PrimI64:
		return "i64"
	case PrimF32:
		return "f32"
	case PrimF64:
		return "f64"
	case PrimString:
		return "string"
	default: // PrimNever
		return "never"
	}
}

// -----------------------------------------------------------------------------

// AddressType is the type of a typed address: the result of a projection or
// stack allocation.
type AddressType struct {
	ElemType Type
}

func (at AddressType) Repr() string {
	return "addr[" + at.ElemType.Repr() + "]"
}

// RawPointerType is the type of an untyped pointer.
type RawPointerType struct{}

func (RawPointerType) Repr() string {
	return "rawptr"
}

// RefType is the type of a reference to a class instance.
type RefType struct {
	// The name of the referenced class.
	Name string
}

func (rt RefType) Repr() string {
	return "ref[" + rt.Name + "]"
}

// -----------------------------------------------------------------------------

// TupleType represents a tuple of multiple associated values.
type TupleType struct {
	ElemTypes []Type
}

func (tt TupleType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, elem := range tt.ElemTypes {
		sb.WriteString(elem.Repr())

		if i < len(tt.ElemTypes)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteRune(')')
	return sb.String()
}

// StructType represents a named structure type.  The optimizer never looks
// inside field types: the name is sufficient for identity.
type StructType struct {
	Name       string
	FieldTypes []Type
}

func (st StructType) Repr() string {
	return st.Name
}

// -----------------------------------------------------------------------------

// FuncType represents the type of a function value.
type FuncType struct {
	ParamTypes []Type
	ResultType Type

	// Throws indicates whether the function has an error result in addition
	// to its normal result.
	Throws bool
}

func (ft FuncType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, param := range ft.ParamTypes {
		sb.WriteString(param.Repr())

		if i < len(ft.ParamTypes)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteString(") ")

	if ft.Throws {
		sb.WriteString("throws ")
	}

	sb.WriteString(ft.ResultType.Repr())
	return sb.String()
}

// -----------------------------------------------------------------------------

// MetatypeRep must be one of the enumerated metatype representations.
type MetatypeRep int

// Enumeration of metatype representations.
const (
	MetatypeThin = iota // no runtime value required
	MetatypeThick
	MetatypeForeign
)

// MetatypeType represents the type of a metatype value.
type MetatypeType struct {
	InstanceType Type
	Rep          MetatypeRep
}

func (mt MetatypeType) Repr() string {
	switch mt.Rep {
	case MetatypeThin:
		return fmt.Sprintf("metatype[thin, %s]", mt.InstanceType.Repr())
	case MetatypeThick:
		return fmt.Sprintf("metatype[thick, %s]", mt.InstanceType.Repr())
	default: // MetatypeForeign
		return fmt.Sprintf("metatype[foreign, %s]", mt.InstanceType.Repr())
	}
}
