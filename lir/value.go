package lir

// Value represents an SSA value that can be used as an instruction operand.
// The defining construct of a value is either an instruction (its result), a
// block parameter, or the undef sentinel.
type Value interface {
	// Type returns the type of the value.  It may be nil for instructions
	// which yield no result.
	Type() Type
}

// -----------------------------------------------------------------------------

// BlockParam is a phi-style formal parameter of a basic block: a value
// defined by the block whose concrete value is supplied by each
// predecessor's branch.  The parameters of a function's entry block are the
// function's formal parameters.
type BlockParam struct {
	typ Type

	// Ownership must be one of the enumerated ownership kinds.
	Ownership OwnershipKind

	// Block is the block defining this parameter.
	Block *BasicBlock

	// Index is the position of this parameter within its block's list.
	Index int
}

// OwnershipKind must be one of the enumerated value ownership kinds.
type OwnershipKind int

// Enumeration of value ownership kinds.
const (
	OwnershipNone = iota // trivial values
	OwnershipOwned
	OwnershipGuaranteed
	OwnershipUnowned
)

func (ok OwnershipKind) Repr() string {
	switch ok {
	case OwnershipOwned:
		return "owned"
	case OwnershipGuaranteed:
		return "guaranteed"
	case OwnershipUnowned:
		return "unowned"
	default: // OwnershipNone
		return "none"
	}
}

func (bp *BlockParam) Type() Type {
	return bp.typ
}

// -----------------------------------------------------------------------------

// Undef is the undefined-value sentinel of a given type.  It is not an
// instruction: passing it to the cost model is a precondition violation.
type Undef struct {
	typ Type
}

// NewUndef creates a new undef sentinel of type typ.
func NewUndef(typ Type) *Undef {
	return &Undef{typ: typ}
}

func (u *Undef) Type() Type {
	return u.typ
}
