package lir

// Instruction represents a single LIR operation.  An instruction with a
// non-nil result type is itself the SSA value it defines.
type Instruction struct {
	// Op must be one of the enumerated opcodes.
	Op Opcode

	// ResultType is the type of the value yielded by the instruction, or nil
	// if the instruction yields no result.
	ResultType Type

	// Operands are the values this instruction is applied to.
	Operands []Value

	// Targets are the successor blocks of a terminator, together with the
	// arguments passed to each successor's block parameters.  Empty for
	// non-terminators.
	Targets []BlockTarget

	// Loc is the source location the instruction was produced from.
	Loc Location

	// Scope is the debug scope the instruction belongs to.
	Scope *DebugScope

	// Parent is the block containing the instruction.
	Parent *BasicBlock

	// NonThrowing marks an apply of a throwing function that is statically
	// known not to throw.
	NonThrowing bool

	// Enforcement is the access enforcement of begin_access and
	// begin/end_unpaired_access instructions.
	Enforcement AccessEnforcement

	// Builtin is the builtin kind of a builtin instruction.
	Builtin BuiltinKind

	// Callee is the function referenced by a function_ref instruction.
	Callee *Function

	// GlobalName is the referenced global of alloc_global, global_addr, and
	// global_value instructions.
	GlobalName string

	// IntValue is the payload of an integer_literal instruction.
	IntValue int64

	// FloatValue is the payload of a float_literal instruction.
	FloatValue float64

	// StrValue is the payload of string literals, the field name of struct
	// projections, and the method name of dispatch instructions.
	StrValue string
}

// BlockTarget is one successor of a terminator: the destination block and
// the arguments supplied to its block parameters.
type BlockTarget struct {
	Block *BasicBlock
	Args  []Value
}

func (inst *Instruction) Type() Type {
	return inst.ResultType
}

// IsTerminator returns whether the instruction is a block terminator.
func (inst *Instruction) IsTerminator() bool {
	return IsTerminator(inst.Op)
}

// Function returns the function containing this instruction, or nil if the
// instruction is detached.
func (inst *Instruction) Function() *Function {
	if inst.Parent == nil {
		return nil
	}

	return inst.Parent.Parent
}
