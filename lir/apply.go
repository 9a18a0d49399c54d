package lir

// FullApplySite is an umbrella over the two call-instruction variants whose
// results are immediately available: a direct apply, whose uses consume the
// callee's return value, and a try-apply, which transfers control to a
// normal or error continuation block.  (partial_apply only produces a
// closure and is not a full apply site.)
type FullApplySite struct {
	inst *Instruction
}

// ApplySiteFor wraps inst as a full apply site.  It returns a zero site for
// instructions that are not full applies.
func ApplySiteFor(inst *Instruction) FullApplySite {
	if inst == nil || (inst.Op != OpApply && inst.Op != OpTryApply) {
		return FullApplySite{}
	}

	return FullApplySite{inst: inst}
}

// IsValid returns whether the site wraps an actual full apply instruction.
func (as FullApplySite) IsValid() bool {
	return as.inst != nil
}

// Instruction returns the underlying call instruction.
func (as FullApplySite) Instruction() *Instruction {
	return as.inst
}

// IsTryApply returns whether the site is a try-apply.
func (as FullApplySite) IsTryApply() bool {
	return as.inst.Op == OpTryApply
}

// IsNonThrowing returns whether a direct apply of a throwing function is
// statically marked as unable to throw.  Always false for try-applies.
func (as FullApplySite) IsNonThrowing() bool {
	return as.inst.Op == OpApply && as.inst.NonThrowing
}

// Parent returns the block containing the call instruction.
func (as FullApplySite) Parent() *BasicBlock {
	return as.inst.Parent
}

// Function returns the caller: the function containing the call.
func (as FullApplySite) Function() *Function {
	return as.inst.Function()
}

// CalleeOperand returns the called function value (the first operand).
func (as FullApplySite) CalleeOperand() Value {
	return as.inst.Operands[0]
}

// CalleeFunction returns the statically known callee if the callee operand
// is a direct function reference, or nil otherwise.
func (as FullApplySite) CalleeFunction() *Function {
	if ref, ok := as.inst.Operands[0].(*Instruction); ok && ref.Op == OpFunctionRef {
		return ref.Callee
	}

	return nil
}

// Arguments returns the call's actual arguments (every operand after the
// callee operand).
func (as FullApplySite) Arguments() []Value {
	return as.inst.Operands[1:]
}

// NormalBlock returns the normal continuation of a try-apply: the block
// whose first parameter receives the returned value.  Nil for direct
// applies.
func (as FullApplySite) NormalBlock() *BasicBlock {
	if !as.IsTryApply() {
		return nil
	}

	return as.inst.Targets[0].Block
}

// ErrorBlock returns the error continuation of a try-apply: the block whose
// first parameter receives the thrown value.  Nil for direct applies.
func (as FullApplySite) ErrorBlock() *BasicBlock {
	if !as.IsTryApply() {
		return nil
	}

	return as.inst.Targets[1].Block
}
