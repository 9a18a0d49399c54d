package inline

import "sable/lir"

// cloneBlocks walks the callee's reachable blocks in reverse postorder from
// the entry and clones their non-terminator instructions into the caller.
// Terminators are deliberately skipped: returns and throws do not survive
// inlining as-is, so the driver rewrites all of them in a later pass.
func (in *Inliner) cloneBlocks(site lir.FullApplySite, insertBeforeBB *lir.BasicBlock) {
	caller := site.Function()

	for i, calleeBB := range in.callee.ReversePostorder() {
		if i == 0 {
			// The entry block is never cloned: its instructions are emitted
			// into the caller block immediately before the call instruction,
			// and its parameters are already bound to the call's arguments.
			in.builder.SetInsertionPointBefore(site.Instruction())
		} else {
			newBB := caller.InsertBlockBefore(insertBeforeBB)

			// Mirror the callee block's parameter structure.
			for _, param := range calleeBB.Params {
				newParam := newBB.AddParam(param.Type(), param.Ownership)
				in.valueMap[param] = newParam
			}

			in.blockMap[calleeBB] = newBB
			in.builder.SetInsertionPointAtEnd(newBB)
		}

		in.cloneOrder = append(in.cloneOrder, calleeBB)

		for _, inst := range calleeBB.Instrs {
			if inst.IsTerminator() {
				continue
			}

			in.cloneInstruction(inst)
		}
	}
}

// cloneInstruction emits a caller-side copy of one callee non-terminator at
// the current insertion point and records the result in the value map.
func (in *Inliner) cloneInstruction(inst *lir.Instruction) {
	// The mandatory inliner drops debug markers when inlining, as if the
	// callee were a "nodebug" function in C.
	if in.kind == MandatoryInline && (inst.Op == lir.OpDebugValue || inst.Op == lir.OpDebugValueAddr) {
		return
	}

	clone := &lir.Instruction{
		Op:          inst.Op,
		ResultType:  inst.ResultType,
		Operands:    in.remapValues(inst.Operands),
		NonThrowing: inst.NonThrowing,
		Enforcement: inst.Enforcement,
		Builtin:     inst.Builtin,
		Callee:      inst.Callee,
		GlobalName:  inst.GlobalName,
		IntValue:    inst.IntValue,
		FloatValue:  inst.FloatValue,
		StrValue:    inst.StrValue,
	}

	in.builder.SetScope(in.getOrCreateInlineScope(inst.Scope))
	in.builder.Insert(clone)

	in.valueMap[inst] = clone
}

// cloneTerminator emits a caller-side copy of a callee terminator that is
// neither a return nor a throw, remapping its successor blocks and their
// arguments.
func (in *Inliner) cloneTerminator(term *lir.Instruction) {
	targets := make([]lir.BlockTarget, len(term.Targets))
	for i, target := range term.Targets {
		targets[i] = lir.BlockTarget{
			Block: in.remapBlock(target.Block),
			Args:  in.remapValues(target.Args),
		}
	}

	clone := &lir.Instruction{
		Op:          term.Op,
		ResultType:  term.ResultType,
		Operands:    in.remapValues(term.Operands),
		Targets:     targets,
		NonThrowing: term.NonThrowing,
		Builtin:     term.Builtin,
		Callee:      term.Callee,
		StrValue:    term.StrValue,
	}

	in.builder.Insert(clone)
}

/* -------------------------------------------------------------------------- */

// remapValue translates a callee value to its caller-side replacement.  A
// value with no mapping is defined outside the callee (eg. a global or a
// type-level constant) and passes through unchanged.
func (in *Inliner) remapValue(v lir.Value) lir.Value {
	if mapped, ok := in.valueMap[v]; ok {
		return mapped
	}

	return v
}

// remapValues translates a list of callee values, preserving order.
func (in *Inliner) remapValues(vs []lir.Value) []lir.Value {
	if vs == nil {
		return nil
	}

	mapped := make([]lir.Value, len(vs))
	for i, v := range vs {
		mapped[i] = in.remapValue(v)
	}

	return mapped
}

// remapBlock translates a callee block to its caller-side counterpart.
func (in *Inliner) remapBlock(b *lir.BasicBlock) *lir.BasicBlock {
	if mapped, ok := in.blockMap[b]; ok {
		return mapped
	}

	return b
}
