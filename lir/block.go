package lir

// BasicBlock is a maximal straight-line sequence of instructions ending in a
// single terminator.  A block defines a list of phi-style parameters whose
// concrete values are supplied by each predecessor's branch; the parameters
// of the entry block are the function's formal parameters.
type BasicBlock struct {
	// Params are the block's phi-style parameters.
	Params []*BlockParam

	// Instrs are the block's instructions in textual order.  When the block
	// is complete, the last instruction is its terminator.  A block may
	// transiently lack a terminator while it is being built or rewritten.
	Instrs []*Instruction

	// Parent is the function owning the block.
	Parent *Function
}

// AddParam appends a new phi-style parameter of the given type and ownership
// to the block and returns it.
func (b *BasicBlock) AddParam(typ Type, ownership OwnershipKind) *BlockParam {
	param := &BlockParam{
		typ:       typ,
		Ownership: ownership,
		Block:     b,
		Index:     len(b.Params),
	}

	b.Params = append(b.Params, param)
	return param
}

// Terminator returns the block's terminator, or nil if the block does not
// currently end in one.
func (b *BasicBlock) Terminator() *Instruction {
	if len(b.Instrs) == 0 {
		return nil
	}

	if last := b.Instrs[len(b.Instrs)-1]; last.IsTerminator() {
		return last
	}

	return nil
}

// IndexOf returns the position of inst within the block, or -1 if the block
// does not contain it.
func (b *BasicBlock) IndexOf(inst *Instruction) int {
	for i, bi := range b.Instrs {
		if bi == inst {
			return i
		}
	}

	return -1
}

// Insert places inst into the block at index i, shifting later instructions
// toward the terminator.
func (b *BasicBlock) Insert(i int, inst *Instruction) {
	inst.Parent = b

	b.Instrs = append(b.Instrs, nil)
	copy(b.Instrs[i+1:], b.Instrs[i:])
	b.Instrs[i] = inst
}

// Append places inst at the end of the block.
func (b *BasicBlock) Append(inst *Instruction) {
	inst.Parent = b
	b.Instrs = append(b.Instrs, inst)
}

// Remove detaches inst from the block.
func (b *BasicBlock) Remove(inst *Instruction) {
	i := b.IndexOf(inst)
	if i < 0 {
		return
	}

	b.Instrs = append(b.Instrs[:i], b.Instrs[i+1:]...)
	inst.Parent = nil
}

// Successors returns the blocks this block's terminator transfers control
// to.  A block with no terminator has no successors.
func (b *BasicBlock) Successors() []*BasicBlock {
	term := b.Terminator()
	if term == nil {
		return nil
	}

	succs := make([]*BasicBlock, len(term.Targets))
	for i, target := range term.Targets {
		succs[i] = target.Block
	}

	return succs
}
