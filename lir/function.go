package lir

// FunctionRep must be one of the enumerated function representations.
type FunctionRep int

// Enumeration of function representations.
const (
	// RepNative is an ordinary Sable function.
	RepNative = iota

	// RepForeignMethod is a method imported from a foreign object system.
	RepForeignMethod

	// RepForeignCFunc is an imported C function pointer.
	RepForeignCFunc
)

func (fr FunctionRep) Repr() string {
	switch fr {
	case RepForeignMethod:
		return "foreign_method"
	case RepForeignCFunc:
		return "foreign_c"
	default: // RepNative
		return "native"
	}
}

// -----------------------------------------------------------------------------

// Function represents an LIR function: an ordered sequence of basic blocks
// of which the first is the entry block.  The function owns its blocks and
// instructions.
type Function struct {
	// Name is the function's mangled name.
	Name string

	// Sig is the function's type.
	Sig FuncType

	// Rep must be one of the enumerated function representations.
	Rep FunctionRep

	// Blocks is the ordered block list.  The relative order of blocks is
	// semantically irrelevant but preserved for readability of emitted IR.
	Blocks []*BasicBlock

	// Scope is the function's root debug scope.
	Scope *DebugScope

	// Module is the module owning the function.
	Module *Module

	// inlineRefCount counts how many times the function's body has been
	// inlined into a caller.  A nonzero count keeps the function alive for
	// abstract debug-info emission even if all direct references go away.
	inlineRefCount int
}

// EntryBlock returns the function's entry block, or nil for a function with
// no body.
func (f *Function) EntryBlock() *BasicBlock {
	if len(f.Blocks) == 0 {
		return nil
	}

	return f.Blocks[0]
}

// SetInlined marks that the function's body has been inlined at a call site.
func (f *Function) SetInlined() {
	f.inlineRefCount++
}

// IsInlined returns whether the function has been inlined at least once.
func (f *Function) IsInlined() bool {
	return f.inlineRefCount > 0
}

// -----------------------------------------------------------------------------

// NewBlock appends a fresh, empty block to the function and returns it.
func (f *Function) NewBlock() *BasicBlock {
	b := &BasicBlock{Parent: f}
	f.Blocks = append(f.Blocks, b)
	return b
}

// BlockIndex returns the position of b in the function's block list, or -1
// if the function does not contain it.
func (f *Function) BlockIndex(b *BasicBlock) int {
	for i, fb := range f.Blocks {
		if fb == b {
			return i
		}
	}

	return -1
}

// BlockAfter returns the block immediately following b in the block list, or
// nil if b is the last block.
func (f *Function) BlockAfter(b *BasicBlock) *BasicBlock {
	i := f.BlockIndex(b)
	if i < 0 || i+1 == len(f.Blocks) {
		return nil
	}

	return f.Blocks[i+1]
}

// InsertBlockBefore inserts a fresh, empty block immediately before anchor.
// A nil anchor appends the block at the end of the function.
func (f *Function) InsertBlockBefore(anchor *BasicBlock) *BasicBlock {
	b := &BasicBlock{Parent: f}
	f.spliceBlockBefore(b, anchor)
	return b
}

// MoveBlockBefore moves b, which must already belong to the function, to
// immediately before anchor.  A nil anchor moves b to the end.
func (f *Function) MoveBlockBefore(b, anchor *BasicBlock) {
	i := f.BlockIndex(b)
	if i < 0 || b == anchor {
		return
	}

	f.Blocks = append(f.Blocks[:i], f.Blocks[i+1:]...)
	f.spliceBlockBefore(b, anchor)
}

// spliceBlockBefore links b into the block list immediately before anchor,
// or at the end if anchor is nil.
func (f *Function) spliceBlockBefore(b, anchor *BasicBlock) {
	if anchor == nil {
		f.Blocks = append(f.Blocks, b)
		return
	}

	i := f.BlockIndex(anchor)

	f.Blocks = append(f.Blocks, nil)
	copy(f.Blocks[i+1:], f.Blocks[i:])
	f.Blocks[i] = b
}

// -----------------------------------------------------------------------------

// SplitBlock splits b at inst: inst and every instruction after it move into
// a fresh block inserted immediately after b in the block list.  No branch
// is added between the two halves; b is left without a terminator.
func (f *Function) SplitBlock(b *BasicBlock, inst *Instruction) *BasicBlock {
	i := b.IndexOf(inst)

	tail := &BasicBlock{Parent: f}
	tail.Instrs = append(tail.Instrs, b.Instrs[i:]...)
	for _, moved := range tail.Instrs {
		moved.Parent = tail
	}

	b.Instrs = b.Instrs[:i:i]

	f.spliceBlockBefore(tail, f.BlockAfter(b))
	return tail
}

// ReplaceAllUses rewrites every operand and block-target argument in the
// function that refers to old so that it refers to new instead.
func (f *Function) ReplaceAllUses(old, new Value) {
	for _, b := range f.Blocks {
		for _, inst := range b.Instrs {
			for i, operand := range inst.Operands {
				if operand == old {
					inst.Operands[i] = new
				}
			}

			for _, target := range inst.Targets {
				for i, arg := range target.Args {
					if arg == old {
						target.Args[i] = new
					}
				}
			}
		}
	}
}

// HasUses returns whether any instruction in the function uses v as an
// operand or block-target argument.
func (f *Function) HasUses(v Value) bool {
	for _, b := range f.Blocks {
		for _, inst := range b.Instrs {
			for _, operand := range inst.Operands {
				if operand == v {
					return true
				}
			}

			for _, target := range inst.Targets {
				for _, arg := range target.Args {
					if arg == v {
						return true
					}
				}
			}
		}
	}

	return false
}

// -----------------------------------------------------------------------------

// ReversePostorder returns the function's blocks reachable from the entry in
// reverse postorder: the entry block first, every block before all of its
// dominated successors.
func (f *Function) ReversePostorder() []*BasicBlock {
	entry := f.EntryBlock()
	if entry == nil {
		return nil
	}

	var postorder []*BasicBlock
	visited := make(map[*BasicBlock]bool)

	var visit func(b *BasicBlock)
	visit = func(b *BasicBlock) {
		visited[b] = true

		for _, succ := range b.Successors() {
			if !visited[succ] {
				visit(succ)
			}
		}

		postorder = append(postorder, b)
	}
	visit(entry)

	for i, j := 0, len(postorder)-1; i < j; i, j = i+1, j-1 {
		postorder[i], postorder[j] = postorder[j], postorder[i]
	}

	return postorder
}
