package lir

// Builder constructs instructions at a movable insertion point within a
// function.  The location and debug scope applied to new instructions are
// part of the builder's state: callers set them once and emit freely.
type Builder struct {
	// Fn is the function being built into.
	Fn *Function

	// The current insertion point: new instructions are inserted into block
	// at index idx, and idx advances past each inserted instruction.
	block *BasicBlock
	idx   int

	// loc and scope are attached to every created instruction.
	loc   Location
	scope *DebugScope
}

// NewBuilder creates a builder for f with no insertion point.
func NewBuilder(f *Function) *Builder {
	return &Builder{Fn: f}
}

// SetInsertionPoint places the insertion point within block at index i.
func (bld *Builder) SetInsertionPoint(block *BasicBlock, i int) {
	bld.block = block
	bld.idx = i
}

// SetInsertionPointBefore places the insertion point immediately before
// inst within its block.
func (bld *Builder) SetInsertionPointBefore(inst *Instruction) {
	bld.block = inst.Parent
	bld.idx = inst.Parent.IndexOf(inst)
}

// SetInsertionPointAtEnd places the insertion point after the last
// instruction of block.
func (bld *Builder) SetInsertionPointAtEnd(block *BasicBlock) {
	bld.block = block
	bld.idx = len(block.Instrs)
}

// SetLocation sets the source location attached to created instructions.
func (bld *Builder) SetLocation(loc Location) {
	bld.loc = loc
}

// SetScope sets the debug scope attached to created instructions.
func (bld *Builder) SetScope(scope *DebugScope) {
	bld.scope = scope
}

// Scope returns the debug scope currently attached to created instructions.
func (bld *Builder) Scope() *DebugScope {
	return bld.scope
}

// Insert places a fully-formed instruction at the insertion point, stamping
// it with the builder's current location and scope, and advances the point.
func (bld *Builder) Insert(inst *Instruction) *Instruction {
	inst.Loc = bld.loc
	inst.Scope = bld.scope

	bld.block.Insert(bld.idx, inst)
	bld.idx++

	return inst
}

/* -------------------------------------------------------------------------- */

// CreateBranch creates an unconditional branch to target passing args to its
// block parameters.
func (bld *Builder) CreateBranch(target *BasicBlock, args ...Value) *Instruction {
	return bld.Insert(&Instruction{
		Op:      OpBranch,
		Targets: []BlockTarget{{Block: target, Args: args}},
	})
}

// CreateCondBranch creates a conditional branch on cond to the given targets.
func (bld *Builder) CreateCondBranch(cond Value, thenTarget, elseTarget BlockTarget) *Instruction {
	return bld.Insert(&Instruction{
		Op:       OpCondBranch,
		Operands: []Value{cond},
		Targets:  []BlockTarget{thenTarget, elseTarget},
	})
}

// CreateReturn creates a return of v.
func (bld *Builder) CreateReturn(v Value) *Instruction {
	return bld.Insert(&Instruction{Op: OpReturn, Operands: []Value{v}})
}

// CreateThrow creates a throw of the error value v.
func (bld *Builder) CreateThrow(v Value) *Instruction {
	return bld.Insert(&Instruction{Op: OpThrow, Operands: []Value{v}})
}

// CreateUnreachable creates an unreachable terminator.
func (bld *Builder) CreateUnreachable() *Instruction {
	return bld.Insert(&Instruction{Op: OpUnreachable})
}

/* -------------------------------------------------------------------------- */

// CreateFunctionRef materializes a reference to callee.
func (bld *Builder) CreateFunctionRef(callee *Function) *Instruction {
	return bld.Insert(&Instruction{
		Op:         OpFunctionRef,
		ResultType: callee.Sig,
		Callee:     callee,
	})
}

// CreateApply creates a direct apply of fn to args yielding resultType.
func (bld *Builder) CreateApply(fn Value, resultType Type, args ...Value) *Instruction {
	return bld.Insert(&Instruction{
		Op:         OpApply,
		ResultType: resultType,
		Operands:   append([]Value{fn}, args...),
	})
}

// CreateTryApply creates a try-apply of fn to args.  The normal block's
// first parameter receives the returned value; the error block's first
// parameter receives the thrown value.
func (bld *Builder) CreateTryApply(fn Value, normal, errorBlock *BasicBlock, args ...Value) *Instruction {
	return bld.Insert(&Instruction{
		Op:       OpTryApply,
		Operands: append([]Value{fn}, args...),
		Targets: []BlockTarget{
			{Block: normal},
			{Block: errorBlock},
		},
	})
}

// CreateBuiltin creates an application of the builtin kind to args.
func (bld *Builder) CreateBuiltin(kind BuiltinKind, resultType Type, args ...Value) *Instruction {
	return bld.Insert(&Instruction{
		Op:         OpBuiltin,
		ResultType: resultType,
		Operands:   args,
		Builtin:    kind,
	})
}

/* -------------------------------------------------------------------------- */

// CreateIntegerLiteral creates an integer literal of the given type.
func (bld *Builder) CreateIntegerLiteral(typ Type, val int64) *Instruction {
	return bld.Insert(&Instruction{Op: OpIntegerLiteral, ResultType: typ, IntValue: val})
}

// CreateFloatLiteral creates a float literal of the given type.
func (bld *Builder) CreateFloatLiteral(typ Type, val float64) *Instruction {
	return bld.Insert(&Instruction{Op: OpFloatLiteral, ResultType: typ, FloatValue: val})
}

// CreateStringLiteral creates a string literal.
func (bld *Builder) CreateStringLiteral(val string) *Instruction {
	return bld.Insert(&Instruction{Op: OpStringLiteral, ResultType: PrimType(PrimString), StrValue: val})
}

// CreateDebugValue creates a debug_value marker tying v to the source-level
// variable named name.
func (bld *Builder) CreateDebugValue(v Value, name string) *Instruction {
	return bld.Insert(&Instruction{Op: OpDebugValue, Operands: []Value{v}, StrValue: name})
}

// CreateDebugValueAddr creates a debug_value_addr marker for the address
// addr of the source-level variable named name.
func (bld *Builder) CreateDebugValueAddr(addr Value, name string) *Instruction {
	return bld.Insert(&Instruction{Op: OpDebugValueAddr, Operands: []Value{addr}, StrValue: name})
}

/* -------------------------------------------------------------------------- */

// CreateBeginAccess creates a begin_access on addr with the given
// enforcement.
func (bld *Builder) CreateBeginAccess(addr Value, enforcement AccessEnforcement) *Instruction {
	return bld.Insert(&Instruction{
		Op:          OpBeginAccess,
		ResultType:  addr.Type(),
		Operands:    []Value{addr},
		Enforcement: enforcement,
	})
}

// CreateEndAccess creates the end_access paired with beginAccess.
func (bld *Builder) CreateEndAccess(beginAccess *Instruction) *Instruction {
	return bld.Insert(&Instruction{Op: OpEndAccess, Operands: []Value{beginAccess}})
}

// CreateLoad creates a load from addr.
func (bld *Builder) CreateLoad(addr Value) *Instruction {
	elemType := Type(nil)
	if at, ok := addr.Type().(AddressType); ok {
		elemType = at.ElemType
	}

	return bld.Insert(&Instruction{Op: OpLoad, ResultType: elemType, Operands: []Value{addr}})
}

// CreateStore creates a store of v to addr.
func (bld *Builder) CreateStore(v, addr Value) *Instruction {
	return bld.Insert(&Instruction{Op: OpStore, Operands: []Value{v, addr}})
}

// CreateMetatype materializes the metatype value of typ.
func (bld *Builder) CreateMetatype(typ MetatypeType) *Instruction {
	return bld.Insert(&Instruction{Op: OpMetatype, ResultType: typ})
}

// CreateTuple creates a tuple aggregation of elems.
func (bld *Builder) CreateTuple(typ TupleType, elems ...Value) *Instruction {
	return bld.Insert(&Instruction{Op: OpTuple, ResultType: typ, Operands: elems})
}
