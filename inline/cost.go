package inline

import (
	"sable/lir"
	"sable/report"
)

// InlineCost is the coarse per-instruction cost classification consumed by
// inlining heuristics to bound code growth.  For now it assumes every LIR
// instruction lowers to roughly one machine instruction, which is of course
// very much so not true.
type InlineCost int

// Enumeration of inline costs.
const (
	CostFree = iota
	CostExpensive
)

func (c InlineCost) Repr() string {
	if c == CostFree {
		return "free"
	}

	return "expensive"
}

// enforcementCost classifies an access by its enforcement: dynamic
// enforcement performs runtime bookkeeping, static and unsafe enforcement
// compile away entirely.
func enforcementCost(enforcement lir.AccessEnforcement) InlineCost {
	switch enforcement {
	case lir.EnforcementUnknown:
		report.ICE("evaluating cost of access with unknown enforcement")
		return CostExpensive
	case lir.EnforcementDynamic:
		return CostExpensive
	default: // static, unsafe
		return CostFree
	}
}

// beginAccessOf resolves the begin_access an end_access is paired with.
func beginAccessOf(endAccess *lir.Instruction) *lir.Instruction {
	if len(endAccess.Operands) == 0 {
		report.ICE("end_access is not paired with a begin_access")
	}

	begin, ok := endAccess.Operands[0].(*lir.Instruction)
	if !ok || begin.Op != lir.OpBeginAccess {
		report.ICE("end_access is not paired with a begin_access")
	}

	return begin
}

// InstructionInlineCost classifies one value's defining construct as free or
// expensive for inlining purposes.  It is defined only on canonical
// in-function instructions: block parameters, undef sentinels, pre-canonical
// markers, and module-level object literals are precondition violations.
//
// The switch below is exhaustive over the closed opcode set; an opcode it
// does not classify is an unhandled kind and aborts.
func InstructionInlineCost(v lir.Value) InlineCost {
	inst, ok := v.(*lir.Instruction)
	if !ok {
		report.ICE("only instructions may be given an inline cost")
	}

	switch inst.Op {
	case lir.OpIntegerLiteral,
		lir.OpFloatLiteral,
		lir.OpStringLiteral,
		lir.OpConstStringLiteral,
		lir.OpDebugValue,
		lir.OpDebugValueAddr,
		lir.OpFixLifetime,
		lir.OpEndLifetime,
		lir.OpBeginBorrow,
		lir.OpEndBorrow,
		lir.OpEndBorrowArgument,
		lir.OpMarkDependence,
		lir.OpUncheckedOwnershipConversion,
		lir.OpFunctionRef,
		lir.OpAllocGlobal,
		lir.OpGlobalAddr:
		return CostFree

	// Typed GEPs are free.
	case lir.OpTupleElementAddr,
		lir.OpStructElementAddr,
		lir.OpProjectBlockStorage:
		return CostFree

	// Aggregates are exploded during lowering; these are effectively no-ops.
	case lir.OpTuple,
		lir.OpStruct,
		lir.OpTupleExtract,
		lir.OpStructExtract:
		return CostFree

	// Unchecked casts are free.
	case lir.OpAddressToPointer,
		lir.OpPointerToAddress,
		lir.OpUncheckedRefCast,
		lir.OpUncheckedRefCastAddr,
		lir.OpUncheckedAddrCast,
		lir.OpUncheckedTrivialBitCast,
		lir.OpUncheckedBitwiseCast,
		lir.OpRawPointerToRef,
		lir.OpRefToRawPointer,
		lir.OpUpcast,
		lir.OpThinToThickFunction,
		lir.OpThinFunctionToPointer,
		lir.OpPointerToThinFunction,
		lir.OpConvertFunction,
		lir.OpBridgeObjectToWord:
		return CostFree

	// Access instructions are free unless they are dynamically enforced.
	case lir.OpBeginAccess:
		return enforcementCost(inst.Enforcement)
	case lir.OpEndAccess:
		return enforcementCost(beginAccessOf(inst).Enforcement)
	case lir.OpBeginUnpairedAccess, lir.OpEndUnpairedAccess:
		return enforcementCost(inst.Enforcement)

	// TODO: These are free if the metatype is for a native class.
	case lir.OpThickToForeignMetatype,
		lir.OpForeignToThickMetatype:
		return CostExpensive

	// Bridge-object conversions imply a masking operation: cheap but real.
	case lir.OpBridgeObjectToRef,
		lir.OpRefToBridgeObject:
		return CostExpensive

	case lir.OpMetatype:
		// Thin metatypes are always free; thick ones may require generic or
		// lazy instantiation.
		if mt, ok := inst.ResultType.(lir.MetatypeType); ok && mt.Rep == lir.MetatypeThin {
			return CostFree
		}

		return CostExpensive

	// Protocol descriptor references are free.
	case lir.OpForeignProtocolRef:
		return CostFree

	// Metatype-to-object conversions are free.
	case lir.OpForeignMetatypeToObject,
		lir.OpForeignExistentialMetatypeToObject:
		return CostFree

	// Return, throw, and unreachable are free.
	case lir.OpReturn,
		lir.OpThrow,
		lir.OpUnreachable:
		return CostFree

	case lir.OpApply,
		lir.OpTryApply,
		lir.OpPartialApply,
		lir.OpAllocStack,
		lir.OpAllocRef,
		lir.OpAllocRefDynamic,
		lir.OpAllocBox,
		lir.OpAllocExistentialBox,
		lir.OpAllocValueBuffer,
		lir.OpDeallocStack,
		lir.OpDeallocRef,
		lir.OpDeallocPartialRef,
		lir.OpDeallocBox,
		lir.OpDeallocExistentialBox,
		lir.OpDeallocValueBuffer,
		lir.OpLoad,
		lir.OpLoadBorrow,
		lir.OpLoadUnowned,
		lir.OpLoadWeak,
		lir.OpStore,
		lir.OpStoreBorrow,
		lir.OpStoreUnowned,
		lir.OpStoreWeak,
		lir.OpAssign,
		lir.OpCopyAddr,
		lir.OpDestroyAddr,
		lir.OpBindMemory,
		lir.OpIndexAddr,
		lir.OpTailAddr,
		lir.OpIndexRawPointer,
		lir.OpInitBlockStorageHeader,
		lir.OpStrongRetain,
		lir.OpStrongRelease,
		lir.OpStrongRetainUnowned,
		lir.OpStrongPin,
		lir.OpStrongUnpin,
		lir.OpUnownedRetain,
		lir.OpUnownedRelease,
		lir.OpRetainValue,
		lir.OpRetainValueAddr,
		lir.OpReleaseValue,
		lir.OpReleaseValueAddr,
		lir.OpUnmanagedRetainValue,
		lir.OpUnmanagedReleaseValue,
		lir.OpUnmanagedAutoreleaseValue,
		lir.OpAutoreleaseValue,
		lir.OpCopyValue,
		lir.OpCopyUnownedValue,
		lir.OpDestroyValue,
		lir.OpCopyBlock,
		lir.OpSetDeallocating,
		lir.OpIsUnique,
		lir.OpIsUniqueOrPinned,
		lir.OpRefToUnmanaged,
		lir.OpUnmanagedToRef,
		lir.OpRefToUnowned,
		lir.OpUnownedToRef,
		lir.OpRefElementAddr,
		lir.OpRefTailAddr,
		lir.OpClassMethod,
		lir.OpSuperMethod,
		lir.OpWitnessMethod,
		lir.OpDynamicMethod,
		lir.OpEnum,
		lir.OpUncheckedEnumData,
		lir.OpInitEnumDataAddr,
		lir.OpUncheckedTakeEnumDataAddr,
		lir.OpInjectEnumAddr,
		lir.OpSelectEnum,
		lir.OpSelectEnumAddr,
		lir.OpSelectValue,
		lir.OpInitExistentialAddr,
		lir.OpInitExistentialValue,
		lir.OpInitExistentialMetatype,
		lir.OpInitExistentialRef,
		lir.OpDeinitExistentialAddr,
		lir.OpDeinitExistentialValue,
		lir.OpOpenExistentialAddr,
		lir.OpOpenExistentialBox,
		lir.OpOpenExistentialBoxValue,
		lir.OpOpenExistentialMetatype,
		lir.OpOpenExistentialRef,
		lir.OpOpenExistentialValue,
		lir.OpUnconditionalCheckedCast,
		lir.OpUnconditionalCheckedCastAddr,
		lir.OpUnconditionalCheckedCastValue,
		lir.OpCondFail,
		lir.OpIsNonnull,
		lir.OpKeyPath,
		lir.OpValueMetatype,
		lir.OpExistentialMetatype,
		lir.OpGlobalValue,
		lir.OpBranch,
		lir.OpCondBranch,
		lir.OpSwitchValue,
		lir.OpSwitchEnum,
		lir.OpSwitchEnumAddr,
		lir.OpDynamicMethodBranch,
		lir.OpCheckedCastBranch,
		lir.OpCheckedCastValueBranch,
		lir.OpCheckedCastAddrBranch:
		return CostExpensive

	case lir.OpBuiltin:
		// Expect hints and the fast-path marker are free instructions.
		if inst.Builtin == lir.BuiltinExpect || inst.Builtin == lir.BuiltinOnFastPath {
			return CostFree
		}

		return CostExpensive

	case lir.OpMarkUninitialized,
		lir.OpMarkUninitializedBehavior,
		lir.OpMarkFunctionEscape:
		report.ICE("%s is not valid in canonical IR", inst.Op.Repr())

	case lir.OpObject:
		report.ICE("object literals are not valid in a function")
	}

	report.ICE("unhandled opcode %s in inline cost model", inst.Op.Repr())
	return CostExpensive
}
