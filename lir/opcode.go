package lir

// Opcode identifies the operation performed by an instruction.  The opcode
// set is closed: every instruction kind admitted by the LIR appears in this
// enumeration, which lets consumers (the printer, the inline cost model)
// discharge totality with a single switch.
type Opcode int

// Enumeration of LIR opcodes.
const (
	// Literals.
	OpIntegerLiteral = iota
	OpFloatLiteral
	OpStringLiteral
	OpConstStringLiteral

	// Debug markers.
	OpDebugValue
	OpDebugValueAddr

	// Lifetime and ownership markers.
	OpFixLifetime
	OpEndLifetime
	OpBeginBorrow
	OpEndBorrow
	OpEndBorrowArgument
	OpMarkDependence
	OpUncheckedOwnershipConversion

	// Function and global references.
	OpFunctionRef
	OpAllocGlobal
	OpGlobalAddr
	OpGlobalValue

	// Typed projections (GEP-like).
	OpTupleElementAddr
	OpStructElementAddr
	OpProjectBlockStorage

	// Aggregate construction and extraction.
	OpTuple
	OpStruct
	OpTupleExtract
	OpStructExtract

	// Unchecked casts.
	OpAddressToPointer
	OpPointerToAddress
	OpUncheckedRefCast
	OpUncheckedRefCastAddr
	OpUncheckedAddrCast
	OpUncheckedTrivialBitCast
	OpUncheckedBitwiseCast
	OpRawPointerToRef
	OpRefToRawPointer
	OpUpcast
	OpThinToThickFunction
	OpThinFunctionToPointer
	OpPointerToThinFunction
	OpConvertFunction
	OpBridgeObjectToWord

	// Access enforcement.
	OpBeginAccess
	OpEndAccess
	OpBeginUnpairedAccess
	OpEndUnpairedAccess

	// Metatypes and protocol descriptors.
	OpMetatype
	OpValueMetatype
	OpExistentialMetatype
	OpThickToForeignMetatype
	OpForeignToThickMetatype
	OpForeignMetatypeToObject
	OpForeignExistentialMetatypeToObject
	OpForeignProtocolRef

	// Bridge-object conversions.
	OpBridgeObjectToRef
	OpRefToBridgeObject

	// Calls.
	OpApply
	OpPartialApply
	OpBuiltin

	// Allocation.
	OpAllocStack
	OpAllocRef
	OpAllocRefDynamic
	OpAllocBox
	OpAllocExistentialBox
	OpAllocValueBuffer

	// Deallocation.
	OpDeallocStack
	OpDeallocRef
	OpDeallocPartialRef
	OpDeallocBox
	OpDeallocExistentialBox
	OpDeallocValueBuffer

	// Memory operations.
	OpLoad
	OpLoadBorrow
	OpLoadUnowned
	OpLoadWeak
	OpStore
	OpStoreBorrow
	OpStoreUnowned
	OpStoreWeak
	OpAssign
	OpCopyAddr
	OpDestroyAddr
	OpBindMemory
	OpIndexAddr
	OpTailAddr
	OpIndexRawPointer
	OpInitBlockStorageHeader

	// Reference counting.
	OpStrongRetain
	OpStrongRelease
	OpStrongRetainUnowned
	OpStrongPin
	OpStrongUnpin
	OpUnownedRetain
	OpUnownedRelease
	OpRetainValue
	OpRetainValueAddr
	OpReleaseValue
	OpReleaseValueAddr
	OpUnmanagedRetainValue
	OpUnmanagedReleaseValue
	OpUnmanagedAutoreleaseValue
	OpAutoreleaseValue
	OpCopyValue
	OpCopyUnownedValue
	OpDestroyValue
	OpCopyBlock
	OpSetDeallocating
	OpIsUnique
	OpIsUniqueOrPinned

	// Reference conversions.
	OpRefToUnmanaged
	OpUnmanagedToRef
	OpRefToUnowned
	OpUnownedToRef
	OpRefElementAddr
	OpRefTailAddr

	// Dynamic dispatch.
	OpClassMethod
	OpSuperMethod
	OpWitnessMethod
	OpDynamicMethod

	// Enums.
	OpEnum
	OpUncheckedEnumData
	OpInitEnumDataAddr
	OpUncheckedTakeEnumDataAddr
	OpInjectEnumAddr
	OpSelectEnum
	OpSelectEnumAddr
	OpSelectValue

	// Existentials.
	OpInitExistentialAddr
	OpInitExistentialValue
	OpInitExistentialMetatype
	OpInitExistentialRef
	OpDeinitExistentialAddr
	OpDeinitExistentialValue
	OpOpenExistentialAddr
	OpOpenExistentialBox
	OpOpenExistentialBoxValue
	OpOpenExistentialMetatype
	OpOpenExistentialRef
	OpOpenExistentialValue

	// Checked casts and miscellaneous.
	OpUnconditionalCheckedCast
	OpUnconditionalCheckedCastAddr
	OpUnconditionalCheckedCastValue
	OpCondFail
	OpIsNonnull
	OpKeyPath

	// Terminators.
	OpReturn
	OpThrow
	OpUnreachable
	OpBranch
	OpCondBranch
	OpSwitchValue
	OpSwitchEnum
	OpSwitchEnumAddr
	OpDynamicMethodBranch
	OpCheckedCastBranch
	OpCheckedCastValueBranch
	OpCheckedCastAddrBranch
	OpTryApply

	// Pre-canonical markers.  These exist only before the IR is
	// canonicalized and are rejected by the cost model.
	OpMarkUninitialized
	OpMarkUninitializedBehavior
	OpMarkFunctionEscape

	// Object literals.  Only valid at module scope, never in a function.
	OpObject

	// numOpcodes is the number of opcodes; it must remain last.
	numOpcodes
)

// NumOpcodes returns the total number of LIR opcodes.
func NumOpcodes() int {
	return int(numOpcodes)
}

// IsTerminator returns whether op is a block terminator.
func IsTerminator(op Opcode) bool {
	switch op {
	case OpReturn, OpThrow, OpUnreachable, OpBranch, OpCondBranch,
		OpSwitchValue, OpSwitchEnum, OpSwitchEnumAddr, OpDynamicMethodBranch,
		OpCheckedCastBranch, OpCheckedCastValueBranch, OpCheckedCastAddrBranch,
		OpTryApply:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

// AccessEnforcement must be one of the enumerated access enforcement kinds.
type AccessEnforcement int

// Enumeration of access enforcement kinds.
const (
	// EnforcementUnknown is a placeholder used before enforcement has been
	// computed; it is never valid on canonical IR.
	EnforcementUnknown = iota

	EnforcementStatic
	EnforcementDynamic
	EnforcementUnsafe
)

func (ae AccessEnforcement) Repr() string {
	switch ae {
	case EnforcementStatic:
		return "static"
	case EnforcementDynamic:
		return "dynamic"
	case EnforcementUnsafe:
		return "unsafe"
	default: // EnforcementUnknown
		return "unknown"
	}
}

// -----------------------------------------------------------------------------

// BuiltinKind identifies which builtin function a builtin instruction calls.
type BuiltinKind int

// Enumeration of builtin kinds.
const (
	// BuiltinExpect is the branch-prediction hint intrinsic.
	BuiltinExpect = iota

	// BuiltinOnFastPath marks the fast path of a speculated operation.
	BuiltinOnFastPath

	// Representative "real work" builtins.
	BuiltinIAdd
	BuiltinISub
	BuiltinIMul
	BuiltinICmpEq
	BuiltinTrap
)

func (bk BuiltinKind) Repr() string {
	switch bk {
	case BuiltinExpect:
		return "expect"
	case BuiltinOnFastPath:
		return "on_fast_path"
	case BuiltinIAdd:
		return "iadd"
	case BuiltinISub:
		return "isub"
	case BuiltinIMul:
		return "imul"
	case BuiltinICmpEq:
		return "icmp_eq"
	default: // BuiltinTrap
		return "trap"
	}
}
