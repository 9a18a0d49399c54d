package lir

// Table of opcode mnemonics, indexed by opcode.
var opcodeNames = [...]string{
	OpIntegerLiteral:      "integer_literal",
	OpFloatLiteral:        "float_literal",
	OpStringLiteral:       "string_literal",
	OpConstStringLiteral:  "const_string_literal",
	OpDebugValue:          "debug_value",
	OpDebugValueAddr:      "debug_value_addr",
	OpFixLifetime:         "fix_lifetime",
	OpEndLifetime:         "end_lifetime",
	OpBeginBorrow:         "begin_borrow",
	OpEndBorrow:           "end_borrow",
	OpEndBorrowArgument:   "end_borrow_argument",
	OpMarkDependence:      "mark_dependence",
	OpUncheckedOwnershipConversion: "unchecked_ownership_conversion",
	OpFunctionRef:         "function_ref",
	OpAllocGlobal:         "alloc_global",
	OpGlobalAddr:          "global_addr",
	OpGlobalValue:         "global_value",
	OpTupleElementAddr:    "tuple_element_addr",
	OpStructElementAddr:   "struct_element_addr",
	OpProjectBlockStorage: "project_block_storage",
	OpTuple:               "tuple",
	OpStruct:              "struct",
	OpTupleExtract:        "tuple_extract",
	OpStructExtract:       "struct_extract",
	OpAddressToPointer:    "address_to_pointer",
	OpPointerToAddress:    "pointer_to_address",
	OpUncheckedRefCast:    "unchecked_ref_cast",
	OpUncheckedRefCastAddr:    "unchecked_ref_cast_addr",
	OpUncheckedAddrCast:       "unchecked_addr_cast",
	OpUncheckedTrivialBitCast: "unchecked_trivial_bit_cast",
	OpUncheckedBitwiseCast:    "unchecked_bitwise_cast",
	OpRawPointerToRef:         "raw_pointer_to_ref",
	OpRefToRawPointer:         "ref_to_raw_pointer",
	OpUpcast:                  "upcast",
	OpThinToThickFunction:     "thin_to_thick_function",
	OpThinFunctionToPointer:   "thin_function_to_pointer",
	OpPointerToThinFunction:   "pointer_to_thin_function",
	OpConvertFunction:         "convert_function",
	OpBridgeObjectToWord:      "bridge_object_to_word",
	OpBeginAccess:             "begin_access",
	OpEndAccess:               "end_access",
	OpBeginUnpairedAccess:     "begin_unpaired_access",
	OpEndUnpairedAccess:       "end_unpaired_access",
	OpMetatype:                "metatype",
	OpValueMetatype:           "value_metatype",
	OpExistentialMetatype:     "existential_metatype",
	OpThickToForeignMetatype:  "thick_to_foreign_metatype",
	OpForeignToThickMetatype:  "foreign_to_thick_metatype",
	OpForeignMetatypeToObject: "foreign_metatype_to_object",
	OpForeignExistentialMetatypeToObject: "foreign_existential_metatype_to_object",
	OpForeignProtocolRef:      "foreign_protocol_ref",
	OpBridgeObjectToRef:       "bridge_object_to_ref",
	OpRefToBridgeObject:       "ref_to_bridge_object",
	OpApply:                   "apply",
	OpPartialApply:            "partial_apply",
	OpBuiltin:                 "builtin",
	OpAllocStack:              "alloc_stack",
	OpAllocRef:                "alloc_ref",
	OpAllocRefDynamic:         "alloc_ref_dynamic",
	OpAllocBox:                "alloc_box",
	OpAllocExistentialBox:     "alloc_existential_box",
	OpAllocValueBuffer:        "alloc_value_buffer",
	OpDeallocStack:            "dealloc_stack",
	OpDeallocRef:              "dealloc_ref",
	OpDeallocPartialRef:       "dealloc_partial_ref",
	OpDeallocBox:              "dealloc_box",
	OpDeallocExistentialBox:   "dealloc_existential_box",
	OpDeallocValueBuffer:      "dealloc_value_buffer",
	OpLoad:                    "load",
	OpLoadBorrow:              "load_borrow",
	OpLoadUnowned:             "load_unowned",
	OpLoadWeak:                "load_weak",
	OpStore:                   "store",
	OpStoreBorrow:             "store_borrow",
	OpStoreUnowned:            "store_unowned",
	OpStoreWeak:               "store_weak",
	OpAssign:                  "assign",
	OpCopyAddr:                "copy_addr",
	OpDestroyAddr:             "destroy_addr",
	OpBindMemory:              "bind_memory",
	OpIndexAddr:               "index_addr",
	OpTailAddr:                "tail_addr",
	OpIndexRawPointer:         "index_raw_pointer",
	OpInitBlockStorageHeader:  "init_block_storage_header",
	OpStrongRetain:            "strong_retain",
	OpStrongRelease:           "strong_release",
	OpStrongRetainUnowned:     "strong_retain_unowned",
	OpStrongPin:               "strong_pin",
	OpStrongUnpin:             "strong_unpin",
	OpUnownedRetain:           "unowned_retain",
	OpUnownedRelease:          "unowned_release",
	OpRetainValue:             "retain_value",
	OpRetainValueAddr:         "retain_value_addr",
	OpReleaseValue:            "release_value",
	OpReleaseValueAddr:        "release_value_addr",
	OpUnmanagedRetainValue:    "unmanaged_retain_value",
	OpUnmanagedReleaseValue:   "unmanaged_release_value",
	OpUnmanagedAutoreleaseValue: "unmanaged_autorelease_value",
	OpAutoreleaseValue:        "autorelease_value",
	OpCopyValue:               "copy_value",
	OpCopyUnownedValue:        "copy_unowned_value",
	OpDestroyValue:            "destroy_value",
	OpCopyBlock:               "copy_block",
	OpSetDeallocating:         "set_deallocating",
	OpIsUnique:                "is_unique",
	OpIsUniqueOrPinned:        "is_unique_or_pinned",
	OpRefToUnmanaged:          "ref_to_unmanaged",
	OpUnmanagedToRef:          "unmanaged_to_ref",
	OpRefToUnowned:            "ref_to_unowned",
	OpUnownedToRef:            "unowned_to_ref",
	OpRefElementAddr:          "ref_element_addr",
	OpRefTailAddr:             "ref_tail_addr",
	OpClassMethod:             "class_method",
	OpSuperMethod:             "super_method",
	OpWitnessMethod:           "witness_method",
	OpDynamicMethod:           "dynamic_method",
	OpEnum:                    "enum",
	OpUncheckedEnumData:       "unchecked_enum_data",
	OpInitEnumDataAddr:        "init_enum_data_addr",
	OpUncheckedTakeEnumDataAddr: "unchecked_take_enum_data_addr",
	OpInjectEnumAddr:          "inject_enum_addr",
	OpSelectEnum:              "select_enum",
	OpSelectEnumAddr:          "select_enum_addr",
	OpSelectValue:             "select_value",
	OpInitExistentialAddr:     "init_existential_addr",
	OpInitExistentialValue:    "init_existential_value",
	OpInitExistentialMetatype: "init_existential_metatype",
	OpInitExistentialRef:      "init_existential_ref",
	OpDeinitExistentialAddr:   "deinit_existential_addr",
	OpDeinitExistentialValue:  "deinit_existential_value",
	OpOpenExistentialAddr:     "open_existential_addr",
	OpOpenExistentialBox:      "open_existential_box",
	OpOpenExistentialBoxValue: "open_existential_box_value",
	OpOpenExistentialMetatype: "open_existential_metatype",
	OpOpenExistentialRef:      "open_existential_ref",
	OpOpenExistentialValue:    "open_existential_value",
	OpUnconditionalCheckedCast:      "unconditional_checked_cast",
	OpUnconditionalCheckedCastAddr:  "unconditional_checked_cast_addr",
	OpUnconditionalCheckedCastValue: "unconditional_checked_cast_value",
	OpCondFail:                "cond_fail",
	OpIsNonnull:               "is_nonnull",
	OpKeyPath:                 "key_path",
	OpReturn:                  "return",
	OpThrow:                   "throw",
	OpUnreachable:             "unreachable",
	OpBranch:                  "br",
	OpCondBranch:              "cond_br",
	OpSwitchValue:             "switch_value",
	OpSwitchEnum:              "switch_enum",
	OpSwitchEnumAddr:          "switch_enum_addr",
	OpDynamicMethodBranch:     "dynamic_method_br",
	OpCheckedCastBranch:       "checked_cast_br",
	OpCheckedCastValueBranch:  "checked_cast_value_br",
	OpCheckedCastAddrBranch:   "checked_cast_addr_br",
	OpTryApply:                "try_apply",
	OpMarkUninitialized:       "mark_uninitialized",
	OpMarkUninitializedBehavior: "mark_uninitialized_behavior",
	OpMarkFunctionEscape:      "mark_function_escape",
	OpObject:                  "object",
}

func (op Opcode) Repr() string {
	return opcodeNames[op]
}
