package lir

import (
	"strings"
	"testing"
)

func TestFunctionRepr(t *testing.T) {
	m := NewModule("test")
	f := m.NewFunction(
		"double",
		FuncType{ParamTypes: []Type{PrimType(PrimI64)}, ResultType: PrimType(PrimI64)},
		RepNative,
		Location{File: "test.sbl", Line: 1, Col: 1},
	)

	entry := f.EntryBlock()
	exit := f.NewBlock()
	exit.AddParam(PrimType(PrimI64), OwnershipOwned)

	bld := NewBuilder(f)
	bld.SetScope(f.Scope)

	bld.SetInsertionPointAtEnd(entry)
	sum := bld.CreateBuiltin(BuiltinIAdd, PrimType(PrimI64), entry.Params[0], entry.Params[0])
	bld.CreateBranch(exit, sum)

	bld.SetInsertionPointAtEnd(exit)
	bld.CreateReturn(exit.Params[0])

	repr := f.Repr()

	for _, want := range []string{
		"func @double : (i64) i64 {",
		"bb0(%0 : @owned i64):",
		"bb1(%1 : @owned i64):",
		`builtin "iadd" %0, %0`,
		"br bb1(%2)",
		"return %1",
	} {
		if !strings.Contains(repr, want) {
			t.Errorf("expected rendering to contain %q; got:\n%s", want, repr)
		}
	}
}

func TestLocationRepr(t *testing.T) {
	loc := Location{File: "main.sbl", Line: 10, Col: 3}

	if got := loc.Repr(); got != "main.sbl:10:3" {
		t.Errorf("unexpected regular location rendering: %s", got)
	}

	if got := InlinedLocation(loc).Repr(); got != "main.sbl:10:3(inlined)" {
		t.Errorf("unexpected inlined location rendering: %s", got)
	}

	if got := MandatoryInlinedLocation(loc).Repr(); got != "main.sbl:10:3(mandatory-inlined)" {
		t.Errorf("unexpected mandatory-inlined location rendering: %s", got)
	}
}
