package inline

import (
	"testing"

	"sable/lir"
)

// newDebugCallee builds a callee whose body carries a debug_value marker and
// a nested lexical scope, so tests can observe marker retention and scope
// stitching.
func newDebugCallee(m *lir.Module) (*lir.Function, *lir.DebugScope) {
	callee := m.NewFunction(
		"traced",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	inner := m.NewScope(lir.Location{File: "test.sbl", Line: 2, Col: 5}, nil, callee.Scope, nil)

	bld := lir.NewBuilder(callee)
	bld.SetScope(inner)
	bld.SetInsertionPointAtEnd(callee.EntryBlock())

	arg := callee.EntryBlock().Params[0]
	bld.CreateDebugValue(arg, "x")
	sum := bld.CreateBuiltin(lir.BuiltinIAdd, i64Type, arg, arg)
	bld.CreateReturn(sum)

	return callee, inner
}

// findOp returns the first instruction with the given opcode anywhere in f,
// or nil.
func findOp(f *lir.Function, op lir.Opcode) *lir.Instruction {
	for _, b := range f.Blocks {
		for _, inst := range b.Instrs {
			if inst.Op == op {
				return inst
			}
		}
	}

	return nil
}

/* -------------------------------------------------------------------------- */

// Mandatory inlining drops debug markers and stamps the mandatory-inlined
// location kind on every instruction it produces.
func TestMandatoryInlineDropsDebugMarkers(t *testing.T) {
	m := lir.NewModule("test")
	callee, _ := newDebugCallee(m)
	caller, site, arg := newCaller(m, callee)

	NewInliner(callee, MandatoryInline).Inline(site, []lir.Value{arg})

	if findOp(caller, lir.OpDebugValue) != nil {
		t.Errorf("expected debug markers to be dropped under mandatory inlining")
	}

	sum := findOp(caller, lir.OpBuiltin)
	if sum == nil {
		t.Fatalf("expected the callee body to be cloned into the caller")
	}

	if sum.Loc.Kind != lir.LocMandatoryInlined {
		t.Errorf("expected a mandatory-inlined location, got kind %d", sum.Loc.Kind)
	}
}

// Performance inlining keeps debug markers and gives cloned instructions a
// stitched scope whose inlined-call-site spine ends at the call site.
func TestPerformanceInlineStitchesScopes(t *testing.T) {
	m := lir.NewModule("test")
	callee, inner := newDebugCallee(m)
	caller, site, arg := newCaller(m, callee)
	siteScope := site.Instruction().Scope

	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})

	dv := findOp(caller, lir.OpDebugValue)
	if dv == nil {
		t.Fatalf("expected debug markers to survive performance inlining")
	}

	if dv.Loc.Kind != lir.LocInlined {
		t.Errorf("expected an inlined location, got kind %d", dv.Loc.Kind)
	}

	stitched := dv.Scope
	if stitched == inner {
		t.Fatalf("expected a fresh stitched scope, not the callee's own")
	}

	// The stitched scope preserves the callee scope's location and lexical
	// parent; only the inlined-call-site back-pointer is rewritten.
	if stitched.Loc != inner.Loc || stitched.ParentScope != inner.ParentScope {
		t.Errorf("expected the stitched scope to mirror the callee scope's spine")
	}

	callSite := stitched.InlinedCallSite
	if callSite == nil {
		t.Fatalf("expected the stitched scope to record its call site")
	}

	// The call-site scope wraps the apply's own scope and carries its
	// location.
	if callSite.ParentScope != siteScope || callSite.Loc != site.Instruction().Loc {
		t.Errorf("expected the call-site scope to point back at the apply")
	}

	// Stitched scopes resolve their owning function through the
	// inlined-call-site spine: the cloned code belongs to the caller.
	if stitched.ParentFunction() != caller {
		t.Errorf("expected the stitched scope to belong to the caller")
	}
}

// Scope stitching is memoized within a step: instructions sharing a callee
// scope share one stitched scope.
func TestInlineScopeMemoization(t *testing.T) {
	m := lir.NewModule("test")
	callee, _ := newDebugCallee(m)
	caller, site, arg := newCaller(m, callee)

	before := m.ScopeCount()
	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})

	dv := findOp(caller, lir.OpDebugValue)
	sum := findOp(caller, lir.OpBuiltin)

	if dv.Scope != sum.Scope {
		t.Errorf("expected instructions sharing a callee scope to share a stitched scope")
	}

	// One call-site scope plus one stitched scope for the callee's inner
	// scope.  The callee root scope is never referenced by an instruction,
	// so it is not stitched.
	if got := m.ScopeCount() - before; got != 2 {
		t.Errorf("expected 2 new scopes, got %d", got)
	}
}

// Nested inlining chains the inlined-call-site spine: re-inlining already
// inlined code extends the chain rather than replacing it.
func TestInlineScopeChaining(t *testing.T) {
	m := lir.NewModule("test")

	callee, _ := newDebugCallee(m)
	mid, midSite, midArg := newCaller(m, callee)
	NewInliner(callee, PerformanceInline).Inline(midSite, []lir.Value{midArg})

	midSite.Parent().Remove(midSite.Instruction())

	// Now inline mid, whose body contains the already-inlined callee code,
	// into an outer caller.
	outer := m.NewFunction(
		"outer",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	bld := lir.NewBuilder(outer)
	bld.SetScope(outer.Scope)
	bld.SetInsertionPointAtEnd(outer.EntryBlock())
	ref := bld.CreateFunctionRef(mid)
	call := bld.CreateApply(ref, i64Type, outer.EntryBlock().Params[0])
	bld.CreateReturn(call)

	NewInliner(mid, PerformanceInline).Inline(lir.ApplySiteFor(call), []lir.Value{outer.EntryBlock().Params[0]})

	sum := findOp(outer, lir.OpBuiltin)
	if sum == nil {
		t.Fatalf("expected the doubly-inlined body in the outer caller")
	}

	// Walk the inlined-call-site spine: callee-at-mid, then mid-at-outer.
	depth := 0
	for s := sum.Scope.InlinedCallSite; s != nil; s = s.InlinedCallSite {
		depth++
	}

	if depth != 2 {
		t.Errorf("expected an inlined-call-site chain of depth 2, got %d", depth)
	}

	if sum.Scope.ParentFunction() != outer {
		t.Errorf("expected the doubly-stitched scope to belong to the outer caller")
	}
}

/* -------------------------------------------------------------------------- */

// A call site with no debug scope falls back to the caller's root scope by
// default, and aborts under strict scope checking.
func TestInlineScopelessCallSite(t *testing.T) {
	m := lir.NewModule("test")
	callee, _ := newDebugCallee(m)

	newBareCaller := func(name string) (*lir.Function, lir.FullApplySite) {
		caller := m.NewFunction(
			name,
			lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
			lir.RepNative,
			testLoc,
		)

		// No SetScope: the apply carries a nil debug scope.
		bld := lir.NewBuilder(caller)
		bld.SetInsertionPointAtEnd(caller.EntryBlock())
		ref := bld.CreateFunctionRef(callee)
		call := bld.CreateApply(ref, i64Type, caller.EntryBlock().Params[0])
		bld.CreateReturn(call)

		return caller, lir.ApplySiteFor(call)
	}

	caller, site := newBareCaller("tolerant")
	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{caller.EntryBlock().Params[0]})

	dv := findOp(caller, lir.OpDebugValue)
	if dv.Scope.InlinedCallSite.ParentScope != caller.Scope {
		t.Errorf("expected the call-site scope to fall back to the caller's root scope")
	}

	strict, strictSite := newBareCaller("strict")

	in := NewInliner(callee, PerformanceInline)
	in.SetStrictScopes(true)

	expectICE(t, func() {
		in.Inline(strictSite, []lir.Value{strict.EntryBlock().Params[0]})
	})
}
