package inline

import (
	"os"
	"testing"

	"sable/lir"
	"sable/report"
)

func TestMain(m *testing.M) {
	report.InitReporter(report.LogLevelSilent)
	os.Exit(m.Run())
}

var (
	i64Type  = lir.PrimType(lir.PrimI64)
	boolType = lir.PrimType(lir.PrimBool)
	testLoc  = lir.Location{File: "test.sbl", Line: 1, Col: 1}
)

// newCaller builds a caller function with an i64 parameter whose entry block
// applies callee to that parameter and returns the result.  It returns the
// caller, the apply site, and the entry parameter.
func newCaller(m *lir.Module, callee *lir.Function) (*lir.Function, lir.FullApplySite, *lir.BlockParam) {
	caller := m.NewFunction(
		"caller",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	entry := caller.EntryBlock()
	arg := entry.Params[0]

	bld := lir.NewBuilder(caller)
	bld.SetLocation(lir.Location{File: "test.sbl", Line: 5, Col: 9})
	bld.SetScope(caller.Scope)
	bld.SetInsertionPointAtEnd(entry)

	ref := bld.CreateFunctionRef(callee)
	call := bld.CreateApply(ref, i64Type, arg)
	bld.CreateReturn(call)

	return caller, lir.ApplySiteFor(call), arg
}

// expectICE fails the test unless fn aborts with an internal error.
func expectICE(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		if x := recover(); x != nil {
			if _, ok := x.(*report.InternalError); !ok {
				panic(x)
			}
		} else {
			t.Errorf("expected an internal error")
		}
	}()

	fn()
}

// blockDominators computes the dominator sets of f's reachable blocks with
// the standard iterative dataflow.
func blockDominators(f *lir.Function) map[*lir.BasicBlock]map[*lir.BasicBlock]bool {
	rpo := f.ReversePostorder()

	preds := make(map[*lir.BasicBlock][]*lir.BasicBlock)
	for _, b := range rpo {
		for _, succ := range b.Successors() {
			preds[succ] = append(preds[succ], b)
		}
	}

	dom := make(map[*lir.BasicBlock]map[*lir.BasicBlock]bool)
	dom[rpo[0]] = map[*lir.BasicBlock]bool{rpo[0]: true}

	for _, b := range rpo[1:] {
		all := make(map[*lir.BasicBlock]bool)
		for _, d := range rpo {
			all[d] = true
		}

		dom[b] = all
	}

	for changed := true; changed; {
		changed = false

		for _, b := range rpo[1:] {
			next := make(map[*lir.BasicBlock]bool)

			for i, p := range preds[b] {
				if i == 0 {
					for d := range dom[p] {
						next[d] = true
					}

					continue
				}

				for d := range next {
					if !dom[p][d] {
						delete(next, d)
					}
				}
			}

			next[b] = true

			if len(next) != len(dom[b]) {
				dom[b] = next
				changed = true
			}
		}
	}

	return dom
}

// assertDefsDominateUses fails the test if any operand or branch argument in
// f refers to a value whose definition does not dominate the use.
func assertDefsDominateUses(t *testing.T, f *lir.Function) {
	t.Helper()

	dom := blockDominators(f)

	// defSite locates a value's defining block and index within it; block
	// parameters dominate their whole block.
	defSite := func(v lir.Value) (*lir.BasicBlock, int) {
		switch def := v.(type) {
		case *lir.Instruction:
			return def.Parent, def.Parent.IndexOf(def)
		case *lir.BlockParam:
			return def.Block, -1
		default:
			return nil, -1
		}
	}

	check := func(user *lir.Instruction, userIdx int, v lir.Value) {
		defBB, defIdx := defSite(v)
		if defBB == nil {
			return
		}

		if defBB == user.Parent {
			if defIdx >= userIdx {
				t.Errorf("in @%s, a value is used before its definition within a block", f.Name)
			}

			return
		}

		if !dom[user.Parent][defBB] {
			t.Errorf("in @%s, a use is not dominated by its definition", f.Name)
		}
	}

	for _, b := range f.Blocks {
		if dom[b] == nil {
			// unreachable block
			continue
		}

		for i, inst := range b.Instrs {
			for _, operand := range inst.Operands {
				check(inst, i, operand)
			}

			for _, target := range inst.Targets {
				for _, arg := range target.Args {
					check(inst, i, arg)
				}
			}
		}
	}
}

/* -------------------------------------------------------------------------- */

// A straight-line callee applied directly: the call's result uses rewrite to
// the actual argument and the caller's block structure is untouched.
func TestInlineStraightLineCallee(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"identity",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)
	bld.SetInsertionPointAtEnd(callee.EntryBlock())
	bld.CreateReturn(callee.EntryBlock().Params[0])

	caller, site, arg := newCaller(m, callee)

	in := NewInliner(callee, PerformanceInline)
	if !in.CanInline(site) {
		t.Fatalf("expected the site to be inlinable")
	}

	in.Inline(site, []lir.Value{arg})

	if len(caller.Blocks) != 1 {
		t.Errorf("expected no new blocks for an entry-return callee, got %d", len(caller.Blocks))
	}

	ret := caller.EntryBlock().Terminator()
	if ret.Op != lir.OpReturn || ret.Operands[0] != arg {
		t.Errorf("expected the call result use to be rewritten to the actual argument")
	}

	if caller.HasUses(site.Instruction()) {
		t.Errorf("expected the call to have no remaining uses")
	}

	if site.Parent() == nil {
		t.Errorf("expected the call instruction to remain for the caller to delete")
	}

	if !callee.IsInlined() {
		t.Errorf("expected the callee to be marked inlined")
	}
}

// A multi-block callee applied directly: the caller block is split, both
// callee returns become branches into the return-to block, and the call's
// result is carried by a fresh owned block parameter.
func TestInlineMultiBlockCallee(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"choose",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	entry := callee.EntryBlock()
	left := callee.NewBlock()
	right := callee.NewBlock()

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)

	bld.SetInsertionPointAtEnd(entry)
	cond := bld.CreateBuiltin(lir.BuiltinICmpEq, boolType, entry.Params[0], entry.Params[0])
	bld.CreateCondBranch(cond, lir.BlockTarget{Block: left}, lir.BlockTarget{Block: right})

	bld.SetInsertionPointAtEnd(left)
	one := bld.CreateIntegerLiteral(i64Type, 1)
	bld.CreateReturn(one)

	bld.SetInsertionPointAtEnd(right)
	two := bld.CreateIntegerLiteral(i64Type, 2)
	bld.CreateReturn(two)

	caller, site, arg := newCaller(m, callee)
	call := site.Instruction()

	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})

	// entry head + cloned left + cloned right + return-to block.
	if len(caller.Blocks) != 4 {
		t.Fatalf("expected 4 caller blocks, got %d", len(caller.Blocks))
	}

	head := caller.Blocks[0]
	returnTo := caller.Blocks[3]

	if head.Terminator().Op != lir.OpCondBranch {
		t.Errorf("expected the callee's entry terminator to be cloned into the head block")
	}

	if len(returnTo.Params) != 1 {
		t.Fatalf("expected one return-to block parameter, got %d", len(returnTo.Params))
	}

	retParam := returnTo.Params[0]
	if retParam.Type() != i64Type || retParam.Ownership != lir.OwnershipOwned {
		t.Errorf("expected an owned parameter of the call's result type")
	}

	// Both cloned callee blocks end in branches to the return-to block
	// passing their respective constants; no return or throw survives.
	for _, b := range caller.Blocks[1:3] {
		term := b.Terminator()

		if term.Op != lir.OpBranch || term.Targets[0].Block != returnTo {
			t.Fatalf("expected every callee return to become a branch to the return-to block")
		}

		c := term.Targets[0].Args[0].(*lir.Instruction)
		if c.Op != lir.OpIntegerLiteral {
			t.Errorf("expected the branch to carry the remapped returned constant")
		}
	}

	// The call moved into the return-to block and has no remaining uses;
	// the tail return now consumes the block parameter.
	if returnTo.IndexOf(call) < 0 {
		t.Errorf("expected the original call to live in the return-to block")
	}

	if caller.HasUses(call) {
		t.Errorf("expected the call to have no remaining uses")
	}

	if ret := returnTo.Terminator(); ret.Operands[0] != retParam {
		t.Errorf("expected the tail return to consume the return-to parameter")
	}

	// The rewired caller is still in SSA form: every definition dominates
	// all of its uses.
	assertDefsDominateUses(t, caller)
}

// A throwing callee at a try-apply site: the callee's throw becomes a branch
// into the existing error continuation and no block is split.
func TestInlineThrowIntoTryApply(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"fail",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type, Throws: true},
		lir.RepNative,
		testLoc,
	)

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)
	bld.SetInsertionPointAtEnd(callee.EntryBlock())
	bld.CreateThrow(callee.EntryBlock().Params[0])

	caller := m.NewFunction(
		"caller",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type, Throws: true},
		lir.RepNative,
		testLoc,
	)

	entry := caller.EntryBlock()
	arg := entry.Params[0]

	normalBB := caller.NewBlock()
	normalBB.AddParam(i64Type, lir.OwnershipOwned)
	errorBB := caller.NewBlock()
	errorBB.AddParam(i64Type, lir.OwnershipOwned)

	cbld := lir.NewBuilder(caller)
	cbld.SetScope(caller.Scope)

	cbld.SetInsertionPointAtEnd(entry)
	ref := cbld.CreateFunctionRef(callee)
	tryCall := cbld.CreateTryApply(ref, normalBB, errorBB, arg)

	cbld.SetInsertionPointAtEnd(normalBB)
	cbld.CreateReturn(normalBB.Params[0])

	cbld.SetInsertionPointAtEnd(errorBB)
	cbld.CreateThrow(errorBB.Params[0])

	site := lir.ApplySiteFor(tryCall)
	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})

	if len(caller.Blocks) != 3 {
		t.Errorf("expected no new blocks when inlining at a try-apply, got %d", len(caller.Blocks))
	}

	term := entry.Terminator()
	if term.Op != lir.OpBranch || term.Targets[0].Block != errorBB {
		t.Fatalf("expected the callee throw to become a branch to the error block")
	}

	if term.Targets[0].Args[0] != arg {
		t.Errorf("expected the thrown value to be remapped to the actual argument")
	}
}

// A returning callee at a try-apply site: the callee's return becomes a
// branch into the existing normal continuation and no block is split.
func TestInlineReturnIntoTryApply(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"succeed",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type, Throws: true},
		lir.RepNative,
		testLoc,
	)

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)
	bld.SetInsertionPointAtEnd(callee.EntryBlock())
	bld.CreateReturn(callee.EntryBlock().Params[0])

	caller := m.NewFunction(
		"caller",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type, Throws: true},
		lir.RepNative,
		testLoc,
	)

	entry := caller.EntryBlock()
	arg := entry.Params[0]

	normalBB := caller.NewBlock()
	normalBB.AddParam(i64Type, lir.OwnershipOwned)
	errorBB := caller.NewBlock()
	errorBB.AddParam(i64Type, lir.OwnershipOwned)

	cbld := lir.NewBuilder(caller)
	cbld.SetScope(caller.Scope)

	cbld.SetInsertionPointAtEnd(entry)
	ref := cbld.CreateFunctionRef(callee)
	tryCall := cbld.CreateTryApply(ref, normalBB, errorBB, arg)

	cbld.SetInsertionPointAtEnd(normalBB)
	cbld.CreateReturn(normalBB.Params[0])

	cbld.SetInsertionPointAtEnd(errorBB)
	cbld.CreateThrow(errorBB.Params[0])

	site := lir.ApplySiteFor(tryCall)
	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})

	if len(caller.Blocks) != 3 {
		t.Errorf("expected no new blocks when inlining at a try-apply, got %d", len(caller.Blocks))
	}

	term := entry.Terminator()
	if term.Op != lir.OpBranch || term.Targets[0].Block != normalBB {
		t.Fatalf("expected the callee return to become a branch to the normal block")
	}

	if term.Targets[0].Args[0] != arg {
		t.Errorf("expected the returned value to be remapped to the actual argument")
	}
}

// A throwing callee at a direct apply statically marked non-throwing: the
// throw terminator lowers to unreachable.
func TestInlineThrowIntoNonThrowingApply(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"fail",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type, Throws: true},
		lir.RepNative,
		testLoc,
	)

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)
	bld.SetInsertionPointAtEnd(callee.EntryBlock())
	bld.CreateThrow(callee.EntryBlock().Params[0])

	caller, site, arg := newCaller(m, callee)
	site.Instruction().NonThrowing = true

	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})

	if term := caller.Blocks[0].Terminator(); term.Op != lir.OpUnreachable {
		t.Errorf("expected the callee throw to lower to unreachable, got %s", term.Op.Repr())
	}

	// The split still happened: the call and the old tail moved away.
	if len(caller.Blocks) != 2 {
		t.Errorf("expected the caller block to be split, got %d blocks", len(caller.Blocks))
	}
}

// A throwing callee at a direct apply that was NOT marked non-throwing is a
// precondition violation.
func TestInlineThrowIntoThrowingApplyAborts(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"fail",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type, Throws: true},
		lir.RepNative,
		testLoc,
	)

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)
	bld.SetInsertionPointAtEnd(callee.EntryBlock())
	bld.CreateThrow(callee.EntryBlock().Params[0])

	_, site, arg := newCaller(m, callee)

	expectICE(t, func() {
		NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})
	})
}

/* -------------------------------------------------------------------------- */

func TestInlinePreconditions(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"callee",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)
	bld.SetInsertionPointAtEnd(callee.EntryBlock())
	ref := bld.CreateFunctionRef(callee)
	selfCall := bld.CreateApply(ref, i64Type, callee.EntryBlock().Params[0])
	bld.CreateReturn(selfCall)

	// Self-inlining: the apply site lives inside the callee itself.
	selfSite := lir.ApplySiteFor(selfCall)
	in := NewInliner(callee, PerformanceInline)

	if in.CanInline(selfSite) {
		t.Errorf("expected a self-recursive site to be rejected")
	}

	expectICE(t, func() {
		in.Inline(selfSite, []lir.Value{callee.EntryBlock().Params[0]})
	})

	// Argument-count mismatch with the callee's entry parameters.
	_, site, arg := newCaller(m, callee)

	expectICE(t, func() {
		NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg, arg})
	})
}

func TestMandatoryInlineRejectsForeignCallee(t *testing.T) {
	m := lir.NewModule("test")

	for _, rep := range []lir.FunctionRep{lir.RepForeignMethod, lir.RepForeignCFunc} {
		callee := m.NewFunction(
			"foreign",
			lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
			rep,
			testLoc,
		)

		bld := lir.NewBuilder(callee)
		bld.SetScope(callee.Scope)
		bld.SetInsertionPointAtEnd(callee.EntryBlock())
		bld.CreateReturn(callee.EntryBlock().Params[0])

		_, site, arg := newCaller(m, callee)

		expectICE(t, func() {
			NewInliner(callee, MandatoryInline).Inline(site, []lir.Value{arg})
		})

		// The same callee is fine under the performance policy.
		NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{arg})
	}
}

/* -------------------------------------------------------------------------- */

// Cloned blocks splice in just before the block that followed the caller
// block, keeping the caller's textual block order contiguous.
func TestInlineBlockPlacement(t *testing.T) {
	m := lir.NewModule("test")

	callee := m.NewFunction(
		"twoexits",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	entry := callee.EntryBlock()
	exit := callee.NewBlock()
	exit.AddParam(i64Type, lir.OwnershipOwned)

	bld := lir.NewBuilder(callee)
	bld.SetScope(callee.Scope)
	bld.SetInsertionPointAtEnd(entry)
	bld.CreateBranch(exit, entry.Params[0])
	bld.SetInsertionPointAtEnd(exit)
	bld.CreateReturn(exit.Params[0])

	// Caller: entry applies the callee and branches to a pre-existing
	// follower block which returns.
	caller := m.NewFunction(
		"caller",
		lir.FuncType{ParamTypes: []lir.Type{i64Type}, ResultType: i64Type},
		lir.RepNative,
		testLoc,
	)

	follower := caller.NewBlock()
	follower.AddParam(i64Type, lir.OwnershipOwned)

	cbld := lir.NewBuilder(caller)
	cbld.SetScope(caller.Scope)
	cbld.SetInsertionPointAtEnd(caller.EntryBlock())
	ref := cbld.CreateFunctionRef(callee)
	call := cbld.CreateApply(ref, i64Type, caller.EntryBlock().Params[0])
	cbld.CreateBranch(follower, call)
	cbld.SetInsertionPointAtEnd(follower)
	cbld.CreateReturn(follower.Params[0])

	site := lir.ApplySiteFor(call)
	NewInliner(callee, PerformanceInline).Inline(site, []lir.Value{caller.EntryBlock().Params[0]})

	// Expected order: head, cloned exit, return-to, follower.
	if len(caller.Blocks) != 4 {
		t.Fatalf("expected 4 caller blocks, got %d", len(caller.Blocks))
	}

	if caller.Blocks[3] != follower {
		t.Errorf("expected the pre-existing follower block to stay last")
	}

	returnTo := caller.Blocks[2]
	if len(returnTo.Params) != 1 || returnTo.IndexOf(call) < 0 {
		t.Errorf("expected the return-to block before the follower block")
	}
}
