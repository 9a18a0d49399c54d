package inline

import (
	"sable/lir"
	"sable/report"
)

// InlineKind must be one of the enumerated inlining policies.  The two
// policies differ in debug-marker retention, location kind, and the callee
// representations they accept.
type InlineKind int

// Enumeration of inlining policies.
const (
	// MandatoryInline is the semantics-required inlining performed before
	// diagnostics: cloned code inherits the call site's scope and drops
	// debug markers, as if the callee were a "nodebug" function.
	MandatoryInline = iota

	// PerformanceInline is heuristic-driven inlining: cloned code receives a
	// freshly stitched scope tree pointing back at the call site so the
	// debugger can reconstruct the inlined frames.
	PerformanceInline
)

// Inliner performs single steps of function-body substitution: it splices
// the body of one known callee into callers at full apply sites.  It does
// not decide profitability, does not recurse into the spliced body, and
// never deletes the original call instruction; all three are its caller's
// responsibility.
//
// An Inliner is single-threaded.  The per-step maps below live only for the
// duration of one Inline call.
type Inliner struct {
	// callee is the function whose body is inlined.  It is read-only
	// throughout every step.
	callee *lir.Function

	// kind must be one of the enumerated inlining policies.
	kind InlineKind

	// strictScopes upgrades a call site with no debug scope from a tolerated
	// fallback to a hard precondition failure.
	strictScopes bool

	// builder emits cloned instructions into the caller.
	builder *lir.Builder

	// loc is the unified location stamped on every instruction produced by
	// the current step.
	loc lir.Location

	// callSiteScope is the scope the current step's stitched scope chains
	// terminate at.
	callSiteScope *lir.DebugScope

	// valueMap maps callee values to their caller-side replacements.
	valueMap map[lir.Value]lir.Value

	// blockMap maps callee blocks to their caller-side counterparts.  The
	// callee entry block maps to the block containing the call.
	blockMap map[*lir.BasicBlock]*lir.BasicBlock

	// cloneOrder records the callee blocks in visitation order so terminator
	// rewriting runs deterministically.
	cloneOrder []*lir.BasicBlock

	// scopeCache memoizes stitched scopes by callee-side scope.
	scopeCache map[*lir.DebugScope]*lir.DebugScope
}

// NewInliner creates an inliner that splices callee's body into call sites
// under the given policy.
func NewInliner(callee *lir.Function, kind InlineKind) *Inliner {
	return &Inliner{callee: callee, kind: kind}
}

// SetStrictScopes controls whether a call site with a null debug scope is a
// precondition failure instead of falling back to the caller's scope.
func (in *Inliner) SetStrictScopes(strict bool) {
	in.strictScopes = strict
}

// CanInline returns whether the callee can be inlined at the given apply
// site: the site must not live inside the callee itself, since one step of
// self-inlining would splice a function into its own body.
func (in *Inliner) CanInline(site lir.FullApplySite) bool {
	return site.Function() != in.callee
}

// Inline performs one step of inlining at site.  The callee's body is cloned
// into the caller, the callee's returns and throws are rewired to merge with
// the caller's control flow, and every use of the call's result is replaced.
// The supplied args are bound to the callee's entry parameters; they may
// differ from the call's own operands (eg. after devirtualization).
//
// On return, the original call instruction still exists and has no remaining
// uses; deleting it is the caller's responsibility.  Precondition violations
// abort via report.ICE, in which case the caller function's contents are
// undefined.
func (in *Inliner) Inline(site lir.FullApplySite, args []lir.Value) {
	if !in.CanInline(site) {
		report.ICE("attempt to inline @%s into itself", in.callee.Name)
	}

	caller := site.Function()
	if caller == nil {
		report.ICE("inlining at a detached apply site")
	}

	if in.kind == MandatoryInline && in.callee.Rep != lir.RepNative {
		report.ICE("cannot inline %s function @%s in mandatory inlining", in.callee.Rep.Repr(), in.callee.Name)
	}

	calleeEntry := in.callee.EntryBlock()
	if len(args) != len(calleeEntry.Params) {
		report.ICE("inlining @%s with %d arguments for %d entry parameters",
			in.callee.Name, len(args), len(calleeEntry.Params))
	}

	// Compute the location shared by all instructions of this step.
	if in.kind == PerformanceInline {
		in.loc = lir.InlinedLocation(site.Instruction().Loc)
	} else {
		in.loc = lir.MandatoryInlinedLocation(site.Instruction().Loc)
	}

	in.callSiteScope = in.computeCallSiteScope(site, caller)

	// Keep the callee alive for abstract debug-info emission now that its
	// body exists in another function.
	in.callee.SetInlined()

	// Remember the block after the caller block: cloned blocks are spliced
	// just before it so the caller's textual block order stays contiguous.
	insertBeforeBB := caller.BlockAfter(site.Parent())

	// Seed the per-step maps: entry parameters bind to the call's actual
	// arguments, and the entry block maps to the caller block itself.
	in.valueMap = make(map[lir.Value]lir.Value)
	in.blockMap = map[*lir.BasicBlock]*lir.BasicBlock{calleeEntry: site.Parent()}
	in.cloneOrder = in.cloneOrder[:0]
	in.scopeCache = make(map[*lir.DebugScope]*lir.DebugScope)

	for i, param := range calleeEntry.Params {
		in.valueMap[param] = args[i]
	}

	// Clone every reachable callee block's non-terminators.  The entry
	// block's instructions are emitted into the caller block immediately
	// before the call instruction; every other block gets a fresh caller
	// block spliced before the anchor.
	in.builder = lir.NewBuilder(caller)
	in.builder.SetLocation(in.loc)
	in.cloneBlocks(site, insertBeforeBB)

	// If we're inlining at a direct apply and the callee's entry block ends
	// in a return, no control flow merges back: rewrite the uses and stop
	// without splitting the caller block.
	if !site.IsTryApply() {
		if term := calleeEntry.Terminator(); term.Op == lir.OpReturn {
			caller.ReplaceAllUses(site.Instruction(), in.remapValue(term.Operands[0]))

			in.reportStep(caller)
			return
		}
	}

	// Establish the return-to block.  A try-apply already has one: its
	// normal continuation.  Otherwise split the caller block at the call,
	// without adding a branch between the halves: the rewritten callee
	// terminators provide every edge into the return-to block.
	var returnToBB *lir.BasicBlock
	if site.IsTryApply() {
		returnToBB = site.NormalBlock()
	} else {
		returnToBB = caller.SplitBlock(site.Parent(), site.Instruction())

		// Place the return-to block after all the cloned blocks.
		caller.MoveBlockBefore(returnToBB, insertBeforeBB)

		retParam := returnToBB.AddParam(site.Instruction().ResultType, lir.OwnershipOwned)
		caller.ReplaceAllUses(site.Instruction(), retParam)
	}

	// Rewrite the callee terminators into the caller blocks.
	for _, calleeBB := range in.cloneOrder {
		in.builder.SetInsertionPointAtEnd(in.blockMap[calleeBB])
		in.rewriteTerminator(site, calleeBB.Terminator(), returnToBB)
	}

	in.reportStep(caller)
}

// computeCallSiteScope determines the scope at which the callee's scopes are
// recorded as inlined.  Mandatory inlining reuses the call's own scope;
// performance inlining mints a proper inline scope pointing back at the call
// site.
func (in *Inliner) computeCallSiteScope(site lir.FullApplySite, caller *lir.Function) *lir.DebugScope {
	siteScope := site.Instruction().Scope
	if siteScope == nil {
		if in.strictScopes {
			report.ICE("apply site in @%s has no debug scope", caller.Name)
		}

		siteScope = caller.Scope
	}

	if in.kind == MandatoryInline {
		return siteScope
	}

	return caller.Module.NewScope(site.Instruction().Loc, nil, siteScope, siteScope.InlinedCallSite)
}

// rewriteTerminator lowers one callee terminator into the caller.  Returns
// become branches to the return-to block; throws become branches to a
// try-apply's error block, or unreachable when the direct apply asserted the
// callee cannot throw.  Every other terminator is cloned with its successor
// blocks remapped.
func (in *Inliner) rewriteTerminator(site lir.FullApplySite, term *lir.Instruction, returnToBB *lir.BasicBlock) {
	in.builder.SetScope(in.getOrCreateInlineScope(term.Scope))

	switch term.Op {
	case lir.OpReturn:
		in.builder.CreateBranch(returnToBB, in.remapValue(term.Operands[0]))

	case lir.OpThrow:
		if !site.IsTryApply() {
			if !site.IsNonThrowing() {
				report.ICE("direct apply of throwing function @%s is not marked non-throwing", in.callee.Name)
			}

			in.builder.CreateUnreachable()
			return
		}

		in.builder.CreateBranch(site.ErrorBlock(), in.remapValue(term.Operands[0]))

	default:
		in.cloneTerminator(term)
	}
}

// reportStep emits the verbose progress summary for a completed step.
func (in *Inliner) reportStep(caller *lir.Function) {
	report.ReportVerbose("Inline", "@%s into @%s (%d blocks)", in.callee.Name, caller.Name, len(in.cloneOrder))
}
