package inline

import "sable/lir"

// getOrCreateInlineScope stitches a caller-side counterpart for a callee
// debug scope.  The counterpart preserves the callee scope's location and
// parent spine unchanged; only the inlined-call-site back-pointer is
// rewritten, chaining through the callee's own inlined-call-site spine and
// terminating at the step's call-site scope.  Results are memoized per step
// so shared spines stitch to shared scopes.
func (in *Inliner) getOrCreateInlineScope(calleeScope *lir.DebugScope) *lir.DebugScope {
	if calleeScope == nil {
		return in.callSiteScope
	}

	if stitched, ok := in.scopeCache[calleeScope]; ok {
		return stitched
	}

	inlinedAt := in.getOrCreateInlineScope(calleeScope.InlinedCallSite)

	stitched := in.builder.Fn.Module.NewScope(
		calleeScope.Loc,
		calleeScope.ParentFn,
		calleeScope.ParentScope,
		inlinedAt,
	)

	in.scopeCache[calleeScope] = stitched
	return stitched
}
