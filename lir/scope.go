package lir

// DebugScope is a lexical-scope descriptor used for source-level debugger
// mapping.  Scopes form a DAG with two spines: the parent spine (lexical
// nesting, terminating at an owning function) and the inlined-call-site
// spine (the scope at which this scope was inlined, forming a chain through
// nested inlinings).  All back-pointers are non-owning: scopes are allocated
// out of their module's arena and live as long as the module.
type DebugScope struct {
	// Loc is the source location this scope covers.
	Loc Location

	// ParentFn is the function lexically owning this scope, if the scope is
	// a function's root scope.  Exactly one of ParentFn and ParentScope is
	// expected to be set for scopes that belong to a function.
	ParentFn *Function

	// ParentScope is the lexically enclosing scope, if any.
	ParentScope *DebugScope

	// InlinedCallSite points at the scope of the call site at which this
	// scope was inlined, or nil if the scope was not produced by inlining.
	InlinedCallSite *DebugScope
}

// ParentFunction resolves the function this scope belongs to.  For a scope
// produced by inlining, that is the function containing the call site, so
// the inlined-call-site spine takes precedence over the parent spine.
// Returns nil for a detached scope.
func (s *DebugScope) ParentFunction() *Function {
	if s.InlinedCallSite != nil {
		return s.InlinedCallSite.ParentFunction()
	}

	if s.ParentFn != nil {
		return s.ParentFn
	}

	if s.ParentScope != nil {
		return s.ParentScope.ParentFunction()
	}

	return nil
}
