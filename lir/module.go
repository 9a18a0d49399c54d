package lir

// Module represents a single LIR translation unit: a set of functions plus
// the arena that owns every debug scope produced while compiling them.  A
// module and everything it owns is confined to one thread: neither the scope
// arena nor the functions are safe for concurrent mutation.
type Module struct {
	// Name is the module's name.
	Name string

	// Functions are the functions defined in the module.
	Functions []*Function

	// scopes is the module-level debug-scope arena.  Scopes are never freed
	// individually: they live as long as the module.
	scopes []*DebugScope
}

// NewModule creates a new, empty module named name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// NewFunction creates a new function in the module with the given name,
// signature, and representation.  The function starts with an entry block
// holding one parameter per signature parameter and a fresh root debug
// scope located at loc.
func (m *Module) NewFunction(name string, sig FuncType, rep FunctionRep, loc Location) *Function {
	f := &Function{
		Name:   name,
		Sig:    sig,
		Rep:    rep,
		Module: m,
	}

	f.Scope = m.NewScope(loc, f, nil, nil)

	entry := f.NewBlock()
	for _, paramType := range sig.ParamTypes {
		entry.AddParam(paramType, OwnershipOwned)
	}

	m.Functions = append(m.Functions, f)
	return f
}

// NewScope allocates a debug scope out of the module arena.
func (m *Module) NewScope(loc Location, parentFn *Function, parentScope, inlinedCallSite *DebugScope) *DebugScope {
	s := &DebugScope{
		Loc:             loc,
		ParentFn:        parentFn,
		ParentScope:     parentScope,
		InlinedCallSite: inlinedCallSite,
	}

	m.scopes = append(m.scopes, s)
	return s
}

// ScopeCount returns the number of debug scopes allocated in the module.
func (m *Module) ScopeCount() int {
	return len(m.scopes)
}
