package lir

import "fmt"

// LocKind must be one of the enumerated location kinds.
type LocKind int

// Enumeration of location kinds.
const (
	// LocRegular is a location that refers directly to source text.
	LocRegular = iota

	// LocInlined marks a location produced by performance inlining: the
	// instruction originates in a callee body spliced in at this location.
	LocInlined

	// LocMandatoryInlined marks a location produced by mandatory inlining.
	LocMandatoryInlined

	// LocAutoGenerated marks compiler-generated code with no direct source.
	LocAutoGenerated
)

// Location represents the source position an instruction was produced from.
type Location struct {
	File      string
	Line, Col int
	Kind      LocKind
}

// InlinedLocation derives the location used for instructions cloned by a
// performance inlining step at the call-site location loc.
func InlinedLocation(loc Location) Location {
	loc.Kind = LocInlined
	return loc
}

// MandatoryInlinedLocation derives the location used for instructions cloned
// by a mandatory inlining step at the call-site location loc.
func MandatoryInlinedLocation(loc Location) Location {
	loc.Kind = LocMandatoryInlined
	return loc
}

// AutoGeneratedLocation returns the location used for compiler-generated
// constructs with no source counterpart.
func AutoGeneratedLocation() Location {
	return Location{Kind: LocAutoGenerated}
}

func (loc Location) Repr() string {
	switch loc.Kind {
	case LocInlined:
		return fmt.Sprintf("%s:%d:%d(inlined)", loc.File, loc.Line, loc.Col)
	case LocMandatoryInlined:
		return fmt.Sprintf("%s:%d:%d(mandatory-inlined)", loc.File, loc.Line, loc.Col)
	case LocAutoGenerated:
		return "<auto-generated>"
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
