package config

import (
	"fmt"
	"io/ioutil"

	"sable/inline"
	"sable/lir"
	"sable/report"

	"github.com/pelletier/go-toml"
)

// tomlProfile represents an optimizer profile as it is encoded in TOML.
type tomlProfile struct {
	LogLevel string `toml:"log-level"`

	Inline tomlInlineProfile `toml:"inline"`
}

// tomlInlineProfile is the `[inline]` table of a profile file.
type tomlInlineProfile struct {
	Kind         string `toml:"kind"`
	StrictScopes bool   `toml:"strict-scopes"`
}

// Profile is the validated, in-memory form of an optimizer profile.
type Profile struct {
	// LogLevel must be one of the report log levels.
	LogLevel int

	// InlineKind must be one of the enumerated inlining policies.
	InlineKind inline.InlineKind

	// StrictScopes makes a call site without a debug scope a hard
	// precondition failure instead of falling back to the caller's scope.
	StrictScopes bool
}

// DefaultProfile returns the profile used when no profile file is supplied:
// verbose logging, performance inlining, tolerant scope handling.
func DefaultProfile() *Profile {
	return &Profile{
		LogLevel:   report.LogLevelVerbose,
		InlineKind: inline.PerformanceInline,
	}
}

// LoadProfile loads and validates an optimizer profile.  `path` is the path
// to the profile's TOML file.
func LoadProfile(path string) (*Profile, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read profile file at `%s`: %s", path, err.Error())
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		return nil, fmt.Errorf("error parsing profile file at `%s`: %s", path, err.Error())
	}

	prof := DefaultProfile()
	if err := applyProfile(prof, tomlProf); err != nil {
		return nil, fmt.Errorf("invalid profile file at `%s`: %s", path, err.Error())
	}

	return prof, nil
}

// applyProfile validates the TOML profile contents and moves them over to
// the in-memory profile.
func applyProfile(prof *Profile, tomlProf *tomlProfile) error {
	switch tomlProf.LogLevel {
	case "":
		// keep the default
	case "silent":
		prof.LogLevel = report.LogLevelSilent
	case "error":
		prof.LogLevel = report.LogLevelError
	case "warn":
		prof.LogLevel = report.LogLevelWarn
	case "verbose":
		prof.LogLevel = report.LogLevelVerbose
	default:
		return fmt.Errorf("unknown log level `%s`", tomlProf.LogLevel)
	}

	switch tomlProf.Inline.Kind {
	case "":
		// keep the default
	case "mandatory":
		prof.InlineKind = inline.MandatoryInline
	case "performance":
		prof.InlineKind = inline.PerformanceInline
	default:
		return fmt.Errorf("unknown inline kind `%s`", tomlProf.Inline.Kind)
	}

	prof.StrictScopes = tomlProf.Inline.StrictScopes
	return nil
}

// NewInliner creates an inliner for callee configured by the profile.
func (prof *Profile) NewInliner(callee *lir.Function) *inline.Inliner {
	in := inline.NewInliner(callee, prof.InlineKind)
	in.SetStrictScopes(prof.StrictScopes)
	return in
}
