package selector

import "github.com/npillmayer/stylecore/domiface"

// compiledMatcher is a specialized predicate for one SimpleSelector's filter
// list, built once matchCount crosses compileThreshold. It must never change
// match results relative to interpretSimple — it exists purely to amortize
// per-call dispatch cost over repeated matching of the same SimpleSelector.
type compiledMatcher func(domiface.Element) bool

var compileThreshold = 3

// WithCompileThreshold overrides the default match-count threshold (3) at
// which a SimpleSelector's filter list is compiled into a dispatch table.
// It affects every SimpleSelector process-wide; call it once at startup.
func WithCompileThreshold(n int) {
	if n > 0 {
		compileThreshold = n
	}
}

func (s *SimpleSelector) recordUse() {
	s.matchCount++
	if s.compiled == nil && s.matchCount >= compileThreshold {
		s.compiled = compile(*s)
	}
}

func (s *SimpleSelector) compiledIfReady() compiledMatcher {
	return s.compiled
}

// compile builds a compiledMatcher equivalent to interpretSimple(s, ·). It
// precomputes a dispatch slice of closures instead of re-switching on
// FilterKind for every element tested.
func compile(s SimpleSelector) compiledMatcher {
	elementName := s.ElementName
	universal := s.IsUniversal()
	checks := make([]func(domiface.Element) bool, len(s.Filters))
	for i, f := range s.Filters {
		f := f
		checks[i] = func(e domiface.Element) bool { return matchFilter(f, e) }
	}
	return func(e domiface.Element) bool {
		if !universal && e.NodeName() != elementName {
			return false
		}
		for _, check := range checks {
			if !check(e) {
				return false
			}
		}
		return true
	}
}
