package selector

import (
	"strings"

	"github.com/npillmayer/stylecore/domiface"
)

// IsMatch reports whether the rightmost-anchored Selector matches element,
// walking right-to-left from the rightmost simple selector.
func (sel *Selector) IsMatch(e domiface.Element) bool {
	return matchFrom(sel.Components, len(sel.Components)-1, e)
}

// matchFrom tests components[i..] against e, where components[i] is matched
// directly against e and components[0..i-1] are walked via their
// combinators.
func matchFrom(components []SelectorComponent, i int, e domiface.Element) bool {
	if e == nil {
		return false
	}
	if !matchSimple(&components[i].Simple, e) {
		return false
	}
	if i == 0 {
		return true
	}
	prev := components[i-1]
	switch components[i].Combinator {
	case Self:
		return matchFrom(components, i-1, e)
	case Child:
		p := e.Parent()
		return p != nil && matchFrom(components, i-1, p)
	case Descendant:
		for anc := e.Parent(); anc != nil; anc = anc.Parent() {
			if matchFrom(components, i-1, anc) {
				return true
			}
		}
		return false
	case AdjacentSibling:
		p := e.PreviousSibling()
		return p != nil && matchFrom(components, i-1, p)
	case GeneralSibling:
		for s := e.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			if matchFrom(components, i-1, s) {
				return true
			}
		}
		return false
	}
	_ = prev
	return false
}

// matchSimple tests one SimpleSelector against e, using the compiled
// matcher once usage crosses the configured threshold (see compiled.go).
func matchSimple(s *SimpleSelector, e domiface.Element) bool {
	if cm := s.compiledIfReady(); cm != nil {
		return cm(e)
	}
	s.recordUse()
	return interpretSimple(*s, e)
}

func interpretSimple(s SimpleSelector, e domiface.Element) bool {
	if !s.IsUniversal() && s.ElementName != e.NodeName() {
		return false
	}
	for _, f := range s.Filters {
		if !matchFilter(f, e) {
			return false
		}
	}
	return true
}

func matchFilter(f SelectorFilter, e domiface.Element) bool {
	switch f.Kind {
	case FilterClass:
		return e.ClassNames() != nil && e.ClassNames().Has(f.Name)
	case FilterID:
		return e.ID() == f.Name
	case FilterHasAttr:
		return e.Attributes() != nil && e.Attributes().ContainsKey(f.Name)
	case FilterAttr:
		return matchAttr(f, e)
	case FilterFirstChild:
		return e.Index() == 0
	case FilterLastChild:
		return e.Parent() != nil && e.Index() == e.Parent().ChildElementCount()-1
	case FilterEmpty:
		return e.ChildElementCount() == 0
	case FilterLink:
		return domiface.IsLink(e.StyleFlags()) && e.Attributes() != nil && e.Attributes().ContainsKey("href")
	case FilterVisited:
		return e.StyleFlags().Has(domiface.FlagVisited)
	case FilterHover:
		return e.StyleFlags().Has(domiface.FlagHover)
	case FilterActive:
		return e.StyleFlags().Has(domiface.FlagActive)
	case FilterFocus:
		return e.StyleFlags().Has(domiface.FlagFocus)
	case FilterEnabled:
		return !e.StyleFlags().Has(domiface.FlagDisabled)
	case FilterDisabled:
		return e.StyleFlags().Has(domiface.FlagDisabled)
	case FilterChecked:
		return e.StyleFlags().Has(domiface.FlagChecked)
	case FilterIndeterminate:
		return e.StyleFlags().Has(domiface.FlagIndeterminate)
	case FilterIs:
		// is(S) := matches(S) — see the corrected semantics in DESIGN.md.
		return f.Sub.IsMatch(e)
	case FilterNot:
		// not(S) := ¬matches(S).
		return !f.Sub.IsMatch(e)
	case FilterUnknown:
		return e.HasPseudoClass(f.UnknownName, f.UnknownArg)
	}
	return false
}

func matchAttr(f SelectorFilter, e domiface.Element) bool {
	attrs := e.Attributes()
	if attrs == nil {
		return false
	}
	v, ok := attrs.TryGetValue(f.Name)
	if !ok {
		return false
	}
	want := f.AttrValue
	got := v
	insensitive := f.Case == CaseInsensitive
	if insensitive {
		want = strings.ToLower(want)
		got = strings.ToLower(got)
	}
	switch f.AttrOp {
	case AttrEq:
		return got == want
	case AttrIncludes:
		for _, word := range strings.Fields(got) {
			if word == want {
				return true
			}
		}
		return false
	case AttrDashMatch:
		return got == want || strings.HasPrefix(got, want+"-")
	case AttrPrefix:
		return want != "" && strings.HasPrefix(got, want)
	case AttrSuffix:
		return want != "" && strings.HasSuffix(got, want)
	case AttrSubstr:
		return want != "" && strings.Contains(got, want)
	}
	return false
}

// IsMatch reports whether any member Selector matches e.
func (c *CompoundSelector) IsMatch(e domiface.Element) bool {
	for _, s := range c.Selectors {
		if s.IsMatch(e) {
			return true
		}
	}
	return false
}

// MatchingSpecificity returns the maximum specificity among member
// Selectors that actually match e, and whether any did.
func (c *CompoundSelector) MatchingSpecificity(e domiface.Element) (Specificity, bool) {
	best := Zero
	any := false
	for _, s := range c.Selectors {
		if s.IsMatch(e) {
			if sp := s.Specificity(); !any || sp > best {
				best = sp
			}
			any = true
		}
	}
	return best, any
}

// Find returns every element in the subtree rooted at root (inclusive) that
// matches c. Ordering is unspecified. Find always does a full subtree scan;
// a host that holds a domiface.ElementLookupTables for root should prefer
// query.Planner.FindCompound instead, which can pick an indexed starting set
// and cheaper traversal for the same comma-separated selector. selector
// cannot import query directly (query already imports selector), which is
// why that wiring lives on the query side rather than here.
func (c *CompoundSelector) Find(root domiface.Element) []domiface.Element {
	var out []domiface.Element
	if root == nil {
		return out
	}
	if c.IsMatch(root) {
		out = append(out, root)
	}
	root.Descendants(func(e domiface.Element) bool {
		if c.IsMatch(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Closest returns the nearest ancestor-or-self of node that matches c, or
// nil if none does. Unlike Find, Closest has no indexed-starting-set
// opportunity for query.Planner to exploit: the walk is already bounded by
// node's depth rather than subtree size, so it is not wired to the planner.
func (c *CompoundSelector) Closest(node domiface.Element) domiface.Element {
	for e := node; e != nil; e = e.Parent() {
		if c.IsMatch(e) {
			return e
		}
	}
	return nil
}
