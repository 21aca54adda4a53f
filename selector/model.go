package selector

import "sync"

// AttrOp is the comparison operator of an attribute filter.
type AttrOp uint8

const (
	AttrEq AttrOp = iota
	AttrIncludes
	AttrDashMatch
	AttrPrefix
	AttrSuffix
	AttrSubstr
)

// CaseMode controls how an attribute value comparison treats case. Default
// defers to the attribute's own CSS-defined case sensitivity (ordinal
// sensitive, for every attribute this engine knows about); Sensitive and
// Insensitive are the explicit ` s`/` i`  suffix overrides.
type CaseMode uint8

const (
	CaseDefault CaseMode = iota
	CaseSensitive
	CaseInsensitive
)

// FilterKind discriminates the SelectorFilter union.
type FilterKind uint8

const (
	FilterClass FilterKind = iota
	FilterID
	FilterHasAttr
	FilterAttr
	FilterFirstChild
	FilterLastChild
	FilterEmpty
	FilterLink
	FilterVisited
	FilterHover
	FilterActive
	FilterFocus
	FilterEnabled
	FilterDisabled
	FilterChecked
	FilterIndeterminate
	FilterIs
	FilterNot
	FilterUnknown
)

// SelectorFilter is one constraint a SimpleSelector applies beyond its
// element name: a closed sum type over class/id/attribute filters, the
// CSS 2.1/3 static pseudo-classes this engine understands, and is()/not().
type SelectorFilter struct {
	Kind FilterKind

	Name string // Class/HasAttr/Attr attribute name, or ID's id value

	AttrValue string
	AttrOp    AttrOp
	Case      CaseMode

	Sub *CompoundSelector // FilterIs / FilterNot argument

	UnknownName string // FilterUnknown
	UnknownArg  string // FilterUnknown, empty if none
}

// Class returns a Class(name) filter.
func Class(name string) SelectorFilter { return SelectorFilter{Kind: FilterClass, Name: name} }

// ID returns an Id(id) filter.
func ID(id string) SelectorFilter { return SelectorFilter{Kind: FilterID, Name: id} }

// HasAttr returns a HasAttr(name) filter.
func HasAttr(name string) SelectorFilter { return SelectorFilter{Kind: FilterHasAttr, Name: name} }

// Attr returns an Attr(op, name, value, case) filter.
func Attr(op AttrOp, name, value string, caseMode CaseMode) SelectorFilter {
	return SelectorFilter{Kind: FilterAttr, Name: name, AttrValue: value, AttrOp: op, Case: caseMode}
}

// Is returns an is(sub) filter: matches iff sub matches.
func Is(sub *CompoundSelector) SelectorFilter { return SelectorFilter{Kind: FilterIs, Sub: sub} }

// Not returns a not(sub) filter: matches iff sub does not match.
func Not(sub *CompoundSelector) SelectorFilter { return SelectorFilter{Kind: FilterNot, Sub: sub} }

// Unknown returns an opaque pseudo-class filter the matcher never satisfies
// on its own — hosts may honor it via Element.HasPseudoClass.
func Unknown(name, arg string) SelectorFilter {
	return SelectorFilter{Kind: FilterUnknown, UnknownName: name, UnknownArg: arg}
}

// simplePseudoKinds are the named static pseudo-classes with no argument.
var simplePseudoKinds = map[string]FilterKind{
	"first-child":   FilterFirstChild,
	"last-child":    FilterLastChild,
	"empty":         FilterEmpty,
	"link":          FilterLink,
	"visited":       FilterVisited,
	"hover":         FilterHover,
	"active":        FilterActive,
	"focus":         FilterFocus,
	"enabled":       FilterEnabled,
	"disabled":      FilterDisabled,
	"checked":       FilterChecked,
	"indeterminate": FilterIndeterminate,
}

// SimplePseudo returns a zero-argument pseudo-class filter by name, or false
// if name is not one of the statically-known pseudo-classes.
func SimplePseudo(name string) (SelectorFilter, bool) {
	k, ok := simplePseudoKinds[name]
	if !ok {
		return SelectorFilter{}, false
	}
	return SelectorFilter{Kind: k}, true
}

// SimpleSelector is an element-name test plus an ordered sequence of
// filters, all of which must match.
type SimpleSelector struct {
	ElementName string // lowercased; "" or "*" means universal
	Filters     []SelectorFilter

	// matchCount/compiled back the compiled-matcher optimization (see
	// compiled.go). Plain fields, not atomics: matching runs single-threaded
	// per stylesheet/document, so there is no concurrent writer to guard
	// against.
	matchCount int
	compiled   compiledMatcher
}

// IsUniversal reports whether the element-name test always passes.
func (s SimpleSelector) IsUniversal() bool {
	return s.ElementName == "" || s.ElementName == "*"
}

// Combinator is the tree relationship a SelectorComponent requires between
// itself and the previous component.
type Combinator uint8

const (
	Self Combinator = iota
	Descendant
	Child
	AdjacentSibling
	GeneralSibling
)

func (c Combinator) String() string {
	switch c {
	case Self:
		return ""
	case Descendant:
		return " "
	case Child:
		return " > "
	case AdjacentSibling:
		return " + "
	case GeneralSibling:
		return " ~ "
	}
	return "?"
}

// SelectorComponent pairs a SimpleSelector with the combinator linking it to
// the previous component in a Selector.
type SelectorComponent struct {
	Combinator Combinator
	Simple     SimpleSelector
}

// Selector is a non-empty, left-to-right ordered sequence of
// SelectorComponents. The first component always carries Self.
type Selector struct {
	Components []SelectorComponent

	specOnce   sync.Once
	spec       Specificity
	stylesheet int
	ruleIndex  int
	inline     bool
}

// NewSelector builds a Selector from components, forcing the first
// component's combinator to Self (the first component in a chain is never
// preceded by a combinator). It panics if
// passed zero components — an empty selector is a construction error, not
// a parse failure (a parse failure simply never calls this).
func NewSelector(components ...SelectorComponent) *Selector {
	if len(components) == 0 {
		panic("selector: NewSelector requires at least one component")
	}
	components[0].Combinator = Self
	return &Selector{Components: components}
}

// Last returns the rightmost component's simple selector — the one the
// engine tests first during right-to-left matching and the one style-index
// keys are drawn from.
func (sel *Selector) Last() SimpleSelector {
	return sel.Components[len(sel.Components)-1].Simple
}

// withOrigin attaches the source-order coordinates a Specificity needs
// (stylesheet index, rule index, inline flag) without recomputing the
// selector-shape part of the specificity.
func (sel *Selector) withOrigin(stylesheet, ruleIndex int, inline bool) {
	sel.stylesheet = stylesheet
	sel.ruleIndex = ruleIndex
	sel.inline = inline
}

// Specificity returns this selector's specificity, computing and caching it
// on first call.
func (sel *Selector) Specificity() Specificity {
	sel.specOnce.Do(func() {
		var id, class, elem int
		for _, comp := range sel.Components {
			if !comp.Simple.IsUniversal() {
				elem++
			}
			for _, f := range comp.Simple.Filters {
				switch f.Kind {
				case FilterID:
					id++
				case FilterClass, FilterHasAttr, FilterAttr, FilterIs, FilterNot, FilterUnknown,
					FilterFirstChild, FilterLastChild, FilterEmpty, FilterLink, FilterVisited,
					FilterHover, FilterActive, FilterFocus, FilterEnabled, FilterDisabled,
					FilterChecked, FilterIndeterminate:
					class++
				}
			}
		}
		sel.spec = NewSpecificity(sel.inline, id, class, elem, sel.stylesheet, sel.ruleIndex)
	})
	return sel.spec
}

// CompoundSelector is one or more comma-separated Selectors; its specificity
// is the lexicographic max of its members.
type CompoundSelector struct {
	Selectors []*Selector
}

// NewCompoundSelector builds a CompoundSelector from one or more Selectors.
func NewCompoundSelector(sels ...*Selector) *CompoundSelector {
	if len(sels) == 0 {
		panic("selector: NewCompoundSelector requires at least one selector")
	}
	return &CompoundSelector{Selectors: sels}
}

// SetOrigin stamps every member Selector with the source-order coordinates
// its Specificity needs. Called once by the stylesheet parser/cascade when
// a CompoundSelector is registered against a stylesheet.
func (c *CompoundSelector) SetOrigin(stylesheetIndex, ruleIndex int, inline bool) {
	for _, s := range c.Selectors {
		s.withOrigin(stylesheetIndex, ruleIndex, inline)
	}
}

// Specificity returns the maximum specificity among member Selectors.
func (c *CompoundSelector) Specificity() Specificity {
	best := Zero
	for _, s := range c.Selectors {
		if sp := s.Specificity(); sp > best {
			best = sp
		}
	}
	return best
}
