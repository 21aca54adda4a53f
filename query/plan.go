package query

import (
	"fmt"

	"github.com/npillmayer/stylecore/domiface"
	"github.com/npillmayer/stylecore/selector"
)

// SourceStrategy is one of the six ways a plan can produce a starting
// element set for a simple selector (five indexed lookups plus ScanAll).
type SourceStrategy int

const (
	ScanAll SourceStrategy = iota
	ByElementType
	ByID
	ByClassName
	ByAttrName
	ByAttrType
)

func (s SourceStrategy) String() string {
	switch s {
	case ByElementType:
		return "element type"
	case ByID:
		return "id"
	case ByClassName:
		return "class"
	case ByAttrName:
		return "name attribute"
	case ByAttrType:
		return "type attribute"
	}
	return "scan-all"
}

// TraversalMode is how a plan walks from its source set to candidate
// elements: testing the source elements themselves, their direct children,
// or their full descendant subtrees. Sibling combinators are deliberately
// excluded — the right-to-left walk only ever anchors on a Self, Child, or
// Descendant position, since `+`/`~` positions are hard to index cheaply.
type TraversalMode int

const (
	Self TraversalMode = iota
	Children
	Descendants
)

// simplePlan is the cheapest source+traversal choice found for one
// SimpleSelector in isolation, independent of where it sits in its
// enclosing Selector's component chain.
type simplePlan struct {
	strategy      SourceStrategy
	key           string // id/class/attr value, or element name; empty for ScanAll
	estimatedCost int
}

// Plan is the chosen strategy for executing one Selector's find(root): which
// component anchors the search, what its source set is, and how to walk
// from there to reach candidate elements (each still verified against the
// full selector before being accepted).
type Plan struct {
	componentIndex int
	source         simplePlan
	traversal      TraversalMode
	description    string

	estimatedCost int
	actualCost    int
	actualResult  int
}

// Description returns the human-readable summary of this plan's starting
// point, e.g. "Start at '#x', traverse descendants".
func (p *Plan) Description() string { return p.description }

func describeSource(sp simplePlan) string {
	switch sp.strategy {
	case ByID:
		return fmt.Sprintf("Start at '#%s'", sp.key)
	case ByClassName:
		return fmt.Sprintf("Start at '.%s'", sp.key)
	case ByElementType:
		return fmt.Sprintf("Start at '%s'", sp.key)
	case ByAttrName:
		return fmt.Sprintf("Start at '[name=%s]'", sp.key)
	case ByAttrType:
		return fmt.Sprintf("Start at '[type=%s]'", sp.key)
	}
	return "Start at full subtree scan"
}

// candidateSources enumerates the indexed source-set options a simple
// selector offers, each paired with the host lookup that would produce it.
// ScanAll is always included as the universal fallback.
func candidateSources(simple selector.SimpleSelector, lookup domiface.ElementLookupTables, root domiface.Element) []struct {
	plan  simplePlan
	elems []domiface.Element
} {
	var out []struct {
		plan  simplePlan
		elems []domiface.Element
	}
	add := func(strategy SourceStrategy, key string, elems []domiface.Element) {
		out = append(out, struct {
			plan  simplePlan
			elems []domiface.Element
		}{simplePlan{strategy: strategy, key: key, estimatedCost: len(elems)}, elems})
	}

	if lookup != nil {
		if !simple.IsUniversal() {
			add(ByElementType, simple.ElementName, lookup.ByElementType(simple.ElementName))
		}
		for _, f := range simple.Filters {
			switch f.Kind {
			case selector.FilterID:
				add(ByID, f.Name, lookup.ByID(f.Name))
			case selector.FilterClass:
				add(ByClassName, f.Name, lookup.ByClassName(f.Name))
			case selector.FilterAttr:
				if f.AttrOp == selector.AttrEq {
					switch f.Name {
					case "name":
						add(ByAttrName, f.AttrValue, lookup.ByName(f.AttrValue))
					case "type":
						add(ByAttrType, f.AttrValue, lookup.ByTypeAttribute(f.AttrValue))
					}
				}
			}
		}
	}

	out = append(out, struct {
		plan  simplePlan
		elems []domiface.Element
	}{simplePlan{strategy: ScanAll, estimatedCost: root.DescendantElementCount()}, []domiface.Element{root}})
	return out
}

// cheapestSource picks the lowest-estimated-cost candidate, preferring any
// indexed strategy over ScanAll on a tie (an indexed source is never worse
// to have narrowed the element set, even when sizes happen to coincide).
func cheapestSource(cands []struct {
	plan  simplePlan
	elems []domiface.Element
}) (simplePlan, []domiface.Element) {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.plan.estimatedCost < best.plan.estimatedCost ||
			(c.plan.estimatedCost == best.plan.estimatedCost && best.plan.strategy == ScanAll) {
			best = c
		}
	}
	return best.plan, best.elems
}
