package query

import (
	"strconv"
	"strings"

	"github.com/npillmayer/stylecore/domiface"
	"github.com/npillmayer/stylecore/selector"
)

// Planner plans and executes Selector searches over a domiface Element
// tree, preferring indexed starting sets from a host-supplied
// ElementLookupTables over a full subtree scan whenever one is cheaper.
type Planner struct{}

// NewPlanner returns a stateless Planner; all memoization lives in the
// ElementLookupTables the caller passes to Find.
func NewPlanner() *Planner { return &Planner{} }

type planCache struct {
	perSimple   map[string]simplePlan
	perSelector map[*selector.Selector]*Plan
}

func loadCache(lookup domiface.ElementLookupTables) *planCache {
	if lookup == nil {
		return nil
	}
	slot := lookup.PlanCache()
	if slot.Value == nil {
		slot.Value = &planCache{perSimple: map[string]simplePlan{}, perSelector: map[*selector.Selector]*Plan{}}
	}
	return slot.Value.(*planCache)
}

// simpleSignature renders a SimpleSelector's shape (not its position in any
// particular Selector) into a string key so the per-simple-selector cost
// cache can be shared across every rule whose rightmost or intermediate
// component happens to look the same.
func simpleSignature(s selector.SimpleSelector) string {
	var b strings.Builder
	b.WriteString(s.ElementName)
	for _, f := range s.Filters {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(int(f.Kind)))
		b.WriteByte(':')
		b.WriteString(f.Name)
		if f.Kind == selector.FilterAttr {
			b.WriteByte('=')
			b.WriteString(f.AttrValue)
		}
	}
	return b.String()
}

// Find returns every element in root's subtree (root included) that
// selector.IsMatch accepts, choosing the cheapest available traversal
// strategy. lookup may be nil, in which case Find always falls back to a
// full subtree scan.
func (p *Planner) Find(root domiface.Element, sel *selector.Selector, lookup domiface.ElementLookupTables) []domiface.Element {
	cache := loadCache(lookup)
	plan := p.planFor(root, sel, lookup, cache)
	return p.execute(root, sel, plan, lookup, cache)
}

// FindCompound is Find's counterpart for a comma-separated selector list: it
// plans and executes each alternative in turn and returns the union of their
// matches, alternative by alternative (each in its plan's visiting order),
// with duplicates (an element satisfying more than one alternative) removed. This is the planner-backed
// replacement for selector.CompoundSelector.Find/Closest's plain subtree
// scan: a host holding a domiface.ElementLookupTables should call this
// instead so find() actually benefits from indexed starting sets.
func (p *Planner) FindCompound(root domiface.Element, c *selector.CompoundSelector, lookup domiface.ElementLookupTables) []domiface.Element {
	if c == nil || root == nil {
		return nil
	}
	seen := make(map[domiface.Element]bool)
	var out []domiface.Element
	for _, sel := range c.Selectors {
		for _, e := range p.Find(root, sel, lookup) {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// PlanFor returns the plan Find would use for sel against root right now,
// without executing it — chiefly useful for inspecting Plan.Description()
// in tests and diagnostics.
func (p *Planner) PlanFor(root domiface.Element, sel *selector.Selector, lookup domiface.ElementLookupTables) *Plan {
	return p.planFor(root, sel, lookup, loadCache(lookup))
}

// planFor returns a usable Plan for sel, reusing a cached one unless it was
// invalidated by a prior execution's adaptive re-planning check.
func (p *Planner) planFor(root domiface.Element, sel *selector.Selector, lookup domiface.ElementLookupTables, cache *planCache) *Plan {
	if cache != nil {
		if cached, ok := cache.perSelector[sel]; ok {
			return cached
		}
	}
	plan := p.buildPlan(root, sel, lookup, cache)
	if cache != nil {
		cache.perSelector[sel] = plan
	}
	return plan
}

// buildPlan walks sel's components right-to-left, gets each simple
// selector's best per-simple-selector source (from the shared cache when
// present), and keeps the globally cheapest combination of anchor
// component + traversal mode.
func (p *Planner) buildPlan(root domiface.Element, sel *selector.Selector, lookup domiface.ElementLookupTables, cache *planCache) *Plan {
	comps := sel.Components
	var best *Plan

	for i := len(comps) - 1; i >= 0; i-- {
		sp, elems := p.simplePlanFor(comps[i].Simple, root, lookup, cache)

		var traversal TraversalMode
		var cost int
		switch {
		case sp.strategy == ScanAll:
			// ScanAll's "source" is a placeholder for root itself; the only
			// meaningful traversal from it is a full descendant walk.
			traversal = Descendants
			cost = sp.estimatedCost
		case i == len(comps)-1:
			traversal = Self
			cost = sp.estimatedCost
		default:
			switch comps[i+1].Combinator {
			case selector.AdjacentSibling, selector.GeneralSibling:
				// A sibling of the anchor is not among its descendants, so
				// no traversal from this anchor reaches the matching element.
				continue
			case selector.Child:
				if i+1 == len(comps)-1 {
					traversal = Children
					cost = sumChildCounts(elems)
					break
				}
				traversal = Descendants
				cost = sumDescendantCounts(elems)
			default:
				traversal = Descendants
				cost = sumDescendantCounts(elems)
			}
			cost += sp.estimatedCost
		}

		cand := &Plan{
			componentIndex: i,
			source:         sp,
			traversal:      traversal,
			description:    describeSource(sp) + ", traverse " + traversalName(traversal),
			estimatedCost:  cost,
		}
		if best == nil || cand.estimatedCost < best.estimatedCost {
			best = cand
		}
	}
	return best
}

func traversalName(t TraversalMode) string {
	switch t {
	case Self:
		return "self"
	case Children:
		return "children"
	}
	return "descendants"
}

// simplePlanFor returns the cheapest source for one simple selector,
// consulting and refreshing the shared per-simple-selector cache.
func (p *Planner) simplePlanFor(simple selector.SimpleSelector, root domiface.Element, lookup domiface.ElementLookupTables, cache *planCache) (simplePlan, []domiface.Element) {
	cands := candidateSources(simple, lookup, root)
	best, elems := cheapestSource(cands)

	if cache != nil {
		sig := simpleSignature(simple)
		if cached, ok := cache.perSimple[sig]; ok && cached.strategy == best.strategy && cached.key == best.key {
			best.estimatedCost = cached.estimatedCost
		}
		cache.perSimple[sig] = best
	}
	return best, elems
}

func sumChildCounts(elems []domiface.Element) int {
	n := 0
	for _, e := range elems {
		n += e.ChildElementCount()
	}
	return n
}

func sumDescendantCounts(elems []domiface.Element) int {
	n := 0
	for _, e := range elems {
		n += e.DescendantElementCount()
	}
	return n
}

// execute runs the chosen plan, verifying every traversed candidate against
// the full selector before accepting it (so an imprecise cost estimate can
// never produce a wrong result, only a slower one), then records the actual
// cost and applies the adaptive re-planning check.
func (p *Planner) execute(root domiface.Element, sel *selector.Selector, plan *Plan, lookup domiface.ElementLookupTables, cache *planCache) []domiface.Element {
	_, elems := candidateSourceElems(plan.source, sel.Components[plan.componentIndex].Simple, root, lookup)

	var visited []domiface.Element
	switch plan.traversal {
	case Self:
		visited = elems
	case Children:
		for _, e := range elems {
			visited = append(visited, e.ChildNodes()...)
		}
	default:
		// A descendant walk is inclusive of its anchor, the way
		// selector.CompoundSelector.Find treats root as inclusive: an
		// anchor may itself satisfy the full selector, and when the
		// anchor is root falling back to ScanAll, skipping it here would
		// silently drop a matching root from every result.
		for _, e := range elems {
			visited = append(visited, e)
			e.Descendants(func(d domiface.Element) bool {
				visited = append(visited, d)
				return true
			})
		}
	}

	within := func(e domiface.Element) bool {
		for a := e; a != nil; a = a.Parent() {
			if a == root {
				return true
			}
		}
		return false
	}
	var matched []domiface.Element
	for _, e := range visited {
		if within(e) && sel.IsMatch(e) {
			matched = append(matched, e)
		}
	}

	plan.actualCost = len(visited)
	plan.actualResult = len(matched)
	reviseEstimates(plan, cache)
	return matched
}

// candidateSourceElems re-resolves a chosen simplePlan's element set against
// the live lookup tables, rather than reusing a stale slice captured during
// planning.
func candidateSourceElems(sp simplePlan, simple selector.SimpleSelector, root domiface.Element, lookup domiface.ElementLookupTables) (simplePlan, []domiface.Element) {
	if lookup == nil || sp.strategy == ScanAll {
		return sp, []domiface.Element{root}
	}
	switch sp.strategy {
	case ByElementType:
		return sp, lookup.ByElementType(sp.key)
	case ByID:
		return sp, lookup.ByID(sp.key)
	case ByClassName:
		return sp, lookup.ByClassName(sp.key)
	case ByAttrName:
		return sp, lookup.ByName(sp.key)
	case ByAttrType:
		return sp, lookup.ByTypeAttribute(sp.key)
	}
	return sp, []domiface.Element{root}
}

// reviseEstimates implements the 3:2 adaptive re-planning rule: when the
// measured cost (or result size) strays too far from what the cached plan
// predicted, drop the outer (per-selector) plan so the next Find re-plans
// against the document's current shape, while leaving the per-simple-
// selector cost estimates untouched.
func reviseEstimates(plan *Plan, cache *planCache) {
	if cache == nil {
		return
	}
	deviates := func(estimated, actual int) bool {
		if estimated == 0 || actual == 0 {
			return estimated != actual
		}
		ratio := float64(actual) / float64(estimated)
		return ratio > 1.5 || ratio < 2.0/3.0
	}
	if deviates(plan.estimatedCost, plan.actualCost) || deviates(plan.actualCost, plan.actualResult) {
		for sel, cached := range cache.perSelector {
			if cached == plan {
				delete(cache.perSelector, sel)
			}
		}
	}
}
