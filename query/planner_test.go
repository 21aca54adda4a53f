package query_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/stylecore/query"
	"github.com/npillmayer/stylecore/selector"
)

// bigTreeWithThreeIDs builds a document with ~10,000 elements, exactly 3 of
// which carry id="x" and class="foo", scattered among plain divs.
func bigTreeWithThreeIDs(t *testing.T) (*fakeElement, *fakeLookup) {
	t.Helper()
	root := newFake("body")
	idCount := 0
	for i := 0; i < 3000; i++ {
		var child *fakeElement
		if i%1000 == 0 && idCount < 3 {
			idCount++
			child = newFake("div", newFake("span").withClass("foo")).withID("x" + strconv.Itoa(idCount))
		} else {
			child = newFake("div", newFake("span"))
		}
		root.children = append(root.children, child)
		child.parent = root
	}
	// Exactly one of the three gets the literal id "x" the scenario asks for.
	root.children[0].id = "x"
	lookup := newFakeLookup(root)
	return root, lookup
}

func TestPlannerPrefersIDIndexOverFullScan(t *testing.T) {
	root, lookup := bigTreeWithThreeIDs(t)
	sel, ok := selector.Parse("#x .foo", "t.css", nil)
	if !ok {
		t.Fatalf("expected selector to parse")
	}

	p := query.NewPlanner()
	plan := p.PlanFor(root, sel.Selectors[0], lookup)
	if !strings.HasPrefix(plan.Description(), "Start at '#x'") {
		t.Fatalf("Description() = %q, want prefix \"Start at '#x'\"", plan.Description())
	}

	matched := p.Find(root, sel.Selectors[0], lookup)
	if len(matched) == 0 {
		t.Fatalf("expected at least one match")
	}

	// Re-run to exercise the cached plan path.
	p.Find(root, sel.Selectors[0], lookup)
}

func TestPlannerMatchesSelectorIsMatchSet(t *testing.T) {
	root := newFake("body",
		newFake("div", newFake("span").withClass("foo")).withClass("bar"),
		newFake("div", newFake("span")),
	)
	lookup := newFakeLookup(root)
	sel, ok := selector.Parse(".bar span.foo", "t.css", nil)
	if !ok {
		t.Fatalf("expected selector to parse")
	}

	p := query.NewPlanner()
	matched := p.Find(root, sel.Selectors[0], lookup)
	if len(matched) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(matched))
	}
	el, ok := matched[0].(*fakeElement)
	if !ok || el.name != "span" || !el.classes.Has("foo") {
		t.Fatalf("expected the matched element to be span.foo, got %#v", matched[0])
	}
}

func TestPlannerFallsBackWithoutLookupTables(t *testing.T) {
	root := newFake("body", newFake("p"), newFake("span").withClass("x"))
	sel, ok := selector.Parse(".x", "t.css", nil)
	if !ok {
		t.Fatalf("expected selector to parse")
	}

	p := query.NewPlanner()
	matched := p.Find(root, sel.Selectors[0], nil)
	if len(matched) != 1 {
		t.Fatalf("expected 1 match via full scan fallback, got %d", len(matched))
	}
}

// TestPlannerFallsBackIncludesMatchingRoot exercises the case
// TestPlannerFallsBackWithoutLookupTables doesn't: root itself satisfies
// the selector. Find's fallback scan must still report it, since find()
// is documented as inclusive of root.
func TestPlannerFallsBackIncludesMatchingRoot(t *testing.T) {
	root := newFake("body", newFake("p")).withClass("x")
	sel, ok := selector.Parse(".x", "t.css", nil)
	if !ok {
		t.Fatalf("expected selector to parse")
	}

	p := query.NewPlanner()
	matched := p.Find(root, sel.Selectors[0], nil)
	if len(matched) != 1 || matched[0] != root {
		t.Fatalf("expected root itself as the sole match, got %v", matched)
	}
}

// TestPlannerFindCompoundUnionsAlternatives exercises FindCompound, the
// planner-backed counterpart of selector.CompoundSelector.Find: it must
// union matches from every comma-separated alternative without duplicating
// an element that satisfies more than one.
func TestPlannerFindCompoundUnionsAlternatives(t *testing.T) {
	root := newFake("body",
		newFake("p").withClass("x"),
		newFake("span").withClass("y"),
		newFake("div"),
	)
	lookup := newFakeLookup(root)
	sel, ok := selector.Parse(".x, .y, p", "t.css", nil)
	if !ok {
		t.Fatalf("expected selector to parse")
	}

	p := query.NewPlanner()
	matched := p.FindCompound(root, sel, lookup)
	if len(matched) != 2 {
		t.Fatalf("expected 2 distinct matches (p.x and span.y), got %d: %v", len(matched), matched)
	}
}
