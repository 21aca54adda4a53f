package selector_test

import (
	"testing"

	"github.com/npillmayer/stylecore/selector"
)

func TestParseSimple(t *testing.T) {
	cs, ok := selector.Parse("div.foo#bar[lang|=\"en\"]:hover", "t.css", nil)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if len(cs.Selectors) != 1 {
		t.Fatalf("expected one selector, got %d", len(cs.Selectors))
	}
	sel := cs.Selectors[0]
	if len(sel.Components) != 1 {
		t.Fatalf("expected one component, got %d", len(sel.Components))
	}
	simple := sel.Components[0].Simple
	if simple.ElementName != "div" {
		t.Fatalf("unexpected element name: %q", simple.ElementName)
	}
	if len(simple.Filters) != 4 {
		t.Fatalf("expected 4 filters, got %d: %#v", len(simple.Filters), simple.Filters)
	}
}

func TestParseCombinators(t *testing.T) {
	cs, ok := selector.Parse("div > p + span ~ a b", "t.css", nil)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	comps := cs.Selectors[0].Components
	if len(comps) != 5 {
		t.Fatalf("expected 5 components, got %d", len(comps))
	}
	want := []selector.Combinator{selector.Self, selector.Child, selector.AdjacentSibling, selector.GeneralSibling, selector.Descendant}
	for i, c := range comps {
		if c.Combinator != want[i] {
			t.Fatalf("component %d: got combinator %v, want %v", i, c.Combinator, want[i])
		}
	}
}

func TestParseCommaSeparated(t *testing.T) {
	cs, ok := selector.Parse("a, b.c", "t.css", nil)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if len(cs.Selectors) != 2 {
		t.Fatalf("expected 2 selectors, got %d", len(cs.Selectors))
	}
}

func TestParseIsNot(t *testing.T) {
	cs, ok := selector.Parse(":not(.foo)", "t.css", nil)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	f := cs.Selectors[0].Components[0].Simple.Filters[0]
	if f.Kind != selector.FilterNot {
		t.Fatalf("expected FilterNot, got %v", f.Kind)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	src := "div.foo > p#bar"
	cs, ok := selector.Parse(src, "t.css", nil)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	out := cs.Serialize()
	cs2, ok := selector.Parse(out, "t.css", nil)
	if !ok {
		t.Fatalf("expected re-parse of serialized form to succeed: %q", out)
	}
	if cs2.Serialize() != out {
		t.Fatalf("serialize is not idempotent: %q vs %q", out, cs2.Serialize())
	}
}

func TestParseInvalidReturnsFalse(t *testing.T) {
	_, ok := selector.Parse(".", "t.css", nil)
	if ok {
		t.Fatalf("expected parse of a bare '.' to fail")
	}
}
