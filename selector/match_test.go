package selector_test

import (
	"testing"

	"github.com/npillmayer/stylecore/selector"
)

func TestMatchDescendantAndScenario1(t *testing.T) {
	// div > span.foo with a sibling span.qux and a nested span.foo.
	qux := newFake("span").withClass("qux")
	bill := newFake("span").withClass("foo")
	bar := newFake("div", qux, bill).withClass("bar")
	root := newFake("div", bar).withClass("foo")

	sel, ok := selector.Parse(".foo .foo", "t.css", nil)
	if !ok {
		t.Fatalf("parse failed")
	}
	if !sel.Selectors[0].IsMatch(bill) {
		t.Fatalf("expected .foo .foo to match span.foo")
	}
	if sel.Selectors[0].IsMatch(root) {
		t.Fatalf("did not expect .foo .foo to match the outer div.foo (no ancestor .foo)")
	}
}

func TestMatchChildCombinator(t *testing.T) {
	child := newFake("p")
	parent := newFake("div", child)
	_ = parent
	sel, _ := selector.Parse("div > p", "t.css", nil)
	if !sel.Selectors[0].IsMatch(child) {
		t.Fatalf("expected div > p to match direct child p")
	}

	grandchild := newFake("p")
	mid := newFake("span", grandchild)
	newFake("div", mid)
	if sel.Selectors[0].IsMatch(grandchild) {
		t.Fatalf("did not expect div > p to match a grandchild p")
	}
}

func TestMatchAdjacentSibling(t *testing.T) {
	a := newFake("p")
	b := newFake("p")
	newFake("div", a, b)
	sel, _ := selector.Parse("p + p", "t.css", nil)
	if !sel.Selectors[0].IsMatch(b) {
		t.Fatalf("expected p + p to match the second sibling")
	}
	if sel.Selectors[0].IsMatch(a) {
		t.Fatalf("did not expect p + p to match the first sibling")
	}
}

func TestMatchAttrDashMatch(t *testing.T) {
	cs, _ := selector.Parse(`[lang|="en"]`, "t.css", nil)
	en := newFake("p").withAttr("lang", "en")
	enUS := newFake("p").withAttr("lang", "en-US")
	eng := newFake("p").withAttr("lang", "eng")
	if !cs.IsMatch(en) || !cs.IsMatch(enUS) {
		t.Fatalf("expected dash-match to match 'en' and 'en-US'")
	}
	if cs.IsMatch(eng) {
		t.Fatalf("did not expect dash-match to match 'eng'")
	}
}

func TestMatchIsNot(t *testing.T) {
	cs, _ := selector.Parse(":not(.foo)", "t.css", nil)
	foo := newFake("p").withClass("foo")
	bar := newFake("p").withClass("bar")
	if cs.IsMatch(foo) {
		t.Fatalf(":not(.foo) should not match .foo")
	}
	if !cs.IsMatch(bar) {
		t.Fatalf(":not(.foo) should match .bar")
	}
}

func TestFindReturnsAllMatches(t *testing.T) {
	a := newFake("span").withClass("x")
	b := newFake("span").withClass("x")
	c := newFake("span")
	root := newFake("div", a, b, c)
	cs, _ := selector.Parse(".x", "t.css", nil)
	found := cs.Find(root)
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}
}

func TestCompiledMatcherAgreesWithInterpreted(t *testing.T) {
	cs, _ := selector.Parse("p.foo", "t.css", nil)
	el := newFake("p").withClass("foo")
	other := newFake("p").withClass("bar")
	for i := 0; i < 10; i++ {
		if !cs.IsMatch(el) {
			t.Fatalf("iteration %d: expected match", i)
		}
		if cs.IsMatch(other) {
			t.Fatalf("iteration %d: expected no match", i)
		}
	}
}
