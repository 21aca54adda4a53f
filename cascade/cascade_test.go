package cascade_test

import (
	"testing"

	"github.com/npillmayer/stylecore/cascade"
	"github.com/npillmayer/stylecore/css"
)

func mustSheet(t *testing.T, src string) css.Stylesheet {
	t.Helper()
	sheet, err := css.TryParseStylesheet(src, "t.css")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return sheet
}

func TestBareElementNameRuleMatches(t *testing.T) {
	m := cascade.NewManager()
	m.AddStylesheet(mustSheet(t, `p { color: red; }`))

	p := newFake("p")
	s := m.ComputeStyle(p, nil)
	if s.Color() != mustColor(t, "red") {
		t.Fatalf("Color() = %v, expected red to have been applied", s.Color())
	}
}

func TestMoreSpecificSelectorWins(t *testing.T) {
	m := cascade.NewManager()
	m.AddStylesheet(mustSheet(t, `
		.foo { color: blue; }
		.foo .foo { color: green; }
	`))

	inner := newFake("span").withClass("foo")
	_ = newFake("div", inner).withClass("foo")

	styled := m.ComputeStyle(inner, nil)
	green := mustColor(t, "green")
	if styled.Color() != green {
		t.Errorf("Color() = %v, want green (the more specific descendant rule)", styled.Color())
	}
}

func TestLaterRuleWinsOnEqualSpecificity(t *testing.T) {
	m := cascade.NewManager()
	m.AddStylesheet(mustSheet(t, `
		p { color: blue; }
		p { color: red; }
	`))

	p := newFake("p")
	s := m.ComputeStyle(p, nil)
	red := mustColor(t, "red")
	if s.Color() != red {
		t.Errorf("Color() = %v, want red (later rule of equal specificity)", s.Color())
	}
}

func TestImportantOverridesHigherSpecificity(t *testing.T) {
	m := cascade.NewManager()
	m.AddStylesheet(mustSheet(t, `
		#x { color: blue; }
		p { color: red !important; }
	`))

	p := newFake("p").withID("x")
	s := m.ComputeStyle(p, nil)
	red := mustColor(t, "red")
	if s.Color() != red {
		t.Errorf("Color() = %v, want red (!important beats a plain #id rule)", s.Color())
	}
}

func TestInheritedPropertyFlowsToChild(t *testing.T) {
	m := cascade.NewManager()
	m.AddStylesheet(mustSheet(t, `div { color: green; }`))

	child := newFake("span")
	parentEl := newFake("div", child)

	parentStyle := m.ComputeStyle(parentEl, nil)
	childStyle := m.ComputeStyle(child, parentStyle)

	green := mustColor(t, "green")
	if childStyle.Color() != green {
		t.Errorf("child Color() = %v, want inherited green from parent div", childStyle.Color())
	}
}

func TestNonInheritedPropertyDoesNotFlowToChild(t *testing.T) {
	m := cascade.NewManager()
	m.AddStylesheet(mustSheet(t, `div { display: none; }`))

	child := newFake("span")
	parentEl := newFake("div", child)

	parentStyle := m.ComputeStyle(parentEl, nil)
	childStyle := m.ComputeStyle(child, parentStyle)

	if childStyle.Display() != "block" {
		t.Errorf("child Display() = %q, want default block (display does not inherit)", childStyle.Display())
	}
}

func TestAttributesAndClassNamesUsedByStyles(t *testing.T) {
	m := cascade.NewManager()
	m.AddStylesheet(mustSheet(t, `
		.foo { color: red; }
		.foo { background-color: blue; }
		[lang] { color: green; }
	`))

	if got := m.ClassNamesUsedByStyles("foo"); got != 2 {
		t.Errorf("ClassNamesUsedByStyles(foo) = %d, want 2", got)
	}
	if got := m.AttributesUsedByStyles("lang"); got != 1 {
		t.Errorf("AttributesUsedByStyles(lang) = %d, want 1", got)
	}
}

func TestRemoveStylesheetDropsItsRules(t *testing.T) {
	m := cascade.NewManager()
	id := m.AddStylesheet(mustSheet(t, `p { color: red; }`))
	m.RemoveStylesheet(id)

	p := newFake("p")
	s := m.ComputeStyle(p, nil)
	if s.Color() != css.Black {
		t.Errorf("Color() = %v, want default black after the only stylesheet was removed", s.Color())
	}
}

// mustColor parses a single color declaration through the real property
// grammar so test expectations stay in sync with color.go's keyword table.
func mustColor(t *testing.T, keyword string) css.Color {
	t.Helper()
	sheet := mustSheet(t, "x{color:"+keyword+";}")
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	p, ok := sheet.Rules[0].Declarations.Find(css.PropColor)
	if !ok {
		t.Fatalf("expected a color declaration")
	}
	c, ok := p.Value.(css.Color)
	if !ok {
		t.Fatalf("expected css.Color value, got %T", p.Value)
	}
	return c
}
