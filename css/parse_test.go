package css_test

import (
	"testing"

	"github.com/npillmayer/stylecore/css"
	"github.com/npillmayer/stylecore/token"
)

func parseDecl(t *testing.T, name, value string) css.StyleProperty {
	t.Helper()
	msgs := newMsgs()
	lx := token.New(value, "test.css", msgs)
	lx.Next() // consume ':'
	return css.ParseDeclaration(name, lx, msgs)
}

func TestParseLengthProperty(t *testing.T) {
	p := parseDecl(t, "padding-top", ": 10px")
	if !p.Flags.Valid {
		t.Fatalf("expected valid property")
	}
	m, ok := p.Value.(css.Measure)
	if !ok {
		t.Fatalf("expected css.Measure, got %T", p.Value)
	}
	if m.Units != css.UnitPx || m.Value != 10 {
		t.Errorf("unexpected measure: %+v", m)
	}
}

func TestParseColorProperty(t *testing.T) {
	p := parseDecl(t, "color", ": #ff0000")
	c, ok := p.Value.(css.Color)
	if !ok {
		t.Fatalf("expected css.Color, got %T", p.Value)
	}
	if c.R != 0xff || c.G != 0 || c.B != 0 {
		t.Errorf("unexpected color: %+v", c)
	}
}

func TestParseUnknownProperty(t *testing.T) {
	p := parseDecl(t, "frobnicate-level", ": 9000")
	if p.Flags.Valid {
		t.Errorf("unknown property should be invalid")
	}
	if p.Kind != css.Unknown {
		t.Errorf("expected Unknown kind")
	}
}

func TestParseImportantFlag(t *testing.T) {
	p := parseDecl(t, "display", ": none !important")
	if !p.Flags.Important {
		t.Errorf("expected Important flag set")
	}
}

func TestParseCSSWideKeyword(t *testing.T) {
	p := parseDecl(t, "color", ": inherit")
	if !p.Flags.Inherit {
		t.Errorf("expected Inherit flag set")
	}
}

func TestParseMarginShorthandDecomposes(t *testing.T) {
	p := parseDecl(t, "margin", ": 1px 2px 3px 4px")
	vals, ok := p.Value.([]any)
	if !ok || len(vals) != 4 {
		t.Fatalf("expected 4 decomposed edge values, got %#v", p.Value)
	}
	longs := p.Decompose(vals)
	if len(longs) != 4 {
		t.Fatalf("expected 4 longhands, got %d", len(longs))
	}
	if longs[0].Kind != css.PropMarginTop || longs[1].Kind != css.PropMarginRight {
		t.Errorf("unexpected longhand order: %+v", longs)
	}
}

func TestParseInvalidValueRecovers(t *testing.T) {
	msgs := newMsgs()
	lx := token.New(": not-a-color; color: blue", "test.css", msgs)
	lx.Next() // consume ':'
	p := css.ParseDeclaration("color", lx, msgs)
	if p.Flags.Valid {
		t.Errorf("expected invalid property for bad color value")
	}
	if lx.Peek().Kind != token.Semicolon {
		t.Errorf("expected lexer positioned at terminating ';', got %v", lx.Peek().Kind)
	}
}
