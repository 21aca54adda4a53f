package entity_test

import (
	"testing"

	"github.com/npillmayer/stylecore/entity"
)

func TestUnescapeNamedAndNumeric(t *testing.T) {
	got := entity.Unescape("&lt;&amp;&gt;&#65;")
	if got != "<&>A" {
		t.Fatalf("Unescape = %q, want %q", got, "<&>A")
	}
}

func TestEscapeMarkupSignificantChars(t *testing.T) {
	got := entity.Escape("<&>", false, false)
	if got != "&lt;&amp;&gt;" {
		t.Fatalf("Escape = %q, want %q", got, "&lt;&amp;&gt;")
	}
}

func TestUnescapeToleratesMissingSemicolon(t *testing.T) {
	if got := entity.Unescape("&ltfoo"); got != "<foo" {
		t.Fatalf("Unescape = %q, want %q", got, "<foo")
	}
}

func TestUnescapeLeavesInvalidEscapesVerbatim(t *testing.T) {
	if got := entity.Unescape("&notaentity;"); got != "&notaentity;" {
		t.Fatalf("Unescape = %q, want input unchanged", got)
	}
	if got := entity.Unescape("&#9999999;"); got != "&#9999999;" {
		t.Fatalf("Unescape of out-of-range numeric escape = %q, want unchanged", got)
	}
	if got := entity.Unescape("& not an entity"); got != "& not an entity" {
		t.Fatalf("Unescape = %q, want unchanged", got)
	}
}

func TestIsKnownEntity(t *testing.T) {
	if !entity.IsKnownEntity('&') || !entity.IsKnownEntity('é') {
		t.Fatalf("expected '&' and é to be known entities")
	}
	if entity.IsKnownEntity('Z') {
		t.Fatalf("'Z' should not be a known entity")
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{
		"plain ascii text",
		"<div class=\"x\">Tom & Jerry</div>",
		"café élève", // mixes two known accented-letter entities (é, è) with plain ASCII
	}
	for _, s := range cases {
		escaped := entity.Escape(s, false, false)
		if got := entity.Unescape(escaped); got != s {
			t.Fatalf("round trip for %q: escaped=%q, unescaped=%q", s, escaped, got)
		}
	}
}

func TestEscapePureASCIIEscapesNonEntityHighCodepoints(t *testing.T) {
	const ch = "ā" // U+0101, outside the Latin-1 Supplement entities we table
	got := entity.Escape(ch, false, false)
	if got != ch {
		t.Fatalf("Escape without pureASCII should leave non-entity high code points alone, got %q", got)
	}
	got = entity.Escape(ch, true, false)
	if got != "&#257;" {
		t.Fatalf("Escape with pureASCII = %q, want %q", got, "&#257;")
	}
}

func TestEscapeControlCodes(t *testing.T) {
	got := entity.Escape("a\tb", false, false)
	if got != "a\tb" {
		t.Fatalf("Escape without controlCodes should leave tab alone, got %q", got)
	}
	got = entity.Escape("a\tb", false, true)
	if got != "a&#9;b" {
		t.Fatalf("Escape with controlCodes = %q, want %q", got, "a&#9;b")
	}
}
