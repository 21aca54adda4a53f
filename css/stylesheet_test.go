package css_test

import (
	"testing"

	"github.com/npillmayer/stylecore/css"
)

func TestParseStylesheetBasic(t *testing.T) {
	src := `
		p { color: red; margin: 1px; }
		.a, .b { display: none; }
	`
	sheet := css.ParseStylesheet(src, "basic.css", newMsgs())
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules))
	}
	if sheet.Rules[0].Declarations.Len() != 2 {
		t.Errorf("expected 2 declarations in first rule, got %d", sheet.Rules[0].Declarations.Len())
	}
}

func TestParseStylesheetSkipsAtRules(t *testing.T) {
	src := `
		@import "other.css";
		@media screen { p { color: red; } }
		a { color: blue; }
	`
	sheet := css.ParseStylesheet(src, "at.css", newMsgs())
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected at-rules to be skipped whole, got %d rules", len(sheet.Rules))
	}
	if sheet.Rules[0].Selectors == nil {
		t.Fatalf("expected a selector on the surviving rule")
	}
}

func TestParseStylesheetRecoversFromMalformedRule(t *testing.T) {
	src := `
		p { color: red;
		.broken-rule-missing-brace
		a { color: blue; }
	`
	sheet := css.ParseStylesheet(src, "broken.css", newMsgs())
	if len(sheet.Rules) == 0 {
		t.Fatalf("expected at least one rule to survive recovery")
	}
}

func TestTryParseStylesheetStrictError(t *testing.T) {
	_, err := css.TryParseStylesheet(`p { unknown-prop: 1; }`, "strict.css")
	if err == nil {
		t.Errorf("expected an error from strict parsing of an unknown property")
	}
}
