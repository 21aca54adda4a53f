package styledbg_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/npillmayer/stylecore/cascade"
	"github.com/npillmayer/stylecore/cascade/styledbg"
	"github.com/npillmayer/stylecore/css"
	"github.com/npillmayer/stylecore/domhtml"
	"github.com/npillmayer/stylecore/domiface"
)

func TestToGraphVizProducesDotSource(t *testing.T) {
	sheet, err := css.TryParseStylesheet(`div { color: blue; }`, "t.css")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	m := cascade.NewManager()
	m.AddStylesheet(sheet)

	root, err := html.Parse(strings.NewReader(`<html><body><div>hi</div></body></html>`))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	doc := domhtml.NewDocument()
	htmlRoot := doc.Wrap(root)
	var div *domhtml.Element
	htmlRoot.Descendants(func(e domiface.Element) bool {
		if e.NodeName() == "div" {
			div = e.(*domhtml.Element)
			return false
		}
		return true
	})
	if div == nil {
		t.Fatalf("expected to find a div element")
	}

	styled, err := m.StyleTree(div)
	if err != nil {
		t.Fatalf("StyleTree: %v", err)
	}

	var buf strings.Builder
	styledbg.ToGraphViz(styled, &buf, nil)
	out := buf.String()
	if !strings.HasPrefix(out, "digraph g {") {
		t.Fatalf("expected DOT output to start with digraph header, got: %.40s", out)
	}
	if !strings.Contains(out, "div") {
		t.Fatalf("expected output to mention the div element, got: %s", out)
	}
	if !strings.Contains(out, "color:") {
		t.Fatalf("expected output to include a color property, got: %s", out)
	}
}
