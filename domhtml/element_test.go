package domhtml_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/npillmayer/stylecore/domhtml"
	"github.com/npillmayer/stylecore/domiface"
	"github.com/npillmayer/stylecore/messages"
)

func parse(t *testing.T, src string) (*domhtml.Document, *domhtml.Element) {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	doc := domhtml.NewDocument()
	return doc, doc.Wrap(root)
}

func findByTag(e *domhtml.Element, name string) *domhtml.Element {
	var found *domhtml.Element
	e.Descendants(func(d domiface.Element) bool {
		if d.NodeName() == name {
			found = d.(*domhtml.Element)
			return false
		}
		return true
	})
	return found
}

func TestElementBasics(t *testing.T) {
	_, root := parse(t, `<html><body><div id="x" class="foo bar"><span>hi</span></div></body></html>`)
	div := findByTag(root, "div")
	if div == nil {
		t.Fatalf("expected to find a div")
	}
	if div.ID() != "x" {
		t.Fatalf("ID() = %q, want %q", div.ID(), "x")
	}
	if !div.ClassNames().Has("foo") || !div.ClassNames().Has("bar") {
		t.Fatalf("expected classes foo and bar")
	}
	if div.ChildElementCount() != 1 {
		t.Fatalf("ChildElementCount() = %d, want 1", div.ChildElementCount())
	}
	span := div.ChildNodes()[0]
	if span.NodeName() != "span" {
		t.Fatalf("NodeName() = %q, want %q", span.NodeName(), "span")
	}
	if span.Parent().(*domhtml.Element).NodeName() != "div" {
		t.Fatalf("expected span's parent to be the div")
	}
}

func TestSiblingNavigationSkipsText(t *testing.T) {
	_, root := parse(t, `<html><body><p>a</p>   <p>b</p></body></html>`)
	first := findByTag(root, "p")
	next := first.NextSibling()
	if next == nil || next.NodeName() != "p" {
		t.Fatalf("expected NextSibling to skip whitespace text and land on the second <p>")
	}
}

func TestDescendantElementCount(t *testing.T) {
	_, root := parse(t, `<html><body><div><span></span><span><a></a></span></div></body></html>`)
	div := findByTag(root, "div")
	if got := div.DescendantElementCount(); got != 3 {
		t.Fatalf("DescendantElementCount() = %d, want 3", got)
	}
}

func TestExtractStyleElementsFindsNestedStyle(t *testing.T) {
	src := `<html><head><style>p { color: red; }</style></head>
<body><div><style>span { color: blue; }</style></div></body></html>`
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	msgs := messages.New()
	sheets := domhtml.ExtractStyleElements(root, msgs)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 extracted stylesheets, got %d", len(sheets))
	}
	if len(sheets[0].Rules) != 1 || len(sheets[1].Rules) != 1 {
		t.Fatalf("expected one rule per extracted stylesheet")
	}
}

func TestInlineStyleParsesStyleAttribute(t *testing.T) {
	_, root := parse(t, `<html><body><div style="color: green; background: yellow"></div></body></html>`)
	div := findByTag(root, "div")
	msgs := messages.New()
	decls := domhtml.InlineStyle(div, msgs)
	if decls.Len() == 0 {
		t.Fatalf("expected inline style to parse at least one declaration")
	}
}
