package selector_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/npillmayer/stylecore/domhtml"
	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/selector"
)

// TestCrosscheckAgainstCascadia compiles each selector text with both this
// package's own matcher and cascadia (an independently implemented CSS
// selector engine), matches them against the same golang.org/x/net/html
// document via the domhtml adapter, and requires the two element sets to
// agree. This is the legitimate role for a pre-built selector engine in a
// module whose whole point is to be the selector engine — an oracle, not a
// replacement.
func TestCrosscheckAgainstCascadia(t *testing.T) {
	const docSrc = `<html><body>
		<div class="foo">
			<div class="bar">
				<span class="qux">Alice</span>
				<span class="foo" id="s1">Bill</span>
			</div>
		</div>
		<ul>
			<li class="item" data-x="1">one</li>
			<li class="item" data-x="2">two</li>
		</ul>
		<p lang="en-US">hi</p>
		<p lang="eng">bye</p>
	</body></html>`

	selectors := []string{
		".foo",
		".foo .foo",
		"div > div",
		"span.foo",
		"#s1",
		"li.item",
		"ul > li:first-child",
		"ul > li:last-child",
		"p[lang|=\"en\"]",
	}

	for _, selText := range selectors {
		root, err := html.Parse(strings.NewReader(docSrc))
		if err != nil {
			t.Fatalf("html.Parse: %v", err)
		}
		doc := domhtml.NewDocument()
		ourRoot := doc.Wrap(root)

		ours, ok := selector.Parse(selText, "cross.css", messages.New())
		if !ok {
			t.Fatalf("failed to parse selector %q", selText)
		}
		ourMatches := map[string]bool{}
		for _, e := range ours.Find(ourRoot) {
			ourMatches[elementKey(e.(*domhtml.Element))] = true
		}

		theirSel, err := cascadia.Parse(selText)
		if err != nil {
			t.Fatalf("cascadia failed to parse %q: %v", selText, err)
		}
		theirMatches := map[string]bool{}
		for _, n := range cascadia.QueryAll(root, theirSel) {
			theirMatches[htmlNodeKey(n)] = true
		}

		if len(ourMatches) != len(theirMatches) {
			t.Errorf("%q: match count mismatch: ours=%d theirs=%d", selText, len(ourMatches), len(theirMatches))
			continue
		}
		for k := range ourMatches {
			if !theirMatches[k] {
				t.Errorf("%q: our matcher found %q that cascadia did not", selText, k)
			}
		}
	}
}

// elementKey and htmlNodeKey both reduce to the same string for the same
// underlying html.Node, giving a cheap way to compare match sets without
// sharing pointer identity between the two traversal paths.
func elementKey(e *domhtml.Element) string {
	return nodePath(e)
}

func htmlNodeKey(n *html.Node) string {
	doc := domhtml.NewDocument()
	return nodePath(doc.Wrap(n))
}

func nodePath(e *domhtml.Element) string {
	var parts []string
	for cur := e; cur != nil; {
		parts = append([]string{cur.NodeName()}, parts...)
		p := cur.Parent()
		if p == nil {
			break
		}
		parts = append([]string{strconv.Itoa(cur.Index())}, parts...)
		cur = p.(*domhtml.Element)
	}
	return strings.Join(parts, "/")
}
