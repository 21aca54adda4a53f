package domhtml

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/npillmayer/stylecore/domiface"
)

// Document wraps one parsed golang.org/x/net/html tree and memoizes the
// Element wrapper for each html.Node, the way styledtree.StyNode pairs one
// wrapper per underlying HTML node rather than re-allocating on every
// traversal step.
type Document struct {
	wrapped map[*html.Node]*Element
}

// NewDocument returns a Document ready to wrap nodes parsed from a single
// html.Parse/html.ParseFragment call. A Document is not safe for concurrent
// use, matching the single-threaded-per-document model the core assumes.
func NewDocument() *Document {
	return &Document{wrapped: map[*html.Node]*Element{}}
}

// Wrap returns the Element for n, creating and memoizing it on first use.
// Wrap(nil) returns nil.
func (d *Document) Wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if e, ok := d.wrapped[n]; ok {
		return e
	}
	e := &Element{node: n, doc: d}
	d.wrapped[n] = e
	return e
}

// Element adapts one golang.org/x/net/html element node to domiface.Element.
type Element struct {
	node *html.Node
	doc  *Document
}

var _ domiface.Element = (*Element)(nil)

func (e *Element) attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// NodeName returns the lowercase tag name; golang.org/x/net/html already
// lowercases standard element names during parsing.
func (e *Element) NodeName() string { return e.node.Data }

// ID returns the id="" attribute value, or "" if absent.
func (e *Element) ID() string {
	v, _ := e.attr("id")
	return v
}

// ClassNames returns the space-separated class="" attribute as a set.
func (e *Element) ClassNames() domiface.ClassNames {
	v, _ := e.attr("class")
	return classNames(strings.Fields(v))
}

// Attributes returns every attribute on this element, keyed by name.
func (e *Element) Attributes() domiface.Attributes { return attributes{e.node} }

// StyleFlags always reports no dynamic UI state: a parsed HTML document has
// no notion of :hover/:active/:focus on its own, only a live rendering host
// tracks that. Hosts that do track it should wrap Element in their own type
// and override this method.
func (e *Element) StyleFlags() domiface.StyleFlag { return 0 }

func firstElementNode(n *html.Node) *html.Node {
	for n != nil && n.Type != html.ElementNode {
		n = n.NextSibling
	}
	return n
}

// Parent returns the nearest ancestor element node, skipping the Document
// and DocumentFragment nodes golang.org/x/net/html inserts above <html>.
func (e *Element) Parent() domiface.Element {
	n := e.node.Parent
	for n != nil && n.Type != html.ElementNode {
		n = n.Parent
	}
	return e.doc.Wrap(n)
}

// PreviousSibling returns the previous *element* sibling, skipping text and
// comment nodes.
func (e *Element) PreviousSibling() domiface.Element {
	n := e.node.PrevSibling
	for n != nil && n.Type != html.ElementNode {
		n = n.PrevSibling
	}
	return e.doc.Wrap(n)
}

// NextSibling returns the next *element* sibling, skipping text and comment
// nodes.
func (e *Element) NextSibling() domiface.Element {
	n := e.node.NextSibling
	for n != nil && n.Type != html.ElementNode {
		n = n.NextSibling
	}
	return e.doc.Wrap(n)
}

// ChildNodes returns this element's element children, in document order.
func (e *Element) ChildNodes() []domiface.Element {
	var out []domiface.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.Wrap(c))
		}
	}
	return out
}

// Index returns this element's position among its parent's element
// children.
func (e *Element) Index() int {
	i := 0
	for n := e.node.PrevSibling; n != nil; n = n.PrevSibling {
		if n.Type == html.ElementNode {
			i++
		}
	}
	return i
}

// Root returns the document's outermost element.
func (e *Element) Root() domiface.Element {
	cur := e
	for {
		p := cur.Parent()
		if p == nil {
			return cur
		}
		cur = p.(*Element)
	}
}

// ChildElementCount returns the number of element children.
func (e *Element) ChildElementCount() int {
	n := 0
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n++
		}
	}
	return n
}

// DescendantElementCount returns the total number of element descendants.
func (e *Element) DescendantElementCount() int {
	n := 0
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n += 1 + e.doc.Wrap(c).DescendantElementCount()
		}
	}
	return n
}

// Descendants calls yield for every descendant element in document order,
// stopping early if yield returns false.
func (e *Element) Descendants(yield func(domiface.Element) bool) {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		ce := e.doc.Wrap(c)
		if !yield(ce) {
			return
		}
		ce.Descendants(yield)
	}
}

// HasPseudoClass and HasPseudoElement always report false: a static parse
// tree carries no runtime UI or generated-content state for the core to
// consult.
func (e *Element) HasPseudoClass(name string, argument string) bool   { return false }
func (e *Element) HasPseudoElement(name string, argument string) bool { return false }

type classNames []string

func (c classNames) Has(name string) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}

func (c classNames) Each(f func(string)) {
	for _, n := range c {
		f(n)
	}
}

type attributes struct{ node *html.Node }

func (a attributes) ContainsKey(name string) bool {
	for _, at := range a.node.Attr {
		if at.Key == name {
			return true
		}
	}
	return false
}

func (a attributes) TryGetValue(name string) (string, bool) {
	for _, at := range a.node.Attr {
		if at.Key == name {
			return at.Val, true
		}
	}
	return "", false
}
