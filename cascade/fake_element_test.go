package cascade_test

import "github.com/npillmayer/stylecore/domiface"

type fakeClassNames []string

func (c fakeClassNames) Has(name string) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}

func (c fakeClassNames) Each(f func(string)) {
	for _, n := range c {
		f(n)
	}
}

type fakeAttrs map[string]string

func (a fakeAttrs) ContainsKey(name string) bool          { _, ok := a[name]; return ok }
func (a fakeAttrs) TryGetValue(name string) (string, bool) { v, ok := a[name]; return v, ok }

// fakeElement is a minimal in-memory tree node satisfying domiface.Element,
// used to exercise the cascade without a real HTML document.
type fakeElement struct {
	name     string
	id       string
	classes  fakeClassNames
	attrs    fakeAttrs
	flags    domiface.StyleFlag
	parent   *fakeElement
	children []*fakeElement
}

func newFake(name string, children ...*fakeElement) *fakeElement {
	e := &fakeElement{name: name, attrs: fakeAttrs{}, children: children}
	for _, c := range children {
		c.parent = e
	}
	return e
}

func (e *fakeElement) withClass(classes ...string) *fakeElement {
	e.classes = classes
	return e
}

func (e *fakeElement) withID(id string) *fakeElement {
	e.id = id
	return e
}

func (e *fakeElement) NodeName() string               { return e.name }
func (e *fakeElement) ID() string                      { return e.id }
func (e *fakeElement) ClassNames() domiface.ClassNames { return e.classes }
func (e *fakeElement) Attributes() domiface.Attributes { return e.attrs }
func (e *fakeElement) StyleFlags() domiface.StyleFlag  { return e.flags }

func (e *fakeElement) Parent() domiface.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) PreviousSibling() domiface.Element {
	if e.parent == nil {
		return nil
	}
	for i, c := range e.parent.children {
		if c == e {
			if i == 0 {
				return nil
			}
			return e.parent.children[i-1]
		}
	}
	return nil
}

func (e *fakeElement) NextSibling() domiface.Element {
	if e.parent == nil {
		return nil
	}
	for i, c := range e.parent.children {
		if c == e {
			if i == len(e.parent.children)-1 {
				return nil
			}
			return e.parent.children[i+1]
		}
	}
	return nil
}

func (e *fakeElement) ChildNodes() []domiface.Element {
	out := make([]domiface.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *fakeElement) Index() int {
	if e.parent == nil {
		return 0
	}
	for i, c := range e.parent.children {
		if c == e {
			return i
		}
	}
	return 0
}

func (e *fakeElement) Root() domiface.Element {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

func (e *fakeElement) ChildElementCount() int { return len(e.children) }

func (e *fakeElement) DescendantElementCount() int {
	n := 0
	for _, c := range e.children {
		n += 1 + c.DescendantElementCount()
	}
	return n
}

func (e *fakeElement) Descendants(yield func(domiface.Element) bool) {
	for _, c := range e.children {
		if !yield(c) {
			return
		}
		c.Descendants(yield)
	}
}

func (e *fakeElement) HasPseudoClass(name string, arg string) bool   { return false }
func (e *fakeElement) HasPseudoElement(name string, arg string) bool { return false }
