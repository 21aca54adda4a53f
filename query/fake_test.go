package query_test

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

type fakeElement struct {
	name     string
	id       string
	classes  fakeClassNames
	attrs    fakeAttrs
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

func (e *fakeElement) withID(id string) *fakeElement      { e.id = id; return e }
func (e *fakeElement) withClass(c ...string) *fakeElement { e.classes = c; return e }

func (e *fakeElement) NodeName() string               { return e.name }
func (e *fakeElement) ID() string                      { return e.id }
func (e *fakeElement) ClassNames() domiface.ClassNames { return e.classes }
func (e *fakeElement) Attributes() domiface.Attributes { return e.attrs }
func (e *fakeElement) StyleFlags() domiface.StyleFlag  { return 0 }

func (e *fakeElement) Parent() domiface.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) PreviousSibling() domiface.Element { return nil }
func (e *fakeElement) NextSibling() domiface.Element     { return nil }

func (e *fakeElement) ChildNodes() []domiface.Element {
	out := make([]domiface.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *fakeElement) Index() int { return 0 }

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

// fakeLookup is a host ElementLookupTables built once over a fixed tree by
// a flat linear scan — good enough for a test fixture, not a production
// index.
type fakeLookup struct {
	byType  map[string][]domiface.Element
	byID    map[string][]domiface.Element
	byClass map[string][]domiface.Element
	cache   domiface.PlanCacheSlot
}

func newFakeLookup(root *fakeElement) *fakeLookup {
	l := &fakeLookup{
		byType:  map[string][]domiface.Element{},
		byID:    map[string][]domiface.Element{},
		byClass: map[string][]domiface.Element{},
	}
	var walk func(e *fakeElement)
	walk = func(e *fakeElement) {
		l.byType[e.name] = append(l.byType[e.name], e)
		if e.id != "" {
			l.byID[e.id] = append(l.byID[e.id], e)
		}
		for _, c := range e.classes {
			l.byClass[c] = append(l.byClass[c], e)
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(root)
	return l
}

func (l *fakeLookup) ByElementType(name string) []domiface.Element    { return l.byType[name] }
func (l *fakeLookup) ByID(id string) []domiface.Element               { return l.byID[id] }
func (l *fakeLookup) ByClassName(class string) []domiface.Element     { return l.byClass[class] }
func (l *fakeLookup) ByName(attrName string) []domiface.Element       { return nil }
func (l *fakeLookup) ByTypeAttribute(attrType string) []domiface.Element { return nil }
func (l *fakeLookup) PlanCache() *domiface.PlanCacheSlot               { return &l.cache }
