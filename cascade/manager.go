package cascade

import (
	"github.com/npillmayer/stylecore/css"
	"github.com/npillmayer/stylecore/domiface"
	"github.com/npillmayer/stylecore/selector"
)

// indexedRule is one parsed rule plus the stylesheet-origin index the
// Manager stamped onto its selectors.
type indexedRule struct {
	rule  css.Rule
	sheet int
}

type sheetEntry struct {
	id    int
	sheet css.Stylesheet
}

// Manager owns a mutable set of Stylesheets, the fast per-element indices
// derived from them, and the reference-counted attribute/class-name
// multiplicity maps a host uses to decide whether a mutation can invalidate
// style. Manager itself does not synchronize concurrent AddStylesheet/
// RemoveStylesheet calls; the host is expected to serialize mutations to a
// single Manager instance.
type Manager struct {
	nextID int
	sheets []sheetEntry

	byElementName map[string][]*indexedRule
	byClass       map[string][]*indexedRule
	byID          map[string][]*indexedRule
	generic       []*indexedRule

	attributesUsedByStyles map[string]int
	classNamesUsedByStyles map[string]int

	stylesheetsChanged []func()
}

// NewManager returns an empty style manager.
func NewManager() *Manager {
	return &Manager{
		byElementName:          map[string][]*indexedRule{},
		byClass:                map[string][]*indexedRule{},
		byID:                   map[string][]*indexedRule{},
		attributesUsedByStyles: map[string]int{},
		classNamesUsedByStyles: map[string]int{},
	}
}

// OnStylesheetsChanged registers a callback invoked after every
// AddStylesheet/RemoveStylesheet, e.g. to invalidate a query planner's
// cached plans.
func (m *Manager) OnStylesheetsChanged(fn func()) {
	m.stylesheetsChanged = append(m.stylesheetsChanged, fn)
}

// AddStylesheet adds sheet to the manager, stamping stylesheet/rule-index
// origin onto its selectors for specificity tie-breaking, and returns an id
// usable with RemoveStylesheet.
func (m *Manager) AddStylesheet(sheet css.Stylesheet) int {
	id := m.nextID
	m.nextID++
	for i, rule := range sheet.Rules {
		if rule.Selectors != nil {
			rule.Selectors.SetOrigin(id, i, false)
		}
	}
	m.sheets = append(m.sheets, sheetEntry{id: id, sheet: sheet})
	m.rebuildIndices()
	m.notifyChanged()
	return id
}

// RemoveStylesheet removes the stylesheet previously returned by
// AddStylesheet's id, if present.
func (m *Manager) RemoveStylesheet(id int) {
	for i, e := range m.sheets {
		if e.id == id {
			m.sheets = append(m.sheets[:i], m.sheets[i+1:]...)
			m.rebuildIndices()
			m.notifyChanged()
			return
		}
	}
}

func (m *Manager) notifyChanged() {
	for _, fn := range m.stylesheetsChanged {
		fn()
	}
}

func (m *Manager) rebuildIndices() {
	m.byElementName = map[string][]*indexedRule{}
	m.byClass = map[string][]*indexedRule{}
	m.byID = map[string][]*indexedRule{}
	m.generic = nil
	m.attributesUsedByStyles = map[string]int{}
	m.classNamesUsedByStyles = map[string]int{}

	for _, e := range m.sheets {
		for _, rule := range e.sheet.Rules {
			ir := &indexedRule{rule: rule, sheet: e.id}
			m.indexRule(ir)
		}
	}
}

func (m *Manager) indexRule(ir *indexedRule) {
	if ir.rule.Selectors == nil {
		return
	}
	for _, sel := range ir.rule.Selectors.Selectors {
		added := false
		last := sel.Last()
		if !last.IsUniversal() {
			m.byElementName[last.ElementName] = append(m.byElementName[last.ElementName], ir)
			added = true
		}
		for _, f := range last.Filters {
			switch f.Kind {
			case selector.FilterClass:
				m.byClass[f.Name] = append(m.byClass[f.Name], ir)
				m.classNamesUsedByStyles[f.Name]++
				added = true
			case selector.FilterID:
				m.byID[f.Name] = append(m.byID[f.Name], ir)
				added = true
			case selector.FilterAttr, selector.FilterHasAttr:
				m.attributesUsedByStyles[f.Name]++
			}
		}
		if !added {
			m.generic = append(m.generic, ir)
		}
	}
}

// AttributesUsedByStyles reports how many selectors in the current rule set
// test the given attribute name.
func (m *Manager) AttributesUsedByStyles(name string) int {
	return m.attributesUsedByStyles[name]
}

// ClassNamesUsedByStyles reports how many selectors in the current rule set
// test the given class name.
func (m *Manager) ClassNamesUsedByStyles(name string) int {
	return m.classNamesUsedByStyles[name]
}

// candidateRules returns the deduplicated candidate-rule superset for e:
// generic-rules, by-id[e.ID()], by-class[c] for every class c on e, and
// by-element-name[e.NodeName()]. The element-name index is included even
// though a plain union of generic/id/class rules would miss it — without it
// a bare `tag { ... }` rule could never match any element; see DESIGN.md.
func (m *Manager) candidateRules(e domiface.Element) []*indexedRule {
	seen := map[*indexedRule]bool{}
	var out []*indexedRule
	add := func(rules []*indexedRule) {
		for _, r := range rules {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	add(m.generic)
	if id := e.ID(); id != "" {
		add(m.byID[id])
	}
	if cn := e.ClassNames(); cn != nil {
		cn.Each(func(name string) { add(m.byClass[name]) })
	}
	add(m.byElementName[e.NodeName()])
	return out
}
