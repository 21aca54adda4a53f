package cascade

import (
	"github.com/npillmayer/stylecore/css"
	"github.com/npillmayer/stylecore/domiface"
	"github.com/npillmayer/stylecore/selector"
	"github.com/npillmayer/stylecore/style"
)

// MatchedRule pairs a rule's declarations with the winning specificity of
// whichever comma-separated branch of its selector matched the element.
type MatchedRule struct {
	Declarations css.StylePropertySet
	Specificity  selector.Specificity
}

// GetStyleRules returns every rule in m that matches e, each paired with
// the winning specificity of whichever comma-branch of its selector matched.
func (m *Manager) GetStyleRules(e domiface.Element) []MatchedRule {
	candidates := m.candidateRules(e)
	var out []MatchedRule
	for _, ir := range candidates {
		spec, ok := ir.rule.Selectors.MatchingSpecificity(e)
		if !ok {
			continue
		}
		out = append(out, MatchedRule{Declarations: ir.rule.Declarations, Specificity: spec})
	}
	return out
}

// winner tracks, for one longhand KnownPropertyKind, the currently-winning
// declaration found while folding a multiset of matched rules.
type winner struct {
	prop css.StyleProperty
	spec selector.Specificity
}

// extractMostSpecific decomposes every matched rule's declarations into
// longhands, then for each KnownPropertyKind retains the single property
// with the highest specificity, ties broken in favor of !important,
// secondary ties by later source order (already encoded in the
// specificity's low bits).
func extractMostSpecific(rules []MatchedRule) map[css.KnownPropertyKind]css.StyleProperty {
	winners := map[css.KnownPropertyKind]winner{}
	for _, r := range rules {
		r.Declarations.Each(func(p css.StyleProperty) bool {
			for _, lh := range p.Decompose(shorthandRawValues(p)) {
				if !lh.Flags.Valid {
					continue
				}
				if lh.Value == nil && !lh.Flags.Inherit && !lh.Flags.Initial && !lh.Flags.Unset {
					// A longhand its shorthand left unspecified takes its initial value.
					lh.Flags.Initial = true
				}
				cur, exists := winners[lh.Kind]
				if !exists || beats(lh, r.Specificity, cur.prop, cur.spec) {
					winners[lh.Kind] = winner{prop: lh, spec: r.Specificity}
				}
			}
			return true
		})
	}
	out := make(map[css.KnownPropertyKind]css.StyleProperty, len(winners))
	for k, w := range winners {
		out[k] = w.prop
	}
	return out
}

// shorthandRawValues extracts the []any a shorthand StyleProperty's Value
// already carries (ParseDeclaration leaves shorthand Values pre-decomposed
// into longhand-ordered slices via decomposeShorthand); non-shorthand
// properties ignore the argument.
func shorthandRawValues(p css.StyleProperty) []any {
	if vs, ok := p.Value.([]any); ok {
		return vs
	}
	return nil
}

// beats reports whether candidate (at candSpec) should replace incumbent
// (at incSpec) as the winning declaration for a longhand.
func beats(cand css.StyleProperty, candSpec selector.Specificity, inc css.StyleProperty, incSpec selector.Specificity) bool {
	if cand.Flags.Important != inc.Flags.Important {
		return cand.Flags.Important
	}
	return incSpec.Less(candSpec)
}

// ComputeStyle computes e's ComputedStyle given its parent's already-
// computed style (nil for the document root): matches rules, folds them to
// one winning declaration per longhand, then applies each in turn.
func (m *Manager) ComputeStyle(e domiface.Element, parent *style.ComputedStyle) *style.ComputedStyle {
	rules := m.GetStyleRules(e)
	winners := extractMostSpecific(rules)
	s := style.MakeChild(parent)
	for _, prop := range winners {
		s = style.Apply(s, parent, prop)
	}
	return s
}
