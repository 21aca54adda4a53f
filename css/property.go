package css

// StyleProperty is one parsed CSS declaration: a known (or unknown)
// property name, its parsed value, and the CSS-wide flags that applied to
// it.
type StyleProperty struct {
	Kind  KnownPropertyKind
	Name  string // original property name, lower-cased; kept even when Kind != Unknown for diagnostics
	Value any    // concrete type depends on Kind: Measure, Color, string, []any of longhand values for a shorthand, etc.
	Flags PropertyFlags
}

// IsShorthand reports whether p's Kind decomposes into longhand
// properties.
func (p StyleProperty) IsShorthand() bool {
	_, ok := shorthandLonghands[p.Kind]
	return ok
}

// Decompose expands a shorthand StyleProperty into its longhand
// constituents, each carrying the shorthand's flags and a value taken from
// values (by longhand index; a short values slice leaves the remaining
// longhands with a nil Value, to be filled from the initial-value table by
// the style package). Non-shorthand properties decompose to themselves.
func (p StyleProperty) Decompose(values []any) []StyleProperty {
	longhands, ok := shorthandLonghands[p.Kind]
	if !ok {
		return []StyleProperty{p}
	}
	out := make([]StyleProperty, len(longhands))
	for i, kind := range longhands {
		var v any
		if i < len(values) {
			v = values[i]
		}
		out[i] = StyleProperty{Kind: kind, Name: p.Name, Value: v, Flags: p.Flags}
	}
	return out
}

// edgeValues expands the CSS 1-to-4 value box-model shorthand pattern
// (top/right/bottom/left with omission wraparound) into four values in
// top,right,bottom,left order.
func edgeValues(vs []any) []any {
	switch len(vs) {
	case 1:
		return []any{vs[0], vs[0], vs[0], vs[0]}
	case 2:
		return []any{vs[0], vs[1], vs[0], vs[1]}
	case 3:
		return []any{vs[0], vs[1], vs[2], vs[1]}
	case 4:
		return []any{vs[0], vs[1], vs[2], vs[3]}
	}
	return nil
}
