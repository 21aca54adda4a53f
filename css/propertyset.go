package css

import (
	"github.com/npillmayer/stylecore/internal/persistent/vector"
)

// StylePropertySet is an immutable, copy-on-write collection of the
// declarations a single rule body carried, in source order. Copy-on-write
// sharing is cheap enough that a stylesheet's rules can each hold their own
// set without duplicating the common case of a handful of declarations.
type StylePropertySet struct {
	props vector.Vector[StyleProperty]
}

// NewStylePropertySet builds a set from declarations in source order.
func NewStylePropertySet(decls ...StyleProperty) StylePropertySet {
	v := vector.Immutable[StyleProperty]()
	for _, d := range decls {
		v = v.Push(d)
	}
	return StylePropertySet{props: v}
}

// Len returns the number of declarations in the set.
func (s StylePropertySet) Len() int {
	return s.props.Len()
}

// At returns the i-th declaration in source order.
func (s StylePropertySet) At(i int) StyleProperty {
	return s.props.Get(i)
}

// With returns a new set with decl appended; the receiver is unmodified.
func (s StylePropertySet) With(decl StyleProperty) StylePropertySet {
	return StylePropertySet{props: s.props.Push(decl)}
}

// Each calls yield for every declaration in source order, stopping early if
// yield returns false.
func (s StylePropertySet) Each(yield func(StyleProperty) bool) {
	for i := 0; i < s.props.Len(); i++ {
		if !yield(s.props.Get(i)) {
			return
		}
	}
}

// Find returns the last declaration of the given kind (later declarations
// win within a single rule body, matching CSS cascade-within-a-rule order)
// and whether one was present.
func (s StylePropertySet) Find(kind KnownPropertyKind) (StyleProperty, bool) {
	var found StyleProperty
	ok := false
	s.Each(func(p StyleProperty) bool {
		if p.Kind == kind {
			found, ok = p, true
		}
		return true
	})
	return found, ok
}
