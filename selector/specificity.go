package selector

import "fmt"

// Specificity is a totally ordered 64-bit value packing, from high to low
// bits: a reserved overflow-guard region, the inline-style flag, the id
// count, the class/attribute/pseudo-class count, the element/pseudo-element
// count, the stylesheet index, and the rule-index within the stylesheet.
// Ordinary uint64 comparison (<, <=, ==) is specificity comparison.
type Specificity uint64

const (
	ruleIndexBits  = 17
	stylesheetBits = 10
	elementBits    = 10
	classBits      = 10
	idBits         = 10
	inlineBits     = 1

	ruleIndexShift  = 0
	stylesheetShift = ruleIndexShift + ruleIndexBits
	elementShift    = stylesheetShift + stylesheetBits
	classShift      = elementShift + elementBits
	idShift         = classShift + classBits
	inlineShift     = idShift + idBits

	// reservedShift marks the start of the guard region: bits at or above
	// this must always read zero. Any Specificity with a bit set up here
	// indicates a prior overflow that slipped through unchecked arithmetic.
	reservedShift = inlineShift + inlineBits

	ruleIndexCap  = 100000
	stylesheetCap = 1000
	elementCap    = 1000
	classCap      = 1000
	idCap         = 1000
	inlineCap     = 1

	reservedMask Specificity = ^Specificity(0) << reservedShift
)

// Zero is the identity element for Specificity addition.
const Zero Specificity = 0

// NewSpecificity builds a Specificity from its component counts. It panics
// if any component exceeds its documented cap — this is a programmer error,
// not a CSS error; specificity arithmetic overflow is fatal rather than
// silently wrapping or saturating.
func NewSpecificity(inline bool, idCount, classCount, elementCount, stylesheetIndex, ruleIndex int) Specificity {
	inlineV := 0
	if inline {
		inlineV = 1
	}
	mustFit("inline", inlineV, inlineCap)
	mustFit("id", idCount, idCap)
	mustFit("class/attr/pseudo", classCount, classCap)
	mustFit("element", elementCount, elementCap)
	mustFit("stylesheet", stylesheetIndex, stylesheetCap)
	mustFit("rule-index", ruleIndex, ruleIndexCap)

	return Specificity(inlineV)<<inlineShift |
		Specificity(idCount)<<idShift |
		Specificity(classCount)<<classShift |
		Specificity(elementCount)<<elementShift |
		Specificity(stylesheetIndex)<<stylesheetShift |
		Specificity(ruleIndex)<<ruleIndexShift
}

func mustFit(field string, v, cap int) {
	if v < 0 || v > cap {
		panic(fmt.Sprintf("selector: specificity field %s overflowed its cap of %d (got %d)", field, cap, v))
	}
}

func field(s Specificity, shift uint, bits uint) int {
	mask := Specificity(1)<<bits - 1
	return int((s >> shift) & mask)
}

// Inline reports whether the inline-style flag is set.
func (s Specificity) Inline() bool { return field(s, inlineShift, inlineBits) != 0 }

// IDCount returns the packed id-selector count.
func (s Specificity) IDCount() int { return field(s, idShift, idBits) }

// ClassCount returns the packed class/attribute/pseudo-class count.
func (s Specificity) ClassCount() int { return field(s, classShift, classBits) }

// ElementCount returns the packed element/pseudo-element count.
func (s Specificity) ElementCount() int { return field(s, elementShift, elementBits) }

// StylesheetIndex returns the packed stylesheet index.
func (s Specificity) StylesheetIndex() int { return field(s, stylesheetShift, stylesheetBits) }

// RuleIndex returns the packed rule-index-within-stylesheet.
func (s Specificity) RuleIndex() int { return field(s, ruleIndexShift, ruleIndexBits) }

// Add combines two Specificity values component-wise. It panics if any
// resulting component would exceed its cap, or if the reserved guard region
// is nonzero on either operand (a sign that one of them was built without
// going through NewSpecificity/Add).
func Add(a, b Specificity) Specificity {
	if a&reservedMask != 0 || b&reservedMask != 0 {
		panic("selector: specificity operand has a nonzero reserved bit")
	}
	inline := a.Inline() || b.Inline()
	id := a.IDCount() + b.IDCount()
	class := a.ClassCount() + b.ClassCount()
	elem := a.ElementCount() + b.ElementCount()
	sheet := a.StylesheetIndex() + b.StylesheetIndex()
	rule := a.RuleIndex() + b.RuleIndex()
	return NewSpecificity(inline, id, class, elem, sheet, rule)
}

// Less reports whether s is strictly less specific than o.
func (s Specificity) Less(o Specificity) bool { return s < o }

func (s Specificity) String() string {
	inline := 0
	if s.Inline() {
		inline = 1
	}
	return fmt.Sprintf("(%d,%d,%d,%d,sheet=%d,rule=%d)", inline, s.IDCount(), s.ClassCount(), s.ElementCount(), s.StylesheetIndex(), s.RuleIndex())
}
