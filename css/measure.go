package css

import (
	"fmt"

	"github.com/npillmayer/stylecore/grammar"
)

// Unit is the unit tag of a Measure.
type Unit uint8

const (
	UnitNone Unit = iota // zero-value sentinel; see Measure.IsAuto/IsZero
	UnitAuto
	UnitPx
	UnitEm
	UnitEx
	UnitCm
	UnitMm
	UnitIn
	UnitPt
	UnitPc
	UnitPercent
	UnitDeg
	UnitRad
	UnitGrad
	UnitS
	UnitMs
	UnitHz
	UnitKHz
)

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return ""
	case UnitAuto:
		return "auto"
	case UnitPx:
		return "px"
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	case UnitIn:
		return "in"
	case UnitPt:
		return "pt"
	case UnitPc:
		return "pc"
	case UnitPercent:
		return "%"
	case UnitDeg:
		return "deg"
	case UnitRad:
		return "rad"
	case UnitGrad:
		return "grad"
	case UnitS:
		return "s"
	case UnitMs:
		return "ms"
	case UnitHz:
		return "Hz"
	case UnitKHz:
		return "kHz"
	}
	return "?"
}

var unitNames = map[string]Unit{
	"px": UnitPx, "em": UnitEm, "ex": UnitEx, "cm": UnitCm, "mm": UnitMm,
	"in": UnitIn, "pt": UnitPt, "pc": UnitPc, "%": UnitPercent,
	"deg": UnitDeg, "rad": UnitRad, "grad": UnitGrad,
	"s": UnitS, "ms": UnitMs, "hz": UnitHz, "khz": UnitKHz,
}

// Measure is a CSS dimension: a unit tag plus a value. Auto and zero are
// representable distinctly — Auto carries UnitAuto with Value 0, an
// explicit zero length carries a real unit (defaulting to px, matching the
// grammar.Length primitive's treatment of unitless zero) with Value 0.
type Measure struct {
	Units Unit
	Value float64
}

// Auto is the `auto` keyword value.
var Auto = Measure{Units: UnitAuto}

// Zero is an explicit zero-pixel length.
var Zero = Measure{Units: UnitPx, Value: 0}

// IsAuto reports whether m is the `auto` keyword.
func (m Measure) IsAuto() bool { return m.Units == UnitAuto }

// IsZero reports whether m's value is exactly zero (regardless of unit).
func (m Measure) IsZero() bool { return m.Units != UnitAuto && m.Value == 0 }

func (m Measure) String() string {
	if m.IsAuto() {
		return "auto"
	}
	return fmt.Sprintf("%g%s", m.Value, m.Units)
}

// MeasureFromLength converts a grammar.LengthValue (produced by the
// Length/LengthOrPercent/Angle/Time/Frequency primitives) into a Measure.
func MeasureFromLength(v grammar.LengthValue) (Measure, bool) {
	if v.Unit == "" {
		return Measure{Units: UnitPx, Value: v.Value}, true
	}
	u, ok := unitNames[v.Unit]
	if !ok {
		return Measure{}, false
	}
	return Measure{Units: u, Value: v.Value}, true
}
