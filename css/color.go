package css

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/stylecore/grammar"
)

// Color is a 32-bit RGBA color, alpha in the high byte.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// Transparent is the `transparent` keyword color.
var Transparent = Color{}

// Black is CSS2.1's initial `color` value.
var Black = Color{A: 0xFF}

// ColorFromValue interprets a grammar.ColorValue (produced by the Color
// primitive) into a Color.
func ColorFromValue(v grammar.ColorValue) (Color, bool) {
	switch {
	case v.Func != "":
		return colorFromFunc(v.Func, v.Args)
	case strings.HasPrefix(v.Name, "#"):
		return colorFromHex(v.Name[1:])
	default:
		return colorFromName(v.Name)
	}
}

func colorFromName(name string) (Color, bool) {
	if name == "transparent" {
		return Transparent, true
	}
	rgb, ok := grammar.NamedColors()[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return Color{
		A: uint8(rgb >> 24),
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
	}, true
}

func colorFromHex(hex string) (Color, bool) {
	expand := func(c byte) (byte, byte) { return c, c }
	hexByte := func(hi, lo byte) (uint8, bool) {
		h, ok1 := hexVal(hi)
		l, ok2 := hexVal(lo)
		if !ok1 || !ok2 {
			return 0, false
		}
		return uint8(h<<4 | l), true
	}
	switch len(hex) {
	case 3, 4:
		r1, r2 := expand(hex[0])
		g1, g2 := expand(hex[1])
		b1, b2 := expand(hex[2])
		r, ok1 := hexByte(r1, r2)
		g, ok2 := hexByte(g1, g2)
		b, ok3 := hexByte(b1, b2)
		a := uint8(0xFF)
		ok4 := true
		if len(hex) == 4 {
			aa1, aa2 := expand(hex[3])
			a, ok4 = hexByte(aa1, aa2)
		}
		if !(ok1 && ok2 && ok3 && ok4) {
			return Color{}, false
		}
		return Color{R: r, G: g, B: b, A: a}, true
	case 6, 8:
		r, ok1 := hexByte(hex[0], hex[1])
		g, ok2 := hexByte(hex[2], hex[3])
		b, ok3 := hexByte(hex[4], hex[5])
		a := uint8(0xFF)
		ok4 := true
		if len(hex) == 8 {
			a, ok4 = hexByte(hex[6], hex[7])
		}
		if !(ok1 && ok2 && ok3 && ok4) {
			return Color{}, false
		}
		return Color{R: r, G: g, B: b, A: a}, true
	}
	return Color{}, false
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func colorFromFunc(fn string, args []float64) (Color, bool) {
	switch fn {
	case "rgb", "rgba":
		if len(args) < 3 {
			return Color{}, false
		}
		r := clampByte(args[0])
		g := clampByte(args[1])
		b := clampByte(args[2])
		a := uint8(0xFF)
		if len(args) >= 4 {
			a = uint8(clamp01(args[3]) * 255)
		}
		return Color{R: r, G: g, B: b, A: a}, true
	case "hsl", "hsla":
		if len(args) < 3 {
			return Color{}, false
		}
		r, g, b := hslToRGB(args[0], args[1]/100, args[2]/100)
		a := uint8(0xFF)
		if len(args) >= 4 {
			a = uint8(clamp01(args[3]) * 255)
		}
		return Color{R: r, G: g, B: b, A: a}, true
	}
	return Color{}, false
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	return clampByte((r1 + m) * 255), clampByte((g1 + m) * 255), clampByte((b1 + m) * 255)
}
