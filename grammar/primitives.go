package grammar

import (
	"strconv"
	"strings"

	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/token"
)

// LengthValue is the value produced by Length/LengthOrPercent/Angle/Time/
// Frequency: a bare number plus its unit ("" for a unitless zero, "%" for
// Percentage tokens).
type LengthValue struct {
	Value float64
	Unit  string
}

// ColorValue is the value produced by Color: either a keyword/hash name
// (Name, e.g. "red" or "#ff0000") or an explicit function form
// (Func == "rgb"/"rgba"/"hsl"/"hsla") with its raw argument values.
type ColorValue struct {
	Name string
	Func string
	Args []float64
}

func fail(lx *token.Lexer) (any, bool) { return nil, false }

// Ident matches a bare identifier token.
func Ident(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Ident {
		return fail(lx)
	}
	lx.Next()
	return t.Text, true
}

// IdentSequence matches one or more consecutive identifiers separated by
// whitespace, as used by multi-word keyword values (e.g. font-family
// fallback names without quotes).
func IdentSequence(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	v, ok := attempt(lx, msgs, OneOrMore(Ident))
	if !ok {
		return nil, false
	}
	parts := v.([]any)
	words := make([]string, len(parts))
	for i, p := range parts {
		words[i] = p.(string)
	}
	return strings.Join(words, " "), true
}

// Keyword matches a specific case-insensitive identifier literally.
func Keyword(k string) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		t := lx.Peek()
		if t.Kind != token.Ident || !strings.EqualFold(t.Text, k) {
			return nil, false
		}
		lx.Next()
		return k, true
	}
}

// KeywordMulti matches any one of the given case-insensitive keywords,
// returning the canonical (map value) spelling matched.
func KeywordMulti(keywords map[string]string) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		t := lx.Peek()
		if t.Kind != token.Ident {
			return nil, false
		}
		low := strings.ToLower(t.Text)
		if v, ok := keywords[low]; ok {
			lx.Next()
			return v, true
		}
		return nil, false
	}
}

// Enum matches a hyphenated CSS keyword against a caller-supplied
// name→variant table and returns the mapped variant.
func Enum[E any](names map[string]E) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		t := lx.Peek()
		if t.Kind != token.Ident {
			return nil, false
		}
		if v, ok := names[strings.ToLower(t.Text)]; ok {
			lx.Next()
			return v, true
		}
		return nil, false
	}
}

// String matches a quoted string token.
func String(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.String {
		return fail(lx)
	}
	lx.Next()
	return t.Text, true
}

// URI matches a url(...) token.
func URI(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.URL {
		return fail(lx)
	}
	lx.Next()
	return t.Text, true
}

// Integer matches a Number token with no fractional part and no unit.
func Integer(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Number || t.Unit != "" || t.Num != float64(int64(t.Num)) {
		return fail(lx)
	}
	lx.Next()
	return int(t.Num), true
}

// Number matches a bare Number token (unit must be empty).
func Number(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Number || t.Unit != "" {
		return fail(lx)
	}
	lx.Next()
	return t.Num, true
}

var lengthUnits = map[string]bool{
	"px": true, "em": true, "ex": true, "cm": true, "mm": true,
	"in": true, "pt": true, "pc": true,
}

// Length matches a Number token carrying a recognized length unit, or a
// bare zero (unitless zero is valid length syntax in CSS).
func Length(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Number {
		return fail(lx)
	}
	if t.Unit == "" && t.Num == 0 {
		lx.Next()
		return LengthValue{Value: 0, Unit: "px"}, true
	}
	if !lengthUnits[t.Unit] {
		return fail(lx)
	}
	lx.Next()
	return LengthValue{Value: t.Num, Unit: t.Unit}, true
}

// LengthOrPercent matches Length or a Percentage token.
func LengthOrPercent(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind == token.Percentage {
		lx.Next()
		return LengthValue{Value: t.Num, Unit: "%"}, true
	}
	return Length(lx, msgs)
}

var angleUnits = map[string]bool{"deg": true, "rad": true, "grad": true}

// Angle matches a Number token carrying deg/rad/grad.
func Angle(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Number || !angleUnits[t.Unit] {
		return fail(lx)
	}
	lx.Next()
	return LengthValue{Value: t.Num, Unit: t.Unit}, true
}

var timeUnits = map[string]bool{"s": true, "ms": true}

// Time matches a Number token carrying s/ms.
func Time(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Number || !timeUnits[t.Unit] {
		return fail(lx)
	}
	lx.Next()
	return LengthValue{Value: t.Num, Unit: t.Unit}, true
}

var freqUnits = map[string]bool{"hz": true, "khz": true}

// Frequency matches a Number token carrying Hz/kHz.
func Frequency(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Number || !freqUnits[strings.ToLower(t.Unit)] {
		return fail(lx)
	}
	lx.Next()
	return LengthValue{Value: t.Num, Unit: strings.ToLower(t.Unit)}, true
}

// Punct matches any one of the given punctuation token kinds, returning the
// matched Kind.
func Punct(kinds ...token.Kind) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		t := lx.Peek()
		if !t.IsPunct(kinds...) {
			return nil, false
		}
		lx.Next()
		return t.Kind, true
	}
}

var namedColors = map[string]uint32{
	"transparent": 0x00000000, "black": 0xFF000000, "silver": 0xFFC0C0C0,
	"gray": 0xFF808080, "grey": 0xFF808080, "white": 0xFFFFFFFF, "maroon": 0xFF800000,
	"red": 0xFFFF0000, "purple": 0xFF800080, "fuchsia": 0xFFFF00FF, "green": 0xFF008000,
	"lime": 0xFF00FF00, "olive": 0xFF808000, "yellow": 0xFFFFFF00, "navy": 0xFF000080,
	"blue": 0xFF0000FF, "teal": 0xFF008080, "aqua": 0xFF00FFFF, "orange": 0xFFFFA500,
}

// NamedColors exposes the CSS named-color table for package css's Color
// parser, which owns final RGBA construction.
func NamedColors() map[string]uint32 { return namedColors }

// Color matches a `#`-hash color, a named color keyword, or an
// rgb()/rgba()/hsl()/hsla() function call, returning a ColorValue for
// package css to interpret into its own Color type.
func Color(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	switch t.Kind {
	case token.Hash:
		lx.Next()
		return ColorValue{Name: "#" + t.Text}, true
	case token.Ident:
		low := strings.ToLower(t.Text)
		if _, ok := namedColors[low]; ok {
			lx.Next()
			return ColorValue{Name: low}, true
		}
		return fail(lx)
	case token.Function:
		low := strings.ToLower(t.Text)
		switch low {
		case "rgb", "rgba", "hsl", "hsla":
			lx.Next()
			var args []float64
			for i := 0; ; i++ {
				skipSpace(lx)
				if i > 0 {
					if lx.Peek().Kind == token.Comma {
						lx.Next()
						skipSpace(lx)
					}
				}
				a := lx.Peek()
				switch a.Kind {
				case token.Number, token.Percentage:
					lx.Next()
					args = append(args, a.Num)
				case token.RightParen:
				default:
					return fail(lx)
				}
				skipSpace(lx)
				if lx.Peek().Kind == token.RightParen {
					lx.Next()
					return ColorValue{Func: low, Args: args}, true
				}
			}
		}
	}
	return fail(lx)
}

// Rect matches the CSS2 rect(top, right, bottom, left) clip shape, returning
// the four LengthOrPercent values in that order.
func Rect(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Function || !strings.EqualFold(t.Text, "rect") {
		return fail(lx)
	}
	lx.Next()
	list := OneOrMoreWithCommas(LengthOrPercent)
	v, ok := attempt(lx, msgs, list)
	if !ok {
		return fail(lx)
	}
	vals := v.([]any)
	if len(vals) != 4 {
		return fail(lx)
	}
	skipSpace(lx)
	if lx.Peek().Kind != token.RightParen {
		return fail(lx)
	}
	lx.Next()
	return vals, true
}

// Counter matches counter(name[, style]).
func Counter(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	return counterLike(lx, msgs, "counter", false)
}

// Counters matches counters(name, separator[, style]).
func Counters(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	return counterLike(lx, msgs, "counters", true)
}

// CounterValue is the value produced by Counter/Counters.
type CounterValue struct {
	Name      string
	Separator string // only for counters()
	Style     string // "" means default ("decimal")
}

func counterLike(lx *token.Lexer, msgs *messages.Messages, fname string, withSep bool) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Function || !strings.EqualFold(t.Text, fname) {
		return fail(lx)
	}
	lx.Next()
	skipSpace(lx)
	name := lx.Next()
	if name.Kind != token.Ident {
		return fail(lx)
	}
	cv := CounterValue{Name: name.Text}
	if withSep {
		skipSpace(lx)
		if lx.Peek().Kind != token.Comma {
			return fail(lx)
		}
		lx.Next()
		skipSpace(lx)
		sep := lx.Next()
		if sep.Kind != token.String {
			return fail(lx)
		}
		cv.Separator = sep.Text
	}
	skipSpace(lx)
	if lx.Peek().Kind == token.Comma {
		lx.Next()
		skipSpace(lx)
		style := lx.Next()
		if style.Kind != token.Ident {
			return fail(lx)
		}
		cv.Style = style.Text
	}
	skipSpace(lx)
	if lx.Peek().Kind != token.RightParen {
		return fail(lx)
	}
	lx.Next()
	return cv, true
}

// AttrRef matches attr(name).
func AttrRef(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	t := lx.Peek()
	if t.Kind != token.Function || !strings.EqualFold(t.Text, "attr") {
		return fail(lx)
	}
	lx.Next()
	skipSpace(lx)
	name := lx.Next()
	if name.Kind != token.Ident {
		return fail(lx)
	}
	skipSpace(lx)
	if lx.Peek().Kind != token.RightParen {
		return fail(lx)
	}
	lx.Next()
	return name.Text, true
}

// BackgroundPositionValue is the value produced by BackgroundPosition: up to
// two length-or-percent/keyword offsets.
type BackgroundPositionValue struct {
	X, Y any // each either LengthValue or one of "left"/"center"/"right"/"top"/"bottom"
}

var bgPosKeyword = KeywordMulti(map[string]string{
	"left": "left", "center": "center", "right": "right", "top": "top", "bottom": "bottom",
})

// BackgroundPosition matches the `background-position` value grammar:
// one or two of {<length-or-percent> | left | center | right | top |
// bottom}, defaulting the Y component to "center" when only one is given.
func BackgroundPosition(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	one := OneOf(LengthOrPercent, bgPosKeyword)
	first, ok := attempt(lx, msgs, one)
	if !ok {
		return fail(lx)
	}
	second, ok := attempt(lx, msgs, one)
	if !ok {
		return BackgroundPositionValue{X: first, Y: "center"}, true
	}
	return BackgroundPositionValue{X: first, Y: second}, true
}

// ParseFloatUnit is a small helper shorthand property parsers use when
// decomposing a shorthand's sub-grammar results back into a float.
func ParseFloatUnit(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
