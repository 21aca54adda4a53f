package style

import "github.com/npillmayer/stylecore/css"

// ComputedStyle is a persistent, copy-on-write record of the resolved CSS
// property universe. It is partitioned into six sub-bags, each a pointer to
// an immutable struct, so that any single with_* replacement clones only
// the sub-bag the changed property lives in and shares every other bag with
// its parent.
type ComputedStyle struct {
	enums      *enumsBag
	sizes      *sizesBag
	background *backgroundBag
	border     *borderBag
	inherited  *inheritedBag
	rare       *rareBag
}

type enumsBag struct {
	Display       string
	Position      string
	Float         string
	Clear         string
	OverflowX     string
	OverflowY     string
	BoxSizing     string
	TableLayout   string
}

type sizesBag struct {
	Width, Height             css.Measure
	MinWidth, MinHeight       css.Measure
	MaxWidth, MaxHeight       css.Measure
	MarginTop, MarginRight    css.Measure
	MarginBottom, MarginLeft  css.Measure
	PaddingTop, PaddingRight  css.Measure
	PaddingBottom, PaddingLeft css.Measure
	Top, Right, Bottom, Left  css.Measure
}

type backgroundBag struct {
	Color      css.Color
	Image      string
	Repeat     string
	Attachment string
	PositionX  any
	PositionY  any
	Size       any
}

type edgeBorder struct {
	Width css.Measure
	Style string
	Color css.Color
}

type borderBag struct {
	Top, Right, Bottom, Left edgeBorder
	SpacingH, SpacingV       css.Measure
	Collapse                 string
	CaptionSide              string
	EmptyCells               string
}

type inheritedBag struct {
	Color             css.Color
	FontFamily        string
	FontSize          css.Measure
	FontStyle         string
	FontVariant       string
	FontWeight        string
	LineHeight        any
	TextAlign         string
	TextIndent        css.Measure
	TextTransform     string
	WhiteSpace        string
	LetterSpacing     any
	WordSpacing       any
	Visibility        string
	Cursor            string
	ListStyleType     string
	ListStyleImage    string
	ListStylePosition string
}

type rareBag struct {
	FlexGrow          float64
	FlexShrink        float64
	FlexBasis         any
	FlexDirection     string
	FlexWrap          string
	OutlineWidth      css.Measure
	OutlineStyle      string
	OutlineColor      css.Color
	OutlineOffset     css.Measure
	BoxShadow         any
	TextShadow        any
	Content           any
	CounterReset      any
	CounterIncrement  any
	ZIndex            any // int, or "auto"
	BorderRadius      css.Measure
	TextDecoration    string
}

var defaultStyle = &ComputedStyle{
	enums: &enumsBag{
		Display: "block", Position: "static", Float: "none", Clear: "none",
		OverflowX: "visible", OverflowY: "visible", BoxSizing: "content-box",
		TableLayout: "auto",
	},
	sizes: &sizesBag{
		Width: css.Auto, Height: css.Auto,
		MinWidth: css.Zero, MinHeight: css.Zero,
		MaxWidth: css.Measure{Units: css.UnitNone}, MaxHeight: css.Measure{Units: css.UnitNone},
		Top: css.Auto, Right: css.Auto, Bottom: css.Auto, Left: css.Auto,
	},
	background: &backgroundBag{
		Color: css.Transparent, Repeat: "repeat", Attachment: "scroll",
		PositionX: "left", PositionY: "top",
	},
	border: &borderBag{
		Top:    edgeBorder{Width: css.Measure{Units: css.UnitPx, Value: 3}, Style: "solid", Color: css.Transparent},
		Right:  edgeBorder{Width: css.Measure{Units: css.UnitPx, Value: 3}, Style: "solid", Color: css.Transparent},
		Bottom: edgeBorder{Width: css.Measure{Units: css.UnitPx, Value: 3}, Style: "solid", Color: css.Transparent},
		Left:   edgeBorder{Width: css.Measure{Units: css.UnitPx, Value: 3}, Style: "solid", Color: css.Transparent},
		Collapse: "separate", CaptionSide: "top", EmptyCells: "show",
	},
	inherited: &inheritedBag{
		Color: css.Black, FontFamily: "serif", FontSize: css.Measure{Units: css.UnitPx, Value: 14},
		FontStyle: "normal", FontVariant: "normal", FontWeight: "normal",
		LineHeight: css.Measure{Units: css.UnitPercent, Value: 120},
		TextAlign: "left", TextTransform: "none", WhiteSpace: "normal",
		Visibility: "visible", Cursor: "auto",
		ListStyleType: "disc", ListStylePosition: "outside",
	},
	rare: &rareBag{
		FlexGrow: 0, FlexShrink: 1, FlexBasis: "auto",
		FlexDirection: "row", FlexWrap: "nowrap",
		OutlineStyle: "none", ZIndex: "auto",
		TextDecoration: "none",
	},
}

// Default returns the CSS 2.1 initial-value singleton every root style
// cascades from.
func Default() *ComputedStyle { return defaultStyle }

// MakeChild returns a style whose inheritable portion equals parent's and
// whose non-inheritable portion is the default — the starting point for
// computing an element's style before its own declarations are applied.
func MakeChild(parent *ComputedStyle) *ComputedStyle {
	if parent == nil {
		parent = Default()
	}
	child := *Default()
	child.inherited = parent.inherited
	return &child
}
