package css

// KnownPropertyKind exhaustively enumerates the CSS properties this engine
// understands, plus Unknown for anything else.
type KnownPropertyKind uint16

const (
	Unknown KnownPropertyKind = iota

	// Box model
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropMargin // shorthand
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropPadding // shorthand
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth
	PropBorderTopColor
	PropBorderRightColor
	PropBorderBottomColor
	PropBorderLeftColor
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderBottomStyle
	PropBorderLeftStyle
	PropBorderTop    // shorthand
	PropBorderRight  // shorthand
	PropBorderBottom // shorthand
	PropBorderLeft   // shorthand
	PropBorderWidth  // shorthand
	PropBorderColor  // shorthand
	PropBorderStyle  // shorthand
	PropBorder       // shorthand
	PropBorderRadius

	// Background
	PropBackgroundColor
	PropBackgroundImage
	PropBackgroundRepeat
	PropBackgroundAttachment
	PropBackgroundPosition
	PropBackgroundSize
	PropBackground // shorthand

	// Color / visibility
	PropColor
	PropDisplay
	PropVisibility

	// Positioning
	PropPosition
	PropTop
	PropRight
	PropBottom
	PropLeft
	PropFloat
	PropClear
	PropZIndex
	PropClip

	// Box sizing
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropBoxSizing
	PropOverflow
	PropOverflowX
	PropOverflowY

	// Font / text
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontWeight
	PropFontVariant
	PropFont // shorthand
	PropLineHeight
	PropTextAlign
	PropTextDecoration
	PropTextIndent
	PropTextTransform
	PropWhiteSpace
	PropLetterSpacing
	PropWordSpacing
	PropVerticalAlign

	// Lists / tables
	PropListStyleType
	PropListStyleImage
	PropListStylePosition
	PropListStyle // shorthand
	PropTableLayout
	PropBorderCollapse
	PropBorderSpacing
	PropCaptionSide
	PropEmptyCells

	// Flex
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis
	PropFlexDirection
	PropFlexWrap
	PropFlex // shorthand

	// Effects
	PropBoxShadow
	PropTextShadow
	PropOutlineWidth
	PropOutlineStyle
	PropOutlineColor
	PropOutlineOffset
	PropOutline // shorthand

	// Generated content / counters
	PropContent
	PropCounterReset
	PropCounterIncrement
	PropCursor

	numKnownPropertyKinds
)

// PropertyFlags are the CSS-wide value flags a declaration carries
// independent of its parsed value.
type PropertyFlags struct {
	Inherit   bool // value keyword `inherit`
	Initial   bool // value keyword `initial`
	Unset     bool // value keyword `unset`
	Important bool
	Valid     bool // false for UnknownProperty / unparseable bodies
}

// cssWideKeywords maps the three CSS-wide value keywords to the flag they
// set on a StyleProperty.
var cssWideKeywords = map[string]func(*PropertyFlags){
	"inherit": func(f *PropertyFlags) { f.Inherit = true },
	"initial": func(f *PropertyFlags) { f.Initial = true },
	"unset":   func(f *PropertyFlags) { f.Unset = true },
}

// longhands lists the KnownPropertyKinds a shorthand property's
// Decompose() must produce. It intentionally omits properties not present
// in this table (not every shorthand has a special-cased decomposition
// handler; ones without an entry here decompose to themselves).
var shorthandLonghands = map[KnownPropertyKind][]KnownPropertyKind{
	PropMargin:  {PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft},
	PropPadding: {PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft},
	PropBorderWidth: {PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth},
	PropBorderColor: {PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor},
	PropBorderStyle: {PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle},
	PropBorderTop:    {PropBorderTopWidth, PropBorderTopStyle, PropBorderTopColor},
	PropBorderRight:  {PropBorderRightWidth, PropBorderRightStyle, PropBorderRightColor},
	PropBorderBottom: {PropBorderBottomWidth, PropBorderBottomStyle, PropBorderBottomColor},
	PropBorderLeft:   {PropBorderLeftWidth, PropBorderLeftStyle, PropBorderLeftColor},
	PropBorder: {
		PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth,
		PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle,
		PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor,
	},
	PropBackground: {PropBackgroundColor, PropBackgroundImage, PropBackgroundRepeat, PropBackgroundAttachment, PropBackgroundPosition},
	PropFont:       {PropFontStyle, PropFontVariant, PropFontWeight, PropFontSize, PropLineHeight, PropFontFamily},
	PropListStyle:  {PropListStyleType, PropListStylePosition, PropListStyleImage},
	PropOutline:    {PropOutlineWidth, PropOutlineStyle, PropOutlineColor},
	PropFlex:       {PropFlexGrow, PropFlexShrink, PropFlexBasis},
}
