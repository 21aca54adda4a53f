package css

import (
	"strings"

	"github.com/npillmayer/stylecore/grammar"
	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/token"
)

// propertyDef binds a property name to its KnownPropertyKind and the value
// grammar used to parse its declaration body. syntax's returned value is
// post-processed by convert before being stored as a StyleProperty.Value;
// a nil convert stores the raw grammar result unchanged.
type propertyDef struct {
	kind    KnownPropertyKind
	syntax  grammar.Matcher
	convert func(any) (any, bool)
}

func asMeasure(v any) (any, bool) {
	lv, ok := v.(grammar.LengthValue)
	if !ok {
		return nil, false
	}
	return MeasureFromLength(lv)
}

func asColor(v any) (any, bool) {
	cv, ok := v.(grammar.ColorValue)
	if !ok {
		return nil, false
	}
	return ColorFromValue(cv)
}

// measureOrKeyword wraps LengthOrPercent with one or more bare keyword
// alternatives (e.g. `auto`, `none`), converting a matched length/percent to
// a Measure but passing a matched keyword through as its lower-case string.
func measureOrKeyword(keywords ...string) grammar.Matcher {
	alts := make([]grammar.Matcher, 0, len(keywords)+1)
	alts = append(alts, grammar.LengthOrPercent)
	for _, k := range keywords {
		alts = append(alts, grammar.Keyword(k))
	}
	one := grammar.OneOf(alts...)
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		v, ok := one(lx, msgs)
		if !ok {
			return nil, false
		}
		if lv, ok := v.(grammar.LengthValue); ok {
			m, ok := MeasureFromLength(lv)
			if !ok {
				return nil, false
			}
			return m, true
		}
		return v, true
	}
}

func lengthConv(v any) (any, bool) { return asMeasure(v) }

var edgeWidth = measureOrKeyword()
var edgeWidthAuto = measureOrKeyword("auto")

var borderStyleEnum = grammar.KeywordMulti(map[string]string{
	"none": "none", "hidden": "hidden", "dotted": "dotted", "dashed": "dashed",
	"solid": "solid", "double": "double", "groove": "groove", "ridge": "ridge",
	"inset": "inset", "outset": "outset",
})

var borderWidthKeyword = grammar.KeywordMulti(map[string]string{
	"thin": "thin", "medium": "medium", "thick": "thick",
})
var borderWidthValue = grammar.OneOf(grammar.Length, borderWidthKeyword)

var displayEnum = grammar.KeywordMulti(map[string]string{
	"none": "none", "block": "block", "inline": "inline", "inline-block": "inline-block",
	"list-item": "list-item", "table": "table", "inline-table": "inline-table",
	"table-row-group": "table-row-group", "table-header-group": "table-header-group",
	"table-footer-group": "table-footer-group", "table-row": "table-row",
	"table-column-group": "table-column-group", "table-column": "table-column",
	"table-cell": "table-cell", "table-caption": "table-caption",
	"flex": "flex", "inline-flex": "inline-flex",
})

var positionEnum = grammar.KeywordMulti(map[string]string{
	"static": "static", "relative": "relative", "absolute": "absolute", "fixed": "fixed", "sticky": "sticky",
})

var floatEnum = grammar.KeywordMulti(map[string]string{"none": "none", "left": "left", "right": "right"})
var clearEnum = grammar.KeywordMulti(map[string]string{"none": "none", "left": "left", "right": "right", "both": "both"})
var visibilityEnum = grammar.KeywordMulti(map[string]string{"visible": "visible", "hidden": "hidden", "collapse": "collapse"})
var overflowEnum = grammar.KeywordMulti(map[string]string{"visible": "visible", "hidden": "hidden", "scroll": "scroll", "auto": "auto"})
var boxSizingEnum = grammar.KeywordMulti(map[string]string{"content-box": "content-box", "border-box": "border-box"})

var fontStyleEnum = grammar.KeywordMulti(map[string]string{"normal": "normal", "italic": "italic", "oblique": "oblique"})
var fontVariantEnum = grammar.KeywordMulti(map[string]string{"normal": "normal", "small-caps": "small-caps"})
var fontWeightEnum = grammar.OneOf(
	grammar.KeywordMulti(map[string]string{
		"normal": "normal", "bold": "bold", "bolder": "bolder", "lighter": "lighter",
	}),
	grammar.Integer,
)
var textAlignEnum = grammar.KeywordMulti(map[string]string{
	"left": "left", "right": "right", "center": "center", "justify": "justify",
})
var textTransformEnum = grammar.KeywordMulti(map[string]string{
	"none": "none", "capitalize": "capitalize", "uppercase": "uppercase", "lowercase": "lowercase",
})
var whiteSpaceEnum = grammar.KeywordMulti(map[string]string{
	"normal": "normal", "pre": "pre", "nowrap": "nowrap", "pre-wrap": "pre-wrap", "pre-line": "pre-line",
})
var verticalAlignEnum = grammar.KeywordMulti(map[string]string{
	"baseline": "baseline", "sub": "sub", "super": "super", "top": "top", "text-top": "text-top",
	"middle": "middle", "bottom": "bottom", "text-bottom": "text-bottom",
})
var listStyleTypeEnum = grammar.KeywordMulti(map[string]string{
	"disc": "disc", "circle": "circle", "square": "square", "decimal": "decimal",
	"decimal-leading-zero": "decimal-leading-zero", "lower-roman": "lower-roman",
	"upper-roman": "upper-roman", "lower-alpha": "lower-alpha", "upper-alpha": "upper-alpha", "none": "none",
})
var listStylePositionEnum = grammar.KeywordMulti(map[string]string{"inside": "inside", "outside": "outside"})
var tableLayoutEnum = grammar.KeywordMulti(map[string]string{"auto": "auto", "fixed": "fixed"})
var borderCollapseEnum = grammar.KeywordMulti(map[string]string{"collapse": "collapse", "separate": "separate"})
var captionSideEnum = grammar.KeywordMulti(map[string]string{"top": "top", "bottom": "bottom"})
var emptyCellsEnum = grammar.KeywordMulti(map[string]string{"show": "show", "hide": "hide"})
var flexDirectionEnum = grammar.KeywordMulti(map[string]string{
	"row": "row", "row-reverse": "row-reverse", "column": "column", "column-reverse": "column-reverse",
})
var flexWrapEnum = grammar.KeywordMulti(map[string]string{"nowrap": "nowrap", "wrap": "wrap", "wrap-reverse": "wrap-reverse"})
var cursorEnum = grammar.KeywordMulti(map[string]string{
	"auto": "auto", "default": "default", "pointer": "pointer", "move": "move", "text": "text",
	"wait": "wait", "help": "help", "crosshair": "crosshair", "not-allowed": "not-allowed",
})

var zIndexSyntax = grammar.OneOf(grammar.Integer, autoKeyword)

var contentSyntax = grammar.OneOf(
	grammar.String, grammar.AttrRef, grammar.Counter, grammar.Counters,
	grammar.KeywordMulti(map[string]string{
		"none": "none", "normal": "normal", "open-quote": "open-quote", "close-quote": "close-quote",
	}),
)

var fontFamilySyntax = grammar.OneOrMoreWithCommas(grammar.OneOf(grammar.String, grammar.IdentSequence))

var counterListSyntax = grammar.OneOf(
	noneKeyword,
	grammar.OneOrMore(grammar.Sequence(grammar.Ident, grammar.Optional(grammar.Integer))),
)

// propertyTable maps a lower-cased CSS property name to its definition.
// Shorthands carry the sub-grammar that produces their Decompose() input in
// longhand order; the top-level parser (parse.go) drives the decomposition.
var propertyTable = map[string]propertyDef{
	// box model
	"margin-top":    {PropMarginTop, measureOrKeyword("auto"), nil},
	"margin-right":  {PropMarginRight, measureOrKeyword("auto"), nil},
	"margin-bottom": {PropMarginBottom, measureOrKeyword("auto"), nil},
	"margin-left":   {PropMarginLeft, measureOrKeyword("auto"), nil},
	"margin":        {PropMargin, grammar.Range(1, 4, measureOrKeyword("auto")), nil},

	"padding-top":    {PropPaddingTop, grammar.LengthOrPercent, lengthConv},
	"padding-right":  {PropPaddingRight, grammar.LengthOrPercent, lengthConv},
	"padding-bottom": {PropPaddingBottom, grammar.LengthOrPercent, lengthConv},
	"padding-left":   {PropPaddingLeft, grammar.LengthOrPercent, lengthConv},
	"padding":        {PropPadding, grammar.Range(1, 4, grammar.LengthOrPercent), nil},

	"border-top-width":    {PropBorderTopWidth, borderWidthValue, nil},
	"border-right-width":  {PropBorderRightWidth, borderWidthValue, nil},
	"border-bottom-width": {PropBorderBottomWidth, borderWidthValue, nil},
	"border-left-width":   {PropBorderLeftWidth, borderWidthValue, nil},
	"border-width":        {PropBorderWidth, grammar.Range(1, 4, borderWidthValue), nil},

	"border-top-color":    {PropBorderTopColor, grammar.Color, asColor},
	"border-right-color":  {PropBorderRightColor, grammar.Color, asColor},
	"border-bottom-color": {PropBorderBottomColor, grammar.Color, asColor},
	"border-left-color":   {PropBorderLeftColor, grammar.Color, asColor},
	"border-color":        {PropBorderColor, grammar.Range(1, 4, grammar.Color), nil},

	"border-top-style":    {PropBorderTopStyle, borderStyleEnum, nil},
	"border-right-style":  {PropBorderRightStyle, borderStyleEnum, nil},
	"border-bottom-style": {PropBorderBottomStyle, borderStyleEnum, nil},
	"border-left-style":   {PropBorderLeftStyle, borderStyleEnum, nil},
	"border-style":        {PropBorderStyle, grammar.Range(1, 4, borderStyleEnum), nil},

	"border-top":    {PropBorderTop, grammar.AnyOrder(borderWidthValue, borderStyleEnum, grammar.Color), nil},
	"border-right":  {PropBorderRight, grammar.AnyOrder(borderWidthValue, borderStyleEnum, grammar.Color), nil},
	"border-bottom": {PropBorderBottom, grammar.AnyOrder(borderWidthValue, borderStyleEnum, grammar.Color), nil},
	"border-left":   {PropBorderLeft, grammar.AnyOrder(borderWidthValue, borderStyleEnum, grammar.Color), nil},
	"border":        {PropBorder, grammar.AnyOrder(borderWidthValue, borderStyleEnum, grammar.Color), nil},
	"border-radius": {PropBorderRadius, grammar.Range(1, 4, grammar.LengthOrPercent), nil},

	// background
	"background-color":      {PropBackgroundColor, grammar.Color, asColor},
	"background-image":      {PropBackgroundImage, grammar.OneOf(grammar.URI, noneKeyword), nil},
	"background-repeat":     {PropBackgroundRepeat, grammar.KeywordMulti(map[string]string{"repeat": "repeat", "repeat-x": "repeat-x", "repeat-y": "repeat-y", "no-repeat": "no-repeat"}), nil},
	"background-attachment": {PropBackgroundAttachment, grammar.KeywordMulti(map[string]string{"scroll": "scroll", "fixed": "fixed"}), nil},
	"background-position":   {PropBackgroundPosition, grammar.BackgroundPosition, nil},
	"background-size":       {PropBackgroundSize, measureOrKeyword("auto", "cover", "contain"), nil},
	"background":            {PropBackground, grammar.AnyOrder(grammar.Color, grammar.OneOf(grammar.URI, noneKeyword), grammar.BackgroundPosition), nil},

	// color / visibility / display
	"color":      {PropColor, grammar.Color, asColor},
	"display":    {PropDisplay, displayEnum, nil},
	"visibility": {PropVisibility, visibilityEnum, nil},

	// positioning
	"position": {PropPosition, positionEnum, nil},
	"top":      {PropTop, measureOrKeyword("auto"), nil},
	"right":    {PropRight, measureOrKeyword("auto"), nil},
	"bottom":   {PropBottom, measureOrKeyword("auto"), nil},
	"left":     {PropLeft, measureOrKeyword("auto"), nil},
	"float":    {PropFloat, floatEnum, nil},
	"clear":    {PropClear, clearEnum, nil},
	"z-index":  {PropZIndex, zIndexSyntax, nil},
	"clip":     {PropClip, grammar.OneOf(grammar.Rect, autoKeyword), nil},

	// box sizing
	"width":       {PropWidth, measureOrKeyword("auto"), nil},
	"height":      {PropHeight, measureOrKeyword("auto"), nil},
	"min-width":   {PropMinWidth, grammar.LengthOrPercent, lengthConv},
	"min-height":  {PropMinHeight, grammar.LengthOrPercent, lengthConv},
	"max-width":   {PropMaxWidth, measureOrKeyword("none"), nil},
	"max-height":  {PropMaxHeight, measureOrKeyword("none"), nil},
	"box-sizing":  {PropBoxSizing, boxSizingEnum, nil},
	"overflow":    {PropOverflow, overflowEnum, nil},
	"overflow-x":  {PropOverflowX, overflowEnum, nil},
	"overflow-y":  {PropOverflowY, overflowEnum, nil},

	// font / text
	"font-family":      {PropFontFamily, fontFamilySyntax, nil},
	"font-size":        {PropFontSize, measureOrKeyword("smaller", "larger"), nil},
	"font-style":       {PropFontStyle, fontStyleEnum, nil},
	"font-weight":      {PropFontWeight, fontWeightEnum, nil},
	"font-variant":     {PropFontVariant, fontVariantEnum, nil},
	"line-height":      {PropLineHeight, grammar.OneOf(grammar.Number, grammar.LengthOrPercent, normalKeyword), nil},
	"text-align":       {PropTextAlign, textAlignEnum, nil},
	"text-decoration":  {PropTextDecoration, grammar.KeywordMulti(map[string]string{"none": "none", "underline": "underline", "overline": "overline", "line-through": "line-through", "blink": "blink"}), nil},
	"text-indent":      {PropTextIndent, grammar.LengthOrPercent, lengthConv},
	"text-transform":   {PropTextTransform, textTransformEnum, nil},
	"white-space":      {PropWhiteSpace, whiteSpaceEnum, nil},
	"letter-spacing":   {PropLetterSpacing, measureOrKeyword("normal"), nil},
	"word-spacing":     {PropWordSpacing, measureOrKeyword("normal"), nil},
	"vertical-align":   {PropVerticalAlign, grammar.OneOf(verticalAlignEnum, grammar.LengthOrPercent), nil},

	// lists / tables
	"list-style-type":     {PropListStyleType, listStyleTypeEnum, nil},
	"list-style-image":    {PropListStyleImage, grammar.OneOf(grammar.URI, noneKeyword), nil},
	"list-style-position": {PropListStylePosition, listStylePositionEnum, nil},
	"list-style":          {PropListStyle, grammar.AnyOrder(listStyleTypeEnum, listStylePositionEnum, grammar.OneOf(grammar.URI, noneKeyword)), nil},
	"table-layout":        {PropTableLayout, tableLayoutEnum, nil},
	"border-collapse":     {PropBorderCollapse, borderCollapseEnum, nil},
	"border-spacing":      {PropBorderSpacing, grammar.Range(1, 2, grammar.Length), nil},
	"caption-side":        {PropCaptionSide, captionSideEnum, nil},
	"empty-cells":         {PropEmptyCells, emptyCellsEnum, nil},

	// flex
	"flex-grow":      {PropFlexGrow, grammar.Number, nil},
	"flex-shrink":    {PropFlexShrink, grammar.Number, nil},
	"flex-basis":     {PropFlexBasis, measureOrKeyword("auto"), nil},
	"flex-direction": {PropFlexDirection, flexDirectionEnum, nil},
	"flex-wrap":      {PropFlexWrap, flexWrapEnum, nil},
	"flex":           {PropFlex, grammar.AnyOrder(grammar.Number, grammar.Number, measureOrKeyword("auto")), nil},

	// effects
	"box-shadow":  {PropBoxShadow, boxShadowSyntax(), nil},
	"text-shadow": {PropTextShadow, textShadowSyntax(), nil},

	"outline-width":  {PropOutlineWidth, borderWidthValue, nil},
	"outline-style":  {PropOutlineStyle, borderStyleEnum, nil},
	"outline-color":  {PropOutlineColor, grammar.OneOf(grammar.Color, grammar.Keyword("invert")), nil},
	"outline-offset": {PropOutlineOffset, grammar.Length, lengthConv},
	"outline":        {PropOutline, grammar.AnyOrder(borderWidthValue, borderStyleEnum, grammar.OneOf(grammar.Color, grammar.Keyword("invert"))), nil},

	// generated content
	"content":           {PropContent, grammar.OneOrMore(contentSyntax), nil},
	"counter-reset":     {PropCounterReset, counterListSyntax, nil},
	"counter-increment": {PropCounterIncrement, counterListSyntax, nil},
	"cursor":            {PropCursor, cursorEnum, nil},
}

func boxShadowSyntax() grammar.Matcher {
	one := grammar.Sequence(grammar.Length, grammar.Length, grammar.Optional(grammar.Length), grammar.Optional(grammar.Length), grammar.Optional(grammar.Color))
	return grammar.OneOf(noneKeyword, grammar.OneOrMoreWithCommas(one))
}

func textShadowSyntax() grammar.Matcher {
	one := grammar.Sequence(grammar.Length, grammar.Length, grammar.Optional(grammar.Length), grammar.Optional(grammar.Color))
	return grammar.OneOf(noneKeyword, grammar.OneOrMoreWithCommas(one))
}

// normalizePropertyName lower-cases and trims a property name as it appears
// on the left side of a declaration (`margin-Top` == `margin-top`).
func normalizePropertyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
