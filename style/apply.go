package style

import (
	"github.com/npillmayer/stylecore/css"
	"github.com/npillmayer/stylecore/grammar"
)

func (s *ComputedStyle) withEnums(mutate func(*enumsBag)) *ComputedStyle {
	b := *s.enums
	mutate(&b)
	out := *s
	out.enums = &b
	return &out
}

func (s *ComputedStyle) withSizes(mutate func(*sizesBag)) *ComputedStyle {
	b := *s.sizes
	mutate(&b)
	out := *s
	out.sizes = &b
	return &out
}

func (s *ComputedStyle) withBackground(mutate func(*backgroundBag)) *ComputedStyle {
	b := *s.background
	mutate(&b)
	out := *s
	out.background = &b
	return &out
}

func (s *ComputedStyle) withBorder(mutate func(*borderBag)) *ComputedStyle {
	b := *s.border
	mutate(&b)
	out := *s
	out.border = &b
	return &out
}

func (s *ComputedStyle) withInherited(mutate func(*inheritedBag)) *ComputedStyle {
	b := *s.inherited
	mutate(&b)
	out := *s
	out.inherited = &b
	return &out
}

func (s *ComputedStyle) withRare(mutate func(*rareBag)) *ComputedStyle {
	b := *s.rare
	mutate(&b)
	out := *s
	out.rare = &b
	return &out
}

// inheritedKinds lists the longhand KnownPropertyKinds that inherit by
// default, per CSS 2.1 §6.1 / Appendix F. Kinds absent from this set are
// non-inherited.
var inheritedKinds = map[css.KnownPropertyKind]bool{
	css.PropColor: true, css.PropFontFamily: true, css.PropFontSize: true,
	css.PropFontStyle: true, css.PropFontVariant: true, css.PropFontWeight: true,
	css.PropLineHeight: true, css.PropTextAlign: true, css.PropTextIndent: true,
	css.PropTextTransform: true, css.PropWhiteSpace: true, css.PropLetterSpacing: true,
	css.PropWordSpacing: true, css.PropVisibility: true, css.PropCursor: true,
	css.PropListStyleType: true, css.PropListStyleImage: true, css.PropListStylePosition: true,
	css.PropBorderCollapse: true, css.PropCaptionSide: true, css.PropEmptyCells: true,
	css.PropVerticalAlign: true,
}

// IsInherited reports whether kind inherits by default.
func IsInherited(kind css.KnownPropertyKind) bool { return inheritedKinds[kind] }

// Apply resolves one already-cascaded StyleProperty against s (the style
// being built) and parent (the enclosing element's computed style, used by
// `inherit`), returning the resulting ComputedStyle.
func Apply(s *ComputedStyle, parent *ComputedStyle, prop css.StyleProperty) *ComputedStyle {
	if parent == nil {
		parent = Default()
	}
	switch {
	case prop.Flags.Unset:
		if IsInherited(prop.Kind) {
			return CopyProperty(s, parent, prop.Kind)
		}
		return CopyProperty(s, Default(), prop.Kind)
	case prop.Flags.Inherit:
		return CopyProperty(s, parent, prop.Kind)
	case prop.Flags.Initial:
		return CopyProperty(s, Default(), prop.Kind)
	}
	return applyValue(s, prop.Kind, prop.Value)
}

// CopyProperty copies kind's value from source into s, returning the
// resulting ComputedStyle.
func CopyProperty(s *ComputedStyle, source *ComputedStyle, kind css.KnownPropertyKind) *ComputedStyle {
	v := extractValue(source, kind)
	if v == nil {
		return s
	}
	return applyValue(s, kind, v)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func measure(v any) css.Measure {
	m, _ := v.(css.Measure)
	return m
}

func color(v any) css.Color {
	c, _ := v.(css.Color)
	return c
}

func applyValue(s *ComputedStyle, kind css.KnownPropertyKind, v any) *ComputedStyle {
	switch kind {
	case css.PropDisplay:
		return s.withEnums(func(b *enumsBag) { b.Display = str(v) })
	case css.PropPosition:
		return s.withEnums(func(b *enumsBag) { b.Position = str(v) })
	case css.PropFloat:
		return s.withEnums(func(b *enumsBag) { b.Float = str(v) })
	case css.PropClear:
		return s.withEnums(func(b *enumsBag) { b.Clear = str(v) })
	case css.PropOverflow:
		return s.withEnums(func(b *enumsBag) { b.OverflowX, b.OverflowY = str(v), str(v) })
	case css.PropOverflowX:
		return s.withEnums(func(b *enumsBag) { b.OverflowX = str(v) })
	case css.PropOverflowY:
		return s.withEnums(func(b *enumsBag) { b.OverflowY = str(v) })
	case css.PropBoxSizing:
		return s.withEnums(func(b *enumsBag) { b.BoxSizing = str(v) })
	case css.PropTableLayout:
		return s.withEnums(func(b *enumsBag) { b.TableLayout = str(v) })

	case css.PropWidth:
		return s.withSizes(func(b *sizesBag) { b.Width = measure(v) })
	case css.PropHeight:
		return s.withSizes(func(b *sizesBag) { b.Height = measure(v) })
	case css.PropMinWidth:
		return s.withSizes(func(b *sizesBag) { b.MinWidth = measure(v) })
	case css.PropMinHeight:
		return s.withSizes(func(b *sizesBag) { b.MinHeight = measure(v) })
	case css.PropMaxWidth:
		return s.withSizes(func(b *sizesBag) { b.MaxWidth = measure(v) })
	case css.PropMaxHeight:
		return s.withSizes(func(b *sizesBag) { b.MaxHeight = measure(v) })
	case css.PropMarginTop:
		return s.withSizes(func(b *sizesBag) { b.MarginTop = measure(v) })
	case css.PropMarginRight:
		return s.withSizes(func(b *sizesBag) { b.MarginRight = measure(v) })
	case css.PropMarginBottom:
		return s.withSizes(func(b *sizesBag) { b.MarginBottom = measure(v) })
	case css.PropMarginLeft:
		return s.withSizes(func(b *sizesBag) { b.MarginLeft = measure(v) })
	case css.PropPaddingTop:
		return s.withSizes(func(b *sizesBag) { b.PaddingTop = measure(v) })
	case css.PropPaddingRight:
		return s.withSizes(func(b *sizesBag) { b.PaddingRight = measure(v) })
	case css.PropPaddingBottom:
		return s.withSizes(func(b *sizesBag) { b.PaddingBottom = measure(v) })
	case css.PropPaddingLeft:
		return s.withSizes(func(b *sizesBag) { b.PaddingLeft = measure(v) })
	case css.PropTop:
		return s.withSizes(func(b *sizesBag) { b.Top = measure(v) })
	case css.PropRight:
		return s.withSizes(func(b *sizesBag) { b.Right = measure(v) })
	case css.PropBottom:
		return s.withSizes(func(b *sizesBag) { b.Bottom = measure(v) })
	case css.PropLeft:
		return s.withSizes(func(b *sizesBag) { b.Left = measure(v) })

	case css.PropBackgroundColor:
		return s.withBackground(func(b *backgroundBag) { b.Color = color(v) })
	case css.PropBackgroundImage:
		return s.withBackground(func(b *backgroundBag) { b.Image = str(v) })
	case css.PropBackgroundRepeat:
		return s.withBackground(func(b *backgroundBag) { b.Repeat = str(v) })
	case css.PropBackgroundAttachment:
		return s.withBackground(func(b *backgroundBag) { b.Attachment = str(v) })
	case css.PropBackgroundPosition:
		return s.withBackground(func(b *backgroundBag) {
			if bp, ok := v.(grammar.BackgroundPositionValue); ok {
				b.PositionX, b.PositionY = bp.X, bp.Y
			}
		})
	case css.PropBackgroundSize:
		return s.withBackground(func(b *backgroundBag) { b.Size = v })

	case css.PropBorderTopWidth:
		return s.withBorder(func(b *borderBag) { b.Top.Width = measure(v) })
	case css.PropBorderRightWidth:
		return s.withBorder(func(b *borderBag) { b.Right.Width = measure(v) })
	case css.PropBorderBottomWidth:
		return s.withBorder(func(b *borderBag) { b.Bottom.Width = measure(v) })
	case css.PropBorderLeftWidth:
		return s.withBorder(func(b *borderBag) { b.Left.Width = measure(v) })
	case css.PropBorderTopStyle:
		return s.withBorder(func(b *borderBag) { b.Top.Style = str(v) })
	case css.PropBorderRightStyle:
		return s.withBorder(func(b *borderBag) { b.Right.Style = str(v) })
	case css.PropBorderBottomStyle:
		return s.withBorder(func(b *borderBag) { b.Bottom.Style = str(v) })
	case css.PropBorderLeftStyle:
		return s.withBorder(func(b *borderBag) { b.Left.Style = str(v) })
	case css.PropBorderTopColor:
		return s.withBorder(func(b *borderBag) { b.Top.Color = color(v) })
	case css.PropBorderRightColor:
		return s.withBorder(func(b *borderBag) { b.Right.Color = color(v) })
	case css.PropBorderBottomColor:
		return s.withBorder(func(b *borderBag) { b.Bottom.Color = color(v) })
	case css.PropBorderLeftColor:
		return s.withBorder(func(b *borderBag) { b.Left.Color = color(v) })
	case css.PropBorderSpacing:
		return s.withBorder(func(b *borderBag) {
			if vals, ok := v.([]any); ok {
				if len(vals) >= 1 {
					b.SpacingH = measure(vals[0])
				}
				if len(vals) >= 2 {
					b.SpacingV = measure(vals[1])
				} else if len(vals) == 1 {
					b.SpacingV = measure(vals[0])
				}
			}
		})
	case css.PropBorderCollapse:
		return s.withBorder(func(b *borderBag) { b.Collapse = str(v) })
	case css.PropCaptionSide:
		return s.withBorder(func(b *borderBag) { b.CaptionSide = str(v) })
	case css.PropEmptyCells:
		return s.withBorder(func(b *borderBag) { b.EmptyCells = str(v) })

	case css.PropColor:
		return s.withInherited(func(b *inheritedBag) { b.Color = color(v) })
	case css.PropFontFamily:
		return s.withInherited(func(b *inheritedBag) { b.FontFamily = str(v) })
	case css.PropFontSize:
		return s.withInherited(func(b *inheritedBag) { b.FontSize = measure(v) })
	case css.PropFontStyle:
		return s.withInherited(func(b *inheritedBag) { b.FontStyle = str(v) })
	case css.PropFontVariant:
		return s.withInherited(func(b *inheritedBag) { b.FontVariant = str(v) })
	case css.PropFontWeight:
		return s.withInherited(func(b *inheritedBag) { b.FontWeight = toString(v) })
	case css.PropLineHeight:
		return s.withInherited(func(b *inheritedBag) { b.LineHeight = v })
	case css.PropTextAlign:
		return s.withInherited(func(b *inheritedBag) { b.TextAlign = str(v) })
	case css.PropTextIndent:
		return s.withInherited(func(b *inheritedBag) { b.TextIndent = measure(v) })
	case css.PropTextTransform:
		return s.withInherited(func(b *inheritedBag) { b.TextTransform = str(v) })
	case css.PropWhiteSpace:
		return s.withInherited(func(b *inheritedBag) { b.WhiteSpace = str(v) })
	case css.PropLetterSpacing:
		return s.withInherited(func(b *inheritedBag) { b.LetterSpacing = v })
	case css.PropWordSpacing:
		return s.withInherited(func(b *inheritedBag) { b.WordSpacing = v })
	case css.PropVisibility:
		return s.withInherited(func(b *inheritedBag) { b.Visibility = str(v) })
	case css.PropCursor:
		return s.withInherited(func(b *inheritedBag) { b.Cursor = str(v) })
	case css.PropListStyleType:
		return s.withInherited(func(b *inheritedBag) { b.ListStyleType = str(v) })
	case css.PropListStyleImage:
		return s.withInherited(func(b *inheritedBag) { b.ListStyleImage = str(v) })
	case css.PropListStylePosition:
		return s.withInherited(func(b *inheritedBag) { b.ListStylePosition = str(v) })

	case css.PropFlexGrow:
		return s.withRare(func(b *rareBag) { b.FlexGrow, _ = v.(float64) })
	case css.PropFlexShrink:
		return s.withRare(func(b *rareBag) { b.FlexShrink, _ = v.(float64) })
	case css.PropFlexBasis:
		return s.withRare(func(b *rareBag) { b.FlexBasis = v })
	case css.PropFlexDirection:
		return s.withRare(func(b *rareBag) { b.FlexDirection = str(v) })
	case css.PropFlexWrap:
		return s.withRare(func(b *rareBag) { b.FlexWrap = str(v) })
	case css.PropOutlineWidth:
		return s.withRare(func(b *rareBag) { b.OutlineWidth = measure(v) })
	case css.PropOutlineStyle:
		return s.withRare(func(b *rareBag) { b.OutlineStyle = str(v) })
	case css.PropOutlineColor:
		return s.withRare(func(b *rareBag) { b.OutlineColor = color(v) })
	case css.PropOutlineOffset:
		return s.withRare(func(b *rareBag) { b.OutlineOffset = measure(v) })
	case css.PropBoxShadow:
		return s.withRare(func(b *rareBag) { b.BoxShadow = v })
	case css.PropTextShadow:
		return s.withRare(func(b *rareBag) { b.TextShadow = v })
	case css.PropTextDecoration:
		return s.withRare(func(b *rareBag) { b.TextDecoration = str(v) })
	case css.PropContent:
		return s.withRare(func(b *rareBag) { b.Content = v })
	case css.PropCounterReset:
		return s.withRare(func(b *rareBag) { b.CounterReset = v })
	case css.PropCounterIncrement:
		return s.withRare(func(b *rareBag) { b.CounterIncrement = v })
	case css.PropZIndex:
		return s.withRare(func(b *rareBag) { b.ZIndex = v })
	case css.PropBorderRadius:
		return s.withRare(func(b *rareBag) { b.BorderRadius = measure(v) })
	}
	return s
}

// toString renders a font-weight value (either a keyword string or an
// integer 100-900) as a string for the Inherited bag's single FontWeight
// field.
func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return intToStr(t)
	}
	return ""
}

func intToStr(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// extractValue reads kind's current value back out of source, in the shape
// applyValue expects to receive it (so CopyProperty can round-trip through
// applyValue uniformly instead of special-casing every kind twice).
func extractValue(source *ComputedStyle, kind css.KnownPropertyKind) any {
	switch kind {
	case css.PropDisplay:
		return source.enums.Display
	case css.PropPosition:
		return source.enums.Position
	case css.PropFloat:
		return source.enums.Float
	case css.PropClear:
		return source.enums.Clear
	case css.PropOverflowX:
		return source.enums.OverflowX
	case css.PropOverflowY:
		return source.enums.OverflowY
	case css.PropBoxSizing:
		return source.enums.BoxSizing
	case css.PropTableLayout:
		return source.enums.TableLayout

	case css.PropWidth:
		return source.sizes.Width
	case css.PropHeight:
		return source.sizes.Height
	case css.PropMinWidth:
		return source.sizes.MinWidth
	case css.PropMinHeight:
		return source.sizes.MinHeight
	case css.PropMaxWidth:
		return source.sizes.MaxWidth
	case css.PropMaxHeight:
		return source.sizes.MaxHeight
	case css.PropMarginTop:
		return source.sizes.MarginTop
	case css.PropMarginRight:
		return source.sizes.MarginRight
	case css.PropMarginBottom:
		return source.sizes.MarginBottom
	case css.PropMarginLeft:
		return source.sizes.MarginLeft
	case css.PropPaddingTop:
		return source.sizes.PaddingTop
	case css.PropPaddingRight:
		return source.sizes.PaddingRight
	case css.PropPaddingBottom:
		return source.sizes.PaddingBottom
	case css.PropPaddingLeft:
		return source.sizes.PaddingLeft
	case css.PropTop:
		return source.sizes.Top
	case css.PropRight:
		return source.sizes.Right
	case css.PropBottom:
		return source.sizes.Bottom
	case css.PropLeft:
		return source.sizes.Left

	case css.PropBackgroundColor:
		return source.background.Color
	case css.PropBackgroundImage:
		return source.background.Image
	case css.PropBackgroundRepeat:
		return source.background.Repeat
	case css.PropBackgroundAttachment:
		return source.background.Attachment
	case css.PropBackgroundSize:
		return source.background.Size
	case css.PropBackgroundPosition:
		return grammar.BackgroundPositionValue{X: source.background.PositionX, Y: source.background.PositionY}

	case css.PropBorderTopWidth:
		return source.border.Top.Width
	case css.PropBorderRightWidth:
		return source.border.Right.Width
	case css.PropBorderBottomWidth:
		return source.border.Bottom.Width
	case css.PropBorderLeftWidth:
		return source.border.Left.Width
	case css.PropBorderTopStyle:
		return source.border.Top.Style
	case css.PropBorderRightStyle:
		return source.border.Right.Style
	case css.PropBorderBottomStyle:
		return source.border.Bottom.Style
	case css.PropBorderLeftStyle:
		return source.border.Left.Style
	case css.PropBorderTopColor:
		return source.border.Top.Color
	case css.PropBorderRightColor:
		return source.border.Right.Color
	case css.PropBorderBottomColor:
		return source.border.Bottom.Color
	case css.PropBorderLeftColor:
		return source.border.Left.Color
	case css.PropBorderSpacing:
		return []any{source.border.SpacingH, source.border.SpacingV}
	case css.PropBorderCollapse:
		return source.border.Collapse
	case css.PropCaptionSide:
		return source.border.CaptionSide
	case css.PropEmptyCells:
		return source.border.EmptyCells

	case css.PropColor:
		return source.inherited.Color
	case css.PropFontFamily:
		return source.inherited.FontFamily
	case css.PropFontSize:
		return source.inherited.FontSize
	case css.PropFontStyle:
		return source.inherited.FontStyle
	case css.PropFontVariant:
		return source.inherited.FontVariant
	case css.PropFontWeight:
		return source.inherited.FontWeight
	case css.PropLineHeight:
		return source.inherited.LineHeight
	case css.PropTextAlign:
		return source.inherited.TextAlign
	case css.PropTextIndent:
		return source.inherited.TextIndent
	case css.PropTextTransform:
		return source.inherited.TextTransform
	case css.PropWhiteSpace:
		return source.inherited.WhiteSpace
	case css.PropLetterSpacing:
		return source.inherited.LetterSpacing
	case css.PropWordSpacing:
		return source.inherited.WordSpacing
	case css.PropVisibility:
		return source.inherited.Visibility
	case css.PropCursor:
		return source.inherited.Cursor
	case css.PropListStyleType:
		return source.inherited.ListStyleType
	case css.PropListStyleImage:
		return source.inherited.ListStyleImage
	case css.PropListStylePosition:
		return source.inherited.ListStylePosition

	case css.PropFlexGrow:
		return source.rare.FlexGrow
	case css.PropFlexShrink:
		return source.rare.FlexShrink
	case css.PropFlexBasis:
		return source.rare.FlexBasis
	case css.PropFlexDirection:
		return source.rare.FlexDirection
	case css.PropFlexWrap:
		return source.rare.FlexWrap
	case css.PropOutlineWidth:
		return source.rare.OutlineWidth
	case css.PropOutlineStyle:
		return source.rare.OutlineStyle
	case css.PropOutlineColor:
		return source.rare.OutlineColor
	case css.PropOutlineOffset:
		return source.rare.OutlineOffset
	case css.PropBoxShadow:
		return source.rare.BoxShadow
	case css.PropTextShadow:
		return source.rare.TextShadow
	case css.PropTextDecoration:
		return source.rare.TextDecoration
	case css.PropContent:
		return source.rare.Content
	case css.PropCounterReset:
		return source.rare.CounterReset
	case css.PropCounterIncrement:
		return source.rare.CounterIncrement
	case css.PropZIndex:
		return source.rare.ZIndex
	case css.PropBorderRadius:
		return source.rare.BorderRadius
	}
	return nil
}
