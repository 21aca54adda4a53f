package style

import "github.com/npillmayer/stylecore/css"

// Display, Position, Float, Clear, OverflowX, OverflowY, BoxSizing, and
// TableLayout expose the enums bag to consumers outside this package (a
// layout/painting stage never needs to mutate a ComputedStyle, only read
// it).
func (s *ComputedStyle) Display() string     { return s.enums.Display }
func (s *ComputedStyle) Position() string    { return s.enums.Position }
func (s *ComputedStyle) Float() string       { return s.enums.Float }
func (s *ComputedStyle) Clear() string       { return s.enums.Clear }
func (s *ComputedStyle) OverflowX() string   { return s.enums.OverflowX }
func (s *ComputedStyle) OverflowY() string   { return s.enums.OverflowY }
func (s *ComputedStyle) BoxSizing() string   { return s.enums.BoxSizing }
func (s *ComputedStyle) TableLayout() string { return s.enums.TableLayout }

func (s *ComputedStyle) Width() css.Measure     { return s.sizes.Width }
func (s *ComputedStyle) Height() css.Measure    { return s.sizes.Height }
func (s *ComputedStyle) MinWidth() css.Measure  { return s.sizes.MinWidth }
func (s *ComputedStyle) MinHeight() css.Measure { return s.sizes.MinHeight }
func (s *ComputedStyle) MaxWidth() css.Measure  { return s.sizes.MaxWidth }
func (s *ComputedStyle) MaxHeight() css.Measure { return s.sizes.MaxHeight }

func (s *ComputedStyle) MarginTop() css.Measure    { return s.sizes.MarginTop }
func (s *ComputedStyle) MarginRight() css.Measure  { return s.sizes.MarginRight }
func (s *ComputedStyle) MarginBottom() css.Measure { return s.sizes.MarginBottom }
func (s *ComputedStyle) MarginLeft() css.Measure   { return s.sizes.MarginLeft }

func (s *ComputedStyle) PaddingTop() css.Measure    { return s.sizes.PaddingTop }
func (s *ComputedStyle) PaddingRight() css.Measure  { return s.sizes.PaddingRight }
func (s *ComputedStyle) PaddingBottom() css.Measure { return s.sizes.PaddingBottom }
func (s *ComputedStyle) PaddingLeft() css.Measure   { return s.sizes.PaddingLeft }

func (s *ComputedStyle) Top() css.Measure    { return s.sizes.Top }
func (s *ComputedStyle) Right() css.Measure  { return s.sizes.Right }
func (s *ComputedStyle) Bottom() css.Measure { return s.sizes.Bottom }
func (s *ComputedStyle) Left() css.Measure   { return s.sizes.Left }

func (s *ComputedStyle) BackgroundColor() css.Color { return s.background.Color }
func (s *ComputedStyle) BackgroundImage() string    { return s.background.Image }

func (s *ComputedStyle) BorderTopWidth() css.Measure  { return s.border.Top.Width }
func (s *ComputedStyle) BorderTopStyle() string       { return s.border.Top.Style }
func (s *ComputedStyle) BorderTopColor() css.Color    { return s.border.Top.Color }
func (s *ComputedStyle) BorderRightWidth() css.Measure  { return s.border.Right.Width }
func (s *ComputedStyle) BorderBottomWidth() css.Measure { return s.border.Bottom.Width }
func (s *ComputedStyle) BorderLeftWidth() css.Measure   { return s.border.Left.Width }

func (s *ComputedStyle) Color() css.Color      { return s.inherited.Color }
func (s *ComputedStyle) FontFamily() string    { return s.inherited.FontFamily }
func (s *ComputedStyle) FontSize() css.Measure { return s.inherited.FontSize }
func (s *ComputedStyle) FontStyle() string     { return s.inherited.FontStyle }
func (s *ComputedStyle) FontWeight() string    { return s.inherited.FontWeight }
func (s *ComputedStyle) LineHeight() any       { return s.inherited.LineHeight }
func (s *ComputedStyle) TextAlign() string     { return s.inherited.TextAlign }
func (s *ComputedStyle) Visibility() string    { return s.inherited.Visibility }

func (s *ComputedStyle) ZIndex() any { return s.rare.ZIndex }
