// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Dimensions are the measured width and height of one element, against
// which alignment guides resolve their default values.
type Dimensions struct {
	Width, Height float64
}

// guide is the shared token behind an alignment identifier. Identity is
// pointer identity: two guides are equal only if they originate from
// the same New call, never by structural comparison of their default
// value functions.
type guide struct {
	name         string
	defaultValue func(Dimensions) float64
}

// HorizontalAlignment identifies a vertical guide line positioned by a
// default value computed from an element's own measured dimensions.
type HorizontalAlignment struct {
	guide *guide
}

// VerticalAlignment identifies a horizontal guide line positioned by a
// default value computed from an element's own measured dimensions.
type VerticalAlignment struct {
	guide *guide
}

// NewHorizontalAlignment issues a fresh horizontal alignment token.
// The returned value compares equal only to itself.
func NewHorizontalAlignment(name string, defaultValue func(Dimensions) float64) HorizontalAlignment {
	return HorizontalAlignment{&guide{name: name, defaultValue: defaultValue}}
}

// NewVerticalAlignment issues a fresh vertical alignment token. The
// returned value compares equal only to itself.
func NewVerticalAlignment(name string, defaultValue func(Dimensions) float64) VerticalAlignment {
	return VerticalAlignment{&guide{name: name, defaultValue: defaultValue}}
}

// DefaultValue resolves the guide against an element's measured
// dimensions. The zero alignment resolves to 0.
func (a HorizontalAlignment) DefaultValue(d Dimensions) float64 {
	if a.guide == nil {
		return 0
	}
	return a.guide.defaultValue(d)
}

// DefaultValue resolves the guide against an element's measured
// dimensions. The zero alignment resolves to 0.
func (a VerticalAlignment) DefaultValue(d Dimensions) float64 {
	if a.guide == nil {
		return 0
	}
	return a.guide.defaultValue(d)
}

func (a HorizontalAlignment) String() string {
	if a.guide == nil {
		return "HorizontalAlignment(zero)"
	}
	return a.guide.name
}

func (a VerticalAlignment) String() string {
	if a.guide == nil {
		return "VerticalAlignment(zero)"
	}
	return a.guide.name
}

var (
	// Leading aligns to an element's left edge.
	Leading = NewHorizontalAlignment("leading", func(d Dimensions) float64 { return 0 })
	// CenterX aligns to an element's horizontal center.
	CenterX = NewHorizontalAlignment("centerX", func(d Dimensions) float64 { return d.Width / 2 })
	// Trailing aligns to an element's right edge.
	Trailing = NewHorizontalAlignment("trailing", func(d Dimensions) float64 { return d.Width })

	// Top aligns to an element's top edge.
	Top = NewVerticalAlignment("top", func(d Dimensions) float64 { return 0 })
	// CenterY aligns to an element's vertical center.
	CenterY = NewVerticalAlignment("centerY", func(d Dimensions) float64 { return d.Height / 2 })
	// Bottom aligns to an element's bottom edge.
	Bottom = NewVerticalAlignment("bottom", func(d Dimensions) float64 { return d.Height })
)

// Alignment combines one horizontal and one vertical alignment.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

var (
	TopLeading     = Alignment{Leading, Top}
	TopCenter      = Alignment{CenterX, Top}
	TopTrailing    = Alignment{Trailing, Top}
	CenterLeading  = Alignment{Leading, CenterY}
	Center         = Alignment{CenterX, CenterY}
	CenterTrailing = Alignment{Trailing, CenterY}
	BottomLeading  = Alignment{Leading, Bottom}
	BottomCenter   = Alignment{CenterX, Bottom}
	BottomTrailing = Alignment{Trailing, Bottom}
)
