// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "plank.dev/f64"

// Overlay lays out children on top of each other, sized to the largest
// child and positioned by alignment guides. Item order is z-order:
// later children stack above earlier ones.
type Overlay struct {
	// Alignment positions children smaller than the overlay. The zero
	// value aligns to the top leading corner.
	Alignment Alignment
}

// Measure loosens the minimum and returns the componentwise maximum of
// the children's sizes, raised back into the constraint.
func (o Overlay) Measure(cs Constraints, items []LayoutItem) f64.Point {
	loose := cs
	loose.Width.Min = 0
	loose.Height.Min = 0
	var max f64.Point
	for _, it := range items {
		sz := it.Content.Measure(loose)
		if sz.X > max.X {
			max.X = sz.X
		}
		if sz.Y > max.Y {
			max.Y = sz.Y
		}
	}
	return cs.Constrain(max)
}

// Layout measures each child within size and offsets it so the child's
// alignment guide coincides with the overlay's.
func (o Overlay) Layout(size f64.Point, items []LayoutItem) []Attributes {
	atts := make([]Attributes, len(items))
	outer := Dimensions{Width: size.X, Height: size.Y}
	for i, it := range items {
		sz := it.Content.Measure(Loose(size))
		inner := Dimensions{Width: sz.X, Height: sz.Y}
		org := f64.Point{
			X: o.Alignment.Horizontal.DefaultValue(outer) - o.Alignment.Horizontal.DefaultValue(inner),
			Y: o.Alignment.Vertical.DefaultValue(outer) - o.Alignment.Vertical.DefaultValue(inner),
		}
		atts[i] = MakeAttributes(f64.Rectangle{Min: org, Max: org.Add(sz)})
	}
	return atts
}
