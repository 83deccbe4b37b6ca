// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "plank.dev/f64"

// Aligned positions its child within the available space using
// alignment guides: the child's guide value is made to coincide with
// the container's.
type Aligned struct {
	// Alignment selects the guides. The zero value aligns to the top
	// leading corner.
	Alignment Alignment
}

// Measure returns the child's size under a loosened constraint, raised
// into the incoming minimum so there is space to align within.
func (a Aligned) Measure(cs Constraints, child Measurable) f64.Point {
	loose := cs
	loose.Width.Min = 0
	loose.Height.Min = 0
	return cs.Constrain(child.Measure(loose))
}

func (a Aligned) Layout(size f64.Point, child Measurable) Attributes {
	sz := child.Measure(Loose(size))
	outer := Dimensions{Width: size.X, Height: size.Y}
	inner := Dimensions{Width: sz.X, Height: sz.Y}
	org := f64.Point{
		X: a.Alignment.Horizontal.DefaultValue(outer) - a.Alignment.Horizontal.DefaultValue(inner),
		Y: a.Alignment.Vertical.DefaultValue(outer) - a.Alignment.Vertical.DefaultValue(inner),
	}
	return MakeAttributes(f64.Rectangle{Min: org, Max: org.Add(sz)})
}
