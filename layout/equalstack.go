// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "plank.dev/f64"

// EqualStack arranges children along an axis, assigning each an equal
// share of the available extent with a fixed gutter between
// neighbours. On the cross axis every child receives the full extent.
type EqualStack struct {
	// Axis is the stacking axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing is the gutter between adjacent children.
	Spacing float64
}

// Measure sums the children's sizes along the stack axis, takes the
// maximum on the cross axis and adds the gutters. Zero children
// measure as the zero size.
func (e EqualStack) Measure(cs Constraints, items []LayoutItem) f64.Point {
	if len(items) == 0 {
		return f64.Point{}
	}
	var main, cross float64
	for _, it := range items {
		sz := it.Content.Measure(cs)
		main += axisMain(e.Axis, sz)
		if c := axisCross(e.Axis, sz); c > cross {
			cross = c
		}
	}
	main += e.Spacing * float64(len(items)-1)
	return axisPoint(e.Axis, main, cross)
}

// Layout partitions size into equal shares of
// (extent - Spacing*(N-1)) / N, placing child i at offset
// i*(share+Spacing).
func (e EqualStack) Layout(size f64.Point, items []LayoutItem) []Attributes {
	atts := make([]Attributes, len(items))
	if len(items) == 0 {
		return atts
	}
	n := float64(len(items))
	share := (axisMain(e.Axis, size) - e.Spacing*(n-1)) / n
	if share < 0 {
		share = 0
	}
	cross := axisCross(e.Axis, size)
	var offset float64
	for i := range items {
		org := axisPoint(e.Axis, offset, 0)
		atts[i] = MakeAttributes(f64.Rectangle{
			Min: org,
			Max: org.Add(axisPoint(e.Axis, share, cross)),
		})
		offset += share + e.Spacing
	}
	return atts
}
