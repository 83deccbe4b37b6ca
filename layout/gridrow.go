// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "plank.dev/f64"

// Width is the per-child width trait consumed by GridRow: either an
// absolute width or a weight proportional to the row's leftover space.
type Width struct {
	proportional bool
	value        float64
}

// Absolute returns a Width of exactly w, regardless of the row width.
func Absolute(w float64) Width {
	return Width{value: w}
}

// Proportional returns a Width receiving a share of the row's leftover
// space in proportion to weight.
func Proportional(weight float64) Width {
	return Width{proportional: true, value: weight}
}

type widthKey struct{}

// Children without an explicit Width share leftover space equally.
func (widthKey) Default() any {
	return Proportional(1)
}

// WidthTraits returns the Traits assigning w to a GridRow child.
func WidthTraits(w Width) Traits {
	return MakeTraits(widthKey{}, w)
}

// GridRow distributes a row's width among its children. Absolute
// children receive exactly their declared width; the remaining width,
// after absolute widths and inter-item spacing, is split between
// proportional children by weight. Every child receives the full row
// height.
type GridRow struct {
	// Spacing is the horizontal gap between adjacent children.
	Spacing float64
}

// widths resolves the assigned width of every item for a row of the
// given total width.
func (g GridRow) widths(total float64, items []LayoutItem) []float64 {
	ws := make([]float64, len(items))
	remaining := total - g.Spacing*float64(len(items)-1)
	var weight float64
	for i, it := range items {
		w := it.Traits.Value(widthKey{}).(Width)
		if w.proportional {
			weight += w.value
		} else {
			ws[i] = w.value
			remaining -= w.value
		}
	}
	if remaining < 0 {
		remaining = 0
	}
	// A zero total weight distributes nothing; proportional children
	// collapse to zero width rather than dividing by zero.
	if weight > 0 {
		for i, it := range items {
			if w := it.Traits.Value(widthKey{}).(Width); w.proportional {
				ws[i] = remaining * (w.value / weight)
			}
		}
	}
	return ws
}

// Measure resolves the row width from the constraint when bounded,
// measuring each child at its assigned width to find the row height.
// Under an unbounded width, children are measured freely and the row
// is their total width.
func (g GridRow) Measure(cs Constraints, items []LayoutItem) f64.Point {
	if len(items) == 0 {
		return f64.Point{}
	}
	if !cs.Width.Bounded() {
		var width, height float64
		for i, it := range items {
			sz := it.Content.Measure(cs)
			if w := it.Traits.Value(widthKey{}).(Width); !w.proportional {
				sz.X = w.value
			}
			width += sz.X
			if i > 0 {
				width += g.Spacing
			}
			if sz.Y > height {
				height = sz.Y
			}
		}
		return f64.Point{X: width, Y: height}
	}
	width := cs.Width.Max
	ws := g.widths(width, items)
	var height float64
	for i, it := range items {
		sz := it.Content.Measure(Constraints{
			Width:  Exact(ws[i]),
			Height: cs.Height,
		})
		if sz.Y > height {
			height = sz.Y
		}
	}
	return f64.Point{X: width, Y: height}
}

// Layout places children at successive horizontal offsets with their
// assigned widths and the full row height.
func (g GridRow) Layout(size f64.Point, items []LayoutItem) []Attributes {
	atts := make([]Attributes, len(items))
	ws := g.widths(size.X, items)
	var x float64
	for i := range items {
		atts[i] = MakeAttributes(f64.Rect(x, 0, x+ws[i], size.Y))
		x += ws[i] + g.Spacing
	}
	return atts
}
