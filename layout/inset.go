// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "plank.dev/f64"

// Inset adds space around its child. The child constraint is deflated
// by the edge insets and the measured size re-inflated; insets that
// exceed the available space collapse to it.
type Inset struct {
	Top, Right, Bottom, Left float64
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float64) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

func (in Inset) Measure(cs Constraints, child Measurable) f64.Point {
	sz := child.Measure(in.deflate(cs))
	return sz.Add(f64.Point{X: in.Left + in.Right, Y: in.Top + in.Bottom})
}

func (in Inset) Layout(size f64.Point, child Measurable) Attributes {
	x0, y0 := in.Left, in.Top
	x1, y1 := size.X-in.Right, size.Y-in.Bottom
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return MakeAttributes(f64.Rect(x0, y0, x1, y1))
}

func (in Inset) deflate(cs Constraints) Constraints {
	mcs := cs
	mcs.Width = deflateAxis(mcs.Width, in.Left+in.Right)
	mcs.Height = deflateAxis(mcs.Height, in.Top+in.Bottom)
	return mcs
}

func deflateAxis(c Constraint, total float64) Constraint {
	if c.Bounded() {
		c.Max -= total
		if c.Max < 0 {
			c.Max = 0
		}
	}
	c.Min -= total
	if c.Min < 0 {
		c.Min = 0
	}
	if c.Min > c.Max {
		c.Min = c.Max
	}
	return c
}
