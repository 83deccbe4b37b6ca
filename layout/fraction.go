// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"plank.dev/f64"
)

// NoFraction marks an axis without a fraction; Fractioned passes that
// axis of the child's measured size through unchanged.
var NoFraction = math.NaN()

// Fractioned forces its child to a fraction of the proposed space. A
// supplied fraction both narrows the constraint passed down to the
// child and overrides the resulting dimension to exactly
// fraction*maximum; this is an override, not a clamp, unlike
// Constrained.
type Fractioned struct {
	width, height float64
}

// NewFractioned returns a Fractioned with the given per-axis fractions.
// Pass NoFraction to leave an axis alone. It panics immediately if a
// supplied fraction lies outside [0; 1].
func NewFractioned(width, height float64) Fractioned {
	checkFraction("width", width)
	checkFraction("height", height)
	return Fractioned{width: width, height: height}
}

func checkFraction(axis string, f float64) {
	if math.IsNaN(f) {
		return
	}
	if f < 0 || f > 1 {
		panic(fmt.Sprintf("layout: %s fraction %v outside [0; 1]", axis, f))
	}
}

func (f Fractioned) Measure(cs Constraints, child Measurable) f64.Point {
	ccs := cs
	fracW := !math.IsNaN(f.width) && cs.Width.Bounded()
	fracH := !math.IsNaN(f.height) && cs.Height.Bounded()
	if fracW {
		ccs.Width.Max = cs.Width.Max * f.width
		if ccs.Width.Min > ccs.Width.Max {
			ccs.Width.Min = ccs.Width.Max
		}
	}
	if fracH {
		ccs.Height.Max = cs.Height.Max * f.height
		if ccs.Height.Min > ccs.Height.Max {
			ccs.Height.Min = ccs.Height.Max
		}
	}
	sz := child.Measure(ccs)
	if fracW {
		sz.X = cs.Width.Max * f.width
	}
	if fracH {
		sz.Y = cs.Height.Max * f.height
	}
	return sz
}

func (f Fractioned) Layout(size f64.Point, child Measurable) Attributes {
	return MakeAttributes(f64.Rectangle{Max: size})
}
