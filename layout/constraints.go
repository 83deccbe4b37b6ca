// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"plank.dev/f64"
)

// Inf is the sentinel maximum of an unconstrained axis.
var Inf = math.Inf(1)

// Constraint is a range of acceptable sizes in a single dimension.
// The zero value admits only zero; use Unbounded for an axis without
// an upper bound.
type Constraint struct {
	Min, Max float64
}

// Constraints represent a set of acceptable ranges for an element's
// width and height.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Exact returns the constraint that can only be satisfied by v.
func Exact(v float64) Constraint {
	return Constraint{Min: v, Max: v}
}

// AtMost returns the constraint admitting any size up to v.
func AtMost(v float64) Constraint {
	return Constraint{Max: v}
}

// AtLeast returns the constraint admitting any size of v or more.
func AtLeast(v float64) Constraint {
	return Constraint{Min: v, Max: Inf}
}

// Unbounded returns the constraint admitting any size.
func Unbounded() Constraint {
	return Constraint{Max: Inf}
}

// Bounded reports whether c has an upper bound.
func (c Constraint) Bounded() bool {
	return !math.IsInf(c.Max, 1)
}

// Constrain a value to the range [Min; Max]. Constraining a value
// already in range returns it unchanged.
func (c Constraint) Constrain(v float64) float64 {
	if v < c.Min {
		return c.Min
	} else if v > c.Max {
		return c.Max
	}
	return v
}

// Exactly returns the constraints that can only be satisfied by the
// given size.
func Exactly(size f64.Point) Constraints {
	return Constraints{
		Width:  Exact(size.X),
		Height: Exact(size.Y),
	}
}

// Loose returns the constraints bounded above by the given size with
// no minimum.
func Loose(size f64.Point) Constraints {
	return Constraints{
		Width:  AtMost(size.X),
		Height: AtMost(size.Y),
	}
}

// Unconstrained returns the constraints admitting any size on both
// axes.
func Unconstrained() Constraints {
	return Constraints{
		Width:  Unbounded(),
		Height: Unbounded(),
	}
}

// Constrain a size to the Width and Height ranges.
func (c Constraints) Constrain(size f64.Point) f64.Point {
	return f64.Point{X: c.Width.Constrain(size.X), Y: c.Height.Constrain(size.Y)}
}
