// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the measurement and layout contracts of a
declarative element tree.

A layout strategy computes a size for a list of children under a
Constraints (measure) and assigns each child a frame and paint
attributes within a concrete size (layout). Children are presented to
strategies as deferred Measurable handles paired with per-child Traits;
a strategy may skip a child's measurement, or repeat it under different
constraints, but can never inspect the child's subtree.
*/
package layout

import "plank.dev/f64"

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Measurable is a deferred handle to one child's measurement: given a
// Constraints, it returns the child's size. The handle is only valid
// for the duration of the strategy call it was passed to and must not
// be retained.
type Measurable interface {
	Measure(cs Constraints) f64.Point
}

// MeasureFunc adapts a function to the Measurable interface.
type MeasureFunc func(cs Constraints) f64.Point

func (f MeasureFunc) Measure(cs Constraints) f64.Point {
	return f(cs)
}

// LayoutItem pairs one child's traits with its measurable content.
// Item order is the declaration order of the children and is
// significant.
type LayoutItem struct {
	Traits  Traits
	Content Measurable
}

// Layout computes the size and per-child attributes for an ordered
// list of children.
//
// Measure must be a pure function of the constraint and the children's
// measured sizes, safe to call repeatedly for the same inputs. Layout
// must return exactly one Attributes per item, in item order, and must
// treat size as authoritative even when it disagrees with what Measure
// would return for the same constraint.
type Layout interface {
	Measure(cs Constraints, items []LayoutItem) f64.Point
	Layout(size f64.Point, items []LayoutItem) []Attributes
}

// SingleChildLayout is a Layout specialized to exactly one child and
// no traits.
type SingleChildLayout interface {
	Measure(cs Constraints, child Measurable) f64.Point
	Layout(size f64.Point, child Measurable) Attributes
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func axisPoint(a Axis, main, cross float64) f64.Point {
	if a == Horizontal {
		return f64.Point{X: main, Y: cross}
	} else {
		return f64.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz f64.Point) float64 {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz f64.Point) float64 {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}
