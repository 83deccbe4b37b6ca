// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "plank.dev/f64"

type limitKind uint8

const (
	noLimit limitKind = iota
	atMostLimit
	atLeastLimit
	withinLimit
	absoluteLimit
)

// Limit constrains one axis of a child's measured size.
type Limit struct {
	kind     limitKind
	min, max float64
}

// NoLimit leaves the axis unconstrained.
func NoLimit() Limit {
	return Limit{}
}

// LimitAtMost caps the axis at v.
func LimitAtMost(v float64) Limit {
	return Limit{kind: atMostLimit, max: v}
}

// LimitAtLeast raises the axis to at least v.
func LimitAtLeast(v float64) Limit {
	return Limit{kind: atLeastLimit, min: v}
}

// LimitWithin clamps the axis into [min; max]. It panics if min > max.
func LimitWithin(min, max float64) Limit {
	if min > max {
		panic("layout: LimitWithin with min > max")
	}
	return Limit{kind: withinLimit, min: min, max: max}
}

// LimitAbsolute overrides the axis to exactly v, regardless of the
// child's natural size.
func LimitAbsolute(v float64) Limit {
	return Limit{kind: absoluteLimit, min: v, max: v}
}

func (l Limit) apply(v float64) float64 {
	switch l.kind {
	case noLimit:
		return v
	case atMostLimit:
		if v > l.max {
			return l.max
		}
		return v
	case atLeastLimit:
		if v < l.min {
			return l.min
		}
		return v
	case withinLimit:
		if v < l.min {
			return l.min
		}
		if v > l.max {
			return l.max
		}
		return v
	case absoluteLimit:
		return l.min
	default:
		panic("unreachable")
	}
}

// Constrained clamps or overrides its child's measured size,
// independently per axis. The child is measured first, under the
// incoming constraint; the limits then apply to the result, not to the
// constraint passed down.
type Constrained struct {
	Width, Height Limit
}

func (c Constrained) Measure(cs Constraints, child Measurable) f64.Point {
	sz := child.Measure(cs)
	return f64.Point{X: c.Width.apply(sz.X), Y: c.Height.apply(sz.Y)}
}

func (c Constrained) Layout(size f64.Point, child Measurable) Attributes {
	return MakeAttributes(f64.Rectangle{Max: size})
}
