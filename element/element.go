// SPDX-License-Identifier: Unlicense OR MIT

/*
Package element defines the element tree consumed by the layout engine
and the recursive driver that measures and lays it out.

An Element is an immutable description of one node of content. Its
Content wraps exactly one of: an intrinsic size (a leaf), a single
child governed by a SingleChildLayout, or an ordered child list
governed by a Layout. Measurement and layout are synchronous pure
passes over the tree; nothing is cached at this layer, and callers that
need memoization wrap content themselves.
*/
package element

import (
	"plank.dev/f64"
	"plank.dev/layout"
)

// Env is an opaque environment value supplied by the caller and
// threaded unmodified through every measure and layout call. The
// engine never inspects it.
type Env = any

// Element is one node of content. Implementations must be immutable
// values.
type Element interface {
	// Content returns the element's layout payload.
	Content() Content

	// WantsBackingView reports whether the external rendering layer
	// should create a native view for this element. Measurement and
	// layout never consult it.
	WantsBackingView() bool
}

// Measurer computes the intrinsic size of a leaf element. The returned
// size is clamped into the proposed constraint by the engine.
type Measurer interface {
	Measure(cs layout.Constraints, env Env) f64.Point
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(cs layout.Constraints, env Env) f64.Point

func (f MeasurerFunc) Measure(cs layout.Constraints, env Env) f64.Point {
	return f(cs, env)
}

// Child is one entry of a container's ordered child list. Order is
// significant: it is the order attributes are returned in and the
// z-order where strategies stack children.
type Child struct {
	Element Element
	// Traits carries per-child metadata for the container's layout.
	// The zero value reports every key's default.
	Traits layout.Traits
	// Key optionally identifies the child across rebuilds. The engine
	// carries it through layout unchanged for use by an external
	// reconciliation layer.
	Key any
}

type contentKind uint8

const (
	leafContent contentKind = iota
	singleContent
	containerContent
)

// Content is the layout payload of an element.
type Content struct {
	kind     contentKind
	measurer Measurer
	single   layout.SingleChildLayout
	child    Element
	layout   layout.Layout
	children []Child
}

// Leaf returns content with no children and the given intrinsic
// measurement.
func Leaf(m Measurer) Content {
	return Content{kind: leafContent, measurer: m}
}

// Single returns content holding exactly one child governed by l.
func Single(l layout.SingleChildLayout, child Element) Content {
	return Content{kind: singleContent, single: l, child: child}
}

// Container returns content holding an ordered child list governed by
// l.
func Container(l layout.Layout, children ...Child) Content {
	return Content{kind: containerContent, layout: l, children: children}
}

// Add appends children to container content, in order. It panics for
// leaf and single-child content.
func (c *Content) Add(children ...Child) {
	if c.kind != containerContent {
		panic("element: Add on non-container content")
	}
	c.children = append(c.children, children...)
}

// ChildCount returns the number of direct children.
func (c Content) ChildCount() int {
	switch c.kind {
	case leafContent:
		return 0
	case singleContent:
		return 1
	default:
		return len(c.children)
	}
}
