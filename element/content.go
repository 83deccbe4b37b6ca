// SPDX-License-Identifier: Unlicense OR MIT

package element

import (
	"fmt"

	"plank.dev/f64"
	"plank.dev/layout"
)

// Node is the layout result for one element: its resolved attributes
// in the parent's coordinate space and the results for its own
// children, keyed by position. Key is whatever the parent attached to
// the child, preserved unchanged.
type Node struct {
	Element    Element
	Key        any
	Attributes layout.Attributes
	Children   []Node
}

// Measure returns the size of the content under cs. Leaves report
// their intrinsic size clamped into the constraint; delegated content
// forwards to its strategy, handing it deferred handles so it may
// skip, or repeat, child measurement.
//
// Nothing is cached: repeated calls with identical arguments recompute
// from scratch.
func (c Content) Measure(cs layout.Constraints, env Env) f64.Point {
	switch c.kind {
	case leafContent:
		return cs.Constrain(c.measurer.Measure(cs, env))
	case singleContent:
		return c.single.Measure(cs, measurable(c.child, env))
	default:
		return c.layout.Measure(cs, c.items(env))
	}
}

// Layout produces the attribute tree for the content's children within
// the given size. The size is authoritative: it is used as handed in,
// even if Measure would disagree for the same constraint. Each child
// is then recursively laid out within the frame its parent assigned.
//
// A Layout returning a mismatched attribute count is a broken
// implementation and panics.
func (c Content) Layout(size f64.Point, env Env) []Node {
	switch c.kind {
	case leafContent:
		return nil
	case singleContent:
		attrs := c.single.Layout(size, measurable(c.child, env))
		return []Node{makeNode(c.child, nil, attrs, env)}
	default:
		atts := c.layout.Layout(size, c.items(env))
		if len(atts) != len(c.children) {
			panic(fmt.Sprintf("element: %T returned %d attributes for %d children",
				c.layout, len(atts), len(c.children)))
		}
		nodes := make([]Node, len(c.children))
		for i, ch := range c.children {
			nodes[i] = makeNode(ch.Element, ch.Key, atts[i], env)
		}
		return nodes
	}
}

func makeNode(e Element, key any, attrs layout.Attributes, env Env) Node {
	return Node{
		Element:    e,
		Key:        key,
		Attributes: attrs,
		Children:   e.Content().Layout(attrs.Frame.Size(), env),
	}
}

// measurable defers a child's measurement behind a handle capturing
// its content and the environment. The handle is only valid for the
// duration of one strategy call.
func measurable(e Element, env Env) layout.Measurable {
	return layout.MeasureFunc(func(cs layout.Constraints) f64.Point {
		return e.Content().Measure(cs, env)
	})
}

func (c Content) items(env Env) []layout.LayoutItem {
	items := make([]layout.LayoutItem, len(c.children))
	for i, ch := range c.children {
		items[i] = layout.LayoutItem{
			Traits:  ch.Traits,
			Content: measurable(ch.Element, env),
		}
	}
	return items
}

// Measure measures e under cs.
func Measure(e Element, cs layout.Constraints, env Env) f64.Point {
	return e.Content().Measure(cs, env)
}

// LayoutTree assigns e the given size at the origin with default paint
// attributes and lays out its entire subtree.
func LayoutTree(e Element, size f64.Point, env Env) Node {
	return Node{
		Element:    e,
		Attributes: layout.MakeAttributes(f64.Rectangle{Max: size}),
		Children:   e.Content().Layout(size, env),
	}
}
