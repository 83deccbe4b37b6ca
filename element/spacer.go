// SPDX-License-Identifier: Unlicense OR MIT

package element

import (
	"plank.dev/f64"
	"plank.dev/layout"
)

// Spacer is a leaf element with a fixed intrinsic size.
type Spacer struct {
	Size f64.Point
}

func (s Spacer) Content() Content {
	return Leaf(MeasurerFunc(func(layout.Constraints, Env) f64.Point {
		return s.Size
	}))
}

func (s Spacer) WantsBackingView() bool {
	return false
}

// composed is the Element behind Make.
type composed struct {
	content Content
}

// Make returns an anonymous Element with fixed content and no backing
// view.
func Make(c Content) Element {
	return composed{content: c}
}

func (c composed) Content() Content {
	return c.content
}

func (composed) WantsBackingView() bool {
	return false
}
