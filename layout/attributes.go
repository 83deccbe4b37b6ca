// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "plank.dev/f64"

// Tint is the tint adjustment mode propagated to the platform view
// backing a node.
type Tint uint8

const (
	// TintAutomatic follows the tint adjustment of the surrounding
	// hierarchy.
	TintAutomatic Tint = iota
	// TintNormal keeps the node's own tint color.
	TintNormal
	// TintDimmed desaturates the node's tint color.
	TintDimmed
)

// Attributes are the resolved geometry and paint attributes for one
// node, produced once per child per layout pass and never reused
// across passes.
type Attributes struct {
	// Frame is the node's rectangle in its parent's coordinate space.
	Frame f64.Rectangle
	// Opacity in the range [0; 1].
	Opacity float64
	// Transform applied to the node. The zero value is the identity.
	Transform f64.Affine2D
	// UserInteractionEnabled controls event delivery to the node.
	UserInteractionEnabled bool
	// Hidden removes the node from display without affecting layout.
	Hidden bool
	// Tint adjustment mode for the node.
	Tint Tint
}

// MakeAttributes returns the default attributes for a node occupying
// frame: fully opaque, identity transform, interactive and visible.
func MakeAttributes(frame f64.Rectangle) Attributes {
	return Attributes{
		Frame:                  frame,
		Opacity:                1,
		UserInteractionEnabled: true,
	}
}

func (t Tint) String() string {
	switch t {
	case TintAutomatic:
		return "TintAutomatic"
	case TintNormal:
		return "TintNormal"
	case TintDimmed:
		return "TintDimmed"
	default:
		panic("unreachable")
	}
}
