// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"

	"plank.dev/element"
	"plank.dev/f64"
	"plank.dev/layout"
	"plank.dev/unit"
)

// Label is a leaf element whose intrinsic size is the bounding size of
// its shaped text under the proposed width.
type Label struct {
	// Shaper performs the shaping. It must not be shared across
	// concurrent layout passes. A nil Shaper allocates a private one
	// per measurement.
	Shaper *Shaper
	// Faces are the font faces to shape with, in priority order.
	Faces []Face
	// Text is the string to measure.
	Text string
	// Size is the font size.
	Size unit.Sp
	// Metric converts Size to pixels. The zero value converts 1:1.
	Metric unit.Metric
	// MaxLines, when positive, truncates the text after that many
	// lines.
	MaxLines int
}

func (l Label) Content() element.Content {
	return element.Leaf(l)
}

// WantsBackingView is true: a label needs a native view to draw its
// glyphs into.
func (l Label) WantsBackingView() bool {
	return true
}

// Measure shapes the text wrapped to the proposed maximum width and
// returns its bounding size. An unconstrained width never wraps.
func (l Label) Measure(cs layout.Constraints, env element.Env) f64.Point {
	maxWidth := math.MaxInt32
	if cs.Width.Bounded() {
		maxWidth = int(cs.Width.Max)
	}
	params := Parameters{
		PxPerEm:  fixed.I(l.Metric.Sp(l.Size)),
		MaxWidth: maxWidth,
		MaxLines: l.MaxLines,
	}
	faces := make([]font.Face, len(l.Faces))
	for i, f := range l.Faces {
		faces[i] = f.Face()
	}
	shaper := l.Shaper
	if shaper == nil {
		shaper = new(Shaper)
	}
	w, h := Size(shaper.LayoutString(faces, params, l.Text))
	return f64.Point{X: float64(w), Y: float64(h)}
}
