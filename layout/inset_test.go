// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"plank.dev/f64"
)

func TestInsetMeasure(t *testing.T) {
	in := UniformInset(10)
	got := in.Measure(Loose(f64.Pt(100, 100)), sized{w: 50, h: 50})
	if want := f64.Pt(70, 70); got != want {
		t.Errorf("Measure: have %v, want %v", got, want)
	}
}

func TestInsetDeflatesChildConstraint(t *testing.T) {
	in := Inset{Top: 5, Right: 10, Bottom: 5, Left: 10}
	var seen Constraints
	probe := MeasureFunc(func(cs Constraints) f64.Point {
		seen = cs
		return f64.Point{}
	})
	in.Measure(Loose(f64.Pt(100, 40)), probe)
	if seen.Width.Max != 80 {
		t.Errorf("child width max: have %v, want 80", seen.Width.Max)
	}
	if seen.Height.Max != 30 {
		t.Errorf("child height max: have %v, want 30", seen.Height.Max)
	}
	// An unbounded axis stays unbounded.
	in.Measure(Constraints{Width: Unbounded(), Height: Unbounded()}, probe)
	if seen.Width.Bounded() {
		t.Error("unbounded child width became bounded")
	}
}

func TestInsetCollapses(t *testing.T) {
	in := UniformInset(30)
	var seen Constraints
	probe := MeasureFunc(func(cs Constraints) f64.Point {
		seen = cs
		return f64.Point{}
	})
	in.Measure(Loose(f64.Pt(40, 40)), probe)
	if seen.Width.Max != 0 {
		t.Errorf("oversized inset width max: have %v, want 0", seen.Width.Max)
	}
	at := in.Layout(f64.Pt(40, 40), sized{})
	if at.Frame.Dx() != 0 || at.Frame.Dy() != 0 {
		t.Errorf("oversized inset frame: have %v, want empty", at.Frame)
	}
}

func TestInsetLayout(t *testing.T) {
	in := Inset{Top: 1, Right: 2, Bottom: 3, Left: 4}
	at := in.Layout(f64.Pt(100, 50), sized{w: 10, h: 10})
	if want := f64.Rect(4, 1, 98, 47); at.Frame != want {
		t.Errorf("frame: have %v, want %v", at.Frame, want)
	}
}
