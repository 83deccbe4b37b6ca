// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"plank.dev/f64"
)

func TestGridRowDistribution(t *testing.T) {
	g := GridRow{}
	its := []LayoutItem{
		{Traits: WidthTraits(Absolute(20)), Content: sized{w: 5, h: 10}},
		{Traits: WidthTraits(Proportional(1)), Content: sized{w: 5, h: 10}},
		{Traits: WidthTraits(Proportional(3)), Content: sized{w: 5, h: 10}},
	}
	atts := g.Layout(f64.Pt(100, 10), its)
	if len(atts) != 3 {
		t.Fatalf("attribute count: have %d, want 3", len(atts))
	}
	// Remaining 80 split 1:3 between the proportional children.
	want := []float64{20, 20, 60}
	var x float64
	for i, at := range atts {
		if got := at.Frame.Dx(); got != want[i] {
			t.Errorf("child %d width: have %v, want %v", i, got, want[i])
		}
		if got := at.Frame.Min.X; got != x {
			t.Errorf("child %d offset: have %v, want %v", i, got, x)
		}
		if got := at.Frame.Dy(); got != 10 {
			t.Errorf("child %d height: have %v, want 10", i, got)
		}
		x += want[i]
	}
}

func TestGridRowAbsoluteIgnoresRowWidth(t *testing.T) {
	g := GridRow{}
	its := []LayoutItem{
		{Traits: WidthTraits(Absolute(20)), Content: sized{w: 5, h: 10}},
	}
	for _, width := range []float64{10, 100, 1000} {
		atts := g.Layout(f64.Pt(width, 10), its)
		if got := atts[0].Frame.Dx(); got != 20 {
			t.Errorf("row width %v: absolute child width %v, want 20", width, got)
		}
	}
}

func TestGridRowZeroWeight(t *testing.T) {
	g := GridRow{}
	its := []LayoutItem{
		{Traits: WidthTraits(Proportional(0)), Content: sized{w: 5, h: 10}},
		{Traits: WidthTraits(Proportional(0)), Content: sized{w: 5, h: 10}},
	}
	atts := g.Layout(f64.Pt(100, 10), its)
	for i, at := range atts {
		if got := at.Frame.Dx(); got != 0 {
			t.Errorf("child %d width: have %v, want 0", i, got)
		}
	}
}

func TestGridRowDefaultTrait(t *testing.T) {
	g := GridRow{}
	// Children without a Width trait share space equally.
	its := []LayoutItem{
		{Content: sized{w: 5, h: 10}},
		{Content: sized{w: 5, h: 10}},
	}
	atts := g.Layout(f64.Pt(100, 10), its)
	if atts[0].Frame.Dx() != 50 || atts[1].Frame.Dx() != 50 {
		t.Errorf("default trait split: have %v and %v, want 50 and 50",
			atts[0].Frame.Dx(), atts[1].Frame.Dx())
	}
}

func TestGridRowSpacing(t *testing.T) {
	g := GridRow{Spacing: 10}
	its := []LayoutItem{
		{Traits: WidthTraits(Absolute(20)), Content: sized{w: 5, h: 10}},
		{Traits: WidthTraits(Proportional(1)), Content: sized{w: 5, h: 10}},
	}
	atts := g.Layout(f64.Pt(100, 10), its)
	// Remaining after the absolute child and one gap: 70.
	if got := atts[1].Frame.Dx(); got != 70 {
		t.Errorf("proportional width: have %v, want 70", got)
	}
	if got := atts[1].Frame.Min.X; got != 30 {
		t.Errorf("proportional offset: have %v, want 30", got)
	}
}

func TestGridRowMeasure(t *testing.T) {
	g := GridRow{}
	its := []LayoutItem{
		{Traits: WidthTraits(Absolute(20)), Content: sized{w: 5, h: 15}},
		{Traits: WidthTraits(Proportional(1)), Content: sized{w: 5, h: 30}},
	}
	got := g.Measure(Constraints{Width: AtMost(100), Height: Unbounded()}, its)
	if want := f64.Pt(100, 30); got != want {
		t.Errorf("Measure: have %v, want %v", got, want)
	}
	if got := g.Measure(Unconstrained(), nil); got != (f64.Point{}) {
		t.Errorf("empty Measure: have %v, want zero", got)
	}
}
