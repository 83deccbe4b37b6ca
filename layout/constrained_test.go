// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"plank.dev/f64"
)

func TestConstrainedAbsoluteOverride(t *testing.T) {
	c := Constrained{Width: LimitAbsolute(10)}
	got := c.Measure(Unconstrained(), sized{w: 50, h: 50})
	if want := f64.Pt(10, 50); got != want {
		t.Errorf("absolute override: have %v, want %v", got, want)
	}
}

func TestConstrainedLimits(t *testing.T) {
	for _, tc := range []struct {
		name  string
		limit Limit
		want  float64
	}{
		{"none", NoLimit(), 50},
		{"atMost below", LimitAtMost(30), 30},
		{"atMost above", LimitAtMost(80), 50},
		{"atLeast below", LimitAtLeast(30), 50},
		{"atLeast above", LimitAtLeast(80), 80},
		{"within clamps up", LimitWithin(60, 90), 60},
		{"within clamps down", LimitWithin(10, 40), 40},
		{"within passes", LimitWithin(10, 90), 50},
		{"absolute", LimitAbsolute(7), 7},
	} {
		c := Constrained{Width: tc.limit}
		got := c.Measure(Unconstrained(), sized{w: 50, h: 50})
		if got.X != tc.want {
			t.Errorf("%s: have %v, want %v", tc.name, got.X, tc.want)
		}
		if got.Y != 50 {
			t.Errorf("%s: height changed to %v", tc.name, got.Y)
		}
	}
}

func TestLimitWithinPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LimitWithin(10, 5) did not panic")
		}
	}()
	LimitWithin(10, 5)
}

func TestConstrainedLayoutFillsSize(t *testing.T) {
	c := Constrained{Width: LimitAbsolute(10)}
	at := c.Layout(f64.Pt(10, 50), sized{w: 50, h: 50})
	if want := f64.Rect(0, 0, 10, 50); at.Frame != want {
		t.Errorf("frame: have %v, want %v", at.Frame, want)
	}
}
