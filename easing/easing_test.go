package easing

import (
	"math"
	"testing"
)

func TestBoundaryLaws(t *testing.T) {
	for _, name := range Names() {
		if Overshooting(name) {
			// Elastic and back still hit the endpoints exactly, they just
			// leave [0,1] in between.
			if v := Ease(0, name); v != 0 {
				t.Errorf("%s: ease(0) = %v, want 0", name, v)
			}
			if v := Ease(1, name); v != 1 {
				t.Errorf("%s: ease(1) = %v, want 1", name, v)
			}
			continue
		}
		if v := Ease(0, name); v != 0 {
			t.Errorf("%s: ease(0) = %v, want 0", name, v)
		}
		if v := Ease(1, name); v != 1 {
			t.Errorf("%s: ease(1) = %v, want 1", name, v)
		}
		for i := 0; i <= 100; i++ {
			tt := float64(i) / 100
			v := Ease(tt, name)
			if v < -1e-12 || v > 1+1e-12 {
				t.Errorf("%s: ease(%v) = %v outside [0,1]", name, tt, v)
			}
		}
	}
}

func TestLerpRoundTrip(t *testing.T) {
	for _, name := range Names() {
		if got := Lerp(3, 7, 0, name); got != 3 {
			t.Errorf("%s: lerp(3,7,0) = %v, want 3", name, got)
		}
		if got := Lerp(3, 7, 1, name); got != 7 {
			t.Errorf("%s: lerp(3,7,1) = %v, want 7", name, got)
		}
	}
}

func TestLerpClampsTime(t *testing.T) {
	if got := Lerp(2, 4, -0.5, "linear"); got != 2 {
		t.Errorf("lerp below range = %v, want 2", got)
	}
	if got := Lerp(2, 4, 1.5, "linear"); got != 4 {
		t.Errorf("lerp above range = %v, want 4", got)
	}
}

func TestUnknownNameFallsBackToLinear(t *testing.T) {
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Ease(tt, "noSuchCurve"); got != tt {
			t.Errorf("ease(%v, unknown) = %v, want linear %v", tt, got, tt)
		}
	}
	if Known("noSuchCurve") {
		t.Error("Known(noSuchCurve) = true")
	}
}

func TestSmoothstepValues(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.25, 0.15625},
		{0.5, 0.5},
		{0.75, 0.84375},
		{1, 1},
	}
	for _, tc := range tests {
		if got := Smoothstep(tc.t); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("smoothstep(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestSmoothstepFlatEnds(t *testing.T) {
	// Derivative ~0 at both ends: a small step at the boundary moves the
	// output by much less than the step.
	const h = 1e-4
	if d := Smoothstep(h) - Smoothstep(0); d > h/10 {
		t.Errorf("smoothstep slope at 0 too steep: %v", d/h)
	}
	if d := Smoothstep(1) - Smoothstep(1-h); d > h/10 {
		t.Errorf("smoothstep slope at 1 too steep: %v", d/h)
	}
}

func TestExpoEndpointSpecialCases(t *testing.T) {
	// Without the special cases easeInExpo(0) would be 2^-10, not 0.
	if v := Ease(0, "easeInExpo"); v != 0 {
		t.Errorf("easeInExpo(0) = %v, want exactly 0", v)
	}
	if v := Ease(1, "easeOutExpo"); v != 1 {
		t.Errorf("easeOutExpo(1) = %v, want exactly 1", v)
	}
}

func TestOvershootCurvesLeaveUnitRange(t *testing.T) {
	overshot := func(name string) bool {
		for i := 1; i < 100; i++ {
			v := Ease(float64(i)/100, name)
			if v < 0 || v > 1 {
				return true
			}
		}
		return false
	}
	if !overshot("easeInOutElastic") {
		t.Error("easeInOutElastic never left [0,1]")
	}
	if !overshot("easeInOutBack") {
		t.Error("easeInOutBack never left [0,1]")
	}
}

func TestInOutSymmetryAtMidpoint(t *testing.T) {
	for _, name := range []string{"easeInOutCubic", "easeInOutQuart", "easeInOutQuint"} {
		if got := Ease(0.5, name); math.Abs(got-0.5) > 1e-12 {
			t.Errorf("%s(0.5) = %v, want 0.5", name, got)
		}
	}
}
