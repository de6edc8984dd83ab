// Package easing provides named normalized-time remapping curves for the
// animation engine. All curves map [0,1] to [0,1] except the elastic and back
// variants, which overshoot for bounce visuals.
package easing

import (
	"math"
	"sort"
)

// Func remaps normalized time t in [0,1] to eased time.
type Func func(t float64) float64

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	// Angular frequency of the in-out elastic oscillation
	elasticC = (2 * math.Pi) / 4.5
)

// Linear is the identity curve and the fallback for unknown names.
func Linear(t float64) float64 { return t }

// Smoothstep is the Hermite curve t²(3−2t). Its derivative is zero at both
// ends, which is what makes it safe for phase-boundary blending.
func Smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

func easeInCubic(t float64) float64  { return t * t * t }
func easeOutCubic(t float64) float64 { u := 1 - t; return 1 - u*u*u }
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func easeInQuart(t float64) float64  { return t * t * t * t }
func easeOutQuart(t float64) float64 { u := 1 - t; return 1 - u*u*u*u }
func easeInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u/2
}

func easeInQuint(t float64) float64  { return t * t * t * t * t }
func easeOutQuint(t float64) float64 { u := 1 - t; return 1 - u*u*u*u*u }
func easeInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u*u/2
}

// Exponential curves special-case the endpoints; 2^(-10·0) would otherwise
// leave a visible 1/1024 step at the loop seam.
func easeInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func easeOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func easeInOutElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	s := math.Sin((20*t - 11.125) * elasticC)
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * s) / 2
	}
	return (math.Pow(2, -20*t+10)*s)/2 + 1
}

func easeInOutBack(t float64) float64 {
	if t < 0.5 {
		u := 2 * t
		return (u * u * ((backC2+1)*u - backC2)) / 2
	}
	u := 2*t - 2
	return (u*u*((backC2+1)*u+backC2) + 2) / 2
}

var curves = map[string]Func{
	"linear":           Linear,
	"smoothstep":       Smoothstep,
	"easeInCubic":      easeInCubic,
	"easeOutCubic":     easeOutCubic,
	"easeInOutCubic":   easeInOutCubic,
	"easeInQuart":      easeInQuart,
	"easeOutQuart":     easeOutQuart,
	"easeInOutQuart":   easeInOutQuart,
	"easeInQuint":      easeInQuint,
	"easeOutQuint":     easeOutQuint,
	"easeInOutQuint":   easeInOutQuint,
	"easeInExpo":       easeInExpo,
	"easeOutExpo":      easeOutExpo,
	"easeInOutElastic": easeInOutElastic,
	"easeInOutBack":    easeInOutBack,
}

// Overshooting reports whether the named curve may leave [0,1].
func Overshooting(name string) bool {
	return name == "easeInOutElastic" || name == "easeInOutBack"
}

// Resolve returns the curve for name, or Linear when the name is unknown.
// Unknown names are a silent recovery, not an error.
func Resolve(name string) Func {
	if f, ok := curves[name]; ok {
		return f
	}
	return Linear
}

// Known reports whether name is a registered curve.
func Known(name string) bool {
	_, ok := curves[name]
	return ok
}

// Names returns all registered curve names in sorted order.
func Names() []string {
	out := make([]string, 0, len(curves))
	for name := range curves {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Ease evaluates the named curve at t. Unknown names fall back to linear.
func Ease(t float64, name string) float64 {
	return Resolve(name)(t)
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp interpolates from→to at eased t. t is clamped to [0,1] before easing,
// so out-of-range inputs pin to the endpoints rather than extrapolating.
func Lerp(from, to, t float64, name string) float64 {
	return from + (to-from)*Ease(Clamp01(t), name)
}
