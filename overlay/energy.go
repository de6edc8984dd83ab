// Package overlay implements the optional energy-pulse and symbol
// sub-renderers behind the pipeline's extension points. The base engine
// works without them; they are wired in per effect instance and gated by
// the config's overlay flags.
package overlay

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/aubryn/sigilweave/geometry"
	"github.com/aubryn/sigilweave/param"
	"github.com/aubryn/sigilweave/render"
)

// Energy draws pulses travelling along each path. Pulse position derives
// from loop progress and the synthesized pathAnimSpeed, so pulses complete
// whole circuits per loop and the wrap is seamless.
type Energy struct {
	// Pulses per path; 0 means one.
	Pulses int
	// Color overrides the pulse color; empty uses the path's start node glow.
	Color string
}

func (e *Energy) Kind() render.OverlayKind { return render.OverlayEnergy }

func (e *Energy) Draw(s render.Surface, fp *param.FrameParams, geo geometry.Provider, tr render.Transform) error {
	width, height := s.Size()
	minDim := float64(min(width, height))
	pulseRadius := minDim * 0.008
	if pulseRadius < 1.5 {
		pulseRadius = 1.5
	}
	pulses := e.Pulses
	if pulses < 1 {
		pulses = 1
	}

	nodes := geo.Nodes()
	speed := fp.PathAnimSpeed()
	intensity := fp.PathIntensity()
	if intensity <= 0 {
		return nil
	}

	for i, path := range geo.Paths() {
		na, nb := nodes[path.A], nodes[path.B]
		a := tr.ToPixels(na.X, na.Y, width, height)
		b := tr.ToPixels(nb.X, nb.Y, width, height)

		color := e.Color
		if color == "" {
			color = na.Glow
		}
		if color == "" {
			color = "#aaccff"
		}

		for pulse := 0; pulse < pulses; pulse++ {
			// Whole circuits per loop keep frame 0 and virtual frame N identical.
			circuits := math.Max(1, math.Round(speed))
			t := fp.Progress*circuits + float64(pulse)/float64(pulses) + float64(i)*0.37
			t -= math.Floor(t)

			pt := render.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			// Bright core with a soft halo ring.
			if err := s.FillPolygon(pt, pulseRadius, 8, 0, color, intensity); err != nil {
				return errors.Wrapf(err, "pulse %d on path %d", pulse, i)
			}
			if err := s.DrawRing(pt, pulseRadius*2, pulseRadius, color, 0, intensity*0.35); err != nil {
				return errors.Wrapf(err, "pulse halo %d on path %d", pulse, i)
			}
		}
	}
	return nil
}
