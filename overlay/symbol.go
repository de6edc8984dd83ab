package overlay

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/aubryn/sigilweave/geometry"
	"github.com/aubryn/sigilweave/param"
	"github.com/aubryn/sigilweave/render"
)

// Symbol draws a rotating ring of small glyph markers around the figure
// center. Rotation completes one full turn per loop; marker alpha follows
// the synthesized nodeAlpha so the ring breathes with the phases.
type Symbol struct {
	// Markers around the ring; 0 means six.
	Markers int
	// RadiusFrac is the ring radius as a fraction of the min surface
	// dimension; 0 means 0.44.
	RadiusFrac float64
	// Color of the markers and ring; empty uses a pale gold.
	Color string
}

func (s *Symbol) Kind() render.OverlayKind { return render.OverlaySymbol }

func (s *Symbol) Draw(surface render.Surface, fp *param.FrameParams, geo geometry.Provider, tr render.Transform) error {
	width, height := surface.Size()
	minDim := float64(min(width, height))

	markers := s.Markers
	if markers < 1 {
		markers = 6
	}
	radiusFrac := s.RadiusFrac
	if radiusFrac == 0 {
		radiusFrac = 0.44
	}
	color := s.Color
	if color == "" {
		color = "#e8d8a0"
	}

	alpha := fp.NodeAlpha() * 0.7
	if alpha <= 0 {
		return nil
	}

	center := tr.ToPixels(0.5, 0.5, width, height)
	ringRadius := minDim * radiusFrac
	markerRadius := minDim * 0.012

	// Faint carrier ring under the markers.
	if err := surface.DrawRing(center, ringRadius, 1.5, color, 0, alpha*0.3); err != nil {
		return errors.Wrap(err, "symbol carrier ring")
	}

	// One full revolution per loop: progress 0 and 1 coincide.
	rotation := fp.Progress * 2 * math.Pi
	for i := 0; i < markers; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(markers)
		pt := render.Point{
			X: center.X + ringRadius*math.Cos(angle),
			Y: center.Y + ringRadius*math.Sin(angle),
		}
		// Triangular glyphs, each pointing outward.
		if err := surface.FillPolygon(pt, markerRadius, 3, angle, color, alpha); err != nil {
			return errors.Wrapf(err, "symbol marker %d", i)
		}
	}
	return nil
}
