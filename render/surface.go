// Package render turns synthesized frame parameters into pixels: the
// drawing-surface contract, the normalized-to-pixel transform, and the
// per-frame pipeline that orchestrates node, path and overlay passes.
package render

// Point is a pixel-space coordinate.
type Point struct {
	X, Y float64
}

// Surface is the drawing contract the pipeline renders against. A frame is
// atomic: any draw error aborts the whole frame invocation, and the caller
// must discard the surface rather than composite a partial result.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// FillPolygon draws a filled regular polygon.
	FillPolygon(center Point, radius float64, sides int, rotation float64, colorHex string, alpha float64) error

	// DrawRing draws a circular ring of the given radius and stroke
	// thickness. Rotation only matters to surfaces that render partial
	// arcs; a full ring is rotation-invariant.
	DrawRing(center Point, radius, thickness float64, colorHex string, rotation, alpha float64) error

	// DrawLine draws a thick line from a to b. dashPhase shifts the dash
	// pattern along the line; secondaryHex colors the alternate dashes
	// (empty leaves gaps). intensity scales the stroke's opacity.
	DrawLine(a, b Point, thickness float64, colorHex string, dashPhase float64, secondaryHex string, intensity float64) error
}

// Compositor owns layer allocation and stacking. It is the host-side half
// of the surface boundary; the engine only draws.
type Compositor interface {
	Allocate(width, height int) (Surface, error)
	CompositeOver(dst, src Surface, opacity float64) error
}
