package render

import "github.com/aubryn/sigilweave/param"

// Transform maps normalized [0,1] figure coordinates to surface pixels
// under uniform scale about the 0.5 center plus a center offset. No
// rotation and no per-axis scaling.
type Transform struct {
	Scale   float64
	CenterX float64
	CenterY float64
}

// TransformFromConfig reads the scale/center options resolved at config
// construction.
func TransformFromConfig(cfg *param.Config) Transform {
	return Transform{Scale: cfg.Scale(), CenterX: cfg.CenterX(), CenterY: cfg.CenterY()}
}

// ToPixels converts one normalized coordinate pair to pixel space.
func (t Transform) ToPixels(nx, ny float64, width, height int) Point {
	sx := 0.5 + (nx-0.5)*t.Scale
	sy := 0.5 + (ny-0.5)*t.Scale
	return Point{
		X: ((sx - 0.5) + t.CenterX) * float64(width),
		Y: ((sy - 0.5) + t.CenterY) * float64(height),
	}
}
