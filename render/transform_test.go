package render

import (
	"math"
	"testing"
)

func TestToPixels(t *testing.T) {
	tests := []struct {
		name         string
		tr           Transform
		nx, ny       float64
		w, h         int
		wantX, wantY float64
	}{
		{
			"identity corner",
			Transform{Scale: 1, CenterX: 0.5, CenterY: 0.5},
			0, 0, 1024, 1024, 0, 0,
		},
		{
			"identity center",
			Transform{Scale: 1, CenterX: 0.5, CenterY: 0.5},
			0.5, 0.5, 1024, 1024, 512, 512,
		},
		{
			"center offset shifts",
			Transform{Scale: 1, CenterX: 0.6, CenterY: 0.5},
			0, 0, 1024, 1024, 102.4, 0,
		},
		{
			"half scale pulls toward center",
			Transform{Scale: 0.5, CenterX: 0.5, CenterY: 0.5},
			0, 0, 1000, 1000, 250, 250,
		},
		{
			"non-square surface",
			Transform{Scale: 1, CenterX: 0.5, CenterY: 0.5},
			1, 1, 800, 600, 800, 600,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.tr.ToPixels(tt.nx, tt.ny, tt.w, tt.h)
			if math.Abs(p.X-tt.wantX) > 1e-9 || math.Abs(p.Y-tt.wantY) > 1e-9 {
				t.Errorf("ToPixels = (%v,%v), want (%v,%v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}
