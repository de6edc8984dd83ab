package phase

import (
	"math"
	"testing"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name         string
		frame, total int
		want         float64
	}{
		{"zero total", 5, 0, 0},
		{"single frame", 0, 1, 0},
		{"negative total", 3, -2, 0},
		{"first frame", 0, 100, 0},
		{"last frame exact", 99, 100, 1},
		{"ten frame loop last", 9, 10, 1},
		{"midpoint", 5, 11, 0.5},
		{"overshoot clamps", 200, 100, 1},
		{"negative frame clamps", -5, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.frame, tt.total); got != tt.want {
				t.Errorf("Progress(%d, %d) = %v, want %v", tt.frame, tt.total, got, tt.want)
			}
		})
	}
}

func TestProgressMonotonic(t *testing.T) {
	for _, total := range []int{2, 3, 10, 240, 1001} {
		prev := -1.0
		for frame := 0; frame < total; frame++ {
			p := Progress(frame, total)
			if p < prev {
				t.Fatalf("total=%d: progress decreased at frame %d: %v < %v", total, frame, p, prev)
			}
			prev = p
		}
	}
}

func TestClassifyDefaults(t *testing.T) {
	tab := DefaultTable()
	tests := []struct {
		name      string
		progress  float64
		wantPhase Phase
		wantLocal float64
	}{
		{"awakening start", 0, Awakening, 0},
		{"awakening midpoint", 0.10, Awakening, 0.50},
		{"ascension start boundary", 0.20, Ascension, 0},
		{"ascension interior", 0.40, Ascension, 0.50},
		{"radiance start boundary", 0.60, Radiance, 0},
		{"descent start boundary", 0.85, Descent, 0},
		{"descent end", 1.0, Descent, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, local := tab.Classify(tt.progress)
			if p != tt.wantPhase {
				t.Errorf("phase = %v, want %v", p, tt.wantPhase)
			}
			if math.Abs(local-tt.wantLocal) > 1e-12 {
				t.Errorf("local = %v, want %v", local, tt.wantLocal)
			}
		})
	}
}

func TestClassifyPartitionsUnitInterval(t *testing.T) {
	tables := []Table{DefaultTable()}
	if tab, err := NewTable(0.1, 0.5, 0.9); err == nil {
		tables = append(tables, tab)
	} else {
		t.Fatalf("NewTable: %v", err)
	}
	for _, tab := range tables {
		// Every progress lands in exactly one phase, and the phase sequence
		// is non-decreasing: no gaps, no overlaps.
		prev := Awakening
		for i := 0; i <= 10000; i++ {
			progress := float64(i) / 10000
			p, local := tab.Classify(progress)
			if p < prev {
				t.Fatalf("phase went backwards at progress %v: %v after %v", progress, p, prev)
			}
			if local < 0 || local > 1 {
				t.Fatalf("local progress %v out of range at progress %v", local, progress)
			}
			prev = p
		}
	}
}

func TestClassifyDegenerateSpan(t *testing.T) {
	// Hand-built zero-width Radiance interval; NewTable rejects this, but
	// classification still defines local progress 0 instead of dividing by
	// zero.
	tab := Table{starts: [4]float64{0, 0.5, 0.85, 0.85}}
	p, local := tab.Classify(0.85)
	if p != Descent || local != 0 {
		t.Errorf("Classify(0.85) = (%v, %v), want (descent, 0)", p, local)
	}
}

func TestNewTableRejectsBadBoundaries(t *testing.T) {
	bad := [][3]float64{
		{0, 0.5, 0.9},    // ascension at awakening start
		{0.5, 0.2, 0.9},  // out of order
		{0.2, 0.2, 0.9},  // duplicate
		{0.2, 0.5, 1.0},  // descent at loop end
		{-0.1, 0.5, 0.9}, // negative
	}
	for _, b := range bad {
		if _, err := NewTable(b[0], b[1], b[2]); err == nil {
			t.Errorf("NewTable(%v) accepted invalid boundaries", b)
		}
	}
}

func TestBoundaries(t *testing.T) {
	tab := DefaultTable()
	bounds := tab.Boundaries()
	want := [4][2]float64{{0, 0.20}, {0.20, 0.60}, {0.60, 0.85}, {0.85, 1}}
	for i, b := range bounds {
		if b.Start != want[i][0] || b.End != want[i][1] {
			t.Errorf("boundary %v = [%v,%v), want [%v,%v)", b.Phase, b.Start, b.End, want[i][0], want[i][1])
		}
	}
}

func TestDetect(t *testing.T) {
	tab := DefaultTable()
	tests := []struct {
		name     string
		progress float64
		width    float64
		want     TransitionInfo
	}{
		{
			"awakening to ascension zone",
			0.18, 0.05,
			TransitionInfo{InTransition: true, Blend: 0.6, Current: Awakening, Next: Ascension, HasNext: true},
		},
		{
			"boundary itself is outside the zone",
			0.20, 0.05,
			TransitionInfo{Current: Ascension},
		},
		{
			"radiance to descent zone",
			0.83, 0.05,
			TransitionInfo{InTransition: true, Blend: 0.6, Current: Radiance, Next: Descent, HasNext: true},
		},
		{
			"outside any zone",
			0.40, 0.05,
			TransitionInfo{Current: Ascension},
		},
		{
			"no zone after descent end",
			0.99, 0.05,
			TransitionInfo{Current: Descent},
		},
		{
			"zero width disables blending",
			0.18, 0,
			TransitionInfo{Current: Awakening},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tab.Detect(tt.progress, tt.width)
			if got.InTransition != tt.want.InTransition || got.Current != tt.want.Current ||
				got.HasNext != tt.want.HasNext || got.Next != tt.want.Next {
				t.Errorf("Detect = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.Blend-tt.want.Blend) > 1e-12 {
				t.Errorf("Blend = %v, want %v", got.Blend, tt.want.Blend)
			}
		})
	}
}

func TestDetectZoneStartInclusive(t *testing.T) {
	tab := DefaultTable()
	width := 0.05
	zoneStart := tab.Start(Ascension) - width
	info := tab.Detect(zoneStart, width)
	if !info.InTransition || info.Blend != 0 {
		t.Errorf("Detect at zone start = %+v, want in-zone with blend 0", info)
	}
	if info.Current != Awakening || info.Next != Ascension || !info.HasNext {
		t.Errorf("Detect at zone start = %+v, want awakening->ascension", info)
	}
}

func TestDetectBlendStaysBelowOne(t *testing.T) {
	tab := DefaultTable()
	zoneStart := tab.Start(Ascension) - 0.05
	for i := 0; i < 1000; i++ {
		progress := zoneStart + 0.05*float64(i)/1000
		info := tab.Detect(progress, 0.05)
		if !info.InTransition {
			t.Fatalf("progress %v should be in zone", progress)
		}
		if info.Blend < 0 || info.Blend >= 1 {
			t.Fatalf("blend %v out of [0,1) at progress %v", info.Blend, progress)
		}
	}
}

func TestPhaseNext(t *testing.T) {
	if n, ok := Awakening.Next(); !ok || n != Ascension {
		t.Errorf("Awakening.Next() = %v,%v", n, ok)
	}
	if _, ok := Descent.Next(); ok {
		t.Error("Descent should have no next phase")
	}
}
