package render

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/aubryn/sigilweave/geometry"
	"github.com/aubryn/sigilweave/param"
)

func pipelineFixture(t *testing.T, s param.Settings) *Pipeline {
	t.Helper()
	cfg, err := param.NewConfig(s)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	p, err := NewPipeline(cfg, geometry.Triad())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

type emptyGeometry struct{ paths []geometry.Path }

func (e *emptyGeometry) Nodes() []geometry.Node { return nil }
func (e *emptyGeometry) Paths() []geometry.Path { return e.paths }

func TestNewPipelineFailsFastOnGeometry(t *testing.T) {
	cfg, err := param.NewConfig(param.Settings{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewPipeline(cfg, &emptyGeometry{})
	if !errors.Is(err, geometry.ErrNoNodes) {
		t.Errorf("err = %v, want ErrNoNodes", err)
	}
}

func TestRenderFrameProducesPixels(t *testing.T) {
	p := pipelineFixture(t, param.Settings{})
	s, err := NewRaster(96, 96)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Clear("#000000"); err != nil {
		t.Fatal(err)
	}
	if err := p.RenderFrame(s, 30, 120); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	lit := 0
	img := s.Image()
	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			px := img.RGBAAt(x, y)
			if px.R > 0 || px.G > 0 || px.B > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("frame rendered no pixels")
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	p := pipelineFixture(t, param.Settings{Values: map[string]float64{
		"awakeningNodeAlpha_start": 0.1,
		"awakeningNodeAlpha_end":   1.0,
	}})

	renderOnce := func() []byte {
		s, err := NewRaster(64, 64)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Clear("#000000"); err != nil {
			t.Fatal(err)
		}
		if err := p.RenderFrame(s, 7, 60); err != nil {
			t.Fatal(err)
		}
		return s.Image().Pix
	}

	if !bytes.Equal(renderOnce(), renderOnce()) {
		t.Fatal("identical (frame, total, config) produced different pixels")
	}
}

// failingSurface errors on the first path draw, after nodes succeed.
type failingSurface struct {
	*Raster
}

func (f *failingSurface) DrawLine(a, b Point, thickness float64, colorHex string, dashPhase float64, secondaryHex string, intensity float64) error {
	return errors.New("surface rejected draw")
}

func TestSurfaceFailurePropagates(t *testing.T) {
	p := pipelineFixture(t, param.Settings{})
	raster, err := NewRaster(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	err = p.RenderFrame(&failingSurface{Raster: raster}, 0, 10)
	if err == nil {
		t.Fatal("draw failure was swallowed")
	}
}

type countingOverlay struct {
	kind  OverlayKind
	calls int
}

func (c *countingOverlay) Kind() OverlayKind { return c.kind }
func (c *countingOverlay) Draw(s Surface, fp *param.FrameParams, geo geometry.Provider, tr Transform) error {
	c.calls++
	return nil
}

func TestOverlayGating(t *testing.T) {
	cfg, err := param.NewConfig(param.Settings{EnergyOverlay: true})
	if err != nil {
		t.Fatal(err)
	}
	energy := &countingOverlay{kind: OverlayEnergy}
	symbol := &countingOverlay{kind: OverlaySymbol}
	p, err := NewPipeline(cfg, geometry.Triad(), energy, symbol)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := NewRaster(32, 32)
	if err := p.RenderFrame(s, 0, 10); err != nil {
		t.Fatal(err)
	}
	if energy.calls != 1 {
		t.Errorf("energy overlay calls = %d, want 1", energy.calls)
	}
	// Symbol overlay registered but disabled by config.
	if symbol.calls != 0 {
		t.Errorf("symbol overlay calls = %d, want 0", symbol.calls)
	}
}

func TestDuplicateOverlayRejected(t *testing.T) {
	cfg, err := param.NewConfig(param.Settings{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewPipeline(cfg, geometry.Triad(),
		&countingOverlay{kind: OverlayEnergy},
		&countingOverlay{kind: OverlayEnergy})
	if err == nil {
		t.Fatal("duplicate overlay kind accepted")
	}
}

func TestRenderSequenceLoopSeam(t *testing.T) {
	p := pipelineFixture(t, param.Settings{Values: map[string]float64{
		"awakeningNodeAlpha_start": 0.0,
		"awakeningNodeAlpha_end":   1.0,
		"descentNodeAlpha_start":   1.0,
		"descentNodeAlpha_end":     0.0,
	}})
	frames, err := RenderSequence(p, 48, 48, 12, "", nil)
	if err != nil {
		t.Fatalf("RenderSequence: %v", err)
	}
	if len(frames) != 12 {
		t.Fatalf("frame count = %d", len(frames))
	}
	// The last frame is virtual progress 1.0 (alpha 0 here) and the first
	// is progress 0 (also alpha 0): the wrap shows no seam.
	if !bytes.Equal(frames[0].Pix, frames[len(frames)-1].Pix) {
		t.Error("loop endpoints differ; seam would be visible")
	}
}

func TestEncodeGIF(t *testing.T) {
	p := pipelineFixture(t, param.Settings{})
	frames, err := RenderSequence(p, 32, 32, 4, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 4); err != nil {
		t.Fatalf("EncodeGIF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty gif output")
	}
}
