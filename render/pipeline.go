package render

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/aubryn/sigilweave/geometry"
	"github.com/aubryn/sigilweave/param"
	"github.com/aubryn/sigilweave/phase"
)

// OverlayKind tags the overlay extension points the pipeline can invoke.
type OverlayKind uint8

const (
	OverlayEnergy OverlayKind = iota
	OverlaySymbol
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayEnergy:
		return "energy"
	case OverlaySymbol:
		return "symbol"
	}
	return "unknown"
}

// Overlay is the extension point for the energy-pulse and symbol
// sub-renderers. The base pipeline ships none; a frame simply skips kinds
// that are unregistered or disabled by config.
type Overlay interface {
	Kind() OverlayKind
	Draw(s Surface, fp *param.FrameParams, geo geometry.Provider, tr Transform) error
}

// Default visual constants, overridable through static config values.
const (
	defaultNodeRadiusFrac = 0.016 // node radius as fraction of min surface dimension
	defaultGlowScale      = 1.9   // glow ring radius relative to node radius
	defaultLineThickness  = 2.0
	defaultNodeSides      = 6
	defaultNodeColor      = "#d8e8ff"
	defaultGlowColor      = "#7f9fd8"
	defaultPathColor      = "#8fb8e8"
)

// Pipeline renders one frame at a time. It holds only immutable state
// (config, geometry, overlay table); every frame is computed from scratch,
// so concurrent RenderFrame calls against distinct surfaces are safe.
type Pipeline struct {
	cfg      *param.Config
	geo      geometry.Provider
	tr       Transform
	overlays map[OverlayKind]Overlay
}

// NewPipeline validates the geometry contract up front and fails fast on a
// figure that supplies no nodes or paths.
func NewPipeline(cfg *param.Config, geo geometry.Provider, overlays ...Overlay) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if geo == nil {
		return nil, errors.New("nil geometry provider")
	}
	if err := geometry.Validate(geo); err != nil {
		return nil, err
	}
	table := make(map[OverlayKind]Overlay, len(overlays))
	for _, o := range overlays {
		if _, dup := table[o.Kind()]; dup {
			return nil, errors.Newf("duplicate overlay for kind %s", o.Kind())
		}
		table[o.Kind()] = o
	}
	return &Pipeline{
		cfg:      cfg,
		geo:      geo,
		tr:       TransformFromConfig(cfg),
		overlays: table,
	}, nil
}

// Config returns the pipeline's immutable configuration.
func (p *Pipeline) Config() *param.Config { return p.cfg }

// Params synthesizes the resolved parameter set for a frame without
// drawing. Used by inspection tooling and the overlay renderers' tests.
func (p *Pipeline) Params(frameIndex, totalFrames int) param.FrameParams {
	return param.Synthesize(phase.Progress(frameIndex, totalFrames), p.cfg)
}

// RenderFrame draws one complete frame onto the surface: nodes, then paths,
// then enabled overlays. Any draw failure aborts the frame; the surface
// contents are then undefined and must not be composited.
func (p *Pipeline) RenderFrame(s Surface, frameIndex, totalFrames int) error {
	fp := p.Params(frameIndex, totalFrames)

	if err := p.drawNodes(s, &fp); err != nil {
		return errors.Wrapf(err, "frame %d: nodes", frameIndex)
	}
	if err := p.drawPaths(s, &fp); err != nil {
		return errors.Wrapf(err, "frame %d: paths", frameIndex)
	}

	if p.cfg.EnergyOverlay() {
		if o, ok := p.overlays[OverlayEnergy]; ok {
			if err := o.Draw(s, &fp, p.geo, p.tr); err != nil {
				return errors.Wrapf(err, "frame %d: energy overlay", frameIndex)
			}
		}
	}
	if p.cfg.SymbolOverlay() {
		if o, ok := p.overlays[OverlaySymbol]; ok {
			if err := o.Draw(s, &fp, p.geo, p.tr); err != nil {
				return errors.Wrapf(err, "frame %d: symbol overlay", frameIndex)
			}
		}
	}
	return nil
}

func (p *Pipeline) drawNodes(s Surface, fp *param.FrameParams) error {
	width, height := s.Size()
	minDim := float64(min(width, height))

	radius := p.staticValue(fp, "nodeRadius", defaultNodeRadiusFrac) * minDim
	glowScale := p.staticValue(fp, "nodeGlowScale", defaultGlowScale)
	sides := int(p.staticValue(fp, "nodeSides", defaultNodeSides))
	alpha := fp.NodeAlpha()
	// Slow spin over the loop keeps polygon facets from reading as static.
	rotation := fp.Progress * 2 * math.Pi

	for i, node := range p.geo.Nodes() {
		pt := p.tr.ToPixels(node.X, node.Y, width, height)
		body := node.Color
		if body == "" {
			body = defaultNodeColor
		}
		glow := node.Glow
		if glow == "" {
			glow = defaultGlowColor
		}
		if err := s.FillPolygon(pt, radius, sides, rotation, body, alpha); err != nil {
			return errors.Wrapf(err, "node %d (%s)", i, node.ID)
		}
		if err := s.DrawRing(pt, radius*glowScale, radius*0.5, glow, rotation, alpha*0.55); err != nil {
			return errors.Wrapf(err, "node %d (%s) glow", i, node.ID)
		}
	}
	return nil
}

func (p *Pipeline) drawPaths(s Surface, fp *param.FrameParams) error {
	width, height := s.Size()
	nodes := p.geo.Nodes()
	thickness := p.staticValue(fp, "pathThickness", defaultLineThickness)
	intensity := fp.PathIntensity()
	speed := fp.PathAnimSpeed()

	for i, path := range p.geo.Paths() {
		na, nb := nodes[path.A], nodes[path.B]
		a := p.tr.ToPixels(na.X, na.Y, width, height)
		b := p.tr.ToPixels(nb.X, nb.Y, width, height)
		primary := na.Color
		if primary == "" {
			primary = defaultPathColor
		}
		secondary := nb.Color
		// Stagger per-path so dashes do not march in lockstep.
		dashPhase := fp.Progress*speed + float64(i)*0.13
		if err := s.DrawLine(a, b, thickness, primary, dashPhase, secondary, intensity); err != nil {
			return errors.Wrapf(err, "path %d (%d-%d)", i, path.A, path.B)
		}
	}
	return nil
}

// staticValue reads a passthrough option with a fallback default.
func (p *Pipeline) staticValue(fp *param.FrameParams, key string, def float64) float64 {
	if v, ok := fp.Values[key]; ok {
		return v
	}
	return def
}
