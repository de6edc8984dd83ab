package param

import (
	"github.com/aubryn/sigilweave/easing"
	"github.com/aubryn/sigilweave/phase"
)

// blendEasing weights every cross-phase blend. Smoothstep's derivative is
// zero at both zone ends, so the blended curve has no velocity jump at a
// boundary even when the two phases use unrelated easings. This is fixed
// and independent of the phases' configured curves.
const blendEasing = "smoothstep"

// FrameParams is one frame's fully resolved parameter set. It is recomputed
// from scratch every frame and owned by that frame's render call; nothing in
// it survives across frames.
type FrameParams struct {
	Progress   float64
	Phase      phase.Phase
	Local      float64
	Transition phase.TransitionInfo

	// Values maps lower-camel family names (nodeAlpha, pathIntensity, ...)
	// to their resolved scalars, merged over a copy of the raw config
	// options so static parameters pass through unchanged.
	Values map[string]float64
}

// NodeAlpha returns the resolved node opacity for this frame.
func (fp FrameParams) NodeAlpha() float64 { return fp.value("NodeAlpha") }

// PathIntensity returns the resolved path brightness for this frame.
func (fp FrameParams) PathIntensity() float64 { return fp.value("PathIntensity") }

// PathAnimSpeed returns the resolved path animation speed multiplier.
func (fp FrameParams) PathAnimSpeed() float64 { return fp.value("PathAnimSpeed") }

func (fp FrameParams) value(fam string) float64 {
	if v, ok := fp.Values[lowerFirst(fam)]; ok {
		return v
	}
	return builtinDefaults[fam]
}

// Synthesize resolves every animated family to a single scalar for the
// given progress. It is a pure function of (progress, cfg): no state is
// read or written anywhere else, which is what lets frames be computed in
// any order or in parallel.
func Synthesize(progress float64, cfg *Config) FrameParams {
	table := cfg.Table()
	current, local := table.Classify(progress)
	info := table.Detect(progress, cfg.TransitionWidth())

	fp := FrameParams{
		Progress:   progress,
		Phase:      current,
		Local:      local,
		Transition: info,
		Values:     make(map[string]float64, len(cfg.raw)+len(cfg.families)),
	}
	for key, v := range cfg.raw {
		fp.Values[key] = v
	}
	for fam := range cfg.families {
		fp.Values[lowerFirst(fam)] = synthesizeFamily(cfg, fam, current, local, info)
	}
	return fp
}

// synthesizeFamily evaluates one family's phase curve and, inside a blend
// zone, folds in the value the next phase would show at its own start.
func synthesizeFamily(cfg *Config, fam string, current phase.Phase, local float64, info phase.TransitionInfo) float64 {
	value := phaseValue(cfg, fam, current, local)
	if !info.InTransition || !info.HasNext {
		return value
	}
	next := phaseValue(cfg, fam, info.Next, 0)
	return easing.Lerp(value, next, info.Blend, blendEasing)
}

// phaseValue interpolates the family across the phase at the given local
// progress, using the phase's configured easing. A family with no entry for
// the phase degrades to its global default constant.
func phaseValue(cfg *Config, fam string, p phase.Phase, local float64) float64 {
	start, end, ok := cfg.Curve(p, fam)
	if !ok {
		return cfg.Default(fam)
	}
	return easing.Lerp(start, end, local, cfg.EasingName(p))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0]+'a'-'A') + s[1:]
	}
	return s
}
