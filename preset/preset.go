// Package preset ships the built-in animation configurations and loads
// author-supplied ones from TOML files. Presets are authoring-time data:
// everything here runs before engine construction, so the per-frame path
// stays deterministic.
package preset

import (
	"math/rand"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/aubryn/sigilweave/easing"
	"github.com/aubryn/sigilweave/param"
	"github.com/aubryn/sigilweave/phase"
)

var builtins = map[string]func() param.Settings{
	"classic":    Classic,
	"emberveil":  Emberveil,
	"stillwater": Stillwater,
}

// Names lists the built-in presets in sorted order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Get returns a built-in preset by name.
func Get(name string) (param.Settings, error) {
	f, ok := builtins[name]
	if !ok {
		return param.Settings{}, errors.Newf("unknown preset %q (have: %v)", name, Names())
	}
	return f(), nil
}

// LoadFile decodes a preset from a TOML file.
func LoadFile(path string) (param.Settings, error) {
	var s param.Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return param.Settings{}, errors.Wrapf(err, "load preset %s", path)
	}
	return s, nil
}

// RandomizeEasings overwrites each phase's easing with a random pick from
// the registered curves. This is a one-time authoring convenience; call it
// before param.NewConfig, never during rendering.
func RandomizeEasings(s *param.Settings, rng *rand.Rand) {
	names := easing.Names()
	if s.Easings == nil {
		s.Easings = make(map[string]string, 4)
	}
	for _, p := range phase.Phases() {
		s.Easings[p.String()] = names[rng.Intn(len(names))]
	}
}

// Classic is the reference configuration: gentle fade-in, sustained
// radiance, symmetric fade-out, every overlay on.
func Classic() param.Settings {
	return param.Settings{
		Easings: map[string]string{
			"awakening": "easeOutCubic",
			"ascension": "easeInOutCubic",
			"radiance":  "smoothstep",
			"descent":   "easeInQuart",
		},
		Values: map[string]float64{
			"awakeningNodeAlpha_start": 0.0,
			"awakeningNodeAlpha_end":   0.55,
			"ascensionNodeAlpha_start": 0.55,
			"ascensionNodeAlpha_end":   1.0,
			"radianceNodeAlpha":        1.0,
			"descentNodeAlpha_start":   1.0,
			"descentNodeAlpha_end":     0.0,

			"awakeningPathIntensity_start": 0.0,
			"awakeningPathIntensity_end":   0.3,
			"ascensionPathIntensity_start": 0.3,
			"ascensionPathIntensity_end":   0.85,
			"radiancePathIntensity":        0.9,
			"descentPathIntensity_start":   0.9,
			"descentPathIntensity_end":     0.0,

			"awakeningPathAnimSpeed": 1.0,
			"ascensionPathAnimSpeed": 2.0,
			"radiancePathAnimSpeed":  3.0,
			"descentPathAnimSpeed":   1.0,
		},
		EnergyOverlay: true,
		SymbolOverlay: true,
	}
}

// Emberveil runs hotter: elastic ascension, overshooting glow, faster
// pulses, no symbol ring.
func Emberveil() param.Settings {
	return param.Settings{
		AscensionStart: 0.15,
		RadianceStart:  0.55,
		DescentStart:   0.82,
		Easings: map[string]string{
			"awakening": "easeInExpo",
			"ascension": "easeInOutElastic",
			"radiance":  "easeInOutBack",
			"descent":   "easeOutExpo",
		},
		Values: map[string]float64{
			"awakeningNodeAlpha_start": 0.0,
			"awakeningNodeAlpha_end":   0.7,
			"ascensionNodeAlpha_start": 0.7,
			"ascensionNodeAlpha_end":   1.0,
			"radianceNodeAlpha":        1.0,
			"descentNodeAlpha_start":   1.0,
			"descentNodeAlpha_end":     0.0,

			"radiancePathIntensity": 1.0,
			"defaultPathIntensity":  0.5,

			"radiancePathAnimSpeed": 4.0,
			"defaultPathAnimSpeed":  2.0,
		},
		EnergyOverlay: true,
	}
}

// Stillwater is slow and sparse: long radiance, no overlays, reduced
// figure scale.
func Stillwater() param.Settings {
	return param.Settings{
		AscensionStart: 0.25,
		RadianceStart:  0.45,
		DescentStart:   0.90,
		Scale:          0.8,
		Easings: map[string]string{
			"awakening": "smoothstep",
			"ascension": "smoothstep",
			"radiance":  "linear",
			"descent":   "smoothstep",
		},
		Values: map[string]float64{
			"awakeningNodeAlpha_start": 0.0,
			"awakeningNodeAlpha_end":   0.8,
			"ascensionNodeAlpha_start": 0.8,
			"ascensionNodeAlpha_end":   1.0,
			"radianceNodeAlpha":        1.0,
			"descentNodeAlpha_start":   1.0,
			"descentNodeAlpha_end":     0.0,

			"defaultPathIntensity": 0.45,
			"defaultPathAnimSpeed": 0.5,
		},
	}
}
