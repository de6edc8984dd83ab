// Package param holds the immutable animation configuration and the
// per-frame parameter synthesizer.
package param

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/aubryn/sigilweave/phase"
)

// DefaultTransitionWidth is the blend-zone width before each internal
// phase boundary, as a fraction of total progress.
const DefaultTransitionWidth = 0.05

// Built-in global defaults for the core animated families. Families the
// config never mentions resolve to 0.
var builtinDefaults = map[string]float64{
	"NodeAlpha":     1.0,
	"PathIntensity": 0.8,
	"PathAnimSpeed": 1.0,
}

const (
	startSuffix = "_start"
	endSuffix   = "_end"
	defaultKey  = "default"
)

// Settings is the flat, author-facing option surface. Zero values mean
// "use the default". Unrecognized Values keys pass through untouched.
type Settings struct {
	AscensionStart  float64 `toml:"ascension_start"`
	RadianceStart   float64 `toml:"radiance_start"`
	DescentStart    float64 `toml:"descent_start"`
	TransitionWidth float64 `toml:"transition_width"`

	// Easings maps a phase name (awakening, ascension, radiance, descent)
	// to an easing curve name.
	Easings map[string]string `toml:"easings"`

	// Values carries the animated parameter families using the
	// {phase}{Family} / {phase}{Family}_start / {phase}{Family}_end key
	// convention, plus default{Family} globals and arbitrary static options.
	Values map[string]float64 `toml:"values"`

	Scale   float64 `toml:"scale"`
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`

	EnergyOverlay bool `toml:"energy_overlay"`
	SymbolOverlay bool `toml:"symbol_overlay"`
}

// curve is one family's resolved interpolation range within a phase.
type curve struct {
	start, end float64
	configured bool
}

// Config is the fully resolved, immutable animation configuration. All
// defaulting happens once in NewConfig; accessors never re-derive it.
type Config struct {
	table    phase.Table
	width    float64
	easings  [4]string
	families map[string][4]curve
	defaults map[string]float64
	raw      map[string]float64

	scale            float64
	centerX, centerY float64
	energy, symbol   bool
}

// NewConfig resolves defaults and validates the settings. It rejects
// non-increasing phase boundaries and a transition width that reaches into
// any phase's own span (overlapping zones would make blend weights
// ambiguous).
func NewConfig(s Settings) (*Config, error) {
	asc, rad, desc := s.AscensionStart, s.RadianceStart, s.DescentStart
	if asc == 0 {
		asc = phase.DefaultAscensionStart
	}
	if rad == 0 {
		rad = phase.DefaultRadianceStart
	}
	if desc == 0 {
		desc = phase.DefaultDescentStart
	}
	table, err := phase.NewTable(asc, rad, desc)
	if err != nil {
		return nil, err
	}

	width := s.TransitionWidth
	if width == 0 {
		width = DefaultTransitionWidth
	}
	if width < 0 {
		return nil, errors.Newf("transition width must be non-negative, got %v", width)
	}
	for _, p := range phase.Phases() {
		if span := table.Span(p); width >= span {
			return nil, errors.Newf(
				"transition width %v reaches across the %s phase (span %v); zones would overlap",
				width, p, span)
		}
	}

	cfg := &Config{
		table:    table,
		width:    width,
		families: make(map[string][4]curve),
		defaults: make(map[string]float64, len(builtinDefaults)),
		raw:      make(map[string]float64, len(s.Values)),
		scale:    s.Scale,
		centerX:  s.CenterX,
		centerY:  s.CenterY,
		energy:   s.EnergyOverlay,
		symbol:   s.SymbolOverlay,
	}
	if cfg.scale == 0 {
		cfg.scale = 1
	}
	if cfg.centerX == 0 {
		cfg.centerX = 0.5
	}
	if cfg.centerY == 0 {
		cfg.centerY = 0.5
	}

	for _, p := range phase.Phases() {
		name := s.Easings[p.String()]
		if name == "" {
			name = "linear"
		}
		// Unknown names are kept; evaluation silently falls back to linear.
		cfg.easings[p] = name
	}

	for fam, def := range builtinDefaults {
		cfg.defaults[fam] = def
	}
	for key, v := range s.Values {
		cfg.raw[key] = v
		if fam, ok := strings.CutPrefix(key, defaultKey); ok && isFamilyName(fam) {
			cfg.defaults[fam] = v
		}
	}

	for fam := range builtinDefaults {
		cfg.resolveFamily(fam)
	}
	for key := range s.Values {
		if _, fam, ok := splitFamilyKey(key); ok {
			if _, seen := cfg.families[fam]; !seen {
				cfg.resolveFamily(fam)
			}
		}
	}

	return cfg, nil
}

// resolveFamily materializes one family's per-phase interpolation ranges,
// applying the base → start/end fallback chain once.
func (c *Config) resolveFamily(fam string) {
	var curves [4]curve
	for _, p := range phase.Phases() {
		prefix := p.String() + fam
		base, hasBase := c.raw[prefix]
		start, hasStart := c.raw[prefix+startSuffix]
		end, hasEnd := c.raw[prefix+endSuffix]
		if !hasBase && !hasStart && !hasEnd {
			continue
		}
		if !hasBase {
			base = c.Default(fam)
		}
		if !hasStart {
			start = base
		}
		if !hasEnd {
			end = base
		}
		curves[p] = curve{start: start, end: end, configured: true}
	}
	c.families[fam] = curves
}

// splitFamilyKey parses a {phase}{Family}[_start|_end] key. The family
// segment must begin with an uppercase letter; anything else is a static
// option, not an animated family.
func splitFamilyKey(key string) (phase.Phase, string, bool) {
	for _, p := range phase.Phases() {
		rest, ok := strings.CutPrefix(key, p.String())
		if !ok || !isFamilyName(rest) {
			continue
		}
		rest = strings.TrimSuffix(strings.TrimSuffix(rest, startSuffix), endSuffix)
		return p, rest, true
	}
	return 0, "", false
}

func isFamilyName(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// Table returns the phase boundary table.
func (c *Config) Table() phase.Table { return c.table }

// TransitionWidth returns the blend-zone width.
func (c *Config) TransitionWidth() float64 { return c.width }

// EasingName returns the phase's configured easing curve name.
func (c *Config) EasingName(p phase.Phase) string { return c.easings[p] }

// Curve returns the family's interpolation range in the given phase.
// ok is false when the family has no entry for that phase.
func (c *Config) Curve(p phase.Phase, fam string) (start, end float64, ok bool) {
	curves, exists := c.families[fam]
	if !exists || !curves[p].configured {
		return 0, 0, false
	}
	return curves[p].start, curves[p].end, true
}

// Default returns the family's global fallback value.
func (c *Config) Default(fam string) float64 { return c.defaults[fam] }

// Families returns all animated family names in sorted order.
func (c *Config) Families() []string {
	out := make([]string, 0, len(c.families))
	for fam := range c.families {
		out = append(out, fam)
	}
	sort.Strings(out)
	return out
}

// Value returns a raw option by key, for static passthrough parameters.
func (c *Config) Value(key string) (float64, bool) {
	v, ok := c.raw[key]
	return v, ok
}

func (c *Config) Scale() float64      { return c.scale }
func (c *Config) CenterX() float64    { return c.centerX }
func (c *Config) CenterY() float64    { return c.centerY }
func (c *Config) EnergyOverlay() bool { return c.energy }
func (c *Config) SymbolOverlay() bool { return c.symbol }
