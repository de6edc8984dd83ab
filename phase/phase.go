// Package phase maps loop progress onto the four-phase animation cycle:
// classification into a phase with local progress, and detection of the
// blend zones preceding phase boundaries.
package phase

import "github.com/cockroachdb/errors"

// Phase identifies one of the four ordered segments of the cycle.
type Phase uint8

const (
	Awakening Phase = iota
	Ascension
	Radiance
	Descent

	phaseCount = 4
)

var phaseNames = [phaseCount]string{"awakening", "ascension", "radiance", "descent"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Next returns the following phase. ok is false for Descent, which has no
// successor within a cycle.
func (p Phase) Next() (Phase, bool) {
	if p >= Descent {
		return Descent, false
	}
	return p + 1, true
}

// Phases lists the cycle in order.
func Phases() [phaseCount]Phase {
	return [phaseCount]Phase{Awakening, Ascension, Radiance, Descent}
}

// Boundary is one phase's half-open progress interval [Start, End).
type Boundary struct {
	Phase Phase
	Start float64
	End   float64
}

// Table holds the four phase start fractions. Awakening is pinned to 0;
// Descent's interval runs through progress 1.0 inclusive.
type Table struct {
	starts [phaseCount]float64
}

// Default boundary fractions.
const (
	DefaultAscensionStart = 0.20
	DefaultRadianceStart  = 0.60
	DefaultDescentStart   = 0.85
)

// DefaultTable returns the 0 / 0.20 / 0.60 / 0.85 boundary table.
func DefaultTable() Table {
	return Table{starts: [phaseCount]float64{0, DefaultAscensionStart, DefaultRadianceStart, DefaultDescentStart}}
}

// NewTable builds a boundary table from the three internal start fractions.
// Starts must be strictly increasing within (0,1); a violated ordering would
// make phase-local progress divide by zero downstream, so it is rejected
// here instead.
func NewTable(ascension, radiance, descent float64) (Table, error) {
	if !(0 < ascension && ascension < radiance && radiance < descent && descent < 1) {
		return Table{}, errors.Newf(
			"phase boundaries must satisfy 0 < ascension < radiance < descent < 1, got %v / %v / %v",
			ascension, radiance, descent)
	}
	return Table{starts: [phaseCount]float64{0, ascension, radiance, descent}}, nil
}

// Start returns the phase's start fraction.
func (t Table) Start(p Phase) float64 { return t.starts[p] }

// End returns the phase's exclusive upper bound; 1.0 for Descent.
func (t Table) End(p Phase) float64 {
	if p >= Descent {
		return 1
	}
	return t.starts[p+1]
}

// Span returns the width of the phase's interval.
func (t Table) Span(p Phase) float64 { return t.End(p) - t.Start(p) }

// Boundaries returns the four [start, end) intervals for reuse by the
// transition blender.
func (t Table) Boundaries() [phaseCount]Boundary {
	var out [phaseCount]Boundary
	for _, p := range Phases() {
		out[p] = Boundary{Phase: p, Start: t.Start(p), End: t.End(p)}
	}
	return out
}

// Classify resolves progress to its phase and phase-local progress.
// Selection walks the phases in order and picks the first whose upper bound
// exceeds progress; Descent is the catch-all, so progress 1.0 lands there.
// A zero-width interval yields local progress 0 rather than dividing by zero.
func (t Table) Classify(progress float64) (Phase, float64) {
	p := Descent
	for _, candidate := range Phases() {
		if candidate < Descent && progress < t.End(candidate) {
			p = candidate
			break
		}
	}
	span := t.Span(p)
	if span <= 0 {
		return p, 0
	}
	return p, (progress - t.Start(p)) / span
}
