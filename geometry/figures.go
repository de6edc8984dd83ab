package geometry

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Figure is a static built-in geometry table.
type Figure struct {
	name  string
	nodes []Node
	paths []Path
}

func (f *Figure) Name() string  { return f.name }
func (f *Figure) Nodes() []Node { return f.nodes }
func (f *Figure) Paths() []Path { return f.paths }

// Sigilweave is the nine-node figure: a central core with an eight-point
// ring, outer ring edges woven with skip-two chords through alternate
// points, every ring node tied back to the core.
func Sigilweave() *Figure {
	nodes := []Node{{
		ID: "core", Name: "Core", X: 0.5, Y: 0.5,
		Color: "#f5e6c8", Glow: "#ffd27f",
	}}
	ringColors := [8]string{
		"#9fd8ff", "#b8a7ff", "#ffa7d8", "#ff9f9f",
		"#ffd49f", "#f0ff9f", "#a7ffb8", "#9ffff0",
	}
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		nodes = append(nodes, Node{
			ID:    "ring" + string(rune('1'+i)),
			Name:  "Ring " + string(rune('1'+i)),
			X:     0.5 + 0.38*math.Cos(angle),
			Y:     0.5 + 0.38*math.Sin(angle),
			Color: ringColors[i],
			Glow:  "#8fb8e8",
		})
	}

	var paths []Path
	for i := 1; i <= 8; i++ {
		// Spoke to the core.
		paths = append(paths, Path{A: 0, B: i})
		// Outer ring edge.
		paths = append(paths, Path{A: i, B: i%8 + 1})
	}
	// Woven chords: skip-two connections through alternate ring points.
	for i := 1; i <= 8; i += 2 {
		paths = append(paths, Path{A: i, B: (i+1)%8 + 1})
	}
	return &Figure{name: "sigilweave", nodes: nodes, paths: paths}
}

// Triad is the minimal three-point figure with an inner core, used by the
// lighter presets and as the small fixture in tests.
func Triad() *Figure {
	nodes := []Node{
		{ID: "core", Name: "Core", X: 0.5, Y: 0.5, Color: "#f5e6c8", Glow: "#ffd27f"},
		{ID: "apex", Name: "Apex", X: 0.5, Y: 0.12, Color: "#9fd8ff", Glow: "#8fb8e8"},
		{ID: "west", Name: "West", X: 0.17, Y: 0.69, Color: "#ffa7d8", Glow: "#8fb8e8"},
		{ID: "east", Name: "East", X: 0.83, Y: 0.69, Color: "#a7ffb8", Glow: "#8fb8e8"},
	}
	paths := []Path{
		{A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 1},
		{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 3},
	}
	return &Figure{name: "triad", nodes: nodes, paths: paths}
}

// ByName resolves a built-in figure.
func ByName(name string) (*Figure, error) {
	switch name {
	case "sigilweave":
		return Sigilweave(), nil
	case "triad":
		return Triad(), nil
	}
	return nil, errors.Newf("unknown figure %q (have: sigilweave, triad)", name)
}

// FigureNames lists the built-in figures.
func FigureNames() []string { return []string{"sigilweave", "triad"} }
