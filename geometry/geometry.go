// Package geometry defines the figure contract consumed by the render
// pipeline: node positions in normalized coordinates and the path draw list
// connecting them.
package geometry

import "github.com/cockroachdb/errors"

// Node is one figure vertex in normalized [0,1] coordinates. Read-only to
// the engine.
type Node struct {
	ID   string
	Name string
	X, Y float64
	// Color and Glow are hex colors ("#rrggbb"); empty means the renderer's
	// defaults apply.
	Color string
	Glow  string
	Meta  map[string]string
}

// Path connects two nodes by index. Drawing treats it as undirected; the
// sequence order only matters to overlay effects that travel along paths.
type Path struct {
	A, B int
}

// Provider supplies a concrete figure. Each figure variant implements it;
// the engine never owns geometry.
type Provider interface {
	Nodes() []Node
	Paths() []Path
}

// Contract violations. A figure that supplies no geometry fails fast rather
// than silently rendering nothing.
var (
	ErrNoNodes = errors.New("geometry provider supplies no node positions")
	ErrNoPaths = errors.New("geometry provider supplies no path connections")
)

// Validate checks the provider contract: at least one node, at least one
// path, and every path endpoint in range.
func Validate(p Provider) error {
	nodes := p.Nodes()
	if len(nodes) == 0 {
		return ErrNoNodes
	}
	paths := p.Paths()
	if len(paths) == 0 {
		return ErrNoPaths
	}
	for i, path := range paths {
		if path.A < 0 || path.A >= len(nodes) || path.B < 0 || path.B >= len(nodes) {
			return errors.Newf("path %d connects (%d,%d) but figure has %d nodes", i, path.A, path.B, len(nodes))
		}
	}
	return nil
}
