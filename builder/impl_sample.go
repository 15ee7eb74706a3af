package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const methodSample = "Sample"

// sampleIDs and sampleEdges describe the six-node demo graph.
var (
	sampleIDs   = []string{"A", "B", "C", "D", "E", "F"}
	sampleEdges = [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
		{"C", "E"}, {"D", "E"}, {"D", "F"}, {"E", "F"},
	}
)

// Sample returns a Constructor for the six-node demo graph A..F with eight
// edges. On a directed graph an extra F→A edge closes a cycle, so
// topological sorts of the directed sample report the cycle.
// IDs are fixed and ignore the ID scheme.
func Sample() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, id := range sampleIDs {
			if _, err := g.AddNode(id, ""); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodSample, id, err)
			}
		}
		for _, e := range sampleEdges {
			if err := addEdge(g, methodSample, e[0], e[1]); err != nil {
				return err
			}
		}
		if g.Directed() {
			return addEdge(g, methodSample, "F", "A")
		}

		return nil
	}
}
