package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the fixed ID of the Star hub.
	CenterVertexID = "Center"
)

// Star returns a Constructor that builds a star with hub CenterVertexID and
// n-1 leaves named cfg.idFn(1..n-1), edges Center→leaf. Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if _, err := g.AddNode(CenterVertexID, ""); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if _, err := g.AddNode(leaf, ""); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodStar, leaf, err)
			}
			if err := addEdge(g, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
