package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodTree   = "Tree"
	minTreeNodes = 1
)

// Tree returns a Constructor that builds a complete binary tree on n
// vertices in heap layout: vertex i has children 2i+1 and 2i+2.
// Edges are emitted parent→child in ascending child index. Requires n ≥ 1.
// Complexity: O(n).
func Tree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodTree, n, minTreeNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodTree, n)
		if err != nil {
			return err
		}
		for child := 1; child < n; child++ {
			if err = addEdge(g, methodTree, ids[(child-1)/2], ids[child]); err != nil {
				return err
			}
		}

		return nil
	}
}
