package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/gridgraph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
// Vertex IDs are "r,c" as produced by gridgraph.NodeID, independent of the ID
// scheme. Edges run right then down from each cell in row-major order.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		id := func(r, c int) string { return gridgraph.NodeID(gridgraph.Coord{Row: r, Col: c}) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := g.AddNode(id(r, c), ""); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id(r, c), err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
