package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/gridgraph"
)

const (
	methodMaze = "Maze"
	minMazeDim = 3
)

// Maze returns a rows×cols grid where each cell is a wall with probability
// density, start at (1,1) and end at (rows-2, cols-2). Start and end always
// override a wall drawn on their cell. With WithSolvableMaze the fewest walls
// needed to join start and end are cleared.
//
// Behavior:
//  1. Validate dimensions and density.
//  2. Draw walls in row-major order.
//  3. Place start and end.
//  4. Optionally carve a route.
//
// Returns ErrTooFewVertices when a dimension is below 3 or start and end
// would coincide, ErrInvalidProbability for density outside [0,1].
// Complexity: O(rows·cols).
func Maze(rows, cols int, density float64, seed int64, opts ...BuilderOption) (*gridgraph.Grid, error) {
	if rows < minMazeDim || cols < minMazeDim || (rows == minMazeDim && cols == minMazeDim) {
		return nil, fmt.Errorf("%s: %dx%d too small: %w", methodMaze, rows, cols, ErrTooFewVertices)
	}
	if density < probMin || density > probMax {
		return nil, fmt.Errorf("%s: density=%.3f not in [%.1f,%.1f]: %w",
			methodMaze, density, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	g, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMaze, err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				if err = g.SetWall(r, c, true); err != nil {
					return nil, fmt.Errorf("%s: %w", methodMaze, err)
				}
			}
		}
	}

	start := gridgraph.Coord{Row: 1, Col: 1}
	end := gridgraph.Coord{Row: rows - 2, Col: cols - 2}
	if err = g.SetStart(start.Row, start.Col); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMaze, err)
	}
	if err = g.SetEnd(end.Row, end.Col); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMaze, err)
	}

	if cfg.solvable && !g.Connected(start, end) {
		if _, _, err = g.Carve(start, end); err != nil {
			return nil, fmt.Errorf("%s: %w", methodMaze, err)
		}
	}

	return g, nil
}
