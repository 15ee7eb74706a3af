// Package gridgraph models the 2D pathfinding grid: a rectangle of cells,
// each either open or a wall, with at most one start and one end.
//
// What:
//
//   - Grid owns a rows×cols matrix of *Cell and the start/end designations.
//   - Cells carry search state (G, H, Parent, Label) written by the
//     pathfinding engine; ResetSearch clears it, keeping walls/start/end.
//   - Neighbors is 4-directional in the fixed order up, down, left, right.
//   - Regions and Carve analyse and repair connectivity of open cells.
//   - ToGraph converts the open cells into an undirected *core.Graph so the
//     traversal engine can run on a grid.
//
// Layout:
//
//	Parse and String use one symbol per cell:
//	  '.' empty   '#' wall   'S' start   'E' end
//	String additionally renders search marks:
//	  '*' path    'o' visited   '@' exploring   '+' frontier
//
// Complexity:
//
//   - Neighbors:  O(1).
//   - Regions:    O(R×C), Memory: O(R×C).
//   - Carve:      O(R×C) on average (0-1 BFS), Memory: O(R×C).
//   - ToGraph:    O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or an empty layout.
//   - ErrNonRectangular: layout rows have differing lengths.
//   - ErrBadSymbol: layout contains an unknown symbol.
//   - ErrDuplicateStart / ErrDuplicateEnd: more than one 'S' or 'E'.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrNoPath: Carve found no route between two cells.
package gridgraph
