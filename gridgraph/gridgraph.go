package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/core"
)

// neighborOffsets is the 4-directional visiting order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rows×cols matrix of cells with optional start and end.
// Cells are exclusively owned by the grid.
type Grid struct {
	rows, cols int
	cells      [][]*Cell
	start, end Coord
}

// NewGrid builds an all-empty grid. Returns ErrEmptyGrid if either
// dimension is non-positive.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrEmptyGrid)
	}
	g := &Grid{rows: rows, cols: cols, start: NoCoord, end: NoCoord}
	g.cells = make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = newCell(r, c)
		}
	}

	return g, nil
}

// Parse builds a grid from an ASCII layout, one string per row, using
// '.' empty, '#' wall, 'S' start and 'E' end.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol,
// ErrDuplicateStart or ErrDuplicateEnd.
func Parse(layout []string) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(layout[0])
	for i, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}
	g, err := NewGrid(len(layout), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range layout {
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '.':
			case '#':
				g.cells[r][c].Type = Wall
			case 'S':
				if g.start != NoCoord {
					return nil, fmt.Errorf("at (%d,%d): %w", r, c, ErrDuplicateStart)
				}
				g.start = Coord{r, c}
				g.cells[r][c].Type = Start
			case 'E':
				if g.end != NoCoord {
					return nil, fmt.Errorf("at (%d,%d): %w", r, c, ErrDuplicateEnd)
				}
				g.end = Coord{r, c}
				g.cells[r][c].Type = End
			default:
				return nil, fmt.Errorf("%q at (%d,%d): %w", row[c], r, c, ErrBadSymbol)
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Cell returns the cell at (r,c) and whether it exists.
func (g *Grid) Cell(r, c int) (*Cell, bool) {
	if !g.InBounds(r, c) {
		return nil, false
	}
	return g.cells[r][c], true
}

// At returns the cell at p, or nil when p is out of bounds.
func (g *Grid) At(p Coord) *Cell {
	cell, _ := g.Cell(p.Row, p.Col)
	return cell
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.rows*g.cols)
	for _, row := range g.cells {
		out = append(out, row...)
	}

	return out
}

// Start returns the start cell, or nil when unset.
func (g *Grid) Start() *Cell { return g.At(g.start) }

// End returns the end cell, or nil when unset.
func (g *Grid) End() *Cell { return g.At(g.end) }

// SetStart moves the start to (r,c). The previous start reverts to Empty;
// if (r,c) was the end, the end becomes unset.
func (g *Grid) SetStart(r, c int) error {
	return g.designate(r, c, Start, &g.start, &g.end)
}

// SetEnd moves the end to (r,c). The previous end reverts to Empty;
// if (r,c) was the start, the start becomes unset.
func (g *Grid) SetEnd(r, c int) error {
	return g.designate(r, c, End, &g.end, &g.start)
}

func (g *Grid) designate(r, c int, t CellType, self, other *Coord) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", r, c, g.rows, g.cols, ErrOutOfBounds)
	}
	if prev := g.At(*self); prev != nil {
		prev.Type = Empty
	}
	p := Coord{r, c}
	if *other == p {
		*other = NoCoord
	}
	*self = p
	g.cells[r][c].Type = t

	return nil
}

// SetWall makes (r,c) a wall or clears it. Start and end are never overwritten.
func (g *Grid) SetWall(r, c int, wall bool) error {
	cell, ok := g.Cell(r, c)
	if !ok {
		return fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfBounds)
	}
	switch {
	case cell.Type == Start || cell.Type == End:
	case wall:
		cell.Type = Wall
	case cell.Type == Wall:
		cell.Type = Empty
	}

	return nil
}

// ToggleWall flips (r,c) between wall and empty. Start and end are never overwritten.
func (g *Grid) ToggleWall(r, c int) error {
	cell, ok := g.Cell(r, c)
	if !ok {
		return fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfBounds)
	}
	return g.SetWall(r, c, cell.Type != Wall)
}

// Neighbors returns the in-bounds cells adjacent to cell in the order up,
// down, left, right. Walls are included; callers filter on Walkable.
// Complexity: O(1).
func (g *Grid) Neighbors(cell *Cell) []*Cell {
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if n, ok := g.Cell(cell.row+d[0], cell.col+d[1]); ok {
			out = append(out, n)
		}
	}

	return out
}

// ResetSearch clears search marks and costs on every cell, keeping walls,
// start and end.
func (g *Grid) ResetSearch() {
	for _, row := range g.cells {
		for _, cell := range row {
			cell.resetSearch()
		}
	}
}

// Clear makes every cell empty and unsets start and end.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for _, cell := range row {
			cell.Type = Empty
			cell.resetSearch()
		}
	}
	g.start, g.end = NoCoord, NoCoord
}

// Clone returns a deep copy including search state.
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, start: g.start, end: g.end}
	cp.cells = make([][]*Cell, g.rows)
	for r, row := range g.cells {
		cp.cells[r] = make([]*Cell, g.cols)
		for c, cell := range row {
			dup := *cell
			cp.cells[r][c] = &dup
		}
	}

	return cp
}

// String renders the grid one row per line using CellType symbols.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteByte(cell.Type.Symbol())
		}
	}

	return sb.String()
}

// NodeID formats the core.Graph node identifier for p.
func NodeID(p Coord) string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// ToGraph converts the walkable cells into an undirected *core.Graph.
// Each cell becomes a node with ID "r,c"; unit-weight edges join
// walkable 4-neighbors.
// Complexity: O(R×C) time and memory.
func (g *Grid) ToGraph() *core.Graph {
	out := core.NewGraph(core.WithName(fmt.Sprintf("grid %dx%d", g.rows, g.cols)))
	// 1) nodes
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Walkable() {
				_, _ = out.AddNode(NodeID(cell.Coord()), "")
			}
		}
	}
	// 2) edges, looking only down and right so each pair is visited once
	for _, row := range g.cells {
		for _, cell := range row {
			if !cell.Walkable() {
				continue
			}
			for _, d := range [2][2]int{{1, 0}, {0, 1}} {
				n, ok := g.Cell(cell.row+d[0], cell.col+d[1])
				if !ok || !n.Walkable() {
					continue
				}
				_, _ = out.AddEdge(NodeID(cell.Coord()), NodeID(n.Coord()))
			}
		}
	}

	return out
}

// index maps (r,c) to a row-major index.
func (g *Grid) index(r, c int) int { return r*g.cols + c }

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord { return Coord{Row: idx / g.cols, Col: idx % g.cols} }
