package gridgraph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadSymbol indicates an unknown layout symbol.
	ErrBadSymbol = errors.New("gridgraph: unknown layout symbol")
	// ErrDuplicateStart indicates a layout with more than one start cell.
	ErrDuplicateStart = errors.New("gridgraph: more than one start cell")
	// ErrDuplicateEnd indicates a layout with more than one end cell.
	ErrDuplicateEnd = errors.New("gridgraph: more than one end cell")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Coord is an immutable (row, col) position.
type Coord struct {
	Row, Col int
}

// NoCoord marks an unset position, e.g. a cell without a parent.
var NoCoord = Coord{Row: -1, Col: -1}

// String renders "(r,c)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b Coord) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Coord) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// CellType is the role of a cell: structural (Empty, Wall, Start, End) or a
// search mark written by an engine (Path, Visited, Exploring, Frontier).
type CellType int

const (
	Empty CellType = iota
	Wall
	Start
	End
	Path
	Visited
	Exploring
	Frontier
)

var cellSymbols = [...]byte{
	Empty:     '.',
	Wall:      '#',
	Start:     'S',
	End:       'E',
	Path:      '*',
	Visited:   'o',
	Exploring: '@',
	Frontier:  '+',
}

var cellNames = [...]string{
	Empty:     "empty",
	Wall:      "wall",
	Start:     "start",
	End:       "end",
	Path:      "path",
	Visited:   "visited",
	Exploring: "exploring",
	Frontier:  "frontier",
}

// Symbol returns the single-byte layout symbol for t.
func (t CellType) Symbol() byte {
	if t < 0 || int(t) >= len(cellSymbols) {
		return '?'
	}
	return cellSymbols[t]
}

// String returns a lower-case name for t.
func (t CellType) String() string {
	if t < 0 || int(t) >= len(cellNames) {
		return "unknown"
	}
	return cellNames[t]
}

// searchMark reports whether t is written by a search rather than by the user.
func (t CellType) searchMark() bool { return t >= Path }

// Cell is one grid position. Row and Col never change; everything else is
// mutable state owned by whoever is running on the grid.
type Cell struct {
	row, col int

	// Type is the cell role.
	Type CellType

	// G is the cost from start (+Inf until reached); H is the heuristic to end.
	G, H float64

	// Parent is the predecessor on the best known route, NoCoord when unset.
	Parent Coord

	// Label is free display text such as "f=4.0".
	Label string
}

func newCell(r, c int) *Cell {
	cell := &Cell{row: r, col: c, Type: Empty}
	cell.resetSearch()

	return cell
}

// Row returns the cell row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell column.
func (c *Cell) Col() int { return c.col }

// Coord returns the cell position.
func (c *Cell) Coord() Coord { return Coord{Row: c.row, Col: c.col} }

// F returns G + H.
func (c *Cell) F() float64 { return c.G + c.H }

// Walkable reports whether the cell is not a wall.
func (c *Cell) Walkable() bool { return c.Type != Wall }

// HasParent reports whether Parent is set.
func (c *Cell) HasParent() bool { return c.Parent != NoCoord }

// String renders the cell position as "(r,c)".
func (c *Cell) String() string { return c.Coord().String() }

// Mark sets a search mark on an Empty or previously marked cell; walls,
// start and end keep their type.
func (c *Cell) Mark(t CellType) {
	if c.Type == Empty || c.Type.searchMark() {
		c.Type = t
	}
}

func (c *Cell) resetSearch() {
	if c.Type.searchMark() {
		c.Type = Empty
	}
	c.G = math.Inf(1)
	c.H = 0
	c.Parent = NoCoord
	c.Label = ""
}
