// Package pathfinding implements three instrumented shortest-path searches
// over a 4-connected gridgraph.Grid: A*, Dijkstra and level-order BFS.
//
// Every run first calls Grid.ResetSearch, then writes search marks, costs,
// labels and parent coordinates onto the grid's cells while emitting a step
// per dequeued or relaxed cell. All three reconstruct the path the same way:
// follow Parent from end to start, reverse, mark Path.
//
// Outcomes:
//
//   - Start or end unset: one diagnostic step, empty path, nil error.
//   - End unreachable: a "No path found" step, empty path, nil error.
//   - Cancelled: partial path (discard it) and ctx.Err().
//   - Nil grid: ErrGridNil.
//
// Tie-breaking among equal priorities is whatever container/heap yields;
// only the path length is guaranteed to agree across algorithms.
package pathfinding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/step"
)

// Sentinel errors for pathfinding.
var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to FindPath.
	ErrGridNil = errors.New("pathfinding: grid is nil")

	// ErrUnknownKind indicates an unknown pathfinding algorithm name or Kind.
	ErrUnknownKind = errors.New("pathfinding: unknown algorithm")
)

// StepFunc receives the grid, a message and the cell in focus (nil for
// bookkeeping-only steps). A non-nil return aborts the search.
type StepFunc func(g *gridgraph.Grid, msg string, cur *gridgraph.Cell) error

// Gated wraps fn so that every notification is followed by cp.Checkpoint.
// A nil fn only checkpoints.
func Gated(cp step.Checkpointer, fn StepFunc) StepFunc {
	return func(g *gridgraph.Grid, msg string, cur *gridgraph.Cell) error {
		if fn != nil {
			if err := fn(g, msg, cur); err != nil {
				return err
			}
		}
		return cp.Checkpoint()
	}
}

// Pathfinder is one grid search algorithm.
type Pathfinder interface {
	// Descriptor returns static metadata.
	Descriptor() step.Descriptor
	// FindPath returns the cells from start to end inclusive, or an empty
	// slice when start/end is unset or the end is unreachable.
	FindPath(ctx context.Context, g *gridgraph.Grid, onStep StepFunc) ([]*gridgraph.Cell, error)
}

// Kind selects a pathfinding algorithm.
type Kind int

const (
	AStar Kind = iota
	Dijkstra
	BFS
)

var kindNames = [...]string{
	AStar:    "astar",
	Dijkstra: "dijkstra",
	BFS:      "bfs",
}

// String returns the short name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// All returns every Kind in menu order.
func All() []Kind { return []Kind{AStar, Dijkstra, BFS} }

// ParseKind resolves a short name such as "astar" or "a*" (case-insensitive).
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "a*", "a-star", "a star":
		return AStar, nil
	case "breadth-first", "breadth-first search":
		return BFS, nil
	}
	for i, kn := range kindNames {
		if n == kn {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// New returns the Pathfinder for k.
func New(k Kind) (Pathfinder, error) {
	switch k {
	case AStar:
		return AStarSearch{}, nil
	case Dijkstra:
		return DijkstraSearch{}, nil
	case BFS:
		return BFSSearch{}, nil
	default:
		return nil, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
}

// walker carries the per-run state shared by every search.
type walker struct {
	ctx    context.Context
	grid   *gridgraph.Grid
	onStep StepFunc
	start  *gridgraph.Cell
	end    *gridgraph.Cell
}

// newWalker validates g and resets its search state. ok is false when
// start or end is unset, after the diagnostic step has been emitted.
func newWalker(ctx context.Context, g *gridgraph.Grid, onStep StepFunc) (w *walker, ok bool, err error) {
	if g == nil {
		return nil, false, ErrGridNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	g.ResetSearch()
	w = &walker{ctx: ctx, grid: g, onStep: onStep, start: g.Start(), end: g.End()}
	if w.start == nil || w.end == nil {
		return w, false, w.emit(nil, "Start or end position not set!")
	}
	return w, true, nil
}

// emit notifies the caller and then consults ctx.
func (w *walker) emit(cur *gridgraph.Cell, format string, args ...any) error {
	if w.onStep != nil {
		if err := w.onStep(w.grid, fmt.Sprintf(format, args...), cur); err != nil {
			return err
		}
	}
	return step.Check(w.ctx)
}

// reconstruct follows Parent from end to start, reverses, marks the route
// as Path and emits one step per cell plus the summary.
func (w *walker) reconstruct(stepPrefix string, summary func(path []*gridgraph.Cell) string) ([]*gridgraph.Cell, error) {
	var path []*gridgraph.Cell
	limit := w.grid.Rows() * w.grid.Cols()
	for cur := w.end; cur != nil && len(path) <= limit; cur = w.grid.At(cur.Parent) {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for i, cell := range path {
		cell.Mark(gridgraph.Path)
		if err := w.emit(cell, "%s %d: %v", stepPrefix, i+1, cell); err != nil {
			return path, err
		}
	}
	return path, w.emit(nil, "%s", summary(path))
}

// noPath emits the unreachable diagnostic and returns an empty path.
func (w *walker) noPath(msg string) ([]*gridgraph.Cell, error) {
	return []*gridgraph.Cell{}, w.emit(nil, "%s", msg)
}
