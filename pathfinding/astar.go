package pathfinding

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/step"
)

// AStarSearch orders the open set by F = G + Manhattan distance to the end.
// A neighbor is relaxed only on a strictly lower G; duplicate open entries
// are tolerated and the closed set prevents reprocessing.
type AStarSearch struct{}

// Descriptor returns static metadata.
func (AStarSearch) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:            "A* Algorithm",
		TimeComplexity:  "O(b^d)",
		SpaceComplexity: "O(b^d)",
		Description:     "A* uses a heuristic to guide the search towards the goal, making it more efficient than Dijkstra's algorithm while still guaranteeing the shortest path.",
		Optimal:         true,
	}
}

// FindPath runs A* from the grid's start to its end.
func (AStarSearch) FindPath(ctx context.Context, g *gridgraph.Grid, onStep StepFunc) ([]*gridgraph.Cell, error) {
	w, ok, err := newWalker(ctx, g, onStep)
	if !ok || err != nil {
		return []*gridgraph.Cell{}, err
	}
	goal := w.end.Coord()

	// 1. seed the open set with the start
	open := make(cellPQ, 0, g.Rows()*g.Cols())
	heap.Init(&open)
	closed := make(map[gridgraph.Coord]bool, g.Rows()*g.Cols())

	w.start.G = 0
	w.start.H = gridgraph.Manhattan(w.start.Coord(), goal)
	heap.Push(&open, &cellItem{cell: w.start, priority: w.start.F()})
	if err = w.emit(w.start, "Starting A* search from %v to %v", w.start, w.end); err != nil {
		return nil, err
	}

	for open.Len() > 0 {
		// 2. pop the lowest F, skipping stale duplicates
		cur := heap.Pop(&open).(*cellItem).cell
		if closed[cur.Coord()] {
			continue
		}
		closed[cur.Coord()] = true
		cur.Mark(gridgraph.Exploring)
		if err = w.emit(cur, "Exploring cell %v (f=%.1f)", cur, cur.F()); err != nil {
			return nil, err
		}

		// 3. goal reached
		if cur == w.end {
			if err = w.emit(cur, "Path found! Reconstructing path..."); err != nil {
				return nil, err
			}
			return w.reconstruct("Path step", func(p []*gridgraph.Cell) string {
				return fmt.Sprintf("Path reconstruction complete! Length: %d", len(p))
			})
		}

		// 4. relax walkable, unclosed neighbors on strictly lower G
		for _, nb := range g.Neighbors(cur) {
			if !nb.Walkable() || closed[nb.Coord()] {
				continue
			}
			tentative := cur.G + gridgraph.Manhattan(cur.Coord(), nb.Coord())
			if tentative >= nb.G {
				continue
			}
			nb.Parent = cur.Coord()
			nb.G = tentative
			nb.H = gridgraph.Manhattan(nb.Coord(), goal)
			nb.Label = fmt.Sprintf("f=%.1f", nb.F())
			nb.Mark(gridgraph.Frontier)
			heap.Push(&open, &cellItem{cell: nb, priority: nb.F()})
			if err = w.emit(nb, "Added neighbor %v to frontier", nb); err != nil {
				return nil, err
			}
		}
		cur.Mark(gridgraph.Visited)
	}

	return w.noPath("No path found!")
}
