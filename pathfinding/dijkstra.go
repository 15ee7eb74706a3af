package pathfinding

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/step"
)

// DijkstraSearch orders the queue by G alone with unit step cost. A visited
// set guards finalized cells and the search stops when the end is popped.
type DijkstraSearch struct{}

// Descriptor returns static metadata.
func (DijkstraSearch) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:            "Dijkstra's Algorithm",
		TimeComplexity:  "O(V log V + E)",
		SpaceComplexity: "O(V)",
		Description:     "Dijkstra's algorithm finds the shortest path by always exploring the nearest unexplored cell. Guarantees optimal solution but may explore more cells than A*.",
		Optimal:         true,
	}
}

// FindPath runs Dijkstra from the grid's start to its end.
func (DijkstraSearch) FindPath(ctx context.Context, g *gridgraph.Grid, onStep StepFunc) ([]*gridgraph.Cell, error) {
	w, ok, err := newWalker(ctx, g, onStep)
	if !ok || err != nil {
		return []*gridgraph.Cell{}, err
	}

	// 1. every G is +Inf after ResetSearch; the start is 0
	pq := make(cellPQ, 0, g.Rows()*g.Cols())
	heap.Init(&pq)
	visited := make(map[gridgraph.Coord]bool, g.Rows()*g.Cols())

	w.start.G = 0
	heap.Push(&pq, &cellItem{cell: w.start, priority: 0})
	if err = w.emit(w.start, "Starting Dijkstra's algorithm from %v to %v", w.start, w.end); err != nil {
		return nil, err
	}

	for pq.Len() > 0 {
		// 2. pop the nearest cell, skipping stale entries
		cur := heap.Pop(&pq).(*cellItem).cell
		if visited[cur.Coord()] {
			continue
		}
		visited[cur.Coord()] = true
		cur.Mark(gridgraph.Exploring)
		cur.Label = fmt.Sprintf("d=%.1f", cur.G)
		if err = w.emit(cur, "Processing cell %v (distance=%.1f)", cur, cur.G); err != nil {
			return nil, err
		}

		// 3. terminate the moment the end is finalized
		if cur == w.end {
			if err = w.emit(cur, "Shortest path found! Reconstructing path..."); err != nil {
				return nil, err
			}
			total := cur.G
			return w.reconstruct("Shortest path step", func(p []*gridgraph.Cell) string {
				return fmt.Sprintf("Shortest path found! Length: %d, Distance: %.1f", len(p), total)
			})
		}

		// 4. relax neighbors with unit weight
		for _, nb := range g.Neighbors(cur) {
			if !nb.Walkable() || visited[nb.Coord()] {
				continue
			}
			d := cur.G + 1
			if d >= nb.G {
				continue
			}
			nb.G = d
			nb.Parent = cur.Coord()
			nb.Label = fmt.Sprintf("d=%.1f", d)
			nb.Mark(gridgraph.Frontier)
			heap.Push(&pq, &cellItem{cell: nb, priority: d})
			if err = w.emit(nb, "Updated distance to %v = %.1f", nb, d); err != nil {
				return nil, err
			}
		}
		cur.Mark(gridgraph.Visited)
	}

	return w.noPath("No path found!")
}
