package pathfinding

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/step"
)

// BFSSearch expands the grid level by level with a FIFO queue. Parents are
// set at first discovery, so the path is shortest by step count.
type BFSSearch struct{}

// Descriptor returns static metadata.
func (BFSSearch) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:            "Breadth-First Search",
		TimeComplexity:  "O(V + E)",
		SpaceComplexity: "O(V)",
		Description:     "BFS explores all cells at the current distance before moving further away, guaranteeing the shortest path in an unweighted grid.",
		Optimal:         true,
	}
}

// FindPath runs BFS from the grid's start to its end.
func (BFSSearch) FindPath(ctx context.Context, g *gridgraph.Grid, onStep StepFunc) ([]*gridgraph.Cell, error) {
	w, ok, err := newWalker(ctx, g, onStep)
	if !ok || err != nil {
		return []*gridgraph.Cell{}, err
	}

	// 1. the start is discovered at level 0
	queue := []*gridgraph.Cell{w.start}
	seen := map[gridgraph.Coord]bool{w.start.Coord(): true}
	w.start.G = 0
	if err = w.emit(w.start, "Starting BFS from %v to %v", w.start, w.end); err != nil {
		return nil, err
	}

	level := 0
	for ; len(queue) > 0; level++ {
		// 2. drain exactly one level
		size := len(queue)
		if err = w.emit(nil, "Processing level %d (%d cells)", level, size); err != nil {
			return nil, err
		}
		for i := 0; i < size; i++ {
			cur := queue[0]
			queue = queue[1:]
			cur.Mark(gridgraph.Exploring)
			cur.Label = fmt.Sprintf("L%d", level)
			if err = w.emit(cur, "Exploring cell %v at level %d", cur, level); err != nil {
				return nil, err
			}

			if cur == w.end {
				if err = w.emit(cur, "Path found at level %d! Reconstructing path...", level); err != nil {
					return nil, err
				}
				return w.reconstruct("Path step", func(p []*gridgraph.Cell) string {
					return fmt.Sprintf("BFS path complete! Length: %d (shortest in unweighted graph)", len(p))
				})
			}

			// 3. discover each new walkable neighbor once
			for _, nb := range g.Neighbors(cur) {
				if !nb.Walkable() || seen[nb.Coord()] {
					continue
				}
				seen[nb.Coord()] = true
				nb.Parent = cur.Coord()
				nb.G = cur.G + 1
				nb.Mark(gridgraph.Frontier)
				queue = append(queue, nb)
				if err = w.emit(nb, "Added neighbor %v to queue", nb); err != nil {
					return nil, err
				}
			}
			cur.Mark(gridgraph.Visited)
		}
	}

	return w.noPath(fmt.Sprintf("No path found after exploring %d levels!", level))
}
