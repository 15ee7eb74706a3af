package traversal

import (
	"context"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// BreadthFirst visits nodes level by level with a FIFO queue. Node.Level is
// the edge distance from the start and Node.Parent the BFS-tree parent.
type BreadthFirst struct{}

// Descriptor returns static metadata.
func (BreadthFirst) Descriptor() step.Descriptor {
	return step.Descriptor{
		Name:             "Breadth-First Search",
		TimeComplexity:   "O(V + E)",
		SpaceComplexity:  "O(V)",
		Description:      "BFS explores nodes level by level using a queue. It finds the shortest path in unweighted graphs and can detect bipartiteness. The algorithm visits nodes in order of their distance from the start node.",
		Optimal:          true,
		ProducesOrdering: true,
	}
}

// Traverse runs BFS from startID and returns nodes in dequeue order.
func (BreadthFirst) Traverse(ctx context.Context, g *core.Graph, startID string, onStep StepFunc) ([]*core.Node, error) {
	w, err := newWalker(ctx, g, onStep)
	if err != nil {
		return nil, err
	}
	root, ok, err := w.start(startID)
	if !ok || err != nil {
		return empty(), err
	}

	// 1. seed level 0
	seq := 0
	root.Level = 0
	root.Discovery = seq
	root.State = core.Exploring
	queue := []*core.Node{root}
	if err = w.emit(root, "Starting BFS from node %s (Level 0)", root.ID); err != nil {
		return w.order, err
	}

	maxLevel := 0
	for len(queue) > 0 {
		// 2. dequeue; Visited marks processed nodes, Level marks discovered ones
		cur := queue[0]
		queue = queue[1:]
		cur.Visited = true
		w.order = append(w.order, cur)
		if err = w.emit(cur, "Processing node %s at level %d", cur.ID, cur.Level); err != nil {
			return w.order, err
		}

		nbs, err := w.neighbors(cur)
		if err != nil {
			return w.order, err
		}
		for _, nb := range nbs {
			switch {
			case nb.Level == core.Unset:
				// 3. first discovery fixes level and parent
				seq++
				nb.Level = cur.Level + 1
				nb.Discovery = seq
				nb.Parent = cur.ID
				nb.State = core.Exploring
				if nb.Level > maxLevel {
					maxLevel = nb.Level
				}
				queue = append(queue, nb)
				w.markEdge(cur, nb, true)
				if err = w.emit(nb, "Discovered node %s at level %d via %s", nb.ID, nb.Level, cur.ID); err != nil {
					return w.order, err
				}
			case !nb.Visited:
				if err = w.emit(nb, "Cross edge from %s to %s (already discovered)", cur.ID, nb.ID); err != nil {
					return w.order, err
				}
			}
		}

		// 4. finish
		cur.State = core.Finished
		if err = w.emit(cur, "Finished processing node %s", cur.ID); err != nil {
			return w.order, err
		}
	}

	return w.order, w.emit(nil, "BFS traversal complete! Visited %d nodes in %d levels.", len(w.order), maxLevel+1)
}
