package traversal

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// Topological orders the nodes of a directed acyclic graph so that every
// edge u→v places u before v. Kahn selects the in-degree queue; otherwise the
// reverse DFS finish order is used. Undirected or cyclic graphs yield an
// empty result after a diagnostic step, as does a directed graph that still
// holds undirected edges.
type Topological struct {
	// Kahn selects Kahn's algorithm instead of the DFS-based sort.
	Kahn bool
}

// Descriptor returns static metadata.
func (t Topological) Descriptor() step.Descriptor {
	const base = "Topological sort produces a linear ordering of vertices in a DAG such that for every directed edge (u,v), u appears before v. "
	if t.Kahn {
		return step.Descriptor{
			Name:             "Topological Sort (Kahn's Algorithm)",
			TimeComplexity:   "O(V + E)",
			SpaceComplexity:  "O(V)",
			Description:      base + "Kahn's algorithm repeatedly removes nodes with zero in-degree.",
			ProducesOrdering: true,
		}
	}
	return step.Descriptor{
		Name:             "Topological Sort (DFS-based)",
		TimeComplexity:   "O(V + E)",
		SpaceComplexity:  "O(V)",
		Description:      base + "DFS-based approach uses finish times from depth-first traversal.",
		ProducesOrdering: true,
	}
}

// Traverse sorts the whole graph; startID is ignored.
func (t Topological) Traverse(ctx context.Context, g *core.Graph, _ string, onStep StepFunc) ([]*core.Node, error) {
	w, err := newWalker(ctx, g, onStep)
	if err != nil {
		return nil, err
	}
	// edges added before SetDirected(true) keep their undirected flag
	if !g.Directed() || g.Stats().UndirectedEdges > 0 {
		return empty(), w.emit(nil, "Topological sort requires a directed graph!")
	}

	if t.Kahn {
		if err = w.emit(nil, "Starting topological sort using Kahn's algorithm"); err != nil {
			return w.order, err
		}
		return w.kahn()
	}
	if err = w.emit(nil, "Starting topological sort using DFS-based approach"); err != nil {
		return w.order, err
	}
	return w.finishOrder()
}

func (w *walker) kahn() ([]*core.Node, error) {
	// 1. in-degrees over directed edges
	inDegree := w.graph.InDegrees()
	if err := w.emit(nil, "Calculated in-degrees for all nodes"); err != nil {
		return w.order, err
	}

	// 2. seed the queue in ID order
	nodes := w.graph.Nodes()
	var queue []*core.Node
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			n.State = core.Exploring
			queue = append(queue, n)
		}
	}
	if err := w.emit(nil, "Found %d nodes with in-degree 0", len(queue)); err != nil {
		return w.order, err
	}

	// 3. repeatedly emit a source and release its successors
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cur.Visited = true
		cur.Discovery = len(w.order)
		cur.State = core.Finished
		w.order = append(w.order, cur)
		if err := w.emit(cur, "Added %s to topological order (position %d)", cur.ID, cur.Discovery); err != nil {
			return w.order, err
		}

		nbs, err := w.neighbors(cur)
		if err != nil {
			return w.order, err
		}
		for _, nb := range nbs {
			e := w.graph.Edge(cur.ID, nb.ID)
			if e == nil || !e.Directed {
				continue
			}
			e.Traversed = true
			inDegree[nb.ID]--
			if inDegree[nb.ID] == 0 {
				nb.State = core.Exploring
				queue = append(queue, nb)
				err = w.emit(nb, "In-degree of %s reduced to 0, added to queue", nb.ID)
			} else {
				err = w.emit(nb, "In-degree of %s reduced to %d", nb.ID, inDegree[nb.ID])
			}
			if err != nil {
				return w.order, err
			}
		}
	}

	// 4. leftovers mean a cycle
	if len(w.order) != len(nodes) {
		return empty(), w.emit(nil, "Cycle detected! Topological sort impossible. Only %d of %d nodes processed.", len(w.order), len(nodes))
	}

	return w.order, w.emit(nil, "Topological sort completed successfully!")
}

// errCycle stops the finish-order walk once a back edge is seen.
var errCycle = errors.New("traversal: cycle")

func (w *walker) finishOrder() ([]*core.Node, error) {
	var finished []*core.Node

	// visit colours n gray while it is on the recursion stack.
	var visit func(n *core.Node) error
	visit = func(n *core.Node) error {
		n.Visited = true
		n.State = core.Exploring
		if err := w.emit(n, "Visiting node %s", n.ID); err != nil {
			return err
		}
		nbs, err := w.neighbors(n)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			w.markEdge(n, nb, false)
			if nb.State == core.Exploring {
				if err = w.emit(nb, "Back edge detected: %s -> %s (CYCLE!)", n.ID, nb.ID); err != nil {
					return err
				}
				return errCycle
			}
			if !nb.Visited {
				nb.Parent = n.ID
				if err = visit(nb); err != nil {
					return err
				}
			}
		}
		n.State = core.Finished
		finished = append(finished, n)
		return w.emit(n, "Finished processing node %s", n.ID)
	}

	// 1. walk every unvisited node in ID order
	for _, n := range w.graph.Nodes() {
		if n.Visited {
			continue
		}
		if err := visit(n); err != nil {
			if errors.Is(err, errCycle) {
				return empty(), w.emit(n, "Cycle detected starting from node %s! Topological sort impossible.", n.ID)
			}
			return w.order, err
		}
	}

	// 2. pop the finish stack in full
	for i := len(finished) - 1; i >= 0; i-- {
		n := finished[i]
		n.Discovery = len(w.order)
		w.order = append(w.order, n)
		if err := w.emit(n, "Added %s to topological order (position %d)", n.ID, n.Discovery); err != nil {
			return w.order, err
		}
	}

	return w.order, w.emit(nil, "DFS-based topological sort completed!")
}
