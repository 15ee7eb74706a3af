package traversal

import (
	"context"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

// DepthFirst explores as far as possible along each branch before
// backtracking. The iterative variant drives an explicit stack of enter and
// exit frames and produces exactly the same steps, discovery order, times and
// parents as the recursive one.
type DepthFirst struct {
	// Iterative selects the explicit-stack implementation.
	Iterative bool
}

// Descriptor returns static metadata.
func (d DepthFirst) Descriptor() step.Descriptor {
	desc := step.Descriptor{
		Name:             "Depth-First Search (Recursive)",
		TimeComplexity:   "O(V + E)",
		SpaceComplexity:  "O(V) recursion stack",
		Description:      "DFS explores as far as possible along each branch before backtracking. It can detect cycles and classify edges in directed graphs. Uses recursion for elegant implementation.",
		ProducesOrdering: true,
	}
	if d.Iterative {
		desc.Name = "Depth-First Search (Iterative)"
		desc.SpaceComplexity = "O(V) explicit stack"
		desc.Description = "DFS explores as far as possible along each branch before backtracking. It can detect cycles and classify edges in directed graphs. Uses explicit stack to avoid recursion limits."
	}
	return desc
}

// Traverse runs DFS from startID and returns nodes in discovery order.
func (d DepthFirst) Traverse(ctx context.Context, g *core.Graph, startID string, onStep StepFunc) ([]*core.Node, error) {
	w, err := newWalker(ctx, g, onStep)
	if err != nil {
		return nil, err
	}
	root, ok, err := w.start(startID)
	if !ok || err != nil {
		return empty(), err
	}

	if err = w.emit(root, "Starting DFS from node %s", root.ID); err != nil {
		return w.order, err
	}
	dw := &dfsWalker{walker: w}
	if d.Iterative {
		err = dw.iterative(root)
	} else {
		err = dw.recursive(root)
	}
	if err != nil {
		return w.order, err
	}

	return w.order, w.emit(nil, "DFS traversal complete! Visited %d nodes.", len(w.order))
}

// dfsWalker adds the shared timestamp counter.
type dfsWalker struct {
	*walker
	clock int
}

// discover colours n gray and stamps its discovery time.
func (w *dfsWalker) discover(n *core.Node) error {
	n.Visited = true
	n.Discovery = w.clock
	w.clock++
	n.State = core.Exploring
	w.order = append(w.order, n)
	return w.emit(n, "Discovered node %s (discovery time: %d)", n.ID, n.Discovery)
}

// finish colours n black and stamps its finish time.
func (w *dfsWalker) finish(n *core.Node) error {
	n.Finish = w.clock
	w.clock++
	n.State = core.Finished
	return w.emit(n, "Finished processing node %s (finish time: %d)", n.ID, n.Finish)
}

// descend handles the edge from→to as seen from the parent's neighbor loop.
// It reports whether to was newly entered.
func (w *dfsWalker) descend(from, to *core.Node) (bool, error) {
	if to.Visited {
		return false, w.emit(to, "Node %s already visited (back edge from %s)", to.ID, from.ID)
	}
	w.markEdge(from, to, true)
	if err := w.emit(to, "Exploring edge from %s to %s", from.ID, to.ID); err != nil {
		return false, err
	}
	to.Parent = from.ID
	return true, nil
}

func (w *dfsWalker) recursive(n *core.Node) error {
	// 1. discover
	if err := w.discover(n); err != nil {
		return err
	}
	// 2. explore sorted neighbors, recursing on the unvisited ones
	nbs, err := w.neighbors(n)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		entered, err := w.descend(n, nb)
		if err != nil {
			return err
		}
		if entered {
			if err = w.recursive(nb); err != nil {
				return err
			}
		}
	}
	// 3. finish
	return w.finish(n)
}

// frame is one explicit-stack entry: enter node (reached from parent) or exit node.
type frame struct {
	node   *core.Node
	parent *core.Node
	exit   bool
}

func (w *dfsWalker) iterative(root *core.Node) error {
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 1. exit frames finish the node once its subtree is done
		if f.exit {
			if err := w.finish(f.node); err != nil {
				return err
			}
			continue
		}

		// 2. enter frames replay the parent's neighbor check at the moment
		// the recursive loop would reach it
		if f.parent != nil {
			entered, err := w.descend(f.parent, f.node)
			if err != nil {
				return err
			}
			if !entered {
				continue
			}
		}
		if err := w.discover(f.node); err != nil {
			return err
		}

		// 3. push the exit frame, then neighbors in reverse so the smallest ID pops first
		nbs, err := w.neighbors(f.node)
		if err != nil {
			return err
		}
		stack = append(stack, frame{node: f.node, exit: true})
		for i := len(nbs) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: nbs[i], parent: f.node})
		}
	}

	return nil
}
