// Package traversal implements instrumented traversals over core.Graph:
// recursive and iterative depth-first search, level-order breadth-first
// search, and two topological sorts (Kahn's in-degree queue and DFS finish
// order).
//
// Neighbors are always visited in ascending ID order, so every traversal is
// deterministic. Each run starts with g.Reset() and then records discovery
// and finish times, BFS levels, parents and white/gray/black states on the
// graph's nodes, and traversed or highlighted flags on its edges.
//
// Preconditions that are not contract violations produce a diagnostic step
// and an empty, non-nil result with a nil error:
//
//   - DFS or BFS with an empty startID.
//   - a topological sort on an undirected graph.
//   - a topological sort on a graph that contains a cycle.
//
// Complexity: O(V + E) time and O(V) space for every variant, plus the
// O(d log d) neighbor sort per visited node.
//
// Errors:
//
//   - ErrGraphNil           if g is nil.
//   - ErrStartNodeNotFound  if startID names no node.
//   - ErrUnknownKind        from New or ParseKind.
//   - context.Canceled      if ctx is done (the partial result is returned).
//   - any error returned by the StepFunc.
package traversal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/step"
)

var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrStartNodeNotFound indicates a startID absent from the graph.
	ErrStartNodeNotFound = errors.New("traversal: start node not found")

	// ErrUnknownKind indicates an unknown traversal name or Kind.
	ErrUnknownKind = errors.New("traversal: unknown algorithm")
)

// StepFunc receives the graph, a message, the node in focus (nil for
// bookkeeping steps) and the nodes recorded so far. visited is the live
// result slice; copy it to keep it past the call.
// A non-nil return aborts the traversal with that error.
type StepFunc func(g *core.Graph, msg string, cur *core.Node, visited []*core.Node) error

// Gated wraps fn so that every notification is followed by cp.Checkpoint.
// A nil fn only checkpoints.
func Gated(cp step.Checkpointer, fn StepFunc) StepFunc {
	return func(g *core.Graph, msg string, cur *core.Node, visited []*core.Node) error {
		if fn != nil {
			if err := fn(g, msg, cur, visited); err != nil {
				return err
			}
		}
		return cp.Checkpoint()
	}
}

// Traverser is one traversal algorithm.
type Traverser interface {
	// Descriptor returns static metadata.
	Descriptor() step.Descriptor
	// Traverse walks g from startID and returns the nodes in the order the
	// algorithm produces them. Topological sorts ignore startID.
	Traverse(ctx context.Context, g *core.Graph, startID string, onStep StepFunc) ([]*core.Node, error)
}

// Kind selects a traversal algorithm.
type Kind int

const (
	DFS Kind = iota
	DFSIterative
	BFS
	TopoKahn
	TopoDFS
)

var kindNames = [...]string{
	DFS:          "dfs",
	DFSIterative: "dfs-iterative",
	BFS:          "bfs",
	TopoKahn:     "kahn",
	TopoDFS:      "topo-dfs",
}

var kindAliases = map[string]Kind{
	"dfs-recursive": DFS,
	"topo-kahn":     TopoKahn,
	"topo":          TopoDFS,
	"topological":   TopoDFS,
}

// String returns the short name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// All returns every Kind in menu order.
func All() []Kind { return []Kind{DFS, DFSIterative, BFS, TopoKahn, TopoDFS} }

// ParseKind resolves a short name such as "bfs" or "kahn" (case-insensitive).
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, kn := range kindNames {
		if n == kn {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// New returns the Traverser for k.
func New(k Kind) (Traverser, error) {
	switch k {
	case DFS:
		return DepthFirst{}, nil
	case DFSIterative:
		return DepthFirst{Iterative: true}, nil
	case BFS:
		return BreadthFirst{}, nil
	case TopoKahn:
		return Topological{Kahn: true}, nil
	case TopoDFS:
		return Topological{}, nil
	default:
		return nil, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
}

// walker carries the per-run state shared by every algorithm.
type walker struct {
	ctx    context.Context
	graph  *core.Graph
	onStep StepFunc
	order  []*core.Node
}

// newWalker validates g, resets its metadata and sizes the result.
func newWalker(ctx context.Context, g *core.Graph, onStep StepFunc) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	g.Reset()

	return &walker{
		ctx:    ctx,
		graph:  g,
		onStep: onStep,
		order:  make([]*core.Node, 0, g.NodeCount()),
	}, nil
}

// emit notifies the caller and then consults ctx.
func (w *walker) emit(cur *core.Node, format string, args ...any) error {
	if w.onStep != nil {
		if err := w.onStep(w.graph, fmt.Sprintf(format, args...), cur, w.order); err != nil {
			return err
		}
	}
	return step.Check(w.ctx)
}

// start resolves startID. ok is false when startID is empty, after the
// diagnostic step has been emitted.
func (w *walker) start(startID string) (n *core.Node, ok bool, err error) {
	if startID == "" {
		return nil, false, w.emit(nil, "No starting node specified!")
	}
	n = w.graph.Node(startID)
	if n == nil {
		return nil, false, fmt.Errorf("%q: %w", startID, ErrStartNodeNotFound)
	}
	return n, true, nil
}

// neighbors returns the sorted neighbors of n.
func (w *walker) neighbors(n *core.Node) ([]*core.Node, error) {
	nbs, err := w.graph.Neighbors(n.ID)
	if err != nil {
		return nil, fmt.Errorf("traversal: neighbors of %q: %w", n.ID, err)
	}
	return nbs, nil
}

// markEdge sets the traversed or highlighted flag on the edge from→to.
func (w *walker) markEdge(from, to *core.Node, traversed bool) {
	e := w.graph.Edge(from.ID, to.ID)
	if e == nil {
		return
	}
	if traversed {
		e.Traversed = true
	} else {
		e.Highlighted = true
	}
}

// empty returns the canonical empty result.
func empty() []*core.Node { return []*core.Node{} }
