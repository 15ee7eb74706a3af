// Package core: node and edge lifecycle methods.
//
// Every method here takes g.mu; adjacency is the nested map
// adjacency[from][to] = *Edge, kept in step with the edges slice.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with the given ID and label.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists this is a no-op that returns the existing node.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, label string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		return n, nil
	}
	n := newNode(id, label)
	g.nodes[id] = n
	g.adjacency[id] = make(map[string]*Edge)

	return n, nil
}

// Node returns the node with the given ID, or nil when absent.
// Complexity: O(1).
func (g *Graph) Node(id string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[id]
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes the node and every edge incident to it.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(E).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("remove %q: %w", id, ErrNodeNotFound)
	}
	// 1) drop incident edges, preserving the order of the rest
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			g.unindex(e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	// 2) drop the node and its adjacency bucket
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}

// Nodes returns every node sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// AddEdge connects from and to with DefaultWeight. See AddWeightedEdge.
func (g *Graph) AddEdge(from, to string) (*Edge, error) {
	return g.AddWeightedEdge(from, to, DefaultWeight)
}

// AddWeightedEdge connects from and to using the graph's current orientation.
// If an edge already connects the pair, that edge is returned unchanged.
//
// Returns ErrNodeNotFound if either endpoint is missing and
// ErrLoopNotAllowed if from == to.
// Complexity: O(1) amortized.
func (g *Graph) AddWeightedEdge(from, to string, weight float64) (*Edge, error) {
	if from == to {
		return nil, fmt.Errorf("edge %q: %w", from, ErrLoopNotAllowed)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) both endpoints must exist
	if _, ok := g.nodes[from]; !ok {
		return nil, fmt.Errorf("edge %s-%s: from %q: %w", from, to, from, ErrNodeNotFound)
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, fmt.Errorf("edge %s-%s: to %q: %w", from, to, to, ErrNodeNotFound)
	}

	// 2) reuse an edge that already joins the pair
	if e := g.adjacency[from][to]; e != nil {
		return e, nil
	}
	if !g.directed {
		if e := g.adjacency[to][from]; e != nil {
			return e, nil
		}
	}

	// 3) append and index
	e := &Edge{From: from, To: to, Directed: g.directed, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[from][to] = e
	if !e.Directed {
		g.adjacency[to][from] = e
	}

	return e, nil
}

// RemoveEdge deletes the edge joining from and to.
// For undirected edges either argument order matches.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(E).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := g.adjacency[from][to]
	if e == nil {
		return fmt.Errorf("remove %s-%s: %w", from, to, ErrEdgeNotFound)
	}
	g.unindex(e)
	for i, cur := range g.edges {
		if cur == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}

	return nil
}

// Edge returns the edge reachable from 'from' to 'to', or nil.
// Complexity: O(1).
func (g *Graph) Edge(from, to string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.adjacency[from][to]
}

// Edges returns every edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// unindex removes e from the adjacency index. Caller holds g.mu.
func (g *Graph) unindex(e *Edge) {
	if m := g.adjacency[e.From]; m != nil && m[e.To] == e {
		delete(m, e.To)
	}
	if !e.Directed {
		if m := g.adjacency[e.To]; m != nil && m[e.From] == e {
			delete(m, e.From)
		}
	}
}
