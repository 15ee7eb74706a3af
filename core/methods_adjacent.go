// Neighborhood queries.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the IDs reachable from id in one hop, sorted ascending.
// Undirected edges are reachable from both endpoints.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d) where d = out-degree.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.neighborIDs(id)
}

func (g *Graph) neighborIDs(id string) ([]string, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", id, ErrNodeNotFound)
	}
	ids := make([]string, 0, len(adj))
	for to := range adj {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Neighbors returns the nodes reachable from id in one hop, sorted by ID.
// Returns ErrNodeNotFound if id is absent.
func (g *Graph) Neighbors(id string) ([]*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids, err := g.neighborIDs(id)
	if err != nil {
		return nil, err
	}
	out := make([]*Node, len(ids))
	for i, nid := range ids {
		out[i] = g.nodes[nid]
	}

	return out, nil
}

// IncidentEdges returns every edge with id as an endpoint, in insertion order.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(E).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("incident edges of %q: %w", id, ErrNodeNotFound)
	}
	var out []*Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}

	return out, nil
}

// InDegrees returns, for every node, the number of directed edges entering it.
// Undirected edges are ignored.
// Complexity: O(V + E).
func (g *Graph) InDegrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deg := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		deg[id] = 0
	}
	for _, e := range g.edges {
		if e.Directed {
			deg[e.To]++
		}
	}

	return deg
}
