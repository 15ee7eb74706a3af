// Cloning, clearing and resetting graph instances.

package core

// Clone returns a deep copy of the graph: configuration, nodes with their
// traversal metadata, and edges in the same insertion order.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed), WithName(g.name))
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
		clone.adjacency[id] = make(map[string]*Edge)
	}
	for _, e := range g.edges {
		ne := *e
		clone.edges = append(clone.edges, &ne)
		clone.adjacency[ne.From][ne.To] = &ne
		if !ne.Directed {
			clone.adjacency[ne.To][ne.From] = &ne
		}
	}

	return clone
}

// Clear removes every node and edge, keeping name and orientation.
// Complexity: O(1) plus garbage.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = nil
	g.adjacency = make(map[string]map[string]*Edge)
}

// Reset clears traversal metadata on every node and display flags on every
// edge. Structure is unchanged.
// Complexity: O(V + E)
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		n.reset()
	}
	for _, e := range g.edges {
		e.reset()
	}
}
