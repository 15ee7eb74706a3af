// Configuration getters and summary statistics.

package core

import "fmt"

// Name returns the display name of the graph.
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

// Directed reports the orientation applied to newly added edges.
// It does not describe edges already present (see Stats().DirectedEdges).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.directed
}

// SetDirected changes the orientation of edges added from now on.
// Existing edges keep the orientation they were created with.
func (g *Graph) SetDirected(directed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.directed = directed
}

// GraphStats is a read-only snapshot of graph size and orientation.
type GraphStats struct {
	Name            string
	Directed        bool
	NodeCount       int
	EdgeCount       int
	DirectedEdges   int
	UndirectedEdges int
}

// Stats produces a snapshot of counts, classifying edges by their Directed flag.
// Complexity: O(E)
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Name:      g.name,
		Directed:  g.directed,
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}
	for _, e := range g.edges {
		if e.Directed {
			s.DirectedEdges++
		} else {
			s.UndirectedEdges++
		}
	}

	return s
}

// Statistics renders Stats as "Nodes: n, Edges: m, Type: Directed|Undirected".
func (g *Graph) Statistics() string {
	s := g.Stats()
	kind := "Undirected"
	if s.Directed {
		kind = "Directed"
	}
	return fmt.Sprintf("Nodes: %d, Edges: %d, Type: %s", s.NodeCount, s.EdgeCount, kind)
}

// String renders "name [statistics]".
func (g *Graph) String() string {
	return fmt.Sprintf("%s [%s]", g.Name(), g.Statistics())
}
