package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/core"
)

// mustNodes adds every id as a node labelled with itself.
func mustNodes(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := g.AddNode(id, "")
		require.NoError(t, err)
	}
}

func ids(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestAddNode(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("", "x")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)

	n, err := g.AddNode("A", "")
	require.NoError(t, err)
	assert.Equal(t, "A", n.Label)
	assert.Equal(t, core.Unset, n.Discovery)
	assert.Equal(t, core.Unset, n.Level)
	assert.Equal(t, core.Unvisited, n.State)

	again, err := g.AddNode("A", "other")
	require.NoError(t, err)
	assert.Same(t, n, again, "AddNode must be idempotent")
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode("A"))
	assert.False(t, g.HasNode(""))
	assert.Nil(t, g.Node("Z"))
}

func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	mustNodes(t, g, "A", "B", "C")

	e, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.False(t, e.Directed)
	assert.Equal(t, core.DefaultWeight, e.Weight)
	assert.True(t, e.Connects("A", "B"))
	assert.True(t, e.Connects("B", "A"))

	// the reverse pair is already connected
	dup, err := g.AddEdge("B", "A")
	require.NoError(t, err)
	assert.Same(t, e, dup)
	assert.Equal(t, 1, g.EdgeCount())

	nb, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nb)
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustNodes(t, g, "A", "B")

	ab, err := g.AddWeightedEdge("A", "B", 2.5)
	require.NoError(t, err)
	assert.True(t, ab.Directed)
	assert.False(t, ab.Connects("B", "A"))

	ba, err := g.AddEdge("B", "A")
	require.NoError(t, err)
	assert.NotSame(t, ab, ba)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Same(t, ab, g.Edge("A", "B"))
	assert.Same(t, ba, g.Edge("B", "A"))
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	mustNodes(t, g, "A")

	_, err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.AddEdge("Z", "A")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Zero(t, g.EdgeCount())
}

func TestSetDirected_AffectsOnlyNewEdges(t *testing.T) {
	g := core.NewGraph()
	mustNodes(t, g, "A", "B", "C")
	ab, _ := g.AddEdge("A", "B")

	g.SetDirected(true)
	bc, _ := g.AddEdge("B", "C")

	assert.False(t, ab.Directed)
	assert.True(t, bc.Directed)
	s := g.Stats()
	assert.Equal(t, 1, s.DirectedEdges)
	assert.Equal(t, 1, s.UndirectedEdges)
	assert.True(t, s.Directed)
}

func TestNeighbors_Sorted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustNodes(t, g, "A", "D", "C", "B")
	for _, to := range []string{"D", "B", "C"} {
		_, err := g.AddEdge("A", to)
		require.NoError(t, err)
	}

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, ids(nb))

	nb, err = g.Neighbors("D")
	require.NoError(t, err)
	assert.Empty(t, nb)

	_, err = g.Neighbors("nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestRemoveNode_RemovesIncidentEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustNodes(t, g, "A", "B", "C")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("A", "C")

	require.NoError(t, g.RemoveNode("B"))
	assert.False(t, g.HasNode("B"))
	require.Len(t, g.Edges(), 1)
	assert.Equal(t, "A -> C", g.Edges()[0].String())

	nb, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, nb)

	assert.ErrorIs(t, g.RemoveNode("B"), core.ErrNodeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	mustNodes(t, g, "A", "B")
	_, _ = g.AddEdge("A", "B")

	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.Zero(t, g.EdgeCount())
	assert.Nil(t, g.Edge("A", "B"))
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustNodes(t, g, "A", "B", "C")
	_, _ = g.AddEdge("C", "A")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	var got []string
	for _, e := range g.Edges() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"C -> A", "A -> B", "B -> C"}, got)
}

func TestIncidentEdgesAndInDegrees(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustNodes(t, g, "A", "B", "C")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("C", "B")

	inc, err := g.IncidentEdges("B")
	require.NoError(t, err)
	assert.Len(t, inc, 2)

	assert.Equal(t, map[string]int{"A": 0, "B": 2, "C": 0}, g.InDegrees())
}

func TestResetAndClone(t *testing.T) {
	g := core.NewGraph(core.WithName("demo"))
	mustNodes(t, g, "A", "B")
	e, _ := g.AddEdge("A", "B")

	a := g.Node("A")
	a.Visited, a.Discovery, a.Parent, a.State = true, 3, "B", core.Finished
	e.Traversed = true

	clone := g.Clone()
	g.Reset()

	assert.False(t, a.Visited)
	assert.Equal(t, core.Unset, a.Discovery)
	assert.Empty(t, a.Parent)
	assert.False(t, e.Traversed)

	// the clone keeps the metadata and is independent of the source
	ca := clone.Node("A")
	assert.True(t, ca.Visited)
	assert.NotSame(t, a, ca)
	assert.True(t, clone.Edge("B", "A").Traversed)
	assert.Equal(t, "demo", clone.Name())
}

func TestClearAndStatistics(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithName("G"))
	mustNodes(t, g, "A", "B")
	_, _ = g.AddEdge("A", "B")
	assert.Equal(t, "Nodes: 2, Edges: 1, Type: Directed", g.Statistics())
	assert.Equal(t, "G [Nodes: 2, Edges: 1, Type: Directed]", g.String())

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Directed())
}
