// Package builder_test checks topology, counts, orientation and weights for
// every Constructor.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

func edgeSet(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		m[edgeKey{e.From, e.To}] = e.Weight
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctor     builder.Constructor
		directed bool
		wantV    int
		wantE    int
		mustHave []edgeKey
	}{
		{"Sample/undirected", builder.Sample(), false, 6, 8, []edgeKey{{"A", "B"}, {"E", "F"}}},
		{"Sample/directed", builder.Sample(), true, 6, 9, []edgeKey{{"F", "A"}}},
		{"Cycle(5)", builder.Cycle(5), false, 5, 5, []edgeKey{{"0", "1"}, {"4", "0"}}},
		{"Path(4)", builder.Path(4), true, 4, 3, []edgeKey{{"0", "1"}, {"2", "3"}}},
		{"Star(4)", builder.Star(4), false, 4, 3, []edgeKey{{"Center", "1"}, {"Center", "3"}}},
		{"Complete(4)", builder.Complete(4), true, 4, 6, []edgeKey{{"0", "3"}, {"2", "3"}}},
		{"Grid(2,3)", builder.Grid(2, 3), false, 6, 7, []edgeKey{{"0,0", "0,1"}, {"0,2", "1,2"}}},
		{"Tree(6)", builder.Tree(6), true, 6, 5, []edgeKey{{"0", "1"}, {"0", "2"}, {"2", "5"}}},
		{"RandomDAG(5,1)", builder.RandomDAG(5, 1), true, 5, 10, []edgeKey{{"0", "4"}}},
		{"RandomDAG(5,0)", builder.RandomDAG(5, 0), true, 5, 0, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(tc.directed)}, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			edges := edgeSet(g)
			for _, k := range tc.mustHave {
				w, ok := edges[k]
				if assert.True(t, ok, "missing edge %v", k) {
					assert.Equal(t, core.DefaultWeight, w)
				}
			}
		})
	}
}

func TestBuilders_TooSmall(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Cycle":     builder.Cycle(2),
		"Path":      builder.Path(1),
		"Star":      builder.Star(1),
		"Complete":  builder.Complete(0),
		"Grid":      builder.Grid(0, 3),
		"Tree":      builder.Tree(0),
		"RandomDAG": builder.RandomDAG(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_ComposesConstructors(t *testing.T) {
	// Path(3) and Cycle(3) share IDs 0..2; existing nodes and edges are reused.
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRandomDAG(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil, builder.RandomDAG(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomDAG(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSymbolIDs()},
			builder.RandomDAG(12, 0.4),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(7), build(7)
	assert.Equal(t, edgeSet(a), edgeSet(b))

	// every edge runs from a lower to a higher letter
	for _, e := range a.Edges() {
		assert.Less(t, e.From, e.To)
	}
}

func TestPreset(t *testing.T) {
	t.Parallel()

	for _, name := range builder.PresetNames() {
		ctor, err := builder.Preset(name, 4)
		require.NoError(t, err, name)
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.NoError(t, err, name)
		assert.Positive(t, g.NodeCount(), name)
	}

	_, err := builder.Preset("hexagon", 4)
	assert.ErrorIs(t, err, builder.ErrUnknownPreset)
}
