package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/sorting"
)

func TestLoad_Testdata(t *testing.T) {
	tests := []struct {
		file   string
		engine config.Engine
		algo   string
		delay  time.Duration
	}{
		{"sort.yaml", config.EngineSorting, "merge", 10 * time.Millisecond},
		{"maze.yaml", config.EnginePathfinding, "astar", 25 * time.Millisecond},
		{"grid.yaml", config.EnginePathfinding, "bfs", 0},
		{"graph.yaml", config.EngineTraversal, "kahn", 0},
		{"preset.yaml", config.EngineTraversal, "dfs", 0},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			sc, err := config.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.engine, sc.Engine)
			assert.Equal(t, tc.algo, sc.Algorithm)
			assert.Equal(t, tc.delay, sc.Delay())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidScenario)
}

func TestBuildElements(t *testing.T) {
	sc, err := config.Load(filepath.Join("testdata", "sort.yaml"))
	require.NoError(t, err)
	elems, err := sc.BuildElements()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 8, 1, 9}, sorting.Values(elems))

	sc, err = config.Parse([]byte("engine: sorting\nalgorithm: heap\nsorting: {random: {count: 20, seed: 3}}\n"))
	require.NoError(t, err)
	a, err := sc.BuildElements()
	require.NoError(t, err)
	b, err := sc.BuildElements()
	require.NoError(t, err)
	require.Len(t, a, 20)
	assert.Equal(t, sorting.Values(a), sorting.Values(b))
	for _, e := range a {
		assert.GreaterOrEqual(t, e.Value, 1)
		assert.LessOrEqual(t, e.Value, 20)
	}
}

func TestBuildGrid(t *testing.T) {
	sc, err := config.Load(filepath.Join("testdata", "grid.yaml"))
	require.NoError(t, err)
	g, err := sc.BuildGrid()
	require.NoError(t, err)
	want := "S....\n.....\n####.\n.....\n....E"
	if diff := cmp.Diff(want, g.String()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	sc, err = config.Load(filepath.Join("testdata", "maze.yaml"))
	require.NoError(t, err)
	g, err = sc.BuildGrid()
	require.NoError(t, err)
	assert.Equal(t, 15, g.Rows())
	assert.Equal(t, 25, g.Cols())
	assert.True(t, g.Connected(g.Start().Coord(), g.End().Coord()))

	sc, err = config.Parse([]byte("engine: pathfinding\nalgorithm: dijkstra\npathfinding:\n  layout: [\"S.#\", \"..E\"]\n"))
	require.NoError(t, err)
	g, err = sc.BuildGrid()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Coord{Row: 1, Col: 2}, g.End().Coord())
}

func TestBuildGrid_BadCoordinates(t *testing.T) {
	sc, err := config.Parse([]byte(`
engine: pathfinding
algorithm: bfs
pathfinding:
  rows: 3
  cols: 3
  start: {row: 5, col: 0}
`))
	require.NoError(t, err)
	_, err = sc.BuildGrid()
	assert.ErrorIs(t, err, config.ErrInvalidScenario)
}

func TestBuildGraph(t *testing.T) {
	sc, err := config.Load(filepath.Join("testdata", "graph.yaml"))
	require.NoError(t, err)
	g, err := sc.BuildGraph()
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.NotNil(t, g.Edge("trousers", "shoes"))
	assert.Equal(t, "traversal/kahn", g.Name())

	sc, err = config.Load(filepath.Join("testdata", "preset.yaml"))
	require.NoError(t, err)
	g, err = sc.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, "Nodes: 6, Edges: 8, Type: Undirected", g.Statistics())
	assert.Equal(t, "A", sc.StartNode())
}

func TestBuildGraph_EdgesOnly(t *testing.T) {
	sc, err := config.Parse([]byte(`
engine: traversal
algorithm: bfs
traversal:
  edges: ["x - y", "y--z", "z->x"]
  start: x
`))
	require.NoError(t, err)
	g, err := sc.BuildGraph()
	require.NoError(t, err)
	ids := []string{}
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"x", "y", "z"}, ids)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuildGraph_Layout(t *testing.T) {
	sc, err := config.Parse([]byte(`
engine: traversal
algorithm: bfs
traversal:
  layout: ["S.#", "#.E"]
`))
	require.NoError(t, err)
	g, err := sc.BuildGraph()
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.NotNil(t, g.Edge("0,1", "1,1"))
	assert.Equal(t, "0,0", sc.StartNode())

	sc.Traversal.Start = "1,2"
	assert.Equal(t, "1,2", sc.StartNode())

	sc, err = config.Parse([]byte("engine: traversal\nalgorithm: dfs\ntraversal: {layout: [\"..\", \"..\"]}\n"))
	require.NoError(t, err)
	assert.Equal(t, "", sc.StartNode())

	sc, err = config.Parse([]byte("engine: traversal\nalgorithm: dfs\ntraversal: {layout: [\"S.\", \"x.\"]}\n"))
	require.NoError(t, err)
	_, err = sc.BuildGraph()
	assert.ErrorIs(t, err, config.ErrInvalidScenario)
}

func TestBuildGraph_Presets(t *testing.T) {
	for _, preset := range []string{"cycle", "path", "star", "complete", "grid", "tree", "random"} {
		sc, err := config.Parse([]byte("engine: traversal\nalgorithm: bfs\ntraversal: {preset: " + preset + ", size: 4, seed: 9}\n"))
		require.NoError(t, err, preset)
		g, err := sc.BuildGraph()
		require.NoError(t, err, preset)
		assert.Positive(t, g.NodeCount(), preset)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"no engine":        "algorithm: merge\nsorting: {values: [1]}\n",
		"unknown engine":   "engine: painting\nalgorithm: merge\n",
		"unknown algo":     "engine: sorting\nalgorithm: bogo\nsorting: {values: [1]}\n",
		"missing section":  "engine: sorting\nalgorithm: merge\n",
		"both inputs":      "engine: sorting\nalgorithm: merge\nsorting: {values: [1], random: {count: 3}}\n",
		"negative delay":   "engine: sorting\nalgorithm: merge\ndelay: -5ms\nsorting: {values: [1]}\n",
		"unknown key":      "engine: sorting\nalgorithm: merge\nsortng: {values: [1]}\n",
		"no grid source":   "engine: pathfinding\nalgorithm: bfs\npathfinding: {}\n",
		"two grid sources": "engine: pathfinding\nalgorithm: bfs\npathfinding: {layout: [\"SE\"], maze: {rows: 5, cols: 5}}\n",
		"start w/o size":   "engine: pathfinding\nalgorithm: bfs\npathfinding: {layout: [\"SE\"], start: {row: 0, col: 0}}\n",
		"preset+nodes":     "engine: traversal\nalgorithm: dfs\ntraversal: {preset: sample, nodes: [A]}\n",
		"empty graph":      "engine: traversal\nalgorithm: dfs\ntraversal: {directed: true}\n",
		"bad edge":         "engine: traversal\nalgorithm: dfs\ntraversal: {edges: [\"A>B\"]}\n",
		"layout+preset":    "engine: traversal\nalgorithm: dfs\ntraversal: {layout: [\"S.\"], preset: path}\n",
		"directed layout":  "engine: traversal\nalgorithm: dfs\ntraversal: {layout: [\"S.\"], directed: true}\n",
		"bad yaml":         "engine: [sorting\n",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalidScenario, name)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	sc, err := config.Load(filepath.Join("testdata", "maze.yaml"))
	require.NoError(t, err)
	data, err := sc.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	back, err := config.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(sc, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
