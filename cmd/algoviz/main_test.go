package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/sorting"
)

// syncBuffer is written by the stdin reader goroutine, which may outlive run.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// execute runs one command line with stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut syncBuffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func scenario(name string) string {
	return filepath.Join("..", "..", "config", "testdata", name)
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, "algoviz", root.Use)
	assert.NotEmpty(t, root.Short)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"list", "sort", "path", "graph", "run", "compare"} {
		assert.Contains(t, names, want)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "", "list")
	require.NoError(t, err)
	for _, want := range []string{"sorting", "Bubble Sort", "A* Algorithm", "Topological Sort (Kahn's Algorithm)", "presets: sample, cycle"} {
		assert.Contains(t, out, want)
	}
}

func TestSort(t *testing.T) {
	out, _, err := execute(t, "", "sort", "5", "2", "8", "1", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Merge Sort (time O(n log n)")
	assert.Contains(t, out, "    1  ")
	assert.Contains(t, out, "sorted: [1 2 5 8 9]")
	assert.Contains(t, out, "steps in")
}

func TestSort_Quiet(t *testing.T) {
	for _, algo := range []string{"bubble", "quick", "merge", "heap"} {
		out, _, err := execute(t, "", "sort", "-q", "-a", algo, "3,1", "2")
		require.NoError(t, err, algo)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2, algo)
		assert.Equal(t, "sorted: [1 2 3]", lines[0], algo)
	}
}

func TestSort_Random(t *testing.T) {
	a, _, err := execute(t, "", "sort", "-q", "--random", "12", "--seed", "5")
	require.NoError(t, err)
	b, _, err := execute(t, "", "sort", "-q", "--random", "12", "--seed", "5")
	require.NoError(t, err)
	first := func(s string) string { return strings.SplitN(s, "\n", 2)[0] }
	assert.Equal(t, first(a), first(b))
}

func TestSort_Errors(t *testing.T) {
	_, _, err := execute(t, "", "sort", "1", "x")
	assert.ErrorContains(t, err, `"x" is not an integer`)

	_, _, err = execute(t, "", "sort", "-a", "bogo", "1", "2")
	assert.ErrorIs(t, err, config.ErrInvalidScenario)

	_, _, err = execute(t, "", "sort", "--delay", "-1s", "1")
	assert.ErrorContains(t, err, "--delay must not be negative")
}

func TestPath_Layout(t *testing.T) {
	layout := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(layout, []byte("S.E\n\n"), 0o644))

	out, _, err := execute(t, "", "path", "-q", "--layout", layout)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "path length: 3\nS*E\n"), out)

	out, _, err = execute(t, "", "path", "-a", "bfs", "--layout", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "Processing level 0 (1 cells)")
	assert.Contains(t, out, "path length: 3")

	_, _, err = execute(t, "", "path", "--layout", filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorContains(t, err, "open layout")
}

func TestPath_NoRoute(t *testing.T) {
	layout := filepath.Join(t.TempDir(), "walled.txt")
	require.NoError(t, os.WriteFile(layout, []byte("S#E\n"), 0o644))

	out, _, err := execute(t, "", "path", "-q", "-a", "bfs", "--layout", layout)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "no path (2 open regions)\nS#E\n"), out)
}

func TestPath_Maze(t *testing.T) {
	out, _, err := execute(t, "", "path", "-q", "-a", "dijkstra", "--rows", "9", "--cols", "11", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "path length: ")
}

func TestGraph(t *testing.T) {
	out, _, err := execute(t, "", "graph", "-q", "-a", "kahn", "--directed", "--edges", "a->b,b->c,a->c")
	require.NoError(t, err)
	assert.Contains(t, out, "order: a b c\n")

	// the undirected sample has no topological order
	out, _, err = execute(t, "", "graph", "-q", "-a", "kahn")
	require.NoError(t, err)
	assert.Contains(t, out, "order: (empty)\n")

	out, _, err = execute(t, "", "graph", "-a", "bfs", "--preset", "star", "--size", "4", "--start", "Center")
	require.NoError(t, err)
	assert.Contains(t, out, "Breadth-First Search")
	assert.Contains(t, out, "BFS traversal complete! Visited 4 nodes in 2 levels.")
}

func TestGraph_Layout(t *testing.T) {
	layout := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(layout, []byte("S.#\n#.E\n"), 0o644))

	out, _, err := execute(t, "", "graph", "-q", "-a", "bfs", "--layout", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "order: 0,0 0,1 1,1 1,2\n")

	out, _, err = execute(t, "", "graph", "-q", "-a", "dfs", "--layout", layout, "--start", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "order: 1,2 1,1 0,1 0,0\n")

	_, _, err = execute(t, "", "graph", "--layout", layout, "--directed")
	assert.ErrorIs(t, err, config.ErrInvalidScenario)
}

func TestGraph_UnknownPreset(t *testing.T) {
	_, _, err := execute(t, "", "graph", "--preset", "hexagon")
	assert.ErrorIs(t, err, config.ErrInvalidScenario)
}

func TestRunScenario(t *testing.T) {
	out, _, err := execute(t, "", "run", "-q", "--delay", "0", "-f", scenario("sort.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "sorted: [1 2 5 8 9]")

	out, _, err = execute(t, "", "run", "-q", "-f", scenario("graph.yaml"), "-a", "topo-dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "order: ")
	assert.NotContains(t, out, "(empty)")

	_, _, err = execute(t, "", "run")
	assert.ErrorContains(t, err, `required flag(s) "file" not set`)
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "", "compare", "-f", scenario("grid.yaml"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ALGORITHM"))
	for i, name := range []string{"astar", "dijkstra", "bfs"} {
		assert.True(t, strings.HasPrefix(lines[i+1], name), lines[i+1])
		assert.Contains(t, lines[i+1], "finished")
		assert.True(t, strings.HasSuffix(lines[i+1], "path length: 9"), lines[i+1])
	}

	out, _, err = execute(t, "", "compare", "--delay", "0", "-f", scenario("sort.yaml"), "-a", "quick,heap")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "sorted: [1 2 5 8 9]"))
}

func TestInteractive_Cancel(t *testing.T) {
	out, _, err := execute(t, "c\n", "sort", "-q", "-i", "--delay", "1s", "--random", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled after")
	assert.NotContains(t, out, "sorted:")
}

func TestInteractive_PauseResume(t *testing.T) {
	out, errOut, err := execute(t, "p\nhello\nr\n", "sort", "-q", "-i", "--log-level", "debug", "3", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "sorted: [1 2 3]")
	assert.Contains(t, errOut, "run started")
}

func TestInteractive_Pacing(t *testing.T) {
	out, errOut, err := execute(t, "+\n+\n", "sort", "-q", "-i", "--log-level", "info", "--delay", "4ms", "4", "3", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "sorted: [1 2 3 4]")
	assert.Contains(t, errOut, "run finished")
}

func TestLogFlags(t *testing.T) {
	_, _, err := execute(t, "", "list", "--log-level", "loud")
	assert.ErrorContains(t, err, `unknown log level "loud"`)

	_, _, err = execute(t, "", "list", "--log-format", "xml")
	assert.ErrorContains(t, err, `unknown log format "xml"`)

	_, errOut, err := execute(t, "", "sort", "-q", "--log-level", "info", "--log-format", "json", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"run finished"`)
	assert.Contains(t, errOut, `"algorithm":"merge"`)
}

func TestRenderElements(t *testing.T) {
	elems := []sorting.Element{
		{Value: 5, Role: sorting.RoleCompared},
		{Value: 2, Role: sorting.RoleSwapped},
		{Value: 8, Role: sorting.RolePivot},
		{Value: 1, Role: sorting.RoleSorted},
		{Value: 9, Role: sorting.RoleActive},
		{Value: 3},
	}
	assert.Equal(t, "(5) <2> [8] 1* ~9 3", renderElements(elems))
}

func TestParseValues(t *testing.T) {
	got, err := parseValues([]string{"5, 2", "8", ",", "-1"})
	require.NoError(t, err)
	if diff := cmp.Diff([]int{5, 2, 8, -1}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}
