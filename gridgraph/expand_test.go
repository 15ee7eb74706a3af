package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/gridgraph"
)

func TestCarve_OpenRouteCostsNothing(t *testing.T) {
	g, _ := gridgraph.Parse([]string{
		"S..",
		"##.",
		"E..",
	})
	path, cost, err := g.Carve(g.Start().Coord(), g.End().Coord())
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Len(t, path, 7)
	assert.Equal(t, g.Start().Coord(), path[0])
	assert.Equal(t, g.End().Coord(), path[len(path)-1])
}

func TestCarve_BreaksMinimumWalls(t *testing.T) {
	g, _ := gridgraph.Parse([]string{
		"S#.",
		"###",
		"..E",
	})
	path, cost, err := g.Carve(g.Start().Coord(), g.End().Coord())
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.True(t, g.Connected(g.Start().Coord(), g.End().Coord()))

	// consecutive route cells are 4-adjacent
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1.0, gridgraph.Manhattan(path[i-1], path[i]))
	}
}

func TestCarve_OutOfBounds(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2)
	_, _, err := g.Carve(gridgraph.Coord{0, 0}, gridgraph.Coord{2, 2})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
