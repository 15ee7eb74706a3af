package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/algoviz/core"
)

// BenchmarkAddEdge measures building a path graph of 1000 nodes.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1000
	names := make([]string, n)
	for i := range names {
		names[i] = "N" + strconv.Itoa(i)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for _, id := range names {
			_, _ = g.AddNode(id, "")
		}
		for j := 1; j < n; j++ {
			_, _ = g.AddEdge(names[j-1], names[j])
		}
	}
}

// BenchmarkNeighbors measures sorted neighbor lookup on a 100-star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	_, _ = g.AddNode("hub", "")
	for i := 0; i < 100; i++ {
		id := "L" + strconv.Itoa(i)
		_, _ = g.AddNode(id, "")
		_, _ = g.AddEdge("hub", id)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("hub")
	}
}
