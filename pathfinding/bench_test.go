package pathfinding_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/pathfinding"
)

func benchmarkFind(b *testing.B, k pathfinding.Kind) {
	f, err := pathfinding.New(k)
	if err != nil {
		b.Fatal(err)
	}
	g, err := gridgraph.NewGrid(100, 100)
	if err != nil {
		b.Fatal(err)
	}
	_ = g.SetStart(0, 0)
	_ = g.SetEnd(99, 99)
	for r := 10; r < 90; r += 10 {
		for c := 0; c < 95; c++ {
			_ = g.SetWall(r, (c+r)%100, true)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.FindPath(context.Background(), g, nil)
	}
}

func BenchmarkAStar_100x100(b *testing.B)    { benchmarkFind(b, pathfinding.AStar) }
func BenchmarkDijkstra_100x100(b *testing.B) { benchmarkFind(b, pathfinding.Dijkstra) }
func BenchmarkBFS_100x100(b *testing.B)      { benchmarkFind(b, pathfinding.BFS) }
