package traversal_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/traversal"
)

// ExampleTopological orders a small build graph with Kahn's algorithm.
func ExampleTopological() {
	g := core.NewGraph(core.WithDirected(true), core.WithName("build"))
	for _, id := range []string{"compile", "fetch", "link", "test"} {
		_, _ = g.AddNode(id, "")
	}
	_, _ = g.AddEdge("fetch", "compile")
	_, _ = g.AddEdge("compile", "link")
	_, _ = g.AddEdge("compile", "test")
	_, _ = g.AddEdge("link", "test")

	order, _ := traversal.Topological{Kahn: true}.Traverse(context.Background(), g, "", nil)
	for i, n := range order {
		fmt.Println(i, n.ID)
	}

	// Output:
	// 0 fetch
	// 1 compile
	// 2 link
	// 3 test
}

// ExampleBreadthFirst prints each node with its BFS level.
func ExampleBreadthFirst() {
	g := core.NewGraph()
	for _, id := range []string{"hub", "a", "b", "leaf"} {
		_, _ = g.AddNode(id, "")
	}
	_, _ = g.AddEdge("hub", "a")
	_, _ = g.AddEdge("hub", "b")
	_, _ = g.AddEdge("b", "leaf")

	order, _ := traversal.BreadthFirst{}.Traverse(context.Background(), g, "hub", nil)
	for _, n := range order {
		fmt.Printf("%s level=%d parent=%q\n", n.ID, n.Level, n.Parent)
	}

	// Output:
	// hub level=0 parent=""
	// a level=1 parent="hub"
	// b level=1 parent="hub"
	// leaf level=2 parent="b"
}
