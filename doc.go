// Package algoviz runs classic algorithms one observable step at a time.
//
// Three engines share one step protocol:
//
//	sorting/     bubble, quick, merge and heap sort over []sorting.Element
//	pathfinding/ A*, Dijkstra and BFS on a gridgraph.Grid
//	traversal/   DFS (recursive and iterative), BFS, Kahn and DFS-based
//	             topological sort on a core.Graph
//
// Every engine calls its notifier after each state change and then checks
// its context, so a run can be paused, resumed, paced and cancelled between
// any two steps. step.Controller owns that lifecycle; each engine's Gated
// adapter joins a display notifier to a run's checkpoint.
//
// Supporting packages:
//
//	core/      Graph, Node and Edge with traversal metadata, thread-safe
//	gridgraph/ Grid and Cell with search state and ASCII layouts
//	builder/   sample graphs, presets, random arrays and mazes
//	config/    YAML scenario files
//	step/      Controller, Run, Descriptor
//
// Quick ASCII example (A* on a 3×3 grid):
//
//	S.#        S*#
//	#.#   →    #*#
//	#.E        #*E
//
// The cmd/algoviz command runs any engine from the terminal:
//
//	go run ./cmd/algoviz sort 5 2 8 1 9
//	go run ./cmd/algoviz path -a bfs --rows 9 --cols 15
//	go run ./cmd/algoviz run -f scenario.yaml --interactive
package algoviz
