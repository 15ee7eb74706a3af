// Package builder produces ready-made inputs for the three engines: graph
// fixtures for traversal, random value slices for sorting and random mazes
// for pathfinding.
//
// Graphs are assembled by BuildGraph from Constructors applied in order:
//
//   - Sample():           the six-node A..F demo graph (F→A closes a cycle when directed).
//   - Cycle(n), Path(n), Star(n), Complete(n), Grid(rows, cols), Tree(n).
//   - RandomDAG(n, p):    every pair i<j joined with probability p.
//
// On a directed graph every edge runs from the lower to the higher vertex
// index, so every topology except Cycle and the directed Sample is acyclic.
//
// Options are resolved once into an immutable builderConfig:
//
//   - WithIDScheme(fn), WithSymbolIDs(), WithExcelColumnIDs(), WithSymbNumb(prefix).
//   - WithSeed(seed), WithRand(r) for the stochastic paths.
//   - WithSolvableMaze() to carve a start→end route through Maze walls.
//
// Determinism: equal inputs, options, seed and constructor order yield equal
// graphs, slices and grids.
//
// Option constructors panic on invalid arguments; constructors and the data
// helpers return sentinel errors and never panic.
package builder
