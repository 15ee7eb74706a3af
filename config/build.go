package config

import (
	"fmt"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/gridgraph"
	"github.com/katalvlaran/algoviz/sorting"
)

// BuildElements materialises the sorting input.
func (sc *Scenario) BuildElements() ([]sorting.Element, error) {
	in := sc.Sorting
	if in == nil {
		return nil, invalid("sorting section is required")
	}
	if in.Random == nil {
		return sorting.NewElements(in.Values), nil
	}
	hi := in.Random.Max
	if hi == 0 {
		hi = in.Random.Count
	}
	if hi == 0 {
		return []sorting.Element{}, nil
	}
	vals, err := builder.Values(in.Random.Count, hi, in.Random.Seed)
	if err != nil {
		return nil, fmt.Errorf("sorting.random: %w", err)
	}

	return sorting.NewElements(vals), nil
}

// BuildGrid materialises the pathfinding input.
func (sc *Scenario) BuildGrid() (*gridgraph.Grid, error) {
	in := sc.Pathfinding
	if in == nil {
		return nil, invalid("pathfinding section is required")
	}

	switch {
	case len(in.Layout) > 0:
		g, err := gridgraph.Parse(in.Layout)
		if err != nil {
			return nil, fmt.Errorf("pathfinding.layout: %v: %w", err, ErrInvalidScenario)
		}
		return g, nil

	case in.Maze != nil:
		var opts []builder.BuilderOption
		if in.Maze.Solvable {
			opts = append(opts, builder.WithSolvableMaze())
		}
		g, err := builder.Maze(in.Maze.Rows, in.Maze.Cols, in.Maze.Density, in.Maze.Seed, opts...)
		if err != nil {
			return nil, fmt.Errorf("pathfinding.maze: %v: %w", err, ErrInvalidScenario)
		}
		return g, nil
	}

	g, err := gridgraph.NewGrid(in.Rows, in.Cols)
	if err != nil {
		return nil, fmt.Errorf("pathfinding: %v: %w", err, ErrInvalidScenario)
	}
	for _, w := range in.Walls {
		if err = g.SetWall(w.Row, w.Col, true); err != nil {
			return nil, fmt.Errorf("pathfinding.walls: %v: %w", err, ErrInvalidScenario)
		}
	}
	if in.Start != nil {
		if err = g.SetStart(in.Start.Row, in.Start.Col); err != nil {
			return nil, fmt.Errorf("pathfinding.start: %v: %w", err, ErrInvalidScenario)
		}
	}
	if in.End != nil {
		if err = g.SetEnd(in.End.Row, in.End.Col); err != nil {
			return nil, fmt.Errorf("pathfinding.end: %v: %w", err, ErrInvalidScenario)
		}
	}

	return g, nil
}

// BuildGraph materialises the traversal input. Nodes named only in edges
// are added in order of first appearance.
func (sc *Scenario) BuildGraph() (*core.Graph, error) {
	in := sc.Traversal
	if in == nil {
		return nil, invalid("traversal section is required")
	}
	if len(in.Layout) > 0 {
		grid, err := gridgraph.Parse(in.Layout)
		if err != nil {
			return nil, fmt.Errorf("traversal.layout: %v: %w", err, ErrInvalidScenario)
		}
		return grid.ToGraph(), nil
	}

	gopts := []core.GraphOption{core.WithDirected(in.Directed), core.WithName(sc.Name())}

	if in.Preset != "" {
		ctor, err := builder.Preset(in.Preset, in.presetSize())
		if err != nil {
			return nil, fmt.Errorf("traversal.preset: %v: %w", err, ErrInvalidScenario)
		}
		g, err := builder.BuildGraph(gopts, in.presetOptions(), ctor)
		if err != nil {
			return nil, fmt.Errorf("traversal.preset: %v: %w", err, ErrInvalidScenario)
		}
		return g, nil
	}

	g := core.NewGraph(gopts...)
	for _, id := range in.Nodes {
		if _, err := g.AddNode(id, ""); err != nil {
			return nil, fmt.Errorf("traversal.nodes: %v: %w", err, ErrInvalidScenario)
		}
	}
	for _, s := range in.Edges {
		from, to, err := parseEdge(s)
		if err != nil {
			return nil, err
		}
		for _, id := range []string{from, to} {
			if _, err = g.AddNode(id, ""); err != nil {
				return nil, fmt.Errorf("traversal.edges: %v: %w", err, ErrInvalidScenario)
			}
		}
		if _, err = g.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("traversal.edges: %q: %v: %w", s, err, ErrInvalidScenario)
		}
	}

	return g, nil
}

// StartNode returns the configured traversal start. Layout graphs fall back
// to the ID of the S cell; otherwise the result may be "".
func (sc *Scenario) StartNode() string {
	in := sc.Traversal
	if in == nil {
		return ""
	}
	if in.Start != "" || len(in.Layout) == 0 {
		return in.Start
	}
	grid, err := gridgraph.Parse(in.Layout)
	if err != nil || grid.Start() == nil {
		return ""
	}
	return gridgraph.NodeID(grid.Start().Coord())
}
