package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/pathfinding"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/traversal"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List engines, algorithms and graph presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, e := range config.Engines() {
				fmt.Fprintf(tw, "%s\n", e)
				for _, name := range algorithmNames(e) {
					d, err := descriptor(e, name)
					if err != nil {
						return err
					}
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", name, d.Name, d.TimeComplexity, d.SpaceComplexity)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "presets: %s\n", strings.Join(builder.PresetNames(), ", "))
			return nil
		},
	}
}

func newSortCmd(a *app) *cobra.Command {
	var (
		algo   string
		random int
		hi     int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort a list of integers step by step",
		Example: `  algoviz sort 5 2 8 1 9
  algoviz sort -a heap --random 30 --seed 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &config.SortingInput{}
			if len(args) > 0 {
				values, err := parseValues(args)
				if err != nil {
					return err
				}
				in.Values = values
			} else {
				if random == 0 {
					random = 20
				}
				in.Random = &config.RandomInput{Count: random, Max: hi, Seed: seed}
			}
			return a.runScenario(cmd, &config.Scenario{Engine: config.EngineSorting, Algorithm: algo, Sorting: in})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&algo, "algo", "a", sorting.Merge.String(), "algorithm: "+strings.Join(algorithmNames(config.EngineSorting), ", "))
	f.IntVar(&random, "random", 0, "sort this many random values instead of arguments")
	f.IntVar(&hi, "max", 0, "largest random value (default: the count)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var (
		algo     string
		layout   string
		maze     config.MazeInput
		solvable bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Search a grid from S to E",
		Long: `path searches a grid from its start to its end cell.

The grid is read from --layout, a text file of '.', '#', 'S' and 'E'
rows, or generated as a random maze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := &config.PathfindingInput{}
			if layout != "" {
				lines, err := readLayout(layout)
				if err != nil {
					return err
				}
				in.Layout = lines
			} else {
				m := maze
				m.Solvable = solvable
				in.Maze = &m
			}
			return a.runScenario(cmd, &config.Scenario{Engine: config.EnginePathfinding, Algorithm: algo, Pathfinding: in})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&algo, "algo", "a", pathfinding.AStar.String(), "algorithm: "+strings.Join(algorithmNames(config.EnginePathfinding), ", "))
	f.StringVar(&layout, "layout", "", "grid layout file")
	f.IntVar(&maze.Rows, "rows", 15, "maze rows")
	f.IntVar(&maze.Cols, "cols", 25, "maze columns")
	f.Float64Var(&maze.Density, "density", 0.3, "maze wall probability")
	f.Int64Var(&maze.Seed, "seed", 1, "maze seed")
	f.BoolVar(&solvable, "solvable", true, "clear walls until the maze has a route")
	return cmd
}

func newGraphCmd(a *app) *cobra.Command {
	var (
		algo   string
		layout string
		in     config.TraversalInput
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Traverse or topologically sort a graph",
		Example: `  algoviz graph -a bfs --preset tree --size 7
  algoviz graph -a kahn --directed --edges "a->b,b->c,a->c"
  algoviz graph -a bfs --layout maze.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := in
			switch {
			case layout != "":
				lines, err := readLayout(layout)
				if err != nil {
					return err
				}
				t.Layout = lines
				t.Preset = ""
			case len(t.Edges) > 0:
				t.Preset = ""
			}
			return a.runScenario(cmd, &config.Scenario{Engine: config.EngineTraversal, Algorithm: algo, Traversal: &t})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&algo, "algo", "a", traversal.DFS.String(), "algorithm: "+strings.Join(algorithmNames(config.EngineTraversal), ", "))
	f.StringVar(&in.Preset, "preset", "sample", "graph preset: "+strings.Join(builder.PresetNames(), ", "))
	f.IntVar(&in.Size, "size", config.DefaultPresetSize, "preset size")
	f.Int64Var(&in.Seed, "seed", 1, "seed of the random preset")
	f.BoolVar(&in.Directed, "directed", false, "build a directed graph")
	f.StringSliceVar(&in.Edges, "edges", nil, `explicit edges such as "A->B,B->C"; overrides --preset`)
	f.StringVar(&layout, "layout", "", `grid layout file; traverses its open cells as nodes "r,c"`)
	f.StringVar(&in.Start, "start", "", "start node (default: the S cell, else the first node)")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var (
		file string
		algo string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a YAML scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := config.Load(file)
			if err != nil {
				return err
			}
			if algo != "" {
				sc.Algorithm = algo
			}
			return a.runScenario(cmd, sc)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario file")
	cmd.Flags().StringVarP(&algo, "algo", "a", "", "override the scenario algorithm")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// runScenario validates sc and executes its single algorithm. The scenario
// delay applies unless --delay was given.
func (a *app) runScenario(cmd *cobra.Command, sc *config.Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	if !cmd.Flags().Changed("delay") {
		a.delay = sc.Delay()
	}
	tasks, err := buildTasks(sc, []string{sc.Algorithm})
	if err != nil {
		return err
	}
	return a.execute(cmd.Context(), tasks[0])
}

// buildTasks materialises sc's input once and binds an independent copy of
// it to each named algorithm.
func buildTasks(sc *config.Scenario, algos []string) ([]task, error) {
	tasks := make([]task, 0, len(algos))
	switch sc.Engine {
	case config.EngineSorting:
		elems, err := sc.BuildElements()
		if err != nil {
			return nil, err
		}
		values := sorting.Values(elems)
		for _, name := range algos {
			k, err := sorting.ParseKind(name)
			if err != nil {
				return nil, err
			}
			t, err := sortTask(k, values)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
	case config.EnginePathfinding:
		g, err := sc.BuildGrid()
		if err != nil {
			return nil, err
		}
		for _, name := range algos {
			k, err := pathfinding.ParseKind(name)
			if err != nil {
				return nil, err
			}
			t, err := pathTask(k, g.Clone())
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
	case config.EngineTraversal:
		g, err := sc.BuildGraph()
		if err != nil {
			return nil, err
		}
		start := sc.StartNode()
		if nodes := g.Nodes(); start == "" && len(nodes) > 0 {
			start = nodes[0].ID
		}
		for _, name := range algos {
			k, err := traversal.ParseKind(name)
			if err != nil {
				return nil, err
			}
			t, err := traversalTask(k, g.Clone(), start)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
	default:
		return nil, fmt.Errorf("unknown engine %q: %w", sc.Engine, config.ErrInvalidScenario)
	}
	return tasks, nil
}

// algorithmNames lists the kind names of engine e in menu order.
func algorithmNames(e config.Engine) []string {
	var names []string
	switch e {
	case config.EngineSorting:
		for _, k := range sorting.All() {
			names = append(names, k.String())
		}
	case config.EnginePathfinding:
		for _, k := range pathfinding.All() {
			names = append(names, k.String())
		}
	case config.EngineTraversal:
		for _, k := range traversal.All() {
			names = append(names, k.String())
		}
	}
	return names
}

func descriptor(e config.Engine, name string) (step.Descriptor, error) {
	switch e {
	case config.EngineSorting:
		k, err := sorting.ParseKind(name)
		if err != nil {
			return step.Descriptor{}, err
		}
		s, err := sorting.New(k)
		if err != nil {
			return step.Descriptor{}, err
		}
		return s.Descriptor(), nil
	case config.EnginePathfinding:
		k, err := pathfinding.ParseKind(name)
		if err != nil {
			return step.Descriptor{}, err
		}
		p, err := pathfinding.New(k)
		if err != nil {
			return step.Descriptor{}, err
		}
		return p.Descriptor(), nil
	default:
		k, err := traversal.ParseKind(name)
		if err != nil {
			return step.Descriptor{}, err
		}
		t, err := traversal.New(k)
		if err != nil {
			return step.Descriptor{}, err
		}
		return t.Descriptor(), nil
	}
}

// parseValues accepts integers as separate arguments or comma-separated.
func parseValues(args []string) ([]int, error) {
	var values []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("value %q is not an integer", field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// readLayout returns the non-blank lines of a layout file.
func readLayout(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return lines, nil
}
