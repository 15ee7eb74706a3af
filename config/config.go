// Package config loads scenario files: YAML documents that pick an engine,
// an algorithm, a pacing delay and the input to run it on.
//
//	engine: pathfinding
//	algorithm: astar
//	delay: 25ms
//	pathfinding:
//	  layout: ["S....", ".###.", "....E"]
//
// Parse rejects unknown keys. Every validation failure wraps
// ErrInvalidScenario.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/pathfinding"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/traversal"
)

// ErrInvalidScenario indicates a scenario that cannot be run.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Engine names one of the three algorithm families.
type Engine string

const (
	EngineSorting     Engine = "sorting"
	EnginePathfinding Engine = "pathfinding"
	EngineTraversal   Engine = "traversal"
)

// Engines lists every engine in menu order.
func Engines() []Engine { return []Engine{EngineSorting, EnginePathfinding, EngineTraversal} }

// Scenario is one runnable configuration.
type Scenario struct {
	Engine    Engine `yaml:"engine"`
	Algorithm string `yaml:"algorithm"`

	// StepDelay paces the run between steps; read it through Delay.
	StepDelay time.Duration `yaml:"delay"`

	Sorting     *SortingInput     `yaml:"sorting,omitempty"`
	Pathfinding *PathfindingInput `yaml:"pathfinding,omitempty"`
	Traversal   *TraversalInput   `yaml:"traversal,omitempty"`
}

// SortingInput is either explicit Values or a Random draw.
type SortingInput struct {
	Values []int        `yaml:"values,omitempty"`
	Random *RandomInput `yaml:"random,omitempty"`
}

// RandomInput draws Count values from [1, Max]; Max defaults to Count.
type RandomInput struct {
	Count int   `yaml:"count"`
	Max   int   `yaml:"max,omitempty"`
	Seed  int64 `yaml:"seed,omitempty"`
}

// Point is a grid coordinate.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// PathfindingInput is exactly one of a textual Layout, explicit
// Rows/Cols/Start/End/Walls, or a random Maze.
type PathfindingInput struct {
	Layout []string `yaml:"layout,omitempty"`

	Rows  int     `yaml:"rows,omitempty"`
	Cols  int     `yaml:"cols,omitempty"`
	Start *Point  `yaml:"start,omitempty"`
	End   *Point  `yaml:"end,omitempty"`
	Walls []Point `yaml:"walls,omitempty"`

	Maze *MazeInput `yaml:"maze,omitempty"`
}

// MazeInput parameterises builder.Maze.
type MazeInput struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Density  float64 `yaml:"density"`
	Seed     int64   `yaml:"seed,omitempty"`
	Solvable bool    `yaml:"solvable,omitempty"`
}

// TraversalInput is exactly one of explicit Nodes/Edges, a named Preset or
// a grid Layout. Edges are written "A->B"; "A-B" is accepted for undirected
// graphs. A Layout becomes the undirected graph of its open cells, with
// node IDs "r,c" and the S cell as the default start.
type TraversalInput struct {
	Directed bool     `yaml:"directed"`
	Nodes    []string `yaml:"nodes,omitempty"`
	Edges    []string `yaml:"edges,omitempty"`

	Preset string `yaml:"preset,omitempty"`
	Size   int    `yaml:"size,omitempty"`
	Seed   int64  `yaml:"seed,omitempty"`

	Layout []string `yaml:"layout,omitempty"`

	Start string `yaml:"start,omitempty"`
}

// DefaultPresetSize is used when a preset omits size.
const DefaultPresetSize = 6

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %v: %w", err, ErrInvalidScenario)
	}
	sc.Engine = Engine(strings.ToLower(strings.TrimSpace(string(sc.Engine))))
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Marshal renders sc back to YAML.
func (sc *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(sc)
}

// Delay returns the pacing delay, never negative.
func (sc *Scenario) Delay() time.Duration {
	if sc.StepDelay < 0 {
		return 0
	}
	return sc.StepDelay
}

// Name is a short label such as "sorting/merge".
func (sc *Scenario) Name() string {
	return string(sc.Engine) + "/" + sc.Algorithm
}

// Validate checks the engine, the algorithm name and that the engine's
// input section is present and unambiguous.
func (sc *Scenario) Validate() error {
	if sc.StepDelay < 0 {
		return invalid("delay %v is negative", sc.StepDelay)
	}
	switch sc.Engine {
	case EngineSorting:
		if _, err := sorting.ParseKind(sc.Algorithm); err != nil {
			return invalid("algorithm: %v", err)
		}
		return sc.validateSorting()
	case EnginePathfinding:
		if _, err := pathfinding.ParseKind(sc.Algorithm); err != nil {
			return invalid("algorithm: %v", err)
		}
		return sc.validatePathfinding()
	case EngineTraversal:
		if _, err := traversal.ParseKind(sc.Algorithm); err != nil {
			return invalid("algorithm: %v", err)
		}
		return sc.validateTraversal()
	case "":
		return invalid("engine is required")
	default:
		return invalid("unknown engine %q", sc.Engine)
	}
}

func (sc *Scenario) validateSorting() error {
	in := sc.Sorting
	switch {
	case in == nil:
		return invalid("sorting section is required")
	case in.Values != nil && in.Random != nil:
		return invalid("sorting: values and random are exclusive")
	case in.Random != nil && in.Random.Count < 0:
		return invalid("sorting: random.count %d is negative", in.Random.Count)
	case in.Random != nil && in.Random.Max < 0:
		return invalid("sorting: random.max %d is negative", in.Random.Max)
	}
	return nil
}

func (sc *Scenario) validatePathfinding() error {
	in := sc.Pathfinding
	if in == nil {
		return invalid("pathfinding section is required")
	}
	sources := 0
	if len(in.Layout) > 0 {
		sources++
	}
	if in.Rows > 0 || in.Cols > 0 {
		sources++
	}
	if in.Maze != nil {
		sources++
	}
	if sources != 1 {
		return invalid("pathfinding: exactly one of layout, rows/cols or maze is required")
	}
	if (in.Start != nil || in.End != nil || len(in.Walls) > 0) && (in.Rows == 0 || in.Cols == 0) {
		return invalid("pathfinding: start, end and walls need rows and cols")
	}
	return nil
}

func (sc *Scenario) validateTraversal() error {
	in := sc.Traversal
	if in == nil {
		return invalid("traversal section is required")
	}
	explicit := len(in.Nodes) > 0 || len(in.Edges) > 0
	switch {
	case in.Preset != "" && explicit:
		return invalid("traversal: preset and nodes/edges are exclusive")
	case len(in.Layout) > 0 && (explicit || in.Preset != ""):
		return invalid("traversal: layout excludes preset and nodes/edges")
	case len(in.Layout) > 0 && in.Directed:
		return invalid("traversal: layout graphs are undirected")
	case in.Preset == "" && !explicit && len(in.Layout) == 0:
		return invalid("traversal: nodes, edges, preset or layout is required")
	}
	for _, e := range in.Edges {
		if _, _, err := parseEdge(e); err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidScenario)
}

// parseEdge splits "A->B", "A -> B", "A--B" or "A-B".
func parseEdge(s string) (from, to string, err error) {
	for _, sep := range []string{"->", "--", "-"} {
		if i := strings.Index(s, sep); i > 0 {
			from = strings.TrimSpace(s[:i])
			to = strings.TrimSpace(s[i+len(sep):])
			if from != "" && to != "" {
				return from, to, nil
			}
			break
		}
	}
	return "", "", invalid("traversal: edge %q is not of the form A->B", s)
}

// presetSize returns Size or DefaultPresetSize.
func (in *TraversalInput) presetSize() int {
	if in.Size > 0 {
		return in.Size
	}
	return DefaultPresetSize
}

// presetOptions gives presets a seeded RNG and lettered IDs.
func (in *TraversalInput) presetOptions() []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(in.Seed), builder.WithExcelColumnIDs()}
}
