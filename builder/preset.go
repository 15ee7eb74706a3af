package builder

import (
	"fmt"
	"strings"
)

// DefaultRandomDensity is the edge probability of the "random" preset.
const DefaultRandomDensity = 0.3

// presetNames lists Preset names in menu order.
var presetNames = []string{"sample", "cycle", "path", "star", "complete", "grid", "tree", "random"}

// PresetNames returns every name Preset accepts.
func PresetNames() []string {
	out := make([]string, len(presetNames))
	copy(out, presetNames)
	return out
}

// Preset resolves a named topology with size n. "sample" ignores n, "grid"
// builds an n×n lattice and "random" is RandomDAG(n, DefaultRandomDensity)
// and needs WithSeed or WithRand at build time.
func Preset(name string, n int) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sample":
		return Sample(), nil
	case "cycle":
		return Cycle(n), nil
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "tree":
		return Tree(n), nil
	case "random", "dag":
		return RandomDAG(n, DefaultRandomDensity), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
}
