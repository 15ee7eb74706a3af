package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodRandomDAG      = "RandomDAG"
	minRandomDAGVertices = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomDAG returns a Constructor that joins every pair i<j independently
// with probability p, edges i→j. On a directed graph the result is acyclic;
// on an undirected one it is an Erdős–Rényi-like sparse graph.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - an RNG is required for 0 < p < 1 (else ErrNeedRandSource).
//
// Trials run in i ascending, then j ascending, so a fixed seed fixes the graph.
// Complexity: O(n²) trials.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomDAGVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomDAG, n, minRandomDAGVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomDAG, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(g, methodRandomDAG, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
