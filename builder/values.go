package builder

import "fmt"

const methodValues = "Values"

// Values returns n integers drawn uniformly from [1, hi]. The configured RNG
// (WithSeed/WithRand) wins over seed. Returns ErrBadSize if n < 0 or hi < 1.
// Complexity: O(n).
func Values(n, hi int, seed int64, opts ...BuilderOption) ([]int, error) {
	if n < 0 || hi < 1 {
		return nil, fmt.Errorf("%s: n=%d, hi=%d: %w", methodValues, n, hi, ErrBadSize)
	}
	rng := rngFrom(newBuilderConfig(opts...), seed)

	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(hi) + 1
	}

	return out, nil
}
