package builder

import "math/rand"

// builderConfig is the resolved, immutable option set seen by constructors.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn

	// rng drives stochastic constructors; nil unless WithSeed/WithRand is used.
	rng *rand.Rand

	// solvable makes Maze carve a start→end route.
	solvable bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom prefers the configured RNG and otherwise seeds a private one.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
