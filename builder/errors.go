package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability or density outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid length or bound for the data helpers.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrUnknownPreset indicates a preset name Preset does not recognise.
var ErrUnknownPreset = errors.New("builder: unknown preset")
