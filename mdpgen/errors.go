package mdpgen

import "errors"

// ErrTooFewStates indicates n is smaller than a generator's minimum.
var ErrTooFewStates = errors.New("mdpgen: too few states")

// ErrInvalidProbability indicates p lies outside [0,1].
var ErrInvalidProbability = errors.New("mdpgen: probability out of range")

// ErrNeedRandSource indicates a stochastic generator was called with a nil
// *rand.Rand.
var ErrNeedRandSource = errors.New("mdpgen: rng is required")
