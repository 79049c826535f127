package mdpgen

import (
	"math/rand"

	"github.com/katalvlaran/mdplp/mdp"
)

const probMin, probMax = 0.0, 1.0

// RandomSparse builds an n-state, m-action MDP by, for every (state,
// action) pair, including that enabling independently with probability p.
// Each included enabling fans out to a random nonempty subset of
// successors (at most 3, or n if smaller) with probabilities drawn from
// rng and normalized to sum to 1. weights(alpha) supplies each action's
// positive integer weight. The last state is designated the sole target
// and is given a guaranteed self-loop so it is always absorbing.
//
// Mirrors builder.RandomSparse's shape: explicit RNG required, stable
// trial order (state asc, then action asc), sentinel errors for bad
// parameters.
func RandomSparse(n, numActions int, p float64, weightOf func(alpha int) int64, rng *rand.Rand) (*mdp.MDP, map[int]struct{}, error) {
	if n < minChainStates {
		return nil, nil, ErrTooFewStates
	}
	if p < probMin || p > probMax {
		return nil, nil, ErrInvalidProbability
	}
	if rng == nil {
		return nil, nil, ErrNeedRandSource
	}

	weights := make([]int64, numActions)
	for alpha := 0; alpha < numActions; alpha++ {
		weights[alpha] = weightOf(alpha)
	}

	m, err := mdp.New(n, numActions, weights)
	if err != nil {
		return nil, nil, err
	}

	target := n - 1
	for s := 0; s < n; s++ {
		for alpha := 0; alpha < numActions; alpha++ {
			if s == target {
				continue // wired below, guaranteed
			}
			if rng.Float64() > p {
				continue
			}
			dist := randomDistribution(n, rng)
			if err := m.Enable(s, alpha, dist); err != nil {
				return nil, nil, err
			}
		}
	}
	if err := m.Enable(target, 0, map[int]float64{target: 1}); err != nil {
		return nil, nil, err
	}

	return m, map[int]struct{}{target: {}}, nil
}

// randomDistribution picks a nonempty subset of at most 3 successors (or
// n if smaller) out of [0, n) and assigns them random probabilities
// summing to 1.
func randomDistribution(n int, rng *rand.Rand) map[int]float64 {
	fanout := 3
	if n < fanout {
		fanout = n
	}
	fanout = 1 + rng.Intn(fanout)

	succ := rng.Perm(n)[:fanout]
	raw := make([]float64, fanout)
	var sum float64
	for i := range raw {
		raw[i] = rng.Float64() + 0.01 // avoid a zero weight collapsing a successor out
		sum += raw[i]
	}

	dist := make(map[int]float64, fanout)
	for i, sp := range succ {
		dist[sp] = raw[i] / sum
	}

	return dist
}
