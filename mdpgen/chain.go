package mdpgen

import "github.com/katalvlaran/mdplp/mdp"

// minChainStates is the smallest chain mdpgen will build: at least a
// source and a target.
const minChainStates = 2

// Chain builds a worst-case deep chain s0 -> s1 -> ... -> s(n-1), each
// transition deterministic with the given weight, and s(n-1) self-looping
// as the sole target. Exercises reach.MinEdgeSteps and sspe's additive
// strategy scoring at scale: the chain forces both to walk its full
// length with no shortcuts.
func Chain(n int, weight int64) (*mdp.MDP, map[int]struct{}, error) {
	if n < minChainStates {
		return nil, nil, ErrTooFewStates
	}

	weights := make([]int64, n)
	for i := range weights {
		weights[i] = weight
	}

	m, err := mdp.New(n, n, weights)
	if err != nil {
		return nil, nil, err
	}

	for s := 0; s < n-1; s++ {
		if err := m.Enable(s, s, map[int]float64{s + 1: 1}); err != nil {
			return nil, nil, err
		}
	}
	target := n - 1
	if err := m.Enable(target, target, map[int]float64{target: 1}); err != nil {
		return nil, nil, err
	}

	return m, map[int]struct{}{target: {}}, nil
}
