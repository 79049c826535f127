package sspe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mdplp/mdp"
	"github.com/katalvlaran/mdplp/sspe"
)

// TestS1_TwoStateAbsorbing: with w(a)=1, expect min-expected-cost [2, 0].
func TestS1_TwoStateAbsorbing(t *testing.T) {
	m, err := mdp.New(2, 2, []int64{1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Enable(0, 0, map[int]float64{0: 0.5, 1: 0.5}))
	require.NoError(t, m.Enable(1, 1, map[int]float64{1: 1}))

	res, err := sspe.Solve(m, map[int]struct{}{1: {}})
	require.NoError(t, err)
	require.InDelta(t, 2, res.X[0], 1e-6)
	require.InDelta(t, 0, res.X[1], 1e-9)
}

// TestS2_BranchingToDeadEnd expects min-expected-cost [1, +Inf, 0].
func TestS2_BranchingToDeadEnd(t *testing.T) {
	const s0, dead, target = 0, 1, 2
	m, err := mdp.New(3, 3, []int64{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Enable(s0, 0, map[int]float64{target: 0.5, dead: 0.5}))
	require.NoError(t, m.Enable(s0, 1, map[int]float64{target: 1}))
	require.NoError(t, m.Enable(dead, 2, map[int]float64{dead: 1}))
	require.NoError(t, m.Enable(target, 2, map[int]float64{target: 1}))

	res, err := sspe.Solve(m, map[int]struct{}{target: {}})
	require.NoError(t, err)
	require.InDelta(t, 1, res.X[s0], 1e-6)
	require.True(t, math.IsInf(res.X[dead], 1))
	require.InDelta(t, 0, res.X[target], 1e-9)

	acts := m.Act(s0)
	require.Equal(t, 1, acts[res.Strategy[s0]]) // beta, the only finite action
}

// TestFiniteIffAlmostSureWinning checks testable property 3: x[s] is
// finite exactly on the Pr^max==1 set.
func TestFiniteIffAlmostSureWinning(t *testing.T) {
	const s0, dead, target = 0, 1, 2
	m, err := mdp.New(3, 2, []int64{3, 1})
	require.NoError(t, err)
	require.NoError(t, m.Enable(s0, 0, map[int]float64{target: 0.5, dead: 0.5}))
	require.NoError(t, m.Enable(dead, 1, map[int]float64{dead: 1}))
	require.NoError(t, m.Enable(target, 1, map[int]float64{target: 1}))

	res, err := sspe.Solve(m, map[int]struct{}{target: {}})
	require.NoError(t, err)
	require.True(t, math.IsInf(res.X[s0], 1)) // s0 is not almost-sure winning
	require.True(t, math.IsInf(res.X[dead], 1))
}
