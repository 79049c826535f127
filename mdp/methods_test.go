package mdp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mdplp/mdp"
)

// twoStateAbsorbing builds scenario S1: s0 --a--> {s0: 1/2, s1: 1/2}, s1 --loop--> s1.
func twoStateAbsorbing(t *testing.T) *mdp.MDP {
	t.Helper()
	m, err := mdp.New(2, 2, []int64{1, 1}, mdp.WithStateNames([]string{"s0", "s1"}), mdp.WithActionNames([]string{"a", "loop"}))
	require.NoError(t, err)
	require.NoError(t, m.Enable(0, 0, map[int]float64{0: 0.5, 1: 0.5}))
	require.NoError(t, m.Enable(1, 1, map[int]float64{1: 1}))

	return m
}

func TestEnable_PredAndAlphaPredIndexes(t *testing.T) {
	m := twoStateAbsorbing(t)

	pred1 := m.Pred(1)
	require.Contains(t, pred1, 0)
	require.Contains(t, pred1, 1)

	ap := m.AlphaPredecessors(1)
	require.Len(t, ap, 2)
}

func TestEnable_RejectsBadDistribution(t *testing.T) {
	m, err := mdp.New(2, 1, []int64{1})
	require.NoError(t, err)

	err = m.Enable(0, 0, map[int]float64{0: 0.5, 1: 0.499})
	require.ErrorIs(t, err, mdp.ErrInvalidDistribution)
}

func TestEnable_AcceptsWithinTolerance(t *testing.T) {
	// A total of 1-1e-13 lies within ProbabilityTolerance and must be accepted.
	m, err := mdp.New(2, 1, []int64{1})
	require.NoError(t, err)

	err = m.Enable(0, 0, map[int]float64{0: 0.4999999999999, 1: 0.5})
	require.NoError(t, err)
}

func TestEnable_RejectsBeyondTolerance(t *testing.T) {
	// Scenario S6: 0.999 total must be rejected.
	m, err := mdp.New(2, 1, []int64{1})
	require.NoError(t, err)

	err = m.Enable(0, 0, map[int]float64{0: 0.499, 1: 0.5})
	require.ErrorIs(t, err, mdp.ErrInvalidDistribution)
}

func TestEnable_RejectsOutOfRangeProbability(t *testing.T) {
	m, err := mdp.New(1, 1, []int64{1})
	require.NoError(t, err)

	err = m.Enable(0, 0, map[int]float64{0: 1.5})
	require.True(t, errors.Is(err, mdp.ErrInvalidProbability) || errors.Is(err, mdp.ErrInvalidDistribution))
}

func TestNew_RejectsNonPositiveWeight(t *testing.T) {
	_, err := mdp.New(1, 1, []int64{0})
	require.ErrorIs(t, err, mdp.ErrBadWeight)
}

func TestNames_SynthesizedWhenAbsent(t *testing.T) {
	m, err := mdp.New(3, 2, []int64{1, 1})
	require.NoError(t, err)

	require.Equal(t, "s2", m.StateName(2))
	require.Equal(t, "a1", m.ActionName(1))
}

func TestTargets_ResolvesNames(t *testing.T) {
	m := twoStateAbsorbing(t)

	targets, err := m.Targets("s1")
	require.NoError(t, err)
	require.Contains(t, targets, 1)

	_, err = m.Targets("nope")
	require.ErrorIs(t, err, mdp.ErrUnknownEntity)
}

func TestAlphaSuccessors_IsRestartable(t *testing.T) {
	m := twoStateAbsorbing(t)

	first := m.AlphaSuccessors(0)
	second := m.AlphaSuccessors(0)
	require.Equal(t, first, second)
}
