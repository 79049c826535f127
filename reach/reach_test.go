package reach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mdplp/mdp"
	"github.com/katalvlaran/mdplp/reach"
)

// buildS2 constructs scenario S2: branching to a dead end.
// States {s0, dead, t}; alpha: {t:1/2, dead:1/2}, beta: {t:1}; loop at dead and t.
func buildS2(t *testing.T) (*mdp.MDP, map[int]struct{}) {
	t.Helper()
	const s0, dead, target = 0, 1, 2
	m, err := mdp.New(3, 3, []int64{1, 1, 1},
		mdp.WithStateNames([]string{"s0", "dead", "t"}),
		mdp.WithActionNames([]string{"alpha", "beta", "loop"}))
	require.NoError(t, err)
	require.NoError(t, m.Enable(s0, 0, map[int]float64{target: 0.5, dead: 0.5}))
	require.NoError(t, m.Enable(s0, 1, map[int]float64{target: 1}))
	require.NoError(t, m.Enable(dead, 2, map[int]float64{dead: 1}))
	require.NoError(t, m.Enable(target, 2, map[int]float64{target: 1}))

	return m, map[int]struct{}{target: {}}
}

func TestBackwardReachable_S2(t *testing.T) {
	m, targets := buildS2(t)
	reachable := reach.BackwardReachable(m, targets)
	require.True(t, reachable[0])
	require.False(t, reachable[1]) // dead only loops to itself
	require.True(t, reachable[2])
}

func TestAlmostSureWinning_S2(t *testing.T) {
	m, targets := buildS2(t)
	win, safe := reach.AlmostSureWinning(m, targets)

	require.True(t, win[0]) // beta guarantees reaching t
	require.False(t, win[1])
	require.True(t, win[2])

	// s0's safe set must include beta (action index 1); alpha is unsafe
	// because it can land in dead, which never reaches t.
	require.Contains(t, safe[0], 1)
	require.NotContains(t, safe[0], 0)
}

// TestAlmostSureWinning_CycleNeedsSafeExit verifies scenario S5: a cycle
// s0 <-> s1 where only s1 has a direct exit to t. The fixed point must keep
// both states winning (via the induced path through the exit), not reject
// the cycle outright, and must not mark s0's only action safe until s1's
// exit is itself confirmed safe.
func TestAlmostSureWinning_CycleNeedsSafeExit(t *testing.T) {
	const s0, s1, target = 0, 1, 2
	m, err := mdp.New(3, 3, []int64{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Enable(s0, 0, map[int]float64{s1: 1}))
	require.NoError(t, m.Enable(s1, 1, map[int]float64{s0: 0.5, target: 0.5}))
	require.NoError(t, m.Enable(target, 2, map[int]float64{target: 1}))

	targets := map[int]struct{}{target: {}}
	win, safe := reach.AlmostSureWinning(m, targets)

	require.True(t, win[s0])
	require.True(t, win[s1])
	require.Contains(t, safe[s0], 0)
	require.Contains(t, safe[s1], 1)
}

func TestAlmostSureWinning_UnreachableDeadEndNeverWins(t *testing.T) {
	m, targets := buildS2(t)
	_, safe := reach.AlmostSureWinning(m, targets)
	require.Nil(t, safe[1])
}

func TestMinEdgeSteps_S2(t *testing.T) {
	m, targets := buildS2(t)
	dist := reach.MinEdgeSteps(m, targets)
	require.Equal(t, 0, dist[2])
	require.Equal(t, 1, dist[0])
	require.Equal(t, -1, dist[1])
}
