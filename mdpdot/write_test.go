package mdpdot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mdplp/mdp"
	"github.com/katalvlaran/mdplp/mdpdot"
)

func TestWrite_ProducesDigraphWithStatesAndActions(t *testing.T) {
	m, err := mdp.New(2, 2, []int64{1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Enable(0, 0, map[int]float64{0: 0.5, 1: 0.5}))
	require.NoError(t, m.Enable(1, 1, map[int]float64{1: 1}))

	var buf bytes.Buffer
	require.NoError(t, mdpdot.Write(&buf, m))

	out := buf.String()
	require.Contains(t, out, "digraph")
	require.Contains(t, out, "s0")
	require.Contains(t, out, "s1")
}

func TestWrite_WithStrategyColorsChosenAction(t *testing.T) {
	m, err := mdp.New(2, 2, []int64{1, 1})
	require.NoError(t, err)
	require.NoError(t, m.Enable(0, 0, map[int]float64{1: 1}))
	require.NoError(t, m.Enable(1, 1, map[int]float64{1: 1}))

	var buf bytes.Buffer
	require.NoError(t, mdpdot.Write(&buf, m, mdpdot.WithStrategy([]int{0, 0})))

	require.Contains(t, buf.String(), "red")
}
