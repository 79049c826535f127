package mdpio_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mdplp/mdp"
	"github.com/katalvlaran/mdplp/mdpio"
)

const twoStateDoc = `
mdp:
  states:
    - name: s0
      enabled actions:
        - name: a
          transitions:
            - target: s0
              probability: "1/2"
            - target: s1
              probability: 0.5
    - name: s1
      enabled actions:
        - name: loop
          transitions:
            - target: s1
              probability: 1
  actions:
    - name: a
      weight: 1
    - name: loop
      weight: 1
`

func TestLoad_ParsesRationalAndDecimalProbabilities(t *testing.T) {
	m, err := mdpio.Load(strings.NewReader(twoStateDoc))
	require.NoError(t, err)
	require.Equal(t, 2, m.NumberOfStates())

	s0, err := m.StateIndex("s0")
	require.NoError(t, err)
	succs := m.AlphaSuccessors(s0)
	require.Len(t, succs, 1)
	require.InDelta(t, 0.5, succs[0].Prob[0], 1e-9)
	require.InDelta(t, 0.5, succs[0].Prob[1], 1e-9)
}

func TestLoad_RejectsNonPositiveWeight(t *testing.T) {
	doc := `
mdp:
  states:
    - name: s0
      enabled actions: []
  actions:
    - name: a
      weight: 0
`
	_, err := mdpio.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, mdpio.ErrNonPositiveWeight)
}

func TestLoad_RejectsUnknownTarget(t *testing.T) {
	doc := `
mdp:
  states:
    - name: s0
      enabled actions:
        - name: a
          transitions:
            - target: ghost
              probability: 1
  actions:
    - name: a
      weight: 1
`
	_, err := mdpio.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, mdpio.ErrUnknownReference)
}

// TestLoad_ToleranceBoundary mirrors scenario S6: a distribution summing
// within mdp.ProbabilityTolerance of 1 is accepted, one summing to 0.9 is
// rejected.
func TestLoad_ToleranceBoundary(t *testing.T) {
	good := twoStateDocWithSum(0.5-1e-13, 0.5) // sums to 1-1e-13, within tolerance
	_, err := mdpio.Load(strings.NewReader(good))
	require.NoError(t, err)

	bad := twoStateDocWithSum(0.4, 0.5) // sums to 0.9
	_, err = mdpio.Load(strings.NewReader(bad))
	require.ErrorIs(t, err, mdpio.ErrDistributionSum)
}

func twoStateDocWithSum(p1, p2 float64) string {
	return `
mdp:
  states:
    - name: s0
      enabled actions:
        - name: a
          transitions:
            - target: s0
              probability: ` + strconv.FormatFloat(p1, 'f', -1, 64) + `
            - target: s1
              probability: ` + strconv.FormatFloat(p2, 'f', -1, 64) + `
    - name: s1
      enabled actions:
        - name: loop
          transitions:
            - target: s1
              probability: 1
  actions:
    - name: a
      weight: 1
    - name: loop
      weight: 1
`
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	src, err := mdp.New(2, 2, []int64{1, 1}, mdp.WithStateNames([]string{"s0", "s1"}), mdp.WithActionNames([]string{"a", "loop"}))
	require.NoError(t, err)
	require.NoError(t, src.Enable(0, 0, map[int]float64{0: 0.5, 1: 0.5}))
	require.NoError(t, src.Enable(1, 1, map[int]float64{1: 1}))

	var buf bytes.Buffer
	require.NoError(t, mdpio.Save(&buf, src))

	loaded, err := mdpio.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, src.NumberOfStates(), loaded.NumberOfStates())
	require.Equal(t, src.NumberOfActions(), loaded.NumberOfActions())

	succs := loaded.AlphaSuccessors(0)
	require.Len(t, succs, 1)
	require.InDelta(t, 0.5, succs[0].Prob[0], 1e-9)
}
