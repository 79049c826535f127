package mdpio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mdplp/mdp"
)

// Load decodes an MDP description from r, per the document shape
// documented in package mdpio.
func Load(r io.Reader) (*mdp.MDP, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	actionIndex := make(map[string]int, len(doc.MDP.Actions))
	weights := make([]int64, len(doc.MDP.Actions))
	actionNames := make([]string, len(doc.MDP.Actions))
	for i, a := range doc.MDP.Actions {
		if a.Weight <= 0 {
			return nil, fmt.Errorf("%w: action %q has weight %d", ErrNonPositiveWeight, a.Name, a.Weight)
		}
		actionIndex[a.Name] = i
		weights[i] = a.Weight
		actionNames[i] = a.Name
	}

	stateIndex := make(map[string]int, len(doc.MDP.States))
	stateNames := make([]string, len(doc.MDP.States))
	for i, s := range doc.MDP.States {
		stateIndex[s.Name] = i
		stateNames[i] = s.Name
	}

	m, err := mdp.New(len(doc.MDP.States), len(doc.MDP.Actions), weights,
		mdp.WithStateNames(stateNames),
		mdp.WithActionNames(actionNames),
	)
	if err != nil {
		return nil, err
	}

	for si, s := range doc.MDP.States {
		for _, ea := range s.EnabledActions {
			alpha, ok := actionIndex[ea.Name]
			if !ok {
				return nil, fmt.Errorf("%w: state %q references unknown action %q", ErrUnknownReference, s.Name, ea.Name)
			}

			dist := make(map[int]float64, len(ea.Transitions))
			for _, tr := range ea.Transitions {
				target, ok := stateIndex[tr.Target]
				if !ok {
					return nil, fmt.Errorf("%w: action %q references unknown target %q", ErrUnknownReference, ea.Name, tr.Target)
				}
				p, err := probabilityFrom(tr.Probability)
				if err != nil {
					return nil, err
				}
				dist[target] += p
			}

			if err := m.Enable(si, alpha, dist); err != nil {
				if errors.Is(err, mdp.ErrInvalidDistribution) {
					return nil, fmt.Errorf("%w: state %q action %q: %w", ErrDistributionSum, s.Name, ea.Name, err)
				}
				if errors.Is(err, mdp.ErrInvalidProbability) {
					return nil, fmt.Errorf("%w: state %q action %q: %v", ErrNonPositiveProbability, s.Name, ea.Name, err)
				}

				return nil, err
			}
		}
	}

	return m, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*mdp.MDP, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
