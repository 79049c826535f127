package mdpio

import (
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mdplp/mdp"
)

// Save encodes m to w in the document shape documented in package mdpio.
// Probabilities are serialized verbatim via strconv.FormatFloat with -1
// precision, never rounded.
func Save(w io.Writer, m *mdp.MDP) error {
	doc := document{
		MDP: mdpSection{
			States:  make([]stateDoc, m.NumberOfStates()),
			Actions: make([]actionDoc, m.NumberOfActions()),
		},
	}

	for alpha := 0; alpha < m.NumberOfActions(); alpha++ {
		doc.MDP.Actions[alpha] = actionDoc{
			Name:   m.ActionName(alpha),
			Weight: m.Weight(alpha),
		}
	}

	for s := 0; s < m.NumberOfStates(); s++ {
		sd := stateDoc{Name: m.StateName(s)}
		for _, as := range m.AlphaSuccessors(s) {
			ea := enabledActionDoc{Name: m.ActionName(as.Alpha)}
			for i, sp := range as.Succ {
				ea.Transitions = append(ea.Transitions, transitionDoc{
					Target:      m.StateName(sp),
					Probability: strconv.FormatFloat(as.Prob[i], 'f', -1, 64),
				})
			}
			sd.EnabledActions = append(sd.EnabledActions, ea)
		}
		doc.MDP.States[s] = sd
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// SaveFile creates (or truncates) path and delegates to Save.
func SaveFile(path string, m *mdp.MDP) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Save(f, m)
}
