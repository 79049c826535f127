package mdpdot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/mdplp/mdp"
)

// Option configures Write.
type Option func(*config)

type config struct {
	strategy []int // position within A(s) chosen at each state, or -1
}

// WithStrategy colors the chosen action node and its incoming edge red at
// every state where strategy[s] is a valid position within A(s).
func WithStrategy(strategy []int) Option {
	return func(c *config) {
		c.strategy = strategy
	}
}

// Write renders m as a Graphviz digraph to w.
func Write(w io.Writer, m *mdp.MDP, opts ...Option) error {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	g := gographviz.NewGraph()
	if err := g.SetName("mdp"); err != nil {
		return err
	}
	if err := g.SetDir(true); err != nil {
		return err
	}

	for s := 0; s < m.NumberOfStates(); s++ {
		stateNode := stateNodeName(s)
		if err := g.AddNode("mdp", stateNode, map[string]string{
			"shape": "circle",
			"label": quote(m.StateName(s)),
		}); err != nil {
			return err
		}

		for k, as := range m.AlphaSuccessors(s) {
			actionNode := actionNodeName(s, k)
			chosen := cfg.strategy != nil && s < len(cfg.strategy) && cfg.strategy[s] == k

			attrs := map[string]string{
				"shape": "point",
				"label": quote(fmt.Sprintf("%s | %d", m.ActionName(as.Alpha), m.Weight(as.Alpha))),
			}
			if chosen {
				attrs["color"] = "red"
			}
			if err := g.AddNode("mdp", actionNode, attrs); err != nil {
				return err
			}

			edgeAttrs := map[string]string{}
			if chosen {
				edgeAttrs["color"] = "red"
			}
			if err := g.AddEdge(stateNode, actionNode, true, edgeAttrs); err != nil {
				return err
			}

			for i, sp := range as.Succ {
				succNode := stateNodeName(sp)
				prob := strconv.FormatFloat(as.Prob[i], 'f', 4, 64)
				if err := g.AddEdge(actionNode, succNode, true, map[string]string{
					"label": quote(prob),
				}); err != nil {
					return err
				}
			}
		}
	}

	_, err := io.WriteString(w, g.String())

	return err
}

func stateNodeName(s int) string {
	return fmt.Sprintf("s%d", s)
}

func actionNodeName(s, k int) string {
	return fmt.Sprintf("s%d_a%d", s, k)
}

func quote(s string) string {
	return strconv.Quote(s)
}
