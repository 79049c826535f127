package sspp

import (
	"github.com/katalvlaran/mdplp/mdp"
	"github.com/katalvlaran/mdplp/reachsolve"
	"github.com/katalvlaran/mdplp/unfold"
)

// Decision is the outcome of Decide: whether some strategy reaches T from
// s0 within weight l with probability at least beta, the exact probability
// achieved, the unfolded MDP it was computed on, and — only when
// Reachable — a maximizing strategy over the unfolded state space.
type Decision struct {
	Reachable bool
	Prob      float64
	Unfolded  *unfold.Unfolded
	Strategy  []int
}

// Decide answers the percentile question for source s0, target set
// targets, length bound l, and threshold beta: it unfolds M into U, runs
// the reachability solver on (U, T*), and compares the source's Pr^max
// against beta.
func Decide(m *mdp.MDP, s0 int, targets map[int]struct{}, l int, beta float64) (*Decision, error) {
	u, err := unfold.Unfold(m, s0, targets, l)
	if err != nil {
		return nil, err
	}

	res, err := reachsolve.Solve(u.MDP, u.TargetStates())
	if err != nil {
		return nil, err
	}

	src, ok := u.Index(s0, 0)
	if !ok {
		// s0 is always discovered as the DFS root; this cannot happen.
		src = 0
	}

	prob := res.X[src]
	d := &Decision{Reachable: prob >= beta, Prob: prob, Unfolded: u}
	if d.Reachable {
		d.Strategy = res.Strategy
	}

	return d, nil
}
