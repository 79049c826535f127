package sspp

import "github.com/katalvlaran/mdplp/mdp"

// Scheduler answers repeated percentile-probability queries against a
// fixed MDP and target set, memoizing one reachability probability per
// (state, accumulated weight) pair so that a repeated (s, v) query is
// answered from the cache. Any other query runs a full Decide (unfold and
// solve) from scratch; memoized probabilities are not fed into that solve.
type Scheduler struct {
	m       *mdp.MDP
	targets map[int]struct{}
	l       int
	memo    map[[2]int]float64
}

// NewScheduler builds a Scheduler bound to m, targets, and the overall
// length budget l.
func NewScheduler(m *mdp.MDP, targets map[int]struct{}, l int) *Scheduler {
	return &Scheduler{
		m:       m,
		targets: targets,
		l:       l,
		memo:    make(map[[2]int]float64),
	}
}

// ProbabilityFrom returns Pr^max(reach T within the remaining budget l-v)
// starting from state s having already accumulated weight v, memoizing
// the result so a later call with the same (s, v) is answered from cache.
func (sch *Scheduler) ProbabilityFrom(s, v int) (float64, error) {
	key := [2]int{s, v}
	if p, ok := sch.memo[key]; ok {
		return p, nil
	}

	remaining := sch.l - v
	if remaining < 0 {
		sch.memo[key] = 0

		return 0, nil
	}

	d, err := Decide(sch.m, s, sch.targets, remaining, 0)
	if err != nil {
		return 0, err
	}

	sch.memo[key] = d.Prob

	return d.Prob, nil
}
