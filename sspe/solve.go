package sspe

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mdplp/lpbridge"
	"github.com/katalvlaran/mdplp/mdp"
	"github.com/katalvlaran/mdplp/reach"
)

// Result is the outcome of Solve: X[s] is the minimum expected
// accumulated weight to reach T from s (+Inf if s cannot reach T almost
// surely), and Strategy[s] is the chosen position within A(s) (-1 for
// target states and states outside F, where no minimizing action applies).
type Result struct {
	X        []float64
	Strategy []int
}

// Solve computes E_s^min(diamond T) for every state of m and a minimizing
// memoryless strategy.
func Solve(m *mdp.MDP, targets map[int]struct{}) (*Result, error) {
	n := m.NumberOfStates()
	win, _ := reach.AlmostSureWinning(m, targets)

	x := make([]float64, n)
	for s := 0; s < n; s++ {
		x[s] = math.Inf(1)
	}
	for t := range targets {
		x[t] = 0
	}

	finiteClass := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if _, isTarget := targets[s]; win[s] && !isTarget {
			finiteClass = append(finiteClass, s)
		}
	}

	if len(finiteClass) > 0 {
		if err := solveLP(m, targets, win, finiteClass, x); err != nil {
			return nil, err
		}
	}

	strategy := buildStrategy(m, targets, win, x)

	return &Result{X: x, Strategy: strategy}, nil
}

// allSuccessorsFinite reports whether every positive-probability successor
// of as has a finite entry in x (i.e. lies in F). Only valid once x has been
// fully resolved; use successorsInF while x is still being solved for.
func allSuccessorsFinite(as mdp.AlphaSuccessor, x []float64) bool {
	for _, sp := range as.Succ {
		if math.IsInf(x[sp], 1) {
			return false
		}
	}

	return true
}

// successorsInF reports whether every positive-probability successor of as
// lies in F (the almost-sure-winning set) or is itself a target. Unlike
// allSuccessorsFinite, this does not depend on x having been solved yet, so
// it is the correct gate to build the LP's constraints with.
func successorsInF(as mdp.AlphaSuccessor, win []bool, targets map[int]struct{}) bool {
	for _, sp := range as.Succ {
		if _, isTarget := targets[sp]; !isTarget && !win[sp] {
			return false
		}
	}

	return true
}

func solveLP(m *mdp.MDP, targets map[int]struct{}, win []bool, finiteClass []int, x []float64) error {
	p := lpbridge.NewProblem(lpbridge.Maximize)
	vars := make(map[int]lpbridge.Var, len(finiteClass))
	for _, s := range finiteClass {
		vars[s] = p.NewVar(fmt.Sprintf("x%d", s), 0)
	}

	objTerms := make([]lpbridge.Affine, 0, len(finiteClass))
	for _, v := range vars {
		objTerms = append(objTerms, lpbridge.VarTerm(1, v))
	}
	p.SetObjective(lpbridge.Sum(objTerms...))

	for _, s := range finiteClass {
		lhs := lpbridge.VarTerm(1, vars[s])
		for _, as := range m.AlphaSuccessors(s) {
			if !successorsInF(as, win, targets) {
				continue // successor outside F: vacuous, skip
			}
			w := float64(m.Weight(as.Alpha))
			rhs := lpbridge.Const(w)
			for i, sp := range as.Succ {
				prob := as.Prob[i]
				if v, ok := vars[sp]; ok {
					rhs = rhs.Plus(lpbridge.VarTerm(prob, v))
				} else {
					// sp is a target (x[sp] == 0): contributes nothing.
					rhs = rhs.Plus(lpbridge.Const(prob * x[sp]))
				}
			}
			p.AddConstraint(lhs, lpbridge.LE, rhs)
		}
	}

	sol, err := p.Solve()
	if err != nil {
		return err
	}
	for _, s := range finiteClass {
		x[s] = sol.Value(vars[s])
	}

	return nil
}

// buildStrategy picks, for each s in F \ T, the position k minimizing
// w(alpha_k) + Sum Delta(s,k,s') x[s'] among actions whose successors are
// all finite, breaking ties by insertion order (lowest k wins).
func buildStrategy(m *mdp.MDP, targets map[int]struct{}, win []bool, x []float64) []int {
	n := m.NumberOfStates()
	strategy := make([]int, n)
	for s := range strategy {
		strategy[s] = -1
	}

	for s := 0; s < n; s++ {
		if _, isTarget := targets[s]; isTarget || !win[s] {
			continue
		}
		acts := m.AlphaSuccessors(s)
		best := math.Inf(1)
		bestK := -1
		for k, as := range acts {
			if !allSuccessorsFinite(as, x) {
				continue
			}
			score := float64(m.Weight(as.Alpha))
			for i, sp := range as.Succ {
				score += as.Prob[i] * x[sp]
			}
			if score < best {
				best = score
				bestK = k
			}
		}
		strategy[s] = bestK
	}

	return strategy
}
