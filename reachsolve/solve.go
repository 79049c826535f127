package reachsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mdplp/lpbridge"
	"github.com/katalvlaran/mdplp/mdp"
	"github.com/katalvlaran/mdplp/reach"
)

// bellmanTolerance is the slack used when comparing candidate actions'
// expected-successor values for ties in act_max construction.
const bellmanTolerance = 1e-9

// Result is the outcome of Solve: X[s] = Pr_s^max(reach T), and Strategy[s]
// is the chosen *position* within mdp.MDP.Act(s)/AlphaSuccessors(s) — not
// an action label — since two distinct enablings may share a label.
// Strategy[s] == -1 marks a state with no enabled actions.
type Result struct {
	X        []float64
	Strategy []int
}

// Solve computes Pr^max(diamond T) for every state of m and a maximizing
// memoryless strategy.
func Solve(m *mdp.MDP, targets map[int]struct{}) (*Result, error) {
	n := m.NumberOfStates()
	reachable := reach.BackwardReachable(m, targets)
	win, safeActions := reach.AlmostSureWinning(m, targets)

	x := make([]float64, n)
	unclassified := make([]int, 0, n)
	for s := 0; s < n; s++ {
		switch {
		case !reachable[s]:
			x[s] = 0
		case win[s]:
			x[s] = 1
		default:
			unclassified = append(unclassified, s)
		}
	}

	if len(unclassified) > 0 {
		if err := solveLP(m, unclassified, x); err != nil {
			return nil, err
		}
	}

	strategy := buildStrategy(m, targets, x, win, safeActions)

	return &Result{X: x, Strategy: strategy}, nil
}

// solveLP builds and solves the LP over the unclassified states U,
// writing each solution value directly into x.
func solveLP(m *mdp.MDP, unclassified []int, x []float64) error {
	p := lpbridge.NewProblem(lpbridge.Minimize)
	vars := make(map[int]lpbridge.Var, len(unclassified))
	for _, s := range unclassified {
		v := p.NewVar(fmt.Sprintf("x%d", s), 0)
		vars[s] = v
		p.AddConstraint(lpbridge.VarTerm(1, v), lpbridge.LE, lpbridge.Const(1))
	}

	objTerms := make([]lpbridge.Affine, 0, len(unclassified))
	for _, v := range vars {
		objTerms = append(objTerms, lpbridge.VarTerm(1, v))
	}
	p.SetObjective(lpbridge.Sum(objTerms...))

	for _, s := range unclassified {
		lhs := lpbridge.VarTerm(1, vars[s])
		for _, as := range m.AlphaSuccessors(s) {
			rhs := successorValue(as, x, vars)
			p.AddConstraint(lhs, lpbridge.GE, rhs)
		}
	}

	sol, err := p.Solve()
	if err != nil {
		return err
	}
	for _, s := range unclassified {
		x[s] = sol.Value(vars[s])
	}

	return nil
}

// successorValue builds Σ Δ(s,α,s')*X(s') as an Affine, where X(s') is
// Const(0), Const(1), or VarTerm(p, x_s') depending on s''s classification.
// Never collapses the mix to a single float before the constraint is added.
func successorValue(as mdp.AlphaSuccessor, x []float64, vars map[int]lpbridge.Var) lpbridge.Affine {
	terms := make([]lpbridge.Affine, 0, len(as.Succ))
	for i, sp := range as.Succ {
		prob := as.Prob[i]
		if v, isVar := vars[sp]; isVar {
			terms = append(terms, lpbridge.VarTerm(prob, v))
		} else {
			terms = append(terms, lpbridge.Const(prob*x[sp]))
		}
	}

	return lpbridge.Sum(terms...)
}

// buildStrategy computes act_max per state, restricts the graph to it, and
// applies the edge-distance tie-break.
func buildStrategy(m *mdp.MDP, targets map[int]struct{}, x []float64, win []bool, safeActions [][]int) []int {
	n := m.NumberOfStates()
	actMax := make([][]int, n)
	for s := 0; s < n; s++ {
		if win[s] && len(safeActions[s]) > 0 {
			actMax[s] = safeActions[s]
			continue
		}
		actMax[s] = argmaxPositions(m, s, x)
	}

	restrictedDist := reach.MinEdgeStepsRestricted(m, targets, func(s, k int) bool {
		for _, allowed := range actMax[s] {
			if allowed == k {
				return true
			}
		}

		return false
	})

	strategy := make([]int, n)
	for s := 0; s < n; s++ {
		cands := actMax[s]
		if len(cands) == 0 {
			strategy[s] = -1
			continue
		}
		_, isTarget := targets[s]
		if x[s] == 0 || isTarget {
			strategy[s] = cands[0]
			continue
		}
		strategy[s] = pickProgressing(m, s, cands, restrictedDist)
	}

	return strategy
}

// argmaxPositions returns the positions k in A(s) maximizing
// Σ Δ(s,α,s')*x[s'], within bellmanTolerance of each other.
func argmaxPositions(m *mdp.MDP, s int, x []float64) []int {
	acts := m.AlphaSuccessors(s)
	if len(acts) == 0 {
		return nil
	}
	best := math.Inf(-1)
	qs := make([]float64, len(acts))
	for k, as := range acts {
		var q float64
		for i, sp := range as.Succ {
			q += as.Prob[i] * x[sp]
		}
		qs[k] = q
		if q > best {
			best = q
		}
	}
	var cands []int
	for k, q := range qs {
		if best-q <= bellmanTolerance {
			cands = append(cands, k)
		}
	}

	return cands
}

// pickProgressing chooses the candidate position whose action has at
// least one successor with strictly smaller edge-distance to the target
// set than s itself, preventing a strategy that loops inside act_max
// without progress. Falls back to the first candidate if none qualifies.
func pickProgressing(m *mdp.MDP, s int, cands []int, dist []int) int {
	acts := m.AlphaSuccessors(s)
	for _, k := range cands {
		for _, sp := range acts[k].Succ {
			if dist[sp] != -1 && (dist[s] == -1 || dist[sp] < dist[s]) {
				return k
			}
		}
	}

	return cands[0]
}
