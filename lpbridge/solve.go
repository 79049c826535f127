package lpbridge

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solution holds the primal values of a solved Problem.
type Solution struct {
	p *Problem
	x []float64 // structural variable values, indexed like p.vars
}

// Value returns the primal value assigned to v.
func (s *Solution) Value(v Var) float64 {
	if v.idx < 0 || v.idx >= len(s.x) {
		return 0
	}

	return s.x[v.idx]
}

// Solve converts the accumulated variables, constraints, and objective into
// standard form (minimize c^T y subject to A y = b, y >= 0) via slack and
// lower-bound shifts, calls gonum's Simplex, and maps the result back to
// the original variables.
//
// Returns ErrNoObjective if SetObjective was never called. A non-optimal
// solver status surfaces as *ErrLpFailure.
// Complexity: dominated by the underlying Simplex call.
func (p *Problem) Solve() (*Solution, error) {
	if !p.objectSet {
		return nil, ErrNoObjective
	}

	numStruct := p.numVars()
	if len(p.cons) == 0 {
		// No constraints: every variable sits at its lower bound, which is
		// trivially feasible and, since the objective coefficients only
		// ever appear alongside Bellman constraints in this module's
		// solvers, also optimal for the empty feasible region.
		x := make([]float64, numStruct)
		for i, v := range p.vars {
			x[i] = v.lowBound
		}

		return &Solution{p: p, x: x}, nil
	}

	numSlack := 0
	for _, c := range p.cons {
		if c.rel != EQ {
			numSlack++
		}
	}
	totalVars := numStruct + numSlack

	rows := len(p.cons)
	aData := make([]float64, rows*totalVars)
	b := make([]float64, rows)

	slackCol := numStruct
	for row, c := range p.cons {
		// Shift rhs for each variable's lower bound: x_i = y_i + low_i.
		rhs := c.rhs
		rowCoeffs := make([]float64, numStruct)
		for idx, coeff := range c.coeffs {
			rowCoeffs[idx] = coeff
			rhs -= coeff * p.vars[idx].lowBound
		}

		slackCoeff := 0.0
		switch c.rel {
		case LE:
			slackCoeff = 1
		case GE:
			slackCoeff = -1
		case EQ:
			// no slack column for this row
		}

		if rhs < 0 {
			rhs = -rhs
			for i := range rowCoeffs {
				rowCoeffs[i] = -rowCoeffs[i]
			}
			slackCoeff = -slackCoeff
		}

		base := row * totalVars
		copy(aData[base:base+numStruct], rowCoeffs)
		b[row] = rhs
		if c.rel != EQ {
			aData[base+slackCol] = slackCoeff
			slackCol++
		}
	}

	c := make([]float64, totalVars)
	for idx, coeff := range p.objective.coeffs {
		if p.sense == Maximize {
			c[idx] = -coeff
		} else {
			c[idx] = coeff
		}
	}

	a := mat.NewDense(rows, totalVars, aData)
	_, optX, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, &ErrLpFailure{Status: err.Error()}
	}

	x := make([]float64, numStruct)
	for i, v := range p.vars {
		x[i] = optX[i] + v.lowBound
	}

	return &Solution{p: p, x: x}, nil
}
