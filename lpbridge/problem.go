package lpbridge

import (
	"errors"
	"fmt"
)

// Sense is the optimization direction of a Problem.
type Sense int

// Sense values.
const (
	Minimize Sense = iota
	Maximize
)

// Rel is the relational operator of a constraint.
type Rel int

// Rel values.
const (
	LE Rel = iota // <=
	GE            // >=
	EQ            // ==
)

// Var is an opaque handle to a structural variable of a Problem. It is only
// meaningful for the Problem that created it.
type Var struct {
	idx int
}

// Sentinel errors.
var (
	// ErrNoObjective indicates Solve was called before SetObjective.
	ErrNoObjective = errors.New("lpbridge: objective not set")

	// ErrForeignVar indicates a Var handle from a different Problem was used.
	ErrForeignVar = errors.New("lpbridge: variable does not belong to this problem")
)

// ErrLpFailure wraps the solver's status when it does not return an optimal
// solution (infeasible, unbounded, or a numerical failure to converge).
type ErrLpFailure struct {
	Status string
}

func (e *ErrLpFailure) Error() string {
	return fmt.Sprintf("lpbridge: solver did not reach optimality: %s", e.Status)
}

// variable is the internal record for a declared structural variable.
type variable struct {
	name     string
	lowBound float64
}

// constraint is one affine relation added to a Problem, stored as
// (lhs - rhs) <rel> 0, already folded to lhs <rel> rhsConstant.
type constraint struct {
	coeffs map[int]float64
	rel    Rel
	rhs    float64
}

// Problem accumulates variables, constraints, and an objective, then
// resolves them into a standard-form LP solved by gonum's Simplex.
type Problem struct {
	sense     Sense
	vars      []variable
	cons      []constraint
	objective Affine
	objectSet bool
}

// NewProblem creates an empty problem with the given optimization sense.
func NewProblem(sense Sense) *Problem {
	return &Problem{sense: sense}
}

// NewVar declares a structural variable with the given display name and
// lower bound (no upper bound unless a constraint is added for it
// explicitly, e.g. AddConstraint(VarTerm(1, v), LE, 1)).
// Complexity: O(1).
func (p *Problem) NewVar(name string, lowBound float64) Var {
	p.vars = append(p.vars, variable{name: name, lowBound: lowBound})

	return Var{idx: len(p.vars) - 1}
}

// SetObjective sets the affine expression to minimize or maximize,
// according to the Problem's sense.
func (p *Problem) SetObjective(expr Affine) {
	p.objective = expr
	p.objectSet = true
}

// AddConstraint appends the affine relation lhs <rel> rhs. Both sides may
// mix fixed constants and variable terms; they are folded to a single
// variables-only left-hand side and a scalar right-hand side internally,
// so a Bellman right-hand side mixing known 0/1 constants and variables
// from other states is handled without special-casing.
// Complexity: O(terms in lhs and rhs).
func (p *Problem) AddConstraint(lhs Affine, rel Rel, rhs Affine) {
	diff := lhs.sub(rhs)
	p.cons = append(p.cons, constraint{
		coeffs: diff.coeffs,
		rel:    rel,
		rhs:    -diff.constant,
	})
}

// numVars returns the number of declared structural variables.
func (p *Problem) numVars() int { return len(p.vars) }
