package lpbridge

// Affine is a linear expression over a Problem's variables plus a fixed
// constant: constant + Σ coeffs[i]*x_i. It is the tagged {Fixed, Var}
// representation the design calls for — a caller building a Bellman
// right-hand side mixes Const(0), Const(1), and VarTerm(p, x) values with
// Plus without ever reducing to a single float before the solver sees it.
type Affine struct {
	constant float64
	coeffs   map[int]float64 // variable index -> coefficient
}

// Const returns the constant affine expression v.
func Const(v float64) Affine {
	return Affine{constant: v}
}

// VarTerm returns the affine expression coeff*v.
func VarTerm(coeff float64, v Var) Affine {
	return Affine{coeffs: map[int]float64{v.idx: coeff}}
}

// Plus returns a+b, merging variable coefficients.
func (a Affine) Plus(b Affine) Affine {
	out := Affine{constant: a.constant + b.constant, coeffs: cloneCoeffs(a.coeffs)}
	for idx, c := range b.coeffs {
		out.coeffs[idx] += c
	}

	return out
}

// sub returns a-b.
func (a Affine) sub(b Affine) Affine {
	out := Affine{constant: a.constant - b.constant, coeffs: cloneCoeffs(a.coeffs)}
	for idx, c := range b.coeffs {
		out.coeffs[idx] -= c
	}

	return out
}

// Scale returns c*a.
func (a Affine) Scale(c float64) Affine {
	out := Affine{constant: a.constant * c, coeffs: make(map[int]float64, len(a.coeffs))}
	for idx, coeff := range a.coeffs {
		out.coeffs[idx] = coeff * c
	}

	return out
}

// Sum folds a list of affine expressions with Plus, starting from Const(0).
func Sum(terms ...Affine) Affine {
	out := Const(0)
	for _, t := range terms {
		out = out.Plus(t)
	}

	return out
}

func cloneCoeffs(m map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
