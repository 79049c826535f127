// Package lpbridge is a thin, documented abstraction over an external LP
// solver: a facade with its own sentinel errors rather than exposing the
// underlying library's types directly.
//
// The underlying solver is gonum.org/v1/gonum/optimize/convex/lp's Simplex,
// which solves problems in standard form (minimize c^T x subject to
// A x = b, x >= 0). Problem converts a richer surface — a sense, named
// variables with a lower bound, and <=/>=/= affine constraints — into
// that standard form by introducing slack/surplus variables and
// lower-bound shifts, and maps the result back.
//
// Affine expressions use a tagged representation (a constant plus a map of
// variable-index -> coefficient) so that a Bellman right-hand side mixing
// known 0/1 constants and LP variables is never collapsed into a single
// number before the solver sees it.
package lpbridge
