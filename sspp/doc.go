// Package sspp answers the Stochastic Shortest Path Percentile question:
// given a length budget l and probability threshold beta, does some
// strategy reach T from s0 within accumulated weight l with probability at
// least beta?
//
// The question is reduced to ordinary reachability on the unfolded MDP
// (package unfold): Decide builds U = Unfold(M, s0, T, l), runs reachsolve
// on (U, T*), and compares the source's Pr^max against beta. Scheduler
// memoizes per-(s, v) answers so that a repeated (s, v) query does not
// re-unfold the MDP; a query for a new (s, v) unfolds and solves afresh.
package sspp
