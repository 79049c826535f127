// Package reach provides the graph analyses that the LP-based solvers rely
// on to avoid an LP variable per state: backward BFS connectivity to a
// target set, minimum edge-step distance (used only for strategy
// tie-breaking), and the Pr^max=1 fixed-point sub-MDP pruning.
//
// There is no adjacency list to walk forward over here: these analyses
// walk the *reverse* relation exposed by mdp.MDP's Pred and
// AlphaPredecessors, because they always start from the target set and work backward.
package reach
