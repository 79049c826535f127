// Package reachsolve computes, for every state of an MDP, the maximum
// probability of eventually reaching a target set T (Pr^max(◇T)), together
// with a maximizing memoryless strategy.
//
// It classifies the 0-class (not backward reachable) and 1-class
// (Pr^max = 1, via reach.AlmostSureWinning) before handing the remaining
// states to lpbridge, because an unclassified LP would have a continuum of
// optimizers for absorbing non-target states.
package reachsolve
