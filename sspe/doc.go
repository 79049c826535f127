// Package sspe computes the Stochastic Shortest Path Expectation: for every
// state, the minimum expected accumulated weight to reach a target set T,
// plus a minimizing memoryless strategy.
//
// Only states with Pr^max(reach T) == 1 (the set F computed by
// reach.AlmostSureWinning) get a finite value; every other state is
// +Inf, since expected cost to a target that might never be reached is
// unbounded. The LP is built with constraints restricted to actions whose
// successors are all in F, because an action touching a +Inf-valued
// successor would make its constraint vacuous.
package sspe
