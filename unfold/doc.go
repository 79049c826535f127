// Package unfold builds the product MDP S x {0..l} U {bot} that encodes a
// length budget into the state space, reducing the bounded-length
// percentile problem to ordinary reachability on a larger MDP.
//
// Construction uses an explicit work stack rather than native recursion,
// because |S|*(l+1) can exceed native stack limits for large budgets.
package unfold
