// Package mdplp is a toolkit for exact, LP-based analysis of finite
// Markov decision processes.
//
// 🚀 What is mdplp?
//
//	A thread-safe library for deciding reachability and shortest-path
//	questions over weighted MDPs, backed by real LP solving rather than
//	value/policy iteration:
//
//	  • Core model: states, weighted actions, discrete successor
//	    distributions, all guarded by R/W locks (mdp)
//	  • Reachability: Pr^max via backward BFS + almost-sure-winning
//	    pruning + an LP on the undecided remainder (reach, reachsolve)
//	  • Expectation: minimum expected accumulated weight to a target set
//	    (sspe)
//	  • Percentile: bounded-length threshold queries via state-space
//	    unfolding (unfold, sspp)
//
// ✨ Why mdplp?
//
//   - Exact          — every probability and expectation is an LP optimum,
//     not an iterative approximation
//   - Strategy-aware — every solver returns a strategy alongside its value
//   - Inspectable    — mdpio round-trips MDPs to YAML, mdpdot renders them
//     (and their strategies) as Graphviz
//
// Under the hood:
//
//	mdp/        — MDP type: states, actions, distributions
//	unfold/     — length-budget state-space unfolding
//	reach/      — backward reachability, almost-sure-winning, min edge steps
//	lpbridge/   — a small LP front end over gonum's simplex solver
//	reachsolve/ — Pr^max solver (reachability LP)
//	sspe/       — minimum expected cost solver
//	sspp/       — bounded-length percentile solver
//	mdpio/      — YAML import/export
//	mdpdot/     — Graphviz export
//	mdpgen/     — synthetic MDP generators for benchmarks and tests
//
//	go get github.com/katalvlaran/mdplp
package mdplp
