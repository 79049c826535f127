// Package mdp is the foundation of mdplp: a finite Markov Decision Process
// store with predecessor indexes.
//
// An MDP is built with New(n, m, weights, opts...) and populated one
// enabling at a time via Enable. After construction it is logically
// immutable for the duration of any solve: reach, sspe, sspp, and unfold
// all take an *MDP by value-semantics reference and never mutate it.
package mdp
