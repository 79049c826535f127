package reach

import "github.com/katalvlaran/mdplp/mdp"

// BackwardReachable runs a backward BFS from targets over the predecessor
// relation and reports, for every state, whether some action sequence can
// reach targets with positive probability.
//
// Complexity: O(|S| + |edges|), walking Pred once per discovered state.
func BackwardReachable(m *mdp.MDP, targets map[int]struct{}) []bool {
	n := m.NumberOfStates()
	reachable := make([]bool, n)
	queue := make([]int, 0, n)

	for t := range targets {
		if !reachable[t] {
			reachable[t] = true
			queue = append(queue, t)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for p := range m.Pred(s) {
			if !reachable[p] {
				reachable[p] = true
				queue = append(queue, p)
			}
		}
	}

	return reachable
}

// MinEdgeSteps runs the same backward BFS but records the first-discovery
// distance in graph edges (ignoring action probabilities and weights).
// Unreachable states get -1. Used only for strategy tie-breaking, not for
// any probability or expectation computation.
//
// Complexity: O(|S| + |edges|).
func MinEdgeSteps(m *mdp.MDP, targets map[int]struct{}) []int {
	n := m.NumberOfStates()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]int, 0, n)
	for t := range targets {
		if dist[t] == -1 {
			dist[t] = 0
			queue = append(queue, t)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for p := range m.Pred(s) {
			if dist[p] == -1 {
				dist[p] = dist[s] + 1
				queue = append(queue, p)
			}
		}
	}

	return dist
}
