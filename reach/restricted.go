package reach

import "github.com/katalvlaran/mdplp/mdp"

// MinEdgeStepsRestricted is MinEdgeSteps walked only over the predecessor
// edges whose originating (state, position) pair satisfies allowed. It
// backs the maximizing-strategy tie-break, which
// restricts the graph to M^max (only act_max positions) before measuring
// edge-distance to the target set.
//
// Complexity: O(|S| + |edges|).
func MinEdgeStepsRestricted(m *mdp.MDP, targets map[int]struct{}, allowed func(s, k int) bool) []int {
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
		u := queue[0]
		queue = queue[1:]
		for _, ap := range m.AlphaPredecessors(u) {
			if dist[ap.S] != -1 || !allowed(ap.S, ap.K) {
				continue
			}
			dist[ap.S] = dist[u] + 1
			queue = append(queue, ap.S)
		}
	}

	return dist
}
