package reach

import "github.com/katalvlaran/mdplp/mdp"

// AlmostSureWinning computes the Pr^max(◇T) = 1 set via the fixed-point
// sub-MDP pruning: a state survives if it is a target, or it has at least
// one "safe" action — one all of whose positive-probability successors are
// themselves surviving — and it can still reach T using only surviving
// states and safe actions.
//
// win[s] reports membership in that set. safeActions[s] lists the
// surviving *positions* within A(s) — not action labels, since a strategy
// must be able to distinguish two distinct enablings of the same action
// label — that survive the pruning (nil when win[s] is false); for target
// states it is every position that never touches a removed state, which
// may legitimately be empty without affecting win[s].
//
// Complexity: O(|S| · (|S| + |edges|)) — each (state, action) enabling is
// marked unsafe at most once, driven by a backward worklist seeded from the
// states that cannot reach T at all; after the worklist drains,
// connectivity to T is recomputed within the surviving sub-MDP, and each
// recomputation that removes a state starts another round.
func AlmostSureWinning(m *mdp.MDP, targets map[int]struct{}) (win []bool, safeActions [][]int) {
	n := m.NumberOfStates()
	connected := BackwardReachable(m, targets)

	removed := make([]bool, n)
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if !connected[s] {
			removed[s] = true
			queue = append(queue, s)
		}
	}

	// safeCount[s] starts as |A(s)| and is decremented as enablings are
	// proven unsafe; unsafe[s][k] guards against double-counting an
	// enabling with more than one removed successor.
	safeCount := make([]int, n)
	unsafe := make([][]bool, n)
	for s := 0; s < n; s++ {
		numActs := len(m.Act(s))
		safeCount[s] = numActs
		unsafe[s] = make([]bool, numActs)
	}

	for {
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]

			for _, ap := range m.AlphaPredecessors(u) {
				s, k := ap.S, ap.K
				if unsafe[s][k] {
					continue
				}
				unsafe[s][k] = true
				safeCount[s]--

				if _, isTarget := targets[s]; isTarget {
					continue // target states are won regardless of remaining actions
				}
				if safeCount[s] == 0 && !removed[s] {
					removed[s] = true
					queue = append(queue, s)
				}
			}
		}

		// Recompute connectivity to T inside the surviving sub-MDP (surviving
		// states, safe enablings only); states that lost it are removed too.
		dist := MinEdgeStepsRestricted(m, targets, func(s, k int) bool {
			return !removed[s] && !unsafe[s][k]
		})
		for s := 0; s < n; s++ {
			if dist[s] == -1 && !removed[s] {
				removed[s] = true
				queue = append(queue, s)
			}
		}
		if len(queue) == 0 {
			break
		}
	}

	win = make([]bool, n)
	safeActions = make([][]int, n)
	for s := 0; s < n; s++ {
		_, isTarget := targets[s]
		win[s] = isTarget || !removed[s]
		if !win[s] {
			continue
		}
		var safe []int
		for k := range unsafe[s] {
			if !unsafe[s][k] {
				safe = append(safe, k)
			}
		}
		safeActions[s] = safe
	}

	return win, safeActions
}
