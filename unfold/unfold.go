package unfold

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mdplp/mdp"
)

// Sentinel errors.
var (
	// ErrNegativeBound indicates a negative length budget l.
	ErrNegativeBound = errors.New("unfold: length bound must be non-negative")

	// ErrSourceOutOfRange indicates s0 is not a valid state of the base MDP.
	ErrSourceOutOfRange = errors.New("unfold: source state out of range")
)

// point is a discovered (s, v) pair in the unfolded state space.
type point struct {
	s, v int
}

// Unfolded is the product MDP S x {0..l} U {bot}. It embeds its own
// *mdp.MDP (built with SkipValidation, since every synthesized distribution
// is constructed to already sum to 1) and owns its distribution tables
// independently of the base MDP.
type Unfolded struct {
	*mdp.MDP

	l            int
	botIndex     int
	points       []point     // unfolded index -> (s, v); len == botIndex
	indexOf      map[point]int // (s, v) -> unfolded index, inverse of points
	targetStates map[int]struct{}
}

// Unfold builds the unfolded MDP for base, starting state s0, target set
// targets, and length bound l: states are created
// lazily, reached only via a DFS from (s0, 0); an action whose weight would
// push the accumulated weight past l collapses to bot with probability 1;
// target states get a single self-loop action and are recorded as the image
// T*; bot self-loops.
func Unfold(base *mdp.MDP, s0 int, targets map[int]struct{}, l int) (*Unfolded, error) {
	if l < 0 {
		return nil, ErrNegativeBound
	}
	if s0 < 0 || s0 >= base.NumberOfStates() {
		return nil, ErrSourceOutOfRange
	}

	order, index := discover(base, s0, targets, l)
	botIdx := len(order)
	n := len(order) + 1
	loopAlpha := base.NumberOfActions()
	numActions := loopAlpha + 1

	weights := make([]int64, numActions)
	actionNames := make([]string, numActions)
	for a := 0; a < loopAlpha; a++ {
		weights[a] = base.Weight(a)
		actionNames[a] = base.ActionName(a)
	}
	weights[loopAlpha] = 1
	actionNames[loopAlpha] = "loop"

	stateNames := make([]string, n)
	for idx, pt := range order {
		stateNames[idx] = fmt.Sprintf("(%s, %d)", base.StateName(pt.s), pt.v)
	}
	stateNames[botIdx] = "⊥" // "⊥"

	um, err := mdp.New(n, numActions, weights,
		mdp.SkipValidation(),
		mdp.WithStateNames(stateNames),
		mdp.WithActionNames(actionNames),
	)
	if err != nil {
		return nil, err
	}

	targetStates := make(map[int]struct{})
	for idx, pt := range order {
		if _, isTarget := targets[pt.s]; isTarget {
			if err := um.Enable(idx, loopAlpha, map[int]float64{idx: 1}); err != nil {
				return nil, err
			}
			targetStates[idx] = struct{}{}
			continue
		}
		for _, as := range base.AlphaSuccessors(pt.s) {
			w := int(base.Weight(as.Alpha))
			if pt.v+w > l {
				if err := um.Enable(idx, as.Alpha, map[int]float64{botIdx: 1}); err != nil {
					return nil, err
				}
				continue
			}
			nv := pt.v + w
			dist := make(map[int]float64, len(as.Succ))
			for i, sp := range as.Succ {
				spIdx := index[point{s: sp, v: nv}]
				dist[spIdx] += as.Prob[i]
			}
			if err := um.Enable(idx, as.Alpha, dist); err != nil {
				return nil, err
			}
		}
	}
	if err := um.Enable(botIdx, loopAlpha, map[int]float64{botIdx: 1}); err != nil {
		return nil, err
	}

	return &Unfolded{
		MDP:          um,
		l:            l,
		botIndex:     botIdx,
		points:       order,
		indexOf:      index,
		targetStates: targetStates,
	}, nil
}

// discover runs the explicit-work-stack DFS from (s0, 0), returning the
// discovery order (order[i] is the (s,v) pair assigned index i) and the
// reverse index map.
func discover(base *mdp.MDP, s0 int, targets map[int]struct{}, l int) ([]point, map[point]int) {
	start := point{s: s0, v: 0}
	index := map[point]int{start: 0}
	order := []point{start}
	stack := []point{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, isTarget := targets[cur.s]; isTarget {
			continue // target states only self-loop; nothing further to discover
		}
		for _, as := range base.AlphaSuccessors(cur.s) {
			w := int(base.Weight(as.Alpha))
			if cur.v+w > l {
				continue // collapses to bot, which always exists
			}
			nv := cur.v + w
			for _, sp := range as.Succ {
				key := point{s: sp, v: nv}
				if _, seen := index[key]; seen {
					continue
				}
				index[key] = len(order)
				order = append(order, key)
				stack = append(stack, key)
			}
		}
	}

	return order, index
}

// Index returns the unfolded state index for (s, v), if it was reached
// during unfolding.
func (u *Unfolded) Index(s, v int) (int, bool) {
	idx, ok := u.indexOf[point{s: s, v: v}]

	return idx, ok
}

// Convert returns the (s, v) pair that unfolded index i represents, and
// whether i is the sink state bot.
func (u *Unfolded) Convert(i int) (s, v int, isBot bool) {
	if i == u.botIndex {
		return 0, 0, true
	}
	pt := u.points[i]

	return pt.s, pt.v, false
}

// BotIndex returns the unfolded index of the sink state bot.
func (u *Unfolded) BotIndex() int { return u.botIndex }

// TargetStates returns the image of T reached during unfolding — the set
// T* that the reach solver treats as its target set on this Unfolded MDP.
func (u *Unfolded) TargetStates() map[int]struct{} {
	return u.targetStates
}
