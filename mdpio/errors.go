package mdpio

import "errors"

// Sentinel errors returned by Load/LoadFile.
var (
	// ErrNonPositiveWeight indicates an action's weight was <= 0.
	ErrNonPositiveWeight = errors.New("mdpio: action weight must be positive")

	// ErrNonPositiveProbability indicates a transition probability was
	// <= 0, or a rational literal had a non-positive numerator/denominator.
	ErrNonPositiveProbability = errors.New("mdpio: probability must be positive")

	// ErrDistributionSum wraps mdp.ErrInvalidDistribution when an
	// enabled action's transitions do not sum to 1 within tolerance.
	ErrDistributionSum = errors.New("mdpio: transition probabilities do not sum to 1")

	// ErrUnknownReference indicates a transition target or an enabled
	// action name did not resolve to a declared state/action.
	ErrUnknownReference = errors.New("mdpio: unknown state or action reference")

	// ErrParse wraps a malformed YAML document or numeric literal.
	ErrParse = errors.New("mdpio: parse error")
)
