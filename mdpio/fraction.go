package mdpio

import (
	"fmt"
	"strconv"
	"strings"
)

// parseProbability accepts a plain decimal literal ("0.5") or an "a/b"
// rational literal ("1/2") and returns its float64 value. A leading "-"
// on either the whole literal or a rational's numerator/denominator is
// rejected.
func parseProbability(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "-") {
		return 0, ErrNonPositiveProbability
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		if strings.HasPrefix(strings.TrimSpace(num), "-") || strings.HasPrefix(strings.TrimSpace(den), "-") {
			return 0, ErrNonPositiveProbability
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrParse, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if d <= 0 {
			return 0, ErrNonPositiveProbability
		}

		return n / d, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return v, nil
}

// probabilityFrom normalizes a decoded YAML scalar (string, float64, or
// int) into a probability value via parseProbability.
func probabilityFrom(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case string:
		return parseProbability(v)
	case float64:
		if v <= 0 {
			return 0, ErrNonPositiveProbability
		}

		return v, nil
	case int:
		if v <= 0 {
			return 0, ErrNonPositiveProbability
		}

		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: unsupported probability value %v", ErrParse, raw)
	}
}
