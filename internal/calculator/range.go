package calculator

import (
	"fmt"
	"regexp"
	"strconv"

	"InvestPlanner/internal/model"
)

// DefaultFallbackRate is used when a return range cannot be parsed.
const DefaultFallbackRate = 8.0

var reRateNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ParseBand extracts the [low, high] bounds from a display string such as "12-15%" or "6%".
// A single number yields low == high. Strings without numbers return ErrUnparseableReturnRange.
func ParseBand(s string) (low, high float64, err error) {
	matches := reRateNumber.FindAllString(stripRangeDash(s), 2)
	if len(matches) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", model.ErrUnparseableReturnRange, s)
	}
	low, err = strconv.ParseFloat(matches[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", model.ErrUnparseableReturnRange, s)
	}
	high = low
	if len(matches) > 1 {
		high, err = strconv.ParseFloat(matches[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", model.ErrUnparseableReturnRange, s)
		}
	}
	if high < low {
		low, high = high, low
	}
	return low, high, nil
}

// ParseRate collapses a return range into one annual rate: the mean of the bounds.
func ParseRate(s string) (float64, error) {
	low, high, err := ParseBand(s)
	if err != nil {
		return 0, err
	}
	return (low + high) / 2, nil
}

// RateOrDefault is ParseRate that never fails.
func RateOrDefault(s string, fallback float64) float64 {
	rate, err := ParseRate(s)
	if err != nil {
		return fallback
	}
	return rate
}

// stripRangeDash turns the separator of "12-15" into a space so "-15" is not read as negative.
// A leading minus (e.g. "-15-30%") is kept.
func stripRangeDash(s string) string {
	b := []byte(s)
	for i := 1; i < len(b); i++ {
		if b[i] == '-' && b[i-1] >= '0' && b[i-1] <= '9' {
			b[i] = ' '
		}
	}
	return string(b)
}
