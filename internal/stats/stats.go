// Package stats derives descriptive statistics from the profile's
// satisfaction scores.
package stats

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ErrTooFewScores indicates a score list with fewer than two observations.
// The sample standard deviation is undefined below that, so callers should
// treat this as malformed static data rather than a recoverable condition.
var ErrTooFewScores = errors.New("stats: at least two scores are required")

// Summary holds the derived statistics for a score list.
type Summary struct {
	// Count is the number of observations.
	Count int

	// Min and Max are the smallest and largest observation.
	Min float64
	Max float64

	// Mean is the arithmetic average.
	Mean float64

	// StdDev is the sample standard deviation (unbiased, n−1 denominator).
	StdDev float64
}

// Summarize computes a [Summary] over scores. Pure; the input is not modified.
// Returns [ErrTooFewScores] when fewer than two observations are given.
func Summarize(scores []float64) (Summary, error) {
	if len(scores) < 2 {
		return Summary{}, fmt.Errorf("%w (got %d)", ErrTooFewScores, len(scores))
	}
	return Summary{
		Count:  len(scores),
		Min:    slices.Min(scores),
		Max:    slices.Max(scores),
		Mean:   stat.Mean(scores, nil),
		StdDev: stat.StdDev(scores, nil),
	}, nil
}

// YearsActive returns the number of years between the start year and the
// current year. The profile invariant guarantees a non-negative result.
func YearsActive(currentYear, yearStarted int) int {
	return currentYear - yearStarted
}
