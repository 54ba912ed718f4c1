package profile

import (
	"errors"
	"fmt"
)

// Score bounds for satisfaction ratings.
const (
	minScore = 0.0
	maxScore = 5.0
)

// Validate checks a [Profile] for required fields and coherent values.
//
// Rules:
//   - Author and Organization must be non-empty.
//   - CurrentYear must not precede YearStarted.
//   - Services, OfficeLocations and SatisfactionScores must be non-empty.
//   - Every satisfaction score must lie within [0, 5].
func Validate(p Profile) error {
	var errs []error

	if p.Author == "" {
		errs = append(errs, errors.New("author must not be empty"))
	}
	if p.Organization == "" {
		errs = append(errs, errors.New("organization must not be empty"))
	}
	if p.CurrentYear < p.YearStarted {
		errs = append(errs, fmt.Errorf("current_year %d precedes year_started %d", p.CurrentYear, p.YearStarted))
	}
	if len(p.Services) == 0 {
		errs = append(errs, errors.New("services must not be empty"))
	}
	if len(p.OfficeLocations) == 0 {
		errs = append(errs, errors.New("office_locations must not be empty"))
	}
	if len(p.SatisfactionScores) == 0 {
		errs = append(errs, errors.New("satisfaction_scores must not be empty"))
	}
	for i, s := range p.SatisfactionScores {
		if s < minScore || s > maxScore {
			errs = append(errs, fmt.Errorf("satisfaction_scores[%d]: %v is outside [%v, %v]", i, s, minScore, maxScore))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
