package header

import (
	"errors"
	"fmt"
	"strings"

	"github.com/larrygold18/datafun-01-utils/internal/profile"
	"github.com/larrygold18/datafun-01-utils/internal/stats"
)

// SelfCheck runs a small set of consistency assertions against p and its
// rendered header block. A non-nil result signals a logic or data
// inconsistency and should halt the program; it is not an environmental
// condition.
//
// Checks:
//   - the years-active arithmetic matches the profile's year fields;
//   - the counts printed in the block equal the actual list lengths;
//   - min ≤ mean ≤ max over the satisfaction scores;
//   - the block contains the organization and author strings.
func SelfCheck(p profile.Profile) error {
	block, err := Compose(p)
	if err != nil {
		return fmt.Errorf("header: self-check could not compose block: %w", err)
	}
	// Compose succeeded, so the score list is long enough to summarize.
	sum, err := stats.Summarize(p.SatisfactionScores)
	if err != nil {
		return err
	}

	var errs []error

	active := stats.YearsActive(p.CurrentYear, p.YearStarted)
	if p.YearStarted+active != p.CurrentYear {
		errs = append(errs, fmt.Errorf("years active %d does not bridge %d to %d", active, p.YearStarted, p.CurrentYear))
	}
	if want := fmt.Sprintf("%d (since %d)", active, p.YearStarted); !strings.Contains(block, want) {
		errs = append(errs, fmt.Errorf("block is missing years-active value %q", want))
	}

	for label, n := range map[string]int{
		"Office Locations":           len(p.OfficeLocations),
		"Services":                   len(p.Services),
		"Client Satisfaction Scores": len(p.SatisfactionScores),
	} {
		if want := fmt.Sprintf("%s (%d):", label, n); !strings.Contains(block, want) {
			errs = append(errs, fmt.Errorf("block count for %s does not match list length %d", label, n))
		}
	}

	if sum.Min > sum.Mean || sum.Mean > sum.Max {
		errs = append(errs, fmt.Errorf("mean %v is not between min %v and max %v", sum.Mean, sum.Min, sum.Max))
	}

	if !strings.Contains(block, p.Organization) {
		errs = append(errs, errors.New("block is missing the organization name"))
	}
	if !strings.Contains(block, p.Author) {
		errs = append(errs, errors.New("block is missing the author name"))
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
