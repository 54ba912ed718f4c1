package header_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/larrygold18/datafun-01-utils/internal/header"
	"github.com/larrygold18/datafun-01-utils/internal/profile"
	"github.com/larrygold18/datafun-01-utils/internal/stats"
)

func testProfile() profile.Profile {
	return profile.Profile{
		Author:             "Jane Doe",
		Organization:       "Doe Data",
		Motto:              "Measure twice.",
		Location:           "Austin, TX",
		AcceptingClients:   true,
		RemoteWorkshops:    true,
		Hiring:             false,
		CurrentYear:        2025,
		YearStarted:        2020,
		Employees:          4,
		Services:           []string{"Consulting", "Training"},
		OfficeLocations:    []string{"Austin, TX"},
		SatisfactionScores: []float64{4.8, 4.6, 4.9, 5.0, 4.7},
	}
}

func TestCompose_Layout(t *testing.T) {
	t.Parallel()

	block, err := header.Compose(testProfile())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	lines := strings.Split(block, "\n")
	border := strings.Repeat("*", 58)
	if lines[0] != border {
		t.Errorf("first line = %q, want border", lines[0])
	}
	if lines[len(lines)-1] != border {
		t.Errorf("last line = %q, want border", lines[len(lines)-1])
	}
	if lines[1] != "Doe Data — Project Header" {
		t.Errorf("title line = %q", lines[1])
	}
	if lines[2] != border {
		t.Errorf("third line = %q, want border", lines[2])
	}

	for _, want := range []string{
		"Author:",
		"Jane Doe",
		"Motto:",
		"Primary Location:",
		"Years Active:",
		"5 (since 2020)",
		"Accepting New Clients?:",
		"Currently Hiring?:",
		"Remote Workshops?:",
		"Employees:",
		"Office Locations (1):",
		"Services (2):",
		"Client Satisfaction Scores (5):",
		"Minimum Satisfaction Score:",
		"4.6",
		"Maximum Satisfaction Score:",
		"Mean Satisfaction Score:",
		"4.80",
		"Standard Deviation:",
		"0.16",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("block is missing %q\n%s", want, block)
		}
	}
}

func TestCompose_Idempotent(t *testing.T) {
	t.Parallel()

	p := testProfile()
	a, err := header.Compose(p)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	b, err := header.Compose(p)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if a != b {
		t.Error("Compose is not idempotent: two calls produced different text")
	}
}

func TestCompose_QuotedLists(t *testing.T) {
	t.Parallel()

	block, err := header.Compose(testProfile())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// Items may contain commas, so the list rendering quotes each item.
	if !strings.Contains(block, `["Austin, TX"]`) {
		t.Errorf("office locations not rendered as quoted list:\n%s", block)
	}
	if !strings.Contains(block, `["Consulting", "Training"]`) {
		t.Errorf("services not rendered as quoted list:\n%s", block)
	}
	if !strings.Contains(block, "[4.8, 4.6, 4.9, 5, 4.7]") {
		t.Errorf("scores not rendered as raw sequence:\n%s", block)
	}
}

func TestCompose_TooFewScores(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.SatisfactionScores = []float64{4.5}
	_, err := header.Compose(p)
	if !errors.Is(err, stats.ErrTooFewScores) {
		t.Errorf("Compose err = %v, want ErrTooFewScores", err)
	}
}

func TestByline_Accessors(t *testing.T) {
	t.Parallel()

	a := header.Byline()
	b := header.ComposeByline()
	if a != b {
		t.Error("Byline and ComposeByline should return identical text")
	}
	if a != header.Byline() {
		t.Error("Byline should return identical text on every call")
	}

	p := profile.Default()
	if !strings.Contains(a, p.Organization) {
		t.Errorf("byline is missing organization %q", p.Organization)
	}
	if !strings.Contains(a, p.Author) {
		t.Errorf("byline is missing author %q", p.Author)
	}
}

func TestSelfCheck_Passes(t *testing.T) {
	t.Parallel()

	if err := header.SelfCheck(testProfile()); err != nil {
		t.Errorf("SelfCheck = %v, want nil", err)
	}
	if err := header.SelfCheck(profile.Default()); err != nil {
		t.Errorf("SelfCheck(Default()) = %v, want nil", err)
	}
}

func TestSelfCheck_TooFewScores(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.SatisfactionScores = nil
	if err := header.SelfCheck(p); err == nil {
		t.Error("SelfCheck should fail when the block cannot be composed")
	}
}
