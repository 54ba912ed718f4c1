// Package header renders the project header ("byline"): a bordered,
// fixed-layout text block combining the static profile with the statistics
// derived from its satisfaction scores.
//
// The block for the compiled-in profile is built once and exposed through
// [Byline] and [ComposeByline]; [Compose] renders a block for arbitrary
// profile data.
package header

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/larrygold18/datafun-01-utils/internal/profile"
	"github.com/larrygold18/datafun-01-utils/internal/stats"
)

const (
	// borderWidth is the length of the decorative border lines.
	borderWidth = 58

	// labelWidth is the column at which field values start.
	labelWidth = 28
)

// Compose renders the header block for p. The output is deterministic:
// identical input yields byte-identical text. The only failure mode is a
// score list too short for the derived statistics, which propagates from
// [stats.Summarize].
func Compose(p profile.Profile) (string, error) {
	sum, err := stats.Summarize(p.SatisfactionScores)
	if err != nil {
		return "", err
	}
	active := stats.YearsActive(p.CurrentYear, p.YearStarted)

	border := strings.Repeat("*", borderWidth)

	var b strings.Builder
	line := func(label, value string) {
		// Labels longer than the column (the scores line) still get a space.
		if len(label) >= labelWidth {
			fmt.Fprintf(&b, "%s %s\n", label, value)
			return
		}
		fmt.Fprintf(&b, "%-*s%s\n", labelWidth, label, value)
	}

	b.WriteString(border + "\n")
	b.WriteString(p.Organization + " — Project Header\n")
	b.WriteString(border + "\n")
	line("Author:", p.Author)
	line("Motto:", p.Motto)
	line("Primary Location:", p.Location)
	line("Years Active:", fmt.Sprintf("%d (since %d)", active, p.YearStarted))
	line("Accepting New Clients?:", strconv.FormatBool(p.AcceptingClients))
	line("Currently Hiring?:", strconv.FormatBool(p.Hiring))
	line("Remote Workshops?:", strconv.FormatBool(p.RemoteWorkshops))
	line("Employees:", strconv.Itoa(p.Employees))
	line(fmt.Sprintf("Office Locations (%d):", len(p.OfficeLocations)), quotedList(p.OfficeLocations))
	line(fmt.Sprintf("Services (%d):", len(p.Services)), quotedList(p.Services))
	line(fmt.Sprintf("Client Satisfaction Scores (%d):", sum.Count), scoreList(p.SatisfactionScores))
	line("Minimum Satisfaction Score:", formatScore(sum.Min))
	line("Maximum Satisfaction Score:", formatScore(sum.Max))
	line("Mean Satisfaction Score:", fmt.Sprintf("%.2f", sum.Mean))
	line("Standard Deviation:", fmt.Sprintf("%.2f", sum.StdDev))
	b.WriteString(border)

	return b.String(), nil
}

var defaultByline = sync.OnceValue(func() string {
	text, err := Compose(profile.Default())
	if err != nil {
		// The embedded defaults are validated, so a failure here means the
		// compiled-in data is malformed.
		panic(fmt.Sprintf("header: compose default byline: %v", err))
	}
	return text
})

// Byline returns the header block for the compiled-in profile.
// The block is built on first use and reused afterwards.
func Byline() string {
	return defaultByline()
}

// ComposeByline returns the same block as [Byline]. Kept as a second accessor
// for callers that expect the compose-style name.
func ComposeByline() string {
	return Byline()
}

// quotedList renders labels as a bracketed, comma-separated sequence with
// each item quoted, so items containing commas stay unambiguous.
func quotedList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// scoreList renders scores as a bracketed, comma-separated sequence in
// minimal float notation.
func scoreList(scores []float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = formatScore(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatScore(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}
