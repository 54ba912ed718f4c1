// Package profile holds the static professional profile that the project
// header is rendered from.
//
// The canonical profile ships compiled into the binary (see [Default]); the
// loader functions exist for library callers and tests that want to render a
// header for their own data. The program itself never reads an external file.
package profile

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Profile is the full set of static fields the header is built from.
// Values are treated as immutable once constructed; nothing in this module
// mutates a Profile after it has been validated.
type Profile struct {
	// Author is the profile owner's display name.
	Author string `yaml:"author"`

	// Organization is the business name shown in the header title.
	Organization string `yaml:"organization"`

	// Motto is a short free-text slogan.
	Motto string `yaml:"motto"`

	// Location is the primary office location.
	Location string `yaml:"location"`

	// AcceptingClients reports whether new client work is being taken on.
	AcceptingClients bool `yaml:"accepting_clients"`

	// RemoteWorkshops reports whether workshops are offered remotely.
	RemoteWorkshops bool `yaml:"remote_workshops"`

	// Hiring reports whether open positions exist.
	Hiring bool `yaml:"hiring"`

	// CurrentYear is the year the profile was last reviewed.
	// Must be >= YearStarted.
	CurrentYear int `yaml:"current_year"`

	// YearStarted is the year the organization was founded.
	YearStarted int `yaml:"year_started"`

	// Employees is the current headcount.
	Employees int `yaml:"employees"`

	// Services lists offered services. Order is preserved in the header.
	Services []string `yaml:"services"`

	// OfficeLocations lists office cities. Order is preserved in the header.
	OfficeLocations []string `yaml:"office_locations"`

	// SatisfactionScores holds client satisfaction ratings on a 0–5 scale.
	// At least two scores are required for the derived statistics.
	SatisfactionScores []float64 `yaml:"satisfaction_scores"`
}

//go:embed defaults.yaml
var defaultsYAML []byte

var loadDefault = sync.OnceValue(func() Profile {
	p, err := LoadFromReader(bytes.NewReader(defaultsYAML))
	if err != nil {
		// The embedded document is part of the build; a decode or validation
		// failure here is a programmer error, not a runtime condition.
		panic(fmt.Sprintf("profile: embedded defaults are invalid: %v", err))
	}
	return p
})

// Default returns the compiled-in profile. The embedded document is parsed
// and validated once; subsequent calls return the same value.
func Default() Profile {
	return loadDefault()
}

// Load reads and validates a profile YAML file from disk.
// Returns a descriptive error if the file cannot be opened or parsed.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := LoadFromReader(f)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: parse %q: %w", path, err)
	}
	return p, nil
}

// LoadFromReader decodes profile YAML from r and validates the result.
// Useful in tests where profiles are constructed from string literals.
func LoadFromReader(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // reject unknown keys to catch typos
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode yaml: %w", err)
	}
	if err := Validate(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
