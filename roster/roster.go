// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

// Roster is the fixed list of entries every session compares.
type Roster struct {
	Title   string   `yaml:"title" validate:"max=200"`
	Entries []string `yaml:"entries" validate:"required,min=2,max=200,unique,dive,required,max=100"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default is the roster used when no file is configured.
func Default() Roster {
	return Roster{
		Title: "Head to head",
		Entries: []string{
			"Bray", "Audrey", "Veronica", "Abi", "Sabrina",
			"Alyssa", "Isabel", "Kenna", "Ephraim", "Rhys",
			"Rou", "Hackbacon", "Alyx", "Xinyi", "Rena",
		},
	}
}

// Load reads and validates a YAML roster file.
func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("failed to read roster: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML roster document.
func Parse(data []byte) (Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("failed to parse roster: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}

// Validate checks the roster against its struct tags.
func (r Roster) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid roster: field %s failed %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid roster: %w", err)
	}
	return nil
}

// Search returns entries fuzzily matching query, best match first.
// An empty query returns every entry in roster order.
func (r Roster) Search(query string) []string {
	if query == "" {
		out := make([]string, len(r.Entries))
		copy(out, r.Entries)
		return out
	}

	ranks := fuzzy.RankFindNormalizedFold(query, r.Entries)
	sort.Stable(ranks)

	out := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, rank.Target)
	}
	return out
}
