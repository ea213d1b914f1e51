package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the reference tables.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(questions []Question, archetypes []Archetype, badges []Badge) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "catalog has no questions")
	}
	if len(archetypes) == 0 {
		errs = append(errs, "catalog has no archetypes")
	}

	for i, q := range questions {
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question %d has no options", i+1))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" {
				errs = append(errs, fmt.Sprintf("question %d has an option with empty ID", i+1))
				continue
			}
			if seen[o.ID] {
				errs = append(errs, fmt.Sprintf("question %d: duplicate option ID %q", i+1, o.ID))
			}
			seen[o.ID] = true
			for _, d := range AllDimensions() {
				if o.Scores.Get(d) < 0 {
					errs = append(errs, fmt.Sprintf("question %d option %q: negative %s contribution", i+1, o.ID, d))
				}
			}
		}
	}

	archetypeIDs := make(map[string]bool, len(archetypes))
	for _, a := range archetypes {
		if archetypeIDs[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate archetype ID: %q", a.ID))
		}
		archetypeIDs[a.ID] = true
		if !a.Dimension.Valid() {
			errs = append(errs, fmt.Sprintf("archetype %q has unknown dimension %q", a.ID, a.Dimension))
		}
		if !a.Theme.Valid() {
			errs = append(errs, fmt.Sprintf("archetype %q has unknown theme %q", a.ID, a.Theme))
		}
		if a.Rarity < 0 || a.Rarity > 100 {
			errs = append(errs, fmt.Sprintf("archetype %q rarity %.2f outside [0, 100]", a.ID, a.Rarity))
		}
	}

	badgeIDs := make(map[string]bool, len(badges))
	for _, b := range badges {
		if badgeIDs[b.ID] {
			errs = append(errs, fmt.Sprintf("duplicate badge ID: %q", b.ID))
		}
		badgeIDs[b.ID] = true
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
