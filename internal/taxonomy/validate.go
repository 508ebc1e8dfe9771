package taxonomy

import (
	"fmt"
	"strings"
)

// validateTags performs all structural checks on the given tag set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTags(tags []SkillTag) error {
	var errs []string

	known := make(map[Dimension]bool, len(AllDimensions()))
	for _, d := range AllDimensions() {
		known[d] = true
	}

	keySet := make(map[string]bool, len(tags))
	dimSet := make(map[Dimension]bool)

	for _, tag := range tags {
		if tag.Key == "" {
			errs = append(errs, "skill tag with empty key")
			continue
		}
		if keySet[tag.Key] {
			errs = append(errs, fmt.Sprintf("duplicate skill key: %q", tag.Key))
		}
		keySet[tag.Key] = true
		dimSet[tag.Dimension] = true

		if !known[tag.Dimension] {
			errs = append(errs, fmt.Sprintf("skill %q references unknown dimension %q", tag.Key, tag.Dimension))
		}
		if tag.Weight <= 0 || tag.Weight > 1.0 {
			errs = append(errs, fmt.Sprintf("skill %q: weight must be in (0, 1.0], got %f", tag.Key, tag.Weight))
		}
		if tag.Name == "" {
			errs = append(errs, fmt.Sprintf("skill %q has no display name", tag.Key))
		}
	}

	// Every declared dimension must have at least one skill.
	for _, d := range AllDimensions() {
		if !dimSet[d] {
			errs = append(errs, fmt.Sprintf("dimension %q has no skills", d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill taxonomy validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks the loaded taxonomy for structural issues.
func Validate() error {
	return validateTags(t.tags)
}
