package steps

import (
	"fmt"
	"strings"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// validateSteps performs all structural checks on the given step set.
// A misconfigured step is a programming error, never a runtime one, so
// every problem is reported at once.
func validateSteps(all []Step) error {
	var errs []string

	kindSet := make(map[Kind]bool, len(AllKinds()))
	for _, k := range AllKinds() {
		kindSet[k] = true
	}

	idSet := make(map[string]bool, len(all))
	orderSet := make(map[int]bool, len(all))
	terminalCount := 0
	maxOrder := 0

	for _, s := range all {
		prefix := fmt.Sprintf("step %q", s.ID)

		if s.ID == "" {
			errs = append(errs, "step with empty ID")
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate step ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if orderSet[s.Order] {
			errs = append(errs, fmt.Sprintf("%s: duplicate order %d", prefix, s.Order))
		}
		orderSet[s.Order] = true
		if s.Order > maxOrder {
			maxOrder = s.Order
		}

		if !kindSet[s.Kind] {
			errs = append(errs, fmt.Sprintf("%s: unknown kind %q", prefix, s.Kind))
			continue
		}

		for _, key := range s.SkillKeys {
			if !taxonomy.HasTag(key) {
				errs = append(errs, fmt.Sprintf("%s: references unknown skill %q", prefix, key))
			}
		}

		switch s.Kind {
		case KindSelfReport:
			if len(s.Fields) == 0 {
				errs = append(errs, prefix+": self-report step has no fields")
			}
			for _, f := range s.Fields {
				if !taxonomy.HasTag(f.SkillKey) {
					errs = append(errs, fmt.Sprintf("%s: field references unknown skill %q", prefix, f.SkillKey))
				}
			}

		case KindMCQ, KindDesignCompare:
			if len(s.Options) < 2 {
				errs = append(errs, prefix+": needs at least 2 options")
			}
			if !hasOption(s.Options, s.CorrectOptionID) {
				errs = append(errs, fmt.Sprintf("%s: correct option %q not among options", prefix, s.CorrectOptionID))
			}
			if len(s.SkillKeys) == 0 {
				errs = append(errs, prefix+": no skills to update")
			}

		case KindMicroMCQ:
			if len(s.Micro) == 0 {
				errs = append(errs, prefix+": micro-MCQ burst has no questions")
			}
			microIDs := make(map[string]bool, len(s.Micro))
			for _, mq := range s.Micro {
				mp := fmt.Sprintf("%s micro %q", prefix, mq.ID)
				if microIDs[mq.ID] {
					errs = append(errs, mp+": duplicate micro question ID")
				}
				microIDs[mq.ID] = true
				if len(mq.Options) < 2 {
					errs = append(errs, mp+": needs at least 2 options")
				}
				if !hasOption(mq.Options, mq.CorrectOptionID) {
					errs = append(errs, fmt.Sprintf("%s: correct option %q not among options", mp, mq.CorrectOptionID))
				}
				if !taxonomy.HasTag(mq.SkillKey) {
					errs = append(errs, fmt.Sprintf("%s: references unknown skill %q", mp, mq.SkillKey))
				}
			}

		case KindShortText, KindDesignCritique:
			if s.MinLength <= 0 {
				errs = append(errs, prefix+": MinLength must be > 0")
			}
			if s.MaxLength > 0 && s.MaxLength < s.MinLength {
				errs = append(errs, prefix+": MaxLength below MinLength")
			}
			if len(s.SkillKeys) == 0 {
				errs = append(errs, prefix+": no skills to update")
			}

		case KindCode:
			if s.Language == "" {
				errs = append(errs, prefix+": code step has no language")
			}
			if len(s.Tests) == 0 {
				errs = append(errs, prefix+": code step has no test cases")
			}
			if len(s.SkillKeys) == 0 {
				errs = append(errs, prefix+": no skills to update")
			}

		case KindSummary:
			terminalCount++
		}

		if s.Kind != KindSelfReport && s.Kind != KindSummary && (s.Weight <= 0 || s.Weight > 1) {
			errs = append(errs, fmt.Sprintf("%s: weight must be in (0, 1], got %f", prefix, s.Weight))
		}
	}

	if terminalCount != 1 {
		errs = append(errs, fmt.Sprintf("intake needs exactly one summary step, found %d", terminalCount))
	}

	// The summary step must be last in order.
	for _, s := range all {
		if s.Kind == KindSummary && s.Order != maxOrder {
			errs = append(errs, fmt.Sprintf("summary step %q must have the highest order", s.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("intake step validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Validate checks the loaded intake sequence for structural issues.
func Validate() error {
	return validateSteps(seq.ordered)
}
