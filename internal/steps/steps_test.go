package steps

import (
	"strings"
	"testing"
)

func TestValidate_SeedSequencePasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed sequence validation failed: %v", err)
	}
}

func TestSequence_Navigation(t *testing.T) {
	first := First()
	if first.Order != 1 {
		t.Errorf("First().Order = %d, want 1", first.Order)
	}

	next, ok := Next(first.ID)
	if !ok {
		t.Fatal("expected a step after the first")
	}
	prev, ok := Prev(next.ID)
	if !ok || prev.ID != first.ID {
		t.Errorf("Prev(%q) = %q, want %q", next.ID, prev.ID, first.ID)
	}

	if _, ok := Prev(first.ID); ok {
		t.Error("Prev of first step should report false")
	}

	last := All()[Count()-1]
	if !last.IsTerminal() {
		t.Errorf("last step %q should be the terminal summary", last.ID)
	}
	if _, ok := Next(last.ID); ok {
		t.Error("Next of last step should report false")
	}
}

func TestGet_UnknownStep(t *testing.T) {
	if _, err := Get("no-such-step"); err == nil {
		t.Error("expected error for unknown step ID")
	}
}

func TestEstimatedMinutes(t *testing.T) {
	if EstimatedMinutes() <= 0 {
		t.Error("estimated minutes should be positive")
	}
}

func TestValidateSteps_DetectsBadCorrectOption(t *testing.T) {
	bad := []Step{
		{
			ID: "q", Order: 1, Kind: KindMCQ, Weight: 0.5,
			SkillKeys:       []string{"js_syntax"},
			Options:         []Option{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
			CorrectOptionID: "z",
		},
		{ID: "end", Order: 2, Kind: KindSummary},
	}
	err := validateSteps(bad)
	if err == nil {
		t.Fatal("expected error for missing correct option")
	}
	if !strings.Contains(err.Error(), `"z"`) {
		t.Errorf("error should name the bad option, got: %v", err)
	}
}

func TestValidateSteps_DetectsUnknownKind(t *testing.T) {
	bad := []Step{
		{ID: "q", Order: 1, Kind: "essay"},
		{ID: "end", Order: 2, Kind: KindSummary},
	}
	if err := validateSteps(bad); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("expected unknown-kind error, got: %v", err)
	}
}

func TestValidateSteps_RequiresSummaryLast(t *testing.T) {
	bad := []Step{
		{ID: "end", Order: 1, Kind: KindSummary},
		{
			ID: "q", Order: 2, Kind: KindMCQ, Weight: 0.5,
			SkillKeys:       []string{"js_syntax"},
			Options:         []Option{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
			CorrectOptionID: "a",
		},
	}
	if err := validateSteps(bad); err == nil || !strings.Contains(err.Error(), "highest order") {
		t.Errorf("expected summary-position error, got: %v", err)
	}
}

func TestValidateSteps_DetectsUnknownSkill(t *testing.T) {
	bad := []Step{
		{
			ID: "q", Order: 1, Kind: KindMCQ, Weight: 0.5,
			SkillKeys:       []string{"not_a_skill"},
			Options:         []Option{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
			CorrectOptionID: "a",
		},
		{ID: "end", Order: 2, Kind: KindSummary},
	}
	if err := validateSteps(bad); err == nil || !strings.Contains(err.Error(), "not_a_skill") {
		t.Errorf("expected unknown-skill error, got: %v", err)
	}
}
