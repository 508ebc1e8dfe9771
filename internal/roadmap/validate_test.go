package roadmap

import (
	"strings"
	"testing"
)

func TestSeedCatalogIsValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog failed validation: %v", err)
	}
}

func TestValidate_RejectsPrereqCycle(t *testing.T) {
	resources := []Resource{
		{ID: "a", Title: "A", Type: TypeReading, Phase: PhaseFoundations,
			SkillKeys: []string{"web_html"}, Difficulty: 1, EstimatedHours: 1,
			Prerequisites: []string{"b"}},
		{ID: "b", Title: "B", Type: TypeReading, Phase: PhaseFoundations,
			SkillKeys: []string{"web_css"}, Difficulty: 1, EstimatedHours: 1,
			Prerequisites: []string{"a"}},
	}
	err := validateResources(resources)
	if err == nil {
		t.Fatal("expected cycle to be rejected")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention the cycle, got: %v", err)
	}
}

func TestValidate_RejectsLaterPhasePrereq(t *testing.T) {
	resources := []Resource{
		{ID: "early", Title: "Early", Type: TypeReading, Phase: PhaseFoundations,
			SkillKeys: []string{"web_html"}, Difficulty: 1, EstimatedHours: 1,
			Prerequisites: []string{"late"}},
		{ID: "late", Title: "Late", Type: TypeReading, Phase: PhaseAdvanced,
			SkillKeys: []string{"web_css"}, Difficulty: 1, EstimatedHours: 1},
	}
	if err := validateResources(resources); err == nil {
		t.Fatal("expected later-phase prerequisite to be rejected")
	}
}

func TestValidate_RejectsUnknownSkillKey(t *testing.T) {
	resources := []Resource{
		{ID: "r", Title: "R", Type: TypeReading, Phase: PhaseFoundations,
			SkillKeys: []string{"not_a_skill"}, Difficulty: 1, EstimatedHours: 1},
	}
	if err := validateResources(resources); err == nil {
		t.Fatal("expected unknown skill key to be rejected")
	}
}

func TestValidate_RejectsBadDifficultyAndHours(t *testing.T) {
	resources := []Resource{
		{ID: "r", Title: "R", Type: TypeReading, Phase: PhaseFoundations,
			SkillKeys: []string{"web_html"}, Difficulty: 6, EstimatedHours: 0},
	}
	err := validateResources(resources)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "difficulty") {
		t.Errorf("error should mention difficulty, got: %v", err)
	}
	if !strings.Contains(err.Error(), "hours") {
		t.Errorf("error should mention hours, got: %v", err)
	}
}

func TestValidate_RejectsUnknownType(t *testing.T) {
	resources := []Resource{
		{ID: "r", Title: "R", Type: ResourceType("PODCAST"), Phase: PhaseFoundations,
			SkillKeys: []string{"web_html"}, Difficulty: 1, EstimatedHours: 1},
	}
	if err := validateResources(resources); err == nil {
		t.Fatal("expected unknown resource type to be rejected")
	}
}
