package taxonomy

import (
	"strings"
	"testing"
)

func TestValidate_SeedTaxonomyPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed taxonomy validation failed: %v", err)
	}
}

func TestValidateTags_DetectsDuplicateKey(t *testing.T) {
	tags := append(fullDimensionCover(),
		SkillTag{Key: "dup", Name: "Dup", Dimension: DimBackend, Weight: 1.0},
		SkillTag{Key: "dup", Name: "Dup", Dimension: DimBackend, Weight: 1.0},
	)
	err := validateTags(tags)
	if err == nil {
		t.Fatal("expected error for duplicate key, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateTags_DetectsUnknownDimension(t *testing.T) {
	tags := append(fullDimensionCover(),
		SkillTag{Key: "x", Name: "X", Dimension: "not_a_dimension", Weight: 0.5},
	)
	err := validateTags(tags)
	if err == nil {
		t.Fatal("expected error for unknown dimension, got nil")
	}
	if !strings.Contains(err.Error(), "not_a_dimension") {
		t.Errorf("error should mention the dimension, got: %v", err)
	}
}

func TestValidateTags_RejectsWeightOutOfRange(t *testing.T) {
	for _, w := range []float64{0, -0.5, 1.5} {
		tags := append(fullDimensionCover(),
			SkillTag{Key: "x", Name: "X", Dimension: DimDesign, Weight: w},
		)
		if err := validateTags(tags); err == nil {
			t.Errorf("weight %v: expected error, got nil", w)
		}
	}
}

func TestValidateTags_RequiresEveryDimensionPopulated(t *testing.T) {
	tags := []SkillTag{
		{Key: "only", Name: "Only", Dimension: DimJavaScript, Weight: 1.0},
	}
	err := validateTags(tags)
	if err == nil {
		t.Fatal("expected error for empty dimensions, got nil")
	}
	if !strings.Contains(err.Error(), "has no skills") {
		t.Errorf("error should mention empty dimension, got: %v", err)
	}
}

// fullDimensionCover returns one valid tag per dimension so tests can
// focus on a single defect.
func fullDimensionCover() []SkillTag {
	var tags []SkillTag
	for i, d := range AllDimensions() {
		tags = append(tags, SkillTag{
			Key:       "cover_" + string(d),
			Name:      "Cover " + string(rune('A'+i)),
			Dimension: d,
			Weight:    1.0,
		})
	}
	return tags
}
