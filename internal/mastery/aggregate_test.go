package mastery

import (
	"testing"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

func TestAggregate_EmptySkillMap(t *testing.T) {
	scores := Aggregate(map[string]SkillMastery{})

	if len(scores) != len(taxonomy.AllDimensions()) {
		t.Fatalf("got %d dimensions, want %d", len(scores), len(taxonomy.AllDimensions()))
	}
	for dim, ds := range scores {
		if ds.Score != 0 || ds.Confidence != 0 || ds.AssessedCount != 0 {
			t.Errorf("%s: score=%v confidence=%v assessed=%d, want all zero",
				dim, ds.Score, ds.Confidence, ds.AssessedCount)
		}
		if ds.SkillCount == 0 {
			t.Errorf("%s: SkillCount = 0, want total skills in dimension", dim)
		}
	}
}

func TestAggregate_IgnoresUnassessedSkills(t *testing.T) {
	skills := map[string]SkillMastery{
		"prog_arrays":    {SkillKey: "prog_arrays", Mastery: 0.9, Confidence: 0.8, Attempts: 3},
		"prog_operators": {SkillKey: "prog_operators", Mastery: 0.9, Confidence: 0.8, Attempts: 0}, // never observed
	}
	ds := Aggregate(skills)[taxonomy.DimProgFundamentals]
	if ds.AssessedCount != 1 {
		t.Errorf("AssessedCount = %d, want 1", ds.AssessedCount)
	}
	if ds.Score != 0.9 {
		t.Errorf("Score = %v, want 0.9 (only the assessed skill)", ds.Score)
	}
}

// prog_arrays (weight 1.0, mastery 0.8) should outweigh prog_operators
// (weight 0.8, mastery 0), pulling the dimension above a plain average.
func TestAggregate_WeightBiasedAverage(t *testing.T) {
	skills := map[string]SkillMastery{
		"prog_arrays":    {SkillKey: "prog_arrays", Mastery: 0.8, Confidence: 0.7, Attempts: 5},
		"prog_operators": {SkillKey: "prog_operators", Mastery: 0, Confidence: 0.9, Attempts: 10},
	}
	ds := Aggregate(skills)[taxonomy.DimProgFundamentals]

	// 0.8*1.0 / (1.0+0.8) = 0.444; plain average would be 0.4.
	if ds.Score <= 0.4 {
		t.Errorf("Score = %v, want weight-biased above the 0.4 plain average", ds.Score)
	}
	if ds.AssessedCount != 2 {
		t.Errorf("AssessedCount = %d, want 2", ds.AssessedCount)
	}
}

func TestOverallScore_OnlyAssessedDimensionsCount(t *testing.T) {
	skills := map[string]SkillMastery{
		"js_syntax": {SkillKey: "js_syntax", Mastery: 0.6, Confidence: 0.5, Attempts: 2},
	}
	scores := Aggregate(skills)
	overall := OverallScore(scores)
	if overall != scores[taxonomy.DimJavaScript].Score {
		t.Errorf("OverallScore = %v, want %v (single assessed dimension)",
			overall, scores[taxonomy.DimJavaScript].Score)
	}

	if got := OverallScore(Aggregate(nil)); got != 0 {
		t.Errorf("OverallScore of empty profile = %v, want 0", got)
	}
}

func TestWeakDimensions_UnassessedAreWeak(t *testing.T) {
	skills := map[string]SkillMastery{
		"js_syntax":  {SkillKey: "js_syntax", Mastery: 0.9, Confidence: 0.8, Attempts: 4},
		"js_objects": {SkillKey: "js_objects", Mastery: 0.8, Confidence: 0.8, Attempts: 4},
		"js_async":   {SkillKey: "js_async", Mastery: 0.7, Confidence: 0.8, Attempts: 4},
	}
	weak := WeakDimensions(Aggregate(skills), 0.5)

	for _, dim := range weak {
		if dim == taxonomy.DimJavaScript {
			t.Error("javascript should not be weak")
		}
	}
	// Every other dimension is unassessed and therefore weak.
	if len(weak) != len(taxonomy.AllDimensions())-1 {
		t.Errorf("weak count = %d, want %d", len(weak), len(taxonomy.AllDimensions())-1)
	}
}

func TestWeakSkillSet(t *testing.T) {
	skills := map[string]SkillMastery{
		"web_html": {SkillKey: "web_html", Mastery: 0.9, Confidence: 0.8, Attempts: 3},
		"web_css":  {SkillKey: "web_css", Mastery: 0.2, Confidence: 0.5, Attempts: 3},
	}
	weak := WeakSkillSet(skills, []taxonomy.Dimension{taxonomy.DimWebFoundations}, 0.5)

	if weak["web_html"] {
		t.Error("web_html has high mastery, should not be weak")
	}
	if !weak["web_css"] {
		t.Error("web_css should be weak")
	}
	if !weak["web_layout"] {
		t.Error("never-assessed web_layout should be weak")
	}
}
