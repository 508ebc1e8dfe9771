package mastery

import (
	"math"
	"testing"
)

func TestUpdate_FirstObservationMovesSubstantially(t *testing.T) {
	sm := SkillMastery{SkillKey: "js_syntax"}

	next := Update(sm, 1.0, 1.0)
	if next.Mastery < 0.4 {
		t.Errorf("first observation moved mastery to %v, want >= 0.4", next.Mastery)
	}
	if next.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", next.Attempts)
	}
	if next.Confidence <= 0 {
		t.Errorf("Confidence = %v, want > 0", next.Confidence)
	}
}

func TestUpdate_HighConfidenceResistsSingleObservation(t *testing.T) {
	fresh := SkillMastery{Mastery: 0.8, Confidence: 0.0, Attempts: 0}
	settled := SkillMastery{Mastery: 0.8, Confidence: 0.9, Attempts: 10}

	freshStep := math.Abs(Update(fresh, 0.0, 1.0).Mastery - fresh.Mastery)
	settledStep := math.Abs(Update(settled, 0.0, 1.0).Mastery - settled.Mastery)

	if settledStep >= freshStep {
		t.Errorf("settled step %v should be smaller than fresh step %v", settledStep, freshStep)
	}
}

func TestUpdate_WeightScalesStep(t *testing.T) {
	sm := SkillMastery{Mastery: 0.2}

	full := Update(sm, 1.0, 1.0).Mastery - sm.Mastery
	half := Update(sm, 1.0, 0.5).Mastery - sm.Mastery

	if math.Abs(half*2-full) > 1e-9 {
		t.Errorf("half-weight step %v should be half of full step %v", half, full)
	}
}

func TestUpdate_ZeroWeightStillCountsAttempt(t *testing.T) {
	sm := SkillMastery{Mastery: 0.5, Attempts: 3}
	next := Update(sm, 1.0, 0)
	if next.Mastery != 0.5 {
		t.Errorf("Mastery = %v, want unchanged 0.5", next.Mastery)
	}
	if next.Attempts != 4 {
		t.Errorf("Attempts = %d, want 4", next.Attempts)
	}
	if next.Confidence <= sm.Confidence {
		t.Errorf("Confidence = %v, want increase over %v", next.Confidence, sm.Confidence)
	}
}

func TestUpdate_RepeatedObservationsConverge(t *testing.T) {
	sm := SkillMastery{}
	prev := sm
	for i := 0; i < 50; i++ {
		sm = Update(sm, 0.9, 1.0)
		if sm.Mastery < prev.Mastery {
			t.Fatalf("attempt %d: mastery decreased %v -> %v", i, prev.Mastery, sm.Mastery)
		}
		if sm.Mastery > 0.9+1e-9 {
			t.Fatalf("attempt %d: mastery %v overshot observation 0.9", i, sm.Mastery)
		}
		if sm.Confidence < prev.Confidence {
			t.Fatalf("attempt %d: confidence decreased %v -> %v", i, prev.Confidence, sm.Confidence)
		}
		prev = sm
	}
	if sm.Mastery < 0.85 {
		t.Errorf("after 50 observations of 0.9, mastery = %v, want near 0.9", sm.Mastery)
	}
}

func TestSelfReport_Mapping(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 0.0},
		{2, 0.25},
		{3, 0.5},
		{4, 0.75},
		{5, 1.0},
		{0, 0.0},  // clamped up to level 1
		{9, 1.0},  // clamped down to level 5
		{-3, 0.0}, // clamped up to level 1
	}
	for _, tc := range cases {
		sm := SelfReport("prog_loops", tc.level)
		if sm.Mastery != tc.want {
			t.Errorf("SelfReport(%d).Mastery = %v, want %v", tc.level, sm.Mastery, tc.want)
		}
		if sm.Confidence != selfReportConfidence {
			t.Errorf("SelfReport(%d).Confidence = %v, want %v", tc.level, sm.Confidence, selfReportConfidence)
		}
		if sm.Attempts != 1 {
			t.Errorf("SelfReport(%d).Attempts = %d, want 1", tc.level, sm.Attempts)
		}
	}
}
