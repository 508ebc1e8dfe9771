package mastery

import (
	"testing"

	"pgregory.net/rapid"
)

// For any starting state and any observation in [0,1], the updated
// mastery stays in [0,1] and confidence never decreases.
func TestProperty_UpdateStaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		current := SkillMastery{
			Mastery:    rapid.Float64Range(0, 1).Draw(rt, "mastery"),
			Confidence: rapid.Float64Range(0, 1).Draw(rt, "confidence"),
			Attempts:   rapid.IntRange(0, 100).Draw(rt, "attempts"),
		}
		observed := rapid.Float64Range(0, 1).Draw(rt, "observed")
		weight := rapid.Float64Range(0, 1).Draw(rt, "weight")

		next := Update(current, observed, weight)

		if next.Mastery < 0 || next.Mastery > 1 {
			rt.Errorf("Mastery = %v, want in [0,1]", next.Mastery)
		}
		if next.Confidence < current.Confidence || next.Confidence > 1 {
			rt.Errorf("Confidence = %v, want in [%v,1]", next.Confidence, current.Confidence)
		}
		if next.Attempts != current.Attempts+1 {
			rt.Errorf("Attempts = %d, want %d", next.Attempts, current.Attempts+1)
		}
	})
}

// Repeated identical observations move mastery monotonically toward the
// observed score without overshooting it.
func TestProperty_RepeatedObservationsMonotone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sm := SkillMastery{
			Mastery:    rapid.Float64Range(0, 1).Draw(rt, "start"),
			Confidence: rapid.Float64Range(0, 1).Draw(rt, "confidence"),
		}
		observed := rapid.Float64Range(0, 1).Draw(rt, "observed")
		reps := rapid.IntRange(1, 30).Draw(rt, "reps")

		startBelow := sm.Mastery <= observed
		prev := sm.Mastery
		for i := 0; i < reps; i++ {
			sm = Update(sm, observed, 1.0)
			if startBelow {
				if sm.Mastery < prev || sm.Mastery > observed+1e-9 {
					rt.Fatalf("step %d: mastery %v left [%v, %v]", i, sm.Mastery, prev, observed)
				}
			} else {
				if sm.Mastery > prev || sm.Mastery < observed-1e-9 {
					rt.Fatalf("step %d: mastery %v left [%v, %v]", i, sm.Mastery, observed, prev)
				}
			}
			prev = sm.Mastery
		}
	})
}
