package mastery

import (
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// DimensionScore is a derived, weight-normalized rollup of one
// dimension's assessed skills. It is a pure projection of the current
// SkillMastery set, never persisted.
type DimensionScore struct {
	Dimension     taxonomy.Dimension
	Score         float64
	Confidence    float64
	AssessedCount int
	SkillCount    int
}

// AssessedRatio returns the fraction of the dimension's skills with at
// least one observation.
func (d DimensionScore) AssessedRatio() float64 {
	if d.SkillCount == 0 {
		return 0
	}
	return float64(d.AssessedCount) / float64(d.SkillCount)
}

// Aggregate rolls the per-skill estimates up into one score per
// dimension. Only skills with attempts > 0 count as assessed; a
// dimension with no assessed skills reports score 0 and confidence 0.
func Aggregate(skills map[string]SkillMastery) map[taxonomy.Dimension]DimensionScore {
	result := make(map[taxonomy.Dimension]DimensionScore, len(taxonomy.AllDimensions()))

	for _, dim := range taxonomy.AllDimensions() {
		tags := taxonomy.ByDimension(dim)
		ds := DimensionScore{Dimension: dim, SkillCount: len(tags)}

		var weightSum, scoreSum, confSum float64
		for _, tag := range tags {
			sm, ok := skills[tag.Key]
			if !ok || sm.Attempts == 0 {
				continue
			}
			ds.AssessedCount++
			weightSum += tag.Weight
			scoreSum += tag.Weight * sm.Mastery
			confSum += tag.Weight * sm.Confidence
		}

		if weightSum > 0 {
			ds.Score = scoreSum / weightSum
			ds.Confidence = confSum / weightSum
		}
		result[dim] = ds
	}

	return result
}

// OverallScore averages dimension scores across dimensions that have at
// least one assessed skill. Returns 0 when nothing has been assessed.
func OverallScore(scores map[taxonomy.Dimension]DimensionScore) float64 {
	var sum float64
	var n int
	for _, ds := range scores {
		if ds.AssessedCount == 0 {
			continue
		}
		sum += ds.Score
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// WeakDimensions returns the dimensions whose aggregated score falls
// below threshold, in taxonomy display order. Unassessed dimensions
// count as weak: no evidence is not evidence of strength.
func WeakDimensions(scores map[taxonomy.Dimension]DimensionScore, threshold float64) []taxonomy.Dimension {
	var weak []taxonomy.Dimension
	for _, dim := range taxonomy.AllDimensions() {
		if ds, ok := scores[dim]; !ok || ds.Score < threshold {
			weak = append(weak, dim)
		}
	}
	return weak
}

// WeakSkillSet returns the keys of skills inside the weak dimensions
// whose mastery is below threshold. Skills never assessed are included.
func WeakSkillSet(skills map[string]SkillMastery, weakDims []taxonomy.Dimension, threshold float64) map[string]bool {
	weak := make(map[string]bool)
	for _, dim := range weakDims {
		for _, tag := range taxonomy.ByDimension(dim) {
			sm, ok := skills[tag.Key]
			if !ok || sm.Mastery < threshold {
				weak[tag.Key] = true
			}
		}
	}
	return weak
}
