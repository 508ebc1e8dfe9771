package roadmap

import (
	"sort"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// Weights are the selection-scoring constants. They are tuning knobs,
// not derived coefficients, so they stay configurable.
type Weights struct {
	WeakSkill  float64 // per targeted skill in the learner's weak set
	RoleFocus  float64 // per targeted skill in a role focus dimension
	PrereqsMet float64 // when every prerequisite is already selected
	Project    float64 // resource type bonus
	Exercise   float64 // resource type bonus
}

// DefaultWeights returns the standard selection weights.
func DefaultWeights() Weights {
	return Weights{
		WeakSkill:  10,
		RoleFocus:  5,
		PrereqsMet: 20,
		Project:    3,
		Exercise:   2,
	}
}

// DefaultWeakThreshold is the mastery level below which a skill in a
// weak dimension counts as weak.
const DefaultWeakThreshold = 0.5

// Generator selects a time-budgeted roadmap from the catalog.
type Generator struct {
	weights       Weights
	weakThreshold float64
}

// NewGenerator creates a Generator. Zero weights fall back to the
// defaults; a non-positive threshold to DefaultWeakThreshold.
func NewGenerator(w Weights, weakThreshold float64) *Generator {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	if weakThreshold <= 0 {
		weakThreshold = DefaultWeakThreshold
	}
	return &Generator{weights: w, weakThreshold: weakThreshold}
}

// Generate greedily selects resources phase by phase until the hours
// budget runs out. A budget too small for any resource yields an empty
// roadmap; surfacing that is the caller's job. Output order is catalog
// order within each phase, which keeps runs reproducible.
func (g *Generator) Generate(skills map[string]mastery.SkillMastery, role taxonomy.TargetRole, budgetHours float64) []Resource {
	weakDims := mastery.WeakDimensions(mastery.Aggregate(skills), g.weakThreshold)
	weakSkills := mastery.WeakSkillSet(skills, weakDims, g.weakThreshold)

	selected := make(map[string]bool)
	buckets := make(map[Phase][]Resource)
	var usedHours float64

	for _, phase := range AllPhases() {
		candidates := ByPhase(phase)

		scored := make([]scoredResource, 0, len(candidates))
		for _, r := range candidates {
			if selected[r.ID] {
				continue
			}
			scored = append(scored, scoredResource{
				resource: r,
				score:    g.score(r, weakSkills, role, selected),
			})
		}

		// Highest score first; ties resolve by catalog order so equal
		// scores never reshuffle between runs.
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return CatalogOrder(scored[i].resource.ID) < CatalogOrder(scored[j].resource.ID)
		})

		for _, sc := range scored {
			if usedHours >= 0.95*budgetHours {
				break
			}
			if selected[sc.resource.ID] {
				continue
			}
			g.tryAdd(sc.resource, selected, buckets, &usedHours, budgetHours)
		}
	}

	var out []Resource
	for _, phase := range AllPhases() {
		bucket := buckets[phase]
		sort.Slice(bucket, func(i, j int) bool {
			return CatalogOrder(bucket[i].ID) < CatalogOrder(bucket[j].ID)
		})
		out = append(out, bucket...)
	}
	return out
}

type scoredResource struct {
	resource Resource
	score    float64
}

func (g *Generator) score(r Resource, weakSkills map[string]bool, role taxonomy.TargetRole, selected map[string]bool) float64 {
	var s float64
	for _, key := range r.SkillKeys {
		if weakSkills[key] {
			s += g.weights.WeakSkill
		}
		if tag, err := taxonomy.GetTag(key); err == nil && taxonomy.IsFocusDimension(role, tag.Dimension) {
			s += g.weights.RoleFocus
		}
	}
	if prereqsMet(r, selected) {
		s += g.weights.PrereqsMet
	}
	switch r.Type {
	case TypeProject:
		s += g.weights.Project
	case TypeExercise:
		s += g.weights.Exercise
	}
	return s
}

// tryAdd inserts missing prerequisites first (each still subject to the
// remaining budget), then the resource itself if it fits.
func (g *Generator) tryAdd(r Resource, selected map[string]bool, buckets map[Phase][]Resource, usedHours *float64, budgetHours float64) {
	for _, pid := range r.Prerequisites {
		if selected[pid] {
			continue
		}
		if p, err := Get(pid); err == nil {
			g.tryAdd(p, selected, buckets, usedHours, budgetHours)
		}
	}

	// A prerequisite that did not fit blocks the dependent too.
	if !prereqsMet(r, selected) {
		return
	}
	if *usedHours+r.EstimatedHours > budgetHours {
		return
	}
	selected[r.ID] = true
	buckets[r.Phase] = append(buckets[r.Phase], r)
	*usedHours += r.EstimatedHours
}

func prereqsMet(r Resource, selected map[string]bool) bool {
	for _, pid := range r.Prerequisites {
		if !selected[pid] {
			return false
		}
	}
	return true
}
