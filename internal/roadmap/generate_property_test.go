package roadmap

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

func randomProfile(rt *rapid.T) map[string]mastery.SkillMastery {
	profile := make(map[string]mastery.SkillMastery)
	for _, tag := range taxonomy.AllTags() {
		if !rapid.Bool().Draw(rt, "assessed_"+tag.Key) {
			continue
		}
		profile[tag.Key] = mastery.SkillMastery{
			SkillKey:   tag.Key,
			Mastery:    rapid.Float64Range(0, 1).Draw(rt, "mastery_"+tag.Key),
			Confidence: rapid.Float64Range(0, 1).Draw(rt, "confidence_"+tag.Key),
			Attempts:   rapid.IntRange(1, 10).Draw(rt, "attempts_"+tag.Key),
		}
	}
	return profile
}

func randomRole(rt *rapid.T) taxonomy.TargetRole {
	roles := []taxonomy.TargetRole{
		taxonomy.RoleFrontend, taxonomy.RoleBackend, taxonomy.RoleJuniorFullstack,
	}
	return roles[rapid.IntRange(0, len(roles)-1).Draw(rt, "role")]
}

// For any profile, role and budget: the budget is never exceeded and
// every selected resource's prerequisites appear earlier in the output.
func TestProperty_GenerateRespectsBudgetAndPrereqs(t *testing.T) {
	gen := NewGenerator(DefaultWeights(), DefaultWeakThreshold)

	rapid.Check(t, func(rt *rapid.T) {
		profile := randomProfile(rt)
		role := randomRole(rt)
		budget := rapid.Float64Range(0, 300).Draw(rt, "budget")

		selection := gen.Generate(profile, role, budget)

		var hours float64
		seen := make(map[string]bool, len(selection))
		for _, res := range selection {
			hours += res.EstimatedHours
			for _, pre := range res.Prerequisites {
				if !seen[pre] {
					rt.Errorf("%s selected before its prerequisite %s", res.ID, pre)
				}
			}
			seen[res.ID] = true
		}
		if hours > budget {
			rt.Errorf("selected %v hours with budget %v", hours, budget)
		}
	})
}

// The selector is a pure function of its inputs.
func TestProperty_GenerateDeterministic(t *testing.T) {
	gen := NewGenerator(DefaultWeights(), DefaultWeakThreshold)

	rapid.Check(t, func(rt *rapid.T) {
		profile := randomProfile(rt)
		role := randomRole(rt)
		budget := rapid.Float64Range(0, 300).Draw(rt, "budget")

		first := gen.Generate(profile, role, budget)
		second := gen.Generate(profile, role, budget)

		if len(first) != len(second) {
			rt.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				rt.Errorf("position %d differs: %s vs %s", i, first[i].ID, second[i].ID)
			}
		}
	})
}
