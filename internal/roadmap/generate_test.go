package roadmap

import (
	"strings"
	"testing"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// strongProfile returns a profile where every skill is mastered except
// those whose keys carry one of the given prefixes.
func strongProfile(weakPrefixes ...string) map[string]mastery.SkillMastery {
	skills := make(map[string]mastery.SkillMastery)
	for _, tag := range taxonomy.AllTags() {
		m := 0.9
		for _, p := range weakPrefixes {
			if strings.HasPrefix(tag.Key, p) {
				m = 0.1
			}
		}
		skills[tag.Key] = mastery.SkillMastery{
			SkillKey: tag.Key, Mastery: m, Confidence: 0.8, Attempts: 3,
		}
	}
	return skills
}

func totalHours(selection []Resource) float64 {
	var sum float64
	for _, r := range selection {
		sum += r.EstimatedHours
	}
	return sum
}

func TestGenerate_NeverExceedsBudget(t *testing.T) {
	g := NewGenerator(DefaultWeights(), DefaultWeakThreshold)
	for _, budget := range []float64{5, 20, 60, 200} {
		selection := g.Generate(nil, taxonomy.RoleJuniorFullstack, budget)
		if got := totalHours(selection); got > budget {
			t.Errorf("budget %v: selected %v hours", budget, got)
		}
	}
}

func TestGenerate_TinyBudgetYieldsEmptyRoadmap(t *testing.T) {
	g := NewGenerator(DefaultWeights(), DefaultWeakThreshold)
	selection := g.Generate(nil, taxonomy.RoleJuniorFullstack, 0.5)
	if len(selection) != 0 {
		t.Errorf("no resource fits 0.5 hours, got %d selections", len(selection))
	}
}

func TestGenerate_PrereqsAlwaysPrecedeDependents(t *testing.T) {
	g := NewGenerator(DefaultWeights(), DefaultWeakThreshold)
	selection := g.Generate(nil, taxonomy.RoleJuniorFullstack, 500)

	position := make(map[string]int, len(selection))
	for i, r := range selection {
		position[r.ID] = i
	}
	for _, r := range selection {
		for _, pid := range r.Prerequisites {
			pPos, ok := position[pid]
			if !ok {
				t.Errorf("%q selected without its prerequisite %q", r.ID, pid)
				continue
			}
			if pPos >= position[r.ID] {
				t.Errorf("prerequisite %q comes after %q in the output", pid, r.ID)
			}
		}
	}
}

func TestGenerate_PhasesStayOrdered(t *testing.T) {
	g := NewGenerator(DefaultWeights(), DefaultWeakThreshold)
	selection := g.Generate(nil, taxonomy.RoleJuniorFullstack, 500)
	if len(selection) == 0 {
		t.Fatal("expected a non-empty roadmap")
	}
	for i := 1; i < len(selection); i++ {
		if selection[i].Phase < selection[i-1].Phase {
			t.Fatalf("phase order broken at %q (%d after %d)",
				selection[i].ID, selection[i].Phase, selection[i-1].Phase)
		}
	}
}

func TestGenerate_WeakSkillsDriveSelection(t *testing.T) {
	// Everything mastered except web foundations; a tight budget should
	// spend its hours on web resources.
	skills := strongProfile("web_")
	g := NewGenerator(DefaultWeights(), DefaultWeakThreshold)
	selection := g.Generate(skills, taxonomy.RoleJuniorFullstack, 11)

	if len(selection) == 0 {
		t.Fatal("expected a non-empty roadmap")
	}
	for _, r := range selection {
		weak := false
		for _, key := range r.SkillKeys {
			if strings.HasPrefix(key, "web_") {
				weak = true
			}
		}
		if !weak {
			t.Errorf("%q targets no weak skill under a tight budget", r.ID)
		}
	}
}

func TestGenerate_EmptyProfileStartsFoundational(t *testing.T) {
	// Nothing assessed means everything is weak; a modest budget should
	// fill up with phase-1 resources.
	g := NewGenerator(DefaultWeights(), DefaultWeakThreshold)
	selection := g.Generate(nil, taxonomy.RoleJuniorFullstack, 30)

	if len(selection) == 0 {
		t.Fatal("expected a non-empty roadmap")
	}
	for _, r := range selection {
		if r.Phase != PhaseFoundations {
			t.Errorf("%q is phase %d, expected only foundations under this budget", r.ID, r.Phase)
		}
	}
}

func TestGenerate_DeterministicAcrossRuns(t *testing.T) {
	g := NewGenerator(Weights{PrereqsMet: 1}, DefaultWeakThreshold)
	first := g.Generate(nil, taxonomy.RoleBackend, 40)
	for range 5 {
		again := g.Generate(nil, taxonomy.RoleBackend, 40)
		if len(again) != len(first) {
			t.Fatalf("selection length changed between runs: %d vs %d", len(first), len(again))
		}
		for i := range first {
			if first[i].ID != again[i].ID {
				t.Fatalf("selection order changed at %d: %q vs %q", i, first[i].ID, again[i].ID)
			}
		}
	}
}

func TestGenerate_RoleFocusShapesSelection(t *testing.T) {
	// With a uniform profile the only differentiator between frontend
	// and backend runs is the role focus bonus.
	g := NewGenerator(DefaultWeights(), DefaultWeakThreshold)
	frontend := g.Generate(nil, taxonomy.RoleFrontend, 25)
	backend := g.Generate(nil, taxonomy.RoleBackend, 25)

	same := len(frontend) == len(backend)
	if same {
		for i := range frontend {
			if frontend[i].ID != backend[i].ID {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("frontend and backend roadmaps should differ under a tight budget")
	}
}
