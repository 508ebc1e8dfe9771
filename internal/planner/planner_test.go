package planner

import (
	"context"
	"testing"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

type fakeMastery struct {
	profile map[string]mastery.SkillMastery
}

func (f *fakeMastery) Upsert(_ context.Context, _ string, sm mastery.SkillMastery) error {
	f.profile[sm.SkillKey] = sm
	return nil
}

func (f *fakeMastery) ForUser(_ context.Context, _ string) (map[string]mastery.SkillMastery, error) {
	return f.profile, nil
}

func (f *fakeMastery) DeleteForUser(_ context.Context, _ string) error {
	f.profile = map[string]mastery.SkillMastery{}
	return nil
}

type fakeRoadmap struct {
	rows map[string][]*store.RoadmapItem
}

func newFakeRoadmap() *fakeRoadmap {
	return &fakeRoadmap{rows: make(map[string][]*store.RoadmapItem)}
}

func (f *fakeRoadmap) ReplaceForUser(_ context.Context, userID string, selection []roadmap.Resource) ([]*store.RoadmapItem, error) {
	completed := make(map[string]bool)
	for _, row := range f.rows[userID] {
		if row.Status == roadmap.StatusCompleted {
			completed[row.ResourceID] = true
		}
	}

	var out []*store.RoadmapItem
	position := 0
	var lastPhase roadmap.Phase
	for _, res := range selection {
		if res.Phase != lastPhase {
			lastPhase = res.Phase
			position = 0
		}
		status := roadmap.StatusNotStarted
		if completed[res.ID] {
			status = roadmap.StatusCompleted
		}
		out = append(out, &store.RoadmapItem{
			UserID: userID, ResourceID: res.ID,
			Phase: res.Phase, Position: position, Status: status,
		})
		position++
	}
	f.rows[userID] = out
	return out, nil
}

func (f *fakeRoadmap) ForUser(_ context.Context, userID string) ([]*store.RoadmapItem, error) {
	return f.rows[userID], nil
}

func (f *fakeRoadmap) UpdateStatus(_ context.Context, userID, resourceID string, status roadmap.ItemStatus) error {
	for _, row := range f.rows[userID] {
		if row.ResourceID == resourceID {
			row.Status = status
		}
	}
	return nil
}

func (f *fakeRoadmap) DeleteForUser(_ context.Context, userID string) error {
	delete(f.rows, userID)
	return nil
}

func newTestService() (*Service, *fakeRoadmap) {
	items := newFakeRoadmap()
	masteries := &fakeMastery{profile: map[string]mastery.SkillMastery{}}
	return NewService(masteries, items, nil, nil), items
}

func TestGenerateForUser_BudgetFromHorizon(t *testing.T) {
	svc, _ := newTestService()
	items, err := svc.GenerateForUser(context.Background(), "u1", Options{
		TargetRole: taxonomy.RoleJuniorFullstack, MaxWeeks: 4, HoursPerWeek: 5,
	})
	if err != nil {
		t.Fatalf("GenerateForUser failed: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected a non-empty roadmap")
	}

	var hours float64
	for _, it := range items {
		hours += it.Resource.EstimatedHours
	}
	if hours > 20 {
		t.Errorf("4 weeks x 5 hours should cap at 20, selected %v", hours)
	}
}

func TestGenerateForUser_ReturnsExistingWithoutRegenerate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	opts := Options{MaxWeeks: 4, HoursPerWeek: 5}

	first, err := svc.GenerateForUser(ctx, "u1", opts)
	if err != nil {
		t.Fatalf("GenerateForUser failed: %v", err)
	}

	if err := svc.MarkStatus(ctx, "u1", first[0].Resource.ID, roadmap.StatusInProgress); err != nil {
		t.Fatalf("MarkStatus failed: %v", err)
	}

	second, err := svc.GenerateForUser(ctx, "u1", opts)
	if err != nil {
		t.Fatalf("second GenerateForUser failed: %v", err)
	}
	if second[0].Status != roadmap.StatusInProgress {
		t.Error("without Regenerate the stored roadmap should be returned as is")
	}
}

func TestGenerateForUser_RegenerateKeepsCompleted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	opts := Options{MaxWeeks: 4, HoursPerWeek: 5}

	first, err := svc.GenerateForUser(ctx, "u1", opts)
	if err != nil {
		t.Fatalf("GenerateForUser failed: %v", err)
	}
	done := first[0].Resource.ID
	if err := svc.MarkStatus(ctx, "u1", done, roadmap.StatusCompleted); err != nil {
		t.Fatalf("MarkStatus failed: %v", err)
	}

	opts.Regenerate = true
	second, err := svc.GenerateForUser(ctx, "u1", opts)
	if err != nil {
		t.Fatalf("regeneration failed: %v", err)
	}

	found := false
	for _, it := range second {
		if it.Resource.ID == done {
			found = true
			if it.Status != roadmap.StatusCompleted {
				t.Errorf("%s should stay COMPLETED after regeneration, got %s", done, it.Status)
			}
		} else if it.Status != roadmap.StatusNotStarted {
			t.Errorf("%s should restart NOT_STARTED, got %s", it.Resource.ID, it.Status)
		}
	}
	if !found {
		t.Errorf("deterministic regeneration should reselect %s", done)
	}
}

func TestGenerateForUser_RejectsBadHorizon(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.GenerateForUser(context.Background(), "u1", Options{MaxWeeks: 0, HoursPerWeek: 5}); err == nil {
		t.Fatal("expected error for a zero-week horizon")
	}
}
