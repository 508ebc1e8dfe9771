package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRepo_CreateAndResume(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	created, err := repo.Create(ctx, "u1", "step-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != SessionInProgress {
		t.Errorf("status = %q, want IN_PROGRESS", created.Status)
	}

	found, err := repo.FindInProgress(ctx, "u1")
	if err != nil {
		t.Fatalf("FindInProgress failed: %v", err)
	}
	if found == nil || found.SessionID != created.SessionID {
		t.Fatalf("expected to find session %s, got %+v", created.SessionID, found)
	}

	if err := repo.SetCurrentStep(ctx, created.SessionID, "step-2"); err != nil {
		t.Fatalf("SetCurrentStep failed: %v", err)
	}
	got, err := repo.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CurrentStepID != "step-2" {
		t.Errorf("current step = %q, want step-2", got.CurrentStepID)
	}

	if err := repo.Complete(ctx, created.SessionID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	none, err := repo.FindInProgress(ctx, "u1")
	if err != nil {
		t.Fatalf("FindInProgress failed: %v", err)
	}
	if none != nil {
		t.Errorf("completed session should not be resumable, got %+v", none)
	}
}

func TestSessionRepo_FindInProgressMissingIsNil(t *testing.T) {
	s := openTestStore(t)
	found, err := s.Sessions().FindInProgress(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("FindInProgress failed: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for unknown user, got %+v", found)
	}
}

func TestResponseRepo_UpsertOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Responses()

	first := &Response{SessionID: "sess", StepID: "step", Answer: `{"option_id":"a"}`, Score: 0, SkillDeltas: "{}"}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	second := &Response{SessionID: "sess", StepID: "step", Answer: `{"option_id":"b"}`, Score: 1, Passed: true, SkillDeltas: "{}"}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	got, err := repo.Get(ctx, "sess", "step")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Score != 1 || !got.Passed {
		t.Errorf("resubmission should overwrite, got score=%v passed=%v", got.Score, got.Passed)
	}

	all, err := repo.BySession(ctx, "sess")
	if err != nil {
		t.Fatalf("BySession failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 row after upsert, got %d", len(all))
	}
}

func TestMasteryRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Mastery()

	sm := mastery.SkillMastery{SkillKey: "js_async", Mastery: 0.4, Confidence: 0.3, Attempts: 2}
	if err := repo.Upsert(ctx, "u1", sm); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	sm.Mastery = 0.6
	sm.Attempts = 3
	if err := repo.Upsert(ctx, "u1", sm); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	skills, err := repo.ForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	got, ok := skills["js_async"]
	if !ok {
		t.Fatal("js_async missing from profile")
	}
	if got.Mastery != 0.6 || got.Attempts != 3 {
		t.Errorf("upsert should overwrite, got %+v", got)
	}

	if err := repo.DeleteForUser(ctx, "u1"); err != nil {
		t.Fatalf("DeleteForUser failed: %v", err)
	}
	skills, err = repo.ForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(skills) != 0 {
		t.Errorf("expected empty profile after delete, got %d rows", len(skills))
	}
}

func TestRoadmapRepo_ReplacePreservesCompleted(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Roadmap()

	a, err := roadmap.Get("html-semantics")
	if err != nil {
		t.Fatalf("catalog lookup: %v", err)
	}
	b, err := roadmap.Get("css-fundamentals")
	if err != nil {
		t.Fatalf("catalog lookup: %v", err)
	}

	if _, err := repo.ReplaceForUser(ctx, "u1", []roadmap.Resource{a, b}); err != nil {
		t.Fatalf("ReplaceForUser failed: %v", err)
	}
	if err := repo.UpdateStatus(ctx, "u1", a.ID, roadmap.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	items, err := repo.ReplaceForUser(ctx, "u1", []roadmap.Resource{a, b})
	if err != nil {
		t.Fatalf("regeneration failed: %v", err)
	}

	byID := make(map[string]*RoadmapItem, len(items))
	for _, it := range items {
		byID[it.ResourceID] = it
	}
	if byID[a.ID].Status != roadmap.StatusCompleted {
		t.Errorf("%s should stay COMPLETED across regeneration", a.ID)
	}
	if byID[b.ID].Status != roadmap.StatusNotStarted {
		t.Errorf("%s should restart NOT_STARTED, got %s", b.ID, byID[b.ID].Status)
	}
}
