package intake

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/grader"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/runner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/steps"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
)

// In-memory repo fakes. The store's SQLite implementations have their
// own tests; here they would only add noise.

type fakeSessions struct {
	rows    map[string]*store.Session
	counter int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: make(map[string]*store.Session)}
}

func (f *fakeSessions) Create(_ context.Context, userID, firstStepID string) (*store.Session, error) {
	f.counter++
	s := &store.Session{
		SessionID:     fmt.Sprintf("sess-%d", f.counter),
		UserID:        userID,
		Status:        store.SessionInProgress,
		CurrentStepID: firstStepID,
	}
	f.rows[s.SessionID] = s
	return copySession(s), nil
}

func (f *fakeSessions) FindInProgress(_ context.Context, userID string) (*store.Session, error) {
	for _, s := range f.rows {
		if s.UserID == userID && s.Status == store.SessionInProgress {
			return copySession(s), nil
		}
	}
	return nil, nil
}

func (f *fakeSessions) Get(_ context.Context, sessionID string) (*store.Session, error) {
	s, ok := f.rows[sessionID]
	if !ok {
		return nil, fmt.Errorf("get session %s: not found", sessionID)
	}
	return copySession(s), nil
}

func (f *fakeSessions) SetCurrentStep(_ context.Context, sessionID, stepID string) error {
	s, ok := f.rows[sessionID]
	if !ok {
		return fmt.Errorf("session %s not found", sessionID)
	}
	s.CurrentStepID = stepID
	return nil
}

func (f *fakeSessions) Complete(_ context.Context, sessionID string) error {
	s, ok := f.rows[sessionID]
	if !ok {
		return fmt.Errorf("session %s not found", sessionID)
	}
	s.Status = store.SessionCompleted
	return nil
}

func (f *fakeSessions) DeleteForUser(_ context.Context, userID string) error {
	for id, s := range f.rows {
		if s.UserID == userID {
			delete(f.rows, id)
		}
	}
	return nil
}

func copySession(s *store.Session) *store.Session {
	c := *s
	return &c
}

type fakeResponses struct {
	rows map[string]*store.Response
}

func newFakeResponses() *fakeResponses {
	return &fakeResponses{rows: make(map[string]*store.Response)}
}

func respKey(sessionID, stepID string) string { return sessionID + "|" + stepID }

func (f *fakeResponses) Upsert(_ context.Context, resp *store.Response) error {
	c := *resp
	f.rows[respKey(resp.SessionID, resp.StepID)] = &c
	return nil
}

func (f *fakeResponses) Get(_ context.Context, sessionID, stepID string) (*store.Response, error) {
	r, ok := f.rows[respKey(sessionID, stepID)]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (f *fakeResponses) BySession(_ context.Context, sessionID string) ([]*store.Response, error) {
	var out []*store.Response
	for _, r := range f.rows {
		if r.SessionID == sessionID {
			c := *r
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeResponses) DeleteForSession(_ context.Context, sessionID string) error {
	for k, r := range f.rows {
		if r.SessionID == sessionID {
			delete(f.rows, k)
		}
	}
	return nil
}

type fakeMastery struct {
	rows map[string]map[string]mastery.SkillMastery
}

func newFakeMastery() *fakeMastery {
	return &fakeMastery{rows: make(map[string]map[string]mastery.SkillMastery)}
}

func (f *fakeMastery) Upsert(_ context.Context, userID string, sm mastery.SkillMastery) error {
	if f.rows[userID] == nil {
		f.rows[userID] = make(map[string]mastery.SkillMastery)
	}
	f.rows[userID][sm.SkillKey] = sm
	return nil
}

func (f *fakeMastery) ForUser(_ context.Context, userID string) (map[string]mastery.SkillMastery, error) {
	out := make(map[string]mastery.SkillMastery, len(f.rows[userID]))
	for k, v := range f.rows[userID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeMastery) DeleteForUser(_ context.Context, userID string) error {
	delete(f.rows, userID)
	return nil
}

func newTestService(codeResults ...runner.MockResult) *Service {
	g := grader.New(nil, runner.NewMockRunner(codeResults...), nil)
	return NewService(newFakeSessions(), newFakeResponses(), newFakeMastery(), g, nil)
}

// wrongAnswerFor builds the weakest plausible submission for a step.
func wrongAnswerFor(step steps.Step) grader.Answer {
	switch step.Kind {
	case steps.KindSelfReport:
		levels := make(map[string]int, len(step.Fields))
		for _, f := range step.Fields {
			levels[f.SkillKey] = 1
		}
		return grader.Answer{Levels: levels}
	case steps.KindMCQ, steps.KindDesignCompare:
		for _, opt := range step.Options {
			if opt.ID != step.CorrectOptionID {
				return grader.Answer{OptionID: opt.ID}
			}
		}
		return grader.Answer{}
	case steps.KindMicroMCQ:
		answers := make(map[string]string, len(step.Micro))
		for _, mq := range step.Micro {
			for _, opt := range mq.Options {
				if opt.ID != mq.CorrectOptionID {
					answers[mq.ID] = opt.ID
					break
				}
			}
		}
		return grader.Answer{MicroAnswers: answers}
	case steps.KindShortText, steps.KindDesignCritique:
		return grader.Answer{Text: "idk"}
	case steps.KindCode:
		return grader.Answer{Code: step.StarterCode}
	default:
		return grader.Answer{}
	}
}

func TestStartSession_CreatesThenResumes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if started.Resuming {
		t.Error("first start should not resume")
	}
	if started.Step.ID != steps.First().ID {
		t.Errorf("first step = %q, want %q", started.Step.ID, steps.First().ID)
	}
	if started.TotalSteps != steps.Count() {
		t.Errorf("total steps = %d, want %d", started.TotalSteps, steps.Count())
	}

	again, err := svc.StartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("second StartSession failed: %v", err)
	}
	if !again.Resuming {
		t.Error("second start should resume")
	}
	if again.SessionID != started.SessionID {
		t.Errorf("resumed session = %q, want %q", again.SessionID, started.SessionID)
	}
}

func TestSubmit_RejectsWrongStep(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	started, err := svc.StartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	_, err = svc.SubmitStepAnswer(ctx, started.SessionID, "js-closures-mcq", grader.Answer{OptionID: "a"})
	if !errors.Is(err, ErrStepMismatch) {
		t.Errorf("error = %v, want ErrStepMismatch", err)
	}

	_, err = svc.SubmitStepAnswer(ctx, started.SessionID, "no-such-step", grader.Answer{})
	if !errors.Is(err, ErrUnknownStep) {
		t.Errorf("error = %v, want ErrUnknownStep", err)
	}
}

func TestSubmit_PartialMicroBurstRecordsNothing(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	started, err := svc.StartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// Walk to the first micro burst.
	current := started.Step
	for current.Kind != steps.KindMicroMCQ {
		res, err := svc.SubmitStepAnswer(ctx, started.SessionID, current.ID, wrongAnswerFor(current))
		if err != nil {
			t.Fatalf("submit %s: %v", current.ID, err)
		}
		current = *res.NextStep
	}

	partial := grader.Answer{MicroAnswers: map[string]string{current.Micro[0].ID: "a"}}
	_, err = svc.SubmitStepAnswer(ctx, started.SessionID, current.ID, partial)
	if !errors.Is(err, grader.ErrIncompleteAnswer) {
		t.Fatalf("error = %v, want ErrIncompleteAnswer", err)
	}

	view, err := svc.CurrentStep(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("CurrentStep failed: %v", err)
	}
	if view.Step.ID != current.ID {
		t.Errorf("cursor moved to %q after a rejected submission", view.Step.ID)
	}
	if view.PreviousAnswer != nil {
		t.Error("rejected submission should not be stored")
	}
}

func TestFullRun_AllWrongScoresLowAndCompletes(t *testing.T) {
	allFail := runner.MockResult{Result: &runner.RunResult{Cases: []runner.CaseResult{
		{}, {}, {}, {},
	}}}
	svc := newTestService(allFail)
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	current := started.Step
	for {
		res, err := svc.SubmitStepAnswer(ctx, started.SessionID, current.ID, wrongAnswerFor(current))
		if err != nil {
			t.Fatalf("submit %s: %v", current.ID, err)
		}
		if res.Completed {
			break
		}
		current = *res.NextStep
	}

	// Completed sessions accept nothing further.
	_, err = svc.SubmitStepAnswer(ctx, started.SessionID, "intake-summary", grader.Answer{})
	if !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("error = %v, want ErrSessionCompleted", err)
	}

	summary, err := svc.SessionSummary(ctx, "u1", 0.5)
	if err != nil {
		t.Fatalf("SessionSummary failed: %v", err)
	}
	if summary.Overall > 0.3 {
		t.Errorf("all-wrong run scored %v overall, want <= 0.3", summary.Overall)
	}
	for _, line := range summary.Dimensions {
		if !line.Weak {
			t.Errorf("dimension %s not marked weak after an all-wrong run", line.Dimension)
		}
	}
}

func TestGoToPreviousStep(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	started, err := svc.StartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// At the first step there is nowhere to go.
	view, err := svc.GoToPreviousStep(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("GoToPreviousStep failed: %v", err)
	}
	if view != nil {
		t.Fatalf("expected nil view at the first step, got %q", view.Step.ID)
	}

	first := started.Step
	res, err := svc.SubmitStepAnswer(ctx, started.SessionID, first.ID, wrongAnswerFor(first))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if res.NextStep == nil {
		t.Fatal("expected a next step")
	}

	view, err = svc.GoToPreviousStep(ctx, started.SessionID)
	if err != nil {
		t.Fatalf("GoToPreviousStep failed: %v", err)
	}
	if view == nil || view.Step.ID != first.ID {
		t.Fatalf("expected to land back on %q, got %+v", first.ID, view)
	}
	if view.PreviousAnswer == nil {
		t.Error("earlier answer should be offered for revision")
	}
	if view.CanGoBack {
		t.Error("first step should not allow going back")
	}
}

func TestResubmissionUpsertsAndRevisesMastery(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	started, err := svc.StartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	first := started.Step
	if _, err := svc.SubmitStepAnswer(ctx, started.SessionID, first.ID, wrongAnswerFor(first)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	profile, err := svc.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	before := profile["js_syntax"]
	if before.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", before.Attempts)
	}

	if _, err := svc.GoToPreviousStep(ctx, started.SessionID); err != nil {
		t.Fatalf("GoToPreviousStep failed: %v", err)
	}

	confident := wrongAnswerFor(first)
	for k := range confident.Levels {
		confident.Levels[k] = 5
	}
	res, err := svc.SubmitStepAnswer(ctx, started.SessionID, first.ID, confident)
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if res.SkillDeltas["js_syntax"] <= 0 {
		t.Errorf("raising a self-report should raise mastery, delta = %v", res.SkillDeltas["js_syntax"])
	}

	profile, err = svc.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	after := profile["js_syntax"]
	if after.Attempts != 2 {
		t.Errorf("attempts = %d, want 2 after resubmission", after.Attempts)
	}
	if after.Mastery <= before.Mastery {
		t.Errorf("mastery should rise, %v -> %v", before.Mastery, after.Mastery)
	}
}
