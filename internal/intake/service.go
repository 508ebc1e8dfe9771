package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/grader"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/steps"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// Sentinel errors for submission validation. A submission that trips
// one of these records no attempt and moves no cursor.
var (
	ErrUnknownStep      = errors.New("unknown step")
	ErrStepMismatch     = errors.New("submission is not for the session's current step")
	ErrSessionCompleted = errors.New("session already completed")
)

// Service drives a learner through the intake sequence: it validates
// submissions, grades them, folds the results into the skill profile
// and advances the session cursor.
type Service struct {
	sessions  store.SessionRepo
	responses store.ResponseRepo
	masteries store.MasteryRepo
	grader    *grader.Grader
	log       *zap.Logger
}

// NewService wires the intake service. A nil logger falls back to nop.
func NewService(sessions store.SessionRepo, responses store.ResponseRepo, masteries store.MasteryRepo, g *grader.Grader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		sessions:  sessions,
		responses: responses,
		masteries: masteries,
		grader:    g,
		log:       log,
	}
}

// StartResult describes a started or resumed session.
type StartResult struct {
	SessionID     string
	Step          steps.Step
	TotalSteps    int
	EstimatedMins int
	Resuming      bool
}

// StepView is everything the UI needs to render the current step.
type StepView struct {
	Step           steps.Step
	Index          int // zero-based position in the sequence
	TotalSteps     int
	PreviousAnswer *grader.Answer // earlier submission for this step, if any
	CanGoBack      bool
}

// SubmitResult is the outcome of one accepted submission.
type SubmitResult struct {
	Result      *grader.Result
	SkillDeltas map[string]float64
	NextStep    *steps.Step // nil when the session just completed
	Completed   bool
}

// StartSession resumes the user's IN_PROGRESS session if one exists,
// otherwise creates a fresh one positioned at the first step.
func (s *Service) StartSession(ctx context.Context, userID string) (*StartResult, error) {
	existing, err := s.sessions.FindInProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		step, err := steps.Get(existing.CurrentStepID)
		if err != nil {
			return nil, fmt.Errorf("session %s points at unknown step: %w", existing.SessionID, err)
		}
		s.log.Info("resuming intake session",
			zap.String("session", existing.SessionID),
			zap.String("step", step.ID))
		return &StartResult{
			SessionID:     existing.SessionID,
			Step:          step,
			TotalSteps:    steps.Count(),
			EstimatedMins: steps.EstimatedMinutes(),
			Resuming:      true,
		}, nil
	}

	first := steps.First()
	created, err := s.sessions.Create(ctx, userID, first.ID)
	if err != nil {
		return nil, err
	}
	s.log.Info("started intake session",
		zap.String("session", created.SessionID),
		zap.String("user", userID))
	return &StartResult{
		SessionID:     created.SessionID,
		Step:          first,
		TotalSteps:    steps.Count(),
		EstimatedMins: steps.EstimatedMinutes(),
	}, nil
}

// CurrentStep returns the session's current step with any earlier
// answer for it.
func (s *Service) CurrentStep(ctx context.Context, sessionID string) (*StepView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == store.SessionCompleted {
		return nil, ErrSessionCompleted
	}
	return s.stepView(ctx, sess)
}

// SubmitStepAnswer grades an answer for the session's current step and
// advances. Submissions for any other step are rejected so a stale UI
// cannot skip or double-grade steps.
func (s *Service) SubmitStepAnswer(ctx context.Context, sessionID, stepID string, ans grader.Answer) (*SubmitResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == store.SessionCompleted {
		return nil, ErrSessionCompleted
	}

	step, err := steps.Get(stepID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, stepID)
	}
	if stepID != sess.CurrentStepID {
		return nil, fmt.Errorf("%w: got %q, current is %q", ErrStepMismatch, stepID, sess.CurrentStepID)
	}

	result, err := s.grader.Grade(ctx, step, ans)
	if err != nil {
		// Incomplete answers and config errors alike: nothing recorded.
		return nil, err
	}

	deltas, err := s.applyMastery(ctx, sess.UserID, step, result)
	if err != nil {
		return nil, err
	}

	if err := s.recordResponse(ctx, sessionID, step.ID, ans, result, deltas); err != nil {
		return nil, err
	}

	out := &SubmitResult{Result: result, SkillDeltas: deltas}
	if step.IsTerminal() {
		if err := s.sessions.Complete(ctx, sessionID); err != nil {
			return nil, err
		}
		out.Completed = true
		s.log.Info("intake session completed", zap.String("session", sessionID))
		return out, nil
	}

	next, ok := steps.Next(step.ID)
	if !ok {
		// The validated sequence ends in a terminal step, so a non-terminal
		// last step means the seed data is broken.
		return nil, fmt.Errorf("no step after non-terminal %q", step.ID)
	}
	if err := s.sessions.SetCurrentStep(ctx, sessionID, next.ID); err != nil {
		return nil, err
	}
	out.NextStep = &next
	return out, nil
}

// GoToPreviousStep moves the cursor one step back so the learner can
// revise an answer. Returns (nil, nil) when already at the first step.
func (s *Service) GoToPreviousStep(ctx context.Context, sessionID string) (*StepView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == store.SessionCompleted {
		return nil, ErrSessionCompleted
	}

	prev, ok := steps.Prev(sess.CurrentStepID)
	if !ok {
		return nil, nil
	}
	if err := s.sessions.SetCurrentStep(ctx, sessionID, prev.ID); err != nil {
		return nil, err
	}
	sess.CurrentStepID = prev.ID
	return s.stepView(ctx, sess)
}

// DimensionLine is one row of the session summary.
type DimensionLine struct {
	Dimension taxonomy.Dimension
	Name      string
	Score     mastery.DimensionScore
	Weak      bool
}

// Summary is the aggregated view of a user's profile after (or during)
// an intake run.
type Summary struct {
	Dimensions []DimensionLine
	Overall    float64
}

// SessionSummary aggregates the user's skill profile into dimension
// scores for display.
func (s *Service) SessionSummary(ctx context.Context, userID string, weakThreshold float64) (*Summary, error) {
	profile, err := s.masteries.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	scores := mastery.Aggregate(profile)
	weak := make(map[taxonomy.Dimension]bool)
	for _, d := range mastery.WeakDimensions(scores, weakThreshold) {
		weak[d] = true
	}

	lines := make([]DimensionLine, 0, len(taxonomy.AllDimensions()))
	for _, dim := range taxonomy.AllDimensions() {
		lines = append(lines, DimensionLine{
			Dimension: dim,
			Name:      taxonomy.DimensionDisplayName(dim),
			Score:     scores[dim],
			Weak:      weak[dim],
		})
	}

	return &Summary{
		Dimensions: lines,
		Overall:    mastery.OverallScore(scores),
	}, nil
}

// Profile returns the user's raw skill profile.
func (s *Service) Profile(ctx context.Context, userID string) (map[string]mastery.SkillMastery, error) {
	return s.masteries.ForUser(ctx, userID)
}

func (s *Service) stepView(ctx context.Context, sess *store.Session) (*StepView, error) {
	step, err := steps.Get(sess.CurrentStepID)
	if err != nil {
		return nil, fmt.Errorf("session %s points at unknown step: %w", sess.SessionID, err)
	}

	var prevAnswer *grader.Answer
	if resp, err := s.responses.Get(ctx, sess.SessionID, step.ID); err != nil {
		return nil, err
	} else if resp != nil {
		var ans grader.Answer
		if err := json.Unmarshal([]byte(resp.Answer), &ans); err == nil {
			prevAnswer = &ans
		}
	}

	idx := steps.Index(step.ID)
	return &StepView{
		Step:           step,
		Index:          idx,
		TotalSteps:     steps.Count(),
		PreviousAnswer: prevAnswer,
		CanGoBack:      idx > 0,
	}, nil
}

// applyMastery folds the grading result into the stored profile and
// returns the per-skill mastery deltas.
func (s *Service) applyMastery(ctx context.Context, userID string, step steps.Step, result *grader.Result) (map[string]float64, error) {
	if len(result.SkillScores) == 0 {
		return map[string]float64{}, nil
	}

	profile, err := s.masteries.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	deltas := make(map[string]float64, len(result.SkillScores))
	for skillKey, observed := range result.SkillScores {
		current, ok := profile[skillKey]
		if !ok {
			current = mastery.SkillMastery{SkillKey: skillKey}
		}

		var updated mastery.SkillMastery
		if result.SelfReport && current.Attempts == 0 {
			// First signal for this skill: seed the estimate directly.
			updated = mastery.SkillMastery{
				SkillKey:   skillKey,
				Mastery:    observed,
				Confidence: result.Confidence,
				Attempts:   1,
			}
		} else {
			weight := step.Weight
			if result.SelfReport {
				weight = result.Confidence
			}
			updated = mastery.Update(current, observed, weight)
		}

		deltas[skillKey] = updated.Mastery - current.Mastery
		if err := s.masteries.Upsert(ctx, userID, updated); err != nil {
			return nil, err
		}
	}
	return deltas, nil
}

func (s *Service) recordResponse(ctx context.Context, sessionID, stepID string, ans grader.Answer, result *grader.Result, deltas map[string]float64) error {
	answerJSON, err := json.Marshal(ans)
	if err != nil {
		return fmt.Errorf("serialize answer: %w", err)
	}
	deltaJSON, err := json.Marshal(deltas)
	if err != nil {
		return fmt.Errorf("serialize deltas: %w", err)
	}
	return s.responses.Upsert(ctx, &store.Response{
		SessionID:   sessionID,
		StepID:      stepID,
		Answer:      string(answerJSON),
		Score:       result.Score,
		Passed:      result.Passed,
		SkillDeltas: string(deltaJSON),
	})
}
