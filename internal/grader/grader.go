package grader

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/runner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/steps"
)

// ErrIncompleteAnswer is returned when a submission is missing required
// sub-answers. Nothing is graded and no attempt is recorded.
var ErrIncompleteAnswer = errors.New("answer incomplete")

// Answer is a learner's submission for one step. Kind determines which
// field is meaningful.
type Answer struct {
	Levels       map[string]int    `json:"levels,omitempty"`        // self-report: skill key -> 1..5
	OptionID     string            `json:"option_id,omitempty"`     // mcq / design comparison
	MicroAnswers map[string]string `json:"micro_answers,omitempty"` // micro question ID -> option ID
	Text         string            `json:"text,omitempty"`          // short text / critique
	Code         string            `json:"code,omitempty"`          // code exercise
}

// Result is the grading outcome for one step.
type Result struct {
	Score       float64            `json:"score"`  // overall step score, [0,1]
	Passed      bool               `json:"passed"` // meaningless for self-report and summary
	SkillScores map[string]float64 `json:"skill_scores"`
	Confidence  float64            `json:"confidence"` // evidence weight for mastery updates
	SelfReport  bool               `json:"self_report,omitempty"`
}

// Grader scores answers per step kind. Construct with New; the zero
// value panics on code steps.
type Grader struct {
	text   TextScorer
	runner runner.Runner
	log    *zap.Logger
}

// New creates a Grader. A nil text scorer falls back to the heuristic
// scorer; a nil logger to a nop logger.
func New(text TextScorer, run runner.Runner, log *zap.Logger) *Grader {
	if text == nil {
		text = HeuristicScorer{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Grader{text: text, runner: run, log: log}
}

// Grade scores an answer for the given step. The kind switch is
// exhaustive: an unknown kind is a configuration error and is returned
// as one, never silently skipped.
func (g *Grader) Grade(ctx context.Context, step steps.Step, ans Answer) (*Result, error) {
	switch step.Kind {
	case steps.KindSelfReport:
		return gradeSelfReport(step, ans)
	case steps.KindMCQ, steps.KindDesignCompare:
		return gradeChoice(step, ans), nil
	case steps.KindMicroMCQ:
		return gradeMicroBurst(step, ans)
	case steps.KindShortText, steps.KindDesignCritique:
		return g.gradeText(ctx, step, ans), nil
	case steps.KindCode:
		return g.gradeCode(ctx, step, ans), nil
	case steps.KindSummary:
		// Terminal step: nothing to grade, nothing to update.
		return &Result{Passed: true, SkillScores: map[string]float64{}}, nil
	default:
		return nil, fmt.Errorf("unsupported step kind %q for step %q", step.Kind, step.ID)
	}
}

// gradeSelfReport maps each slider to a mastery value. Self-reports
// have no pass/fail notion and carry the fixed self-report confidence.
func gradeSelfReport(step steps.Step, ans Answer) (*Result, error) {
	if len(ans.Levels) == 0 {
		return nil, fmt.Errorf("%w: no slider levels submitted", ErrIncompleteAnswer)
	}
	for _, f := range step.Fields {
		if _, ok := ans.Levels[f.SkillKey]; !ok {
			return nil, fmt.Errorf("%w: missing level for %q", ErrIncompleteAnswer, f.SkillKey)
		}
	}

	skillScores := make(map[string]float64, len(step.Fields))
	var sum float64
	for _, f := range step.Fields {
		sm := mastery.SelfReport(f.SkillKey, ans.Levels[f.SkillKey])
		skillScores[f.SkillKey] = sm.Mastery
		sum += sm.Mastery
	}

	return &Result{
		Score:       sum / float64(len(step.Fields)),
		Passed:      true,
		SkillScores: skillScores,
		Confidence:  0.2,
		SelfReport:  true,
	}, nil
}

// gradeChoice handles single MCQs and design A/B comparisons: all or
// nothing against the configured correct (or "better") option.
func gradeChoice(step steps.Step, ans Answer) *Result {
	score := 0.0
	if ans.OptionID == step.CorrectOptionID {
		score = 1.0
	}
	return &Result{
		Score:       score,
		Passed:      score == 1.0,
		SkillScores: scoreAll(step.SkillKeys, score),
		Confidence:  step.Weight,
	}
}

// gradeMicroBurst rejects partial submissions outright; a burst is only
// graded once every micro question has an answer.
func gradeMicroBurst(step steps.Step, ans Answer) (*Result, error) {
	for _, mq := range step.Micro {
		if _, ok := ans.MicroAnswers[mq.ID]; !ok {
			return nil, fmt.Errorf("%w: micro question %q unanswered", ErrIncompleteAnswer, mq.ID)
		}
	}

	perSkillCorrect := make(map[string]float64)
	perSkillTotal := make(map[string]float64)
	correct := 0
	for _, mq := range step.Micro {
		perSkillTotal[mq.SkillKey]++
		if ans.MicroAnswers[mq.ID] == mq.CorrectOptionID {
			correct++
			perSkillCorrect[mq.SkillKey]++
		}
	}

	skillScores := make(map[string]float64, len(perSkillTotal))
	for key, total := range perSkillTotal {
		skillScores[key] = perSkillCorrect[key] / total
	}

	score := float64(correct) / float64(len(step.Micro))
	return &Result{
		Score:       score,
		Passed:      score >= 0.5,
		SkillScores: skillScores,
		Confidence:  step.Weight,
	}, nil
}

// gradeText scores free text through the TextScorer seam. Scorer
// failure degrades to the heuristic rather than failing the step.
func (g *Grader) gradeText(ctx context.Context, step steps.Step, ans Answer) *Result {
	score, err := g.text.Score(ctx, TextSubmission{
		Prompt:    step.Prompt,
		Text:      ans.Text,
		MinLength: step.MinLength,
		MaxLength: step.MaxLength,
		Keywords:  step.Keywords,
	})
	if err != nil {
		g.log.Warn("text scorer failed, falling back to heuristic",
			zap.String("step", step.ID), zap.Error(err))
		score, _ = HeuristicScorer{}.Score(ctx, TextSubmission{
			Text:      ans.Text,
			MinLength: step.MinLength,
			MaxLength: step.MaxLength,
			Keywords:  step.Keywords,
		})
	}

	return &Result{
		Score:       score,
		Passed:      score >= 0.5,
		SkillScores: scoreAll(step.SkillKeys, score),
		Confidence:  step.Weight,
	}
}

// gradeCode runs the submission through the code-execution collaborator.
// Runner failure or timeout degrades to score 0; the session proceeds.
func (g *Grader) gradeCode(ctx context.Context, step steps.Step, ans Answer) *Result {
	cases := make([]runner.Case, len(step.Tests))
	for i, tc := range step.Tests {
		cases[i] = runner.Case{Input: tc.Input, Expected: tc.Expected, Hidden: tc.Hidden}
	}

	var score float64
	if g.runner == nil {
		g.log.Warn("no code runner configured, scoring 0", zap.String("step", step.ID))
	} else {
		result, err := g.runner.Run(ctx, runner.Submission{
			Language: step.Language,
			Code:     ans.Code,
			Cases:    cases,
		})
		if err != nil {
			g.log.Warn("code runner failed, scoring 0",
				zap.String("step", step.ID), zap.Error(err))
		} else {
			score = result.PassFraction()
		}
	}

	return &Result{
		Score:       score,
		Passed:      score == 1.0,
		SkillScores: scoreAll(step.SkillKeys, score),
		Confidence:  step.Weight,
	}
}

func scoreAll(keys []string, score float64) map[string]float64 {
	scores := make(map[string]float64, len(keys))
	for _, k := range keys {
		scores[k] = score
	}
	return scores
}
