package grader

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/runner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/steps"
)

func TestGrade_SelfReportMapsLevels(t *testing.T) {
	g := New(nil, nil, nil)
	step := steps.Step{
		ID:   "self",
		Kind: steps.KindSelfReport,
		Fields: []steps.SelfReportField{
			{SkillKey: "js_basics", Label: "JavaScript basics"},
			{SkillKey: "css_layout", Label: "CSS layout"},
		},
	}

	result, err := g.Grade(context.Background(), step, Answer{
		Levels: map[string]int{"js_basics": 5, "css_layout": 1},
	})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.SkillScores["js_basics"] != 1.0 {
		t.Errorf("level 5 should map to 1.0, got %v", result.SkillScores["js_basics"])
	}
	if result.SkillScores["css_layout"] != 0.0 {
		t.Errorf("level 1 should map to 0.0, got %v", result.SkillScores["css_layout"])
	}
	if !result.SelfReport {
		t.Error("result should be flagged as a self-report")
	}
	if result.Confidence != 0.2 {
		t.Errorf("self-report confidence = %v, want 0.2", result.Confidence)
	}
}

func TestGrade_SelfReportMissingFieldIsIncomplete(t *testing.T) {
	g := New(nil, nil, nil)
	step := steps.Step{
		ID:   "self",
		Kind: steps.KindSelfReport,
		Fields: []steps.SelfReportField{
			{SkillKey: "js_basics"},
			{SkillKey: "css_layout"},
		},
	}

	_, err := g.Grade(context.Background(), step, Answer{
		Levels: map[string]int{"js_basics": 3},
	})
	if !errors.Is(err, ErrIncompleteAnswer) {
		t.Errorf("error = %v, want ErrIncompleteAnswer", err)
	}
}

func TestGrade_MCQAllOrNothing(t *testing.T) {
	g := New(nil, nil, nil)
	step := steps.Step{
		ID:              "mcq",
		Kind:            steps.KindMCQ,
		SkillKeys:       []string{"js_closures"},
		Weight:          0.6,
		CorrectOptionID: "b",
		Options: []steps.Option{
			{ID: "a", Label: "wrong"},
			{ID: "b", Label: "right"},
		},
	}

	right, err := g.Grade(context.Background(), step, Answer{OptionID: "b"})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if right.Score != 1.0 || !right.Passed {
		t.Errorf("correct answer: score=%v passed=%v, want 1.0/true", right.Score, right.Passed)
	}
	if right.Confidence != 0.6 {
		t.Errorf("confidence = %v, want step weight 0.6", right.Confidence)
	}

	wrong, err := g.Grade(context.Background(), step, Answer{OptionID: "a"})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if wrong.Score != 0.0 || wrong.Passed {
		t.Errorf("wrong answer: score=%v passed=%v, want 0.0/false", wrong.Score, wrong.Passed)
	}
	if wrong.SkillScores["js_closures"] != 0.0 {
		t.Errorf("skill score should be 0 for a wrong answer, got %v", wrong.SkillScores["js_closures"])
	}
}

func TestGrade_MicroBurstPartialCredit(t *testing.T) {
	g := New(nil, nil, nil)
	step := steps.Step{
		ID:     "burst",
		Kind:   steps.KindMicroMCQ,
		Weight: 0.7,
		Micro: []steps.MicroQuestion{
			{ID: "q1", SkillKey: "prog_arrays", CorrectOptionID: "a", Options: twoOptions()},
			{ID: "q2", SkillKey: "prog_arrays", CorrectOptionID: "a", Options: twoOptions()},
			{ID: "q3", SkillKey: "prog_operators", CorrectOptionID: "a", Options: twoOptions()},
			{ID: "q4", SkillKey: "prog_operators", CorrectOptionID: "a", Options: twoOptions()},
		},
	}

	result, err := g.Grade(context.Background(), step, Answer{
		MicroAnswers: map[string]string{"q1": "a", "q2": "a", "q3": "a", "q4": "b"},
	})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Score != 0.75 {
		t.Errorf("score = %v, want 0.75", result.Score)
	}
	if result.SkillScores["prog_arrays"] != 1.0 {
		t.Errorf("prog_arrays = %v, want 1.0", result.SkillScores["prog_arrays"])
	}
	if result.SkillScores["prog_operators"] != 0.5 {
		t.Errorf("prog_operators = %v, want 0.5", result.SkillScores["prog_operators"])
	}
}

func TestGrade_MicroBurstRejectsPartialSubmission(t *testing.T) {
	g := New(nil, nil, nil)
	step := steps.Step{
		ID:   "burst",
		Kind: steps.KindMicroMCQ,
		Micro: []steps.MicroQuestion{
			{ID: "q1", SkillKey: "prog_arrays", CorrectOptionID: "a", Options: twoOptions()},
			{ID: "q2", SkillKey: "prog_arrays", CorrectOptionID: "a", Options: twoOptions()},
		},
	}

	_, err := g.Grade(context.Background(), step, Answer{
		MicroAnswers: map[string]string{"q1": "a"},
	})
	if !errors.Is(err, ErrIncompleteAnswer) {
		t.Errorf("error = %v, want ErrIncompleteAnswer", err)
	}
}

func TestGrade_TextUsesScorerSeam(t *testing.T) {
	g := New(fixedScorer{score: 0.8}, nil, nil)
	step := steps.Step{
		ID:        "text",
		Kind:      steps.KindShortText,
		SkillKeys: []string{"sys_decomposition"},
		Weight:    0.4,
		MinLength: 10,
	}

	result, err := g.Grade(context.Background(), step, Answer{Text: "break it into parts"})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Score != 0.8 {
		t.Errorf("score = %v, want the scorer's 0.8", result.Score)
	}
	if !result.Passed {
		t.Error("0.8 should pass")
	}
}

func TestGrade_TextScorerFailureFallsBackToHeuristic(t *testing.T) {
	g := New(fixedScorer{err: errors.New("model unavailable")}, nil, nil)
	step := steps.Step{
		ID:        "text",
		Kind:      steps.KindShortText,
		SkillKeys: []string{"sys_decomposition"},
		Weight:    0.4,
		MinLength: 5,
		Keywords:  []string{"parts"},
	}

	result, err := g.Grade(context.Background(), step, Answer{Text: "break it into parts"})
	if err != nil {
		t.Fatalf("scorer failure must not fail the step: %v", err)
	}
	if result.Score != 1.0 {
		t.Errorf("heuristic fallback score = %v, want 1.0", result.Score)
	}
}

func TestGrade_CodeUsesRunnerPassFraction(t *testing.T) {
	mock := runner.NewMockRunner(runner.MockResult{
		Result: &runner.RunResult{Cases: []runner.CaseResult{
			{Passed: true}, {Passed: true}, {Passed: false}, {Passed: false},
		}},
	})
	g := New(nil, mock, nil)
	step := steps.Step{
		ID:        "code",
		Kind:      steps.KindCode,
		SkillKeys: []string{"prog_functions"},
		Weight:    0.9,
		Language:  "go",
		Tests:     []steps.TestCase{{Input: "a", Expected: "a"}},
	}

	result, err := g.Grade(context.Background(), step, Answer{Code: "package solution"})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", result.Score)
	}
	if result.Passed {
		t.Error("partial pass should not count as passed")
	}
	if mock.CallCount() != 1 {
		t.Errorf("runner calls = %d, want 1", mock.CallCount())
	}
}

func TestGrade_CodeRunnerFailureScoresZero(t *testing.T) {
	mock := runner.NewMockRunner(runner.MockResult{Err: errors.New("interpreter crashed")})
	g := New(nil, mock, nil)
	step := steps.Step{
		ID:        "code",
		Kind:      steps.KindCode,
		SkillKeys: []string{"prog_functions"},
		Weight:    0.9,
		Language:  "go",
		Tests:     []steps.TestCase{{Input: "a", Expected: "a"}},
	}

	result, err := g.Grade(context.Background(), step, Answer{Code: "package solution"})
	if err != nil {
		t.Fatalf("runner failure must not fail the step: %v", err)
	}
	if result.Score != 0.0 || result.Passed {
		t.Errorf("score=%v passed=%v, want 0.0/false", result.Score, result.Passed)
	}
}

func TestGrade_SummaryGradesNothing(t *testing.T) {
	g := New(nil, nil, nil)
	result, err := g.Grade(context.Background(), steps.Step{ID: "done", Kind: steps.KindSummary}, Answer{})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if len(result.SkillScores) != 0 {
		t.Errorf("summary should produce no skill scores, got %v", result.SkillScores)
	}
}

func TestGrade_UnknownKindIsAnError(t *testing.T) {
	g := New(nil, nil, nil)
	_, err := g.Grade(context.Background(), steps.Step{ID: "x", Kind: steps.Kind("essay")}, Answer{})
	if err == nil {
		t.Fatal("expected error for unknown step kind")
	}
}

func TestHeuristicScorer_Bands(t *testing.T) {
	scorer := HeuristicScorer{}
	ctx := context.Background()

	empty, _ := scorer.Score(ctx, TextSubmission{MinLength: 20, Keywords: []string{"cache"}})
	if empty != 0 {
		t.Errorf("empty answer = %v, want 0", empty)
	}

	short, _ := scorer.Score(ctx, TextSubmission{Text: "cache more", MinLength: 20, Keywords: []string{"cache"}})
	if short <= empty || short >= 1 {
		t.Errorf("short answer = %v, want strictly between 0 and 1", short)
	}

	full, _ := scorer.Score(ctx, TextSubmission{
		Text:      "add a cache in front of the slow service",
		MinLength: 20,
		Keywords:  []string{"cache"},
	})
	if math.Abs(full-1.0) > 1e-9 {
		t.Errorf("in-band answer with all keywords = %v, want 1.0", full)
	}

	noKeywords, _ := scorer.Score(ctx, TextSubmission{Text: "a reasonable answer here", MinLength: 10})
	if noKeywords != 1.0 {
		t.Errorf("no configured keywords should not penalize, got %v", noKeywords)
	}
}

func twoOptions() []steps.Option {
	return []steps.Option{{ID: "a", Label: "yes"}, {ID: "b", Label: "no"}}
}

type fixedScorer struct {
	score float64
	err   error
}

func (f fixedScorer) Score(context.Context, TextSubmission) (float64, error) {
	return f.score, f.err
}
