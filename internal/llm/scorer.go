package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/grader"
)

const scorerSystemPrompt = `You grade short free-text answers from web development learners.
Score how well the answer addresses the prompt, from 0.0 (no relevant content) to 1.0 (complete, correct, well reasoned).
Reward substance over length. Do not penalize informal language.`

// gradeSchema is the structured output contract for text grading.
var gradeSchema = &Schema{
	Name:        "text-grade",
	Description: "Score for a free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
			"feedback": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"score"},
		"additionalProperties": false,
	},
}

// Scorer grades free text through a Provider. It satisfies the grading
// layer's TextScorer seam; callers fall back to the heuristic scorer
// when a call fails.
type Scorer struct {
	provider Provider
}

// NewScorer creates a Scorer backed by the given provider.
func NewScorer(p Provider) *Scorer {
	return &Scorer{provider: p}
}

// Score asks the model for a grade in [0,1].
func (s *Scorer) Score(ctx context.Context, sub grader.TextSubmission) (float64, error) {
	resp, err := s.provider.Generate(ctx, Request{
		System:    scorerSystemPrompt,
		Messages:  []Message{{Role: RoleUser, Content: buildGradePrompt(sub)}},
		Schema:    gradeSchema,
		MaxTokens: 300,
	})
	if err != nil {
		return 0, fmt.Errorf("score text: %w", err)
	}

	var grade struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Content, &grade); err != nil {
		return 0, fmt.Errorf("parse grade: %w", err)
	}

	if grade.Score < 0 {
		return 0, nil
	}
	if grade.Score > 1 {
		return 1, nil
	}
	return grade.Score, nil
}

func buildGradePrompt(sub grader.TextSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:\n%s\n\nAnswer:\n%s\n", sub.Prompt, sub.Text)
	if len(sub.Keywords) > 0 {
		fmt.Fprintf(&b, "\nConcepts a strong answer touches on: %s\n", strings.Join(sub.Keywords, ", "))
	}
	if sub.MinLength > 0 {
		fmt.Fprintf(&b, "\nExpected length: at least %d characters.\n", sub.MinLength)
	}
	return b.String()
}
