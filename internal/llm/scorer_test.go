package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/grader"
)

func TestScorer_ParsesGrade(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"score": 0.7, "feedback": "decent"}`),
	})
	s := NewScorer(mock)

	score, err := s.Score(context.Background(), grader.TextSubmission{
		Prompt: "How would you debug a slow page?",
		Text:   "Profile first, then look at network waterfalls.",
	})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score != 0.7 {
		t.Errorf("score = %v, want 0.7", score)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestScorer_ClampsOutOfRangeGrade(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"score": 1.4}`),
	})
	s := NewScorer(mock)

	score, err := s.Score(context.Background(), grader.TextSubmission{Text: "x"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score != 1.0 {
		t.Errorf("score = %v, want clamped 1.0", score)
	}
}

func TestScorer_PropagatesProviderError(t *testing.T) {
	mock := NewMockProvider() // empty queue -> provider unavailable
	s := NewScorer(mock)

	if _, err := s.Score(context.Background(), grader.TextSubmission{Text: "x"}); err == nil {
		t.Fatal("expected error from unavailable provider")
	}
}

func TestScorer_PromptCarriesKeywords(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"score": 0.5}`)})
	s := NewScorer(mock)

	_, err := s.Score(context.Background(), grader.TextSubmission{
		Prompt:   "Explain caching.",
		Text:     "answer",
		Keywords: []string{"invalidation", "ttl"},
	})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "invalidation") || !strings.Contains(prompt, "ttl") {
		t.Errorf("prompt should include the configured keywords, got:\n%s", prompt)
	}
}
