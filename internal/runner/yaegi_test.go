package runner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

const reverseWords = `package solution

import "strings"

func Solve(input string) string {
	words := strings.Fields(input)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}
`

func TestLocalRunner_AllCasesPass(t *testing.T) {
	r := NewLocalRunner()
	result, err := r.Run(context.Background(), Submission{
		Language: "go",
		Code:     reverseWords,
		Cases: []Case{
			{Input: "a b c", Expected: "c b a"},
			{Input: "hello", Expected: "hello", Hidden: true},
		},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.PassFraction() != 1.0 {
		t.Errorf("PassFraction = %v, want 1.0", result.PassFraction())
	}
	if !result.Cases[1].Hidden {
		t.Error("hidden flag should carry through to the result")
	}
}

func TestLocalRunner_PartialPass(t *testing.T) {
	r := NewLocalRunner()
	result, err := r.Run(context.Background(), Submission{
		Language: "go",
		Code: `package solution

func Solve(input string) string { return input }
`,
		Cases: []Case{
			{Input: "same", Expected: "same"},
			{Input: "a b", Expected: "b a"},
		},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.PassFraction() != 0.5 {
		t.Errorf("PassFraction = %v, want 0.5", result.PassFraction())
	}
}

func TestLocalRunner_CompileErrorIsRunError(t *testing.T) {
	r := NewLocalRunner()
	_, err := r.Run(context.Background(), Submission{
		Language: "go",
		Code:     "package solution\n\nfunc Solve(input string) string {",
		Cases:    []Case{{Input: "x", Expected: "x"}},
	})
	if err == nil {
		t.Fatal("expected error for broken submission")
	}
}

func TestLocalRunner_RejectsForbiddenImports(t *testing.T) {
	r := NewLocalRunner()
	_, err := r.Run(context.Background(), Submission{
		Language: "go",
		Code: `package solution

import "os"

func Solve(input string) string {
	os.Exit(1)
	return ""
}
`,
		Cases: []Case{{Input: "x", Expected: "x"}},
	})
	if err == nil {
		t.Fatal("expected error for forbidden import")
	}
	if !strings.Contains(err.Error(), "os") {
		t.Errorf("error should name the forbidden package, got: %v", err)
	}
}

func TestLocalRunner_RejectsUnsupportedLanguage(t *testing.T) {
	r := NewLocalRunner()
	_, err := r.Run(context.Background(), Submission{Language: "javascript", Code: "1"})
	var unsupported *ErrUnsupportedLanguage
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestLocalRunner_PanicFailsOnlyThatCase(t *testing.T) {
	r := NewLocalRunner()
	result, err := r.Run(context.Background(), Submission{
		Language: "go",
		Code: `package solution

func Solve(input string) string {
	if input == "boom" {
		panic("boom")
	}
	return input
}
`,
		Cases: []Case{
			{Input: "boom", Expected: "boom"},
			{Input: "ok", Expected: "ok"},
		},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Cases[0].Passed {
		t.Error("panicking case should fail")
	}
	if !result.Cases[1].Passed {
		t.Error("non-panicking case should pass")
	}
}

func TestWithTimeout_CancelsSlowRun(t *testing.T) {
	slow := runnerFunc(func(ctx context.Context, sub Submission) (*RunResult, error) {
		select {
		case <-time.After(5 * time.Second):
			return &RunResult{}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	r := WithTimeout(slow, 20*time.Millisecond)
	_, err := r.Run(context.Background(), Submission{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

type runnerFunc func(ctx context.Context, sub Submission) (*RunResult, error)

func (f runnerFunc) Run(ctx context.Context, sub Submission) (*RunResult, error) {
	return f(ctx, sub)
}
