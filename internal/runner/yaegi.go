package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// allowedImports is the whitelist of stdlib packages a submission may
// import. Everything with filesystem, network or process access stays
// blocked.
var allowedImports = map[string]bool{
	"strings": true,
	"strconv": true,
	"fmt":     true,
	"math":    true,
	"sort":    true,
	"unicode": true,
	"bytes":   true,
}

// LocalRunner executes Go submissions in an embedded yaegi interpreter.
// The submission must define `func Solve(input string) string` in a
// package named solution.
type LocalRunner struct{}

// NewLocalRunner creates a LocalRunner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run interprets the submission and evaluates every case. A compile or
// lookup failure is an evaluation error; a per-case panic only fails
// that case.
func (r *LocalRunner) Run(ctx context.Context, sub Submission) (*RunResult, error) {
	if sub.Language != "go" {
		return nil, &ErrUnsupportedLanguage{Language: sub.Language}
	}
	if err := checkImports(sub.Code); err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load interpreter stdlib: %w", err)
	}

	if _, err := i.Eval(sub.Code); err != nil {
		return nil, fmt.Errorf("evaluate submission: %w", err)
	}

	v, err := i.Eval("solution.Solve")
	if err != nil {
		return nil, fmt.Errorf("Solve function not found: %w", err)
	}
	solve, ok := v.Interface().(func(string) string)
	if !ok {
		return nil, fmt.Errorf("Solve has wrong signature, want func(string) string")
	}

	result := &RunResult{Cases: make([]CaseResult, len(sub.Cases))}
	for idx, c := range sub.Cases {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		result.Cases[idx] = runCase(ctx, solve, c)
	}
	return result, nil
}

// runCase calls the interpreted function in a goroutine so a hanging
// submission cannot outlive the context, and so panics fail only the
// case that raised them.
func runCase(ctx context.Context, solve func(string) string, c Case) CaseResult {
	type outcome struct {
		got string
		err string
	}
	ch := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Sprintf("panic: %v", r)}
			}
		}()
		ch <- outcome{got: solve(c.Input)}
	}()

	select {
	case out := <-ch:
		if out.err != "" {
			return CaseResult{Passed: false, Hidden: c.Hidden, Err: out.err}
		}
		got := strings.TrimSpace(out.got)
		return CaseResult{
			Passed: got == strings.TrimSpace(c.Expected),
			Got:    got,
			Hidden: c.Hidden,
		}
	case <-ctx.Done():
		return CaseResult{Passed: false, Hidden: c.Hidden, Err: ctx.Err().Error()}
	}
}

// checkImports rejects submissions importing anything outside the
// whitelist.
func checkImports(code string) error {
	var forbidden []string
	inBlock := false
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "import ("):
			inBlock = true
		case inBlock && strings.HasPrefix(trimmed, ")"):
			inBlock = false
		case inBlock && trimmed != "":
			if pkg := strings.Trim(trimmed, `"`); !allowedImports[pkg] {
				forbidden = append(forbidden, pkg)
			}
		case strings.HasPrefix(trimmed, "import "):
			pkg := strings.Trim(strings.TrimPrefix(trimmed, "import "), `"`)
			if !allowedImports[pkg] {
				forbidden = append(forbidden, pkg)
			}
		}
	}
	if len(forbidden) > 0 {
		return fmt.Errorf("submission imports forbidden packages: %s", strings.Join(forbidden, ", "))
	}
	return nil
}
