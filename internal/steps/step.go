package steps

// Kind identifies how a step is presented and graded. The set is
// closed: the grader matches exhaustively and treats anything else as a
// configuration error.
type Kind string

const (
	KindSelfReport     Kind = "self_report"      // 1-5 sliders, one per skill
	KindMCQ            Kind = "mcq"              // single multiple-choice question
	KindMicroMCQ       Kind = "micro_mcq"        // burst of several micro questions
	KindShortText      Kind = "short_text"       // free-text answer, heuristically scored
	KindCode           Kind = "code"             // code exercise graded by test cases
	KindDesignCompare  Kind = "design_compare"   // A/B pick-the-better-design
	KindDesignCritique Kind = "design_critique"  // free-text critique of a design
	KindSummary        Kind = "summary"          // terminal step, nothing to grade
)

// AllKinds returns every step kind.
func AllKinds() []Kind {
	return []Kind{
		KindSelfReport, KindMCQ, KindMicroMCQ, KindShortText,
		KindCode, KindDesignCompare, KindDesignCritique, KindSummary,
	}
}

// Option is one selectable choice on an MCQ or design comparison.
type Option struct {
	ID    string
	Label string
}

// SelfReportField is one slider on a self-report step.
type SelfReportField struct {
	SkillKey string
	Label    string
}

// MicroQuestion is one sub-question inside a micro-MCQ burst.
type MicroQuestion struct {
	ID              string
	Prompt          string
	Options         []Option
	CorrectOptionID string
	SkillKey        string
}

// TestCase is one input/output check for a code exercise. Hidden cases
// count toward the score but are never shown to the learner.
type TestCase struct {
	Input    string
	Expected string
	Hidden   bool
}

// Step is one entry in the intake sequence. Kind determines which of
// the kind-specific fields are meaningful.
type Step struct {
	ID            string
	Order         int
	Kind          Kind
	Title         string
	Prompt        string
	SkillKeys     []string // skills this step updates
	Weight        float64  // evidence weight passed to the mastery update
	EstimatedMins int

	// Self-report.
	Fields []SelfReportField

	// MCQ / design comparison. For comparisons CorrectOptionID names
	// the configured "better" option.
	Options         []Option
	CorrectOptionID string

	// Micro-MCQ burst.
	Micro []MicroQuestion

	// Short text / design critique.
	MinLength int
	MaxLength int
	Keywords  []string

	// Code exercise.
	Language    string
	StarterCode string
	Tests       []TestCase
}

// IsTerminal reports whether submitting this step completes the session.
func (s Step) IsTerminal() bool {
	return s.Kind == KindSummary
}
