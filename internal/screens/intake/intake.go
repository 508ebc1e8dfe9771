package intake

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/grader"
	intakesvc "github.com/Trevorton27/tokuWebDev-sub003/internal/intake"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/router"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/screen"
	summaryscreen "github.com/Trevorton27/tokuWebDev-sub003/internal/screens/summary"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/steps"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/components"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/layout"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseFeedback
	phaseError
)

// IntakeScreen walks the learner through the assessment sequence.
type IntakeScreen struct {
	svc           *intakesvc.Service
	userID        string
	weakThreshold float64

	sessionID string
	step      steps.Step
	index     int
	total     int
	canGoBack bool

	ph  phase
	err error

	// Kind-specific input state. Only the fields for the current
	// step's kind are live.
	sliders      []components.Slider
	sliderFocus  int
	choice       components.MultiChoice
	microIdx     int
	microChoice  components.MultiChoice
	microAnswers map[string]string
	text         components.TextArea

	result *intakesvc.SubmitResult

	width  int
	height int
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates the intake screen. The session is started (or resumed)
// on Init.
func New(svc *intakesvc.Service, userID string, weakThreshold float64) *IntakeScreen {
	return &IntakeScreen{
		svc:           svc,
		userID:        userID,
		weakThreshold: weakThreshold,
		ph:            phaseLoading,
	}
}

type startedMsg struct{ sessionID string }
type stepMsg struct{ view *intakesvc.StepView }
type submittedMsg struct{ result *intakesvc.SubmitResult }
type summaryMsg struct{ summary *intakesvc.Summary }
type errMsg struct{ err error }

func (s *IntakeScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := s.svc.StartSession(context.Background(), s.userID)
		if err != nil {
			return errMsg{err}
		}
		return startedMsg{sessionID: res.SessionID}
	}
}

func (s *IntakeScreen) stepCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := s.svc.CurrentStep(context.Background(), s.sessionID)
		if err != nil {
			return errMsg{err}
		}
		return stepMsg{view}
	}
}

func (s *IntakeScreen) submitCmd(ans grader.Answer) tea.Cmd {
	stepID := s.step.ID
	return func() tea.Msg {
		res, err := s.svc.SubmitStepAnswer(context.Background(), s.sessionID, stepID, ans)
		if err != nil {
			return errMsg{err}
		}
		return submittedMsg{res}
	}
}

func (s *IntakeScreen) prevCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := s.svc.GoToPreviousStep(context.Background(), s.sessionID)
		if err != nil {
			return errMsg{err}
		}
		if view == nil {
			// Already at the first step.
			return nil
		}
		return stepMsg{view}
	}
}

func (s *IntakeScreen) summaryCmd() tea.Cmd {
	return func() tea.Msg {
		sum, err := s.svc.SessionSummary(context.Background(), s.userID, s.weakThreshold)
		if err != nil {
			return errMsg{err}
		}
		return summaryMsg{sum}
	}
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.startCmd()
}

// setStep resets the input state for a freshly loaded step, prefilled
// from any earlier answer.
func (s *IntakeScreen) setStep(view *intakesvc.StepView) {
	s.step = view.Step
	s.index = view.Index
	s.total = view.TotalSteps
	s.canGoBack = view.CanGoBack
	s.result = nil
	s.ph = phaseAnswering

	prev := view.PreviousAnswer

	switch s.step.Kind {
	case steps.KindSelfReport:
		s.sliders = make([]components.Slider, len(s.step.Fields))
		for i, f := range s.step.Fields {
			s.sliders[i] = components.NewSlider(f.Label)
			if prev != nil {
				if lvl, ok := prev.Levels[f.SkillKey]; ok {
					s.sliders[i].Value = lvl
				}
			}
		}
		s.sliderFocus = 0
		if len(s.sliders) > 0 {
			s.sliders[0].Focused = true
		}

	case steps.KindMCQ, steps.KindDesignCompare:
		s.choice = components.NewMultiChoice(s.step.Prompt, s.step.Options, s.step.CorrectOptionID)
		if prev != nil && prev.OptionID != "" {
			s.choice.Select(prev.OptionID)
		}

	case steps.KindMicroMCQ:
		s.microIdx = 0
		s.microAnswers = make(map[string]string, len(s.step.Micro))
		s.loadMicroQuestion()

	case steps.KindShortText, steps.KindDesignCritique:
		s.text = components.NewTextArea("Type your answer...", s.step.MinLength, s.step.MaxLength)
		s.text.SetSize(s.contentWidth(), 8)
		if prev != nil {
			s.text.SetValue(prev.Text)
		}

	case steps.KindCode:
		s.text = components.NewTextArea("", 0, 0)
		s.text.SetSize(s.contentWidth(), 14)
		if prev != nil && prev.Code != "" {
			s.text.SetValue(prev.Code)
		} else {
			s.text.SetValue(s.step.StarterCode)
		}

	case steps.KindSummary:
		// Nothing to collect.
	}
}

func (s *IntakeScreen) loadMicroQuestion() {
	q := s.step.Micro[s.microIdx]
	s.microChoice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectOptionID)
}

func (s *IntakeScreen) contentWidth() int {
	w := s.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case startedMsg:
		s.sessionID = msg.sessionID
		return s, s.stepCmd()

	case stepMsg:
		s.setStep(msg.view)
		return s, nil

	case submittedMsg:
		s.result = msg.result
		s.ph = phaseFeedback
		return s, nil

	case summaryMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summaryscreen.NewWithSummary(msg.summary),
			}
		}

	case errMsg:
		s.err = msg.err
		s.ph = phaseError
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *IntakeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.ph {
	case phaseLoading:
		return s, nil

	case phaseError:
		if msg.String() == "enter" {
			// Retry from the current cursor.
			s.ph = phaseLoading
			s.err = nil
			if s.sessionID == "" {
				return s, s.startCmd()
			}
			return s, s.stepCmd()
		}
		return s, nil

	case phaseFeedback:
		if msg.String() == "enter" {
			if s.result != nil && s.result.Completed {
				s.ph = phaseLoading
				return s, s.summaryCmd()
			}
			s.ph = phaseLoading
			return s, s.stepCmd()
		}
		return s, nil
	}

	// Answering.
	if msg.String() == "ctrl+b" && s.canGoBack {
		s.ph = phaseLoading
		return s, s.prevCmd()
	}

	switch s.step.Kind {
	case steps.KindSelfReport:
		return s.handleSelfReportKey(msg)

	case steps.KindMCQ, steps.KindDesignCompare:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.submitCmd(grader.Answer{OptionID: s.choice.ChosenID()})
		}
		return s, cmd

	case steps.KindMicroMCQ:
		var cmd tea.Cmd
		s.microChoice, cmd = s.microChoice.Update(msg)
		if s.microChoice.Submitted {
			q := s.step.Micro[s.microIdx]
			s.microAnswers[q.ID] = s.microChoice.ChosenID()
			if s.microIdx+1 < len(s.step.Micro) {
				s.microIdx++
				s.loadMicroQuestion()
				return s, nil
			}
			return s, s.submitCmd(grader.Answer{MicroAnswers: s.microAnswers})
		}
		return s, cmd

	case steps.KindShortText, steps.KindDesignCritique:
		if msg.String() == "ctrl+s" {
			return s, s.submitCmd(grader.Answer{Text: s.text.Value()})
		}
		var cmd tea.Cmd
		s.text, cmd = s.text.Update(msg)
		return s, cmd

	case steps.KindCode:
		if msg.String() == "ctrl+s" {
			return s, s.submitCmd(grader.Answer{Code: s.text.Value()})
		}
		var cmd tea.Cmd
		s.text, cmd = s.text.Update(msg)
		return s, cmd

	case steps.KindSummary:
		if msg.String() == "enter" {
			return s, s.submitCmd(grader.Answer{})
		}
	}

	return s, nil
}

func (s *IntakeScreen) handleSelfReportKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		if s.sliderFocus > 0 {
			s.sliders[s.sliderFocus].Focused = false
			s.sliderFocus--
			s.sliders[s.sliderFocus].Focused = true
		}
		return s, nil
	case "down", "tab":
		if s.sliderFocus < len(s.sliders)-1 {
			s.sliders[s.sliderFocus].Focused = false
			s.sliderFocus++
			s.sliders[s.sliderFocus].Focused = true
		}
		return s, nil
	case "enter":
		levels := make(map[string]int, len(s.step.Fields))
		for i, f := range s.step.Fields {
			levels[f.SkillKey] = s.sliders[i].Value
		}
		return s, s.submitCmd(grader.Answer{Levels: levels})
	}

	var cmd tea.Cmd
	s.sliders[s.sliderFocus], cmd = s.sliders[s.sliderFocus].Update(msg)
	return s, cmd
}

func (s *IntakeScreen) View(width, height int) string {
	s.width = width
	s.height = height

	var b strings.Builder

	// Step progress.
	if s.total > 0 {
		pct := float64(s.index) / float64(s.total)
		bar := components.NewProgressBar("", pct, false, min(width-8, 50))
		b.WriteString("  " + bar.View() + "\n\n")
	}

	switch s.ph {
	case phaseLoading:
		b.WriteString(theme.Hint.Render("  Loading..."))

	case phaseError:
		b.WriteString(theme.Incorrect.Render("  Something went wrong: "+s.err.Error()) + "\n\n")
		b.WriteString(theme.Hint.Render("  Press Enter to retry."))

	case phaseFeedback:
		b.WriteString(s.renderFeedback())

	case phaseAnswering:
		b.WriteString(s.renderStep())
	}

	return b.String()
}

func (s *IntakeScreen) renderStep() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	b.WriteString("  " + titleStyle.Render(s.step.Title) + "\n\n")

	switch s.step.Kind {
	case steps.KindSelfReport:
		b.WriteString("  " + theme.Body.Render(s.step.Prompt) + "\n\n")
		for _, sl := range s.sliders {
			b.WriteString("  " + sl.View() + "\n")
		}

	case steps.KindMCQ, steps.KindDesignCompare:
		b.WriteString(indent(s.choice.View(), 2))

	case steps.KindMicroMCQ:
		counter := fmt.Sprintf("Question %d of %d", s.microIdx+1, len(s.step.Micro))
		b.WriteString("  " + theme.Hint.Render(counter) + "\n\n")
		b.WriteString(indent(s.microChoice.View(), 2))

	case steps.KindShortText, steps.KindDesignCritique:
		b.WriteString("  " + theme.Body.Render(s.step.Prompt) + "\n\n")
		b.WriteString(indent(s.text.View(), 2))

	case steps.KindCode:
		b.WriteString("  " + theme.Body.Render(s.step.Prompt) + "\n\n")
		for _, tc := range s.step.Tests {
			if tc.Hidden {
				continue
			}
			b.WriteString("  " + theme.Hint.Render(
				fmt.Sprintf("%q -> %q", tc.Input, tc.Expected)) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(indent(s.text.View(), 2))

	case steps.KindSummary:
		b.WriteString("  " + theme.Body.Render(s.step.Prompt) + "\n\n")
		b.WriteString("  " + theme.Hint.Render("Press Enter to finish and see your results."))
	}

	return b.String()
}

func (s *IntakeScreen) renderFeedback() string {
	var b strings.Builder
	res := s.result.Result

	if res.Passed {
		b.WriteString("  " + theme.Correct.Render("Nice!") + "\n\n")
	} else {
		b.WriteString("  " + theme.Incorrect.Render("Not quite.") + "\n\n")
	}

	if !res.SelfReport && s.step.Kind != steps.KindSummary {
		b.WriteString("  " + theme.Body.Render(
			fmt.Sprintf("Score: %.0f%%", res.Score*100)) + "\n")
	}

	if len(s.result.SkillDeltas) > 0 {
		b.WriteString("\n")
		for key, d := range s.result.SkillDeltas {
			style := theme.Correct
			sign := "+"
			if d < 0 {
				style = theme.Incorrect
				sign = ""
			}
			b.WriteString("  " + style.Render(
				fmt.Sprintf("%s %s%.2f", key, sign, d)) + "\n")
		}
	}

	b.WriteString("\n")
	if s.result.Completed {
		b.WriteString("  " + theme.Hint.Render("Assessment complete. Press Enter for your summary."))
	} else {
		b.WriteString("  " + theme.Hint.Render("Press Enter to continue."))
	}
	return b.String()
}

func (s *IntakeScreen) Title() string {
	if s.total > 0 {
		return fmt.Sprintf("Assessment — Step %d of %d", s.index+1, s.total)
	}
	return "Assessment"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.ph == phaseAnswering {
		switch s.step.Kind {
		case steps.KindSelfReport:
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Field"},
				layout.KeyHint{Key: "←→", Description: "Level"},
				layout.KeyHint{Key: "Enter", Description: "Submit"})
		case steps.KindShortText, steps.KindDesignCritique, steps.KindCode:
			hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
		default:
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Navigate"},
				layout.KeyHint{Key: "Enter", Description: "Submit"})
		}
		if s.canGoBack {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+B", Description: "Previous step"})
		}
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Home"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
