package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	intakesvc "github.com/Trevorton27/tokuWebDev-sub003/internal/intake"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/router"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/screen"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/components"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/layout"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/theme"
)

// SummaryScreen shows the per-dimension skill profile.
type SummaryScreen struct {
	svc           *intakesvc.Service
	userID        string
	weakThreshold float64

	summary *intakesvc.Summary
	err     error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen that loads the profile on Init.
func New(svc *intakesvc.Service, userID string, weakThreshold float64) *SummaryScreen {
	return &SummaryScreen{svc: svc, userID: userID, weakThreshold: weakThreshold}
}

// NewWithSummary creates a summary screen over already-computed data,
// used right after an assessment completes.
func NewWithSummary(sum *intakesvc.Summary) *SummaryScreen {
	return &SummaryScreen{summary: sum}
}

type loadedMsg struct{ summary *intakesvc.Summary }
type errMsg struct{ err error }

func (s *SummaryScreen) Init() tea.Cmd {
	if s.summary != nil {
		return nil
	}
	return func() tea.Msg {
		sum, err := s.svc.SessionSummary(context.Background(), s.userID, s.weakThreshold)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{sum}
	}
}

func (s *SummaryScreen) Title() string {
	return "Skill Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.summary = msg.summary
		return s, nil
	case errMsg:
		s.err = msg.err
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.err != nil {
		return theme.Incorrect.Render("  Could not load your profile: " + s.err.Error())
	}
	if s.summary == nil {
		return theme.Hint.Render("  Loading...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your skill profile"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Overall: %.0f%%", s.summary.Overall*100)))
	b.WriteString("\n\n")

	barWidth := min(width-40, 40)
	if barWidth < 10 {
		barWidth = 10
	}

	for _, line := range s.summary.Dimensions {
		name := fmt.Sprintf("%-22s", line.Name)
		bar := components.NewProgressBar("", line.Score.Score, true, barWidth)

		marker := "      "
		if line.Weak {
			marker = theme.Weak.Render(" weak ")
		}
		if line.Score.AssessedCount == 0 {
			marker = theme.Hint.Render(" n/a  ")
		}

		row := "  " + theme.Body.Render(name) + bar.View() + " " + marker
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	weakCount := 0
	for _, line := range s.summary.Dimensions {
		if line.Weak {
			weakCount++
		}
	}
	hint := "Looking solid. Generate a roadmap to keep the momentum."
	if weakCount > 0 {
		hint = fmt.Sprintf("%d area(s) need attention. Your roadmap will focus there.", weakCount)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
