package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/steps"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/theme"
)

// MultiChoice is a single-select option list for MCQ and design
// comparison steps. Options carry stable IDs so the chosen ID can be
// submitted as is.
type MultiChoice struct {
	Question  string
	Options   []steps.Option
	Selected  int
	Submitted bool
	Chosen    int
	CorrectID string // revealed after submission when non-empty
}

// NewMultiChoice creates a selector over the given options.
func NewMultiChoice(question string, options []steps.Option, correctID string) MultiChoice {
	return MultiChoice{
		Question:  question,
		Options:   options,
		CorrectID: correctID,
		Chosen:    -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Selected
	}

	return m, nil
}

// View renders the option list.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt.Label)

		if m.Submitted {
			switch {
			case m.CorrectID != "" && opt.ID == m.CorrectID:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == m.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// ChosenID returns the ID of the chosen option, or "" before submission.
func (m MultiChoice) ChosenID() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen].ID
}

// Reset clears the submission so the learner can pick again.
func (m *MultiChoice) Reset() {
	m.Submitted = false
	m.Chosen = -1
}

// Select moves the cursor to the option with the given ID, if present.
func (m *MultiChoice) Select(id string) {
	for i, opt := range m.Options {
		if opt.ID == id {
			m.Selected = i
			return
		}
	}
}
