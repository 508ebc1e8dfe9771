package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/theme"
)

const (
	sliderMin = 1
	sliderMax = 5
)

// Slider is a 1-5 level picker used on self-report steps.
type Slider struct {
	Label   string
	Value   int
	Focused bool
}

// NewSlider creates a slider at the lowest level.
func NewSlider(label string) Slider {
	return Slider{Label: label, Value: sliderMin}
}

// Update handles left/right adjustment while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Value > sliderMin {
			s.Value--
		}
	case "right", "l":
		if s.Value < sliderMax {
			s.Value++
		}
	case "1", "2", "3", "4", "5":
		s.Value = int(kmsg.String()[0] - '0')
	}

	return s, nil
}

// View renders the slider as filled and empty notches.
func (s Slider) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if s.Focused {
		labelStyle = labelStyle.Bold(true).Foreground(theme.Primary)
	}

	var track strings.Builder
	for v := sliderMin; v <= sliderMax; v++ {
		if v <= s.Value {
			track.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("●"))
		} else {
			track.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
		if v < sliderMax {
			track.WriteString("─")
		}
	}

	prefix := "  "
	if s.Focused {
		prefix = "▸ "
	}

	return fmt.Sprintf("%s%s  %s  %s",
		prefix,
		labelStyle.Render(fmt.Sprintf("%-28s", s.Label)),
		track.String(),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/5", s.Value)),
	)
}
