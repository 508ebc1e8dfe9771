package components

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for free-text and code answers.
type TextArea struct {
	Model    textarea.Model
	MinChars int
}

// NewTextArea creates a multi-line input. maxChars of 0 means no limit.
func NewTextArea(placeholder string, minChars, maxChars int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	if maxChars > 0 {
		ta.CharLimit = maxChars
	}
	ta.Focus()
	return TextArea{Model: ta, MinChars: minChars}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the underlying model.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a character counter when a minimum is set.
func (t TextArea) View() string {
	view := t.Model.View()
	if t.MinChars > 0 {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if len(t.Model.Value()) < t.MinChars {
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		view += "\n" + style.Render(
			charCountLabel(len(t.Model.Value()), t.MinChars))
	}
	return view
}

// Value returns the current input text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input text.
func (t *TextArea) SetValue(v string) {
	t.Model.SetValue(v)
}

// SetSize resizes the input area.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

func charCountLabel(have, min int) string {
	if have < min {
		return fmt.Sprintf("  %d/%d characters minimum", have, min)
	}
	return fmt.Sprintf("  %d characters", have)
}
