package roadmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/planner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/screen"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/components"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/layout"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/theme"
)

type mode int

const (
	modeLoading mode = iota
	modeForm
	modeList
	modeError
)

// RoadmapScreen shows the personalized plan and lets the learner mark
// progress or regenerate it.
type RoadmapScreen struct {
	svc      *planner.Service
	userID   string
	defaults planner.Options

	m     mode
	err   error
	items []planner.Item

	// Horizon form, shown when no roadmap exists yet.
	weeksInput components.TextInput
	hoursInput components.TextInput
	focusHours bool

	selected int
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates the roadmap screen. The stored plan is loaded on Init.
func New(svc *planner.Service, userID string, defaults planner.Options) *RoadmapScreen {
	return &RoadmapScreen{
		svc:      svc,
		userID:   userID,
		defaults: defaults,
		m:        modeLoading,
	}
}

type loadedMsg struct{ items []planner.Item }
type errMsg struct{ err error }

func (r *RoadmapScreen) loadCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := r.svc.CurrentForUser(context.Background(), r.userID)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{items}
	}
}

func (r *RoadmapScreen) generateCmd(opts planner.Options) tea.Cmd {
	return func() tea.Msg {
		items, err := r.svc.GenerateForUser(context.Background(), r.userID, opts)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{items}
	}
}

func (r *RoadmapScreen) markCmd(resourceID string, status roadmap.ItemStatus) tea.Cmd {
	return func() tea.Msg {
		if err := r.svc.MarkStatus(context.Background(), r.userID, resourceID, status); err != nil {
			return errMsg{err}
		}
		items, err := r.svc.CurrentForUser(context.Background(), r.userID)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{items}
	}
}

func (r *RoadmapScreen) Init() tea.Cmd {
	return r.loadCmd()
}

func (r *RoadmapScreen) setupForm() {
	r.weeksInput = components.NewTextInput(fmt.Sprintf("%d", r.defaults.MaxWeeks), true, 3)
	r.hoursInput = components.NewTextInput(fmt.Sprintf("%d", r.defaults.HoursPerWeek), true, 3)
	r.focusHours = false
	r.m = modeForm
}

// formOptions reads the horizon form, falling back to the defaults for
// blank fields.
func (r *RoadmapScreen) formOptions(regenerate bool) planner.Options {
	opts := r.defaults
	opts.Regenerate = regenerate
	if weeks, err := r.weeksInput.NumericValue(); err == nil && weeks > 0 {
		opts.MaxWeeks = weeks
	}
	if hours, err := r.hoursInput.NumericValue(); err == nil && hours > 0 {
		opts.HoursPerWeek = hours
	}
	return opts
}

func (r *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		r.items = msg.items
		if len(r.items) == 0 {
			r.setupForm()
		} else {
			r.m = modeList
			if r.selected >= len(r.items) {
				r.selected = len(r.items) - 1
			}
		}
		return r, nil

	case errMsg:
		r.err = msg.err
		r.m = modeError
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	if r.m == modeForm {
		return r.updateForm(msg)
	}
	return r, nil
}

func (r *RoadmapScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if r.focusHours {
		r.hoursInput, cmd = r.hoursInput.Update(msg)
	} else {
		r.weeksInput, cmd = r.weeksInput.Update(msg)
	}
	return r, cmd
}

func (r *RoadmapScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch r.m {
	case modeLoading:
		return r, nil

	case modeError:
		if msg.String() == "enter" {
			r.m = modeLoading
			r.err = nil
			return r, r.loadCmd()
		}
		return r, nil

	case modeForm:
		switch msg.String() {
		case "tab", "down", "up", "shift+tab":
			r.focusHours = !r.focusHours
			return r, nil
		case "enter":
			r.m = modeLoading
			return r, r.generateCmd(r.formOptions(false))
		}
		return r.updateForm(msg)

	case modeList:
		switch msg.String() {
		case "up", "k":
			if r.selected > 0 {
				r.selected--
			}
		case "down", "j":
			if r.selected < len(r.items)-1 {
				r.selected++
			}
		case "enter", " ":
			if len(r.items) == 0 {
				return r, nil
			}
			it := r.items[r.selected]
			return r, r.markCmd(it.Resource.ID, nextStatus(it.Status))
		case "g":
			r.m = modeLoading
			return r, r.generateCmd(planner.Options{
				TargetRole:   r.defaults.TargetRole,
				MaxWeeks:     r.defaults.MaxWeeks,
				HoursPerWeek: r.defaults.HoursPerWeek,
				Regenerate:   true,
			})
		}
	}
	return r, nil
}

// nextStatus cycles NOT_STARTED -> IN_PROGRESS -> COMPLETED -> NOT_STARTED.
func nextStatus(s roadmap.ItemStatus) roadmap.ItemStatus {
	switch s {
	case roadmap.StatusNotStarted:
		return roadmap.StatusInProgress
	case roadmap.StatusInProgress:
		return roadmap.StatusCompleted
	default:
		return roadmap.StatusNotStarted
	}
}

func (r *RoadmapScreen) View(width, height int) string {
	switch r.m {
	case modeLoading:
		return theme.Hint.Render("  Loading...")
	case modeError:
		return theme.Incorrect.Render("  Roadmap error: "+r.err.Error()) + "\n\n" +
			theme.Hint.Render("  Press Enter to retry.")
	case modeForm:
		return r.viewForm(width)
	default:
		return r.viewList(width, height)
	}
}

func (r *RoadmapScreen) viewForm(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Plan your roadmap"))
	b.WriteString("\n\n")

	label := func(s string, focused bool) string {
		st := lipgloss.NewStyle().Foreground(theme.Text)
		if focused {
			st = st.Bold(true).Foreground(theme.Primary)
		}
		return st.Render(fmt.Sprintf("%-18s", s))
	}

	b.WriteString("  " + label("Weeks", !r.focusHours) + r.weeksInput.View() + "\n")
	b.WriteString("  " + label("Hours per week", r.focusHours) + r.hoursInput.View() + "\n\n")

	btn := components.NewButton("Generate", true, nil)
	b.WriteString("  " + btn.View() + "\n\n")
	b.WriteString("  " + theme.Hint.Render("Blank fields use the configured defaults."))

	return b.String()
}

func (r *RoadmapScreen) viewList(width, height int) string {
	var b strings.Builder

	var total, done float64
	for _, it := range r.items {
		total += it.Resource.EstimatedHours
		if it.Status == roadmap.StatusCompleted {
			done += it.Resource.EstimatedHours
		}
	}
	headline := fmt.Sprintf("%d resources, %.0f hours planned, %.0f done", len(r.items), total, done)
	b.WriteString("  " + theme.Hint.Render(headline) + "\n\n")

	var lastPhase roadmap.Phase
	for i, it := range r.items {
		if it.Resource.Phase != lastPhase {
			lastPhase = it.Resource.Phase
			b.WriteString("  " + lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render(roadmap.PhaseName(lastPhase)) + "\n")
		}

		marker := "[ ]"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch it.Status {
		case roadmap.StatusInProgress:
			marker = "[~]"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		case roadmap.StatusCompleted:
			marker = "[x]"
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
		}

		prefix := "   "
		if i == r.selected {
			prefix = " ▸ "
			style = style.Bold(true)
		}

		line := fmt.Sprintf("%s%s %s (%s, %.0fh)",
			prefix, marker, it.Resource.Title,
			strings.ToLower(string(it.Resource.Type)), it.Resource.EstimatedHours)
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

func (r *RoadmapScreen) Title() string {
	return "Roadmap"
}

func (r *RoadmapScreen) KeyHints() []layout.KeyHint {
	switch r.m {
	case modeForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case modeList:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Cycle status"},
			{Key: "g", Description: "Regenerate"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}
