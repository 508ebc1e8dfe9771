package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	intakesvc "github.com/Trevorton27/tokuWebDev-sub003/internal/intake"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/planner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/router"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/screen"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/screens/home"
	intakescreen "github.com/Trevorton27/tokuWebDev-sub003/internal/screens/intake"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/layout"
)

// Options carries the services the TUI runs on.
type Options struct {
	Intake        *intakesvc.Service
	Planner       *planner.Service
	UserID        string
	WeakThreshold float64
	PlanDefaults  planner.Options

	// StartAssessment opens the intake flow immediately instead of
	// the home menu.
	StartAssessment bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Intake:        opts.Intake,
		Planner:       opts.Planner,
		UserID:        opts.UserID,
		WeakThreshold: opts.WeakThreshold,
		PlanDefaults:  opts.PlanDefaults,
	})
	m := AppModel{
		router: router.New(homeScreen),
	}
	if opts.StartAssessment {
		m.initCmd = m.router.Push(
			intakescreen.New(opts.Intake, opts.UserID, opts.WeakThreshold))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
