package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	intakesvc "github.com/Trevorton27/tokuWebDev-sub003/internal/intake"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/planner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/router"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/screen"
	intakescreen "github.com/Trevorton27/tokuWebDev-sub003/internal/screens/intake"
	roadmapscreen "github.com/Trevorton27/tokuWebDev-sub003/internal/screens/roadmap"
	summaryscreen "github.com/Trevorton27/tokuWebDev-sub003/internal/screens/summary"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/components"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/ui/theme"
)

// Deps bundles everything the home screen hands down to sub-screens.
type Deps struct {
	Intake        *intakesvc.Service
	Planner       *planner.Service
	UserID        string
	WeakThreshold float64
	PlanDefaults  planner.Options
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps           Deps
	menu           components.Menu
	assessedSkills int
	itemsDone      int
	itemsTotal     int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen and loads the headline numbers.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()

	var assessed int
	if deps.Intake != nil {
		if profile, err := deps.Intake.Profile(ctx, deps.UserID); err == nil {
			for _, sm := range profile {
				if sm.Attempts > 0 {
					assessed++
				}
			}
		}
	}

	var done, total int
	if deps.Planner != nil {
		if items, err := deps.Planner.CurrentForUser(ctx, deps.UserID); err == nil {
			total = len(items)
			for _, it := range items {
				if it.Status == roadmap.StatusCompleted {
					done++
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: intakescreen.New(deps.Intake, deps.UserID, deps.WeakThreshold),
				}
			}
		}},
		{Label: "SKILL SUMMARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: summaryscreen.New(deps.Intake, deps.UserID, deps.WeakThreshold),
				}
			}
		}},
		{Label: "ROADMAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: roadmapscreen.New(deps.Planner, deps.UserID, deps.PlanDefaults),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:           deps,
		menu:           components.NewMenu(items),
		assessedSkills: assessed,
		itemsDone:      done,
		itemsTotal:     total,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("toku")
	subtitle := theme.Subtitle.Width(width).Render("find your gaps, then close them")
	sections = append(sections, title+"\n"+subtitle)

	stats := fmt.Sprintf("Skills assessed: %d", h.assessedSkills)
	if h.itemsTotal > 0 {
		stats += fmt.Sprintf("        Roadmap: %d/%d done", h.itemsDone, h.itemsTotal)
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
