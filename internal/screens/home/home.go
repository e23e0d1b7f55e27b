package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/packsort/internal/router"
	"github.com/abhisek/packsort/internal/screen"
	"github.com/abhisek/packsort/internal/screens/examples"
	"github.com/abhisek/packsort/internal/screens/measure"
	"github.com/abhisek/packsort/internal/sorter"
	"github.com/abhisek/packsort/internal/ui/components"
	"github.com/abhisek/packsort/internal/ui/theme"
)

const crateArt = `  ┌───────────────┐
 ╱               ╱│
┌───────────────┐ │
│  ▒▒  THIS  ▒▒ │ │
│  ▒▒  SIDE  ▒▒ │ │
│  ▒▒   UP   ▒▒ │╱
└───────────────┘`

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	items := []components.MenuItem{
		{Label: "MEASURE PACKAGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: measure.New()}
			}
		}},
		{Label: "EXAMPLE PARCELS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examples.New()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(crateArt))

	sections = append(sections,
		theme.Title.Render("PACKSORT"),
		theme.Subtitle.Render("Sort parcels into handling categories"))

	sections = append(sections, rulesCard())

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// rulesCard summarizes the sorting thresholds shown on the home screen.
func rulesCard() string {
	lines := []string{
		fmt.Sprintf("bulky   volume ≥ %s cm³ or any side ≥ %d cm",
			"1,000,000", sorter.BulkyDimension),
		fmt.Sprintf("heavy   mass ≥ %d kg", sorter.HeavyMass),
		"",
		"bulky + heavy → REJECTED    one of them → SPECIAL",
	}
	return theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(lines, "\n")))
}
