package examples

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/packsort/internal/catalog"
	"github.com/abhisek/packsort/internal/router"
	"github.com/abhisek/packsort/internal/screen"
	"github.com/abhisek/packsort/internal/screens/result"
	"github.com/abhisek/packsort/internal/sorter"
	"github.com/abhisek/packsort/internal/ui/components"
	"github.com/abhisek/packsort/internal/ui/theme"
)

// ExamplesScreen lists the catalog of package archetypes; selecting one
// classifies it and shows the result.
type ExamplesScreen struct {
	menu    components.Menu
	errText string
}

var _ screen.Screen = (*ExamplesScreen)(nil)

// New creates the example browser.
func New() *ExamplesScreen {
	s := &ExamplesScreen{}

	all, err := catalog.Load()
	if err != nil {
		s.errText = fmt.Sprintf("Example catalog unavailable: %v", err)
		return s
	}

	items := make([]components.MenuItem, 0, len(all))
	for _, ex := range all {
		items = append(items, components.MenuItem{
			Label:  ex.Name,
			Detail: fmt.Sprintf("%g × %g × %g cm, %g kg", ex.Width, ex.Height, ex.Length, ex.Mass),
			Action: func() tea.Cmd {
				return classify(ex)
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

// classify runs the archetype through the sorter and pushes its result.
func classify(ex catalog.Example) tea.Cmd {
	res, err := sorter.ClassifyWithDetail(ex.Width, ex.Height, ex.Length, ex.Mass)
	if err != nil {
		// Catalog entries are schema-checked to be valid inputs.
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: result.New(res, ex.Name, nil),
		}
	}
}

func (s *ExamplesScreen) Title() string {
	return "Example Parcels"
}

func (s *ExamplesScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamplesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ExamplesScreen) View(width, height int) string {
	if s.errText != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Invalid.Render(s.errText))
	}

	header := theme.Title.Width(width).Render("Example parcels") + "\n" +
		theme.Subtitle.Width(width).Render("Pick an archetype to classify") + "\n\n"

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		header+s.menu.View())
}
