package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/packsort/internal/router"
	"github.com/abhisek/packsort/internal/screen"
	"github.com/abhisek/packsort/internal/sorter"
	"github.com/abhisek/packsort/internal/ui/layout"
	"github.com/abhisek/packsort/internal/ui/theme"
)

// SortedMsg announces a completed classification so the app can update its
// session tally.
type SortedMsg struct {
	Classification sorter.Classification
}

// ResultScreen displays a single classification outcome.
type ResultScreen struct {
	res      *sorter.Result
	label    string
	again    func() screen.Screen
	announce bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for the given outcome. label optionally names
// the package (e.g. a catalog archetype). again, if non-nil, produces the
// screen to swap in when the user chooses to measure another package.
func New(res *sorter.Result, label string, again func() screen.Screen) *ResultScreen {
	return &ResultScreen{res: res, label: label, again: again}
}

func (s *ResultScreen) Init() tea.Cmd {
	if s.announce {
		return nil
	}
	s.announce = true
	class := s.res.Classification
	return func() tea.Msg {
		return SortedMsg{Classification: class}
	}
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.again != nil {
		hints = append(hints, layout.KeyHint{Key: "M", Description: "Measure another"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "m":
			if s.again != nil {
				next := s.again()
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			}
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	res := s.res
	if res == nil {
		return ""
	}

	var b strings.Builder

	if s.label != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.label)))
		b.WriteString("\n\n")
	}

	// Category badge.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		badge(res.Classification)))
	b.WriteString("\n\n")

	// Reason.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(res.Reason))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 52)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Measured facts.
	facts := []string{
		fmt.Sprintf("Dimensions   %g × %g × %g cm", res.Width, res.Height, res.Length),
		fmt.Sprintf("Volume       %g cm³", res.Volume),
		fmt.Sprintf("Mass         %g kg", res.Mass),
		fmt.Sprintf("Bulky        %s", yesNo(res.Bulky)),
		fmt.Sprintf("Heavy        %s", yesNo(res.Heavy)),
	}
	for _, f := range facts {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(f)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// badge renders the colored classification badge.
func badge(c sorter.Classification) string {
	label := " " + string(c) + " "
	switch c {
	case sorter.Standard:
		return theme.StandardBadge.Render(label)
	case sorter.Special:
		return theme.SpecialBadge.Render(label)
	case sorter.Rejected:
		return theme.RejectedBadge.Render(label)
	default:
		return theme.Body.Render(label)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
