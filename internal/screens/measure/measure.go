package measure

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/packsort/internal/router"
	"github.com/abhisek/packsort/internal/screen"
	"github.com/abhisek/packsort/internal/screens/result"
	"github.com/abhisek/packsort/internal/sorter"
	"github.com/abhisek/packsort/internal/ui/components"
	"github.com/abhisek/packsort/internal/ui/layout"
	"github.com/abhisek/packsort/internal/ui/theme"
)

const fieldCount = 4

var fieldLabels = [fieldCount]string{"Width", "Height", "Length", "Mass"}

// MeasureScreen is the package measurement form: three dimensions and a
// mass, classified on submit.
type MeasureScreen struct {
	inputs  [fieldCount]components.MeasureInput
	focused int
	errText string
}

var _ screen.Screen = (*MeasureScreen)(nil)
var _ screen.KeyHintProvider = (*MeasureScreen)(nil)

// New creates an empty measurement form.
func New() *MeasureScreen {
	m := &MeasureScreen{}
	units := [fieldCount]string{"cm", "cm", "cm", "kg"}
	for i := range m.inputs {
		m.inputs[i] = components.NewMeasureInput("0", units[i])
	}
	m.inputs[0].Focus()
	for i := 1; i < fieldCount; i++ {
		m.inputs[i].Blur()
	}
	return m
}

func (m *MeasureScreen) Title() string {
	return "Measure Package"
}

func (m *MeasureScreen) Init() tea.Cmd {
	return m.inputs[0].Focus()
}

func (m *MeasureScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↓", Description: "Next field"},
		{Key: "Enter", Description: "Next / Sort"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MeasureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			m.focus((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			if m.focused < fieldCount-1 {
				m.focus(m.focused + 1)
				return m, nil
			}
			return m, m.submit()
		}
	}

	// Any edit clears a stale error banner.
	var cmd tea.Cmd
	before := m.inputs[m.focused].Value()
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	if m.inputs[m.focused].Value() != before {
		m.errText = ""
		m.inputs[m.focused].ClearSubmit()
	}
	return m, cmd
}

// focus moves input focus to field i.
func (m *MeasureScreen) focus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

// submit parses all fields and classifies the package. Parse failures and
// validation errors render inline; success swaps in the result screen.
func (m *MeasureScreen) submit() tea.Cmd {
	var vals [fieldCount]float64
	for i := range m.inputs {
		v, err := m.inputs[i].FloatValue()
		if err != nil {
			m.errText = "Enter a number for every field"
			m.inputs[i].Submit(false)
			m.focus(i)
			return nil
		}
		vals[i] = v
	}

	res, err := sorter.ClassifyWithDetail(vals[0], vals[1], vals[2], vals[3])
	if err != nil {
		m.errText = err.Error()
		for i := range m.inputs {
			m.inputs[i].Submit(false)
		}
		return nil
	}

	next := result.New(res, "", func() screen.Screen { return New() })
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (m *MeasureScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Measure a package"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"Enter the three dimensions and the mass, then press Enter to sort"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(8)
	var rows []string
	for i := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focused {
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(8).Render(fieldLabels[i])
		}
		rows = append(rows, label+"  "+m.inputs[i].View())
	}
	form := strings.Join(rows, "\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Invalid.Render(m.errText)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
