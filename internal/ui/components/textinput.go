package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/packsort/internal/ui/theme"
)

// MeasureInput wraps bubbles/textinput for entering a single package
// measurement. Input is restricted to a decimal number: digits and at most
// one decimal point.
type MeasureInput struct {
	Model     textinput.Model
	Unit      string
	submitted bool
	valid     bool
}

// NewMeasureInput creates a new styled measurement input.
func NewMeasureInput(placeholder, unit string) MeasureInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 12

	return MeasureInput{
		Model: ti,
		Unit:  unit,
	}
}

// Init returns the initial command.
func (t MeasureInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t MeasureInput) Update(msg tea.Msg) (MeasureInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			c := key[0]
			digit := c >= '0' && c <= '9'
			dot := c == '.' && !strings.Contains(t.Model.Value(), ".")
			if !digit && !dot {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with its unit suffix and validity marker.
func (t MeasureInput) View() string {
	view := t.Model.View()
	if t.Unit != "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Unit)
	}
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t MeasureInput) Value() string {
	return t.Model.Value()
}

// FloatValue returns the input value as a float64.
func (t MeasureInput) FloatValue() (float64, error) {
	return strconv.ParseFloat(t.Model.Value(), 64)
}

// Focus focuses the input.
func (t *MeasureInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *MeasureInput) Blur() {
	t.Model.Blur()
}

// Submit marks the input as submitted with a validation result.
func (t *MeasureInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// ClearSubmit clears the submitted marker, e.g. when the user edits again.
func (t *MeasureInput) ClearSubmit() {
	t.submitted = false
}
