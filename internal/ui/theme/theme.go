package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — depot floor: high-visibility accents on dark steel
var (
	Primary   = lipgloss.Color("#F59E0B") // Safety Amber
	Secondary = lipgloss.Color("#38BDF8") // Sky Blue
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#FACC15") // Yellow
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#111827") // Near Black
	BgCard    = lipgloss.Color("#1F2937") // Dark Steel
	Border    = lipgloss.Color("#374151") // Steel
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Handling category badges
var (
	StandardBadge = lipgloss.NewStyle().
			Background(Success).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	SpecialBadge = lipgloss.NewStyle().
			Background(Warning).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	RejectedBadge = lipgloss.NewStyle().
			Background(Error).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)
)
