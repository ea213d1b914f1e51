package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: gold on midnight, with ruby accents
var (
	Primary   = lipgloss.Color("#D4AF37") // Gold
	Secondary = lipgloss.Color("#F5DEB3") // Wheat
	Accent    = lipgloss.Color("#E0115F") // Ruby
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#FFFFF0") // Ivory
	TextDim   = lipgloss.Color("#B8A082") // Tan
	BgDark    = lipgloss.Color("#1A1A2E") // Midnight
	BgCard    = lipgloss.Color("#16213E") // Deep blue
	Border    = lipgloss.Color("#4A3F2A") // Muted gold
)

// RankColor returns the lipgloss color for a rank hex code.
func RankColor(hex string) color.Color {
	return lipgloss.Color(hex)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Align(lipgloss.Center).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
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

	Chosen = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)

	Tag = lipgloss.NewStyle().
		Foreground(Secondary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	PartnerTag = lipgloss.NewStyle().
			Foreground(Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Foreground(TextDim).
			Padding(0, 2)
)
