package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/ui/theme"
)

// ProgressBar shows how far through the quiz the user is: a label such as
// "問題 3 / 10", a bar and the percentage.
type ProgressBar struct {
	Position int
	Total    int
	Width    int
}

// NewProgressBar creates a bar for position out of total, fitted to width.
func NewProgressBar(position, total, width int) ProgressBar {
	return ProgressBar{Position: position, Total: total, Width: width}
}

// Percent returns the completed share rounded to a whole percent.
func (p ProgressBar) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	pos := min(max(p.Position, 0), p.Total)
	return (pos*100 + p.Total/2) / p.Total
}

func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("問題 %d / %d", p.Position, p.Total))
	percent := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%3d%%", p.Percent()))

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(percent)-4, 4)
	filled := barWidth * p.Percent() / 100

	bar := theme.ProgressFilled.Render(strings.Repeat("━", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("─", barWidth-filled))

	return label + "  " + bar + "  " + percent
}
