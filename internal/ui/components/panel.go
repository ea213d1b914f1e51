package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/ui/theme"
)

// ContentWidth returns the inner width shared by stacked panels, so boxes
// line up regardless of terminal width.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel wraps content in a rounded card at the given content width.
func Panel(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// Tags renders labels as bordered chips joined horizontally, wrapping to
// new rows so no row is wider than width.
func Tags(labels []string, style lipgloss.Style, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, l := range labels {
		chip := style.Render(l)
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
