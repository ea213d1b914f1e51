package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/ui/theme"
)

// Brand is the application name shown in the header.
const Brand = "♥ 性原型診斷"

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactContentHeight is the content height below which screens drop
	// decorative sections.
	CompactContentHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompact reports whether a content area of the given height should use
// the condensed layout.
func IsCompact(contentHeight int) bool {
	return contentHeight < CompactContentHeight
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a larger terminal, centered in the window.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("終端機視窗太小！"),
		"",
		theme.Body.Render(fmt.Sprintf("請調整至至少 %d x %d", MinWidth, MinHeight)),
		theme.Hint.Render(fmt.Sprintf("目前：%d x %d", width, height)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderHeader draws the brand on the left, the screen title in the middle
// and status on the right, inside a rounded bar spanning width.
func RenderHeader(title, status string, width int) string {
	inner := max(width-theme.Header.GetHorizontalFrameSize(), 0)

	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(Brand)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(status)
	middle := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	// Centre the title over the whole bar, then lay brand and status over
	// its margins.
	side := max((inner-lipgloss.Width(middle))/2, lipgloss.Width(brand)+1)
	line := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand) + middle
	rest := max(inner-lipgloss.Width(line), lipgloss.Width(right))
	line += lipgloss.PlaceHorizontal(rest, lipgloss.Right, right)

	return theme.Header.Width(width).Render(line)
}

// RenderFooter lists key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := desc.Render("  ·  ")

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return theme.Footer.Width(width).Render(strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, giving content whatever
// height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
