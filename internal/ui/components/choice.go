package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/ui/theme"
)

// Choice is a single-select list of lettered options. Once an option is
// confirmed the list ignores further input.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int // cursor
	Chosen   int // -1 until confirmed
}

// NewChoice creates a choice list with the cursor on preselect, or on the
// first option when preselect is out of range.
func NewChoice(prompt string, options []string, preselect int) Choice {
	if preselect < 0 || preselect >= len(options) {
		preselect = 0
	}
	return Choice{
		Prompt:   prompt,
		Options:  options,
		Selected: preselect,
		Chosen:   -1,
	}
}

// Confirmed reports whether an option has been chosen.
func (c Choice) Confirmed() bool {
	return c.Chosen >= 0
}

// Update handles keyboard navigation. Enter confirms the cursor; digits
// 1-n and letters a-z confirm the matching option directly.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Confirmed() {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := strings.ToLower(kmsg.String())
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	default:
		if i, ok := c.indexForKey(key); ok {
			c.Selected = i
			c.Chosen = i
		}
	}

	return c, nil
}

func (c Choice) indexForKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	var i int
	switch k := key[0]; {
	case k >= '1' && k <= '9':
		i = int(k - '1')
	case k >= 'a' && k <= 'z' && k != 'j' && k != 'k':
		i = int(k - 'a')
	default:
		return 0, false
	}
	if i >= len(c.Options) {
		return 0, false
	}
	return i, true
}

// View renders the prompt and options wrapped to width.
func (c Choice) View(width int) string {
	s := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c.  %s", prefix, 'A'+i, opt)

		switch {
		case i == c.Chosen:
			s += theme.Chosen.Render(line+"  ●") + "\n"
		case c.Confirmed():
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
