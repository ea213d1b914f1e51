package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled items are shown dimmed and
// cannot be selected.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a numbered vertical menu. The cursor wraps around and skips
// disabled items; digits 1-9 activate the matching item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

// move steps the cursor by delta until it lands on an enabled item.
// The cursor stays put when no other item is enabled.
func (m *Menu) move(delta int) {
	n := len(m.Items)
	for step, i := 1, m.Selected; step <= n; step++ {
		i = ((i+delta)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		return m, m.activate()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Items) && !m.Items[i].Disabled {
				m.Selected = i
				return m, m.activate()
			}
		}
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
		return item.Action()
	}
	return nil
}

func (m Menu) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		switch {
		case i == m.Selected:
			lines[i] = theme.Selected.Render("▸ " + label)
		case item.Disabled:
			lines[i] = dim.Render("  " + label)
		default:
			lines[i] = theme.Unselected.Render("  " + label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
