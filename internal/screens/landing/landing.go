package landing

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/router"
	"github.com/abhisek/archetype/internal/screen"
	"github.com/abhisek/archetype/internal/ui/components"
	"github.com/abhisek/archetype/internal/ui/layout"
	"github.com/abhisek/archetype/internal/ui/theme"
)

const pulseInterval = 600 * time.Millisecond

const tagline = "你的性怪癖有多罕見？"

const lead = "僅需 10 個問題，透視你的性心理原型，解鎖你最深層的快感來源"

const intro = "探索你內心深處的慾望地圖，了解你在親密關係中的真實面目。"

var features = []string{"🔒 完全匿名", "⏱ 約 3 分鐘", "📊 專業心理測驗"}

// heartFrames alternate to make the heart pulse.
var heartFrames = []string{"♡", "♥"}

// pulseMsg carries the generation of the tick chain that sent it.
type pulseMsg struct{ gen int }

// LandingScreen is the entry screen: banner, intro copy and the main menu.
type LandingScreen struct {
	menu    components.Menu
	beats   int
	pulsing bool
	gen     int
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)
var _ screen.Resumer = (*LandingScreen)(nil)

// New creates the landing screen. startQuiz and enterCode build the screens
// pushed by the matching menu items.
func New(startQuiz, enterCode func() screen.Screen) *LandingScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := factory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	return &LandingScreen{
		menu: components.NewMenu([]components.MenuItem{
			{Label: "立即開始深度診斷", Action: push(startQuiz)},
			{Label: "輸入答案代碼", Action: push(enterCode)},
			{Label: "離開", Action: func() tea.Cmd { return tea.Quit }},
		}),
	}
}

func (l *LandingScreen) Title() string {
	return ""
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選擇"},
		{Key: "Enter", Description: "確認"},
		{Key: "Ctrl+C", Description: "離開"},
	}
}

func (l *LandingScreen) Init() tea.Cmd {
	l.pulsing = true
	l.gen++
	return pulse(l.gen)
}

// Resume restarts the heart animation after the quiz screens are popped.
func (l *LandingScreen) Resume() tea.Cmd {
	if l.pulsing {
		return nil
	}
	return l.Init()
}

func pulse(gen int) tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg {
		return pulseMsg{gen: gen}
	})
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pulseMsg:
		if msg.gen != l.gen {
			return l, nil
		}
		l.beats++
		return l, pulse(l.gen)

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		l.menu, cmd = l.menu.Update(msg)
		if cmd != nil {
			// The tick chain stops once another screen is on top.
			l.pulsing = false
		}
		return l, cmd
	}

	return l, nil
}

// Heart returns the current animation frame.
func (l *LandingScreen) Heart() string {
	return heartFrames[l.beats%len(heartFrames)]
}

func (l *LandingScreen) View(width, height int) string {
	compact := layout.IsCompact(height)
	var sections []string

	heartColor := theme.Accent
	if l.beats%2 == 1 {
		heartColor = theme.Primary
	}
	sections = append(sections,
		lipgloss.NewStyle().Foreground(heartColor).Bold(true).Render(l.Heart()),
		RenderBanner(width, compact),
		"",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(tagline),
	)

	sections = append(sections, "", theme.Subtitle.Render(lead))
	if !compact {
		sections = append(sections, theme.Hint.Render(intro))
	}

	sections = append(sections, "", l.menu.View())

	hints := make([]string, len(features))
	for i, f := range features {
		hints[i] = theme.Hint.Render(f)
	}
	sections = append(sections, strings.Join(hints, "   "))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
