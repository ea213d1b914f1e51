package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/answers"
	"github.com/abhisek/archetype/internal/card"
	"github.com/abhisek/archetype/internal/quiz"
	"github.com/abhisek/archetype/internal/router"
	"github.com/abhisek/archetype/internal/screen"
	"github.com/abhisek/archetype/internal/ui/components"
	"github.com/abhisek/archetype/internal/ui/layout"
	"github.com/abhisek/archetype/internal/ui/theme"
)

// Exporter saves result cards. *card.Exporter satisfies it.
type Exporter interface {
	Export(r quiz.Result) (string, error)
	ExportJSON(r quiz.Result, doc card.Document) (string, error)
}

// exportDoneMsg reports the outcome of an export command.
type exportDoneMsg struct {
	format string
	path   string
	err    error
}

// actionBarHeight is the space below the viewport: buttons and status.
const actionBarHeight = 4

// ResultScreen shows the scored result card in a scrollable viewport.
type ResultScreen struct {
	result    quiz.Result
	answers   quiz.AnswerSet
	sessionID string
	exporter  Exporter

	viewport  viewport.Model
	buttons   []components.Button
	focus     int
	exporting bool
	status    string
	statusErr bool

	renderedWidth int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New creates a result screen. exporter may be nil, in which case the
// export buttons report that saving is unavailable.
func New(r quiz.Result, set quiz.AnswerSet, sessionID string, exporter Exporter) *ResultScreen {
	s := &ResultScreen{
		result:    r,
		answers:   set.Clone(),
		sessionID: sessionID,
		exporter:  exporter,
		viewport:  viewport.New(),
	}
	s.buttons = []components.Button{
		components.NewButton("下載結果圖片", "s", true, s.exportPNG),
		components.NewButton("匯出 JSON", "e", false, s.exportJSON),
		components.NewButton("重新測驗", "r", false, restart),
	}
	return s
}

func restart() tea.Cmd {
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "診斷結果"
}

func (s *ResultScreen) Status() string {
	return s.result.Rank.Label()
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "捲動"},
		{Key: "Tab", Description: "切換按鈕"},
		{Key: "s", Description: "下載圖片"},
		{Key: "r", Description: "重新測驗"},
		{Key: "q", Description: "離開"},
	}
}

// Result returns the result shown by the screen.
func (s *ResultScreen) Result() quiz.Result {
	return s.result
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.exporting = false
		if msg.err != nil {
			s.status = fmt.Sprintf("%s 匯出失敗：%v", msg.format, msg.err)
			s.statusErr = true
		} else {
			s.status = "已儲存：" + msg.path
			s.statusErr = false
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			return s, tea.Quit
		case "tab":
			s.setFocus((s.focus + 1) % len(s.buttons))
			return s, nil
		case "shift+tab":
			s.setFocus((s.focus + len(s.buttons) - 1) % len(s.buttons))
			return s, nil
		}

		for i := range s.buttons {
			var cmd tea.Cmd
			s.buttons[i], cmd = s.buttons[i].Update(msg)
			if cmd != nil {
				return s, cmd
			}
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ResultScreen) setFocus(i int) {
	s.focus = i
	for j := range s.buttons {
		s.buttons[j].Active = j == i
	}
}

func (s *ResultScreen) exportPNG() tea.Cmd {
	return s.export("PNG", func(e Exporter) (string, error) {
		return e.Export(s.result)
	})
}

func (s *ResultScreen) exportJSON() tea.Cmd {
	doc := card.NewDocument(s.result).WithAnswers(s.answers).WithSession(s.sessionID)
	return s.export("JSON", func(e Exporter) (string, error) {
		return e.ExportJSON(s.result, doc)
	})
}

// export runs fn off the update loop. A second request while one is
// running is dropped.
func (s *ResultScreen) export(format string, fn func(Exporter) (string, error)) tea.Cmd {
	if s.exporter == nil {
		s.status = "未設定匯出目錄"
		s.statusErr = true
		return nil
	}
	if s.exporting {
		return nil
	}
	s.exporting = true
	s.status = "匯出中…"
	s.statusErr = false

	e := s.exporter
	return func() tea.Msg {
		path, err := fn(e)
		return exportDoneMsg{format: format, path: path, err: err}
	}
}

// resize fits the viewport to the content area, rebuilding the card text
// when the width changes.
func (s *ResultScreen) resize(width, height int) {
	vh := height - actionBarHeight
	if vh < 1 {
		vh = 1
	}
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(vh)

	if width != s.renderedWidth {
		s.viewport.SetContent(s.renderCard(width))
		s.renderedWidth = width
	}
}

func (s *ResultScreen) View(width, height int) string {
	s.resize(width, height)

	statusStyle := theme.Hint
	if s.statusErr {
		statusStyle = lipgloss.NewStyle().Foreground(theme.Error)
	} else if strings.HasPrefix(s.status, "已儲存") {
		statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	actions := lipgloss.JoinVertical(lipgloss.Center,
		"",
		components.ButtonRow(s.buttons),
		statusStyle.Render(s.status),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.viewport.View(),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, actions),
	)
}

// renderCard builds the full card text centered in width.
func (s *ResultScreen) renderCard(width int) string {
	r := s.result
	a := r.Archetype
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	rankColor := theme.RankColor(r.Rank.Color())
	pill := lipgloss.NewStyle().
		Foreground(rankColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(rankColor).
		Padding(0, 1).
		Render(r.Rank.Label())

	var sections []string
	sections = append(sections,
		center(pill),
		center(theme.Title.Render(a.Name)),
		center(theme.Subtitle.Render(a.NameEn)),
		center(theme.Hint.Render(card.RarityLine(r))),
		"",
	)

	inner := cw - 6
	desc := lipgloss.JoinVertical(lipgloss.Left,
		theme.Section.Render("原型描述"),
		theme.Body.Width(inner).Render(a.Description),
		"",
		theme.Section.Render("核心特質"),
		components.Tags(trimmed(a.Traits), theme.Tag, inner),
		"",
		theme.Section.Render("理想伴侶匹配"),
		components.Tags(a.PartnerMatch, theme.PartnerTag, inner),
	)
	sections = append(sections, center(components.Panel(desc, cw)), "")

	labelWidth := 0
	for _, p := range r.Chart {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
	}
	barWidth := max(inner-labelWidth-8, 4)
	bars := []string{theme.Section.Render("心理維度分析"), ""}
	for _, p := range r.Chart {
		label := p.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(p.Label))
		bars = append(bars, fmt.Sprintf("%s %s %s",
			theme.Body.Render(label),
			lipgloss.NewStyle().Foreground(theme.Primary).Render(card.Bar(p.Ratio(), barWidth)),
			theme.Hint.Render(fmt.Sprintf("%2d/%d", p.Value, p.FullMark)),
		))
	}
	sections = append(sections, center(components.Panel(strings.Join(bars, "\n"), cw)), "")

	if len(r.Badges) > 0 {
		lines := []string{theme.Section.Render("🏆 獲得勳章"), ""}
		for _, b := range r.Badges {
			lines = append(lines, fmt.Sprintf("%s %s  %s",
				b.Icon,
				lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(b.Name),
				theme.Hint.Render(b.Description),
			))
		}
		sections = append(sections, center(components.Panel(strings.Join(lines, "\n"), cw)), "")
	}

	sections = append(sections,
		center(lipgloss.NewStyle().Foreground(theme.Secondary).Width(cw).Align(lipgloss.Center).Render(card.ShareText(r))),
	)
	if code := answers.Format(s.answers); code != "" {
		sections = append(sections, center(theme.Hint.Render("答案代碼："+code)))
	}

	return strings.Join(sections, "\n")
}

func trimmed(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}
