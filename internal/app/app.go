package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/card"
	"github.com/abhisek/archetype/internal/quiz"
	"github.com/abhisek/archetype/internal/router"
	"github.com/abhisek/archetype/internal/screen"
	"github.com/abhisek/archetype/internal/screens/code"
	"github.com/abhisek/archetype/internal/screens/landing"
	"github.com/abhisek/archetype/internal/screens/question"
	"github.com/abhisek/archetype/internal/screens/result"
	"github.com/abhisek/archetype/internal/session"
	"github.com/abhisek/archetype/internal/ui/layout"
)

// Options holds the dependencies of the interactive quiz.
type Options struct {
	// Catalog defaults to quiz.Default().
	Catalog *quiz.Catalog
	// Exporter saves result cards. Nil disables saving.
	Exporter *card.Exporter
	Logger   *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screens: landing, then either the questions or
// the answer-code entry, both ending on the result card.
func newAppModel(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = quiz.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	var exporter result.Exporter
	if opts.Exporter != nil {
		exporter = opts.Exporter
	}

	showResult := func(r quiz.Result, set quiz.AnswerSet, sessionID string) screen.Screen {
		return result.New(r, set, sessionID, exporter)
	}
	startQuiz := func() screen.Screen {
		sess := session.New(opts.Catalog)
		return question.New(sess, func(s *session.Session) screen.Screen {
			return showResult(*s.Result(), s.Answers(), s.ID())
		}, opts.Logger)
	}
	enterCode := func() screen.Screen {
		return code.New(opts.Catalog, func(set quiz.AnswerSet) screen.Screen {
			r := opts.Catalog.Score(set)
			opts.Logger.Info("answer code scored",
				"archetype", r.Archetype.ID,
				"rank", string(r.Rank),
			)
			return showResult(r, set, "")
		})
	}

	return AppModel{
		router: router.New(landing.New(startQuiz, enterCode)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "返回"},
			{Key: "Ctrl+C", Description: "離開"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選擇"},
		{Key: "Enter", Description: "確認"},
		{Key: "Ctrl+C", Description: "離開"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.logger().Error("program exited with error", "error", err)
		return err
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
