package question

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/router"
	"github.com/abhisek/archetype/internal/screen"
	"github.com/abhisek/archetype/internal/session"
	"github.com/abhisek/archetype/internal/ui/components"
	"github.com/abhisek/archetype/internal/ui/layout"
)

// AdvanceDelay is the pause between confirming an option and the next question.
const AdvanceDelay = 300 * time.Millisecond

// QuestionScreen serves the questions of one session, one at a time.
type QuestionScreen struct {
	session  *session.Session
	choice   components.Choice
	pending  string // option id waiting for the advance pause
	onResult func(*session.Session) screen.Screen
	logger   *slog.Logger
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates a quiz screen over sess. onResult builds the screen that
// replaces this one when the last question is answered.
func New(sess *session.Session, onResult func(*session.Session) screen.Screen, logger *slog.Logger) *QuestionScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &QuestionScreen{
		session:  sess,
		onResult: onResult,
		logger:   logger,
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	if s.session.Phase() != session.PhaseInProgress {
		s.session.Start()
		s.logger.Info("quiz started", "session", s.session.ID())
	}
	s.load()
	return nil
}

// load rebuilds the choice list for the current question, with the cursor
// on the option chosen earlier.
func (s *QuestionScreen) load() {
	q, _ := s.session.Current()
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Text
	}
	s.choice = components.NewChoice(q.Text, labels, q.OptionIndex(s.session.Selected()))
	s.pending = ""
}

func (s *QuestionScreen) Title() string {
	return "性原型診斷"
}

func (s *QuestionScreen) Status() string {
	p := s.session.Progress()
	return fmt.Sprintf("%d%%", p.Percent)
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選擇"},
		{Key: "1-4/A-D", Description: "作答"},
		{Key: "Enter", Description: "確認"},
		{Key: "Backspace", Description: "上一題"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s.advance(msg)

	case tea.KeyPressMsg:
		if s.pending != "" {
			return s, nil
		}
		if msg.String() == "backspace" {
			if s.session.Back() {
				s.load()
			}
			return s, nil
		}

		s.choice, _ = s.choice.Update(msg)
		if !s.choice.Confirmed() {
			return s, nil
		}

		q, index := s.session.Current()
		s.pending = q.Options[s.choice.Chosen].ID
		return s, tea.Tick(AdvanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{index: index}
		})
	}

	return s, nil
}

func (s *QuestionScreen) advance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if _, index := s.session.Current(); s.pending == "" || msg.index != index {
		return s, nil
	}

	completed, err := s.session.Answer(s.pending)
	if err != nil {
		s.logger.Warn("answer rejected", "session", s.session.ID(), "error", err)
		s.load()
		return s, nil
	}

	if !completed {
		s.load()
		return s, nil
	}

	r := s.session.Result()
	s.logger.Info("quiz completed",
		"session", s.session.ID(),
		"archetype", r.Archetype.ID,
		"rank", r.Rank,
		"elapsed", s.session.Elapsed().Round(time.Millisecond).String(),
	)
	next := s.onResult(s.session)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuestionScreen) View(width, height int) string {
	p := s.session.Progress()
	cw := components.ContentWidth(width)

	bar := components.NewProgressBar(p.Position, p.Total, cw)

	body := components.Panel(s.choice.View(cw-6), cw)

	content := lipgloss.JoinVertical(lipgloss.Left, bar.View(), "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
