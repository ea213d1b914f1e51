// Package code implements the screen that scores a pasted answer code
// without walking through the questions.
package code

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/archetype/internal/answers"
	"github.com/abhisek/archetype/internal/quiz"
	"github.com/abhisek/archetype/internal/router"
	"github.com/abhisek/archetype/internal/screen"
	"github.com/abhisek/archetype/internal/ui/components"
	"github.com/abhisek/archetype/internal/ui/layout"
	"github.com/abhisek/archetype/internal/ui/theme"
)

// maxCodeLength fits the numbered form of a full answer set ("10=d," per entry).
const maxCodeLength = 64

// CodeScreen reads an answer code and replaces itself with the scored result.
type CodeScreen struct {
	catalog  *quiz.Catalog
	input    components.TextInput
	onResult func(quiz.AnswerSet) screen.Screen
	errMsg   string
}

var _ screen.Screen = (*CodeScreen)(nil)
var _ screen.KeyHintProvider = (*CodeScreen)(nil)

// New creates the code entry screen.
func New(c *quiz.Catalog, onResult func(quiz.AnswerSet) screen.Screen) *CodeScreen {
	return &CodeScreen{
		catalog:  c,
		input:    components.NewTextInput("例如 abcdabcdab", maxCodeLength, allowed),
		onResult: onResult,
	}
}

func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ',' || r == '=' || r == ' ':
		return true
	}
	return false
}

func (s *CodeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CodeScreen) Title() string {
	return "輸入答案代碼"
}

func (s *CodeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "查看結果"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *CodeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		s.errMsg = ""
	}
	return s, cmd
}

func (s *CodeScreen) submit() tea.Cmd {
	set, err := answers.Parse(s.input.Value())
	if err == nil {
		err = answers.Complete(s.catalog, set)
	}
	if err != nil {
		s.input.Submit(false)
		s.errMsg = describe(err)
		return nil
	}

	s.input.Submit(true)
	next := s.onResult(set)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func describe(err error) string {
	if errors.Is(err, answers.ErrEmpty) {
		return "請輸入答案代碼"
	}
	var inc *answers.ErrIncomplete
	if errors.As(err, &inc) {
		return "答案不完整：" + inc.Error()
	}
	return err.Error()
}

func (s *CodeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	n := s.catalog.NumQuestions()

	body := []string{
		theme.Section.Render("輸入答案代碼"),
		"",
		theme.Body.Width(cw - 6).Render(fmt.Sprintf(
			"依序輸入 %d 題的選項字母，或以「題號=選項」逐題列出，例如 1=a,2=c。", n)),
		"",
		s.input.View(),
	}
	if s.errMsg != "" {
		body = append(body, "", lipgloss.NewStyle().Foreground(theme.Error).Width(cw-6).Render(s.errMsg))
	}

	content := components.Panel(strings.Join(body, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
