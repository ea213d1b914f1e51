package result

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/archetype/internal/card"
	"github.com/abhisek/archetype/internal/quiz"
	"github.com/abhisek/archetype/internal/router"
)

type fakeExporter struct {
	pngCalls  int
	jsonCalls int
	lastDoc   card.Document
	err       error
}

func (f *fakeExporter) Export(quiz.Result) (string, error) {
	f.pngCalls++
	return "out/card.png", f.err
}

func (f *fakeExporter) ExportJSON(_ quiz.Result, doc card.Document) (string, error) {
	f.jsonCalls++
	f.lastDoc = doc
	return "out/card.json", f.err
}

func allA() quiz.AnswerSet {
	set := quiz.AnswerSet{}
	for i := 0; i < 10; i++ {
		set[i] = "a"
	}
	return set
}

func newTestScreen(exp Exporter) *ResultScreen {
	set := allA()
	return New(quiz.Score(set), set, "sess-1", exp)
}

func key(text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(text)[0], Text: text}
}

func TestView_ShowsCard(t *testing.T) {
	s := newTestScreen(nil)
	out := s.View(100, 200)

	assert.Contains(t, out, "紀律者")
	assert.Contains(t, out, "Disciplinarian")
	assert.Contains(t, out, "全台僅 1% 的人與你相同")
	assert.Contains(t, out, "心理維度分析")
	assert.Contains(t, out, "24/12")
	assert.Contains(t, out, "🏆 獲得勳章")
	assert.Contains(t, out, "答案代碼：aaaaaaaaaa")
	assert.Contains(t, out, "下載結果圖片 [s]")
	assert.Equal(t, "稀有排名", s.Status())
}

func TestExportPNG(t *testing.T) {
	exp := &fakeExporter{}
	s := newTestScreen(exp)

	_, cmd := s.Update(key("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, "匯出中…", s.status)

	// A second press while exporting is dropped.
	_, again := s.Update(key("s"))
	assert.Nil(t, again)

	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	require.True(t, ok, "got %T", msg)
	s.Update(done)

	assert.Equal(t, 1, exp.pngCalls)
	assert.Equal(t, "已儲存：out/card.png", s.status)
	assert.False(t, s.statusErr)
	assert.False(t, s.exporting)
}

func TestExportJSON_CarriesAnswersAndSession(t *testing.T) {
	exp := &fakeExporter{}
	s := newTestScreen(exp)

	_, cmd := s.Update(key("e"))
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Equal(t, 1, exp.jsonCalls)
	assert.Equal(t, "sess-1", exp.lastDoc.SessionID)
	assert.Equal(t, "a", exp.lastDoc.Answers["1"])
	assert.Len(t, exp.lastDoc.Answers, 10)
	assert.Equal(t, "已儲存：out/card.json", s.status)
}

func TestExport_Failure(t *testing.T) {
	exp := &fakeExporter{err: errors.New("disk full")}
	s := newTestScreen(exp)

	_, cmd := s.Update(key("s"))
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.True(t, s.statusErr)
	assert.Contains(t, s.status, "匯出失敗")
	assert.Contains(t, s.status, "disk full")
}

func TestExport_NoExporter(t *testing.T) {
	s := newTestScreen(nil)

	_, cmd := s.Update(key("s"))
	assert.Nil(t, cmd)
	assert.True(t, s.statusErr)
	assert.Equal(t, "未設定匯出目錄", s.status)
}

func TestRestart_PopsToRoot(t *testing.T) {
	s := newTestScreen(nil)

	_, cmd := s.Update(key("r"))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopToRootMsg)
	assert.True(t, ok)
}

func TestTab_CyclesFocus(t *testing.T) {
	s := newTestScreen(nil)
	tab := tea.KeyPressMsg{Code: tea.KeyTab}

	s.Update(tab)
	assert.Equal(t, 1, s.focus)
	assert.True(t, s.buttons[1].Active)
	assert.False(t, s.buttons[0].Active)

	s.Update(tab)
	s.Update(tab)
	assert.Equal(t, 0, s.focus)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 2, s.focus)

	// Enter presses the focused button.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopToRootMsg)
	assert.True(t, ok)
}

func TestQuit(t *testing.T) {
	s := newTestScreen(nil)
	_, cmd := s.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestNew_ClonesAnswers(t *testing.T) {
	set := allA()
	s := New(quiz.Score(set), set, "", nil)
	set[0] = "b"
	assert.Equal(t, "a", s.answers[0])
	assert.Equal(t, "disciplinarian", s.Result().Archetype.ID)
}
