package session

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/archetype/internal/quiz"

	"github.com/google/uuid"
)

// Session owns one quiz run: the answer set, the current question and the
// result once the last question is answered. A Session is driven from a
// single goroutine (the Bubble Tea update loop or a CLI command).
type Session struct {
	catalog *quiz.Catalog

	id          string
	phase       Phase
	current     int
	answers     quiz.AnswerSet
	result      *quiz.Result
	startedAt   time.Time
	completedAt time.Time
}

// New creates a session over the catalog. It starts in PhaseNotStarted.
func New(catalog *quiz.Catalog) *Session {
	return &Session{
		catalog: catalog,
		phase:   PhaseNotStarted,
		answers: make(quiz.AnswerSet),
	}
}

// Start begins a fresh run with a new session id and an empty answer set.
func (s *Session) Start() {
	s.id = uuid.New().String()
	s.phase = PhaseInProgress
	s.current = 0
	s.answers = make(quiz.AnswerSet)
	s.result = nil
	s.startedAt = time.Now()
	s.completedAt = time.Time{}
}

// ID returns the session id, empty before Start.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Catalog returns the catalog the session scores against.
func (s *Session) Catalog() *quiz.Catalog { return s.catalog }

// Current returns the current question and its 0-based index.
func (s *Session) Current() (quiz.Question, int) {
	q, _ := s.catalog.Question(s.current)
	return q, s.current
}

// Progress returns the 1-based position, total and rounded percent.
func (s *Session) Progress() Progress {
	total := s.catalog.NumQuestions()
	if total == 0 {
		return Progress{}
	}
	pos := s.current + 1
	return Progress{
		Position: pos,
		Total:    total,
		Percent:  int(math.Round(float64(pos) / float64(total) * 100)),
	}
}

// Selected returns the option already chosen for the current question, or "".
func (s *Session) Selected() string {
	return s.answers[s.current]
}

// Answer records optionID for the current question. Answering the last
// question scores the answer set once and completes the session.
func (s *Session) Answer(optionID string) (completed bool, err error) {
	if s.phase != PhaseInProgress {
		return false, ErrNotInProgress
	}

	q, _ := s.Current()
	if _, ok := q.Option(optionID); !ok {
		return false, fmt.Errorf("%w: %q for question %d", ErrUnknownOption, optionID, q.ID)
	}

	s.answers[s.current] = optionID

	if s.current < s.catalog.NumQuestions()-1 {
		s.current++
		return false, nil
	}

	r := s.catalog.Score(s.answers)
	s.result = &r
	s.phase = PhaseCompleted
	s.completedAt = time.Now()
	return true, nil
}

// Back returns to the previous question, keeping its selection. No-op on the
// first question or outside a running quiz.
func (s *Session) Back() bool {
	if s.phase != PhaseInProgress || s.current == 0 {
		return false
	}
	s.current--
	return true
}

// Result returns the computed result, nil until the session completes.
func (s *Session) Result() *quiz.Result {
	return s.result
}

// Restart drops the answers and result and returns to PhaseNotStarted.
func (s *Session) Restart() {
	s.id = ""
	s.phase = PhaseNotStarted
	s.current = 0
	s.answers = make(quiz.AnswerSet)
	s.result = nil
	s.startedAt = time.Time{}
	s.completedAt = time.Time{}
}

// Answers returns a copy of the answer set.
func (s *Session) Answers() quiz.AnswerSet {
	return s.answers.Clone()
}

// Elapsed returns how long the run took, or has taken so far.
func (s *Session) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	if !s.completedAt.IsZero() {
		return s.completedAt.Sub(s.startedAt)
	}
	return time.Since(s.startedAt)
}
