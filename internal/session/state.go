package session

import "errors"

// Phase represents where a session is in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // Landing, no answers yet
	PhaseInProgress              // Serving questions
	PhaseCompleted               // Result computed
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	// ErrNotInProgress is returned when an answer is recorded outside a running quiz.
	ErrNotInProgress = errors.New("session: quiz is not in progress")

	// ErrUnknownOption is returned when the option id does not belong to the current question.
	ErrUnknownOption = errors.New("session: unknown option")
)

// Progress describes the position in the quiz for display.
type Progress struct {
	Position int // 1-based
	Total    int
	Percent  int
}
