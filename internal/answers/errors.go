package answers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned when the input contains no answers.
var ErrEmpty = errors.New("answers: no answers given")

// ErrInvalidDocument indicates a JSON answers document that does not parse
// or does not conform to the answers schema.
type ErrInvalidDocument struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid answers document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// ErrIncomplete reports questions left unanswered and entries that do not
// resolve against the catalog.
type ErrIncomplete struct {
	Missing []int    // 1-based question numbers
	Unknown []string // "n=x" entries
}

func (e *ErrIncomplete) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		nums := make([]string, len(e.Missing))
		for i, n := range e.Missing {
			nums[i] = fmt.Sprint(n)
		}
		parts = append(parts, "missing questions "+strings.Join(nums, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown entries "+strings.Join(e.Unknown, ", "))
	}
	return "incomplete answers: " + strings.Join(parts, "; ")
}
