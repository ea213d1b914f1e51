package answers

import (
	"fmt"
	"sort"

	"github.com/abhisek/archetype/internal/quiz"
)

// Complete checks set against the catalog: every question answered and
// every entry resolvable. Returns *ErrIncomplete listing the problems.
func Complete(c *quiz.Catalog, set quiz.AnswerSet) error {
	var e ErrIncomplete

	for i := 0; i < c.NumQuestions(); i++ {
		if _, ok := set[i]; !ok {
			e.Missing = append(e.Missing, i+1)
		}
	}

	indices := make([]int, 0, len(set))
	for i := range set {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		q, ok := c.Question(i)
		if !ok {
			e.Unknown = append(e.Unknown, fmt.Sprintf("%d=%s", i+1, set[i]))
			continue
		}
		if _, ok := q.Option(set[i]); !ok {
			e.Unknown = append(e.Unknown, fmt.Sprintf("%d=%s", i+1, set[i]))
		}
	}

	if len(e.Missing) > 0 || len(e.Unknown) > 0 {
		return &e
	}
	return nil
}
