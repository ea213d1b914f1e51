package answers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/archetype/internal/quiz"
)

// Format returns the shortest form Parse accepts for set: the compact
// letters when questions 1..n are all answered, otherwise "n=x" entries.
func Format(set quiz.AnswerSet) string {
	indices := make([]int, 0, len(set))
	for i := range set {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	contiguous := true
	for pos, i := range indices {
		if i != pos || len(set[i]) != 1 {
			contiguous = false
			break
		}
	}

	if contiguous {
		var b strings.Builder
		for _, i := range indices {
			b.WriteString(set[i])
		}
		return b.String()
	}

	entries := make([]string, len(indices))
	for pos, i := range indices {
		entries[pos] = strconv.Itoa(i+1) + "=" + set[i]
	}
	return strings.Join(entries, ",")
}
