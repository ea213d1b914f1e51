// Package answers turns command-line and file input into quiz answer sets.
package answers

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/abhisek/archetype/internal/quiz"
)

// Parse reads either the compact form ("abcdabcdab") or the list form
// ("1=a,2=c" or "a,b,c").
func Parse(s string) (quiz.AnswerSet, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ",=") {
		return ParseList(s)
	}
	return ParseCompact(s)
}

// ParseCompact reads one option letter per question, in quiz order.
// Whitespace is ignored and letters are case-insensitive.
func ParseCompact(s string) (quiz.AnswerSet, error) {
	set := make(quiz.AnswerSet)
	index := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		opt, err := optionLetter(string(r))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", index+1, err)
		}
		set[index] = opt
		index++
	}
	if len(set) == 0 {
		return nil, ErrEmpty
	}
	return set, nil
}

// ParseList reads comma-separated entries. Entries are either all "n=x"
// with 1-based question numbers, or all bare letters in quiz order.
func ParseList(s string) (quiz.AnswerSet, error) {
	set := make(quiz.AnswerSet)
	numbered, bare := 0, 0

	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		num, opt, ok := strings.Cut(field, "=")
		if !ok {
			bare++
			o, err := optionLetter(field)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
			set[bare-1] = o
			continue
		}

		numbered++
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("entry %q: question number must be a positive integer", field)
		}
		o, err := optionLetter(strings.TrimSpace(opt))
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", field, err)
		}
		if _, dup := set[n-1]; dup {
			return nil, fmt.Errorf("question %d answered more than once", n)
		}
		set[n-1] = o
	}

	if numbered > 0 && bare > 0 {
		return nil, fmt.Errorf("cannot mix numbered and positional answers")
	}
	if len(set) == 0 {
		return nil, ErrEmpty
	}
	return set, nil
}

func optionLetter(s string) (string, error) {
	s = strings.ToLower(s)
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return "", fmt.Errorf("invalid option %q", s)
	}
	return s, nil
}
