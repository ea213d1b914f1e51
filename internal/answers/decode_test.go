package answers

import (
	"testing"

	"github.com/abhisek/archetype/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Object(t *testing.T) {
	got, err := Decode([]byte(`{"answers": {"1": "a", "2": "c", "10": "d"}}`))
	require.NoError(t, err)
	assert.Equal(t, quiz.AnswerSet{0: "a", 1: "c", 9: "d"}, got)
}

func TestDecode_Array(t *testing.T) {
	got, err := Decode([]byte(`{"answers": ["a", "b", "c"]}`))
	require.NoError(t, err)
	assert.Equal(t, quiz.AnswerSet{0: "a", 1: "b", 2: "c"}, got)
}

func TestDecode_IgnoresOtherMembers(t *testing.T) {
	got, err := Decode([]byte(`{"archetype": {"id": "pet"}, "answers": {"1": "b"}}`))
	require.NoError(t, err)
	assert.Equal(t, quiz.AnswerSet{0: "b"}, got)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{answers`},
		{"missing answers", `{"other": 1}`},
		{"empty object", `{"answers": {}}`},
		{"empty array", `{"answers": []}`},
		{"zero key", `{"answers": {"0": "a"}}`},
		{"non-numeric key", `{"answers": {"one": "a"}}`},
		{"uppercase option", `{"answers": ["A"]}`},
		{"long option", `{"answers": {"1": "ab"}}`},
		{"number option", `{"answers": [1, 2]}`},
		{"answers is string", `{"answers": "abcd"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			require.Error(t, err)

			var invErr *ErrInvalidDocument
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, tt.raw, string(invErr.Content))
		})
	}
}

func TestAnswersSchema_Cached(t *testing.T) {
	first, err := answersSchema()
	require.NoError(t, err)
	second, err := answersSchema()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
