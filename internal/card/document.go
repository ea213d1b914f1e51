package card

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/abhisek/archetype/internal/quiz"
)

// Document is the JSON form of a result card.
type Document struct {
	SessionID string            `json:"sessionId,omitempty"`
	Archetype quiz.Archetype    `json:"archetype"`
	Scores    quiz.Scores       `json:"scores"`
	RadarData []quiz.ChartPoint `json:"radarData"`
	Badges    []quiz.Badge      `json:"badges"`
	Rank      RankInfo          `json:"rarityRank"`
	ShareText string            `json:"shareText"`
	Answers   map[string]string `json:"answers,omitempty"`
}

// RankInfo carries the rank id with its display label and color.
type RankInfo struct {
	ID    quiz.RarityRank `json:"id"`
	Label string          `json:"label"`
	Color string          `json:"color"`
}

// NewDocument builds the JSON document for r.
func NewDocument(r quiz.Result) Document {
	badges := r.Badges
	if badges == nil {
		badges = []quiz.Badge{}
	}
	return Document{
		Archetype: r.Archetype,
		Scores:    r.Scores,
		RadarData: r.Chart,
		Badges:    badges,
		Rank: RankInfo{
			ID:    r.Rank,
			Label: r.Rank.Label(),
			Color: r.Rank.Color(),
		},
		ShareText: ShareText(r),
	}
}

// WithAnswers attaches the answer set keyed by 1-based question number, so
// the document can be scored again later.
func (d Document) WithAnswers(set quiz.AnswerSet) Document {
	d.Answers = make(map[string]string, len(set))
	for index, opt := range set {
		d.Answers[strconv.Itoa(index+1)] = opt
	}
	return d
}

// WithSession attaches the session id.
func (d Document) WithSession(id string) Document {
	d.SessionID = id
	return d
}

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
