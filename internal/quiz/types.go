package quiz

// Theme groups archetypes for display.
type Theme string

const (
	ThemePower     Theme = "power"
	ThemePain      Theme = "pain"
	ThemeEmotion   Theme = "emotion"
	ThemeCuriosity Theme = "curiosity"
)

// AllThemes returns all themes in display order.
func AllThemes() []Theme {
	return []Theme{ThemePower, ThemePain, ThemeEmotion, ThemeCuriosity}
}

// DisplayName returns a human-readable label for the theme.
func (t Theme) DisplayName() string {
	switch t {
	case ThemePower:
		return "Power & Control"
	case ThemePain:
		return "Pain & Sensation"
	case ThemeEmotion:
		return "Emotion & Connection"
	case ThemeCuriosity:
		return "Curiosity & Exploration"
	default:
		return string(t)
	}
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemePower, ThemePain, ThemeEmotion, ThemeCuriosity:
		return true
	default:
		return false
	}
}

// Archetype is a fixed result profile.
type Archetype struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NameEn       string    `json:"nameEn"`
	Theme        Theme     `json:"theme"`
	Dimension    Dimension `json:"dimension"`
	Rarity       float64   `json:"rarity"` // percentage of population; lower is rarer
	Description  string    `json:"description"`
	Traits       []string  `json:"traits"`
	PartnerMatch []string  `json:"partnerMatch"`
}

// Question is a numbered prompt with ordered options.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// OptionIndex returns the position of the option with the given id, or -1.
func (q Question) OptionIndex(id string) int {
	for i, o := range q.Options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Option is a single answer choice and its per-dimension contribution.
type Option struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Scores Scores `json:"scores"`
}

// Badge is an achievement shown on the result card.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// AnswerSet maps a 0-based question index to the chosen option id.
type AnswerSet map[int]string

// Clone returns a copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Result is the outcome of scoring one complete answer set.
type Result struct {
	Archetype Archetype    `json:"archetype"`
	Scores    Scores       `json:"scores"`
	Chart     []ChartPoint `json:"radarData"`
	Badges    []Badge      `json:"badges"`
	Rank      RarityRank   `json:"rarityRank"`
}

// Primary returns the dimension the matched archetype belongs to.
func (r Result) Primary() Dimension {
	return r.Archetype.Dimension
}

// HasBadge reports whether the badge with the given id was earned.
func (r Result) HasBadge(id string) bool {
	for _, b := range r.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}
