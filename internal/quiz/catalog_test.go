package quiz

import (
	"strings"
	"testing"
)

func TestDefault_Counts(t *testing.T) {
	c := Default()
	if got := len(c.Questions()); got != 10 {
		t.Errorf("got %d questions, want 10", got)
	}
	for _, q := range c.Questions() {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
	}
	if got := len(c.Archetypes()); got != 16 {
		t.Errorf("got %d archetypes, want 16", got)
	}
	if got := len(c.Badges()); got != 6 {
		t.Errorf("got %d badges, want 6", got)
	}
}

func TestDefault_ArchetypesByDimension(t *testing.T) {
	tests := []struct {
		dim  Dimension
		want []string
	}{
		{DimensionDominant, []string{"disciplinarian", "sapiosexual", "switch", "dominant"}},
		{DimensionSadist, []string{"sadist", "rigger", "rebel", "adventurer"}},
		{DimensionSubmissive, []string{"caretaker", "romantic", "pet", "submissive", "spiritual"}},
		{DimensionMasochist, []string{"masochist", "mystic", "primal"}},
	}

	for _, tt := range tests {
		got := Default().ArchetypesByDimension(tt.dim)
		if len(got) != len(tt.want) {
			t.Errorf("ArchetypesByDimension(%q): got %d, want %d", tt.dim, len(got), len(tt.want))
			continue
		}
		for i, a := range got {
			if a.ID != tt.want[i] {
				t.Errorf("ArchetypesByDimension(%q)[%d] = %q, want %q", tt.dim, i, a.ID, tt.want[i])
			}
		}
	}
}

func TestDefault_QuestionNumbering(t *testing.T) {
	for i, q := range Default().Questions() {
		if q.ID != i+1 {
			t.Errorf("question at index %d has ID %d, want %d", i, q.ID, i+1)
		}
		for j, o := range q.Options {
			if want := string(rune('a' + j)); o.ID != want {
				t.Errorf("question %d option %d has ID %q, want %q", q.ID, j, o.ID, want)
			}
		}
	}
}

func TestArchetype_Lookup(t *testing.T) {
	a, err := Default().Archetype("mystic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.NameEn != "Mystic" || a.Rarity != 2.1 || a.Theme != ThemeCuriosity {
		t.Errorf("unexpected archetype: %+v", a)
	}

	if _, err := Default().Archetype("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent archetype, got nil")
	}
}

func TestBadge_Lookup(t *testing.T) {
	b, ok := Default().Badge(BadgePlayer)
	if !ok {
		t.Fatal("player badge missing")
	}
	if b.Name != "最大玩家" || b.Icon != "🎭" {
		t.Errorf("unexpected badge: %+v", b)
	}
	if _, ok := Default().Badge("nope"); ok {
		t.Error("expected missing badge")
	}
}

func TestQuestion_OutOfRange(t *testing.T) {
	if _, ok := Default().Question(-1); ok {
		t.Error("expected no question at -1")
	}
	if _, ok := Default().Question(10); ok {
		t.Error("expected no question at 10")
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Default()

	as := c.Archetypes()
	as[0].Traits[0] = "mutated"
	as[0].Rarity = 99

	qs := c.Questions()
	qs[0].Options[0].Scores.Dominant = 100

	q, _ := c.Question(0)
	q.Options[0].ID = "zz"

	a, _ := c.Archetype("disciplinarian")
	if a.Traits[0] != "組織性" || a.Rarity != 1.0 {
		t.Errorf("catalog archetype was mutated: %+v", a)
	}
	again, _ := c.Question(0)
	if again.Options[0].Scores.Dominant != 3 || again.Options[0].ID != "a" {
		t.Errorf("catalog question was mutated: %+v", again.Options[0])
	}
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	questions := []Question{{ID: 1, Text: "q", Options: []Option{{ID: "a", Scores: Scores{Dominant: 1}}}}}
	archetypes := []Archetype{{ID: "x", Theme: ThemePower, Dimension: DimensionDominant, Rarity: 1, Traits: []string{"t"}}}

	c, err := NewCatalog(questions, archetypes, nil)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	questions[0].Options[0].Scores.Dominant = 50
	archetypes[0].Traits[0] = "changed"

	if got := c.Score(AnswerSet{0: "a"}).Scores.Dominant; got != 1 {
		t.Errorf("Dominant = %d, want 1", got)
	}
	if a, _ := c.Archetype("x"); a.Traits[0] != "t" {
		t.Errorf("Traits = %v, want [t]", a.Traits)
	}
}

func TestValidateCatalog_Valid(t *testing.T) {
	if err := validateCatalog(seedQuestions, seedArchetypes, seedBadges); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestValidateCatalog_Problems(t *testing.T) {
	questions := []Question{
		{ID: 1, Text: "dup", Options: []Option{{ID: "a"}, {ID: "a"}}},
		{ID: 2, Text: "empty"},
		{ID: 3, Text: "negative", Options: []Option{{ID: "a", Scores: Scores{Sadist: -1}}}},
	}
	archetypes := []Archetype{
		{ID: "x", Theme: ThemePower, Dimension: DimensionDominant, Rarity: 1},
		{ID: "x", Theme: "mood", Dimension: "curious", Rarity: 120},
	}
	badges := []Badge{{ID: "b"}, {ID: "b"}}

	err := validateCatalog(questions, archetypes, badges)
	if err == nil {
		t.Fatal("expected validation error")
	}

	for _, want := range []string{
		`question 1: duplicate option ID "a"`,
		"question 2 has no options",
		"negative sadist contribution",
		`duplicate archetype ID: "x"`,
		`unknown theme "mood"`,
		`unknown dimension "curious"`,
		"outside [0, 100]",
		`duplicate badge ID: "b"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestNewCatalog_RejectsEmpty(t *testing.T) {
	if _, err := NewCatalog(nil, nil, nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
