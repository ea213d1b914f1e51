package quiz

import (
	"cmp"
	"fmt"
	"slices"
)

// Catalog holds the immutable question, archetype and badge tables with
// precomputed indices. It is never modified after NewCatalog returns, so it
// is safe for concurrent reads.
type Catalog struct {
	questions     []Question
	archetypes    []Archetype
	badges        []Badge
	archetypeByID map[string]*Archetype
	badgeByID     map[string]*Badge
	byDimension   map[Dimension][]Archetype
}

// NewCatalog validates the tables and builds a Catalog. The slices are
// deep-copied, so later changes by the caller have no effect.
func NewCatalog(questions []Question, archetypes []Archetype, badges []Badge) (*Catalog, error) {
	if err := validateCatalog(questions, archetypes, badges); err != nil {
		return nil, err
	}

	c := &Catalog{
		questions:     cloneQuestions(questions),
		archetypes:    cloneArchetypes(archetypes),
		badges:        slices.Clone(badges),
		archetypeByID: make(map[string]*Archetype, len(archetypes)),
		badgeByID:     make(map[string]*Badge, len(badges)),
		byDimension:   make(map[Dimension][]Archetype),
	}

	for i := range c.archetypes {
		a := &c.archetypes[i]
		c.archetypeByID[a.ID] = a
		c.byDimension[a.Dimension] = append(c.byDimension[a.Dimension], *a)
	}
	for i := range c.badges {
		c.badgeByID[c.badges[i].ID] = &c.badges[i]
	}

	// Rarest first; equal rarities keep table order.
	for d, list := range c.byDimension {
		slices.SortStableFunc(list, func(a, b Archetype) int {
			return cmp.Compare(a.Rarity, b.Rarity)
		})
		c.byDimension[d] = list
	}

	return c, nil
}

// Default returns the process-wide catalog built from the reference data.
func Default() *Catalog {
	return defaultCatalog
}

// Questions returns all questions in quiz order.
func (c *Catalog) Questions() []Question {
	return cloneQuestions(c.questions)
}

// NumQuestions returns the number of questions in the quiz.
func (c *Catalog) NumQuestions() int {
	return len(c.questions)
}

// Question returns the question at the 0-based index.
func (c *Catalog) Question(index int) (Question, bool) {
	if index < 0 || index >= len(c.questions) {
		return Question{}, false
	}
	return cloneQuestion(c.questions[index]), true
}

// Archetypes returns all archetypes in table order.
func (c *Catalog) Archetypes() []Archetype {
	return cloneArchetypes(c.archetypes)
}

// Archetype returns the archetype with the given id, or error if not found.
func (c *Catalog) Archetype(id string) (Archetype, error) {
	a, ok := c.archetypeByID[id]
	if !ok {
		return Archetype{}, fmt.Errorf("archetype not found: %q", id)
	}
	return cloneArchetype(*a), nil
}

// ArchetypesByDimension returns the archetypes owning d, rarest first.
func (c *Catalog) ArchetypesByDimension(d Dimension) []Archetype {
	return cloneArchetypes(c.byDimension[d])
}

// Badges returns all badges in rule order.
func (c *Catalog) Badges() []Badge {
	return slices.Clone(c.badges)
}

// Badge returns the badge with the given id.
func (c *Catalog) Badge(id string) (Badge, bool) {
	b, ok := c.badgeByID[id]
	if !ok {
		return Badge{}, false
	}
	return *b, true
}

func cloneQuestion(q Question) Question {
	q.Options = slices.Clone(q.Options)
	return q
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = cloneQuestion(q)
	}
	return out
}

func cloneArchetype(a Archetype) Archetype {
	a.Traits = slices.Clone(a.Traits)
	a.PartnerMatch = slices.Clone(a.PartnerMatch)
	return a
}

func cloneArchetypes(as []Archetype) []Archetype {
	if as == nil {
		return nil
	}
	out := make([]Archetype, len(as))
	for i, a := range as {
		out[i] = cloneArchetype(a)
	}
	return out
}
