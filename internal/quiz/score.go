package quiz

// Score scores an answer set against the default catalog.
func Score(answers AnswerSet) Result {
	return defaultCatalog.Score(answers)
}

// Score turns a complete answer set into a Result. It never fails: entries
// that reference an unknown question index or option id contribute nothing.
// The same input always yields the same Result.
func (c *Catalog) Score(answers AnswerSet) Result {
	totals := c.Totals(answers)
	archetype := c.Match(PrimaryDimension(totals))

	return Result{
		Archetype: archetype,
		Scores:    totals,
		Chart:     Chart(totals),
		Badges:    c.EarnedBadges(totals, archetype),
		Rank:      RankFor(archetype.Rarity),
	}
}

// Totals sums the contributions of every resolvable answer.
func (c *Catalog) Totals(answers AnswerSet) Scores {
	var totals Scores
	for index, optionID := range answers {
		if index < 0 || index >= len(c.questions) {
			continue
		}
		opt, ok := c.questions[index].Option(optionID)
		if !ok {
			continue
		}
		totals = totals.Add(opt.Scores)
	}
	return totals
}

// PrimaryDimension returns the dimension with the highest total. Ties go to
// the earliest dimension in canonical order. The tie-break carries no meaning;
// it is kept so equal input keeps producing the same archetype.
func PrimaryDimension(s Scores) Dimension {
	dims := AllDimensions()
	best := dims[0]
	for _, d := range dims[1:] {
		if s.Get(d) > s.Get(best) {
			best = d
		}
	}
	return best
}

// Match returns the rarest archetype owning d. When no archetype owns d the
// first archetype in the table is returned.
func (c *Catalog) Match(d Dimension) Archetype {
	if list := c.byDimension[d]; len(list) > 0 {
		return cloneArchetype(list[0])
	}
	return cloneArchetype(c.archetypes[0])
}
