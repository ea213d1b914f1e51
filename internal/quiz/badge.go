package quiz

// Badge ids, in rule evaluation order.
const (
	BadgeCommunicator = "communicator"
	BadgePopular      = "popular"
	BadgeNaive        = "naive"
	BadgePlayer       = "player"
	BadgeRare         = "rare"
	BadgeTease        = "tease"
)

// badgeRule decides whether a badge is earned from the totals and the matched
// archetype.
type badgeRule struct {
	badgeID string
	earned  func(s Scores, a Archetype) bool
}

// badgeRules are independent and non-exclusive. Order is the order badges
// appear on the result.
var badgeRules = []badgeRule{
	{BadgeCommunicator, func(s Scores, _ Archetype) bool { return s.Submissive >= 8 }},
	{BadgePopular, func(_ Scores, a Archetype) bool { return a.Rarity >= 2.5 }},
	{BadgeNaive, func(s Scores, _ Archetype) bool { return s.Submissive >= 6 && s.Masochist >= 6 }},
	{BadgePlayer, func(s Scores, _ Archetype) bool {
		for _, d := range AllDimensions() {
			if s.Get(d) <= 3 {
				return false
			}
		}
		return true
	}},
	{BadgeRare, func(_ Scores, a Archetype) bool { return a.Rarity <= 1.0 }},
	{BadgeTease, func(s Scores, _ Archetype) bool { return s.Dominant >= 6 || s.Sadist >= 6 }},
}

// EarnedBadgeIDs returns the ids of all badges whose rule holds, in rule order.
func EarnedBadgeIDs(s Scores, a Archetype) []string {
	var ids []string
	for _, r := range badgeRules {
		if r.earned(s, a) {
			ids = append(ids, r.badgeID)
		}
	}
	return ids
}

// EarnedBadges resolves the earned badge ids against the catalog. Rules whose
// badge is missing from the catalog earn nothing.
func (c *Catalog) EarnedBadges(s Scores, a Archetype) []Badge {
	ids := EarnedBadgeIDs(s, a)
	badges := make([]Badge, 0, len(ids))
	for _, id := range ids {
		if b, ok := c.badgeByID[id]; ok {
			badges = append(badges, *b)
		}
	}
	return badges
}
