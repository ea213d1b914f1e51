package quiz

// RarityRank buckets an archetype's rarity percentage.
type RarityRank string

const (
	RankTop      RarityRank = "top"
	RankRare     RarityRank = "rare"
	RankEvolved  RarityRank = "evolved"
	RankUnique   RarityRank = "unique"
	RankTypical  RarityRank = "typical"
	RankCommon   RarityRank = "common"
	RankOrdinary RarityRank = "ordinary"
)

// AllRanks returns all ranks from rarest to most common.
func AllRanks() []RarityRank {
	return []RarityRank{RankTop, RankRare, RankEvolved, RankUnique, RankTypical, RankCommon, RankOrdinary}
}

// RankFor returns the rank for a rarity percentage. Buckets are inclusive of
// their upper bound and the first match wins.
func RankFor(rarity float64) RarityRank {
	switch {
	case rarity <= 0.3:
		return RankTop
	case rarity <= 1.0:
		return RankRare
	case rarity <= 2.0:
		return RankEvolved
	case rarity <= 3.0:
		return RankUnique
	case rarity <= 4.0:
		return RankTypical
	case rarity <= 5.0:
		return RankCommon
	default:
		return RankOrdinary
	}
}

// Label returns the localized label shown on the result card.
func (r RarityRank) Label() string {
	switch r {
	case RankTop:
		return "頂級排名"
	case RankRare:
		return "稀有排名"
	case RankEvolved:
		return "進化排名"
	case RankUnique:
		return "獨特排名"
	case RankTypical:
		return "典型排名"
	case RankCommon:
		return "一般級別"
	case RankOrdinary:
		return "普通級別"
	default:
		return string(r)
	}
}

// DisplayName returns an ASCII label for the rank.
func (r RarityRank) DisplayName() string {
	switch r {
	case RankTop:
		return "Top"
	case RankRare:
		return "Rare"
	case RankEvolved:
		return "Evolved"
	case RankUnique:
		return "Unique"
	case RankTypical:
		return "Typical"
	case RankCommon:
		return "Common"
	case RankOrdinary:
		return "Ordinary"
	default:
		return string(r)
	}
}

// Color returns the rank's hex color.
func (r RarityRank) Color() string {
	switch r {
	case RankTop:
		return "#FFD700"
	case RankRare:
		return "#C0C0C0"
	case RankEvolved:
		return "#CD7F32"
	case RankUnique:
		return "#E0115F"
	case RankTypical:
		return "#8B008B"
	case RankCommon:
		return "#4169E1"
	default:
		return "#808080"
	}
}
