package quiz

import "testing"

func TestRankFor(t *testing.T) {
	tests := []struct {
		rarity float64
		want   RarityRank
	}{
		{0.0, RankTop},
		{0.2, RankTop},
		{0.3, RankTop},
		{0.31, RankRare},
		{0.9, RankRare},
		{1.0, RankRare},
		{1.01, RankEvolved},
		{1.9, RankEvolved},
		{2.0, RankEvolved},
		{2.1, RankUnique},
		{3.0, RankUnique},
		{3.3, RankTypical},
		{4.0, RankTypical},
		{4.5, RankCommon},
		{5.0, RankCommon},
		{5.01, RankOrdinary},
		{50, RankOrdinary},
		{100, RankOrdinary},
	}

	for _, tt := range tests {
		got := RankFor(tt.rarity)
		if got != tt.want {
			t.Errorf("RankFor(%.2f) = %q, want %q", tt.rarity, got, tt.want)
		}
	}
}

func TestRankFor_TotalAndMonotonic(t *testing.T) {
	order := make(map[RarityRank]int)
	for i, r := range AllRanks() {
		order[r] = i
	}

	prev := 0
	for step := 0; step <= 10000; step++ {
		rarity := float64(step) / 100
		rank := RankFor(rarity)
		idx, ok := order[rank]
		if !ok {
			t.Fatalf("RankFor(%.2f) = %q, not a known rank", rarity, rank)
		}
		if idx < prev {
			t.Fatalf("RankFor(%.2f) = %q goes back from %q", rarity, rank, AllRanks()[prev])
		}
		prev = idx
	}
}

func TestAllRanks(t *testing.T) {
	ranks := AllRanks()
	if len(ranks) != 7 {
		t.Errorf("expected 7 ranks, got %d", len(ranks))
	}
	if ranks[0] != RankTop || ranks[6] != RankOrdinary {
		t.Errorf("unexpected order: %v", ranks)
	}
}

func TestRarityRank_LabelAndColor(t *testing.T) {
	tests := []struct {
		rank  RarityRank
		label string
		color string
	}{
		{RankTop, "頂級排名", "#FFD700"},
		{RankRare, "稀有排名", "#C0C0C0"},
		{RankEvolved, "進化排名", "#CD7F32"},
		{RankUnique, "獨特排名", "#E0115F"},
		{RankTypical, "典型排名", "#8B008B"},
		{RankCommon, "一般級別", "#4169E1"},
		{RankOrdinary, "普通級別", "#808080"},
	}

	for _, tt := range tests {
		if got := tt.rank.Label(); got != tt.label {
			t.Errorf("RarityRank(%q).Label() = %q, want %q", tt.rank, got, tt.label)
		}
		if got := tt.rank.Color(); got != tt.color {
			t.Errorf("RarityRank(%q).Color() = %q, want %q", tt.rank, got, tt.color)
		}
	}
}

func TestRarityRank_DisplayName(t *testing.T) {
	tests := []struct {
		rank RarityRank
		want string
	}{
		{RankTop, "Top"},
		{RankEvolved, "Evolved"},
		{RankOrdinary, "Ordinary"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.rank.DisplayName(); got != tt.want {
			t.Errorf("RarityRank(%q).DisplayName() = %q, want %q", tt.rank, got, tt.want)
		}
	}
}
