package quiz

// seedArchetypes is the reference archetype table. Order matters: the first
// entry is the fallback match.
var seedArchetypes = []Archetype{
	// Power & Control
	{ID: "disciplinarian", Name: "紀律者", NameEn: "Disciplinarian", Theme: ThemePower, Dimension: DimensionDominant, Rarity: 1.0, Description: "追求嚴格的結構化環境", Traits: []string{"組織性", "權威性", "紀律"}, PartnerMatch: []string{"臣服者", "寵物"}},
	{ID: "switch", Name: "切換者", NameEn: "Switch", Theme: ThemePower, Dimension: DimensionDominant, Rarity: 1.9, Description: "流動且適應性強，能在不同角色間變換", Traits: []string{"靈活性", "適應性", "平衡"}, PartnerMatch: []string{"切換者", "冒險家"}},
	{ID: "dominant", Name: "支配者", NameEn: "Dominant", Theme: ThemePower, Dimension: DimensionDominant, Rarity: 2.3, Description: "自信且具指揮性", Traits: []string{"領導力", "自信", "控制"}, PartnerMatch: []string{"臣服者", "順從者"}},
	{ID: "submissive", Name: "臣服者", NameEn: "Submissive", Theme: ThemePower, Dimension: DimensionSubmissive, Rarity: 3.3, Description: "完全順從，將控制權交予對方", Traits: []string{"服從", "信任", " surrender"}, PartnerMatch: []string{"支配者", "紀律者"}},

	// Pain & Sensation
	{ID: "sadist", Name: "施虐者", NameEn: "Sadist", Theme: ThemePain, Dimension: DimensionSadist, Rarity: 0.2, Description: "強烈且不妥協", Traits: []string{"強度", "主導", "徹底"}, PartnerMatch: []string{"受虐者", "束縛者"}},
	{ID: "rigger", Name: "束縛者", NameEn: "Rigger", Theme: ThemePain, Dimension: DimensionSadist, Rarity: 0.3, Description: "享受無助地被束縛的感覺", Traits: []string{"創造性", "控制", "安全感"}, PartnerMatch: []string{"寵物", "臣服者"}},
	{ID: "masochist", Name: "受虐者", NameEn: "Masochist", Theme: ThemePain, Dimension: DimensionMasochist, Rarity: 0.9, Description: "接受並享受痛苦帶來的快感", Traits: []string{"耐受力", "深度", " intensity"}, PartnerMatch: []string{"施虐者", "支配者"}},
	{ID: "primal", Name: "原始者", NameEn: "Primal", Theme: ThemePain, Dimension: DimensionMasochist, Rarity: 2.9, Description: "野性且充滿本能", Traits: []string{"野性", "本能", "激情"}, PartnerMatch: []string{"原始者", "冒險家"}},

	// Emotion & Connection
	{ID: "caretaker", Name: "照顧者", NameEn: "Caretaker", Theme: ThemeEmotion, Dimension: DimensionSubmissive, Rarity: 0.9, Description: "提供安全且可靠的連結", Traits: []string{"關懷", "奉獻", "安全"}, PartnerMatch: []string{"寵物", "臣服者"}},
	{ID: "romantic", Name: "浪漫主義者", NameEn: "Romantic", Theme: ThemeEmotion, Dimension: DimensionSubmissive, Rarity: 1.9, Description: "追求深情且感性的互動", Traits: []string{"感性", "熱情", "浪漫"}, PartnerMatch: []string{"浪漫主義者", "靈性者"}},
	{ID: "pet", Name: "寵物", NameEn: "Pet", Theme: ThemeEmotion, Dimension: DimensionSubmissive, Rarity: 2.7, Description: "渴望被寵愛、被馴服", Traits: []string{"依賴", "可愛", "信任"}, PartnerMatch: []string{"照顧者", "支配者"}},
	{ID: "spiritual", Name: "靈性者", NameEn: "Spiritual", Theme: ThemeEmotion, Dimension: DimensionSubmissive, Rarity: 3.3, Description: "追求靈魂層面的深度連結", Traits: []string{"深度", "靈性", "連接"}, PartnerMatch: []string{"浪漫主義者", "神秘主義者"}},

	// Curiosity & Exploration
	{ID: "rebel", Name: "反叛者", NameEn: "Rebel", Theme: ThemeCuriosity, Dimension: DimensionSadist, Rarity: 0.3, Description: "狂野且反叛，挑戰禁忌", Traits: []string{"自由", "反叛", "大膽"}, PartnerMatch: []string{"反叛者", "冒險家"}},
	{ID: "sapiosexual", Name: "智性戀", NameEn: "Sapiosexual", Theme: ThemeCuriosity, Dimension: DimensionDominant, Rarity: 1.1, Description: "追求冷靜且具分析性的刺激", Traits: []string{"智慧", "理性", "好奇心"}, PartnerMatch: []string{"智性戀", "神秘主義者"}},
	{ID: "adventurer", Name: "冒險家", NameEn: "Adventurer", Theme: ThemeCuriosity, Dimension: DimensionSadist, Rarity: 1.9, Description: "不斷尋求新鮮與冒險的刺激", Traits: []string{"冒險", "新鮮", "勇氣"}, PartnerMatch: []string{"反叛者", "切換者"}},
	{ID: "mystic", Name: "神秘主義者", NameEn: "Mystic", Theme: ThemeCuriosity, Dimension: DimensionMasochist, Rarity: 2.1, Description: "黑暗且神秘，充滿未知吸引力", Traits: []string{"神秘", "深度", "吸引力"}, PartnerMatch: []string{"靈性者", "智性戀"}},
}

// row is shorthand for a contribution row in dominant, sadist, submissive,
// masochist order.
func row(dominant, sadist, submissive, masochist int) Scores {
	return Scores{Dominant: dominant, Sadist: sadist, Submissive: submissive, Masochist: masochist}
}

var seedQuestions = []Question{
	{ID: 1, Text: "在親密關係中，你更傾向於？", Options: []Option{
		{ID: "a", Text: "主導節奏，引導伴侶", Scores: row(3, 1, 0, 0)},
		{ID: "b", Text: "完全放手，讓伴侶帶領", Scores: row(0, 0, 3, 1)},
		{ID: "c", Text: "享受被疼痛或強烈刺激的感覺", Scores: row(0, 0, 1, 3)},
		{ID: "d", Text: "享受控制和支配的快感", Scores: row(1, 3, 0, 0)},
	}},
	{ID: 2, Text: "什麼樣的氛圍最能激發你的慾望？", Options: []Option{
		{ID: "a", Text: "充滿權威和控制力的氛圍", Scores: row(3, 1, 0, 0)},
		{ID: "b", Text: "完全服從和信任的氛圍", Scores: row(0, 0, 3, 1)},
		{ID: "c", Text: "神秘、黑暗、充滿未知", Scores: row(0, 1, 0, 3)},
		{ID: "d", Text: "野性、本能、充滿激情", Scores: row(1, 3, 0, 0)},
	}},
	{ID: 3, Text: "你對「疼痛」的看法是？", Options: []Option{
		{ID: "a", Text: "完全無法接受", Scores: row(1, 0, 2, 0)},
		{ID: "b", Text: "可以接受適度的痛感", Scores: row(1, 1, 1, 1)},
		{ID: "c", Text: "在疼痛中找到快感", Scores: row(0, 0, 0, 3)},
		{ID: "d", Text: "享受施加疼痛的快感", Scores: row(0, 3, 0, 0)},
	}},
	{ID: 4, Text: "在關係中，你需要什麼樣的安全感？", Options: []Option{
		{ID: "a", Text: "完全的掌控權", Scores: row(3, 1, 0, 0)},
		{ID: "b", Text: "被完全保護和照顧", Scores: row(0, 0, 3, 1)},
		{ID: "c", Text: "在混亂中找到平衡", Scores: row(0, 2, 1, 2)},
		{ID: "d", Text: "心靈層面的深度連結", Scores: row(1, 0, 2, 2)},
	}},
	{ID: 5, Text: "你對「角色扮演」的看法？", Options: []Option{
		{ID: "a", Text: "喜歡擔任主導角色", Scores: row(3, 1, 0, 0)},
		{ID: "b", Text: "喜歡臣服和被引導", Scores: row(0, 0, 3, 1)},
		{ID: "c", Text: "可以在不同角色間切換", Scores: row(2, 1, 2, 1)},
		{ID: "d", Text: "喜歡探索新穎和禁忌的角色", Scores: row(0, 3, 0, 1)},
	}},
	{ID: 6, Text: "什麼樣的言語或行為最讓你興奮？", Options: []Option{
		{ID: "a", Text: "命令和指揮", Scores: row(3, 1, 0, 0)},
		{ID: "b", Text: "讚美、寵愛和疼惜", Scores: row(0, 0, 3, 1)},
		{ID: "c", Text: "貶低和羞辱", Scores: row(0, 2, 0, 2)},
		{ID: "d", Text: "控制和束縛", Scores: row(1, 3, 1, 0)},
	}},
	{ID: 7, Text: "在親密時刻，你最在意的是？", Options: []Option{
		{ID: "a", Text: "是否掌握主導權", Scores: row(3, 1, 0, 0)},
		{ID: "b", Text: "是否有情感連結", Scores: row(0, 0, 3, 1)},
		{ID: "c", Text: "是否感受到強烈刺激", Scores: row(0, 1, 0, 3)},
		{ID: "d", Text: "是否突破禁忌", Scores: row(1, 3, 0, 1)},
	}},
	{ID: 8, Text: "你對「束縛」的看法？", Options: []Option{
		{ID: "a", Text: "喜歡束縛他人", Scores: row(1, 3, 0, 0)},
		{ID: "b", Text: "喜歡被束縛", Scores: row(0, 0, 2, 2)},
		{ID: "c", Text: "可以嘗試但不強求", Scores: row(1, 1, 1, 1)},
		{ID: "d", Text: "完全無法接受", Scores: row(1, 0, 1, 0)},
	}},
	{ID: 9, Text: "你的理想親密關係是？", Options: []Option{
		{ID: "a", Text: "充滿權力動態的關係", Scores: row(3, 1, 0, 0)},
		{ID: "b", Text: "溫柔呵護與被照顧的關係", Scores: row(0, 0, 3, 1)},
		{ID: "c", Text: "充滿冒險和新鮮感的關係", Scores: row(1, 2, 1, 1)},
		{ID: "d", Text: "靈魂深度契合的關係", Scores: row(0, 0, 2, 2)},
	}},
	{ID: 10, Text: "面對「禁忌」時，你的反應是？", Options: []Option{
		{ID: "a", Text: "想要挑戰和打破", Scores: row(1, 3, 0, 1)},
		{ID: "b", Text: "感到害怕和抗拒", Scores: row(1, 0, 2, 0)},
		{ID: "c", Text: "想要探索和了解", Scores: row(1, 1, 1, 2)},
		{ID: "d", Text: "遵守但不評論", Scores: row(1, 0, 1, 1)},
	}},
}

var seedBadges = []Badge{
	{ID: BadgeCommunicator, Name: "溝通大師", Icon: "💬", Description: "在測驗中展現高情感連結"},
	{ID: BadgePopular, Name: "最受歡迎", Icon: "⭐", Description: "測驗結果為常見原型"},
	{ID: BadgeNaive, Name: "天真易騙", Icon: "🌸", Description: "展現純真和信任特質"},
	{ID: BadgePlayer, Name: "最大玩家", Icon: "🎭", Description: "展現多面向特質"},
	{ID: BadgeRare, Name: "稀有個性", Icon: "💎", Description: "測驗結果為罕見原型"},
	{ID: BadgeTease, Name: "最大挑逗", Icon: "🔥", Description: "展現高度吸引力特質"},
}

// defaultCatalog is the package-level catalog singleton.
var defaultCatalog *Catalog

func init() {
	c, err := NewCatalog(seedQuestions, seedArchetypes, seedBadges)
	if err != nil {
		panic("quiz: invalid seed catalog: " + err.Error())
	}
	defaultCatalog = c
}
