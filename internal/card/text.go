// Package card renders a quiz result as shareable text, JSON and PNG.
package card

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/archetype/internal/quiz"
)

// BarWidth is the number of cells in a full dimension bar.
const BarWidth = 20

// FormatRarity prints a rarity percentage without trailing zeros (1.0 → "1").
func FormatRarity(rarity float64) string {
	return strconv.FormatFloat(rarity, 'f', -1, 64)
}

// ShareText returns the one-line share message for r.
func ShareText(r quiz.Result) string {
	return fmt.Sprintf("我的性原型是「%s」！在全台僅 %s%% 的人與我相同。你呢？",
		r.Archetype.Name, FormatRarity(r.Archetype.Rarity))
}

// RarityLine returns the "only n% share this" line.
func RarityLine(r quiz.Result) string {
	return fmt.Sprintf("全台僅 %s%% 的人與你相同", FormatRarity(r.Archetype.Rarity))
}

// FileName returns the download file name for r with the given extension.
func FileName(r quiz.Result, ext string) string {
	return fmt.Sprintf("性原型診斷-%s.%s", r.Archetype.Name, strings.TrimPrefix(ext, "."))
}

// Bar renders ratio (0..1) as a bar of width cells.
func Bar(ratio float64, width int) string {
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderText returns r as a plain multi-line card.
func RenderText(r quiz.Result) string {
	a := r.Archetype
	var b strings.Builder

	fmt.Fprintf(&b, "【%s】\n", r.Rank.Label())
	fmt.Fprintf(&b, "%s  %s\n", a.Name, a.NameEn)
	fmt.Fprintf(&b, "%s\n\n", RarityLine(r))

	b.WriteString("原型描述\n")
	fmt.Fprintf(&b, "  %s\n\n", a.Description)
	fmt.Fprintf(&b, "核心特質：%s\n", strings.Join(trimmed(a.Traits), "、"))
	fmt.Fprintf(&b, "理想伴侶匹配：%s\n\n", strings.Join(a.PartnerMatch, "、"))

	b.WriteString("心理維度分析\n")
	for _, p := range r.Chart {
		fmt.Fprintf(&b, "  %s %s %2d/%d\n", p.Label, Bar(p.Ratio(), BarWidth), p.Value, p.FullMark)
	}

	if len(r.Badges) > 0 {
		b.WriteString("\n🏆 獲得勳章\n")
		for _, badge := range r.Badges {
			fmt.Fprintf(&b, "  %s %s  %s\n", badge.Icon, badge.Name, badge.Description)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", ShareText(r))
	return b.String()
}

// trimmed drops surrounding whitespace some trait labels carry.
func trimmed(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
