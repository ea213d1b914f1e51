package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/archetype/internal/card"
	"github.com/abhisek/archetype/internal/quiz"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List all archetypes, rarest first within each dimension",
	RunE: func(cmd *cobra.Command, args []string) error {
		dim, _ := cmd.Flags().GetString("dimension")
		catalog := quiz.Default()

		dims := quiz.AllDimensions()
		if dim != "" {
			d := quiz.Dimension(dim)
			if !d.Valid() {
				return fmt.Errorf("unknown dimension %q (want one of %s)", dim, dimensionList())
			}
			dims = []quiz.Dimension{d}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s  %s  %s  %s  %s\n",
			pad("ID", 15), pad("Name", 10), pad("English", 15),
			pad("Dimension", 10), pad("Rarity", 7), "Rank")
		fmt.Fprintln(out, strings.Repeat("─", 78))

		count := 0
		for _, d := range dims {
			for _, a := range catalog.ArchetypesByDimension(d) {
				rank := quiz.RankFor(a.Rarity)
				fmt.Fprintf(out, "%s  %s  %s  %s  %s  %s\n",
					pad(a.ID, 15), pad(a.Name, 10), pad(a.NameEn, 15),
					pad(string(d), 10), pad(card.FormatRarity(a.Rarity)+"%", 7), rank.Label())
				count++
			}
		}

		fmt.Fprintf(out, "\n%d archetypes\n", count)
		return nil
	},
}

func init() {
	archetypesCmd.Flags().String("dimension", "", "Filter by dimension ("+dimensionList()+")")
}

func dimensionList() string {
	names := make([]string, 0, 4)
	for _, d := range quiz.AllDimensions() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}

// pad right-pads s to width terminal cells, so CJK names line up.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
