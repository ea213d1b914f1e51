package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/archetype/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question bank with option letters",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, q := range quiz.Default().Questions() {
			fmt.Fprintf(out, "%2d. %s\n", q.ID, q.Text)
			for _, o := range q.Options {
				fmt.Fprintf(out, "    %s) %s\n", o.ID, o.Text)
			}
			fmt.Fprintln(out)
		}
	},
}
