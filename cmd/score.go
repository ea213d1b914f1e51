package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/archetype/internal/answers"
	"github.com/abhisek/archetype/internal/card"
	"github.com/abhisek/archetype/internal/quiz"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer set without the interactive quiz",
	Example: `  archetype score --answers abcdabcdab
  archetype score --answers 1=a,2=c,3=b --json
  archetype score --file answers.json --png card.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, _ := cmd.Flags().GetString("answers")
		file, _ := cmd.Flags().GetString("file")
		asJSON, _ := cmd.Flags().GetBool("json")
		pngPath, _ := cmd.Flags().GetString("png")
		strict, _ := cmd.Flags().GetBool("strict")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, closer, err := cfg.OpenLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closer.Close()

		set, err := readAnswers(code, file)
		if err != nil {
			return err
		}

		catalog := quiz.Default()
		if strict {
			if err := answers.Complete(catalog, set); err != nil {
				return err
			}
		}

		r := catalog.Score(set)
		logger.Info("answers scored",
			"archetype", r.Archetype.ID,
			"rank", string(r.Rank),
			"answered", len(set),
		)

		if pngPath != "" {
			if err := writePNG(pngPath, r, card.Options{Scale: cfg.ExportScale, FontPath: cfg.CardFont}); err != nil {
				logger.Error("export failed", "path", pngPath, "error", err)
				return err
			}
			logger.Info("card exported", "path", pngPath)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return card.WriteJSON(out, card.NewDocument(r).WithAnswers(set))
		}
		_, err = io.WriteString(out, card.RenderText(r))
		return err
	},
}

func init() {
	scoreCmd.Flags().String("answers", "", "Answer code: compact letters (abcd...) or numbered list (1=a,2=c)")
	scoreCmd.Flags().String("file", "", "JSON answers file ({\"answers\": {\"1\": \"a\"}} or {\"answers\": [\"a\", ...]})")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	scoreCmd.Flags().String("png", "", "Also write the result card as PNG to this path")
	scoreCmd.Flags().Bool("strict", false, "Fail unless every question has a known answer")
	scoreCmd.MarkFlagsMutuallyExclusive("answers", "file")
	scoreCmd.MarkFlagsOneRequired("answers", "file")
}

// readAnswers parses the inline code or the JSON file, whichever is set.
func readAnswers(code, file string) (quiz.AnswerSet, error) {
	switch {
	case code != "" && file != "":
		return nil, errors.New("use --answers or --file, not both")
	case code != "":
		set, err := answers.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("parse --answers: %w", err)
		}
		return set, nil
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read answers file: %w", err)
		}
		set, err := answers.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return set, nil
	default:
		return nil, errors.New("one of --answers or --file is required")
	}
}

func writePNG(path string, r quiz.Result, opts card.Options) error {
	img, err := card.Render(r, opts)
	if err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := card.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
