package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/archetype/internal/app"
	"github.com/abhisek/archetype/internal/card"
	"github.com/abhisek/archetype/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads configuration, builds dependencies, and launches the TUI.
// Logs never reach the terminal while the TUI owns it.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := cfg.OpenLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	return app.Run(app.Options{
		Catalog: quiz.Default(),
		Exporter: &card.Exporter{
			Dir:      cfg.ExportDir,
			Scale:    cfg.ExportScale,
			FontPath: cfg.CardFont,
			Logger:   logger,
		},
		Logger: logger,
	})
}
