package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/archetype/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "archetype",
	Short: "Terminal archetype quiz",
	Long:  "Archetype — a ten-question terminal quiz that maps your answers to one of sixteen archetypes and renders a shareable result card.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("export-dir", "", "Directory for exported cards (overrides ARCHETYPE_EXPORT_DIR)")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON logs to this file (overrides ARCHETYPE_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(archetypesCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, then applies the persistent flags,
// which take priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("export-dir"); dir != "" {
		cfg.ExportDir = dir
	}
	if file, _ := cmd.Flags().GetString("log-file"); file != "" {
		cfg.LogFile = file
	}
	return cfg, nil
}
