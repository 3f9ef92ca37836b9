package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nickmafra/sym-balls/internal/config"
)

var (
	configPath string
	logLevel   string
	levelsDir  string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "symballs",
	Short: "Permutation puzzles of colored balls",
	Long: `symballs serves, plays and checks puzzles where labeled balls are
rearranged by a fixed set of cycle moves until they match a goal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("levels") {
			cfg.Levels.Dir = levelsDir
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger = newLogger(cfg, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&levelsDir, "levels", "", "directory of additional level files")
	rootCmd.AddCommand(serveCmd, playCmd, checkCmd, scrambleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
