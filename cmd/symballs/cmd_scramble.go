package main

import (
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nickmafra/sym-balls/internal/domain"
)

var (
	scrambleSeed       int64
	scrambleDifficulty string
	scrambleSave       bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble <base-level-id>",
	Short: "Generate a level by scrambling a base level and print it as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runScramble,
}

func init() {
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "random seed (default: current time)")
	scrambleCmd.Flags().StringVar(&scrambleDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "store the result in the configured level store")
}

func runScramble(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l, st, err := a.service.Scramble(cmd.Context(), args[0], seed, domain.ParseDifficulty(scrambleDifficulty), scrambleSave)
	if err != nil {
		return err
	}
	logger.Debug("scrambled", "level", l.ID, "seed", seed, "nodes", st.Nodes, "dur", st.Duration)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}
	return enc.Close()
}
