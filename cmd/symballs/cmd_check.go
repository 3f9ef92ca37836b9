package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/infrastructure/storage"
	"github.com/nickmafra/sym-balls/internal/validator"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse and assemble level files, reporting every broken one",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

var errCheckFailed = errors.New("some levels failed the check")

func runCheck(cmd *cobra.Command, args []string) error {
	v, err := validator.New()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed := 0
	for _, name := range args {
		var cfg *domain.PuzzleConfig
		l, err := storage.ReadLevelFile(name)
		if err == nil {
			cfg, err = v.Check(cmd.Context(), l)
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s: %s length=%d moves=%d locked=%t\n",
			name, l.ID, cfg.Length, len(cfg.Generators), cfg.Policy.LockInitialItems)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(args))
	}
	return nil
}
