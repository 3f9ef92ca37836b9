package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nickmafra/sym-balls/internal/adapters/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <level-id>",
	Short: "Play a level in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	l, pc, err := a.levels.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	title := l.Title
	if title == "" {
		title = l.ID
	}
	m, err := tui.New(title, pc, a.hinter)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
	return err
}
