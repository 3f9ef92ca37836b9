package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nickmafra/sym-balls/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	initialBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	readyBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Background(lipgloss.Color("58")).
			Padding(0, 1)

	solvedBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Background(lipgloss.Color("22")).
			Padding(0, 1)
)

// palette colors balls by item id, cycling for long puzzles.
var palette = []lipgloss.Color{"196", "208", "226", "46", "51", "33", "129", "201", "250", "94"}

func ballStyle(item domain.ItemID) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(palette[int(item)%len(palette)]).
		Padding(0, 1)
}

func statusBadge(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusSolved:
		return solvedBadge
	case domain.StatusReady:
		return readyBadge
	default:
		return initialBadge
	}
}
