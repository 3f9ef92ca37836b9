package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/hint"
	"github.com/nickmafra/sym-balls/internal/solver"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg, err := assembler.Assemble(domain.LevelSchema{
		Length:        4,
		InitialItems:  []string{"(0,1)"},
		GeneratingSet: []string{"(0,1)", "(0,1,2,3)"},
		MoveNames:     []string{"swap", "turn"},
	})
	require.NoError(t, err)
	m, err := New("Square", cfg, hint.NewNextMove(solver.NewBFSSolver(0)))
	require.NoError(t, err)
	return m
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestDigitAppliesMove(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "2")
	assert.Equal(t, domain.StatusReady, m.Game().Status())
	assert.Equal(t, []int{1}, m.Game().History())

	m, _ = press(m, "r")
	assert.Equal(t, domain.StatusInitial, m.Game().Status())

	m, _ = press(m, "1")
	assert.Equal(t, domain.StatusSolved, m.Game().Status())
	assert.Contains(t, m.View(), "solved in 1 moves")

	m, _ = press(m, "2")
	assert.Equal(t, 1, m.Game().MoveCount())
	assert.Contains(t, m.message, "already solved")
}

func TestSelectAndEnter(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "right")
	assert.Equal(t, 1, m.selected)
	m, _ = press(m, "right")
	assert.Equal(t, 1, m.selected)
	m, _ = press(m, "enter")
	assert.Equal(t, []int{1}, m.Game().History())

	m, _ = press(m, "9")
	assert.Equal(t, "no move 9", m.message)
}

func TestHintSelectsMove(t *testing.T) {
	m := newTestModel(t)
	m.selected = 1
	m, cmd := press(m, "h")
	require.NotNil(t, cmd)
	assert.True(t, m.hinting)

	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.False(t, m.hinting)
	assert.Equal(t, 0, m.selected)
	assert.Contains(t, m.message, "swap")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewListsMoves(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	assert.Contains(t, v, "Square")
	assert.Contains(t, v, "swap")
	assert.Contains(t, v, "turn")
	assert.Contains(t, v, "initial")
	assert.Contains(t, v, "hint")
}
