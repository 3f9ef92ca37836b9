// Package tui plays one level in the terminal using bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/game"
	"github.com/nickmafra/sym-balls/internal/ports"
)

// HintTimeout bounds a hint search started from the keyboard.
const HintTimeout = 2 * time.Second

type hintMsg struct {
	hint domain.Hint
	ok   bool
	err  error
}

// Model is a bubbletea model over a single Game.
type Model struct {
	title    string
	cfg      *domain.PuzzleConfig
	game     *game.Game
	hinter   ports.Hinter
	selected int
	message  string
	hinting  bool
	keys     keyMap
	help     help.Model
}

// New starts a game for cfg. hinter may be nil, which disables hints.
func New(title string, cfg *domain.PuzzleConfig, hinter ports.Hinter) (Model, error) {
	g, err := game.New(cfg)
	if err != nil {
		return Model{}, err
	}
	h := help.New()
	h.Styles.ShortDesc = helpStyle
	return Model{title: title, cfg: cfg, game: g, hinter: hinter, keys: defaultKeys(), help: h}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case hintMsg:
		m.hinting = false
		switch {
		case msg.err != nil:
			m.message = "no hint: " + msg.err.Error()
		case !msg.ok:
			m.message = "already on the goal"
		default:
			m.selected = msg.hint.MoveIndex
			m.message = msg.hint.Message
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.game.Reset()
			m.message = "reset"
		case key.Matches(msg, m.keys.Hint):
			if m.hinter == nil || m.hinting {
				return m, nil
			}
			m.hinting = true
			m.message = "thinking…"
			return m, m.hintCmd()
		case key.Matches(msg, m.keys.Prev):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Next):
			if m.selected < len(m.game.Moves())-1 {
				m.selected++
			}
		case key.Matches(msg, m.keys.Apply):
			m.apply(m.selected)
		case key.Matches(msg, m.keys.Direct):
			n, _ := strconv.Atoi(msg.String())
			m.apply(n - 1)
		}
	}
	return m, nil
}

func (m *Model) apply(index int) {
	err := m.game.ApplyMove(index)
	var ime *game.InvalidMoveError
	switch {
	case err == nil:
		m.selected = index
		if m.game.Status() == domain.StatusSolved {
			m.message = fmt.Sprintf("solved in %d moves, press r to play again", m.game.MoveCount())
		} else {
			m.message = ""
		}
	case errors.Is(err, game.ErrSolved):
		m.message = "already solved, press r to play again"
	case errors.As(err, &ime):
		m.message = fmt.Sprintf("no move %d", index+1)
	default:
		m.message = err.Error()
	}
}

func (m Model) hintCmd() tea.Cmd {
	cfg := &domain.PuzzleConfig{
		Length:     m.cfg.Length,
		Initial:    m.cfg.Initial,
		Goal:       m.cfg.Goal,
		Generators: m.game.Moves(),
		Policy:     m.game.Policy(),
	}
	from := m.game.Snapshot()
	hinter := m.hinter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), HintTimeout)
		defer cancel()
		h, ok, err := hinter.Hint(ctx, cfg, from)
		return hintMsg{hint: h, ok: ok, err: err}
	}
}

// Game exposes the underlying state, mainly for tests.
func (m Model) Game() *game.Game { return m.game }

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(statusBadge(m.game.Status()).Render(m.game.Status().String()))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("now  "))
	b.WriteString(renderRow(m.game.Snapshot()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("goal "))
	b.WriteString(renderRow(m.game.Goal()))
	b.WriteString("\n\n")

	for i, mv := range m.game.Moves() {
		line := fmt.Sprintf("%d  %s", i+1, mv.Name)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(moveStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(m.game.Moves()) == 0 {
		b.WriteString(moveStyle.Render("  no moves"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statsStyle.Render(fmt.Sprintf("moves: %d", m.game.MoveCount())))
	if m.message != "" {
		b.WriteString("  ")
		b.WriteString(messageStyle.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func renderRow(a domain.Arrangement) string {
	cells := make([]string, len(a))
	for i, item := range a {
		cells[i] = ballStyle(item).Render(strconv.Itoa(int(item)))
	}
	return strings.Join(cells, " ")
}
