// Package tui provides the Bubble Tea terminal client for tilemerge: the
// game view, the variant menu, the leaderboard and the SSH server.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// Model is the Bubble Tea model for one tilemerge session.
// The board is only re-rendered when the engine reports a change.
type Model struct {
	game       *engine.Game
	variant    registry.Variant
	store      *storage.Store
	logger     *log.Logger
	player     string
	keys       KeyMap
	help       help.Model
	width      int
	height     int
	view       string // Cached board render
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a model around a running game.
// store and logger may be nil.
func NewModel(game *engine.Game, variant registry.Variant, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		game:    game,
		variant: variant,
		store:   store,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.refresh()
	return m
}

// WithPlayer tags recorded runs with a player name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// Init implements tea.Model. The game is already started.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input, one action to completion at a time.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.backToMenu = true
		return m, tea.Quit
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.scoreSaved = false
	}

	res := m.game.Handle(action)
	if res.GameOver {
		m.saveScore()
	}
	if res.Changed || res.GameOver {
		m.refresh()
	}
	return m, nil
}

// refresh re-renders the board if the engine has a new snapshot.
func (m *Model) refresh() {
	snap, ok := m.game.TakeSnapshot()
	if !ok {
		return
	}
	parts := []string{
		RenderHUD(snap, m.variant.Title),
		RenderBoard(snap, m.game.Grid()),
	}
	if status := RenderStatus(snap); status != "" {
		parts = append(parts, status)
	}
	m.view = lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// saveScore records the finished run once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.game.Score() == 0 {
		return
	}
	snap := m.game.Snapshot()
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Variant: m.variant.ID,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Seed:    snap.Seed,
		Player:  m.player,
	})
	if err != nil {
		m.logger.Warn("could not save score", "variant", m.variant.ID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(m.view, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Game returns the underlying session.
func (m Model) Game() *engine.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// backToMenu reports whether the player asked to return to the menu
// rather than quit.
func Run(game *engine.Game, variant registry.Variant, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, variant, store, cfg, logger).WithPlayer(player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
