// Package tui provides the Bubble Tea presentation layer and the Wish
// SSH server. The game is turn-based, so the model is purely event
// driven: one key message is one turn, and there is no tick loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Options configures a TUI session.
type Options struct {
	Width  int
	Height int
	Seed   int64 // 0 means derive from the wall clock
}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	session *game.Session
	store   *storage.Store // may be nil; saving is best-effort
	keys    *KeyMapper

	width  int
	height int
	best   int // High score loaded at start, updated as we beat it

	winBanner bool // Win overlay shown until the next key
	quitting  bool
	saved     bool
}

// NewModel creates a model around an existing session.
func NewModel(session *game.Session, store *storage.Store, opts Options) Model {
	m := Model{
		session: session,
		store:   store,
		keys:    NewKeyMapper(),
		width:   opts.Width,
		height:  opts.Height,
	}

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and advances the session one turn per key.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.MapKey(msg)

	// Any key dismisses the win banner; play continues.
	m.winBanner = false

	switch {
	case cmd == game.CmdQuit:
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case cmd == game.CmdRestart:
		m.session.Restart(time.Now().UnixNano())
		m.saved = false
		return m, nil

	case cmd.IsMove():
		dir, _ := cmd.Direction()
		res := m.session.Move(dir)

		if res.JustWon {
			m.winBanner = true
		}
		if m.session.Score() > m.best {
			m.best = m.session.Score()
		}
		if res.GameOver {
			m.saveResult()
		}
		return m, nil
	}

	// Unrecognized key: no state change.
	return m, nil
}

// saveResult records the session outcome once, best-effort.
func (m *Model) saveResult() {
	if m.saved || m.store == nil || m.session.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveResult(storage.Result{
		Score:   m.session.Score(),
		MaxTile: m.session.MaxTile(),
		Moves:   m.session.Moves(),
		Won:     m.session.Won(),
	})
	m.saved = true
}

// View renders the board, HUD, and overlays.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}

	snap := m.session.Snapshot()
	return renderGame(snap, m.best, m.winBanner, m.session.Rules().WinningTile, m.width)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(session *game.Session, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
