package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game command. Arrow keys and
// vim keys are accepted alongside the canonical w/a/s/d mapping.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) game.Command {
	switch msg.String() {
	case "ctrl+c", "q", "Q":
		return game.CmdQuit
	case "w", "W", "up", "k":
		return game.CmdUp
	case "s", "S", "down", "j":
		return game.CmdDown
	case "a", "A", "left", "h":
		return game.CmdLeft
	case "d", "D", "right", "l":
		return game.CmdRight
	case "r", "R":
		return game.CmdRestart
	}

	return game.CmdUnrecognized
}
