package game

import (
	"strings"

	"github.com/vovakirdan/tui-2048/internal/board"
)

// Command is one decoded player input. Input sources (console lines,
// TUI key events, SSH sessions) all reduce to this enumeration before
// touching a session.
type Command int

const (
	CmdUnrecognized Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdRestart
	CmdQuit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdRestart:
		return "Restart"
	case CmdQuit:
		return "Quit"
	default:
		return "Unrecognized"
	}
}

// IsMove returns true for the four directional commands.
func (c Command) IsMove() bool {
	switch c {
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		return true
	default:
		return false
	}
}

// Direction returns the board direction for a move command.
// The boolean is false for non-move commands.
func (c Command) Direction() (board.Direction, bool) {
	switch c {
	case CmdUp:
		return board.DirUp, true
	case CmdDown:
		return board.DirDown, true
	case CmdLeft:
		return board.DirLeft, true
	case CmdRight:
		return board.DirRight, true
	default:
		return 0, false
	}
}

// ParseCommand decodes raw console input. The mapping is w/a/s/d for
// the four directions plus r (restart) and q (quit), case-insensitive
// after trimming whitespace. Anything else is CmdUnrecognized and
// leaves game state untouched.
func ParseCommand(input string) Command {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "w":
		return CmdUp
	case "s":
		return CmdDown
	case "a":
		return CmdLeft
	case "d":
		return CmdRight
	case "r":
		return CmdRestart
	case "q":
		return CmdQuit
	default:
		return CmdUnrecognized
	}
}
