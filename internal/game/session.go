// Package game wraps the board engine in a playable session: status
// tracking, score, spawning, and command decoding. The session owns
// the board and replaces it wholesale on every move.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/board"
)

// Status is the session state.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Rules holds the tunable parameters of a session.
type Rules struct {
	WinningTile     int     // Tile value that wins the game
	SpawnFourChance float64 // Probability a spawned tile is a 4
}

// DefaultRules returns the classic 2048 rules.
func DefaultRules() Rules {
	return Rules{
		WinningTile:     board.WinningTile,
		SpawnFourChance: board.DefaultFourChance,
	}
}

// MoveResult reports what a single move did to the session.
type MoveResult struct {
	Changed  bool // Board changed; false means the move was a no-op
	Score    int  // Score gained by this move's merges
	JustWon  bool // This move reached the winning tile for the first time
	GameOver bool // No further move is possible
}

// Session is one game of 2048 from fresh board to quit or game over.
// It is single-owner and not safe for concurrent use; each player
// connection gets its own session.
type Session struct {
	rules Rules
	rng   *rand.Rand

	b     board.Board
	score int
	moves int
	won   bool
	lost  bool
}

// NewSession starts a session with a fresh board: all cells empty
// except two spawned starting tiles.
func NewSession(rules Rules, seed int64) *Session {
	s := &Session{rules: rules}
	s.reset(seed)
	return s
}

func (s *Session) reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.b = board.NewGameBoard(s.rng, s.rules.SpawnFourChance)
	s.score = 0
	s.moves = 0
	s.won = false
	s.lost = false
}

// Restart discards the current game and starts over with the given seed.
func (s *Session) Restart(seed int64) {
	s.reset(seed)
}

// Move applies one directional move. If the board is unchanged the
// move is a silent no-op: no spawn, no terminal-state check. Otherwise
// exactly one tile is spawned and the terminal state re-evaluated.
// Moves on a lost session are rejected as no-ops.
func (s *Session) Move(dir board.Direction) MoveResult {
	if s.lost {
		return MoveResult{GameOver: true}
	}

	out := board.Slide(s.b, dir, s.rules.WinningTile)
	if !out.Changed {
		return MoveResult{}
	}

	s.b = out.Board
	s.score += out.Score
	s.moves++

	justWon := false
	if out.Won && !s.won {
		// Winning is advisory: surfaced once, play continues.
		s.won = true
		justWon = true
	}

	s.b, _ = board.SpawnTile(s.b, s.rng, s.rules.SpawnFourChance)

	if board.IsGameOver(s.b) {
		s.lost = true
	}

	return MoveResult{
		Changed:  true,
		Score:    out.Score,
		JustWon:  justWon,
		GameOver: s.lost,
	}
}

// Board returns the current board snapshot.
func (s *Session) Board() board.Board {
	return s.b
}

// Score returns the accumulated merge score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of board-changing moves so far.
func (s *Session) Moves() int {
	return s.moves
}

// MaxTile returns the highest tile currently on the board.
func (s *Session) MaxTile() int {
	return board.MaxTile(s.b)
}

// Won returns true once the winning tile has been reached, even if
// play continued afterwards.
func (s *Session) Won() bool {
	return s.won
}

// Status reports the session state. Lost takes precedence over won:
// a dead board ends the session regardless of earlier wins.
func (s *Session) Status() Status {
	switch {
	case s.lost:
		return StatusLost
	case s.won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// Snapshot captures the session for presentation and determinism tests.
type Snapshot struct {
	Board   board.Board
	Score   int
	Moves   int
	MaxTile int
	Status  Status
	Won     bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:   s.b,
		Score:   s.score,
		Moves:   s.moves,
		MaxTile: board.MaxTile(s.b),
		Status:  s.Status(),
		Won:     s.won,
	}
}
