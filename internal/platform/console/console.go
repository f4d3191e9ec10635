// Package console implements the plain-text presentation layer: a
// line-oriented prompt loop over an injected reader and writer. It
// consumes session snapshots and never mutates the board it renders.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const prompt = "Move (w/a/s/d), r restart, q quit: "

// Console runs a game session over plain text I/O.
type Console struct {
	session *game.Session
	store   *storage.Store // may be nil; saving is best-effort
	in      *bufio.Scanner
	out     io.Writer
	seedFn  func() int64

	saved bool
}

// New creates a console frontend for the given session.
// seedFn provides the seed for restarts; nil uses the wall clock.
func New(session *game.Session, store *storage.Store, in io.Reader, out io.Writer, seedFn func() int64) *Console {
	if seedFn == nil {
		seedFn = func() int64 { return time.Now().UnixNano() }
	}
	return &Console{
		session: session,
		store:   store,
		in:      bufio.NewScanner(in),
		out:     out,
		seedFn:  seedFn,
	}
}

// Run drives the session until the player quits or input ends.
// Each turn: render, prompt, read one command, apply.
func (c *Console) Run() error {
	c.render()

	for {
		fmt.Fprint(c.out, prompt)

		if !c.in.Scan() {
			// Input ended; treat like quit.
			c.finish()
			return c.in.Err()
		}

		cmd := game.ParseCommand(c.in.Text())
		switch {
		case cmd == game.CmdQuit:
			c.finish()
			return nil

		case cmd == game.CmdRestart:
			c.session.Restart(c.seedFn())
			c.saved = false
			c.render()

		case cmd.IsMove():
			c.applyMove(cmd)

		default:
			fmt.Fprintln(c.out, "Unrecognized input, use w/a/s/d to move, r to restart, q to quit.")
		}
	}
}

func (c *Console) applyMove(cmd game.Command) {
	if c.session.Status() == game.StatusLost {
		fmt.Fprintln(c.out, "No moves left. Press r to restart or q to quit.")
		return
	}

	dir, _ := cmd.Direction()
	res := c.session.Move(dir)

	if !res.Changed {
		// Valid direction, no effect: re-prompt without spawning.
		return
	}

	c.render()

	if res.JustWon {
		fmt.Fprintf(c.out, "You made the %d tile. You win! Keep going for a higher score.\n", c.session.Rules().WinningTile)
	}
	if res.GameOver {
		fmt.Fprintln(c.out, "GAME OVER - no moves left.")
		fmt.Fprintf(c.out, "Final score: %d (max tile %d)\n", c.session.Score(), c.session.MaxTile())
		c.save()
	}
}

// finish prints the farewell and records the result once.
func (c *Console) finish() {
	c.save()
	fmt.Fprintln(c.out, "Thanks for playing!")
}

// save records the session result, once, best-effort.
func (c *Console) save() {
	if c.saved || c.store == nil || c.session.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	c.store.SaveResult(storage.Result{
		Score:   c.session.Score(),
		MaxTile: c.session.MaxTile(),
		Moves:   c.session.Moves(),
		Won:     c.session.Won(),
	})
	c.saved = true
}

// render prints the board and score line.
func (c *Console) render() {
	snap := c.session.Snapshot()
	fmt.Fprintf(c.out, "\nScore: %d   Max tile: %d\n", snap.Score, snap.MaxTile)
	fmt.Fprint(c.out, RenderBoard(snap.Board))
}

// RenderBoard formats a board as fixed-width text rows. Empty cells
// render as dots so column alignment survives any tile width.
func RenderBoard(b board.Board) string {
	var sb strings.Builder

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			if v := b[y][x]; v == 0 {
				sb.WriteString(fmt.Sprintf("%6s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%6d", v))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
