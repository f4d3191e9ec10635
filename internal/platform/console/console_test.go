package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/game"
)

func runScript(t *testing.T, session *game.Session, input string) string {
	t.Helper()

	var out bytes.Buffer
	c := New(session, nil, strings.NewReader(input), &out, func() int64 { return 99 })
	if err := c.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return out.String()
}

func TestQuitPrintsFarewell(t *testing.T) {
	session := game.NewSession(game.DefaultRules(), 42)
	out := runScript(t, session, "q\n")

	if !strings.Contains(out, "Thanks for playing!") {
		t.Errorf("output missing farewell:\n%s", out)
	}
}

func TestUnrecognizedInputReprompts(t *testing.T) {
	session := game.NewSession(game.DefaultRules(), 42)
	before := session.Board()

	out := runScript(t, session, "x\nq\n")

	if !strings.Contains(out, "Unrecognized input") {
		t.Errorf("output missing unrecognized-input message:\n%s", out)
	}
	if session.Board() != before {
		t.Error("unrecognized input changed game state")
	}
	if got := strings.Count(out, "Move (w/a/s/d)"); got != 2 {
		t.Errorf("expected 2 prompts, got %d", got)
	}
}

func TestMoveAdvancesSession(t *testing.T) {
	session := game.NewSession(game.DefaultRules(), 42)

	// A fresh board has 14 empty cells; at least one of the four
	// directions changes it. Try all four then quit.
	runScript(t, session, "w\na\ns\nd\nq\n")

	if session.Moves() == 0 {
		t.Error("expected at least one board-changing move")
	}
}

func TestRestartResetsSession(t *testing.T) {
	session := game.NewSession(game.DefaultRules(), 42)
	runScript(t, session, "a\nw\nr\nq\n")

	if session.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", session.Score())
	}
	if session.Status() != game.StatusPlaying {
		t.Errorf("status after restart = %v, want playing", session.Status())
	}
}

func TestEOFEndsRun(t *testing.T) {
	session := game.NewSession(game.DefaultRules(), 42)
	out := runScript(t, session, "")

	if !strings.Contains(out, "Thanks for playing!") {
		t.Errorf("EOF should end the session with a farewell:\n%s", out)
	}
}

func TestRenderBoard(t *testing.T) {
	b := board.Board{
		{2, 0, 0, 0},
		{0, 16, 0, 0},
		{0, 0, 128, 0},
		{0, 0, 0, 2048},
	}

	out := RenderBoard(b)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != board.Size {
		t.Fatalf("rendered %d lines, want %d", len(lines), board.Size)
	}
	for _, want := range []string{"2", "16", "128", "2048"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered board missing %q:\n%s", want, out)
		}
	}
	// Fixed-width cells keep every row the same length.
	for i, line := range lines {
		if len(line) != 6*board.Size {
			t.Errorf("line %d length = %d, want %d", i, len(line), 6*board.Size)
		}
	}
}
