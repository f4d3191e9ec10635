package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/game"
)

const tileWidth = 7

// tileColors maps tile values to 256-color backgrounds, roughly the
// classic 2048 palette from light to saturated.
var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("252"),
	4:    lipgloss.Color("223"),
	8:    lipgloss.Color("215"),
	16:   lipgloss.Color("209"),
	32:   lipgloss.Color("203"),
	64:   lipgloss.Color("196"),
	128:  lipgloss.Color("227"),
	256:  lipgloss.Color("221"),
	512:  lipgloss.Color("220"),
	1024: lipgloss.Color("214"),
	2048: lipgloss.Color("208"),
}

var (
	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a tile value. Values beyond 2048
// reuse the hottest color.
func tileStyle(value int) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		color = tileColors[2048]
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color("235")).
		Background(color)
}

// renderBoard renders the grid as a bordered block.
func renderBoard(b board.Board) string {
	rows := make([]string, 0, board.Size)

	for y := 0; y < board.Size; y++ {
		cells := make([]string, 0, board.Size)
		for x := 0; x < board.Size; x++ {
			v := b[y][x]
			if v == 0 {
				cells = append(cells, emptyTileStyle.Render("."))
			} else {
				cells = append(cells, tileStyle(v).Render(fmt.Sprintf("%d", v)))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderGame composes the full frame: title, HUD, board, overlays, help.
func renderGame(snap game.Snapshot, best int, winBanner bool, winningTile, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("Score %d   Best %d   Max tile %d", snap.Score, best, snap.MaxTile)))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(snap.Board))
	b.WriteString("\n")

	switch {
	case snap.Status == game.StatusLost:
		b.WriteString(overlayStyle.Render(fmt.Sprintf("GAME OVER\nFinal score %d", snap.Score)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r restart | q quit"))
	case winBanner:
		b.WriteString(overlayStyle.Render(fmt.Sprintf("You made %d. You win!\nKeep going for a higher score.", winningTile)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("any key to continue"))
	default:
		b.WriteString(helpStyle.Render("arrows/wasd move | r restart | q quit"))
	}

	out := b.String()
	if width > 0 {
		out = lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
	}
	return out
}
