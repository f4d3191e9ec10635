// Package board implements the 2048 board engine: pure transformations
// over a fixed 4x4 grid of tiles. All functions return new boards and
// never mutate their input, so callers can detect no-op moves by
// comparing values.
package board

// Size is the board dimension.
const Size = 4

// WinningTile is the default winning tile value.
const WinningTile = 2048

// Board represents a 4x4 game board. Zero means empty; every non-zero
// cell holds a power of two.
type Board [Size][Size]int

// Cell is a board position, 0-indexed.
type Cell struct {
	Row, Col int
}

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Transpose returns the matrix transpose. It is its own inverse.
func Transpose(b Board) Board {
	var result Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			result[y][x] = b[x][y]
		}
	}
	return result
}

// EmptyCells returns the positions of all empty cells.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func HasEmptyCell(b Board) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentMerge returns true if any horizontally or vertically
// adjacent pair of cells holds equal non-zero values.
func HasAdjacentMerge(b Board) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			val := b[y][x]
			if val == 0 {
				continue
			}
			if x < Size-1 && b[y][x+1] == val {
				return true
			}
			if y < Size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true when no move remains: every cell is filled
// and no adjacent equal pair exists in any row or column.
func IsGameOver(b Board) bool {
	return !HasEmptyCell(b) && !HasAdjacentMerge(b)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// HasTile returns true if any cell holds exactly the given value.
func HasTile(b Board, value int) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == value {
				return true
			}
		}
	}
	return false
}
