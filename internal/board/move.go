package board

// MoveOutcome is the result of applying a direction to a board.
type MoveOutcome struct {
	Board   Board
	Score   int  // Sum of values created by merges this move
	Won     bool // A merge produced the winning tile
	Changed bool // Board differs from the input; false means no-op move
}

// slideRow compresses, merges, and pads a single row to the left.
// Each tile participates in at most one merge per move: a tile freshly
// created by a merge never merges again (lastMerge guards the slot).
// Returns the new row, the score gained, and whether a merge produced
// winTile.
func slideRow(row [Size]int, winTile int) (result [Size]int, score int, won bool) {
	writePos := 0
	lastMerge := -1

	for i := 0; i < Size; i++ {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && writePos-1 != lastMerge && result[writePos-1] == row[i] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			if result[writePos-1] == winTile {
				won = true
			}
			lastMerge = writePos - 1
		} else {
			result[writePos] = row[i]
			writePos++
		}
	}

	return result, score, won
}

// reverseRow reverses a row.
func reverseRow(row [Size]int) [Size]int {
	var result [Size]int
	for i := 0; i < Size; i++ {
		result[i] = row[Size-1-i]
	}
	return result
}

// SlideLeft slides all tiles left and merges.
func SlideLeft(b Board, winTile int) MoveOutcome {
	out := MoveOutcome{}

	for y := 0; y < Size; y++ {
		newRow, score, won := slideRow(b[y], winTile)
		out.Board[y] = newRow
		out.Score += score
		out.Won = out.Won || won

		if b[y] != newRow {
			out.Changed = true
		}
	}

	return out
}

// SlideRight slides all tiles right and merges.
// Implemented as reverse, slide left, reverse back.
func SlideRight(b Board, winTile int) MoveOutcome {
	out := MoveOutcome{}

	for y := 0; y < Size; y++ {
		newRow, score, won := slideRow(reverseRow(b[y]), winTile)
		out.Board[y] = reverseRow(newRow)
		out.Score += score
		out.Won = out.Won || won

		if b[y] != out.Board[y] {
			out.Changed = true
		}
	}

	return out
}

// SlideUp slides all tiles up and merges.
// Implemented as transpose, slide left, transpose back.
func SlideUp(b Board, winTile int) MoveOutcome {
	out := SlideLeft(Transpose(b), winTile)
	out.Board = Transpose(out.Board)
	return out
}

// SlideDown slides all tiles down and merges.
// Implemented as transpose, slide right, transpose back.
func SlideDown(b Board, winTile int) MoveOutcome {
	out := SlideRight(Transpose(b), winTile)
	out.Board = Transpose(out.Board)
	return out
}

// Slide applies a move in the given direction and reports the outcome.
// The input board is never modified; callers must not spawn a tile
// unless Changed is true.
func Slide(b Board, dir Direction, winTile int) MoveOutcome {
	switch dir {
	case DirLeft:
		return SlideLeft(b, winTile)
	case DirRight:
		return SlideRight(b, winTile)
	case DirUp:
		return SlideUp(b, winTile)
	case DirDown:
		return SlideDown(b, winTile)
	default:
		return MoveOutcome{Board: b}
	}
}
