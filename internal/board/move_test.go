package board

import "testing"

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge across gap then pass-through",
			input:    [4]int{2, 0, 2, 2},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, _ := slideRow(tt.input, WinningTile)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left should become [8, 8, 0, 0], not [16, 0, 0, 0]
	row := [4]int{4, 4, 4, 4}
	result, score, _ := slideRow(row, WinningTile)

	expected := [4]int{8, 8, 0, 0}
	if result != expected {
		t.Errorf("slideRow(%v) = %v, want %v (one merge per tile per move)", row, result, expected)
	}

	if score != 16 {
		t.Errorf("slideRow(%v) score = %d, want 16", row, score)
	}
}

func TestSlideRowWinFlag(t *testing.T) {
	row := [4]int{1024, 1024, 0, 0}

	result, score, won := slideRow(row, WinningTile)
	if !won {
		t.Error("merging to 2048 should set the won flag")
	}
	if result != [4]int{2048, 0, 0, 0} {
		t.Errorf("slideRow(%v) = %v, want [2048 0 0 0]", row, result)
	}
	if score != 2048 {
		t.Errorf("slideRow(%v) score = %d, want 2048", row, score)
	}

	// A small merge must not win, whatever the threshold typo history says.
	_, _, won = slideRow([4]int{2, 2, 4, 0}, WinningTile)
	if won {
		t.Error("merging to 4 should not set the won flag")
	}
}

func TestSlideLeft(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	out := SlideLeft(b, WinningTile)

	if out.Board != expected {
		t.Errorf("SlideLeft: got\n%v\nwant\n%v", out.Board, expected)
	}
	if !out.Changed {
		t.Error("SlideLeft should indicate board changed")
	}
	if out.Score != 20 {
		t.Errorf("SlideLeft score = %d, want 20", out.Score)
	}
}

func TestSlideRight(t *testing.T) {
	b := Board{
		{0, 0, 2, 2},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	out := SlideRight(b, WinningTile)

	if out.Board != expected {
		t.Errorf("SlideRight: got\n%v\nwant\n%v", out.Board, expected)
	}
	if !out.Changed {
		t.Error("SlideRight should indicate board changed")
	}
}

func TestSlideUp(t *testing.T) {
	b := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	out := SlideUp(b, WinningTile)

	if out.Board != expected {
		t.Errorf("SlideUp: got\n%v\nwant\n%v", out.Board, expected)
	}
	if !out.Changed {
		t.Error("SlideUp should indicate board changed")
	}
}

func TestSlideDown(t *testing.T) {
	b := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	out := SlideDown(b, WinningTile)

	if out.Board != expected {
		t.Errorf("SlideDown: got\n%v\nwant\n%v", out.Board, expected)
	}
	if !out.Changed {
		t.Error("SlideDown should indicate board changed")
	}
}

func TestNoChangeIsNoOp(t *testing.T) {
	b := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	out := SlideLeft(b, WinningTile)

	if out.Changed {
		t.Error("SlideLeft should not change already left-aligned tiles")
	}
	if out.Board != b {
		t.Errorf("no-op move must return an identical board, got\n%v", out.Board)
	}
}

func TestSlideIdempotentWithoutSpawn(t *testing.T) {
	// Distinct values everywhere: the first slide only compacts, so the
	// second slide in the same direction must be a no-op.
	b := Board{
		{0, 2, 0, 4},
		{8, 0, 16, 0},
		{0, 32, 64, 0},
		{128, 0, 0, 256},
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		first := Slide(b, dir, WinningTile)
		second := Slide(first.Board, dir, WinningTile)

		if second.Changed {
			t.Errorf("%v: second slide without spawn should be a no-op", dir)
		}
		if second.Board != first.Board {
			t.Errorf("%v: second slide changed the board:\n%v\nvs\n%v", dir, second.Board, first.Board)
		}
	}
}

func TestMergeFreeMovePreservesValues(t *testing.T) {
	b := Board{
		{2, 4, 0, 0},
		{0, 8, 0, 16},
		{0, 0, 0, 2},
		{32, 0, 4, 0},
	}

	out := SlideRight(b, WinningTile)

	if out.Score != 0 {
		t.Fatalf("expected merge-free move, got score %d", out.Score)
	}

	if got, want := tileCounts(out.Board), tileCounts(b); got != want {
		t.Errorf("merge-free move changed tile multiset: %v vs %v", got, want)
	}
}

// tileCounts summarizes the non-zero multiset as a comparable array
// indexed by power of two.
func tileCounts(b Board) [16]int {
	var counts [16]int
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			v := b[y][x]
			for i := 0; v > 1 && i < len(counts); i++ {
				v >>= 1
				if v == 1 {
					counts[i]++
				}
			}
		}
	}
	return counts
}

func TestTransposeSelfInverse(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{0, 2, 0, 4},
		{32, 0, 2, 0},
		{0, 64, 0, 2},
	}

	if got := Transpose(Transpose(b)); got != b {
		t.Errorf("Transpose(Transpose(b)) = %v, want %v", got, b)
	}
}

func TestGameOver(t *testing.T) {
	// Alternating values, fully populated, no adjacent equals.
	dead := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	if !IsGameOver(dead) {
		t.Error("board with no moves should be game over")
	}

	withMerge := Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if IsGameOver(withMerge) {
		t.Error("board with possible merge should not be game over")
	}

	withEmpty := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	if IsGameOver(withEmpty) {
		t.Error("board with empty cell should not be game over")
	}

	if IsGameOver(Board{}) {
		t.Error("empty board should not be game over")
	}
}

func TestMaxTileAndHasTile(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(b); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if !HasTile(b, 2048) {
		t.Error("HasTile(2048) should be true")
	}
	if HasTile(b, 4096) {
		t.Error("HasTile(4096) should be false")
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(b)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	for _, c := range cells {
		if b[c.Row][c.Col] != 0 {
			t.Errorf("EmptyCells returned occupied cell %+v", c)
		}
	}
}
