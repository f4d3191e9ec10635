package board

import "math/rand"

// DefaultFourChance is the standard probability of spawning a 4
// instead of a 2.
const DefaultFourChance = 0.10

// SpawnTile places one new tile in a uniformly chosen empty cell.
// The new tile is 4 with probability fourChance, otherwise 2, drawn
// independently per spawn. Returns the input board and ok=false when
// no empty cell exists; that path is unreachable after a valid move
// and exists only as a guard.
func SpawnTile(b Board, rng *rand.Rand, fourChance float64) (Board, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, false
	}

	cell := empty[rng.Intn(len(empty))]
	b[cell.Row][cell.Col] = spawnValue(rng, fourChance)
	return b, true
}

// NewGameBoard produces the starting board: two distinct cells sampled
// uniformly without replacement, each independently assigned 2 or 4.
func NewGameBoard(rng *rand.Rand, fourChance float64) Board {
	var b Board

	// rand.Perm gives uniform sampling without replacement over all
	// 16 positions, so the two cells are guaranteed distinct.
	perm := rng.Perm(Size * Size)
	for _, p := range perm[:2] {
		b[p/Size][p%Size] = spawnValue(rng, fourChance)
	}

	return b
}

func spawnValue(rng *rand.Rand, fourChance float64) int {
	if rng.Float64() < fourChance {
		return 4
	}
	return 2
}
