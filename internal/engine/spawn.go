package engine

import (
	"math/rand"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/grid"
	"github.com/vovakirdan/tilemerge/internal/tiles"
)

// SpawnValue is the value of every newly spawned tile.
const SpawnValue = 2

// Source is the randomness the spawner draws from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Spawner places new tiles on uniformly chosen empty cells.
type Spawner struct {
	src Source
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(src Source) *Spawner {
	return &Spawner{src: src}
}

// NewSeededSpawner creates a spawner whose choices are fixed by seed.
func NewSeededSpawner(seed int64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)))
}

// EmptyCells returns the unoccupied cells in row-major order.
func EmptyCells(store *tiles.Store, g grid.Grid) []core.Position {
	var empty []core.Position
	for _, pos := range g.Cells() {
		if !store.Occupied(pos) {
			empty = append(empty, pos)
		}
	}
	return empty
}

// Spawn inserts a SpawnValue tile on a random empty cell.
// Returns false without touching the store when the board is full.
func (s *Spawner) Spawn(store *tiles.Store, g grid.Grid) (tiles.Tile, bool) {
	empty := EmptyCells(store, g)
	if len(empty) == 0 {
		return tiles.Tile{}, false
	}

	pos := empty[s.src.Intn(len(empty))]
	id := store.Insert(pos, SpawnValue)
	return tiles.Tile{ID: id, Pos: pos, Value: SpawnValue}, true
}
