package engine

import (
	"math/rand"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/grid"
	"github.com/vovakirdan/tilemerge/internal/tiles"
)

// storeFromRows builds a store from a matrix written top row first,
// so rows[0] is y = size-1. Zero means empty.
func storeFromRows(rows [][]int) (*tiles.Store, grid.Grid) {
	size := len(rows)
	s := tiles.NewStore()
	for r, row := range rows {
		for x, v := range row {
			if v != 0 {
				s.Insert(core.Pos(x, size-1-r), v)
			}
		}
	}
	s.ClearDirty()
	return s, grid.New(size)
}

// rowsOf renders a store back into top-first matrix form.
func rowsOf(s *tiles.Store, size int) [][]int {
	rows := make([][]int, size)
	for i := range rows {
		rows[i] = make([]int, size)
	}
	for _, t := range s.All() {
		rows[size-1-t.Pos.Y][t.Pos.X] = t.Value
	}
	return rows
}

func equalRows(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func sumValues(s *tiles.Store) int {
	total := 0
	for _, t := range s.All() {
		total += t.Value
	}
	return total
}

// randomStore fills roughly half the cells with small powers of two.
func randomStore(rng *rand.Rand, size int) (*tiles.Store, grid.Grid) {
	g := grid.New(size)
	s := tiles.NewStore()
	values := []int{2, 2, 2, 4, 4, 8, 16}
	for _, pos := range g.Cells() {
		if rng.Intn(2) == 0 {
			s.Insert(pos, values[rng.Intn(len(values))])
		}
	}
	s.ClearDirty()
	return s, g
}

// newTestGame returns a session on an empty board of the given size.
func newTestGame(size int, seed int64) *Game {
	g := New(core.RuntimeConfig{BoardSize: size, Seed: seed})
	g.store.Clear()
	g.store.ClearDirty()
	g.dirty = false
	return g
}

// fixedSource always returns the same index, clamped to the range.
type fixedSource int

func (f fixedSource) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
