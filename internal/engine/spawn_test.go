package engine

import (
	"testing"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/grid"
	"github.com/vovakirdan/tilemerge/internal/tiles"
)

func TestSpawnPlacesOnEmptyCell(t *testing.T) {
	s, g := storeFromRows([][]int{
		{2, 4, 8},
		{0, 2, 0},
		{4, 0, 16},
	})
	empty := EmptyCells(s, g)
	if len(empty) != 3 {
		t.Fatalf("EmptyCells = %v, want 3 cells", empty)
	}

	for i := range empty {
		store, gr := storeFromRows([][]int{
			{2, 4, 8},
			{0, 2, 0},
			{4, 0, 16},
		})
		tile, ok := NewSpawner(fixedSource(i)).Spawn(store, gr)
		if !ok {
			t.Fatalf("spawn %d failed on a board with empty cells", i)
		}
		if tile.Pos != empty[i] {
			t.Errorf("spawn %d at %v, want %v", i, tile.Pos, empty[i])
		}
		if tile.Value != SpawnValue {
			t.Errorf("spawn value = %d, want %d", tile.Value, SpawnValue)
		}
		if store.Len() != 7 {
			t.Errorf("tile count = %d, want 7", store.Len())
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	s, g := storeFromRows([][]int{
		{2, 4},
		{8, 16},
	})

	_, ok := NewSpawner(fixedSource(0)).Spawn(s, g)

	if ok {
		t.Error("spawn on a full board should report false")
	}
	if s.Len() != 4 {
		t.Errorf("tile count = %d, want 4", s.Len())
	}
	if s.Dirty() {
		t.Error("a failed spawn should not touch the store")
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	g := grid.New(2)
	s := tiles.NewStore()
	s.Insert(core.Pos(0, 0), 2)

	got := EmptyCells(s, g)
	want := []core.Position{core.Pos(1, 0), core.Pos(0, 1), core.Pos(1, 1)}
	if len(got) != len(want) {
		t.Fatalf("EmptyCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyCells[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSeededSpawnerIsDeterministic(t *testing.T) {
	a, b := NewSeededSpawner(42), NewSeededSpawner(42)
	sa, sb := tiles.NewStore(), tiles.NewStore()
	g := grid.New(4)

	for range g.Capacity() {
		ta, oka := a.Spawn(sa, g)
		tb, okb := b.Spawn(sb, g)
		if oka != okb || ta != tb {
			t.Fatalf("spawners diverged: %+v/%v vs %+v/%v", ta, oka, tb, okb)
		}
	}
	if sa.Len() != g.Capacity() {
		t.Errorf("board should be full after %d spawns, got %d tiles", g.Capacity(), sa.Len())
	}
}
