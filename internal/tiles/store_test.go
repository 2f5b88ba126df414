package tiles

import (
	"testing"

	"github.com/vovakirdan/tilemerge/internal/core"
)

func TestInsertAndGet(t *testing.T) {
	s := NewStore()

	id := s.Insert(core.Pos(1, 2), 2)

	tile, ok := s.Get(id)
	if !ok {
		t.Fatal("Get() should find inserted tile")
	}
	if tile.Pos != core.Pos(1, 2) || tile.Value != 2 {
		t.Errorf("Get() = %+v, expected pos (1,2) value 2", tile)
	}

	at, ok := s.At(core.Pos(1, 2))
	if !ok || at.ID != id {
		t.Errorf("At((1,2)) = %+v, %v; expected tile %d", at, ok, id)
	}

	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if !s.Dirty() {
		t.Error("Insert should mark store dirty")
	}
}

func TestInsertOccupiedPanics(t *testing.T) {
	s := NewStore()
	s.Insert(core.Pos(0, 0), 2)

	defer func() {
		if recover() == nil {
			t.Error("Insert into occupied cell should panic")
		}
	}()
	s.Insert(core.Pos(0, 0), 4)
}

func TestInsertInvalidValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Insert with value 0 should panic")
		}
	}()
	NewStore().Insert(core.Pos(0, 0), 0)
}

func TestIDsAreUniqueAcrossClear(t *testing.T) {
	s := NewStore()
	a := s.Insert(core.Pos(0, 0), 2)
	s.Clear()
	b := s.Insert(core.Pos(0, 0), 2)

	if a == b {
		t.Errorf("ID %d reused after Clear", a)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	id := s.Insert(core.Pos(2, 2), 8)
	s.ClearDirty()

	s.Remove(id)

	if s.Occupied(core.Pos(2, 2)) {
		t.Error("cell should be free after Remove")
	}
	if _, ok := s.Get(id); ok {
		t.Error("Get() should fail after Remove")
	}
	if !s.Dirty() {
		t.Error("Remove should mark store dirty")
	}
}

func TestRemoveUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Remove of unknown id should panic")
		}
	}()
	NewStore().Remove(99)
}

func TestUpdate(t *testing.T) {
	s := NewStore()
	id := s.Insert(core.Pos(3, 0), 2)
	s.ClearDirty()

	s.Update(id, core.Pos(0, 0), 4)

	if s.Occupied(core.Pos(3, 0)) {
		t.Error("old cell should be free after Update")
	}
	tile, _ := s.At(core.Pos(0, 0))
	if tile.ID != id || tile.Value != 4 {
		t.Errorf("At((0,0)) = %+v, expected tile %d value 4", tile, id)
	}
	if !s.Dirty() {
		t.Error("Update should mark store dirty")
	}
}

func TestUpdateNoChangeKeepsClean(t *testing.T) {
	s := NewStore()
	id := s.Insert(core.Pos(1, 1), 2)
	s.ClearDirty()

	s.Update(id, core.Pos(1, 1), 2)

	if s.Dirty() {
		t.Error("no-op Update should not mark store dirty")
	}
}

func TestUpdateIntoOccupiedPanics(t *testing.T) {
	s := NewStore()
	a := s.Insert(core.Pos(0, 0), 2)
	s.Insert(core.Pos(1, 0), 2)

	defer func() {
		if recover() == nil {
			t.Error("Update into occupied cell should panic")
		}
	}()
	s.Update(a, core.Pos(1, 0), 2)
}

func TestAllOrderedAndDetached(t *testing.T) {
	s := NewStore()
	s.Insert(core.Pos(3, 3), 2)
	s.Insert(core.Pos(0, 0), 4)
	s.Insert(core.Pos(1, 2), 8)

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d tiles, expected 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("All() not ordered by id: %v", all)
		}
	}

	all[0].Value = 1024
	if tile, _ := s.Get(all[0].ID); tile.Value == 1024 {
		t.Error("mutating All() result leaked into store")
	}
}
