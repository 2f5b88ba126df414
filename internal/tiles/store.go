// Package tiles holds the authoritative set of live tiles for one game
// session. Tiles are kept in an arena keyed by id with a position index, and
// the store tracks whether anything changed since the last snapshot.
package tiles

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// TileID identifies a tile for the lifetime of a session.
// IDs are never reused within a store, even after Clear.
type TileID uint64

// Tile is a numbered tile on the board.
type Tile struct {
	ID    TileID
	Pos   core.Position
	Value int
}

// Store owns the live tiles.
// It is not safe for concurrent use.
type Store struct {
	tiles  map[TileID]*Tile
	byPos  map[core.Position]TileID
	nextID TileID
	dirty  bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		tiles:  make(map[TileID]*Tile),
		byPos:  make(map[core.Position]TileID),
		nextID: 1,
	}
}

// Insert places a new tile and returns its id.
// Panics if the cell is occupied or the value is not positive.
func (s *Store) Insert(pos core.Position, value int) TileID {
	if value < 1 {
		panic(fmt.Sprintf("tiles: invalid value %d at %v", value, pos))
	}
	if id, ok := s.byPos[pos]; ok {
		panic(fmt.Sprintf("tiles: cell %v already occupied by tile %d", pos, id))
	}

	id := s.nextID
	s.nextID++
	s.tiles[id] = &Tile{ID: id, Pos: pos, Value: value}
	s.byPos[pos] = id
	s.dirty = true
	return id
}

// Get returns a copy of the tile with the given id.
func (s *Store) Get(id TileID) (Tile, bool) {
	t, ok := s.tiles[id]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// At returns a copy of the tile occupying pos.
func (s *Store) At(pos core.Position) (Tile, bool) {
	id, ok := s.byPos[pos]
	if !ok {
		return Tile{}, false
	}
	return *s.tiles[id], true
}

// Occupied reports whether a tile sits at pos.
func (s *Store) Occupied(pos core.Position) bool {
	_, ok := s.byPos[pos]
	return ok
}

// Len returns the number of live tiles.
func (s *Store) Len() int {
	return len(s.tiles)
}

// All returns a snapshot of every live tile ordered by id.
// Mutating the result does not affect the store.
func (s *Store) All() []Tile {
	out := make([]Tile, 0, len(s.tiles))
	for _, t := range s.tiles {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Remove deletes a tile. Panics if the id is unknown.
func (s *Store) Remove(id TileID) {
	t, ok := s.tiles[id]
	if !ok {
		panic(fmt.Sprintf("tiles: remove of unknown tile %d", id))
	}
	delete(s.byPos, t.Pos)
	delete(s.tiles, id)
	s.dirty = true
}

// Update moves a tile and/or changes its value.
// Panics if the id is unknown or pos is held by a different tile.
// The store is marked dirty only when something actually changes.
func (s *Store) Update(id TileID, pos core.Position, value int) {
	t, ok := s.tiles[id]
	if !ok {
		panic(fmt.Sprintf("tiles: update of unknown tile %d", id))
	}
	if value < 1 {
		panic(fmt.Sprintf("tiles: invalid value %d for tile %d", value, id))
	}
	if t.Pos == pos && t.Value == value {
		return
	}
	if other, taken := s.byPos[pos]; taken && other != id {
		panic(fmt.Sprintf("tiles: cell %v already occupied by tile %d", pos, other))
	}

	delete(s.byPos, t.Pos)
	t.Pos = pos
	t.Value = value
	s.byPos[pos] = id
	s.dirty = true
}

// Clear removes every tile. IDs keep counting up.
func (s *Store) Clear() {
	if len(s.tiles) == 0 {
		return
	}
	clear(s.tiles)
	clear(s.byPos)
	s.dirty = true
}

// Dirty reports whether the store changed since the last ClearDirty.
func (s *Store) Dirty() bool {
	return s.dirty
}

// ClearDirty resets the change flag after a snapshot has been emitted.
func (s *Store) ClearDirty() {
	s.dirty = false
}
