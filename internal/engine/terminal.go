package engine

import (
	"github.com/vovakirdan/tilemerge/internal/grid"
	"github.com/vovakirdan/tilemerge/internal/tiles"
)

// HasAdjacentPair reports whether any two orthogonally adjacent tiles share a value.
func HasAdjacentPair(store *tiles.Store, g grid.Grid) bool {
	for _, t := range store.All() {
		for _, n := range g.Neighbors(t.Pos) {
			if other, ok := store.At(n); ok && other.Value == t.Value {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether no move remains.
// Only a full board can be terminal; on a full board a shift changes
// something exactly when an adjacent equal pair exists.
func IsTerminal(store *tiles.Store, g grid.Grid) bool {
	if store.Len() < g.Capacity() {
		return false
	}
	return !HasAdjacentPair(store, g)
}
