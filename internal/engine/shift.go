package engine

import (
	"sort"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/grid"
	"github.com/vovakirdan/tilemerge/internal/tiles"
)

// strategy holds the three direction-dependent pieces of the shift pass.
type strategy struct {
	// less orders tiles so each row/column group is contiguous and tiles
	// nearest the leading edge come first.
	less func(a, b core.Position) bool
	// group returns the row or column a tile slides along.
	group func(p core.Position) int
	// place returns the position for the slot-th tile of a group.
	place func(p core.Position, slot, size int) core.Position
}

func byRow(p core.Position) int    { return p.Y }
func byColumn(p core.Position) int { return p.X }

var strategies = map[core.Direction]strategy{
	core.DirLeft: {
		less: func(a, b core.Position) bool {
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		},
		group: byRow,
		place: func(p core.Position, slot, _ int) core.Position {
			return core.Pos(slot, p.Y)
		},
	},
	core.DirRight: {
		less: func(a, b core.Position) bool {
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X > b.X
		},
		group: byRow,
		place: func(p core.Position, slot, size int) core.Position {
			return core.Pos(size-1-slot, p.Y)
		},
	},
	core.DirUp: {
		less: func(a, b core.Position) bool {
			if a.X != b.X {
				return a.X < b.X
			}
			return a.Y > b.Y
		},
		group: byColumn,
		place: func(p core.Position, slot, size int) core.Position {
			return core.Pos(p.X, size-1-slot)
		},
	},
	core.DirDown: {
		less: func(a, b core.Position) bool {
			if a.X != b.X {
				return a.X < b.X
			}
			return a.Y < b.Y
		},
		group: byColumn,
		place: func(p core.Position, slot, _ int) core.Position {
			return core.Pos(p.X, slot)
		},
	},
}

// ShiftResult summarises one shift pass.
type ShiftResult struct {
	ScoreDelta int  // Sum of the values produced by merges
	Merges     int  // Number of merges performed
	Moved      int  // Surviving tiles whose position changed
	Changed    bool // Whether the board differs from before the shift
}

// placement is the final state of one surviving tile.
type placement struct {
	id    tiles.TileID
	pos   core.Position
	value int
}

// Shift slides and merges every tile in the store toward dir.
// An invalid direction is a no-op. A tile merges at most once per shift.
func Shift(store *tiles.Store, g grid.Grid, dir core.Direction) ShiftResult {
	strat, ok := strategies[dir]
	if !ok {
		return ShiftResult{}
	}

	ordered := store.All()
	sort.SliceStable(ordered, func(i, j int) bool {
		return strat.less(ordered[i].Pos, ordered[j].Pos)
	})

	var res ShiftResult
	placements := make([]placement, 0, len(ordered))
	var absorbed []tiles.TileID

	column := 0
	for i := 0; i < len(ordered); {
		cur := ordered[i]
		g.MustContain(cur.Pos)
		grp := strat.group(cur.Pos)

		value := cur.Value
		next := i + 1
		if next < len(ordered) && strat.group(ordered[next].Pos) == grp && ordered[next].Value == cur.Value {
			value += ordered[next].Value
			absorbed = append(absorbed, ordered[next].ID)
			res.ScoreDelta += value
			res.Merges++
			next++
		}

		target := strat.place(cur.Pos, column, g.Size)
		if target != cur.Pos {
			res.Moved++
		}
		placements = append(placements, placement{id: cur.ID, pos: target, value: value})

		if next < len(ordered) && strat.group(ordered[next].Pos) == grp {
			column++
		} else {
			column = 0
		}
		i = next
	}

	res.Changed = res.Moved > 0 || res.Merges > 0
	if !res.Changed {
		return res
	}

	// Absorbed tiles go first. Placing survivors in scan order never lands
	// on an unmoved tile: each target is at or behind the tile's old cell.
	for _, id := range absorbed {
		store.Remove(id)
	}
	for _, p := range placements {
		store.Update(p.id, p.pos, p.value)
	}

	return res
}
