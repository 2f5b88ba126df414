package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tilemerge/internal/tiles"
)

// TileView is the read-only view of one tile handed to renderers.
type TileView struct {
	ID    tiles.TileID `json:"id"`
	X     int          `json:"x"`
	Y     int          `json:"y"`
	Value int          `json:"value"`
	// Centre of the tile in layout units, origin at the board centre.
	PX float64 `json:"px"`
	PY float64 `json:"py"`
}

// Snapshot captures the session for renderers, replay and determinism checks.
type Snapshot struct {
	Size    int        `json:"size"`
	Tiles   []TileView `json:"tiles"`
	Score   int        `json:"score"`
	Best    int        `json:"best"`
	Moves   int        `json:"moves"`
	MaxTile int        `json:"max_tile"`
	Phase   Phase      `json:"phase"`
	Seed    int64      `json:"seed"`
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	all := g.store.All()
	views := make([]TileView, len(all))
	maxVal := 0
	for i, t := range all {
		views[i] = TileView{
			ID:    t.ID,
			X:     t.Pos.X,
			Y:     t.Pos.Y,
			Value: t.Value,
			PX:    g.grid.CellToPhysical(t.Pos.X),
			PY:    g.grid.CellToPhysical(t.Pos.Y),
		}
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}

	return Snapshot{
		Size:    g.grid.Size,
		Tiles:   views,
		Score:   g.state.Score(),
		Best:    g.state.Best(),
		Moves:   g.moves,
		MaxTile: maxVal,
		Phase:   g.state.Phase(),
		Seed:    g.seed,
	}
}

// TakeSnapshot returns a snapshot only if tiles, score or phase changed
// since the last call that returned true.
func (g *Game) TakeSnapshot() (Snapshot, bool) {
	if !g.dirty && !g.store.Dirty() {
		return Snapshot{}, false
	}
	snap := g.Snapshot()
	g.store.ClearDirty()
	g.dirty = false
	return snap, true
}

// Rows returns the board as a matrix with row 0 at the top (y = Size-1).
// Empty cells are 0.
func (s Snapshot) Rows() [][]int {
	rows := make([][]int, s.Size)
	for i := range rows {
		rows[i] = make([]int, s.Size)
	}
	for _, t := range s.Tiles {
		rows[s.Size-1-t.Y][t.X] = t.Value
	}
	return rows
}

// String renders the board as plain text, one row per line.
func (s Snapshot) String() string {
	width := len(strconv.Itoa(s.MaxTile))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for i, row := range s.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				fmt.Fprintf(&sb, "%*s", width, ".")
			} else {
				fmt.Fprintf(&sb, "%*d", width, v)
			}
		}
	}
	return sb.String()
}
