// Package engine implements the sliding-tile merge rules: shifting and
// merging tiles, spawning new ones, detecting the terminal state, and the
// session that ties them together.
package engine

import (
	"time"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/grid"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/tiles"
)

// StartTiles is the number of tiles spawned at the start of a session.
const StartTiles = 2

// MoveResult reports what one input did to the session.
type MoveResult struct {
	Direction  core.Direction
	Changed    bool        // Tiles moved, merged, or the session was reset
	ScoreDelta int         // Points gained by merges
	Merges     int         // Number of merges
	Spawned    *tiles.Tile // Tile added after the shift, nil if none
	GameOver   bool        // The move ended the session
}

// Game is one single-player session.
// It is not safe for concurrent use: process one input at a time.
type Game struct {
	grid    grid.Grid
	store   *tiles.Store
	spawner *Spawner
	state   State
	seed    int64
	moves   int
	dirty   bool // State changes not reflected in the store's flag
}

// New creates a session from the runtime config and starts it.
// A zero seed is replaced by the current time.
func New(cfg core.RuntimeConfig) *Game {
	size := cfg.BoardSize
	if size == 0 {
		size = grid.DefaultSize
	}
	tileSize, spacer := cfg.TileSize, cfg.Spacer
	if tileSize <= 0 {
		tileSize, spacer = grid.DefaultTileSize, grid.DefaultSpacer
	}
	if spacer < 0 {
		spacer = grid.DefaultSpacer
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		grid:    grid.NewWithGeometry(size, tileSize, spacer),
		store:   tiles.NewStore(),
		spawner: NewSeededSpawner(seed),
		state:   NewState(),
		seed:    seed,
	}
	g.Reset()
	return g
}

// NewVariant creates a session on a registered board variant.
func NewVariant(id string, cfg core.RuntimeConfig) (*Game, error) {
	v, err := registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	cfg.BoardSize = v.Size
	return New(cfg), nil
}

// Reset clears the board, zeroes the score (keeping the best) and spawns
// the starting tiles.
func (g *Game) Reset() {
	g.store.Clear()
	g.state.Reset()
	g.moves = 0
	for range StartTiles {
		g.spawner.Spawn(g.store, g.grid)
	}
	g.dirty = true
}

// Handle applies a platform action. Movement actions shift the board,
// Restart resets the session, and anything else is ignored.
func (g *Game) Handle(a core.Action) MoveResult {
	if a == core.ActionRestart {
		g.Reset()
		return MoveResult{Changed: true}
	}
	dir, ok := a.Direction()
	if !ok {
		return MoveResult{}
	}
	return g.Apply(dir)
}

// Apply runs one full turn: shift, score, spawn, terminal check.
// Unknown directions and moves after GameOver are no-ops.
func (g *Game) Apply(dir core.Direction) MoveResult {
	res := MoveResult{Direction: dir}
	if !dir.Valid() || g.state.Phase() == PhaseGameOver {
		return res
	}

	shift := Shift(g.store, g.grid, dir)
	if !shift.Changed {
		if IsTerminal(g.store, g.grid) {
			g.state.End()
			g.dirty = true
			res.GameOver = true
		}
		return res
	}

	res.Changed = true
	res.ScoreDelta = shift.ScoreDelta
	res.Merges = shift.Merges
	g.moves++
	g.state.Add(shift.ScoreDelta)

	if t, ok := g.spawner.Spawn(g.store, g.grid); ok {
		res.Spawned = &t
	}

	if IsTerminal(g.store, g.grid) {
		g.state.End()
		g.dirty = true
		res.GameOver = true
	}

	return res
}

// Grid returns the board geometry.
func (g *Game) Grid() grid.Grid { return g.grid }

// Score returns the current score.
func (g *Game) Score() int { return g.state.Score() }

// Best returns the best score seen in this session.
func (g *Game) Best() int { return g.state.Best() }

// Phase returns the run phase.
func (g *Game) Phase() Phase { return g.state.Phase() }

// Moves returns the number of board-changing moves since the last reset.
func (g *Game) Moves() int { return g.moves }

// Seed returns the seed the spawner was created with.
func (g *Game) Seed() int64 { return g.seed }

// Tiles returns a copy of the live tiles.
func (g *Game) Tiles() []tiles.Tile { return g.store.All() }

// MaxTile returns the highest tile value on the board.
func (g *Game) MaxTile() int {
	maxVal := 0
	for _, t := range g.store.All() {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}
