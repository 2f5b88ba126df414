// Package grid describes the fixed square board the engine plays on:
// its size, the cell enumeration order, adjacency, and the mapping from
// logical cell index to physical coordinate used by renderers.
package grid

import (
	"fmt"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// Default geometry, in renderer units.
const (
	DefaultSize     = 4
	DefaultTileSize = 40.0
	DefaultSpacer   = 10.0
)

// Grid is a square board of Size x Size cells.
// TileSize and Spacer are only consumed by renderers.
type Grid struct {
	Size     int
	TileSize float64
	Spacer   float64
}

// New creates a grid with the default geometry.
func New(size int) Grid {
	return NewWithGeometry(size, DefaultTileSize, DefaultSpacer)
}

// NewWithGeometry creates a grid with explicit tile pitch and spacing.
// Panics if size is not positive.
func NewWithGeometry(size int, tileSize, spacer float64) Grid {
	if size < 1 {
		panic(fmt.Sprintf("grid: invalid size %d", size))
	}
	return Grid{Size: size, TileSize: tileSize, Spacer: spacer}
}

// Capacity returns the number of cells on the board.
func (g Grid) Capacity() int {
	return g.Size * g.Size
}

// PhysicalSize returns the board's side length including outer spacing.
func (g Grid) PhysicalSize() float64 {
	return float64(g.Size)*g.TileSize + float64(g.Size+1)*g.Spacer
}

// CellToPhysical returns the centre of the cell at index along either axis,
// with the board centred on the origin. index must be < Size.
func (g Grid) CellToPhysical(index int) float64 {
	offset := -g.PhysicalSize()/2 + g.TileSize/2
	return offset + float64(index)*g.TileSize + float64(index+1)*g.Spacer
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p core.Position) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// MustContain panics if p lies outside the board.
func (g Grid) MustContain(p core.Position) {
	if !g.Contains(p) {
		panic(fmt.Sprintf("grid: position %v outside %dx%d board", p, g.Size, g.Size))
	}
}

// Cells returns every position in row-major order (y, then x).
func (g Grid) Cells() []core.Position {
	cells := make([]core.Position, 0, g.Capacity())
	for y := range g.Size {
		for x := range g.Size {
			cells = append(cells, core.Pos(x, y))
		}
	}
	return cells
}

// neighborOffsets are the four orthogonal steps.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the orthogonally adjacent positions of p that lie on the board.
func (g Grid) Neighbors(p core.Position) []core.Position {
	out := make([]core.Position, 0, 4)
	for _, d := range neighborOffsets {
		n := p.Offset(d[0], d[1])
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
