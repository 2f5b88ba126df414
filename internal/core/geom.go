// Package core provides fundamental types shared by the engine and the
// platform layers. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate on the board.
// X grows to the right, Y grows upward (row 0 is the bottom row).
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a shift direction.
// The zero value is DirNone and is never a valid move.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Directions lists the four valid shift directions.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// Valid reports whether d is one of the four shift directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection converts a name like "left" or "UP" into a Direction.
// Unknown names return DirNone and false.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, true
	case "right", "r":
		return DirRight, true
	case "up", "u":
		return DirUp, true
	case "down", "d":
		return DirDown, true
	default:
		return DirNone, false
	}
}
