// Package board implements the match engine behind GridMatch: the cell grid,
// run and group detection, special piece rules, the resolution cycle and the
// deadlock check. It is UI-agnostic and deterministic for a given RNG seed.
package board

import "fmt"

// Coord addresses a cell on the grid. Row 0 is the bottom row; gravity pulls
// cells toward lower rows.
type Coord struct {
	Column int
	Row    int
}

// C is a convenience constructor for Coord.
func C(column, row int) Coord {
	return Coord{Column: column, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Kind tags what a cell does when it is cleared.
type Kind uint8

const (
	KindNormal     Kind = iota
	KindAreaClear       // "bomb": clears its row and column
	KindColorClear      // "disco": clears every cell of its color
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindAreaClear:
		return "bomb"
	case KindColorClear:
		return "disco"
	default:
		return "unknown"
	}
}

// IsSpecial reports whether the kind carries an activation effect.
func (k Kind) IsSpecial() bool {
	return k == KindAreaClear || k == KindColorClear
}

// Cell is a single piece on the board. Special cells keep a Color that acts
// as their target color on activation.
type Cell struct {
	ID       uint64 // Entity ID assigned by the allocator
	Position Coord
	Color    int
	Kind     Kind
	Alive    bool // False once matched, until the slot is refilled
	Selected bool // Committed to the current resolution
}
