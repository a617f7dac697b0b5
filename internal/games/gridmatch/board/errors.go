package board

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")

	// ErrInvalidDimensions is returned when a grid is created with a non-positive size.
	ErrInvalidDimensions = errors.New("board: invalid grid dimensions")

	// ErrAllocationExhausted is returned when the allocator cannot supply a cell.
	ErrAllocationExhausted = errors.New("board: cell allocation exhausted")

	// ErrInvalidColorState is returned when a cell's color is outside the palette.
	ErrInvalidColorState = errors.New("board: cell color outside palette")

	// ErrBusy is returned when a resolution is triggered while another is running.
	ErrBusy = errors.New("board: resolution already in progress")

	// ErrDeadlocked is returned when a resolution is triggered on a deadlocked board.
	ErrDeadlocked = errors.New("board: no possible matches remain")
)

// BoundsError reports the offending coordinate and grid size.
type BoundsError struct {
	Coord   Coord
	Columns int
	Rows    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("board: coordinate %s outside %dx%d grid", e.Coord, e.Columns, e.Rows)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
