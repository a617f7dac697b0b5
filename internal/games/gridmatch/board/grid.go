package board

import "fmt"

// Grid owns the cells of a board. Cells are stored in a flat arena in
// row-major order: index = row*columns + column.
type Grid struct {
	columns int
	rows    int
	cells   []Cell
}

// NewGrid creates a grid of the given size with every slot empty (not alive).
func NewGrid(columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, columns, rows)
	}
	g := &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
	}
	for i := range g.cells {
		g.cells[i].Position = C(i%columns, i/columns)
	}
	return g, nil
}

// Dimensions returns the number of columns and rows.
func (g *Grid) Dimensions() (columns, rows int) {
	return g.columns, g.rows
}

// Area returns the number of cells on the grid.
func (g *Grid) Area() int {
	return g.columns * g.rows
}

// InBounds returns true if the coordinate is on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Column >= 0 && c.Column < g.columns && c.Row >= 0 && c.Row < g.rows
}

// index converts a coordinate to an arena index. Callers check bounds first.
func (g *Grid) index(c Coord) int {
	return c.Row*g.columns + c.Column
}

func (g *Grid) boundsError(c Coord) error {
	return &BoundsError{Coord: c, Columns: g.columns, Rows: g.rows}
}

// At returns the cell at the given coordinate.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, g.boundsError(c)
	}
	return g.cells[g.index(c)], nil
}

// Set stores a cell at the given coordinate, rewriting its Position.
func (g *Grid) Set(c Coord, cell Cell) error {
	if !g.InBounds(c) {
		return g.boundsError(c)
	}
	cell.Position = c
	g.cells[g.index(c)] = cell
	return nil
}

// cell returns a pointer into the arena. Callers check bounds first.
func (g *Grid) cell(c Coord) *Cell {
	return &g.cells[g.index(c)]
}

// Each calls fn for every cell in row-major order, bottom row first.
func (g *Grid) Each(fn func(Cell)) {
	for _, cell := range g.cells {
		fn(cell)
	}
}

// DeadCount returns the number of slots not holding an alive cell.
func (g *Grid) DeadCount() int {
	count := 0
	for _, cell := range g.cells {
		if !cell.Alive {
			count++
		}
	}
	return count
}

// CountByColor returns the number of alive cells per color.
func (g *Grid) CountByColor() map[int]int {
	counts := make(map[int]int)
	for _, cell := range g.cells {
		if cell.Alive {
			counts[cell.Color]++
		}
	}
	return counts
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		columns: g.columns,
		rows:    g.rows,
		cells:   cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.columns != other.columns || g.rows != other.rows {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
