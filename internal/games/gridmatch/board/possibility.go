package board

// AnyMatchPossible reports whether triggering some cell on the grid would
// produce a match. It sweeps every cell and never mutates the grid.
func AnyMatchPossible(g *Grid) bool {
	_, ok := FindHint(g)
	return ok
}

// FindHint returns the first cell, scanning rows bottom-up and columns
// left to right, that has a same-color run partner.
func FindHint(g *Grid) (Coord, bool) {
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			c := C(column, row)
			if HasRunPartner(g, c) {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// CountMatchableCells returns how many cells have at least one run partner.
func CountMatchableCells(g *Grid) int {
	count := 0
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			if HasRunPartner(g, C(column, row)) {
				count++
			}
		}
	}
	return count
}
