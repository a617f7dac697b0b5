package board

// fillColumn compacts one column toward row 0. Each pass finds the lowest
// dead slot, shifts everything above it down one row and places a fresh cell
// in the top slot; passes repeat until the column has no dead slots.
// It returns the number of fresh cells placed.
func fillColumn(g *Grid, column int, fresh func() Cell) int {
	placed := 0
	for {
		hole := -1
		for row := 0; row < g.rows; row++ {
			if !g.cell(C(column, row)).Alive {
				hole = row
				break
			}
		}
		if hole < 0 {
			return placed
		}

		for row := hole; row < g.rows-1; row++ {
			above := *g.cell(C(column, row+1))
			above.Position = C(column, row)
			*g.cell(C(column, row)) = above
		}

		top := C(column, g.rows-1)
		cell := fresh()
		cell.Position = top
		*g.cell(top) = cell
		placed++
	}
}

// Fill compacts every column, one column fully before the next, drawing
// replacements from fresh. Already compact columns are left untouched.
func Fill(g *Grid, fresh func() Cell) int {
	placed := 0
	for column := 0; column < g.columns; column++ {
		placed += fillColumn(g, column, fresh)
	}
	return placed
}
