package board

import "testing"

func freshSeq(colors ...int) func() Cell {
	i := 0
	return func() Cell {
		c := Cell{ID: uint64(100 + i), Color: colors[i%len(colors)], Alive: true}
		i++
		return c
	}
}

func TestFillColumnGravity(t *testing.T) {
	g := gridFromRows(t,
		"3",
		".",
		".",
		"0",
	)

	placed := Fill(g, freshSeq(7, 8))
	if placed != 2 {
		t.Fatalf("placed = %d, want 2", placed)
	}

	want := []string{"8", "7", "3", "0"}
	got := colorsOf(g)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column = %v, want %v", got, want)
		}
	}
}

func TestFillUpdatesPositions(t *testing.T) {
	g := gridFromRows(t,
		"12",
		"..",
		"34",
	)
	Fill(g, freshSeq(5))

	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			c := C(column, row)
			cell, _ := g.At(c)
			if cell.Position != c {
				t.Errorf("cell at %s reports position %s", c, cell.Position)
			}
			if !cell.Alive {
				t.Errorf("cell at %s still dead after fill", c)
			}
		}
	}
}

func TestFillOrderColumnByColumn(t *testing.T) {
	g := gridFromRows(t,
		"..",
		"..",
		"01",
	)
	Fill(g, freshSeq(2, 3, 4, 5))

	got := colorsOf(g)
	// Column 0 takes the first two fresh colors before column 1 gets any.
	if got[0] != "35" || got[1] != "24" {
		t.Errorf("columns = %v, want top \"35\" middle \"24\"", got)
	}
}

func TestFillCompactColumnUntouched(t *testing.T) {
	g := gridFromRows(t, "01", "23")
	before := g.Clone()
	if placed := Fill(g, freshSeq(9)); placed != 0 {
		t.Errorf("placed = %d, want 0", placed)
	}
	if !g.Equal(before) {
		t.Error("compact grid changed")
	}
}
