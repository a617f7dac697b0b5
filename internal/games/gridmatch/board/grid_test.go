package board

import (
	"errors"
	"testing"
)

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		columns, rows int
		wantErr       bool
	}{
		{8, 8, false},
		{1, 1, false},
		{15, 5, false},
		{0, 5, true},
		{5, -1, true},
	}

	for _, tt := range tests {
		g, err := NewGrid(tt.columns, tt.rows)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewGrid(%d,%d) err = %v, want ErrInvalidDimensions", tt.columns, tt.rows, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewGrid(%d,%d) unexpected error: %v", tt.columns, tt.rows, err)
		}
		if g.Area() != tt.columns*tt.rows {
			t.Errorf("Area() = %d, want %d", g.Area(), tt.columns*tt.rows)
		}
		if g.DeadCount() != g.Area() {
			t.Errorf("new grid should be empty, %d of %d dead", g.DeadCount(), g.Area())
		}
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g, _ := NewGrid(4, 3)

	for _, c := range []Coord{C(-1, 0), C(4, 0), C(0, 3), C(0, -1)} {
		_, err := g.At(c)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%s) err = %v, want ErrOutOfBounds", c, err)
		}
		var be *BoundsError
		if !errors.As(err, &be) || be.Coord != c {
			t.Errorf("At(%s) should return BoundsError for that coordinate", c)
		}
	}
}

func TestGridSetRewritesPosition(t *testing.T) {
	g, _ := NewGrid(3, 3)

	if err := g.Set(C(2, 1), Cell{ID: 7, Position: C(0, 0), Color: 1, Alive: true}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	cell, _ := g.At(C(2, 1))
	if cell.Position != C(2, 1) {
		t.Errorf("Position = %s, want (2,1)", cell.Position)
	}
	if cell.ID != 7 {
		t.Errorf("ID = %d, want 7", cell.ID)
	}
}

func TestGridRowsBottomUp(t *testing.T) {
	g := gridFromRows(t,
		"12",
		"34",
	)

	bottom, _ := g.At(C(0, 0))
	top, _ := g.At(C(1, 1))
	if bottom.Color != 3 {
		t.Errorf("bottom-left color = %d, want 3", bottom.Color)
	}
	if top.Color != 2 {
		t.Errorf("top-right color = %d, want 2", top.Color)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := gridFromRows(t, "01", "10")
	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	_ = clone.Set(C(0, 0), Cell{Color: 3, Alive: true})
	if g.Equal(clone) {
		t.Error("modifying clone changed original")
	}
}

func TestGridCountByColor(t *testing.T) {
	g := gridFromRows(t,
		"001",
		"2.1",
	)
	counts := g.CountByColor()
	if counts[0] != 2 || counts[1] != 2 || counts[2] != 1 {
		t.Errorf("CountByColor() = %v", counts)
	}
	if g.DeadCount() != 1 {
		t.Errorf("DeadCount() = %d, want 1", g.DeadCount())
	}
}
