package board

import (
	"sort"
	"testing"
)

func sortedCoords(cs []Coord) []Coord {
	out := append([]Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}

func TestFindRun(t *testing.T) {
	g := gridFromRows(t,
		"10000",
		"20100",
		"00001",
	)

	tests := []struct {
		name string
		seed Coord
		axis Axis
		want []Coord
	}{
		{"row both directions", C(2, 0), AxisRow, []Coord{C(0, 0), C(1, 0), C(3, 0)}},
		{"row stops at mismatch", C(1, 1), AxisRow, nil},
		{"column", C(1, 0), AxisColumn, []Coord{C(1, 1), C(1, 2)}},
		{"column stops at mismatch", C(0, 0), AxisColumn, nil},
		{"top row run", C(4, 2), AxisRow, []Coord{C(1, 2), C(2, 2), C(3, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedCoords(FindRun(g, tt.seed, tt.axis, nil))
			want := sortedCoords(tt.want)
			if len(got) != len(want) {
				t.Fatalf("FindRun = %v, want %v", got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("FindRun = %v, want %v", got, want)
				}
			}
		})
	}
}

func TestFindRunStopsAtDeadCell(t *testing.T) {
	g := gridFromRows(t, "00.00")

	got := FindRun(g, C(0, 0), AxisRow, nil)
	if len(got) != 1 || got[0] != C(1, 0) {
		t.Errorf("FindRun = %v, want [(1,0)]", got)
	}
}

func TestFindRunSkipBridges(t *testing.T) {
	g := gridFromRows(t, "0000")
	skip := func(c Coord) bool { return c == C(1, 0) }

	got := sortedCoords(FindRun(g, C(0, 0), AxisRow, skip))
	if len(got) != 2 || got[0] != C(2, 0) || got[1] != C(3, 0) {
		t.Errorf("FindRun = %v, want [(2,0) (3,0)]", got)
	}
}

func TestFindMatchGroup(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		seed Coord
		want int
	}{
		{"isolated", []string{"010", "101", "010"}, C(1, 1), 1},
		{"pair", []string{"12", "00"}, C(0, 0), 2},
		{"row of six", []string{"121212", "000000"}, C(3, 0), 6},
		{"l shape", []string{"011", "011", "000"}, C(0, 2), 5},
		{"snake", []string{"0001", "1101", "0001"}, C(0, 0), 7},
		{"ring around hole", []string{"000", "010", "000"}, C(1, 0), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromRows(t, tt.rows...)
			group := FindMatchGroup(g, tt.seed)
			if group.Len() != tt.want {
				t.Errorf("group size = %d, want %d (members %v)", group.Len(), tt.want, group.Members())
			}
			if !group.Contains(tt.seed) {
				t.Error("group should contain the seed")
			}
		})
	}
}

func TestFindMatchGroupHasNoDuplicates(t *testing.T) {
	g := gridFromRows(t,
		"0000",
		"0000",
		"0000",
	)
	group := FindMatchGroup(g, C(1, 1))
	seen := make(map[Coord]bool)
	for _, c := range group.Members() {
		if seen[c] {
			t.Fatalf("duplicate member %s", c)
		}
		seen[c] = true
	}
	if group.Len() != 12 {
		t.Errorf("group size = %d, want 12", group.Len())
	}
}

func TestExpandTwiceIsNoop(t *testing.T) {
	g := gridFromRows(t, "000")
	group := NewMatchGroup(C(0, 0))

	added, ok := group.Expand(g, C(0, 0))
	if !ok || len(added) != 2 {
		t.Fatalf("first Expand = %v, %v", added, ok)
	}
	if _, ok := group.Expand(g, C(0, 0)); ok {
		t.Error("second Expand of the same cell should report false")
	}
}

func TestFindMatchGroupLeavesGridUntouched(t *testing.T) {
	g := gridFromRows(t, "0011", "0110")
	before := g.Clone()
	FindMatchGroup(g, C(1, 0))
	if !g.Equal(before) {
		t.Error("FindMatchGroup mutated the grid")
	}
}
