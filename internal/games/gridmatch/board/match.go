package board

// Axis selects the direction a run is scanned in.
type Axis uint8

const (
	AxisRow    Axis = iota // Row fixed, scan across columns
	AxisColumn             // Column fixed, scan across rows
)

// step returns the positive unit offset for the axis.
func (a Axis) step() (dc, dr int) {
	if a == AxisRow {
		return 1, 0
	}
	return 0, 1
}

// FindRun scans outward from seed in both directions along axis and returns
// the contiguous alive cells sharing the seed's color. The seed itself is
// not included. Each direction stops at its first mismatch, dead cell or
// edge. Cells for which skip returns true still bridge the run but are left
// out of the result; skip may be nil.
func FindRun(g *Grid, seed Coord, axis Axis, skip func(Coord) bool) []Coord {
	if !g.InBounds(seed) {
		return nil
	}
	origin := g.cell(seed)
	if !origin.Alive {
		return nil
	}

	dc, dr := axis.step()
	var run []Coord
	for _, sign := range [2]int{1, -1} {
		c := C(seed.Column+sign*dc, seed.Row+sign*dr)
		for g.InBounds(c) {
			cell := g.cell(c)
			if !cell.Alive || cell.Color != origin.Color {
				break
			}
			if skip == nil || !skip(c) {
				run = append(run, c)
			}
			c = C(c.Column+sign*dc, c.Row+sign*dr)
		}
	}
	return run
}

// HasRunPartner reports whether seed has at least one same-color alive
// neighbor along either axis.
func HasRunPartner(g *Grid, seed Coord) bool {
	return len(FindRun(g, seed, AxisRow, nil)) > 0 || len(FindRun(g, seed, AxisColumn, nil)) > 0
}

// MatchGroup accumulates the cells of one match during a resolution pass.
// Members double as the selection set: a member is never added twice.
type MatchGroup struct {
	members []Coord
	index   map[Coord]struct{}
	visited map[Coord]struct{}
}

// NewMatchGroup creates an empty group seeded with the trigger cell.
func NewMatchGroup(seed Coord) *MatchGroup {
	m := &MatchGroup{
		index:   make(map[Coord]struct{}),
		visited: make(map[Coord]struct{}),
	}
	m.add(seed)
	return m
}

func (m *MatchGroup) add(c Coord) bool {
	if _, ok := m.index[c]; ok {
		return false
	}
	m.index[c] = struct{}{}
	m.members = append(m.members, c)
	return true
}

// Contains reports whether c is already in the group.
func (m *MatchGroup) Contains(c Coord) bool {
	_, ok := m.index[c]
	return ok
}

// Visited reports whether c has already been expanded.
func (m *MatchGroup) Visited(c Coord) bool {
	_, ok := m.visited[c]
	return ok
}

// Len returns the number of cells in the group, seed included.
func (m *MatchGroup) Len() int {
	return len(m.members)
}

// Members returns the group's cells in discovery order.
func (m *MatchGroup) Members() []Coord {
	out := make([]Coord, len(m.members))
	copy(out, m.members)
	return out
}

// Expand adds the row and column runs through seed to the group and
// returns the newly added cells. It returns false if seed was already
// expanded in this pass.
func (m *MatchGroup) Expand(g *Grid, seed Coord) ([]Coord, bool) {
	if m.Visited(seed) {
		return nil, false
	}
	m.visited[seed] = struct{}{}

	var added []Coord
	for _, axis := range [2]Axis{AxisRow, AxisColumn} {
		for _, c := range FindRun(g, seed, axis, m.Contains) {
			if m.add(c) {
				added = append(added, c)
			}
		}
	}
	return added, true
}

// FindMatchGroup computes the transitive closure of same-color runs
// reachable from seed, breadth first.
func FindMatchGroup(g *Grid, seed Coord) *MatchGroup {
	group := NewMatchGroup(seed)
	queue := []Coord{seed}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		added, _ := group.Expand(g, next)
		queue = append(queue, added...)
	}
	return group
}
