package board

import (
	"testing"
)

// gridFromRows builds a grid from digit rows written top row first, so the
// literal reads the way the board is drawn. '.' marks an empty slot.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	var id uint64
	for i, line := range rows {
		if len(line) != len(rows[0]) {
			t.Fatalf("row %d has width %d, want %d", i, len(line), len(rows[0]))
		}
		row := len(rows) - 1 - i
		for column, ch := range line {
			if ch == '.' {
				continue
			}
			id++
			c := C(column, row)
			if err := g.Set(c, Cell{ID: id, Color: int(ch - '0'), Alive: true}); err != nil {
				t.Fatalf("Set %s: %v", c, err)
			}
		}
	}
	return g
}

// colorsOf renders a grid back into the gridFromRows layout.
func colorsOf(g *Grid) []string {
	out := make([]string, g.rows)
	for row := 0; row < g.rows; row++ {
		line := make([]byte, g.columns)
		for column := 0; column < g.columns; column++ {
			cell := g.cell(C(column, row))
			if !cell.Alive {
				line[column] = '.'
				continue
			}
			line[column] = byte('0' + cell.Color)
		}
		out[g.rows-1-row] = string(line)
	}
	return out
}

// seqPalette hands out colors from a fixed cycle.
type seqPalette struct {
	size   int
	colors []int
	next   int
}

func (p *seqPalette) Size() int { return p.size }

func (p *seqPalette) Next() int {
	c := p.colors[p.next%len(p.colors)]
	p.next++
	return c
}

type scoreSpy struct {
	calls []int
	hook  func()
}

func (s *scoreSpy) AddScore(matched int) {
	s.calls = append(s.calls, matched)
	if s.hook != nil {
		s.hook()
	}
}

type bonus struct {
	amount float64
	color  int
}

type timerSpy struct {
	bonuses []bonus
}

func (s *timerSpy) AddTimeBonus(amount float64, color int) {
	s.bonuses = append(s.bonuses, bonus{amount, color})
}

type lifecycleSpy struct {
	events []string
}

func (s *lifecycleSpy) EndActiveState()     { s.events = append(s.events, "end") }
func (s *lifecycleSpy) StartGameOverState() { s.events = append(s.events, "gameover") }

// countingPool tracks in-use cells for a grid built outside the pool.
func countingPool(g *Grid, capacity int) *Pool {
	p := NewPool(capacity)
	p.inUse = g.Area() - g.DeadCount()
	p.nextID = 1 << 20
	return p
}
