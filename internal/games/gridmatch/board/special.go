package board

// Default group size thresholds for special pieces.
const (
	DefaultBombMin  = 6
	DefaultDiscoMin = 10
)

// Rules holds the tunables for special pieces.
type Rules struct {
	BombMin        int     // Smallest group that earns an area-clear piece
	DiscoMin       int     // Smallest group that earns a color-clear piece
	BombTimeBonus  float64 // Seconds granted when an area clear fires
	DiscoTimeBonus float64 // Seconds granted when a color clear fires
}

// DefaultRules returns the standard thresholds with no time bonuses.
func DefaultRules() Rules {
	return Rules{
		BombMin:  DefaultBombMin,
		DiscoMin: DefaultDiscoMin,
	}
}

// Classify maps a group size to the special piece it earns using the
// default thresholds: [6,9] area clear, 10+ color clear, otherwise none.
func Classify(groupSize int) Kind {
	return DefaultRules().Classify(groupSize)
}

// Classify maps a group size to the special piece it earns.
func (r Rules) Classify(groupSize int) Kind {
	switch {
	case groupSize >= r.DiscoMin:
		return KindColorClear
	case groupSize >= r.BombMin:
		return KindAreaClear
	default:
		return KindNormal
	}
}

// SpecialIntent records a special piece to spawn once the board is refilled.
type SpecialIntent struct {
	Kind     Kind
	Color    int
	Position Coord
}

// Activation describes one special effect that fired during a resolution.
type Activation struct {
	Kind     Kind
	Color    int
	Position Coord
	Cleared  int // Cells added to the resolution by this effect
}

// areaTargets returns the alive, unselected cells sharing pos's row or column.
func areaTargets(g *Grid, pos Coord, skip func(Coord) bool) []Coord {
	var out []Coord
	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			if column != pos.Column && row != pos.Row {
				continue
			}
			c := C(column, row)
			if g.cell(c).Alive && !skip(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// colorTargets returns the alive, unselected cells of the given color.
func colorTargets(g *Grid, color int, skip func(Coord) bool) []Coord {
	var out []Coord
	for i := range g.cells {
		cell := &g.cells[i]
		if cell.Alive && cell.Color == color && !skip(cell.Position) {
			out = append(out, cell.Position)
		}
	}
	return out
}

// effectTargets dispatches on the special kind.
func effectTargets(g *Grid, kind Kind, color int, pos Coord, skip func(Coord) bool) []Coord {
	switch kind {
	case KindAreaClear:
		return areaTargets(g, pos, skip)
	case KindColorClear:
		return colorTargets(g, color, skip)
	default:
		return nil
	}
}
