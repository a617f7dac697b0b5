package gridmatch

import "github.com/vovakirdan/gridmatch/internal/games/gridmatch/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// SnapshotCell is the visible state of one board slot.
type SnapshotCell struct {
	Color int
	Kind  board.Kind
	Alive bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Columns  int
	Rows     int
	Score    int
	TimeLeft float64
	Moves    int
	Specials int
	Cursor   board.Coord
	Cells    [][]SnapshotCell // Indexed [row][column], row 0 at the bottom
	Reason   EndReason
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.life.over:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.score.total,
		TimeLeft: g.clock.remaining,
		Moves:    g.moves,
		Specials: g.specials,
		Cursor:   g.cursor,
		Reason:   g.reason,
		State:    state,
	}

	grid := g.engine.Grid()
	if grid == nil {
		return snap
	}
	snap.Columns, snap.Rows = grid.Dimensions()
	snap.Cells = make([][]SnapshotCell, snap.Rows)
	for row := range snap.Cells {
		snap.Cells[row] = make([]SnapshotCell, snap.Columns)
	}
	grid.Each(func(c board.Cell) {
		snap.Cells[c.Position.Row][c.Position.Column] = SnapshotCell{Color: c.Color, Kind: c.Kind, Alive: c.Alive}
	})
	return snap
}
