// Package gridmatch is a tap-to-match tile game: selecting a cell clears
// every same-colored cell reachable from it through straight runs, gravity
// pulls the survivors down and fresh cells drop in from the top. Large
// groups leave behind bomb and disco pieces.
package gridmatch

import (
	"errors"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridmatch/internal/config"
	"github.com/vovakirdan/gridmatch/internal/core"
	"github.com/vovakirdan/gridmatch/internal/games/gridmatch/board"
	"github.com/vovakirdan/gridmatch/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeTimed Mode = "timed"
	ModeZen   Mode = "zen"
)

// EndReason records why a game finished.
type EndReason string

const (
	EndNone     EndReason = ""
	EndTime     EndReason = "time"
	EndDeadlock EndReason = "deadlock"
	EndFault    EndReason = "fault"
)

const (
	hintSeconds     = 2
	rebuildAttempts = 10
)

// Game implements the GridMatch board game.
type Game struct {
	mode       Mode
	cfg        config.GridMatchConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	engine  *board.Engine
	pool    *board.Pool
	palette *board.RandomPalette
	colors  []core.Color

	score *scoreKeeper
	clock *countdown
	life  *lifecycle

	cursor    board.Coord
	hint      *board.Coord
	hintTicks int
	last      board.Resolution
	moves     int
	specials  int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	reason   EndReason
	fault    error
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset = config.DifficultyNormal
	boardColumns     int
	boardRows        int
	randomSize       bool
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetBoardSize overrides the configured board size. Zero keeps the config value.
func SetBoardSize(columns, rows int) {
	boardColumns = columns
	boardRows = rows
}

// GetBoardSize returns the board size override.
func GetBoardSize() (columns, rows int) {
	return boardColumns, boardRows
}

// SetRandomSize makes every reset pick a random board size.
func SetRandomSize(enabled bool) {
	randomSize = enabled
}

// SetLogger routes engine logging. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new timed GridMatch game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewZen creates a GridMatch game without a clock; it ends only on deadlock.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("gridmatch", func() registry.Game {
		return New()
	})
	registry.Register("gridmatch_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "gridmatch_zen"
	}
	return "gridmatch"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "GridMatch (Zen)"
	}
	return "GridMatch"
}

// loadConfig loads the YAML config and applies the selected preset.
func loadConfig() config.GridMatchConfig {
	cfg, err := config.LoadGridMatch(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultGridMatchConfig()
	}
	config.ApplyGridMatchPreset(&cfg, difficultyPreset)
	return cfg
}

// RandomizeSize picks columns and rows uniformly from [5, 16), clamped to
// the configured size range.
func RandomizeSize(rng *rand.Rand, b config.BoardConfig) (columns, rows int) {
	return b.Clamp(5+rng.Intn(11), 5+rng.Intn(11))
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.resetWith(cfg)
}

// resetWith restarts the game using the already loaded g.cfg.
func (g *Game) resetWith(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.reason = EndNone
	g.fault = nil
	g.hint = nil
	g.hintTicks = 0
	g.last = board.Resolution{}
	g.moves = 0
	g.specials = 0

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	columns, rows := g.boardSize()
	g.colors = resolveColors(g.cfg.Palette.ColorsForArea(columns * rows))
	g.palette = board.NewRandomPalette(len(g.colors), g.rng)
	g.pool = board.NewPool(2*columns*rows + 1)

	g.score = &scoreKeeper{}
	g.clock = newCountdown(g.cfg.Timer, g.mode == ModeTimed)
	g.life = &lifecycle{active: true}

	rules := board.Rules{
		BombMin:        g.cfg.Specials.BombMin,
		DiscoMin:       g.cfg.Specials.DiscoMin,
		BombTimeBonus:  g.cfg.Specials.BombTimeBonus,
		DiscoTimeBonus: g.cfg.Specials.DiscoTimeBonus,
	}
	g.engine = board.NewEngine(nil, board.Collaborators{
		Allocator: g.pool,
		Palette:   g.palette,
		Score:     g.score,
		Timer:     g.clock,
		Lifecycle: g.life,
	}, board.WithRules(rules), board.WithLogger(logger))

	if err := g.rebuild(columns, rows); err != nil {
		g.setFault(err)
		return
	}
	g.cursor = board.C(columns/2, rows/2)
	g.checkScreenSize()
}

// boardSize returns the size for the next board.
func (g *Game) boardSize() (int, int) {
	if randomSize || g.cfg.Board.Random {
		return RandomizeSize(g.rng, g.cfg.Board)
	}
	columns, rows := g.cfg.Board.Columns, g.cfg.Board.Rows
	if boardColumns > 0 {
		columns = boardColumns
	}
	if boardRows > 0 {
		rows = boardRows
	}
	return g.cfg.Board.Clamp(columns, rows)
}

// rebuild populates a fresh board, retrying while the deal has no match.
func (g *Game) rebuild(columns, rows int) error {
	for attempt := 0; attempt < rebuildAttempts; attempt++ {
		if err := g.engine.Rebuild(columns, rows); err != nil {
			return err
		}
		if board.AnyMatchPossible(g.engine.Grid()) {
			return nil
		}
	}
	logger.Warn("dealt board has no moves", "columns", columns, "rows", rows)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.life.over {
		g.paused = !g.paused
	}
	if g.paused || g.life.over {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	if in.Click != nil {
		if c, ok := g.cellAtScreen(in.Click.X, in.Click.Y); ok {
			g.cursor = c
			g.trigger(c)
		}
	} else if in.Has(core.ActionConfirm) {
		g.trigger(g.cursor)
	}

	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}

	g.drainClock()

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input. Row 0 is at the bottom, so up
// increases the row.
func (g *Game) moveCursor(in core.InputFrame) {
	columns, rows := g.engine.Grid().Dimensions()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row++
	case in.Has(core.ActionDown):
		g.cursor.Row--
	case in.Has(core.ActionLeft):
		g.cursor.Column--
	case in.Has(core.ActionRight):
		g.cursor.Column++
	}
	g.cursor.Column = core.Clamp(g.cursor.Column, 0, columns-1)
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, rows-1)
}

func (g *Game) showHint() {
	c, ok := board.FindHint(g.engine.Grid())
	if !ok {
		return
	}
	g.hint = &c
	g.hintTicks = hintSeconds * g.tickRate
}

// Trigger resolves a cell as if the player had selected it. It is exposed
// for headless drivers such as the simulator.
func (g *Game) Trigger(c board.Coord) (board.Resolution, error) {
	if g.life.over {
		return board.Resolution{Trigger: c}, board.ErrDeadlocked
	}
	return g.trigger(c)
}

func (g *Game) trigger(c board.Coord) (board.Resolution, error) {
	res, err := g.engine.Resolve(c)
	if err != nil {
		switch {
		case errors.Is(err, board.ErrBusy), errors.Is(err, board.ErrDeadlocked), errors.Is(err, board.ErrOutOfBounds):
		default:
			g.setFault(err)
		}
		return res, err
	}
	if !res.Matched {
		return res, nil
	}

	g.last = res
	g.moves++
	g.hint = nil
	g.hintTicks = 0
	if res.Intent != nil {
		g.specials++
	}

	for _, act := range res.Activations {
		if act.Cleared > 0 {
			g.score.addBonus(res.Cleared, g.scoreBonus(act.Kind))
		}
	}
	g.clock.credit(float64(res.Cleared) * g.cfg.Timer.MatchBonusSeconds)

	if res.Deadlock {
		g.reason = EndDeadlock
	}
	return res, nil
}

// scoreBonus returns the cleared-count multiplier for a fired special.
func (g *Game) scoreBonus(kind board.Kind) float64 {
	switch kind {
	case board.KindAreaClear:
		return g.cfg.Specials.BombScoreBonus
	case board.KindColorClear:
		return g.cfg.Specials.DiscoScoreBonus
	default:
		return 0
	}
}

// drainClock counts the timer down by one tick, scaled by difficulty.
func (g *Game) drainClock() {
	if !g.clock.enabled {
		return
	}
	rate := g.difficulty.DrainRate(g.score.total, int(g.tick))
	g.clock.drain(rate / float64(g.tickRate))
	if g.clock.expired() {
		g.reason = EndTime
		g.life.EndActiveState()
		g.life.StartGameOverState()
	}
}

// setFault ends the game on an unrecoverable engine error.
func (g *Game) setFault(err error) {
	logger.Error("game stopped", "game", g.ID(), "error", err)
	g.fault = err
	g.reason = EndFault
	g.life.EndActiveState()
	g.life.StartGameOverState()
}

// Board returns the live grid.
func (g *Game) Board() *board.Grid {
	return g.engine.Grid()
}

// Hint returns a cell that would produce a match.
func (g *Game) Hint() (board.Coord, bool) {
	return board.FindHint(g.engine.Grid())
}

// Reason returns why the game ended, or EndNone while it is running.
func (g *Game) Reason() EndReason {
	return g.reason
}

// Moves returns the number of successful matches.
func (g *Game) Moves() int {
	return g.moves
}

// SpecialsSpawned returns how many bomb and disco pieces were created.
func (g *Game) SpecialsSpawned() int {
	return g.specials
}

// Summary reports moves, board size and end reason for score storage.
func (g *Game) Summary() core.GameSummary {
	s := core.GameSummary{Moves: g.moves, EndReason: string(g.reason)}
	if g.engine != nil && g.engine.Grid() != nil {
		s.Columns, s.Rows = g.engine.Grid().Dimensions()
	}
	return s
}

// TimeLeft returns the remaining seconds on the clock.
func (g *Game) TimeLeft() float64 {
	return g.clock.remaining
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.frame.W || g.screenH < l.frame.H+hudHeight+footerHeight
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.total,
		GameOver: g.life.over,
		Paused:   g.paused || g.tooSmall,
	}
}

// resolveColors maps config color names to screen colors. Unknown names
// fall back to white so the palette size matches the config.
func resolveColors(names []string) []core.Color {
	colors := make([]core.Color, 0, len(names))
	for _, name := range names {
		c, ok := core.ParseColor(name)
		if !ok {
			logger.Warn("unknown palette color", "color", name)
			c = core.ColorWhite
		}
		colors = append(colors, c)
	}
	return colors
}

// floorScore returns floor(count * bonus).
func floorScore(count int, bonus float64) int {
	return int(math.Floor(float64(count) * bonus))
}
