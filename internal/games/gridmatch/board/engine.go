package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Phase is a step of the resolution cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseExpanding
	PhaseClassifying
	PhaseCommitting
	PhaseFilling
	PhaseSpecialSpawn
	PhasePossibilityCheck
	PhaseDeadlock
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExpanding:
		return "expanding"
	case PhaseClassifying:
		return "classifying"
	case PhaseCommitting:
		return "committing"
	case PhaseFilling:
		return "filling"
	case PhaseSpecialSpawn:
		return "special_spawn"
	case PhasePossibilityCheck:
		return "possibility_check"
	case PhaseDeadlock:
		return "deadlock"
	default:
		return "unknown"
	}
}

// Resolution summarizes one resolution cycle.
type Resolution struct {
	Trigger     Coord
	Matched     bool           // False when the trigger produced no match
	GroupSize   int            // Size of the match group, trigger included
	Cleared     int            // Cells removed: group plus special effects
	Special     Kind           // Classification of the group size
	Intent      *SpecialIntent // Special piece spawned after the refill
	Activations []Activation
	Deadlock    bool
}

// Engine runs resolution cycles against a grid. It is not safe for
// concurrent use; a trigger arriving mid-cycle is rejected with ErrBusy.
type Engine struct {
	grid      *Grid
	alloc     Allocator
	palette   Palette
	score     ScoreSink
	timer     TimerSink
	lifecycle Lifecycle
	rules     Rules
	logger    *log.Logger

	phase Phase
	busy  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules overrides the special piece rules.
func WithRules(r Rules) Option {
	return func(e *Engine) {
		e.rules = r
	}
}

// WithLogger sets the logger used for resolution tracing and failures.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine over grid. Allocator and Palette are required.
func NewEngine(grid *Grid, collab Collaborators, opts ...Option) *Engine {
	e := &Engine{
		grid:      grid,
		alloc:     collab.Allocator,
		palette:   collab.Palette,
		score:     collab.Score,
		timer:     collab.Timer,
		lifecycle: collab.Lifecycle,
		rules:     DefaultRules(),
		logger:    log.New(io.Discard),
	}
	if e.score == nil {
		e.score = nopScore{}
	}
	if e.timer == nil {
		e.timer = nopTimer{}
	}
	if e.lifecycle == nil {
		e.lifecycle = nopLifecycle{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the grid the engine is resolving against.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Phase returns the current phase. Outside Resolve it is Idle or Deadlock.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Busy reports whether a resolution cycle is in progress.
func (e *Engine) Busy() bool {
	return e.busy
}

// Rules returns the special piece rules in effect.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Populate fills every slot of g with a fresh normal cell. On failure the
// cells acquired so far are released and the grid is left empty.
func Populate(g *Grid, alloc Allocator, palette Palette) error {
	for i := range g.cells {
		cell, err := alloc.Acquire(KindNormal)
		if err != nil {
			for j := 0; j < i; j++ {
				alloc.Release(g.cells[j])
				g.cells[j] = Cell{Position: g.cells[j].Position}
			}
			return fmt.Errorf("populate board: %w", err)
		}
		cell.Color = palette.Next()
		cell.Position = g.cells[i].Position
		g.cells[i] = cell
	}
	return nil
}

// Rebuild discards the current grid and populates a new one of the given
// size. It clears a deadlock. The old grid is released only once the new
// one is fully populated, so a failed rebuild keeps the current board.
func (e *Engine) Rebuild(columns, rows int) error {
	if e.busy {
		return ErrBusy
	}
	g, err := NewGrid(columns, rows)
	if err != nil {
		return err
	}
	if err := Populate(g, e.alloc, e.palette); err != nil {
		e.logger.Error("board rebuild failed", "columns", columns, "rows", rows, "error", err)
		return err
	}
	if e.grid != nil {
		e.grid.Each(func(c Cell) {
			if c.Alive {
				e.alloc.Release(c)
			}
		})
	}
	e.grid = g
	e.phase = PhaseIdle
	return nil
}

// selection is the set of cells committed to the current resolution.
type selection struct {
	order []Coord
	set   map[Coord]struct{}
}

func newSelection(cells []Coord) *selection {
	s := &selection{set: make(map[Coord]struct{}, len(cells))}
	for _, c := range cells {
		s.add(c)
	}
	return s
}

func (s *selection) add(c Coord) {
	if _, ok := s.set[c]; ok {
		return
	}
	s.set[c] = struct{}{}
	s.order = append(s.order, c)
}

func (s *selection) contains(c Coord) bool {
	_, ok := s.set[c]
	return ok
}

// reservation holds the cells acquired for the refill before anything is removed.
type reservation struct {
	normals []Cell
	special *Cell
	next    int
}

// Resolve runs a full resolution cycle from the trigger cell.
//
// A trigger with no run partner is a no-op, even on a special cell. Errors
// leave the grid unchanged.
func (e *Engine) Resolve(trigger Coord) (Resolution, error) {
	res := Resolution{Trigger: trigger}
	if e.busy {
		return res, ErrBusy
	}
	if e.phase == PhaseDeadlock {
		return res, ErrDeadlocked
	}

	seed, err := e.grid.At(trigger)
	if err != nil {
		return res, err
	}
	if !seed.Alive {
		return res, nil
	}
	if seed.Color < 0 || seed.Color >= e.palette.Size() {
		return res, fmt.Errorf("%w: color %d at %s", ErrInvalidColorState, seed.Color, trigger)
	}

	e.busy = true
	defer func() {
		e.busy = false
		if e.phase != PhaseDeadlock {
			e.phase = PhaseIdle
		}
	}()

	e.phase = PhaseExpanding
	group := FindMatchGroup(e.grid, trigger)
	res.GroupSize = group.Len()
	if group.Len() < 2 {
		return res, nil
	}

	e.phase = PhaseClassifying
	sel := newSelection(group.Members())
	var intent *SpecialIntent
	res.Special = e.rules.Classify(group.Len())
	if res.Special.IsSpecial() {
		intent = &SpecialIntent{Kind: res.Special, Color: seed.Color, Position: trigger}
		res.Activations = append(res.Activations, e.activate(res.Special, seed.Color, trigger, sel))
	}
	for _, c := range group.Members() {
		if intent != nil && c == trigger {
			continue
		}
		cell := e.grid.cell(c)
		if cell.Kind.IsSpecial() {
			res.Activations = append(res.Activations, e.activate(cell.Kind, cell.Color, c, sel))
		}
	}
	for _, c := range sel.order {
		if color := e.grid.cell(c).Color; color < 0 || color >= e.palette.Size() {
			return res, fmt.Errorf("%w: color %d at %s", ErrInvalidColorState, color, c)
		}
	}

	e.phase = PhaseCommitting
	resv, err := e.reserve(len(sel.order), intent)
	if err != nil {
		e.logger.Error("resolution aborted", "trigger", trigger, "cells", len(sel.order), "error", err)
		return res, fmt.Errorf("resolve %s: %w", trigger, err)
	}
	for _, c := range sel.order {
		cell := e.grid.cell(c)
		cell.Selected = true
		cell.Alive = false
	}
	res.Matched = true
	res.Cleared = len(sel.order)
	e.score.AddScore(res.Cleared)
	for _, act := range res.Activations {
		e.grantBonus(act)
	}

	e.phase = PhaseFilling
	for _, c := range sel.order {
		e.alloc.Release(*e.grid.cell(c))
	}
	Fill(e.grid, func() Cell {
		cell := resv.normals[resv.next]
		resv.next++
		cell.Color = e.palette.Next()
		return cell
	})

	e.phase = PhaseSpecialSpawn
	if intent != nil {
		e.alloc.Release(*e.grid.cell(intent.Position))
		special := *resv.special
		special.Color = intent.Color
		//nolint:errcheck // Position came from the grid
		e.grid.Set(intent.Position, special)
		res.Intent = intent
	}

	e.phase = PhasePossibilityCheck
	if !AnyMatchPossible(e.grid) {
		e.phase = PhaseDeadlock
		res.Deadlock = true
		e.lifecycle.EndActiveState()
		e.lifecycle.StartGameOverState()
	}

	e.logger.Debug("resolved",
		"trigger", trigger,
		"group", res.GroupSize,
		"cleared", res.Cleared,
		"special", res.Special,
		"activations", len(res.Activations),
		"deadlock", res.Deadlock,
	)
	return res, nil
}

// activate adds the targets of a special effect to the selection.
func (e *Engine) activate(kind Kind, color int, pos Coord, sel *selection) Activation {
	targets := effectTargets(e.grid, kind, color, pos, sel.contains)
	for _, c := range targets {
		sel.add(c)
	}
	return Activation{Kind: kind, Color: color, Position: pos, Cleared: len(targets)}
}

// grantBonus forwards the time bonus for an effect that cleared something.
func (e *Engine) grantBonus(act Activation) {
	if act.Cleared == 0 {
		return
	}
	switch act.Kind {
	case KindAreaClear:
		if e.rules.BombTimeBonus > 0 {
			e.timer.AddTimeBonus(e.rules.BombTimeBonus, -1)
		}
	case KindColorClear:
		if e.rules.DiscoTimeBonus > 0 {
			e.timer.AddTimeBonus(e.rules.DiscoTimeBonus, act.Color)
		}
	}
}

// reserve acquires every cell the refill will need. If any acquisition
// fails, everything acquired so far is released.
func (e *Engine) reserve(count int, intent *SpecialIntent) (*reservation, error) {
	resv := &reservation{normals: make([]Cell, 0, count)}
	rollback := func() {
		for _, c := range resv.normals {
			e.alloc.Release(c)
		}
	}
	for i := 0; i < count; i++ {
		cell, err := e.alloc.Acquire(KindNormal)
		if err != nil {
			rollback()
			return nil, err
		}
		resv.normals = append(resv.normals, cell)
	}
	if intent != nil {
		cell, err := e.alloc.Acquire(intent.Kind)
		if err != nil {
			rollback()
			return nil, err
		}
		resv.special = &cell
	}
	return resv, nil
}
