package board

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/suite"
)

type EngineSuite struct {
	suite.Suite
	pool      *Pool
	score     *scoreSpy
	timer     *timerSpy
	lifecycle *lifecycleSpy
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.score = &scoreSpy{}
	s.timer = &timerSpy{}
	s.lifecycle = &lifecycleSpy{}
}

func (s *EngineSuite) newEngine(g *Grid, capacity int, palette Palette, opts ...Option) *Engine {
	s.pool = countingPool(g, capacity)
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return NewEngine(g, Collaborators{
		Allocator: s.pool,
		Palette:   palette,
		Score:     s.score,
		Timer:     s.timer,
		Lifecycle: s.lifecycle,
	}, opts...)
}

func (s *EngineSuite) cellAt(e *Engine, c Coord) Cell {
	cell, err := e.Grid().At(c)
	s.Require().NoError(err)
	return cell
}

// Resolve tests

func (s *EngineSuite) TestColorClearOnLargeGroup() {
	g := gridFromRows(s.T(),
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00010000",
		"00000000",
		"00000000",
		"00000000",
	)
	e := s.newEngine(g, 1000, &seqPalette{size: 2, colors: []int{0}})

	res, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)

	s.True(res.Matched)
	s.Equal(63, res.GroupSize)
	s.Equal(63, res.Cleared)
	s.Equal(KindColorClear, res.Special)
	s.Require().NotNil(res.Intent)
	s.Equal(SpecialIntent{Kind: KindColorClear, Color: 0, Position: C(0, 0)}, *res.Intent)
	s.Equal([]int{63}, s.score.calls)
	s.False(res.Deadlock)

	s.Equal(0, e.Grid().DeadCount())
	spawned := s.cellAt(e, C(0, 0))
	s.Equal(KindColorClear, spawned.Kind)
	s.Equal(0, spawned.Color)
	s.Equal(1, s.cellAt(e, C(3, 0)).Color, "the lone survivor falls to the bottom")
	s.Equal(64, s.pool.InUse())
	s.Equal(PhaseIdle, e.Phase())
	s.Empty(s.lifecycle.events)
}

func (s *EngineSuite) TestAreaClearOnRowOfSix() {
	g := gridFromRows(s.T(),
		"121212",
		"212121",
		"000000",
	)
	rules := DefaultRules()
	rules.BombTimeBonus = 2
	e := s.newEngine(g, 1000, &seqPalette{size: 4, colors: []int{3}}, WithRules(rules))

	res, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)

	s.Equal(6, res.GroupSize)
	s.Equal(KindAreaClear, res.Special)
	s.Require().Len(res.Activations, 1)
	s.Equal(2, res.Activations[0].Cleared, "column 0 above the trigger")
	s.Equal(8, res.Cleared)
	s.Equal([]int{8}, s.score.calls)
	s.Equal([]bonus{{2, -1}}, s.timer.bonuses)

	spawned := s.cellAt(e, C(0, 0))
	s.Equal(KindAreaClear, spawned.Kind)
	s.Equal(0, spawned.Color)
	s.Equal(1, s.cellAt(e, C(1, 0)).Color, "column 1 shifted down one row")
	s.Equal(2, s.cellAt(e, C(1, 1)).Color)
	s.Equal(3, s.cellAt(e, C(1, 2)).Color)
	s.False(res.Deadlock)
	s.Empty(s.lifecycle.events)
}

func (s *EngineSuite) TestIsolatedCellIsNoop() {
	g := gridFromRows(s.T(),
		"121",
		"212",
		"121",
	)
	before := g.Clone()
	e := s.newEngine(g, 1000, &seqPalette{size: 3, colors: []int{0}})

	res, err := e.Resolve(C(1, 1))
	s.Require().NoError(err)

	s.False(res.Matched)
	s.Equal(1, res.GroupSize)
	s.Empty(s.score.calls)
	s.True(before.Equal(e.Grid()))
	s.Equal(PhaseIdle, e.Phase())
}

func (s *EngineSuite) TestSpecialInsideGroupFires() {
	g := gridFromRows(s.T(),
		"2121",
		"1212",
		"0012",
	)
	g.cell(C(1, 0)).Kind = KindAreaClear
	rules := DefaultRules()
	rules.BombTimeBonus = 3
	e := s.newEngine(g, 1000, &seqPalette{size: 3, colors: []int{0, 1, 2}}, WithRules(rules))

	res, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)

	s.Equal(2, res.GroupSize)
	s.Equal(KindNormal, res.Special)
	s.Nil(res.Intent)
	s.Require().Len(res.Activations, 1)
	s.Equal(C(1, 0), res.Activations[0].Position)
	s.Equal(4, res.Activations[0].Cleared)
	s.Equal(6, res.Cleared)
	s.Equal([]bonus{{3, -1}}, s.timer.bonuses)
}

func (s *EngineSuite) TestLoneSpecialIsNoop() {
	g := gridFromRows(s.T(),
		"123",
		"405",
		"678",
	)
	g.cell(C(1, 1)).Kind = KindAreaClear
	before := g.Clone()
	rules := DefaultRules()
	rules.BombTimeBonus = 5
	e := s.newEngine(g, 1000, &seqPalette{size: 9, colors: []int{0}}, WithRules(rules))

	res, err := e.Resolve(C(1, 1))
	s.Require().NoError(err)

	s.False(res.Matched)
	s.Equal(1, res.GroupSize)
	s.Zero(res.Cleared)
	s.Empty(res.Activations)
	s.Empty(s.score.calls)
	s.Empty(s.timer.bonuses)
	s.True(before.Equal(e.Grid()))
	s.Equal(9, s.pool.InUse())
}

func (s *EngineSuite) TestSpecialTriggerFiresOnce() {
	g := gridFromRows(s.T(),
		"122222",
		"000000",
	)
	g.cell(C(0, 0)).Kind = KindAreaClear
	rules := DefaultRules()
	rules.BombTimeBonus = 3
	e := s.newEngine(g, 1000, &seqPalette{size: 3, colors: []int{1, 2}}, WithRules(rules))

	res, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)

	s.Equal(6, res.GroupSize)
	s.Require().Len(res.Activations, 1)
	s.Equal(Activation{Kind: KindAreaClear, Color: 0, Position: C(0, 0), Cleared: 1}, res.Activations[0])
	s.Equal(7, res.Cleared)
	s.Equal([]int{7}, s.score.calls)
	s.Equal([]bonus{{3, -1}}, s.timer.bonuses)
}

func (s *EngineSuite) TestEmptyBlastGrantsNoTimeBonus() {
	g := gridFromRows(s.T(), "000000")
	g.cell(C(0, 0)).Kind = KindAreaClear
	rules := DefaultRules()
	rules.BombTimeBonus = 3
	e := s.newEngine(g, 1000, &seqPalette{size: 3, colors: []int{1, 2}}, WithRules(rules))

	res, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)

	s.True(res.Matched)
	s.Require().Len(res.Activations, 1)
	s.Zero(res.Activations[0].Cleared)
	s.Equal([]int{6}, s.score.calls)
	s.Empty(s.timer.bonuses)
}

func (s *EngineSuite) TestLoneSpecialWithNoTargetsIsNoop() {
	g := gridFromRows(s.T(), "0")
	g.cell(C(0, 0)).Kind = KindAreaClear
	before := g.Clone()
	e := s.newEngine(g, 1000, &seqPalette{size: 1, colors: []int{0}})

	res, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)
	s.False(res.Matched)
	s.True(before.Equal(e.Grid()))
	s.Equal(1, s.pool.InUse())
}

func (s *EngineSuite) TestDeadlockNotifiesLifecycleOnce() {
	g := gridFromRows(s.T(),
		"12",
		"00",
	)
	e := s.newEngine(g, 1000, &seqPalette{size: 3, colors: []int{2, 1}})

	res, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)

	s.True(res.Deadlock)
	s.Equal([]string{"21", "12"}, colorsOf(e.Grid()))
	s.Equal([]string{"end", "gameover"}, s.lifecycle.events)
	s.Equal(PhaseDeadlock, e.Phase())

	_, err = e.Resolve(C(1, 1))
	s.ErrorIs(err, ErrDeadlocked)
	s.Len(s.lifecycle.events, 2)
}

func (s *EngineSuite) TestAllocationExhaustedLeavesGridUnchanged() {
	g := gridFromRows(s.T(),
		"121",
		"000",
	)
	before := g.Clone()
	// Room for two of the three replacements.
	e := s.newEngine(g, g.Area()+2, &seqPalette{size: 3, colors: []int{1}})

	_, err := e.Resolve(C(0, 0))
	s.Require().ErrorIs(err, ErrAllocationExhausted)

	s.True(before.Equal(e.Grid()))
	s.Equal(g.Area(), s.pool.InUse())
	s.Empty(s.score.calls)
	s.Empty(s.lifecycle.events)
	s.False(e.Busy())
	s.Equal(PhaseIdle, e.Phase())
}

func (s *EngineSuite) TestReentrantResolveIsBusy() {
	g := gridFromRows(s.T(),
		"00",
		"00",
	)
	e := s.newEngine(g, 1000, &seqPalette{size: 1, colors: []int{0}})

	var inner error
	s.score.hook = func() {
		_, inner = e.Resolve(C(1, 1))
	}

	_, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)
	s.ErrorIs(inner, ErrBusy)
	s.Equal([]int{4}, s.score.calls)
	s.False(e.Busy())
}

func (s *EngineSuite) TestInvalidColorRejected() {
	g := gridFromRows(s.T(),
		"12",
		"00",
	)
	before := g.Clone()
	e := s.newEngine(g, 1000, &seqPalette{size: 2, colors: []int{0}})

	_, err := e.Resolve(C(1, 1))
	s.ErrorIs(err, ErrInvalidColorState)
	s.True(before.Equal(e.Grid()))
}

func (s *EngineSuite) TestInvalidColorInBlastRejected() {
	g := gridFromRows(s.T(),
		"922222",
		"000000",
	)
	before := g.Clone()
	e := s.newEngine(g, 1000, &seqPalette{size: 3, colors: []int{1}})

	_, err := e.Resolve(C(0, 0))
	s.Require().ErrorIs(err, ErrInvalidColorState)

	s.True(before.Equal(e.Grid()))
	s.Empty(s.score.calls)
	s.Equal(g.Area(), s.pool.InUse())
	s.False(e.Busy())
	s.Equal(PhaseIdle, e.Phase())
}

func (s *EngineSuite) TestOutOfBoundsTrigger() {
	g := gridFromRows(s.T(), "00")
	e := s.newEngine(g, 1000, &seqPalette{size: 1, colors: []int{0}})

	_, err := e.Resolve(C(5, 0))
	s.ErrorIs(err, ErrOutOfBounds)
	var be *BoundsError
	s.ErrorAs(err, &be)
}

// Rebuild tests

func (s *EngineSuite) TestRebuildPopulatesAndClearsDeadlock() {
	g := gridFromRows(s.T(),
		"12",
		"00",
	)
	e := s.newEngine(g, 1000, &seqPalette{size: 3, colors: []int{2, 1}})
	_, err := e.Resolve(C(0, 0))
	s.Require().NoError(err)
	s.Require().Equal(PhaseDeadlock, e.Phase())

	s.Require().NoError(e.Rebuild(5, 6))

	cols, rows := e.Grid().Dimensions()
	s.Equal(5, cols)
	s.Equal(6, rows)
	s.Equal(0, e.Grid().DeadCount())
	s.Equal(30, s.pool.InUse())
	s.Equal(PhaseIdle, e.Phase())
}

func (s *EngineSuite) TestRebuildRejectsBadDimensions() {
	g := gridFromRows(s.T(), "00")
	e := s.newEngine(g, 1000, &seqPalette{size: 1, colors: []int{0}})

	s.ErrorIs(e.Rebuild(0, 4), ErrInvalidDimensions)
	s.Same(g, e.Grid())
}

func (s *EngineSuite) TestFailedRebuildKeepsBoard() {
	g := gridFromRows(s.T(),
		"01",
		"10",
	)
	before := g.Clone()
	e := s.newEngine(g, 4, &seqPalette{size: 2, colors: []int{0}})

	err := e.Rebuild(3, 3)
	s.Require().ErrorIs(err, ErrAllocationExhausted)

	s.Same(g, e.Grid())
	s.True(before.Equal(e.Grid()))
	s.Equal(4, s.pool.InUse())
}

func TestPopulateRollsBackOnExhaustion(t *testing.T) {
	g, _ := NewGrid(2, 2)
	pool := NewPool(3)

	err := Populate(g, pool, &seqPalette{size: 1, colors: []int{0}})
	if err == nil {
		t.Fatal("expected allocation error")
	}
	if pool.InUse() != 0 {
		t.Errorf("InUse = %d, want 0 after rollback", pool.InUse())
	}
	if g.DeadCount() != 4 {
		t.Errorf("DeadCount = %d, want 4", g.DeadCount())
	}
}
