package gridmatch

import "github.com/vovakirdan/gridmatch/internal/config"

// scoreKeeper receives match counts from the engine.
type scoreKeeper struct {
	total   int
	matched int // Cells cleared, without special bonuses
}

func (s *scoreKeeper) AddScore(matched int) {
	s.total += matched
	s.matched += matched
}

// addBonus adds floor(cleared * bonus) for a fired special.
func (s *scoreKeeper) addBonus(cleared int, bonus float64) {
	s.total += floorScore(cleared, bonus)
}

// countdown is the game clock. Disabled clocks accept bonuses but never
// run out.
type countdown struct {
	enabled   bool
	remaining float64
	max       float64
	lastColor int // Color of the last disco bonus, -1 for none
}

func newCountdown(cfg config.TimerConfig, timed bool) *countdown {
	return &countdown{
		enabled:   timed && cfg.Enabled,
		remaining: cfg.StartSeconds,
		max:       cfg.MaxSeconds,
		lastColor: -1,
	}
}

func (c *countdown) AddTimeBonus(amount float64, color int) {
	c.credit(amount)
	if color >= 0 {
		c.lastColor = color
	}
}

// credit adds seconds, capped at max when a max is set.
func (c *countdown) credit(seconds float64) {
	if seconds <= 0 {
		return
	}
	c.remaining += seconds
	if c.max > 0 && c.remaining > c.max {
		c.remaining = c.max
	}
}

func (c *countdown) drain(seconds float64) {
	c.remaining -= seconds
	if c.remaining < 0 {
		c.remaining = 0
	}
}

func (c *countdown) expired() bool {
	return c.enabled && c.remaining <= 0
}

// lifecycle tracks the active/game-over transitions. Repeated calls are
// idempotent.
type lifecycle struct {
	active bool
	over   bool
}

func (l *lifecycle) EndActiveState() {
	l.active = false
}

func (l *lifecycle) StartGameOverState() {
	l.over = true
}
