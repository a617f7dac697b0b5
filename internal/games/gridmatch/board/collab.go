package board

// Allocator supplies cell entities. Acquire must return an alive cell or
// ErrAllocationExhausted; it is never retried by the engine.
type Allocator interface {
	Acquire(kind Kind) (Cell, error)
	Release(cell Cell)
}

// Palette chooses colors for newly allocated normal cells.
type Palette interface {
	// Size returns the number of colors; valid color indices are [0, Size).
	Size() int
	// Next returns the color for the next fresh cell.
	Next() int
}

// ScoreSink receives the matched-cell count once per committed resolution.
type ScoreSink interface {
	AddScore(matched int)
}

// TimerSink receives time bonuses when a special effect fires. color is -1
// when the effect is not tied to a color.
type TimerSink interface {
	AddTimeBonus(amount float64, color int)
}

// Lifecycle is told when the board deadlocks.
type Lifecycle interface {
	EndActiveState()
	StartGameOverState()
}

// Collaborators bundles the external systems the engine talks to.
// Score, Timer and Lifecycle may be nil.
type Collaborators struct {
	Allocator Allocator
	Palette   Palette
	Score     ScoreSink
	Timer     TimerSink
	Lifecycle Lifecycle
}

type nopScore struct{}

func (nopScore) AddScore(int) {}

type nopTimer struct{}

func (nopTimer) AddTimeBonus(float64, int) {}

type nopLifecycle struct{}

func (nopLifecycle) EndActiveState()     {}
func (nopLifecycle) StartGameOverState() {}
