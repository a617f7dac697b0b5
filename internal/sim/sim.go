// Package sim plays GridMatch headlessly to measure how a configuration
// balances: every move triggers the first hinted cell until the board
// deadlocks or a move cap is hit.
package sim

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/gridmatch/internal/core"
	"github.com/vovakirdan/gridmatch/internal/games/gridmatch"
	"github.com/vovakirdan/gridmatch/internal/games/gridmatch/board"
)

var (
	ErrNoGames   = errors.New("sim: games must be > 0")
	ErrNoWorkers = errors.New("sim: workers must be > 0")
	ErrNoMoves   = errors.New("sim: max moves must be > 0")
)

// Options controls a simulation run.
type Options struct {
	Games        int
	MaxMoves     int
	Workers      int
	Seed         int64 // game i is dealt with Seed+i
	ShowProgress bool
	Progress     io.Writer // defaults to the bar's stderr output
}

// DefaultOptions returns a small single-worker run.
func DefaultOptions() Options {
	return Options{Games: 100, MaxMoves: 500, Workers: 1, Seed: 1}
}

// Outcome is the result of one simulated game.
type Outcome struct {
	Seed       int64
	Score      int
	Moves      int
	Specials   int
	Columns    int
	Rows       int
	Deadlocked bool
}

// Report aggregates a run.
type Report struct {
	Games        int
	MeanScore    float64
	StdDevScore  float64
	MedianScore  float64
	P90Score     float64
	MinScore     int
	MaxScore     int
	MeanMoves    float64
	MeanSpecials float64
	DeadlockRate float64
	Elapsed      time.Duration
	Outcomes     []Outcome
}

// Run plays opts.Games zen games across opts.Workers goroutines.
func Run(opts Options) (*Report, error) {
	switch {
	case opts.Games < 1:
		return nil, ErrNoGames
	case opts.Workers < 1:
		return nil, ErrNoWorkers
	case opts.MaxMoves < 1:
		return nil, ErrNoMoves
	}

	bar := pb.StartNew(opts.Games)
	switch {
	case !opts.ShowProgress:
		bar.SetWriter(io.Discard)
	case opts.Progress != nil:
		bar.SetWriter(opts.Progress)
	}

	outcomes := make([]Outcome, opts.Games)
	errs := make([]error, opts.Games)
	jobs := make(chan int, opts.Games)
	for i := range opts.Games {
		jobs <- i
	}
	close(jobs)

	wg := new(sync.WaitGroup)
	wg.Add(opts.Workers)
	for range opts.Workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i], errs[i] = Play(opts.Seed+int64(i), opts.MaxMoves)
				bar.Increment()
			}
		}()
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	r := Summarize(outcomes)
	r.Elapsed = used
	return r, nil
}

// Play runs one zen game to deadlock or maxMoves.
func Play(seed int64, maxMoves int) (Outcome, error) {
	g := gridmatch.NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 100, TickRate: 30, Seed: seed})

	out := Outcome{Seed: seed}
	if b := g.Board(); b != nil {
		out.Columns, out.Rows = b.Dimensions()
	}

	for out.Moves < maxMoves && !g.State().GameOver {
		c, ok := g.Hint()
		if !ok {
			out.Deadlocked = true
			break
		}
		res, err := g.Trigger(c)
		if err != nil {
			if errors.Is(err, board.ErrDeadlocked) {
				out.Deadlocked = true
				break
			}
			return out, fmt.Errorf("sim: seed %d move %d at %s: %w", seed, out.Moves, c, err)
		}
		if !res.Matched {
			return out, fmt.Errorf("sim: seed %d: hinted cell %s did not match", seed, c)
		}
		out.Moves = g.Moves()
	}

	if g.Reason() == gridmatch.EndDeadlock {
		out.Deadlocked = true
	}
	out.Score = g.State().Score
	out.Specials = g.SpecialsSpawned()
	return out, nil
}

// Summarize computes score statistics over outcomes.
func Summarize(outcomes []Outcome) *Report {
	r := &Report{Games: len(outcomes), Outcomes: outcomes}
	if len(outcomes) == 0 {
		return r
	}

	scores := make([]float64, len(outcomes))
	moves := make([]float64, len(outcomes))
	specials := make([]float64, len(outcomes))
	deadlocks := 0
	r.MinScore, r.MaxScore = outcomes[0].Score, outcomes[0].Score
	for i, o := range outcomes {
		scores[i] = float64(o.Score)
		moves[i] = float64(o.Moves)
		specials[i] = float64(o.Specials)
		r.MinScore = min(r.MinScore, o.Score)
		r.MaxScore = max(r.MaxScore, o.Score)
		if o.Deadlocked {
			deadlocks++
		}
	}

	r.MeanScore, r.StdDevScore = stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		r.StdDevScore = 0
	}
	sort.Float64s(scores)
	r.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
	r.P90Score = stat.Quantile(0.9, stat.Empirical, scores, nil)
	r.MeanMoves = stat.Mean(moves, nil)
	r.MeanSpecials = stat.Mean(specials, nil)
	r.DeadlockRate = float64(deadlocks) / float64(len(outcomes))
	return r
}
