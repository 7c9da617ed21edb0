package simulation

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"flowcast/internal/stats"
)

// sampleWindow is the fixed number of throughput draws per trial. A trial
// that cannot clear the backlog within this window is discarded: an
// effectively infinite forecast horizon for that realization.
const sampleWindow = 100

const (
	warnSynthetic  = "throughput was synthesized from mean cycle time because no resolution dates were available; treat this forecast as low-confidence"
	warnNoForecast = "no trial cleared the remaining backlog within the sampling window; the backlog is unforecastable at observed throughput"
)

// Config holds the simulation parameters.
type Config struct {
	// Trials is the number of Monte Carlo trials. Zero runs nothing and
	// yields an empty result.
	Trials int
	// Seed makes runs reproducible. Each trial derives its own generator
	// from Seed, so results are identical regardless of worker layout.
	Seed int64
	// Now anchors completion dates. Zero means time.Now().
	Now time.Time
	// CycleTimes is the raw cycle-time sample, carried into the result for
	// diagnostics.
	CycleTimes []int
}

// Engine runs the Monte Carlo forecast over a throughput series.
type Engine struct {
	series stats.ThroughputSeries
	cfg    Config
}

func NewEngine(series stats.ThroughputSeries, cfg Config) *Engine {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	return &Engine{series: series, cfg: cfg}
}

// Run simulates how long it takes to clear remaining backlog items and
// summarizes the resulting completion-date distribution.
//
// Trials are independent and run in parallel; the context is checked
// between trials, and the merge happens only after every worker finishes.
func (e *Engine) Run(ctx context.Context, remaining int) (*ForecastResult, error) {
	res := &ForecastResult{
		Series:     e.series,
		CycleTimes: e.cfg.CycleTimes,
	}
	if e.series.Synthetic {
		res.Warnings = append(res.Warnings, warnSynthetic)
	}

	pool := e.series.Pool()
	if len(pool) == 0 || e.cfg.Trials <= 0 {
		res.Percentiles = SummarizePercentiles(nil)
		return res, nil
	}

	today := time.Date(e.cfg.Now.Year(), e.cfg.Now.Month(), e.cfg.Now.Day(), 0, 0, 0, 0, e.cfg.Now.Location())
	periodDays := e.series.Period.Days()

	// periods[i] < 0 marks a discarded trial.
	periods := make([]int, e.cfg.Trials)

	g, ctx := errgroup.WithContext(ctx)
	workers := runtime.GOMAXPROCS(0)
	chunk := (e.cfg.Trials + workers - 1) / workers

	for start := 0; start < e.cfg.Trials; start += chunk {
		end := start + chunk
		if end > e.cfg.Trials {
			end = e.cfg.Trials
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := rand.New(rand.NewSource(e.cfg.Seed + int64(i)))
				k, ok := SimulatePeriods(float64(remaining), sampleWindow, func() float64 {
					return pool[rng.Intn(len(pool))]
				})
				if ok {
					periods[i] = k
				} else {
					periods[i] = -1
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, k := range periods {
		if k < 0 {
			continue
		}
		res.Dates = append(res.Dates, today.AddDate(0, 0, k*periodDays))
	}
	sort.Slice(res.Dates, func(i, j int) bool { return res.Dates[i].Before(res.Dates[j]) })

	if len(res.Dates) == 0 {
		res.Warnings = append(res.Warnings, warnNoForecast)
	}
	res.Percentiles = SummarizePercentiles(res.Dates)

	return res, nil
}

// SimulatePeriods draws up to window throughput values and accumulates them
// until the running sum reaches remaining. It returns the zero-based index
// of the first draw whose cumulative sum reaches or exceeds remaining; ties
// at exact equality resolve to that earliest bucket. The second return is
// false when the window is exhausted first.
//
// remaining <= 0 resolves at index 0: the first cumulative value of a
// positive pool already covers an empty backlog.
func SimulatePeriods(remaining float64, window int, draw func() float64) (int, bool) {
	if remaining <= 0 {
		return 0, true
	}
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += draw()
		if sum >= remaining {
			return i, true
		}
	}
	return 0, false
}
