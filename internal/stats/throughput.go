package stats

import (
	"sort"
	"time"
)

// ThroughputBucket is the delivery volume of one calendar bucket.
// The count is fractional only in the synthetic-fallback series.
type ThroughputBucket struct {
	PeriodStart time.Time `json:"period_start"`
	Count       float64   `json:"count"`
}

// ThroughputSeries is the empirical throughput distribution the forecaster
// samples from. Zero-count buckets are excluded by construction: the series
// is a pool of plausible delivery rates, and true gaps (holidays, pauses)
// would bias the sampled pool toward no-progress scenarios.
type ThroughputSeries struct {
	Period  Period             `json:"period"`
	Buckets []ThroughputBucket `json:"buckets"`
	// Synthetic marks the degenerate single-bucket series built when no
	// resolution timestamps exist. Forecasts built on it are low-confidence.
	Synthetic bool `json:"synthetic,omitempty"`
}

// Empty reports whether there is nothing to sample from.
func (s ThroughputSeries) Empty() bool { return len(s.Buckets) == 0 }

// Pool returns the bucket counts as the sampling pool.
func (s ThroughputSeries) Pool() []float64 {
	pool := make([]float64, len(s.Buckets))
	for i, b := range s.Buckets {
		pool[i] = b.Count
	}
	return pool
}

// BuildThroughputSeries aggregates completed items into calendar buckets of
// the given granularity, counting items by resolution date. cycleTimes is
// the raw cycle-time sample backing the fallback path.
//
// When no item carries a resolution timestamp it falls back to a single
// synthetic bucket valued completed/(meanCycleTime/7) at weekly granularity
// and 1 otherwise. The formula conflates a rate derived from mean cycle
// time with a true departure rate; it is a documented approximation, and
// the resulting series is flagged Synthetic so callers can surface it.
func BuildThroughputSeries(completed []CompletedItem, cycleTimes []int, period Period) ThroughputSeries {
	series := ThroughputSeries{Period: period}
	if len(completed) == 0 {
		return series
	}

	counts := make(map[time.Time]int)
	for _, item := range completed {
		if item.Resolved == nil {
			continue
		}
		counts[SnapToStart(*item.Resolved, period)]++
	}

	if len(counts) == 0 {
		return syntheticSeries(len(completed), cycleTimes, period)
	}

	for start, count := range counts {
		series.Buckets = append(series.Buckets, ThroughputBucket{
			PeriodStart: start,
			Count:       float64(count),
		})
	}
	sort.Slice(series.Buckets, func(i, j int) bool {
		return series.Buckets[i].PeriodStart.Before(series.Buckets[j].PeriodStart)
	})

	return series
}

func syntheticSeries(completedCount int, cycleTimes []int, period Period) ThroughputSeries {
	value := 1.0
	if period == PeriodWeek {
		if mean := Mean(cycleTimes); mean > 0 {
			value = float64(completedCount) / (mean / 7.0)
		}
	}

	return ThroughputSeries{
		Period:    period,
		Buckets:   []ThroughputBucket{{Count: value}}, // zero PeriodStart: no real calendar anchor
		Synthetic: true,
	}
}
