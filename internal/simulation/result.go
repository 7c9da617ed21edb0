package simulation

import (
	"time"

	"flowcast/internal/stats"
)

// ForecastPercentiles are the confidence levels reported for every forecast.
var ForecastPercentiles = []int{50, 75, 85, 95}

// ForecastResult is the full output bundle of one simulation run. It is
// built once per invocation, consumed by rendering, then discarded.
type ForecastResult struct {
	// Dates holds the simulated completion dates of all trials that reached
	// the remaining count, sorted ascending. Discarded trials leave no entry.
	Dates []time.Time `json:"completion_dates"`
	// Percentiles maps each of ForecastPercentiles to a completion date, or
	// nil when the date distribution is empty. An all-nil map is a normal,
	// reportable outcome: the backlog may be unforecastable at observed
	// throughput.
	Percentiles map[int]*time.Time     `json:"percentiles"`
	Series      stats.ThroughputSeries `json:"throughput"`
	CycleTimes  []int                  `json:"cycle_times"`
	Warnings    []string               `json:"warnings,omitempty"`
}

// SummarizePercentiles extracts the nearest-rank percentile dates from a
// sorted date distribution. The keys are always exactly ForecastPercentiles;
// present values are monotonically non-decreasing in percentile order.
func SummarizePercentiles(dates []time.Time) map[int]*time.Time {
	out := make(map[int]*time.Time, len(ForecastPercentiles))
	for _, p := range ForecastPercentiles {
		if len(dates) == 0 {
			out[p] = nil
			continue
		}
		d := dates[stats.PercentileIndex(len(dates), p)]
		out[p] = &d
	}
	return out
}
