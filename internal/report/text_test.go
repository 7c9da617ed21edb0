package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"flowcast/internal/simulation"
	"flowcast/internal/stats"
)

func TestWriteSummary_WithForecast(t *testing.T) {
	d50 := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	d95 := time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)
	res := &simulation.ForecastResult{
		Dates: []time.Time{d50, d95},
		Percentiles: map[int]*time.Time{
			50: &d50, 75: &d50, 85: &d95, 95: &d95,
		},
		Series: stats.ThroughputSeries{
			Period:  stats.PeriodWeek,
			Buckets: []stats.ThroughputBucket{{Count: 4}, {Count: 6}},
		},
	}

	var buf bytes.Buffer
	WriteSummary(&buf, res, 42, 17)
	out := buf.String()

	for _, want := range []string{
		"Completed items: 42",
		"Remaining items: 17",
		"2 week buckets",
		"50% confidence: 2026-09-20",
		"95% confidence: 2026-10-11",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warnings") {
		t.Errorf("Unexpected warnings section:\n%s", out)
	}
}

func TestWriteSummary_AbsentPercentiles(t *testing.T) {
	res := &simulation.ForecastResult{
		Percentiles: map[int]*time.Time{50: nil, 75: nil, 85: nil, 95: nil},
		Series:      stats.ThroughputSeries{Period: stats.PeriodWeek, Buckets: []stats.ThroughputBucket{{Count: 1}}},
		Warnings:    []string{"something went sideways"},
	}

	var buf bytes.Buffer
	WriteSummary(&buf, res, 5, 10000)
	out := buf.String()

	if strings.Count(out, NoForecastMarker) != 4 {
		t.Errorf("Expected all four percentiles to be marked absent:\n%s", out)
	}
	if !strings.Contains(out, "something went sideways") {
		t.Errorf("Summary missing warning:\n%s", out)
	}
}
