package stats

import (
	"math"
	"testing"
	"time"
)

func completedAt(created, resolved time.Time) CompletedItem {
	days := int(resolved.Sub(created).Hours() / 24)
	return CompletedItem{Status: "Done", Created: created, Resolved: &resolved, CycleTimeDays: days}
}

func TestBuildThroughputSeries_WeeklyBuckets(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	completed := []CompletedItem{
		// Monday and Wednesday of the same ISO week
		completedAt(created, time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)),
		completedAt(created, time.Date(2026, 2, 4, 10, 0, 0, 0, time.UTC)),
		// The week after
		completedAt(created, time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)),
		// Three empty weeks later: the gap must not appear as zero buckets
		completedAt(created, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)),
	}

	series := BuildThroughputSeries(completed, nil, PeriodWeek)
	if series.Synthetic {
		t.Fatalf("Expected empirical series, got synthetic")
	}
	if len(series.Buckets) != 3 {
		t.Fatalf("Expected 3 buckets, got %d", len(series.Buckets))
	}

	if series.Buckets[0].Count != 2 {
		t.Errorf("Expected first week count 2, got %.0f", series.Buckets[0].Count)
	}
	wantStart := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC) // Monday
	if !series.Buckets[0].PeriodStart.Equal(wantStart) {
		t.Errorf("Expected week start %v, got %v", wantStart, series.Buckets[0].PeriodStart)
	}

	for i, b := range series.Buckets {
		if b.Count <= 0 {
			t.Errorf("Bucket %d has non-positive count %.2f; zero buckets must be excluded", i, b.Count)
		}
		if i > 0 && b.PeriodStart.Before(series.Buckets[i-1].PeriodStart) {
			t.Errorf("Buckets out of order at %d", i)
		}
	}
}

func TestBuildThroughputSeries_DailyAndMonthly(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	completed := []CompletedItem{
		completedAt(created, time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)),
		completedAt(created, time.Date(2026, 2, 3, 17, 0, 0, 0, time.UTC)),
		completedAt(created, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)),
	}

	daily := BuildThroughputSeries(completed, nil, PeriodDay)
	if len(daily.Buckets) != 2 || daily.Buckets[0].Count != 2 {
		t.Errorf("Daily bucketing wrong: %+v", daily.Buckets)
	}

	monthly := BuildThroughputSeries(completed, nil, PeriodMonth)
	if len(monthly.Buckets) != 2 {
		t.Fatalf("Expected 2 monthly buckets, got %d", len(monthly.Buckets))
	}
	wantStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if !monthly.Buckets[0].PeriodStart.Equal(wantStart) {
		t.Errorf("Expected month start %v, got %v", wantStart, monthly.Buckets[0].PeriodStart)
	}
}

func TestBuildThroughputSeries_SyntheticFallback(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	completed := []CompletedItem{
		{Status: "Done", Created: created},
		{Status: "Done", Created: created},
		{Status: "Done", Created: created},
		{Status: "Done", Created: created},
	}
	cycleTimes := []int{14, 14, 14, 14}

	series := BuildThroughputSeries(completed, cycleTimes, PeriodWeek)
	if !series.Synthetic {
		t.Fatalf("Expected synthetic series when no resolution dates exist")
	}
	if len(series.Buckets) != 1 {
		t.Fatalf("Expected single synthetic bucket, got %d", len(series.Buckets))
	}

	// 4 items / (14 days mean / 7) = 2 items per week
	if math.Abs(series.Buckets[0].Count-2.0) > 1e-9 {
		t.Errorf("Expected synthetic weekly rate 2.0, got %f", series.Buckets[0].Count)
	}
	if !series.Buckets[0].PeriodStart.IsZero() {
		t.Errorf("Synthetic bucket should have no calendar anchor")
	}

	// Non-weekly granularity falls back to a flat 1
	daily := BuildThroughputSeries(completed, cycleTimes, PeriodDay)
	if daily.Buckets[0].Count != 1 {
		t.Errorf("Expected synthetic daily rate 1, got %f", daily.Buckets[0].Count)
	}
}

func TestBuildThroughputSeries_Empty(t *testing.T) {
	series := BuildThroughputSeries(nil, nil, PeriodWeek)
	if !series.Empty() {
		t.Errorf("Expected empty series for no completed items")
	}
}

func TestParsePeriod(t *testing.T) {
	cases := map[string]Period{
		"D":   PeriodDay,
		"w":   PeriodWeek,
		"M":   PeriodMonth,
		" W ": PeriodWeek,
	}
	for token, want := range cases {
		got, err := ParsePeriod(token)
		if err != nil {
			t.Errorf("ParsePeriod(%q) failed: %v", token, err)
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", token, got, want)
		}
	}

	if _, err := ParsePeriod("weekly"); err == nil {
		t.Errorf("Expected error for invalid token")
	}
}

func TestSnapToStart_WeekSundayEdge(t *testing.T) {
	// Sunday snaps back to the preceding Monday
	sunday := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	got := SnapToStart(sunday, PeriodWeek)
	want := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SnapToStart(Sunday) = %v, want %v", got, want)
	}
}

func TestPeriodDays(t *testing.T) {
	if PeriodDay.Days() != 1 || PeriodWeek.Days() != 7 || PeriodMonth.Days() != 30 {
		t.Errorf("Unexpected period widths: %d %d %d", PeriodDay.Days(), PeriodWeek.Days(), PeriodMonth.Days())
	}
}
