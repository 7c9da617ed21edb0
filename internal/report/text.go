package report

import (
	"fmt"
	"io"

	"flowcast/internal/simulation"
	"flowcast/internal/stats"
)

// NoForecastMarker is printed for a percentile with no simulated date.
const NoForecastMarker = "no forecast"

// WriteSummary renders the human-readable forecast summary.
func WriteSummary(w io.Writer, res *simulation.ForecastResult, completed, remaining int) {
	fmt.Fprintf(w, "Completed items: %d\n", completed)
	fmt.Fprintf(w, "Remaining items: %d\n", remaining)
	fmt.Fprintf(w, "Throughput:      %s\n", describeSeries(res.Series))

	fmt.Fprintln(w, "\nForecast completion dates:")
	for _, p := range simulation.ForecastPercentiles {
		date := res.Percentiles[p]
		if date == nil {
			fmt.Fprintf(w, "  %d%% confidence: %s\n", p, NoForecastMarker)
			continue
		}
		fmt.Fprintf(w, "  %d%% confidence: %s\n", p, date.Format("2006-01-02"))
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func describeSeries(series stats.ThroughputSeries) string {
	if series.Empty() {
		return "no data"
	}
	if series.Synthetic {
		return fmt.Sprintf("synthetic %.2f items/%s (no resolution dates)", series.Buckets[0].Count, series.Period)
	}
	return fmt.Sprintf("%d %s buckets", len(series.Buckets), series.Period)
}
