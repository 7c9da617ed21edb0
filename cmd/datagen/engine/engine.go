package engine

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// GeneratorConfig controls the synthetic backlog.
type GeneratorConfig struct {
	Scenario string // "steady", "chaos", "drift" or "nosignal"
	Count    int
	Seed     int64
	Now      time.Time
}

// Row is one synthetic work item in Jira CSV export shape.
type Row struct {
	Key       string
	IssueType string
	Status    string
	Created   time.Time
	Resolved  *time.Time
}

// Generate produces a backlog with one arrival per day, the last one today.
// Items older than their sampled cycle time are finished; the rest are left
// open across the usual workflow states.
func Generate(cfg GeneratorConfig) []Row {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	rows := make([]Row, 0, cfg.Count)
	firstArrival := cfg.Now.AddDate(0, 0, -cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		arrival := firstArrival.Add(time.Duration(i*24) * time.Hour)

		// Uniform baseline: 6-11 day cycle times
		totalDuration := 6.0 + rng.Float64()*5.0
		switch cfg.Scenario {
		case "chaos":
			if rng.Float64() < 0.2 {
				totalDuration += 10 + rng.Float64()*15 // controlled black swans
			}
		case "drift":
			if i > cfg.Count/2 {
				totalDuration *= 2.0
			}
		}

		row := Row{
			Key:       fmt.Sprintf("FLOW-%d", i+1),
			IssueType: pickType(rng),
			Created:   arrival,
		}

		ageDays := cfg.Now.Sub(arrival).Hours() / 24.0
		if ageDays > totalDuration {
			row.Status = "Done"
			// nosignal: finished items with the resolved cell wiped, the
			// shape of an export whose workflow never stamps resolutions.
			if cfg.Scenario != "nosignal" {
				resolved := arrival.Add(time.Duration(totalDuration*24) * time.Hour)
				row.Resolved = &resolved
			}
		} else if ageDays/totalDuration > 0.4 {
			row.Status = "In Progress"
		} else {
			row.Status = "To Do"
		}

		rows = append(rows, row)
	}

	return rows
}

func pickType(rng *rand.Rand) string {
	if rng.Float64() < 0.25 {
		return "Bug"
	}
	return "Story"
}

// Save writes the rows as a Jira-style CSV export.
func Save(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Issue key", "Issue Type", "Status", "Created", "Resolved"}); err != nil {
		return err
	}

	const layout = "2006-01-02 15:04"
	for _, row := range rows {
		resolved := ""
		if row.Resolved != nil {
			resolved = row.Resolved.Format(layout)
		}
		record := []string{row.Key, row.IssueType, row.Status, row.Created.Format(layout), resolved}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
