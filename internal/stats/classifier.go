package stats

import (
	"time"

	"flowcast/internal/workitem"
)

// ClassifierConfig controls how records are partitioned.
type ClassifierConfig struct {
	// TerminalStatuses is the closed set of workflow states that mean an
	// item is finished. Matching is case-sensitive: an unrecognized or
	// custom status always lands in Remaining, so unknown workflow states
	// are never silently counted as complete.
	TerminalStatuses map[string]bool
}

// DefaultTerminalStatuses returns the conventional Jira terminal set.
func DefaultTerminalStatuses() map[string]bool {
	return map[string]bool{
		"Done":     true,
		"Closed":   true,
		"Resolved": true,
	}
}

// CompletedItem is a record in a terminal status with parsed timestamps.
type CompletedItem struct {
	Status    string
	IssueType string
	Created   time.Time
	Resolved  *time.Time // nil when the resolved cell was empty
	// CycleTimeDays is the elapsed whole days from creation to resolution.
	// Meaningful only when Resolved is non-nil; always >= 0.
	CycleTimeDays int
}

// PartitionResult splits a dataset into forecast evidence and backlog.
type PartitionResult struct {
	Completed []CompletedItem
	Remaining []workitem.Record
	// DroppedNegative counts completed rows discarded because resolution
	// predates creation. Data-entry errors, excluded rather than fatal.
	DroppedNegative int
}

// CycleTimes returns the raw cycle-time sample across completed items that
// have a resolution timestamp.
func (p *PartitionResult) CycleTimes() []int {
	var out []int
	for _, c := range p.Completed {
		if c.Resolved != nil {
			out = append(out, c.CycleTimeDays)
		}
	}
	return out
}

// Partition classifies records into completed and remaining sets and derives
// cycle times for the completed ones.
//
// It fails with ErrEmptyDataset when nothing qualifies as completed, and
// with ErrNoValidCycleTimes when completed items exist but none carries a
// usable cycle time.
func Partition(records []workitem.Record, cfg ClassifierConfig) (*PartitionResult, error) {
	terminal := cfg.TerminalStatuses
	if terminal == nil {
		terminal = DefaultTerminalStatuses()
	}

	res := &PartitionResult{}
	anyCompleted := false

	for _, rec := range records {
		if !terminal[rec.Status] {
			// Remaining items carry no cycle time, but their date cells are
			// still validated: malformed input must not ride along as if it
			// were merely missing.
			for _, cell := range []struct{ field, value string }{
				{"created", rec.Created},
				{"resolved", rec.Resolved},
			} {
				if cell.value == "" {
					continue
				}
				if _, err := workitem.ParseTime(cell.value); err != nil {
					return nil, &IngestionError{Row: rec.Row, Field: cell.field, Value: cell.value, Err: err}
				}
			}
			res.Remaining = append(res.Remaining, rec)
			continue
		}
		anyCompleted = true

		created, err := workitem.ParseTime(rec.Created)
		if err != nil {
			return nil, &IngestionError{Row: rec.Row, Field: "created", Value: rec.Created, Err: err}
		}

		item := CompletedItem{
			Status:    rec.Status,
			IssueType: rec.IssueType,
			Created:   created,
		}

		if rec.Resolved != "" {
			resolved, err := workitem.ParseTime(rec.Resolved)
			if err != nil {
				return nil, &IngestionError{Row: rec.Row, Field: "resolved", Value: rec.Resolved, Err: err}
			}
			days := int(resolved.Sub(created).Hours() / 24)
			if resolved.Before(created) {
				res.DroppedNegative++
				continue
			}
			item.Resolved = &resolved
			item.CycleTimeDays = days
		}

		res.Completed = append(res.Completed, item)
	}

	if !anyCompleted {
		return nil, ErrEmptyDataset
	}
	if len(res.CycleTimes()) == 0 {
		return nil, ErrNoValidCycleTimes
	}

	return res, nil
}
