package workitem

import "time"

// FieldMap names the CSV columns carrying the fields we care about.
// Jira Cloud exports use the defaults; self-hosted instances and custom
// workflows frequently rename them.
type FieldMap struct {
	Created   string
	Resolved  string
	Status    string
	IssueType string
}

// DefaultFieldMap returns the column names of a standard Jira CSV export.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Created:   "Created",
		Resolved:  "Resolved",
		Status:    "Status",
		IssueType: "Issue Type",
	}
}

// Record is one raw work-item row. Date cells stay as strings here; parsing
// them is the classifier's job so that a malformed date surfaces as an
// ingestion failure with row context, not as silently missing data.
type Record struct {
	Created   string
	Resolved  string
	Status    string
	IssueType string
	Row       int // 1-based line in the source file, for error reporting
}

// timeLayouts are tried in order. Jira exports differ between Cloud,
// Data Center and locale settings.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/Jan/06 3:04 PM",
	"02/Jan/2006 15:04",
}

// ParseTime parses a date cell. The empty string means the field is absent
// and is not an error; callers distinguish absent from malformed.
func ParseTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
