package stats

import (
	"fmt"
	"strings"
	"time"
)

// Period is the throughput bucket granularity.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod maps the CLI tokens D/W/M to a Period.
func ParsePeriod(token string) (Period, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "D":
		return PeriodDay, nil
	case "W":
		return PeriodWeek, nil
	case "M":
		return PeriodMonth, nil
	default:
		return "", fmt.Errorf("invalid period %q, expected D, W or M", token)
	}
}

// Days returns the calendar-day width used when converting simulated bucket
// counts into date offsets. The month value is a flat 30-day approximation,
// not calendar-accurate.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 1
	}
}

// SnapToStart normalizes a timestamp to the beginning of its bucket.
// Weeks snap to Monday, months to the 1st.
func SnapToStart(t time.Time, p Period) time.Time {
	switch p {
	case PeriodMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case PeriodWeek:
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday -> 7
		}
		return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// Label returns a human-readable bucket label (e.g. "Jan 2026" or "2026-W05").
func Label(t time.Time, p Period) string {
	switch p {
	case PeriodMonth:
		return t.Format("Jan 2006")
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	default:
		return t.Format("2006-01-02")
	}
}
