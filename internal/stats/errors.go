package stats

import (
	"errors"
	"fmt"
)

// Fatal data conditions. A forecast cannot be built without completed items
// carrying cycle-time evidence, so the pipeline aborts on these.
var (
	ErrEmptyDataset      = errors.New("no completed items found in dataset")
	ErrNoValidCycleTimes = errors.New("no valid cycle time data found")
)

// IngestionError reports a malformed date cell. Malformed input must not
// masquerade as missing data, so this aborts before any statistics are
// computed.
type IngestionError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("row %d: unparseable %s value %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }
