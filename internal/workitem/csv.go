package workitem

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadCSV reads a work-item export. The header row drives column lookup;
// the created and status columns are mandatory, resolved and issue-type are
// optional and yield empty cells when missing.
func LoadCSV(path string, fields FieldMap) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadCSV(f, fields)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// ReadCSV parses work-item rows from r.
func ReadCSV(r io.Reader, fields FieldMap) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Jira pads sprint/label columns unevenly

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty input, no header row")
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	log.Debug().Strs("columns", header).Msg("Loaded export header")

	createdIdx, ok := index[fields.Created]
	if !ok {
		return nil, fmt.Errorf("column %q not found in header", fields.Created)
	}
	statusIdx, ok := index[fields.Status]
	if !ok {
		return nil, fmt.Errorf("column %q not found in header", fields.Status)
	}
	resolvedIdx, hasResolved := index[fields.Resolved]
	typeIdx, hasType := index[fields.IssueType]

	var records []Record
	row := 1
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		rec := Record{Row: row}
		rec.Created = cellAt(cells, createdIdx)
		rec.Status = cellAt(cells, statusIdx)
		if hasResolved {
			rec.Resolved = cellAt(cells, resolvedIdx)
		}
		if hasType {
			rec.IssueType = cellAt(cells, typeIdx)
		}
		records = append(records, rec)
	}

	return records, nil
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
