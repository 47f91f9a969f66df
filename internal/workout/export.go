package workout

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the stable column order of exported entries.
var csvHeader = []string{"id", "date", "exercise", "sets", "reps", "weight", "notes"}

// WriteCSV writes entries as CSV with a header row. Dates are formatted
// as calendar days.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			e.Date.Format("2006-01-02"),
			e.Exercise,
			strconv.Itoa(e.Sets),
			strconv.Itoa(e.Reps),
			strconv.FormatFloat(e.Weight, 'f', -1, 64),
			e.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record %s: %w", e.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
