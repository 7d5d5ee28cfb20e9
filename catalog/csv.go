package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// parseCSV reads all records, tolerating ragged rows. The table is
// exported by hand and row widths drift.
func parseCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var rows [][]string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row := make([]string, len(record))
		copy(row, record)
		if first && len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], "\uFEFF")
			first = false
		}
		rows = append(rows, row)
	}
	return rows, nil
}
