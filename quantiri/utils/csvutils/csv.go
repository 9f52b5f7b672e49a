// quantiri/utils/csvutils/csv.go
package csvutils

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
)

var ErrNoHeader = errors.New("csv has no header row")

// Parse converts CSV text into a column list and dynamically typed rows:
// numeric cells become float64, "true"/"false" become bool, empty cells
// become nil. Short records leave trailing columns absent; extra cells
// beyond the header are dropped.
func Parse(text string) ([]string, []map[string]any, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, ErrNoHeader
	}

	columns := records[0]
	rows := make([]map[string]any, 0, len(records)-1)
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if i >= len(record) {
				break
			}
			row[col] = typeCell(record[i])
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func typeCell(cell string) any {
	if cell == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(cell, 64); err == nil {
		return n
	}
	switch cell {
	case "true", "TRUE", "True":
		return true
	case "false", "FALSE", "False":
		return false
	}
	return cell
}
