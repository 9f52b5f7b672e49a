// quantiri/services/prompt/summary.go
package prompt

import (
	"encoding/json"
	"fmt"
	"quantiri/quantiri/types"
	"strconv"
	"strings"
)

// DefaultPreviewRows bounds how many data lines a summary may contain.
// The summary is the only defense against an unbounded dataset blowing
// the provider's token budget.
const DefaultPreviewRows = 50

// Summarize renders a dataset as a deterministic, size-bounded text block
// for inclusion in the system prompt: a header, the comma-joined column
// list, and at most maxRows preview rows with pipe-delimited cells in
// column order. A nil dataset yields the empty string so the summary is
// omitted from the prompt entirely.
func Summarize(dataset *types.ParsedDataset, maxRows int) string {
	if dataset == nil {
		return ""
	}

	cols := strings.Join(dataset.Columns, ", ")

	rows := dataset.Rows
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, len(dataset.Columns))
		for _, col := range dataset.Columns {
			cells = append(cells, renderCell(row[col]))
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, strings.Join(cells, " | ")))
	}

	return fmt.Sprintf("DATASET SUMMARY\nColumns: %s\nPreview (first %d) rows:\n%s\n\n",
		cols, len(lines), strings.Join(lines, "\n"))
}

// renderCell turns one cell value into its prompt form: null or missing
// becomes the empty string, composite values their canonical JSON form,
// everything else its natural string form.
func renderCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// InsightsContext renders the dataset block for insights mode: full row
// count, columns, and the preview rows as indented JSON.
func InsightsContext(dataset *types.ParsedDataset, maxRows int) string {
	rows := dataset.Rows
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	preview, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		preview = []byte("[]")
	}
	return fmt.Sprintf("The dataset contains %d rows.\nColumns: %s.\nPreview rows: %s.",
		dataset.RowCount, strings.Join(dataset.Columns, ", "), string(preview))
}
