// quantiri/types/dataset.go
package types

// ParsedDataset is the shape the CSV parser produces and the chat/insights
// endpoints consume. Rows hold at most the retained preview; RowCount is
// always the full parsed row count.
type ParsedDataset struct {
	ID       string           `json:"id,omitempty"`
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"rowCount"`
	FileName string           `json:"fileName,omitempty"`
	FileSize int64            `json:"fileSize,omitempty"`
}

type CSVIngestRequest struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	Text     string `json:"text"`
}

type InsightsRequest struct {
	Dataset  *ParsedDataset `json:"dataset"`
	Question string         `json:"question,omitempty"`
}

// Chart is one chart description in the insights response, in the exact
// shape the frontend's charting library expects.
type Chart struct {
	Type  string           `json:"type"`
	Title string           `json:"title"`
	XKey  string           `json:"xKey"`
	YKey  string           `json:"yKey"`
	Data  []map[string]any `json:"data"`
}

type ChartInsightsResponse struct {
	Insights []string `json:"insights"`
	Charts   []Chart  `json:"charts"`
}
