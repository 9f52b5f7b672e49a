// quantiri/controllers/insights.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"quantiri/quantiri/config"
	"quantiri/quantiri/services/llm"
	"quantiri/quantiri/services/prompt"
	"quantiri/quantiri/types"
	"quantiri/quantiri/utils/jsonutils"
	"quantiri/quantiri/utils/logging"

	"go.uber.org/zap"
)

const (
	insightsTemperature = 0.2
	insightsMaxTokens   = 1200
)

var chartTypes = map[string]bool{
	"bar":     true,
	"line":    true,
	"pie":     true,
	"scatter": true,
	"area":    true,
}

type InsightsController struct {
	client  llm.Client
	prompts prompt.Prompts
	cfg     config.Config
}

func NewInsightsController(client llm.Client, prompts prompt.Prompts, cfg config.Config) *InsightsController {
	return &InsightsController{
		client:  client,
		prompts: prompts,
		cfg:     cfg,
	}
}

// Insights asks the provider for structured chart/insight JSON about the
// dataset. Model output is untrusted: a response that does not parse, or
// charts that violate the schema, degrade to an empty (but successful)
// result rather than failing the request.
func (c *InsightsController) Insights(ctx context.Context, req types.InsightsRequest) (*types.ChartInsightsResponse, error) {
	if c.cfg.GroqAPIKey == "" {
		return nil, types.ErrMisconfigured
	}
	if req.Dataset == nil || len(req.Dataset.Columns) == 0 {
		return nil, types.NewValidationError(types.FieldError{Field: "dataset", Message: "No dataset provided"})
	}

	question := req.Question
	if question == "" {
		question = c.prompts.InsightsQuestion
	}

	datasetContext := prompt.InsightsContext(req.Dataset, prompt.DefaultPreviewRows)

	raw, err := c.client.Run(ctx, llm.ChatRequest{
		Model: c.cfg.GroqModel,
		Messages: []llm.Message{
			{Role: "system", Content: c.prompts.InsightsSystem},
			{Role: "user", Content: fmt.Sprintf("%s\n\nUser request: %s", datasetContext, question)},
		},
		Temperature: insightsTemperature,
		MaxTokens:   insightsMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrProviderFailure, err)
	}

	return parseInsights(raw), nil
}

// parseInsights is the best-effort boundary for model output: whole-parse
// failure yields the empty result, and individual charts that fail schema
// validation are dropped.
func parseInsights(raw string) *types.ChartInsightsResponse {
	empty := &types.ChartInsightsResponse{Insights: []string{}, Charts: []types.Chart{}}

	var parsed types.ChartInsightsResponse
	if err := json.Unmarshal([]byte(jsonutils.ExtractJSON(raw)), &parsed); err != nil {
		logging.AppLogger.Info("insights response did not parse, returning empty result",
			zap.Error(err))
		return empty
	}

	if parsed.Insights == nil {
		parsed.Insights = []string{}
	}

	charts := make([]types.Chart, 0, len(parsed.Charts))
	for _, chart := range parsed.Charts {
		if validChart(chart) {
			charts = append(charts, chart)
		}
	}
	parsed.Charts = charts
	return &parsed
}

func validChart(chart types.Chart) bool {
	if !chartTypes[chart.Type] {
		return false
	}
	if chart.Title == "" || chart.XKey == "" || chart.YKey == "" {
		return false
	}
	for _, point := range chart.Data {
		if _, ok := point[chart.XKey]; !ok {
			return false
		}
		y, ok := point[chart.YKey]
		if !ok {
			return false
		}
		if _, isNum := y.(float64); !isNum {
			return false
		}
	}
	return true
}
