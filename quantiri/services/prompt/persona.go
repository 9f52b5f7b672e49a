// quantiri/services/prompt/persona.go
package prompt

import (
	"os"
	"quantiri/quantiri/utils/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const defaultChatPersona = "You are Quantiri, a personal AI data analyst. Provide short, actionable answers."

const defaultInsightsSystem = `You are a data visualization assistant.
Analyze the provided dataset and return a JSON object following EXACTLY this schema:

{
  "insights": ["string", "string", ...],
  "charts": [
    {
      "type": "bar" | "line" | "pie" | "scatter" | "area",
      "title": "string",
      "xKey": "string",
      "yKey": "string",
      "data": [
        { "<xKey>": string | number, "<yKey>": number },
        ...
      ]
    }
  ]
}

Rules:
1. data must be a valid array of objects in the exact format Recharts expects:
   - Each object represents one data point.
   - The keys must match exactly the xKey and yKey values.
   - All numeric values for yKey must be valid numbers.
2. The title must be a short, human-readable description of the chart.
3. Always output valid JSON only — no explanations, no triple backticks, no markdown, no comments.
4. Ensure all strings use double quotes, and no trailing commas.
5. Values must come directly from the dataset — do not invent random numbers.
6. insights should summarize key patterns or trends in plain English.

Return ONLY the JSON object and nothing else.`

const defaultInsightsQuestion = "Generate insights and charts for this dataset."

// Prompts holds the provider-facing prompt templates. They live in a yaml
// file so wording can change without a rebuild; missing file or fields
// fall back to the built-in defaults.
type Prompts struct {
	ChatPersona      string `yaml:"chat_persona"`
	InsightsSystem   string `yaml:"insights_system"`
	InsightsQuestion string `yaml:"insights_question"`
}

func DefaultPrompts() Prompts {
	return Prompts{
		ChatPersona:      defaultChatPersona,
		InsightsSystem:   defaultInsightsSystem,
		InsightsQuestion: defaultInsightsQuestion,
	}
}

func LoadPrompts(path string) Prompts {
	prompts := DefaultPrompts()

	data, err := os.ReadFile(path)
	if err != nil {
		logging.AppLogger.Info("prompts file not found, using defaults", zap.String("path", path))
		return prompts
	}

	var loaded Prompts
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		logging.ErrorLogger.Error("prompts file parse error, using defaults",
			zap.String("path", path), zap.Error(err))
		return prompts
	}

	if loaded.ChatPersona != "" {
		prompts.ChatPersona = loaded.ChatPersona
	}
	if loaded.InsightsSystem != "" {
		prompts.InsightsSystem = loaded.InsightsSystem
	}
	if loaded.InsightsQuestion != "" {
		prompts.InsightsQuestion = loaded.InsightsQuestion
	}
	return prompts
}
