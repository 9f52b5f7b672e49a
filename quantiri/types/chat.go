// quantiri/types/chat.go
package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PromptMessage is one turn of the conversation as sent by the client.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages    []PromptMessage `json:"messages"`
	DatasetID   string          `json:"datasetId,omitempty"`
	Dataset     *ParsedDataset  `json:"dataset,omitempty"`
	SessionID   string          `json:"sessionId,omitempty"`
	Model       string          `json:"model,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId,omitempty"`
}
