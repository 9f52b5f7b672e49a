// quantiri/services/llm/llm.go
package llm

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Client is the one blocking collaborator of the chat orchestrator. Run
// returns the first completion's text, or "" with no error when the
// provider produced no content.
type Client interface {
	Run(ctx context.Context, req ChatRequest) (string, error)
}
