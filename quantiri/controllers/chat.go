// quantiri/controllers/chat.go
package controllers

import (
	"context"
	"fmt"
	"quantiri/quantiri/config"
	"quantiri/quantiri/services/llm"
	"quantiri/quantiri/services/prompt"
	"quantiri/quantiri/sources/psql/dao"
	"quantiri/quantiri/sources/psql/models"
	"quantiri/quantiri/types"

	"github.com/google/uuid"
)

// Greeting seeds a freshly reset conversation.
const Greeting = "Hi — upload a CSV to preview your data and start asking questions. Try 'Top 5 products by revenue' as an example."

const fallbackReply = "No reply generated"

type ChatController struct {
	datasets *dao.DatasetDAO
	chatDAO  *dao.ChatMessageDAO
	client   llm.Client
	prompts  prompt.Prompts
	cfg      config.Config
}

func NewChatController(datasets *dao.DatasetDAO, chatDAO *dao.ChatMessageDAO, client llm.Client, prompts prompt.Prompts, cfg config.Config) *ChatController {
	return &ChatController{
		datasets: datasets,
		chatDAO:  chatDAO,
		client:   client,
		prompts:  prompts,
		cfg:      cfg,
	}
}

func validateMessages(messages []types.PromptMessage) *types.ValidationError {
	if len(messages) == 0 {
		return types.NewValidationError(types.FieldError{Field: "messages", Message: "At least one message is required"})
	}
	for i, m := range messages {
		if m.Role != types.RoleUser && m.Role != types.RoleAssistant {
			return types.NewValidationError(types.FieldError{
				Field:   fmt.Sprintf("messages[%d].role", i),
				Message: "Role must be 'user' or 'assistant'",
			})
		}
	}
	return nil
}

// resolveDataset loads the stored dataset when a datasetId is given; a
// resolved dataset overrides any inline one. Unknown IDs and datasets
// owned by someone else fall back to the inline dataset.
func (c *ChatController) resolveDataset(ctx context.Context, userID uuid.UUID, req types.ChatRequest) (*types.ParsedDataset, error) {
	if req.DatasetID == "" {
		return req.Dataset, nil
	}
	id, err := uuid.Parse(req.DatasetID)
	if err != nil {
		return req.Dataset, nil
	}
	ds, err := c.datasets.GetDatasetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ds == nil || ds.UserID != userID {
		return req.Dataset, nil
	}
	return &types.ParsedDataset{
		ID:       ds.ID.String(),
		Columns:  ds.Columns,
		Rows:     ds.Rows,
		RowCount: ds.RowCount,
		FileName: ds.FileName,
		FileSize: ds.FileSize,
	}, nil
}

// Respond assembles the provider request (persona + dataset summary as
// the one system message, then the windowed history) and returns the
// model's reply. It never persists the exchange; that is the caller's
// responsibility.
func (c *ChatController) Respond(ctx context.Context, userID uuid.UUID, req types.ChatRequest) (string, error) {
	if c.cfg.GroqAPIKey == "" {
		return "", types.ErrMisconfigured
	}
	if verr := validateMessages(req.Messages); verr != nil {
		return "", verr
	}

	dataset, err := c.resolveDataset(ctx, userID, req)
	if err != nil {
		return "", err
	}

	windowed := prompt.Window(req.Messages, prompt.DefaultWindowSize)
	summary := prompt.Summarize(dataset, prompt.DefaultPreviewRows)

	messages := make([]llm.Message, 0, len(windowed)+1)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: fmt.Sprintf("%s\n\n%s", c.prompts.ChatPersona, summary),
	})
	for _, m := range windowed {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	model := req.Model
	if model == "" {
		model = c.cfg.GroqModel
	}
	temperature := c.cfg.GroqTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	reply, err := c.client.Run(ctx, llm.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   c.cfg.GroqMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrProviderFailure, err)
	}
	if reply == "" {
		reply = fallbackReply
	}
	return reply, nil
}

// SaveExchange appends the latest user turn and the assistant reply to a
// stored session. Used by the route layer when the client asked for
// server-side conversation history.
func (c *ChatController) SaveExchange(ctx context.Context, userID uuid.UUID, sessionID, userContent, reply string) error {
	if _, err := c.chatDAO.SaveMessage(ctx, sessionID, userID, types.RoleUser, userContent); err != nil {
		return err
	}
	_, err := c.chatDAO.SaveMessage(ctx, sessionID, userID, types.RoleAssistant, reply)
	return err
}

func (c *ChatController) GetSessionMessages(ctx context.Context, userID uuid.UUID, sessionID string) ([]models.ChatMessage, error) {
	return c.chatDAO.GetMessagesForSession(ctx, userID, sessionID)
}

// ResetSession discards the session's conversation and seeds it with a
// single assistant greeting.
func (c *ChatController) ResetSession(ctx context.Context, userID uuid.UUID, sessionID string) (*models.ChatMessage, error) {
	if err := c.chatDAO.DeleteSessionMessages(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return c.chatDAO.SaveMessage(ctx, sessionID, userID, types.RoleAssistant, Greeting)
}

func (c *ChatController) NewSessionID() string {
	return c.chatDAO.CreateSessionID()
}
