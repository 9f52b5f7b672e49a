package controllers

import (
	"context"
	"errors"
	"testing"

	"quantiri/quantiri/config"
	"quantiri/quantiri/services/llm"
	"quantiri/quantiri/services/mail"
	"quantiri/quantiri/sources/psql"
	"quantiri/quantiri/utils/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	logging.InitLogger()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:       "test-secret",
		GroqAPIKey:      "test-key",
		GroqModel:       "llama-3.3-70b-versatile",
		GroqTemperature: 0.0,
		GroqMaxTokens:   1024,
		BaseURL:         "http://localhost:3000",
	}
}

// fakeLLM records the request it was given and returns a canned reply.
type fakeLLM struct {
	reply   string
	err     error
	lastReq llm.ChatRequest
	calls   int
}

func (f *fakeLLM) Run(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeMailer struct {
	sent []mail.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

var errProviderDown = errors.New("connection refused")
