package service

import (
	"context"
	"fmt"
	"testing"

	"ai-chat-be/internal/model"
	"ai-chat-be/internal/repository/unitofwork"
	"ai-chat-be/pkg/database"
	"ai-chat-be/pkg/llm"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestFactory spins up an isolated in-memory SQLite database with the
// full schema. The named DSN keeps every pooled connection on the same
// in-memory database.
func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.NewSQLiteDB(dsn)
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	return unitofwork.NewRepositoryFactory(db), db
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// fakeProvider records the last prompt and options it was handed.
type fakeProvider struct {
	response   string
	err        error
	lastPrompt string
	lastOpts   llm.Options
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	prompt := ""
	if len(history) > 0 {
		prompt = history[len(history)-1].Content
	}
	return f.Generate(ctx, prompt, options...)
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	opts := &llm.Options{}
	for _, opt := range options {
		opt(opts)
	}
	f.lastPrompt = prompt
	f.lastOpts = *opts

	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
