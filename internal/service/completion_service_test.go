package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompleteConvertsFailureIntoText(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	svc := NewCompletionService(provider, noopLogger{}, time.Minute)

	result := svc.Complete(context.Background(), "hello", 50)

	assert.Contains(t, result, "[AI error:")
	assert.Contains(t, result, "connection refused")
}

func TestCompletePassesMessageAndBound(t *testing.T) {
	provider := &fakeProvider{response: "hi there"}
	svc := NewCompletionService(provider, noopLogger{}, time.Minute)

	result := svc.Complete(context.Background(), "hello", 10)

	assert.Equal(t, "hi there", result)
	assert.Equal(t, "hello", provider.lastPrompt)
	assert.Equal(t, 10, provider.lastOpts.MaxTokens)
}
