package service

import (
	"context"
	"fmt"
	"time"

	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/pkg/llm"
)

type ICompletionService interface {
	// Complete always returns a displayable string. Provider failures are
	// folded into the text itself so the caller has a value to persist.
	Complete(ctx context.Context, message string, maxTokens int) string
}

type completionService struct {
	provider llm.Provider
	logger   logger.ILogger
	timeout  time.Duration
}

func NewCompletionService(provider llm.Provider, log logger.ILogger, timeout time.Duration) ICompletionService {
	return &completionService{
		provider: provider,
		logger:   log,
		timeout:  timeout,
	}
}

func (s *completionService) Complete(ctx context.Context, message string, maxTokens int) string {
	s.logger.Info("completion", "completion request", map[string]interface{}{
		"message":    message,
		"max_tokens": maxTokens,
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Single attempt, no retry. The external service's failure modes are
	// opaque, so the error text itself becomes the response.
	result, err := s.provider.Generate(ctx, message, llm.WithMaxTokens(maxTokens))
	if err != nil {
		s.logger.Error("completion", "completion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Sprintf("[AI error: %v]", err)
	}

	s.logger.Info("completion", "completion response", map[string]interface{}{
		"response": result,
	})
	return result
}
