package contract

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSettingsRepository interface {
	Create(ctx context.Context, settings *entity.ChatSettings) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSettings, error)
	// UpdateMaxTokens writes the new bound for the user's row and reports how
	// many rows matched, so callers can detect a missing row without a prior read.
	UpdateMaxTokens(ctx context.Context, userId uuid.UUID, maxTokens int) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
