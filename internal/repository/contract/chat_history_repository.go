package contract

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, entry *entity.ChatEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
