package service

import (
	"context"
	"fmt"
	"strings"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IHistoryService is the append-only chat ledger. Entries are immutable once
// written; insertion order is the only ordering guarantee.
type IHistoryService interface {
	Append(ctx context.Context, userId uuid.UUID, message, response string) (*entity.ChatEntry, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatEntry, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
	}
}

func (s *historyService) Append(ctx context.Context, userId uuid.UUID, message, response string) (*entity.ChatEntry, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer uow.Rollback()

	entry := &entity.ChatEntry{
		UserId:   userId,
		Message:  message,
		Response: response,
	}
	if err := uow.ChatHistoryRepository().Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return entry, nil
}

func (s *historyService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.ChatHistoryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.InsertionOrder{},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return entries, nil
}
