package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISettingsService interface {
	// GetOrCreate returns the user's settings row, lazily creating it with
	// the default bound on first access. Idempotent: the unique index on
	// user_id guarantees at most one row per user.
	GetOrCreate(ctx context.Context, userId uuid.UUID) (*entity.ChatSettings, error)

	// Update parses the requested bound and writes it transactionally.
	// Non-numeric or non-positive input yields ErrInvalidMaxTokens and
	// leaves the stored value untouched.
	Update(ctx context.Context, userId uuid.UUID, rawMaxTokens string) (*entity.ChatSettings, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *settingsService) GetOrCreate(ctx context.Context, userId uuid.UUID) (*entity.ChatSettings, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSettingsRepository()

	settings, err := repo.FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.ChatSettings{
		Id:        uuid.New(),
		UserId:    userId,
		MaxTokens: entity.DefaultMaxTokens,
	}
	if err := repo.Create(ctx, settings); err != nil {
		// A concurrent first access may have won the insert; the unique
		// index on user_id makes the loser re-read instead of duplicating.
		existing, findErr := repo.FindOne(ctx, specification.OwnedBy{UserID: userId})
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.logger.Info("settings", "created default settings", map[string]interface{}{
		"user_id":    userId.String(),
		"max_tokens": entity.DefaultMaxTokens,
	})
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, userId uuid.UUID, rawMaxTokens string) (*entity.ChatSettings, error) {
	maxTokens, err := strconv.Atoi(strings.TrimSpace(rawMaxTokens))
	if err != nil || maxTokens <= 0 {
		return nil, ErrInvalidMaxTokens
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer uow.Rollback()

	repo := uow.ChatSettingsRepository()
	rows, err := repo.UpdateMaxTokens(ctx, userId, maxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if rows == 0 {
		// Settings row was never resolved for this user; create it with the
		// requested bound in the same transaction.
		created := &entity.ChatSettings{
			Id:        uuid.New(),
			UserId:    userId,
			MaxTokens: maxTokens,
		}
		if err := repo.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	updated, err := s.uowFactory.NewUnitOfWork(ctx).ChatSettingsRepository().
		FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.logger.Info("settings", "updated max_tokens", map[string]interface{}{
		"user_id":    userId.String(),
		"max_tokens": maxTokens,
	})
	return updated, nil
}
