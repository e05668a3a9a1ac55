package service

import (
	"context"
	"errors"
	"strings"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	ActionChat     = "chat"
	ActionSettings = "settings"
)

// IDashboardService coordinates a single dashboard request: resolve the
// user's settings, dispatch the submitted action, then always assemble the
// current history + settings view. No failure inside terminates the request;
// everything degrades to a logged event plus a user notice.
type IDashboardService interface {
	HandleDashboard(ctx context.Context, userId uuid.UUID, username string, form *dto.DashboardForm) *dto.DashboardView
}

type dashboardService struct {
	settings   ISettingsService
	completion ICompletionService
	history    IHistoryService
	logger     logger.ILogger
}

func NewDashboardService(
	settings ISettingsService,
	completion ICompletionService,
	history IHistoryService,
	log logger.ILogger,
) IDashboardService {
	return &dashboardService{
		settings:   settings,
		completion: completion,
		history:    history,
		logger:     log,
	}
}

func (s *dashboardService) HandleDashboard(ctx context.Context, userId uuid.UUID, username string, form *dto.DashboardForm) *dto.DashboardView {
	view := &dto.DashboardView{Username: username}

	settings, err := s.settings.GetOrCreate(ctx, userId)
	if err != nil {
		// Resolving settings never blocks the rest of the request: fall back
		// to an in-memory default bound and carry on.
		s.logger.Warn("dashboard", "settings resolve failed, using default bound", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		settings = &entity.ChatSettings{UserId: userId, MaxTokens: entity.DefaultMaxTokens}
	}

	switch form.Action {
	case ActionChat:
		message := strings.TrimSpace(form.Message)
		if message == "" {
			view.Notices = append(view.Notices, "Message cannot be empty.")
			break
		}
		response := s.completion.Complete(ctx, message, settings.MaxTokens)
		if _, err := s.history.Append(ctx, userId, message, response); err != nil {
			// The response is discarded: it is only ever shown via the
			// persisted history, and the append is not retried.
			s.logger.Error("dashboard", "failed to save chat entry", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
			view.Notices = append(view.Notices, "Could not save your message.")
		}

	case ActionSettings:
		updated, err := s.settings.Update(ctx, userId, form.MaxTokens)
		switch {
		case errors.Is(err, ErrInvalidMaxTokens):
			view.Notices = append(view.Notices, "Max tokens must be a positive whole number.")
		case err != nil:
			s.logger.Error("dashboard", "failed to update settings", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
			view.Notices = append(view.Notices, "Could not update settings.")
		default:
			settings = updated
			view.Notices = append(view.Notices, "Settings updated.")
		}
	}

	// The history read always runs, so a failed action still renders an
	// up-to-date view.
	history, err := s.history.ListForUser(ctx, userId)
	if err != nil {
		s.logger.Error("dashboard", "failed to load chat history", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		view.Notices = append(view.Notices, "Could not load chat history.")
	}

	view.Settings = settings
	view.History = history
	return view
}
