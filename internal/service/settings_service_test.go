package service

import (
	"context"
	"errors"
	"testing"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetOrCreateIdempotent(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewSettingsService(factory, noopLogger{})
	ctx := context.Background()
	userId := uuid.New()

	first, err := svc.GetOrCreate(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultMaxTokens, first.MaxTokens)

	second, err := svc.GetOrCreate(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	count, err := factory.NewUnitOfWork(ctx).ChatSettingsRepository().
		Count(ctx, specification.OwnedBy{UserID: userId})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSettingsUpdateValidValue(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewSettingsService(factory, noopLogger{})
	ctx := context.Background()
	userId := uuid.New()

	_, err := svc.GetOrCreate(ctx, userId)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userId, "10")
	require.NoError(t, err)
	assert.Equal(t, 10, updated.MaxTokens)

	resolved, err := svc.GetOrCreate(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, 10, resolved.MaxTokens)
}

func TestSettingsUpdateInvalidValueLeavesBoundUnchanged(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewSettingsService(factory, noopLogger{})
	ctx := context.Background()
	userId := uuid.New()

	_, err := svc.GetOrCreate(ctx, userId)
	require.NoError(t, err)

	for _, raw := range []string{"abc", "", "12.5", "0", "-5", "ten"} {
		t.Run("value="+raw, func(t *testing.T) {
			_, err := svc.Update(ctx, userId, raw)
			assert.True(t, errors.Is(err, ErrInvalidMaxTokens), "expected ErrInvalidMaxTokens for %q", raw)

			resolved, err := svc.GetOrCreate(ctx, userId)
			require.NoError(t, err)
			assert.Equal(t, entity.DefaultMaxTokens, resolved.MaxTokens)
		})
	}
}

func TestSettingsUpdateCreatesRowWhenMissing(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewSettingsService(factory, noopLogger{})
	ctx := context.Background()
	userId := uuid.New()

	updated, err := svc.Update(ctx, userId, "25")
	require.NoError(t, err)
	assert.Equal(t, 25, updated.MaxTokens)

	count, err := factory.NewUnitOfWork(ctx).ChatSettingsRepository().
		Count(ctx, specification.OwnedBy{UserID: userId})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
