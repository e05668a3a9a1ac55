package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/model"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"
	"ai-chat-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	require.NoError(t, model.Migrate(gormDB))

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSettingsRepository())
	assert.NotNil(t, uow.ChatHistoryRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Transactional chat write", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:           userId,
			Username:     "integration-" + uuid.New().String(),
			PasswordHash: "x",
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		settings := &entity.ChatSettings{
			Id:        uuid.New(),
			UserId:    userId,
			MaxTokens: entity.DefaultMaxTokens,
		}
		require.NoError(t, uow.ChatSettingsRepository().Create(ctx, settings))

		entry := &entity.ChatEntry{
			UserId:   userId,
			Message:  "integration hello",
			Response: "integration reply",
		}
		require.NoError(t, uow.ChatHistoryRepository().Create(ctx, entry))

		require.NoError(t, uow.Commit())

		entries, err := uowFactory.NewUnitOfWork(ctx).ChatHistoryRepository().FindAll(ctx,
			specification.OwnedBy{UserID: userId},
			specification.InsertionOrder{},
		)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "integration hello", entries[0].Message)
	})
}
