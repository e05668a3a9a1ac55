package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAuthService(factory, noopLogger{}, testSecret, time.Hour)
	ctx := context.Background()

	err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, res.UserId.String(), claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAuthService(factory, noopLogger{}, testSecret, time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "secret123"}))

	_, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong-password"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAuthService(factory, noopLogger{}, testSecret, time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "secret123"}))

	err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "different456"})
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAuthService(factory, noopLogger{}, testSecret, time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "secret123"}))

	user, err := factory.NewUnitOfWork(ctx).UserRepository().
		FindOne(ctx, specification.ByUsername{Username: "alice"})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterValidatesInput(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAuthService(factory, noopLogger{}, testSecret, time.Hour)
	ctx := context.Background()

	assert.Error(t, svc.Register(ctx, &dto.RegisterRequest{Username: "al", Password: "secret123"}))
	assert.Error(t, svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "short"}))
}
