package service

import (
	"context"
	"fmt"
	"time"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	validate   *validator.Validate
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, jwtSecret string, sessionTTL time.Duration) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		logger:     log,
		validate:   validator.New(),
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid registration input: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	// Passwords are only ever stored as bcrypt hashes.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{
		"user_id":  user.Id.String(),
		"username": user.Username,
	})
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrInvalidCredentials
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"username": user.Username,
		"exp":      time.Now().Add(s.sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user logged in", map[string]interface{}{
		"user_id": user.Id.String(),
	})

	return &dto.LoginResponse{
		UserId:   user.Id,
		Username: user.Username,
		Token:    token,
	}, nil
}
