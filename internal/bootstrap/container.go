package bootstrap

import (
	"time"

	"ai-chat-be/internal/config"
	"ai-chat-be/internal/controller"
	"ai-chat-be/internal/pkg/flash"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/unitofwork"
	"ai-chat-be/internal/service"
	"ai-chat-be/pkg/llm/openai"

	"gorm.io/gorm"
)

type Container struct {
	AuthController      controller.IAuthController
	DashboardController controller.IDashboardController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. External completion client. The API key is environment-supplied;
	// nothing else in the app ever sees it.
	provider := openai.NewProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)

	// 3. Services
	sessionTTL := time.Duration(cfg.Auth.SessionTTLHours) * time.Hour
	completionService := service.NewCompletionService(
		provider,
		sysLogger,
		time.Duration(cfg.OpenAI.RequestTimeout)*time.Second,
	)
	settingsService := service.NewSettingsService(uowFactory, sysLogger)
	historyService := service.NewHistoryService(uowFactory)
	dashboardService := service.NewDashboardService(settingsService, completionService, historyService, sysLogger)
	authService := service.NewAuthService(uowFactory, sysLogger, cfg.Auth.JWTSecret, sessionTTL)

	flashStore := flash.NewStore()

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService, flashStore, sessionTTL),
		DashboardController: controller.NewDashboardController(dashboardService, flashStore),
		Logger:              sysLogger,
	}
}
