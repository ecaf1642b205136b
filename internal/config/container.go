package config

import (
	"context"
	"errors"

	"legal-ai-analyzer/internal/domain"
	"legal-ai-analyzer/internal/service"
	"legal-ai-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	SessionStore    domain.SessionStore
	Gateway         domain.ModelGateway
	AnalysisService domain.AnalysisService
	ChatService     domain.ChatService
}

// NewContainer creates a new dependency injection container. It fails when
// the provider credential is missing: the API key is the only required piece
// of configuration and the process cannot serve without it.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	if cfg.GetGeminiAPIKey() == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	gateway, err := service.NewGeminiGateway(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	extractor := service.NewPDFExtractor(appLogger)
	prompts := service.NewPromptBuilder()
	store := service.NewMemorySessionStore()

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		SessionStore:    store,
		Gateway:         gateway,
		AnalysisService: service.NewAnalysisService(extractor, prompts, gateway, appLogger),
		ChatService:     service.NewChatService(store, prompts, gateway, appLogger),
	}, nil
}
