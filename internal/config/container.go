package config

import (
	"net/http"

	"pdfchat-api/internal/domain"
	"pdfchat-api/internal/infra/supabase"
	"pdfchat-api/internal/repository"
	"pdfchat-api/internal/service"
	"pdfchat-api/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	SupabaseClient domain.SupabaseClient

	UserRepository domain.UserRepository
	ChatRepository domain.ChatRepository
	PDFRepository  domain.PDFRepository
	ObjectStore    domain.ObjectStore

	SessionService  domain.SessionService
	OAuthService    domain.OAuthService
	ChatService     domain.ChatService
	DemoChatService domain.DemoChatService
	PDFService      domain.PDFService
	UsageService    domain.UsageService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogPath())

	// Initialize Supabase client. A missing configuration is not fatal: the
	// data routes report it per request and the rest of the API keeps serving.
	supabaseClient := supabase.NewClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		appLogger.Error("Supabase client not initialized", err)
	}

	// Initialize repositories
	userRepo := repository.NewSupabaseUserRepository(supabaseClient, appLogger)
	chatRepo := repository.NewSupabaseChatRepository(supabaseClient, appLogger)
	pdfRepo := repository.NewSupabasePDFRepository(supabaseClient, appLogger)
	objectStore := repository.NewSupabaseObjectStore(supabaseClient, config.GetStorageBucket(), appLogger)

	sessionService := service.NewSessionService(config.GetJWTSecret(), userRepo, appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		SupabaseClient:  supabaseClient,
		UserRepository:  userRepo,
		ChatRepository:  chatRepo,
		PDFRepository:   pdfRepo,
		ObjectStore:     objectStore,
		SessionService:  sessionService,
		OAuthService:    service.NewOAuthService(config),
		ChatService:     service.NewChatService(chatRepo, appLogger),
		DemoChatService: service.NewDemoChatService(config.GetChatEndpoint(), config.GetDemoSecret(), http.DefaultClient, appLogger),
		PDFService:      service.NewPDFService(pdfRepo, objectStore, service.NewPDFMetadataStripper(appLogger), appLogger),
		UsageService:    service.NewUsageService(userRepo, appLogger),
	}
}
