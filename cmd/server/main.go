package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdfchat-api/internal/config"
	"pdfchat-api/internal/handler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	cfg := container.Config

	// Handlers
	authHandler := handler.NewAuthHandler(
		container.SessionService,
		container.OAuthService,
		container.Logger,
		cfg.GetCookieSecure(),
	)
	chatHandler := handler.NewChatHandler(
		container.ChatService,
		container.DemoChatService,
		container.SessionService,
		container.Logger,
	)
	pdfHandler := handler.NewPDFHandler(
		container.PDFService,
		container.Logger,
		cfg.GetMaxFileSize(),
	)
	cronHandler := handler.NewCronHandler(
		container.UsageService,
		container.Logger,
		cfg.GetCronSecret(),
	)

	// Router
	router := handler.NewRouter(
		authHandler,
		chatHandler,
		pdfHandler,
		cronHandler,
		handler.RouterOptions{
			AllowedOrigins: cfg.GetAllowedOrigins(),
			DemoLimiter:    handler.NewRateLimiter(cfg.GetDemoRateLimitPerMinute()),
			Logger:         container.Logger,
		},
	)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
	if syncer, ok := container.Logger.(interface{ Sync() error }); ok {
		_ = syncer.Sync()
	}
}
