package handler

import (
	"net/http"

	"pdfchat-api/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterOptions carries the transport settings that are not handlers
type RouterOptions struct {
	AllowedOrigins []string
	DemoLimiter    *RateLimiter
	Logger         domain.Logger
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	authHandler *AuthHandler,
	chatHandler *ChatHandler,
	pdfHandler *PDFHandler,
	cronHandler *CronHandler,
	opts RouterOptions,
) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pdfchat-api"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Auth routes
	api.HandleFunc("/auth/current-user", authHandler.CurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/auth/signout", authHandler.SignOut).Methods(http.MethodPost)
	api.HandleFunc("/auth/github", authHandler.GitHubRedirect).Methods(http.MethodGet)
	api.HandleFunc("/auth/google", authHandler.GoogleRedirect).Methods(http.MethodGet)

	// Chat routes
	api.HandleFunc("/chat", chatHandler.ListSessions).Methods(http.MethodPost)
	api.HandleFunc("/chat/rename", chatHandler.Rename).Methods(http.MethodPost)
	demo := http.Handler(http.HandlerFunc(chatHandler.Demo))
	if opts.DemoLimiter != nil {
		demo = opts.DemoLimiter.Middleware(demo)
	}
	api.Handle("/chat/demo", demo).Methods(http.MethodPost)

	// PDF routes
	api.HandleFunc("/pdf/get-user-pdfs", pdfHandler.GetUserPDFs).Methods(http.MethodPost)
	api.HandleFunc("/pdf/view", pdfHandler.View).Methods(http.MethodGet)
	api.HandleFunc("/pdf/optimize", pdfHandler.Optimize).Methods(http.MethodPost)

	// Scheduled jobs
	api.HandleFunc("/cron", cronHandler.ResetUsage).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			requestIDHeader,
		},
		ExposedHeaders: []string{
			headerOriginalSizeMB,
			headerOptimizedSizeMB,
			headerMBOptimized,
			"Content-Disposition",
			requestIDHeader,
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	var handler http.Handler = c.Handler(router)
	if opts.Logger != nil {
		handler = RecoveryMiddleware(opts.Logger)(handler)
		handler = LoggingMiddleware(opts.Logger)(handler)
	}
	return RequestIDMiddleware(handler)
}
