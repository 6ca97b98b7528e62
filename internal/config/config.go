package config

import (
	"os"
	"strconv"
	"strings"

	"pdfchat-api/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort             string
	MaxFileSize            int64
	LogLevel               string
	LogPath                string
	SupabaseURL            string
	SupabaseKey            string
	StorageBucket          string
	JWTSecret              string
	GitHubClientID         string
	GitHubRedirectURI      string
	GoogleClientID         string
	GoogleRedirectURI      string
	DemoSecret             string
	ChatEndpoint           string
	DemoRateLimitPerMinute int
	CronSecret             string
	AllowedOrigins         []string
	CookieSecure           bool
}

var defaultAllowedOrigins = []string{
	"http://localhost:3000", // Next.js dev server
	"http://localhost:5173",
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:  getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogPath:     getEnvOrDefault("LOG_PATH", ""),
		SupabaseURL: getEnvOrDefault("SUPABASE_URL", ""),
		// The service role key bypasses row level security; per-user
		// isolation is enforced by the user_id filters in the repositories.
		SupabaseKey:            getEnvOrDefault("SUPABASE_SERVICE_ROLE_KEY", ""),
		StorageBucket:          getEnvOrDefault("STORAGE_BUCKET", getEnvOrDefault("FIREBASE_STORAGE_BUCKET", "pdfs")),
		JWTSecret:              getEnvOrDefault("JWT_SECRET", ""),
		GitHubClientID:         getEnvOrDefault("GITHUB_CLIENT_ID", ""),
		GitHubRedirectURI:      getEnvOrDefault("GITHUB_REDIRECT_URI", ""),
		GoogleClientID:         getEnvOrDefault("GOOGLE_CLIENT_ID", ""),
		GoogleRedirectURI:      getEnvOrDefault("GOOGLE_REDIRECT_URI", ""),
		DemoSecret:             getEnvOrDefault("DEMO_SECRET", ""),
		ChatEndpoint:           getEnvOrDefault("NEXT_PUBLIC_CHAT_ENDPOINT", ""),
		DemoRateLimitPerMinute: getEnvIntOrDefault("DEMO_RATE_LIMIT_PER_MINUTE", 10),
		CronSecret:             getEnvOrDefault("CRON_SECRET", ""),
		AllowedOrigins:         getEnvListOrDefault("ALLOWED_ORIGINS", defaultAllowedOrigins),
		CookieSecure:           getEnvBoolOrDefault("COOKIE_SECURE", true),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum accepted upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogPath returns the rolling log file path, empty for stdout only
func (c *AppConfig) GetLogPath() string {
	return c.LogPath
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase service role key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetStorageBucket returns the bucket holding uploaded PDFs
func (c *AppConfig) GetStorageBucket() string {
	return c.StorageBucket
}

// GetJWTSecret returns the JWT secret key
func (c *AppConfig) GetJWTSecret() string {
	return c.JWTSecret
}

func (c *AppConfig) GetGitHubClientID() string {
	return c.GitHubClientID
}

func (c *AppConfig) GetGitHubRedirectURI() string {
	return c.GitHubRedirectURI
}

func (c *AppConfig) GetGoogleClientID() string {
	return c.GoogleClientID
}

func (c *AppConfig) GetGoogleRedirectURI() string {
	return c.GoogleRedirectURI
}

func (c *AppConfig) GetDemoSecret() string {
	return c.DemoSecret
}

// GetChatEndpoint returns the external chat-completion URL
func (c *AppConfig) GetChatEndpoint() string {
	return c.ChatEndpoint
}

func (c *AppConfig) GetDemoRateLimitPerMinute() int {
	return c.DemoRateLimitPerMinute
}

func (c *AppConfig) GetCronSecret() string {
	return c.CronSecret
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetCookieSecure reports whether session cookies carry the Secure flag
func (c *AppConfig) GetCookieSecure() bool {
	return c.CookieSecure
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
