package config

import "testing"

const defaultMaxFileSize int64 = 50 * 1024 * 1024

var configKeys = []string{
	"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "LOG_LEVEL", "LOG_PATH",
	"SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY", "STORAGE_BUCKET", "FIREBASE_STORAGE_BUCKET",
	"JWT_SECRET", "GITHUB_CLIENT_ID", "GITHUB_REDIRECT_URI", "GOOGLE_CLIENT_ID", "GOOGLE_REDIRECT_URI",
	"DEMO_SECRET", "NEXT_PUBLIC_CHAT_ENDPOINT", "DEMO_RATE_LIMIT_PER_MINUTE", "CRON_SECRET",
	"ALLOWED_ORIGINS", "COOKIE_SECURE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetStorageBucket() != "pdfs" {
		t.Fatalf("expected default bucket pdfs, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetJWTSecret() != "" {
		t.Fatalf("expected empty jwt secret, got %s", cfg.GetJWTSecret())
	}
	if cfg.GetCronSecret() != "" {
		t.Fatalf("expected empty cron secret, got %s", cfg.GetCronSecret())
	}
	if cfg.GetDemoRateLimitPerMinute() != 10 {
		t.Fatalf("expected default demo rate limit 10, got %d", cfg.GetDemoRateLimitPerMinute())
	}
	if len(cfg.GetAllowedOrigins()) != 2 {
		t.Fatalf("expected 2 default origins, got %v", cfg.GetAllowedOrigins())
	}
	if !cfg.GetCookieSecure() {
		t.Fatalf("expected secure cookies by default")
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
	t.Setenv("STORAGE_BUCKET", "uploads")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GITHUB_CLIENT_ID", "gh-id")
	t.Setenv("GOOGLE_REDIRECT_URI", "https://app.example.com/api/auth/google/callback")
	t.Setenv("NEXT_PUBLIC_CHAT_ENDPOINT", "https://chat.example.com/chat")
	t.Setenv("DEMO_RATE_LIMIT_PER_MINUTE", "3")
	t.Setenv("CRON_SECRET", "cron")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("COOKIE_SECURE", "false")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url http://localhost:54321, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "service-key" {
		t.Fatalf("expected supabase key service-key, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetStorageBucket() != "uploads" {
		t.Fatalf("expected bucket uploads, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetJWTSecret() != "secret" {
		t.Fatalf("expected jwt secret secret, got %s", cfg.GetJWTSecret())
	}
	if cfg.GetGitHubClientID() != "gh-id" {
		t.Fatalf("expected github client id gh-id, got %s", cfg.GetGitHubClientID())
	}
	if cfg.GetGoogleRedirectURI() != "https://app.example.com/api/auth/google/callback" {
		t.Fatalf("unexpected google redirect uri %s", cfg.GetGoogleRedirectURI())
	}
	if cfg.GetChatEndpoint() != "https://chat.example.com/chat" {
		t.Fatalf("unexpected chat endpoint %s", cfg.GetChatEndpoint())
	}
	if cfg.GetDemoRateLimitPerMinute() != 3 {
		t.Fatalf("expected demo rate limit 3, got %d", cfg.GetDemoRateLimitPerMinute())
	}
	if cfg.GetCronSecret() != "cron" {
		t.Fatalf("expected cron secret cron, got %s", cfg.GetCronSecret())
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "https://a.example.com" || origins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins %v", origins)
	}
	if cfg.GetCookieSecure() {
		t.Fatalf("expected insecure cookies when COOKIE_SECURE=false")
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "legacy-bucket")
	t.Setenv("DEMO_RATE_LIMIT_PER_MINUTE", "many")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetStorageBucket() != "legacy-bucket" {
		t.Fatalf("expected legacy bucket, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetDemoRateLimitPerMinute() != 10 {
		t.Fatalf("expected default demo rate limit 10, got %d", cfg.GetDemoRateLimitPerMinute())
	}
	if !cfg.GetCookieSecure() {
		t.Fatalf("expected secure cookies for unparsable COOKIE_SECURE")
	}
}
