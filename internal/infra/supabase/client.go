package supabase

import (
	"fmt"
	"sync"

	"pdfchat-api/internal/domain"

	gotrue "github.com/supabase-community/gotrue-go"
	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

// SupabaseClient implements the domain.SupabaseClient interface
type SupabaseClient struct {
	config domain.Config
	logger domain.Logger

	once    sync.Once
	initErr error
	client  *supabase.Client
}

// NewClient creates the adapter. No client is built until Initialize is called.
func NewClient(config domain.Config, logger domain.Logger) *SupabaseClient {
	return &SupabaseClient{
		config: config,
		logger: logger,
	}
}

// Initialize builds the shared client from the service role credentials.
// Only the first call does any work; later calls return its result.
func (s *SupabaseClient) Initialize() error {
	s.once.Do(func() {
		s.initErr = s.initialize()
	})
	return s.initErr
}

func (s *SupabaseClient) initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and service role key must be provided")
	}

	// supabase-go builds its REST, storage and auth clients without any I/O;
	// requests are only issued when a handle is used.
	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}

// DB returns the client used for table queries, nil before a successful Initialize.
func (s *SupabaseClient) DB() *supabase.Client {
	if s.Initialize() != nil {
		return nil
	}
	return s.client
}

// Storage returns the object storage client.
func (s *SupabaseClient) Storage() *storage_go.Client {
	if s.Initialize() != nil {
		return nil
	}
	return s.client.Storage
}

// Auth returns the auth service client.
func (s *SupabaseClient) Auth() gotrue.Client {
	if s.Initialize() != nil {
		return nil
	}
	return s.client.Auth
}
