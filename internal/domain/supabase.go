package domain

import (
	gotrue "github.com/supabase-community/gotrue-go"
	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

// SupabaseClient is the process-wide credential store adapter. Initialize is
// safe to call any number of times; only the first call builds the client.
type SupabaseClient interface {
	Initialize() error

	DB() *supabase.Client
	Storage() *storage_go.Client
	Auth() gotrue.Client
}
