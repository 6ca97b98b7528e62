package repository

import (
	"fmt"
	"path"
	"strings"

	"pdfchat-api/internal/domain"

	storage_go "github.com/supabase-community/storage-go"
)

// Storage listings are paged by the server; one page covers any realistic
// per-user library.
const listPageSize = 1000

// SupabaseObjectStore implements domain.ObjectStore on a Supabase storage bucket
type SupabaseObjectStore struct {
	supabaseClient domain.SupabaseClient
	bucket         string
	logger         domain.Logger
}

func NewSupabaseObjectStore(supabaseClient domain.SupabaseClient, bucket string, logger domain.Logger) domain.ObjectStore {
	return &SupabaseObjectStore{
		supabaseClient: supabaseClient,
		bucket:         bucket,
		logger:         logger,
	}
}

// Supabase keeps this object in otherwise empty folders.
const folderPlaceholder = ".emptyFolderPlaceholder"

// List returns the objects directly under prefix. Folder entries, which carry
// no id, and placeholder objects are skipped.
func (s *SupabaseObjectStore) List(prefix string) ([]domain.StoredObject, error) {
	storage := s.supabaseClient.Storage()
	if storage == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	prefix = strings.Trim(prefix, "/")
	files, err := storage.ListFiles(s.bucket, prefix, storage_go.FileSearchOptions{Limit: listPageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, err)
	}

	objects := make([]domain.StoredObject, 0, len(files))
	for _, file := range files {
		if file.Id == "" || file.Name == folderPlaceholder {
			continue
		}
		objects = append(objects, domain.StoredObject{Path: path.Join(prefix, file.Name)})
	}
	return objects, nil
}

// PublicURL returns the public download URL of an object in the bucket
func (s *SupabaseObjectStore) PublicURL(objectPath string) string {
	storage := s.supabaseClient.Storage()
	if storage == nil {
		return ""
	}
	return storage.GetPublicUrl(s.bucket, objectPath).SignedURL
}
