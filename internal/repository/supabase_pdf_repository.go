package repository

import (
	"fmt"

	"pdfchat-api/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

const pdfsTable = "pdfs"

// SupabasePDFRepository implements the domain.PDFRepository interface
type SupabasePDFRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabasePDFRepository creates a new Supabase PDF record repository
func NewSupabasePDFRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.PDFRepository {
	return &SupabasePDFRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// ListByUserID returns the user's PDF records, newest upload first
func (r *SupabasePDFRepository) ListByUserID(userID string) ([]*domain.PDFRecord, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(pdfsTable).
		Select("id,user_id,name,url,upload_time", "", false).
		Eq("user_id", userID).
		Order("upload_time", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list pdfs: %w", err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.PDFRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.PDFRecord{
			ID:         getString(row, "id"),
			UserID:     getString(row, "user_id"),
			Name:       getString(row, "name"),
			URL:        getString(row, "url"),
			UploadTime: getTime(row, "upload_time"),
		})
	}
	return records, nil
}
