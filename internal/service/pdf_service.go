package service

import (
	"fmt"
	"path"

	"pdfchat-api/internal/domain"
)

// PDFService implements the PDF listing and optimization business logic
type PDFService struct {
	repo     domain.PDFRepository
	store    domain.ObjectStore
	stripper domain.MetadataStripper
	logger   domain.Logger
}

// NewPDFService creates a new PDF service instance
func NewPDFService(
	repo domain.PDFRepository,
	store domain.ObjectStore,
	stripper domain.MetadataStripper,
	logger domain.Logger,
) *PDFService {
	return &PDFService{
		repo:     repo,
		store:    store,
		stripper: stripper,
		logger:   logger,
	}
}

func (s *PDFService) ListUserPDFs(userID string) ([]*domain.PDFRecord, error) {
	records, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*domain.PDFRecord{}
	}
	return records, nil
}

// ListStoredPDFs lists the objects under the user's storage prefix with
// their public download URLs.
func (s *PDFService) ListStoredPDFs(userID string) ([]*domain.StoredPDF, error) {
	objects, err := s.store.List(domain.UserPDFPrefix(userID))
	if err != nil {
		return nil, err
	}

	pdfs := make([]*domain.StoredPDF, 0, len(objects))
	for _, obj := range objects {
		pdfs = append(pdfs, &domain.StoredPDF{
			Name: path.Base(obj.Path),
			URL:  s.store.PublicURL(obj.Path),
		})
	}
	return pdfs, nil
}

func (s *PDFService) Optimize(data []byte) (*domain.OptimizeResult, error) {
	if len(data) == 0 {
		return nil, domain.ErrInvalidFile
	}

	optimized, err := s.stripper.Strip(data)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize PDF: %w", err)
	}

	result := &domain.OptimizeResult{
		Data:          optimized,
		OriginalSize:  int64(len(data)),
		OptimizedSize: int64(len(optimized)),
	}
	s.logger.Info("PDF optimized",
		"originalBytes", result.OriginalSize,
		"optimizedBytes", result.OptimizedSize,
	)
	return result, nil
}
