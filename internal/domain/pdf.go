package domain

import (
	"time"
)

const bytesPerMB = 1024 * 1024

// PDFRecord is a row of the pdfs table.
type PDFRecord struct {
	ID         string     `json:"pdfId"`
	UserID     string     `json:"-"`
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	UploadTime *time.Time `json:"uploadTime"`
}

// StoredPDF is a PDF object found in object storage.
type StoredPDF struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// OptimizeResult holds the re-serialized document and its size accounting.
type OptimizeResult struct {
	Data          []byte
	OriginalSize  int64
	OptimizedSize int64
}

func (r *OptimizeResult) OriginalSizeMB() float64 {
	return BytesToMB(r.OriginalSize)
}

func (r *OptimizeResult) OptimizedSizeMB() float64 {
	return BytesToMB(r.OptimizedSize)
}

// SavedMB is negative when re-encoding grew the file.
func (r *OptimizeResult) SavedMB() float64 {
	return BytesToMB(r.OriginalSize - r.OptimizedSize)
}

func BytesToMB(n int64) float64 {
	return float64(n) / bytesPerMB
}

type PDFRepository interface {
	ListByUserID(userID string) ([]*PDFRecord, error)
}

// MetadataStripper removes document information fields from a PDF.
type MetadataStripper interface {
	Strip(data []byte) ([]byte, error)
}

type PDFService interface {
	ListUserPDFs(userID string) ([]*PDFRecord, error)
	ListStoredPDFs(userID string) ([]*StoredPDF, error)
	Optimize(data []byte) (*OptimizeResult, error)
}
