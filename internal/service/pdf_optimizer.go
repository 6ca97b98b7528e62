package service

import (
	"bytes"
	"fmt"

	"pdfchat-api/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document information entries removed from optimized files.
var strippedInfoKeys = []string{"Title", "Author", "Subject", "Keywords", "Producer", "Creator"}

func init() {
	// pdfcpu would otherwise create a config directory under the user's home.
	api.DisableConfigDir()
}

// PDFMetadataStripper clears identifying document information from PDFs.
type PDFMetadataStripper struct {
	logger domain.Logger
}

func NewPDFMetadataStripper(logger domain.Logger) *PDFMetadataStripper {
	return &PDFMetadataStripper{
		logger: logger,
	}
}

// Strip loads and validates the document, removes the Info dictionary
// entries listed in strippedInfoKeys and re-serializes it. pdfcpu stamps its
// own Producer and ModDate on write.
func (p *PDFMetadataStripper) Strip(data []byte) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to validate PDF: %w", err)
	}

	removed := 0
	if ctx.Info != nil {
		info, err := ctx.DereferenceDict(*ctx.Info)
		if err != nil {
			return nil, fmt.Errorf("failed to read document info: %w", err)
		}
		for _, key := range strippedInfoKeys {
			if info != nil && info.Delete(key) != nil {
				removed++
			}
		}
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	p.logger.Debug("PDF metadata stripped", "removedFields", removed, "pages", ctx.PageCount)
	return buf.Bytes(), nil
}
