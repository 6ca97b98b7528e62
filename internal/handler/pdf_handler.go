package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"pdfchat-api/internal/domain"

	"github.com/gabriel-vasile/mimetype"
)

const (
	pdfContentType = "application/pdf"
	pdfFormField   = "pdf"

	// Parts up to this size are held in memory while parsing the form.
	multipartMemory = 32 << 20
)

// Size headers reported by Optimize.
const (
	headerOriginalSizeMB  = "X-Original-Size-MB"
	headerOptimizedSizeMB = "X-Optimized-Size-MB"
	headerMBOptimized     = "X-MB-Optimized"
)

// PDFHandler handles HTTP requests for PDF operations
type PDFHandler struct {
	pdfService  domain.PDFService
	logger      domain.Logger
	maxFileSize int64
}

// NewPDFHandler creates a new PDF handler instance
func NewPDFHandler(pdfService domain.PDFService, logger domain.Logger, maxFileSize int64) *PDFHandler {
	return &PDFHandler{
		pdfService:  pdfService,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// GetUserPDFs lists the PDF records of the user named in the body
func (h *PDFHandler) GetUserPDFs(w http.ResponseWriter, r *http.Request) {
	var req userIDRequest
	if err := decodeJSONBody(r, &req); err != nil || strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	records, err := h.pdfService.ListUserPDFs(strings.TrimSpace(req.UserID))
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to fetch PDFs")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// View lists the PDFs stored under the user's storage folder
func (h *PDFHandler) View(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	pdfs, err := h.pdfService.ListStoredPDFs(userID)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to fetch PDFs")
		return
	}
	writeJSON(w, http.StatusOK, pdfs)
}

// Optimize strips document metadata from an uploaded PDF and returns the
// re-serialized file as an attachment.
func (h *PDFHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		if r.ContentLength > h.maxFileSize {
			writeError(w, http.StatusBadRequest, "File too large")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusBadRequest, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(pdfFormField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil || mediaType != pdfContentType {
		writeError(w, http.StatusBadRequest, "Invalid PDF file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded PDF", err)
		writeError(w, http.StatusInternalServerError, "Failed to optimize PDF")
		return
	}
	if !mimetype.Detect(data).Is(pdfContentType) {
		writeError(w, http.StatusBadRequest, "Invalid PDF file")
		return
	}

	result, err := h.pdfService.Optimize(data)
	if errors.Is(err, domain.ErrInvalidFile) {
		writeError(w, http.StatusBadRequest, "Invalid PDF file")
		return
	}
	if err != nil {
		h.logger.Error("Failed to optimize PDF", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "Failed to optimize PDF")
		return
	}

	w.Header().Set("Content-Type", pdfContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="optimized-`+attachmentName(header.Filename)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set(headerOriginalSizeMB, formatMB(result.OriginalSizeMB()))
	w.Header().Set(headerOptimizedSizeMB, formatMB(result.OptimizedSizeMB()))
	w.Header().Set(headerMBOptimized, formatMB(result.SavedMB()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	// multipart does not always wrap the reader error.
	return strings.Contains(err.Error(), "request body too large")
}

// attachmentName keeps the base name of an upload, minus characters that
// would break the quoted Content-Disposition parameter.
func attachmentName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		if r == '"' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return "document.pdf"
	}
	return name
}

func formatMB(mb float64) string {
	return strconv.FormatFloat(mb, 'f', 2, 64)
}
