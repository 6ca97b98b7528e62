package handler

import (
	"crypto/subtle"
	"net/http"

	"pdfchat-api/internal/domain"
	apperrors "pdfchat-api/pkg/errors"
)

// CronHandler serves the scheduled maintenance jobs
type CronHandler struct {
	usageService domain.UsageService
	logger       domain.Logger
	secret       string
}

// NewCronHandler creates a new cron handler. An empty secret rejects every call.
func NewCronHandler(usageService domain.UsageService, logger domain.Logger, secret string) *CronHandler {
	return &CronHandler{
		usageService: usageService,
		logger:       logger,
		secret:       secret,
	}
}

// ResetUsage zeroes every user's monthly upload counter
func (h *CronHandler) ResetUsage(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeAppError(w, h.logger, apperrors.NewUnauthorizedError("Unauthorized"), "Unauthorized")
		return
	}

	n, err := h.usageService.ResetMonthlyUsage()
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to reset usage")
		return
	}

	h.logger.Info("Monthly usage reset completed", "users", n)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CronHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	token := bearerToken(r)
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
