package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"pdfchat-api/internal/domain"
	apperrors "pdfchat-api/pkg/errors"
)

// JSON request bodies are small; anything larger is rejected as malformed.
const maxJSONBodyBytes = 1 << 20

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}

// writeAppError maps an error to its HTTP response. Upstream failures keep
// their message; other server-side causes are logged and replaced with fallback.
func writeAppError(w http.ResponseWriter, logger domain.Logger, err error, fallback string) {
	statusCode := apperrors.GetStatusCode(err)
	appErr, ok := apperrors.As(err)
	switch {
	case apperrors.IsType(err, apperrors.ErrorTypeNetwork):
		logger.Error(appErr.Message, err)
		writeError(w, statusCode, appErr.Message)
	case !ok || statusCode >= http.StatusInternalServerError:
		logger.Error(fallback, err)
		writeError(w, http.StatusInternalServerError, fallback)
	default:
		writeError(w, statusCode, appErr.Message)
	}
}

// sessionCookie returns the session cookie value, or "" when absent
func sessionCookie(r *http.Request) string {
	if cookie, err := r.Cookie(domain.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// extractSessionToken reads the session cookie, falling back to a bearer token
func extractSessionToken(r *http.Request) string {
	if token := sessionCookie(r); token != "" {
		return token
	}
	return bearerToken(r)
}

func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// decodeJSONBody decodes a single JSON object from the request body
func decodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// clientIP returns the first X-Forwarded-For hop, or the peer address
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
