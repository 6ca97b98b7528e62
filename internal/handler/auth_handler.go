package handler

import (
	"errors"
	"net/http"

	"pdfchat-api/internal/domain"
)

// AuthHandler handles session and sign-in related requests
type AuthHandler struct {
	sessionService domain.SessionService
	oauthService   domain.OAuthService
	logger         domain.Logger
	cookieSecure   bool
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(sessionService domain.SessionService, oauthService domain.OAuthService, logger domain.Logger, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		oauthService:   oauthService,
		logger:         logger,
		cookieSecure:   cookieSecure,
	}
}

// CurrentUser reports the caller's session. Missing or bad credentials are
// not an error: the response is {"authenticated":false}.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.Verify(extractSessionToken(r))
	if err != nil {
		h.logger.Error("Failed to verify session", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// SignOut expires the session cookie
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(domain.SessionCookieName); err != nil {
		writeMessage(w, http.StatusOK, "Already signed out")
		return
	}

	http.SetCookie(w, h.expiredSessionCookie())
	writeMessage(w, http.StatusOK, "Signed out successfully")
}

func (h *AuthHandler) expiredSessionCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteNoneMode,
	}
	// Browsers drop SameSite=None cookies that are not Secure.
	if !h.cookieSecure {
		cookie.SameSite = http.SameSiteLaxMode
	}
	return cookie
}

func (h *AuthHandler) GitHubRedirect(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, domain.OAuthProviderGitHub, "GitHub")
}

func (h *AuthHandler) GoogleRedirect(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, domain.OAuthProviderGoogle, "Google")
}

func (h *AuthHandler) redirect(w http.ResponseWriter, r *http.Request, provider domain.OAuthProvider, displayName string) {
	authURL, err := h.oauthService.AuthURL(provider)
	if errors.Is(err, domain.ErrOAuthNotConfigured) {
		h.logger.Warn("OAuth redirect requested for unconfigured provider", "provider", string(provider))
		writeError(w, http.StatusInternalServerError, displayName+" OAuth is not configured")
		return
	}
	if err != nil {
		h.logger.Error("Failed to build OAuth URL", err, "provider", string(provider))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}
