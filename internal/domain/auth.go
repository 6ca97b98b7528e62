package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the HTTP-only cookie carrying the session JWT.
const SessionCookieName = "token"

// SessionClaims is the claim set signed into the session token.
type SessionClaims struct {
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Identity returns the user id the token refers to, preferring the userId
// claim over the registered subject.
func (c *SessionClaims) Identity() string {
	if id := strings.TrimSpace(c.UserID); id != "" {
		return id
	}
	return strings.TrimSpace(c.Subject)
}

// Session is the outcome of verifying a request's credentials.
type Session struct {
	Authenticated      bool       `json:"authenticated"`
	UserID             string     `json:"userId"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	Role               string     `json:"role"`
	Plan               string     `json:"plan"`
	MonthlyUploadUsage int        `json:"monthlyUploadUsage"`
	MonthlyUploadLimit int        `json:"monthlyUploadLimit"`
	TokenExpiresAt     *time.Time `json:"tokenExpiresAt,omitempty"`
}

// Unauthenticated is the session of a request without a usable credential.
func Unauthenticated() *Session {
	return &Session{Authenticated: false}
}

// MarshalJSON renders an unauthenticated session as {"authenticated":false}
// without the zero-valued profile fields.
func (s Session) MarshalJSON() ([]byte, error) {
	if !s.Authenticated {
		return []byte(`{"authenticated":false}`), nil
	}
	type session Session
	return json.Marshal(session(s))
}

type SessionService interface {
	// ParseToken checks signature and expiry. Failures wrap ErrInvalidToken.
	ParseToken(token string) (*SessionClaims, error)
	// Verify never reports a bad or missing token as an error; those yield an
	// unauthenticated session. Errors are reserved for lookup failures.
	Verify(token string) (*Session, error)
}

// OAuthProvider names a supported third-party identity provider.
type OAuthProvider string

const (
	OAuthProviderGitHub OAuthProvider = "github"
	OAuthProviderGoogle OAuthProvider = "google"
)

type OAuthService interface {
	AuthURL(provider OAuthProvider) (string, error)
}
