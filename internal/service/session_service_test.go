package service

import (
	"errors"
	"testing"
	"time"

	"pdfchat-api/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims domain.SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func validClaims(userID string, ttl time.Duration) domain.SessionClaims {
	return domain.SessionClaims{
		UserID: userID,
		Email:  "claims@example.com",
		Name:   "Claims Name",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestSessionService_Verify_EmptyToken(t *testing.T) {
	service := NewSessionService(testSecret, NewMockUserRepository(), NewMockLogger())

	session, err := service.Verify("   ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.Authenticated {
		t.Fatalf("expected unauthenticated session")
	}
}

func TestSessionService_Verify_ValidToken(t *testing.T) {
	repo := NewMockUserRepository()
	repo.users["u1"] = &domain.User{
		ID: "u1", Email: "ada@example.com", Role: "user", Plan: "pro",
		MonthlyUploadUsage: 2, MonthlyUploadLimit: 50,
	}
	service := NewSessionService(testSecret, repo, NewMockLogger())

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1", time.Hour))
	session, err := service.Verify(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !session.Authenticated || session.UserID != "u1" {
		t.Fatalf("expected authenticated u1, got %+v", session)
	}
	if session.Email != "ada@example.com" {
		t.Fatalf("expected record email to win, got %s", session.Email)
	}
	if session.Name != "Claims Name" {
		t.Fatalf("expected name to fall back to claims, got %s", session.Name)
	}
	if session.Plan != "pro" || session.MonthlyUploadUsage != 2 || session.MonthlyUploadLimit != 50 {
		t.Fatalf("unexpected enrichment %+v", session)
	}
	if session.TokenExpiresAt == nil || time.Until(*session.TokenExpiresAt) <= 0 {
		t.Fatalf("expected future token expiry, got %v", session.TokenExpiresAt)
	}
}

func TestSessionService_Verify_SubjectFallback(t *testing.T) {
	repo := NewMockUserRepository()
	repo.users["u2"] = &domain.User{ID: "u2", Role: "user", Plan: "free", MonthlyUploadLimit: 5}
	service := NewSessionService(testSecret, repo, NewMockLogger())

	claims := validClaims("", time.Hour)
	claims.Subject = "u2"
	session, err := service.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !session.Authenticated || session.UserID != "u2" {
		t.Fatalf("expected subject to identify the user, got %+v", session)
	}
}

func TestSessionService_Verify_RejectedTokens(t *testing.T) {
	repo := NewMockUserRepository()
	repo.users["u1"] = &domain.User{ID: "u1"}
	service := NewSessionService(testSecret, repo, NewMockLogger())

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"expired":      signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1", -time.Minute)),
		"wrong secret": signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("u1", time.Hour)),
		"no identity":  signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("", time.Hour)),
		"unknown user": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("ghost", time.Hour)),
	}

	for name, token := range cases {
		session, err := service.Verify(token)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", name, err)
		}
		if session.Authenticated {
			t.Fatalf("%s: expected unauthenticated session", name)
		}
	}
}

func TestSessionService_ParseToken_InvalidTokenError(t *testing.T) {
	service := NewSessionService(testSecret, NewMockUserRepository(), NewMockLogger())

	_, err := service.ParseToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1", -time.Minute)))
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("u1", time.Hour)).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}
	if _, err := service.ParseToken(unsigned); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg none, got %v", err)
	}
}

func TestSessionService_ParseToken_NoSecret(t *testing.T) {
	service := NewSessionService("", NewMockUserRepository(), NewMockLogger())

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1", time.Hour))
	if _, err := service.ParseToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without a secret, got %v", err)
	}
}

func TestSessionService_Verify_LookupFailure(t *testing.T) {
	repo := NewMockUserRepository()
	repo.getErr = errBackend
	service := NewSessionService(testSecret, repo, NewMockLogger())

	_, err := service.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1", time.Hour)))
	if !errors.Is(err, errBackend) {
		t.Fatalf("expected lookup failure to surface, got %v", err)
	}
}
