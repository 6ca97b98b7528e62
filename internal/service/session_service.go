package service

import (
	"errors"
	"fmt"
	"strings"

	"pdfchat-api/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type sessionService struct {
	secret   []byte
	userRepo domain.UserRepository
	logger   domain.Logger
}

func NewSessionService(secret string, userRepo domain.UserRepository, logger domain.Logger) domain.SessionService {
	return &sessionService{
		secret:   []byte(secret),
		userRepo: userRepo,
		logger:   logger,
	}
}

// ParseToken validates the signature and expiry of a session token and
// returns its claims. Only HMAC-signed tokens are accepted.
func (s *sessionService) ParseToken(token string) (*domain.SessionClaims, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("%w: signing secret not configured", domain.ErrInvalidToken)
	}

	claims := &domain.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Identity() == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidToken)
	}
	return claims, nil
}

func (s *sessionService) Verify(token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Unauthenticated(), nil
	}

	claims, err := s.ParseToken(token)
	if err != nil {
		s.logger.Debug("Session token rejected", "error", err.Error())
		return domain.Unauthenticated(), nil
	}

	userID := claims.Identity()
	user, err := s.userRepo.GetByID(userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn("Session token refers to unknown user", "userId", userID)
		return domain.Unauthenticated(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	session := &domain.Session{
		Authenticated:      true,
		UserID:             userID,
		Email:              user.Email,
		Name:               user.Name,
		Role:               user.Role,
		Plan:               user.Plan,
		MonthlyUploadUsage: user.MonthlyUploadUsage,
		MonthlyUploadLimit: user.MonthlyUploadLimit,
	}
	if session.Email == "" {
		session.Email = claims.Email
	}
	if session.Name == "" {
		session.Name = claims.Name
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time.UTC()
		session.TokenExpiresAt = &expiresAt
	}
	return session, nil
}
