package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrChatSessionNotFound  = errors.New("chat session not found")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidFile          = errors.New("invalid file")
	ErrOAuthNotConfigured   = errors.New("oauth provider not configured")
	ErrUnknownOAuthProvider = errors.New("unknown oauth provider")
	ErrChatRelayFailed      = errors.New("chat relay failed")
	ErrChatNotConfigured    = errors.New("chat endpoint not configured")
)
