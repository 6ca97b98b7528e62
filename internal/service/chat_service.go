package service

import (
	"errors"
	"strings"

	"pdfchat-api/internal/domain"
	apperrors "pdfchat-api/pkg/errors"
)

type chatService struct {
	repo   domain.ChatRepository
	logger domain.Logger
}

func NewChatService(repo domain.ChatRepository, logger domain.Logger) domain.ChatService {
	return &chatService{
		repo:   repo,
		logger: logger,
	}
}

// ListSessions returns the user's sessions, most recently active first.
func (s *chatService) ListSessions(userID string) ([]*domain.ChatSession, error) {
	sessions, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to fetch chat history", err)
	}
	return sessions, nil
}

// RenameSession overwrites the title of a session owned by userID.
func (s *chatService) RenameSession(userID, chatID, title string) (*domain.ChatSession, error) {
	title = normalizeChatTitle(title)
	if title == "" {
		return nil, apperrors.NewValidationError("Chat ID and new title are required")
	}

	session, err := s.repo.GetByID(chatID)
	if errors.Is(err, domain.ErrChatSessionNotFound) {
		return nil, apperrors.NewNotFoundError("Chat session not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to rename chat", err)
	}

	if session.UserID != userID {
		s.logger.Warn("Rename rejected for foreign chat session", "chatId", chatID, "userId", userID)
		return nil, apperrors.NewForbiddenError("Forbidden")
	}

	if err := s.repo.UpdateTitle(chatID, title); err != nil {
		return nil, apperrors.NewInternalError("Failed to rename chat", err)
	}

	session.Title = title
	s.logger.Info("Chat session renamed", "chatId", chatID, "userId", userID)
	return session, nil
}

func normalizeChatTitle(title string) string {
	title = strings.TrimSpace(title)
	runes := []rune(title)
	if len(runes) > domain.MaxChatTitleLength {
		title = strings.TrimSpace(string(runes[:domain.MaxChatTitleLength]))
	}
	return title
}
