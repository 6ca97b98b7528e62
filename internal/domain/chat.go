package domain

import (
	"context"
	"encoding/json"
	"time"
)

// MaxChatTitleLength caps renamed titles, counted in runes.
const MaxChatTitleLength = 100

// ChatSession is a row of the chat_sessions table.
type ChatSession struct {
	ID           string          `json:"chat_session_id"`
	UserID       string          `json:"-"`
	ChatHistory  json.RawMessage `json:"chat_history"`
	LastActivity *time.Time      `json:"last_activity"`
	LatestPDFID  *string         `json:"latest_pdfId"`
	Title        string          `json:"title"`
}

type ChatRepository interface {
	ListByUserID(userID string) ([]*ChatSession, error)
	GetByID(id string) (*ChatSession, error)
	UpdateTitle(id string, title string) error
}

type ChatService interface {
	ListSessions(userID string) ([]*ChatSession, error)
	RenameSession(userID, chatID, title string) (*ChatSession, error)
}

// DemoChatRequest is relayed to the external chat-completion endpoint.
type DemoChatRequest struct {
	PDFID         string `json:"pdfId"`
	Message       string `json:"message"`
	ChatSessionID string `json:"chat_session_id,omitempty"`
}

type DemoChatService interface {
	Relay(ctx context.Context, req DemoChatRequest) (json.RawMessage, error)
}
