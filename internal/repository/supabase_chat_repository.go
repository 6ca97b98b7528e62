package repository

import (
	"fmt"

	"pdfchat-api/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

const chatSessionsTable = "chat_sessions"

// SupabaseChatRepository implements the domain.ChatRepository interface
type SupabaseChatRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseChatRepository creates a new Supabase chat session repository
func NewSupabaseChatRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.ChatRepository {
	return &SupabaseChatRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// ListByUserID returns the user's sessions, most recently active first
func (r *SupabaseChatRepository) ListByUserID(userID string) ([]*domain.ChatSession, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(chatSessionsTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("last_activity", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}

	sessions := make([]*domain.ChatSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, mapToChatSession(row))
	}
	return sessions, nil
}

// GetByID retrieves the ownership and title of a session
func (r *SupabaseChatRepository) GetByID(id string) (*domain.ChatSession, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(chatSessionsTable).
		Select("id,user_id,title", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrChatSessionNotFound
	}

	return mapToChatSession(rows[0]), nil
}

// UpdateTitle overwrites the title column of a session
func (r *SupabaseChatRepository) UpdateTitle(id string, title string) error {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return err
	}

	_, _, err = client.From(chatSessionsTable).
		Update(map[string]interface{}{"title": title}, "minimal", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update chat title: %w", err)
	}

	r.logger.Info("Chat session renamed", "chat_session_id", id)
	return nil
}

func mapToChatSession(data map[string]interface{}) *domain.ChatSession {
	return &domain.ChatSession{
		ID:           getString(data, "id"),
		UserID:       getString(data, "user_id"),
		ChatHistory:  getJSONArray(data, "chat_history"),
		LastActivity: getTime(data, "last_activity"),
		LatestPDFID:  getStringPointer(data, "latest_pdf_id"),
		Title:        getString(data, "title"),
	}
}
