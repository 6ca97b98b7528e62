package handler

import (
	"errors"
	"net/http"
	"strings"

	"pdfchat-api/internal/domain"
	apperrors "pdfchat-api/pkg/errors"
)

// ChatHandler handles chat session requests
type ChatHandler struct {
	chatService    domain.ChatService
	demoService    domain.DemoChatService
	sessionService domain.SessionService
	logger         domain.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	chatService domain.ChatService,
	demoService domain.DemoChatService,
	sessionService domain.SessionService,
	logger domain.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		demoService:    demoService,
		sessionService: sessionService,
		logger:         logger,
	}
}

type userIDRequest struct {
	UserID string `json:"userId"`
}

// ListSessions returns the chat sessions of the user named in the body
func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	var req userIDRequest
	if err := decodeJSONBody(r, &req); err != nil || strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	sessions, err := h.chatService.ListSessions(strings.TrimSpace(req.UserID))
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to fetch chat history")
		return
	}
	if len(sessions) == 0 {
		writeMessage(w, http.StatusNotFound, "No chat history found.")
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

type renameRequest struct {
	ChatID   string `json:"chatId"`
	NewTitle string `json:"newTitle"`
}

// Rename retitles a chat session owned by the signed-in user
func (h *ChatHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := decodeJSONBody(r, &req); err != nil ||
		strings.TrimSpace(req.ChatID) == "" || strings.TrimSpace(req.NewTitle) == "" {
		writeError(w, http.StatusBadRequest, "Chat ID and new title are required")
		return
	}

	// Rename is a browser action; only the session cookie counts.
	token := sessionCookie(r)
	if token == "" {
		writeAppError(w, h.logger, apperrors.NewUnauthorizedError("Unauthorized"), "Unauthorized")
		return
	}

	session, err := h.sessionService.Verify(token)
	if err != nil {
		writeAppError(w, h.logger, err, "Internal server error")
		return
	}
	if !session.Authenticated {
		writeAppError(w, h.logger, apperrors.NewUnauthorizedError("Unauthorized"), "Unauthorized")
		return
	}

	chat, err := h.chatService.RenameSession(session.UserID, strings.TrimSpace(req.ChatID), req.NewTitle)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to rename chat")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Chat renamed successfully",
		"title":   chat.Title,
	})
}

const demoRelayFailedMessage = "Failed to get response from chat service"

// Demo relays an anonymous question about a demo document to the chat service
func (h *ChatHandler) Demo(w http.ResponseWriter, r *http.Request) {
	var req domain.DemoChatRequest
	if err := decodeJSONBody(r, &req); err != nil ||
		strings.TrimSpace(req.PDFID) == "" || strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "PDF ID and message are required")
		return
	}

	body, err := h.demoService.Relay(r.Context(), req)
	if errors.Is(err, domain.ErrChatNotConfigured) {
		h.logger.Warn("Demo chat requested without a chat endpoint")
		writeError(w, http.StatusInternalServerError, "Chat service is not configured")
		return
	}
	if err != nil {
		if errors.Is(err, domain.ErrChatRelayFailed) {
			err = apperrors.NewNetworkError(demoRelayFailedMessage, err)
		}
		writeAppError(w, h.logger, err, demoRelayFailedMessage)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
