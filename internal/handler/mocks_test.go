package handler

import (
	"context"
	"encoding/json"

	"pdfchat-api/internal/domain"
)

// Mock logger used by handler package tests.
// MockHandlerLogger keeps the messages of Error calls
type MockHandlerLogger struct {
	errors []string
}

func NewMockHandlerLogger() domain.Logger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.errors = append(l.errors, msg)
}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})  {}

type mockSessionService struct {
	sessions  map[string]*domain.Session
	err       error
	lastToken string
	calls     int
}

func (m *mockSessionService) ParseToken(token string) (*domain.SessionClaims, error) {
	if s, ok := m.sessions[token]; ok {
		return &domain.SessionClaims{UserID: s.UserID}, nil
	}
	return nil, domain.ErrInvalidToken
}

func (m *mockSessionService) Verify(token string) (*domain.Session, error) {
	m.calls++
	m.lastToken = token
	if m.err != nil {
		return nil, m.err
	}
	if s, ok := m.sessions[token]; ok {
		return s, nil
	}
	return domain.Unauthenticated(), nil
}

type mockOAuthService struct {
	urls map[domain.OAuthProvider]string
	err  error
}

func (m *mockOAuthService) AuthURL(provider domain.OAuthProvider) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	u, ok := m.urls[provider]
	if !ok {
		return "", domain.ErrOAuthNotConfigured
	}
	return u, nil
}

type renameCall struct {
	userID, chatID, title string
}

type mockChatService struct {
	sessions  []*domain.ChatSession
	listErr   error
	renameErr error
	renames   []renameCall
	listCalls int
}

func (m *mockChatService) ListSessions(userID string) ([]*domain.ChatSession, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sessions, nil
}

func (m *mockChatService) RenameSession(userID, chatID, title string) (*domain.ChatSession, error) {
	m.renames = append(m.renames, renameCall{userID, chatID, title})
	if m.renameErr != nil {
		return nil, m.renameErr
	}
	return &domain.ChatSession{ID: chatID, UserID: userID, Title: title}, nil
}

type mockDemoChatService struct {
	body    json.RawMessage
	err     error
	lastReq domain.DemoChatRequest
	calls   int
}

func (m *mockDemoChatService) Relay(ctx context.Context, req domain.DemoChatRequest) (json.RawMessage, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.body, nil
}

type mockPDFService struct {
	records     []*domain.PDFRecord
	stored      []*domain.StoredPDF
	optimized   *domain.OptimizeResult
	err         error
	lastUserID  string
	lastPayload []byte
}

func (m *mockPDFService) ListUserPDFs(userID string) ([]*domain.PDFRecord, error) {
	m.lastUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	if m.records == nil {
		return []*domain.PDFRecord{}, nil
	}
	return m.records, nil
}

func (m *mockPDFService) ListStoredPDFs(userID string) ([]*domain.StoredPDF, error) {
	m.lastUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.stored, nil
}

func (m *mockPDFService) Optimize(data []byte) (*domain.OptimizeResult, error) {
	m.lastPayload = data
	if m.err != nil {
		return nil, m.err
	}
	return m.optimized, nil
}

type mockUsageService struct {
	n     int64
	err   error
	calls int
}

func (m *mockUsageService) ResetMonthlyUsage() (int64, error) {
	m.calls++
	return m.n, m.err
}
