package service

import (
	"errors"
	"strings"
	"sync"

	"pdfchat-api/internal/domain"
)

// MockLogger records messages for assertions
type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	if err != nil {
		msg += " - " + err.Error()
	}
	m.record("ERROR: " + msg)
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

func (m *MockLogger) contains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.messages {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// MockUserRepository for testing
type MockUserRepository struct {
	users    map[string]*domain.User
	getErr   error
	resetErr error

	resetCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) GetByID(id string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserRepository) ResetMonthlyUploadUsage() (int64, error) {
	m.resetCalls++
	if m.resetErr != nil {
		return 0, m.resetErr
	}
	var changed int64
	for _, user := range m.users {
		if user.MonthlyUploadUsage != 0 {
			user.MonthlyUploadUsage = 0
			changed++
		}
	}
	return changed, nil
}

// MockChatRepository for testing
type MockChatRepository struct {
	sessions  map[string]*domain.ChatSession
	listErr   error
	getErr    error
	updateErr error
	updated   map[string]string
}

func NewMockChatRepository() *MockChatRepository {
	return &MockChatRepository{
		sessions: make(map[string]*domain.ChatSession),
		updated:  make(map[string]string),
	}
}

func (m *MockChatRepository) ListByUserID(userID string) ([]*domain.ChatSession, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*domain.ChatSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MockChatRepository) GetByID(id string) (*domain.ChatSession, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrChatSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *MockChatRepository) UpdateTitle(id string, title string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated[id] = title
	if s, ok := m.sessions[id]; ok {
		s.Title = title
	}
	return nil
}

// MockPDFRepository for testing
type MockPDFRepository struct {
	records []*domain.PDFRecord
	err     error
}

func (m *MockPDFRepository) ListByUserID(userID string) ([]*domain.PDFRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.PDFRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockObjectStore for testing
type MockObjectStore struct {
	objects map[string][]domain.StoredObject
	err     error
	prefix  string
}

func (m *MockObjectStore) List(prefix string) ([]domain.StoredObject, error) {
	m.prefix = prefix
	if m.err != nil {
		return nil, m.err
	}
	return m.objects[prefix], nil
}

func (m *MockObjectStore) PublicURL(path string) string {
	return "https://storage.example.com/public/" + path
}

// MockStripper for testing
type MockStripper struct {
	out []byte
	err error
}

func (m *MockStripper) Strip(data []byte) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

var errBackend = errors.New("backend unavailable")
