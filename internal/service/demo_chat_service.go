package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pdfchat-api/internal/domain"
)

// Upstream responses larger than this are treated as a failed relay.
const maxRelayResponseBytes = 4 << 20

// HTTPDoer is the subset of *http.Client used by the relay.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type demoChatService struct {
	endpoint string
	secret   string
	client   HTTPDoer
	logger   domain.Logger
}

func NewDemoChatService(endpoint, secret string, client HTTPDoer, logger domain.Logger) domain.DemoChatService {
	if client == nil {
		client = http.DefaultClient
	}
	return &demoChatService{
		endpoint: endpoint,
		secret:   secret,
		client:   client,
		logger:   logger,
	}
}

type relayPayload struct {
	domain.DemoChatRequest
	DemoSecret string `json:"demo_secret"`
}

// Relay forwards the request with the demo secret attached and returns the
// upstream body. Bodies that are not JSON are wrapped as {"response": text}.
func (s *demoChatService) Relay(ctx context.Context, req domain.DemoChatRequest) (json.RawMessage, error) {
	if s.endpoint == "" {
		return nil, domain.ErrChatNotConfigured
	}

	payload, err := json.Marshal(relayPayload{DemoChatRequest: req, DemoSecret: s.secret})
	if err != nil {
		return nil, fmt.Errorf("failed to encode relay payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChatRelayFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChatRelayFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrChatRelayFailed, err)
	}
	if len(body) > maxRelayResponseBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", domain.ErrChatRelayFailed, maxRelayResponseBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("Chat service returned an error", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrChatRelayFailed, resp.StatusCode)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed), nil
	}

	wrapped, err := json.Marshal(map[string]string{"response": string(body)})
	if err != nil {
		return nil, fmt.Errorf("failed to wrap relay response: %w", err)
	}
	return wrapped, nil
}
