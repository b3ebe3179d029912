package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"chatvault/models"
)

// HTTPClientConfig carries the connection parameters of the HTTP adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. Missing configuration values fall back to
// http://localhost:8080 and a 15 second timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, username, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/register", username, password)
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/login", username, password)
}

// authenticate posts credentials to the given endpoint, caches the bearer
// token from the Authorization response header, and decodes the identity
// payload.
func (h *httpServerAdapter) authenticate(ctx context.Context, endpoint, username, password string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Username: username, Password: password}).
		Post(endpoint)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	var identity models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &identity); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode auth response: %w", err)
	}

	h.SetToken(token)
	return identity, nil
}

func (h *httpServerAdapter) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	resp, err := h.authedRequest(ctx).Get("/api/conversations")
	if err != nil {
		return nil, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var conversations []models.Conversation
	if err = json.Unmarshal(resp.Body(), &conversations); err != nil {
		return nil, fmt.Errorf("decode conversations response: %w", err)
	}

	return conversations, nil
}

func (h *httpServerAdapter) CreateConversation(ctx context.Context, title string) (models.Conversation, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateConversationRequest{Title: title}).
		Post("/api/conversations")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("create conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	var conversation models.Conversation
	if err = json.Unmarshal(resp.Body(), &conversation); err != nil {
		return models.Conversation{}, fmt.Errorf("decode conversation response: %w", err)
	}

	return conversation, nil
}

func (h *httpServerAdapter) RenameConversation(ctx context.Context, conversationID int64, title string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RenameConversationRequest{Title: title}).
		Put(fmt.Sprintf("/api/conversations/%d", conversationID))
	if err != nil {
		return fmt.Errorf("rename conversation request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteConversation(ctx context.Context, conversationID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/conversations/%d", conversationID))
	if err != nil {
		return fmt.Errorf("delete conversation request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/conversations/%d/messages", conversationID))
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.Message
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return messages, nil
}

func (h *httpServerAdapter) AppendMessage(ctx context.Context, conversationID int64, role, content string) (models.Message, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AppendMessageRequest{Role: role, Content: content}).
		Post(fmt.Sprintf("/api/conversations/%d/messages", conversationID))
	if err != nil {
		return models.Message{}, fmt.Errorf("append message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	var message models.Message
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return models.Message{}, fmt.Errorf("decode message response: %w", err)
	}

	return message, nil
}

func (h *httpServerAdapter) GetSettings(ctx context.Context) (models.UserSettings, error) {
	resp, err := h.authedRequest(ctx).Get("/api/settings")
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSettings{}, err
	}

	var settings models.UserSettings
	if err = json.Unmarshal(resp.Body(), &settings); err != nil {
		return models.UserSettings{}, fmt.Errorf("decode settings response: %w", err)
	}

	return settings, nil
}

func (h *httpServerAdapter) SaveSettings(ctx context.Context, apiKey *string) (models.UserSettings, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SaveSettingsRequest{APIKey: apiKey}).
		Put("/api/settings")
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("save settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSettings{}, err
	}

	var settings models.UserSettings
	if err = json.Unmarshal(resp.Body(), &settings); err != nil {
		return models.UserSettings{}, fmt.Errorf("decode settings response: %w", err)
	}

	return settings, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
