package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"chatvault/internal/logger"
	"chatvault/internal/service"
	"chatvault/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, username, password string) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	return m.registerUserFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockChatService implements service.ChatService for unit tests.
type mockChatService struct {
	listConversationsFn  func(ctx context.Context, userID int64) ([]models.Conversation, error)
	createConversationFn func(ctx context.Context, userID int64, title string) (models.Conversation, error)
	renameConversationFn func(ctx context.Context, conversationID int64, title string) error
	deleteConversationFn func(ctx context.Context, conversationID int64) error
	listMessagesFn       func(ctx context.Context, conversationID int64) ([]models.Message, error)
	appendMessageFn      func(ctx context.Context, conversationID int64, role, content string) (models.Message, error)
}

func (m *mockChatService) ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return m.listConversationsFn(ctx, userID)
}

func (m *mockChatService) CreateConversation(ctx context.Context, userID int64, title string) (models.Conversation, error) {
	return m.createConversationFn(ctx, userID, title)
}

func (m *mockChatService) RenameConversation(ctx context.Context, conversationID int64, title string) error {
	return m.renameConversationFn(ctx, conversationID, title)
}

func (m *mockChatService) DeleteConversation(ctx context.Context, conversationID int64) error {
	return m.deleteConversationFn(ctx, conversationID)
}

func (m *mockChatService) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	return m.listMessagesFn(ctx, conversationID)
}

func (m *mockChatService) AppendMessage(ctx context.Context, conversationID int64, role, content string) (models.Message, error) {
	return m.appendMessageFn(ctx, conversationID, role, content)
}

// mockSettingsService implements service.SettingsService for unit tests.
type mockSettingsService struct {
	getSettingsFn  func(ctx context.Context, userID int64) (models.UserSettings, error)
	saveSettingsFn func(ctx context.Context, userID int64, apiKey *string) (models.UserSettings, error)
}

func (m *mockSettingsService) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	return m.getSettingsFn(ctx, userID)
}

func (m *mockSettingsService) SaveSettings(ctx context.Context, userID int64, apiKey *string) (models.UserSettings, error) {
	return m.saveSettingsFn(ctx, userID, apiKey)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler from the given mocks. Nil mocks are
// replaced with empty ones so unrelated services can be omitted.
func newTestHandler(t *testing.T, auth service.AuthService, chat service.ChatService, settings service.SettingsService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if chat == nil {
		chat = &mockChatService{}
	}
	if settings == nil {
		settings = &mockSettingsService{}
	}

	svcs := &service.Services{
		AuthService:     auth,
		ChatService:     chat,
		SettingsService: settings,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
