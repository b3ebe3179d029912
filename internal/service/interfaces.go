package service

import (
	"context"

	"chatvault/models"
)

// AuthService handles user registration, credential verification, and the
// session token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ChatService manages conversations and their message transcripts.
// Every method is a thin pass-through to the store; ordering guarantees are
// contributed entirely by the repositories.
type ChatService interface {
	ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error)
	CreateConversation(ctx context.Context, userID int64, title string) (models.Conversation, error)
	RenameConversation(ctx context.Context, conversationID int64, title string) error
	DeleteConversation(ctx context.Context, conversationID int64) error
	ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error)
	AppendMessage(ctx context.Context, conversationID int64, role, content string) (models.Message, error)
}

// SettingsService reads and saves the per-user settings record.
type SettingsService interface {
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	SaveSettings(ctx context.Context, userID int64, apiKey *string) (models.UserSettings, error)
}
