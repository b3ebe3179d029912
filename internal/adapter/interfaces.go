// Package adapter provides a client-side SDK for communicating with the
// chatvault server over HTTP/REST.
//
// The primary abstraction is [ServerAdapter], which decouples calling code
// from the underlying transport. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"chatvault/models"
)

// ServerAdapter defines transport-agnostic communication with the chatvault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. Register and Login call it
	// automatically on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and caches the session token issued by
	// the server.
	Register(ctx context.Context, username, password string) (models.AuthResponse, error)

	// Login authenticates an existing account and caches the session token
	// issued by the server.
	Login(ctx context.Context, username, password string) (models.AuthResponse, error)

	// ListConversations returns the authenticated user's conversations,
	// newest first.
	ListConversations(ctx context.Context) ([]models.Conversation, error)

	// CreateConversation starts a new conversation. An empty title receives
	// the server-side default.
	CreateConversation(ctx context.Context, title string) (models.Conversation, error)

	// RenameConversation sets a new title on the given conversation.
	RenameConversation(ctx context.Context, conversationID int64, title string) error

	// DeleteConversation removes the conversation and its transcript.
	DeleteConversation(ctx context.Context, conversationID int64) error

	// ListMessages returns the conversation transcript, oldest first.
	ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error)

	// AppendMessage adds one turn to the conversation transcript.
	AppendMessage(ctx context.Context, conversationID int64, role, content string) (models.Message, error)

	// GetSettings returns the authenticated user's settings.
	GetSettings(ctx context.Context) (models.UserSettings, error)

	// SaveSettings replaces the stored credential. A nil apiKey clears it.
	SaveSettings(ctx context.Context, apiKey *string) (models.UserSettings, error)
}
