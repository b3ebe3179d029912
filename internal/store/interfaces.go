package store

import (
	"context"

	"chatvault/models"
)

// UserRepository creates and looks up user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Fails with ErrUsernameAlreadyExists on a duplicate
	// username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername performs an exact-match lookup. Absence is signalled
	// with ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ConversationRepository manages chat sessions and their lifecycle.
type ConversationRepository interface {
	// CreateConversation persists a new conversation. An empty title is
	// replaced with the default placeholder.
	CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error)

	// ListConversations returns the user's conversations newest first.
	ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error)

	// UpdateConversationTitle renames a conversation. A missing
	// conversationID is a no-op success; callers must not rely on an error
	// signal for "not found" here.
	UpdateConversationTitle(ctx context.Context, conversationID int64, title string) error

	// DeleteConversation removes the conversation and all of its messages.
	// Messages are deleted first so that no orphaned message is ever
	// observable, even if the process dies between the two statements.
	DeleteConversation(ctx context.Context, conversationID int64) error
}

// MessageRepository appends and reads conversation transcripts.
type MessageRepository interface {
	// AppendMessage persists one turn. The referenced conversation's
	// existence is not verified.
	AppendMessage(ctx context.Context, message models.Message) (models.Message, error)

	// ListMessages returns the transcript oldest first, in exact submission
	// order.
	ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error)
}

// SettingsRepository reads and upserts the per-user settings record.
type SettingsRepository interface {
	// GetUserSettings returns the stored settings, or a default value object
	// with a nil credential when no row exists. Absence is not an error.
	GetUserSettings(ctx context.Context, userID int64) (models.UserSettings, error)

	// UpsertUserSettings replaces any existing row for the user with the
	// given credential and a refreshed timestamp, creating one if absent.
	// Last-writer-wins under concurrent saves for the same user.
	UpsertUserSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)
}
