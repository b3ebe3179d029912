package models

import "time"

// DefaultConversationTitle is assigned when a conversation is created
// without an explicit title.
const DefaultConversationTitle = "New Chat"

// Conversation is a chat session owned by exactly one user.
type Conversation struct {
	// ConversationID is the unique identifier of the conversation.
	ConversationID int64 `json:"conversation_id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Title is the display title of the conversation. Mutable at any time;
	// defaults to [DefaultConversationTitle] when absent at creation.
	Title string `json:"title"`

	// CreatedAt is the timestamp when the conversation was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Conversation model.
func (c Conversation) TableName() string {
	return "conversations"
}
