package models

import "time"

// Message is one turn in a conversation transcript.
//
// Messages are append-only: they are never updated individually and are
// removed only when their owning conversation is deleted.
type Message struct {
	// MessageID is the unique identifier of the message.
	MessageID int64 `json:"message_id"`

	// ConversationID references the owning conversation.
	ConversationID int64 `json:"conversation_id"`

	// Role labels the speaker of the turn (e.g. "user", "assistant").
	// The persistence layer does not constrain it to an enumerated set.
	Role string `json:"role"`

	// Content is the text of the turn. Required, non-empty.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the message was appended.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
