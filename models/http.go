package models

// Request and response payloads of the HTTP API. Each operation has an
// explicit shape so that wire contracts stay decoupled from the persistence
// representations.

// AuthRequest is the body of the register and login operations.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful registration or login. The session
// token itself travels in the Authorization response header.
type AuthResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// CreateConversationRequest is the body of the conversation creation
// operation. Title may be empty, in which case the server substitutes
// [DefaultConversationTitle].
type CreateConversationRequest struct {
	Title string `json:"title"`
}

// RenameConversationRequest is the body of the conversation title update
// operation.
type RenameConversationRequest struct {
	Title string `json:"title"`
}

// AppendMessageRequest is the body of the message append operation.
type AppendMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SaveSettingsRequest is the body of the settings save operation.
// A nil APIKey clears the stored credential.
type SaveSettingsRequest struct {
	APIKey *string `json:"api_key"`
}
