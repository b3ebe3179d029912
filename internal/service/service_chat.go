package service

import (
	"context"
	"fmt"

	"chatvault/internal/logger"
	"chatvault/internal/store"
	"chatvault/models"
)

// chatService is the concrete implementation of ChatService over the
// conversation and message repositories.
type chatService struct {
	conversationRepository store.ConversationRepository
	messageRepository      store.MessageRepository

	logger *logger.Logger
}

// NewChatService constructs a ChatService wired to the given repositories.
func NewChatService(conversations store.ConversationRepository, messages store.MessageRepository, logger *logger.Logger) ChatService {
	return &chatService{
		conversationRepository: conversations,
		messageRepository:      messages,
		logger:                 logger,
	}
}

// ListConversations returns the user's conversations newest first.
func (c *chatService) ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	conversations, err := c.conversationRepository.ListConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations failed: %w", err)
	}

	return conversations, nil
}

// CreateConversation starts a new conversation for the user. The title
// default is substituted by the store when empty.
func (c *chatService) CreateConversation(ctx context.Context, userID int64, title string) (models.Conversation, error) {
	conversation, err := c.conversationRepository.CreateConversation(ctx, models.Conversation{
		UserID: userID,
		Title:  title,
	})
	if err != nil {
		return models.Conversation{}, fmt.Errorf("conversation creation failed: %w", err)
	}

	return conversation, nil
}

// RenameConversation sets a new title. Renaming a conversation that does not
// exist is a silent success; the store does not verify existence first.
func (c *chatService) RenameConversation(ctx context.Context, conversationID int64, title string) error {
	if err := c.conversationRepository.UpdateConversationTitle(ctx, conversationID, title); err != nil {
		return fmt.Errorf("conversation rename failed: %w", err)
	}

	return nil
}

// DeleteConversation removes the conversation and its entire transcript.
func (c *chatService) DeleteConversation(ctx context.Context, conversationID int64) error {
	if err := c.conversationRepository.DeleteConversation(ctx, conversationID); err != nil {
		return fmt.Errorf("conversation deletion failed: %w", err)
	}

	return nil
}

// ListMessages returns the transcript oldest first.
func (c *chatService) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	messages, err := c.messageRepository.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing messages failed: %w", err)
	}

	return messages, nil
}

// AppendMessage adds one turn to the conversation. Content must be
// non-empty; the referenced conversation's existence is not verified.
func (c *chatService) AppendMessage(ctx context.Context, conversationID int64, role, content string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if content == "" {
		log.Error().Int64("conversation_id", conversationID).Msg("empty message content provided")
		return models.Message{}, ErrInvalidDataProvided
	}

	message, err := c.messageRepository.AppendMessage(ctx, models.Message{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("message append failed: %w", err)
	}

	return message, nil
}
