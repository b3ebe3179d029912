package store

import (
	"context"
	"fmt"
	"time"

	"chatvault/internal/logger"
	"chatvault/models"
)

// conversationRepository is the SQL-backed implementation of
// [ConversationRepository].
type conversationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConversationRepository constructs a [ConversationRepository] backed by
// the provided database connection and logger.
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateConversation persists a new conversation for the owning user and
// returns it with server-assigned fields (ConversationID, CreatedAt).
// An empty title is replaced with [models.DefaultConversationTitle].
func (r *conversationRepository) CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	if conversation.Title == "" {
		conversation.Title = models.DefaultConversationTitle
	}

	row := r.db.QueryRowContext(ctx, createConversation, conversation.UserID, conversation.Title, time.Now().UTC())

	if err := row.Scan(&conversation.ConversationID, &conversation.UserID, &conversation.Title, &conversation.CreatedAt); err != nil {
		log.Err(err).Str("func", "*conversationRepository.CreateConversation").Msg("error inserting conversation")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return conversation, nil
}

// ListConversations returns all conversations owned by userID, newest first.
// A user with no conversations gets an empty slice, not an error.
func (r *conversationRepository) ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listConversations, userID)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListConversations").Int64("user_id", userID).Msg("error querying conversations")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0)
	for rows.Next() {
		var conversation models.Conversation
		if err = rows.Scan(&conversation.ConversationID, &conversation.UserID, &conversation.Title, &conversation.CreatedAt); err != nil {
			log.Err(err).Str("func", "*conversationRepository.ListConversations").Msg("error scanning conversation row")
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		conversations = append(conversations, conversation)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListConversations").Msg("error iterating conversation rows")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return conversations, nil
}

// UpdateConversationTitle renames the conversation. Renaming a conversation
// that does not exist succeeds without touching any row; existence is
// deliberately not verified here.
func (r *conversationRepository) UpdateConversationTitle(ctx context.Context, conversationID int64, title string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateConversationTitle, conversationID, title); err != nil {
		log.Err(err).Str("func", "*conversationRepository.UpdateConversationTitle").Int64("conversation_id", conversationID).Msg("error updating conversation title")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// DeleteConversation removes the conversation together with its messages.
//
// The message DELETE runs first: if the process dies between the two
// statements, an empty conversation may survive, but a message referencing a
// deleted conversation can never be observed by any subsequent read.
func (r *conversationRepository) DeleteConversation(ctx context.Context, conversationID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteConversationMessages, conversationID); err != nil {
		log.Err(err).Str("func", "*conversationRepository.DeleteConversation").Int64("conversation_id", conversationID).Msg("error deleting conversation messages")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err := r.db.ExecContext(ctx, deleteConversation, conversationID); err != nil {
		log.Err(err).Str("func", "*conversationRepository.DeleteConversation").Int64("conversation_id", conversationID).Msg("error deleting conversation")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
