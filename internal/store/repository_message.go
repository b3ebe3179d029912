package store

import (
	"context"
	"fmt"
	"time"

	"chatvault/internal/logger"
	"chatvault/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// AppendMessage persists one conversation turn and returns it with
// server-assigned fields (MessageID, CreatedAt). The referenced
// conversation's existence is not verified before the write.
func (r *messageRepository) AppendMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, appendMessage, message.ConversationID, message.Role, message.Content, time.Now().UTC())

	if err := row.Scan(&message.MessageID, &message.ConversationID, &message.Role, &message.Content, &message.CreatedAt); err != nil {
		log.Err(err).Str("func", "*messageRepository.AppendMessage").Int64("conversation_id", message.ConversationID).Msg("error inserting message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return message, nil
}

// ListMessages returns the transcript of the conversation oldest first.
// Ties on creation time are broken by message identifier, so the order is
// always the exact submission order. A deleted or unknown conversation
// yields an empty slice.
func (r *messageRepository) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMessages, conversationID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Int64("conversation_id", conversationID).Msg("error querying messages")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		if err = rows.Scan(&message.MessageID, &message.ConversationID, &message.Role, &message.Content, &message.CreatedAt); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error scanning message row")
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error iterating message rows")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return messages, nil
}
