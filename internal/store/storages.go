package store

import "chatvault/internal/logger"

// Storages bundles every repository backed by the shared [DB] handle.
type Storages struct {
	UserRepository         UserRepository
	ConversationRepository ConversationRepository
	MessageRepository      MessageRepository
	SettingsRepository     SettingsRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		ConversationRepository: NewConversationRepository(db, logger),
		MessageRepository:      NewMessageRepository(db, logger),
		SettingsRepository:     NewSettingsRepository(db, logger),
	}
}
