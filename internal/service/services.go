package service

import (
	"chatvault/internal/config"
	"chatvault/internal/logger"
	"chatvault/internal/store"
)

// Services bundles every application service exposed to the transport layer.
type Services struct {
	AuthService     AuthService
	ChatService     ChatService
	SettingsService SettingsService
}

// NewServices wires all services to the given repositories.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		ChatService:     NewChatService(storages.ConversationRepository, storages.MessageRepository, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, logger),
	}
}
