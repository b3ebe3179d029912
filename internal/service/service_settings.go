package service

import (
	"context"
	"fmt"

	"chatvault/internal/logger"
	"chatvault/internal/store"
	"chatvault/models"
)

// settingsService is the concrete implementation of SettingsService.
type settingsService struct {
	settingsRepository store.SettingsRepository

	logger *logger.Logger
}

// NewSettingsService constructs a SettingsService wired to the given
// repository.
func NewSettingsService(settings store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settings,
		logger:             logger,
	}
}

// GetSettings returns the user's settings. A user that never saved settings
// gets the default value object with a nil credential, never an error.
func (s *settingsService) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	settings, err := s.settingsRepository.GetUserSettings(ctx, userID)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("settings lookup failed: %w", err)
	}

	return settings, nil
}

// SaveSettings replaces the user's stored credential. Saving again for the
// same user overwrites the previous value; the last writer wins.
func (s *settingsService) SaveSettings(ctx context.Context, userID int64, apiKey *string) (models.UserSettings, error) {
	settings, err := s.settingsRepository.UpsertUserSettings(ctx, models.UserSettings{
		UserID: userID,
		APIKey: apiKey,
	})
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("settings save failed: %w", err)
	}

	return settings, nil
}
