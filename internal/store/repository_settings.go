package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chatvault/internal/logger"
	"chatvault/models"
)

// settingsRepository is the SQL-backed implementation of
// [SettingsRepository].
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserSettings returns the settings row for userID. When no row exists
// the default value object (nil credential) is returned instead of an error;
// settings are optional and absence is an expected state. This is
// deliberately asymmetric with user lookups, where absence is signalled.
func (r *settingsRepository) GetUserSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	var settings models.UserSettings
	row := r.db.QueryRowContext(ctx, getUserSettings, userID)

	if err := row.Scan(&settings.UserID, &settings.APIKey, &settings.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserSettings{UserID: userID}, nil
		}

		log.Err(err).Str("func", "*settingsRepository.GetUserSettings").Int64("user_id", userID).Msg("error querying user settings")
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return settings, nil
}

// UpsertUserSettings replaces the settings row for the user, creating one if
// absent. Atomicity under concurrent saves for the same user comes from the
// engine's ON CONFLICT clause; the last writer wins.
func (r *settingsRepository) UpsertUserSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertUserSettings, settings.UserID, settings.APIKey, time.Now().UTC())

	if err := row.Scan(&settings.UserID, &settings.APIKey, &settings.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertUserSettings").Int64("user_id", settings.UserID).Msg("error upserting user settings")
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return settings, nil
}
