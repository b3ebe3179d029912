package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatvault/internal/logger"
	"chatvault/models"
)

// fakeSettingsRepository implements store.SettingsRepository with swappable
// function fields.
type fakeSettingsRepository struct {
	getUserSettingsFunc    func(ctx context.Context, userID int64) (models.UserSettings, error)
	upsertUserSettingsFunc func(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)
}

func (f *fakeSettingsRepository) GetUserSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	return f.getUserSettingsFunc(ctx, userID)
}

func (f *fakeSettingsRepository) UpsertUserSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	return f.upsertUserSettingsFunc(ctx, settings)
}

func TestSettingsService_GetSettings_DefaultWhenAbsent(t *testing.T) {
	repo := &fakeSettingsRepository{
		getUserSettingsFunc: func(_ context.Context, userID int64) (models.UserSettings, error) {
			return models.UserSettings{UserID: userID}, nil
		},
	}
	settings := NewSettingsService(repo, logger.Nop())

	got, err := settings.GetSettings(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Nil(t, got.APIKey)
}

func TestSettingsService_SaveSettings(t *testing.T) {
	repo := &fakeSettingsRepository{
		upsertUserSettingsFunc: func(_ context.Context, settings models.UserSettings) (models.UserSettings, error) {
			assert.Equal(t, int64(7), settings.UserID)
			require.NotNil(t, settings.APIKey)
			assert.Equal(t, "sk-test", *settings.APIKey)
			return settings, nil
		},
	}
	settings := NewSettingsService(repo, logger.Nop())

	key := "sk-test"
	saved, err := settings.SaveSettings(context.Background(), 7, &key)

	require.NoError(t, err)
	require.NotNil(t, saved.APIKey)
	assert.Equal(t, "sk-test", *saved.APIKey)
}

// A nil key is a legitimate save: it clears the stored credential.
func TestSettingsService_SaveSettings_NilKeyClears(t *testing.T) {
	repo := &fakeSettingsRepository{
		upsertUserSettingsFunc: func(_ context.Context, settings models.UserSettings) (models.UserSettings, error) {
			assert.Nil(t, settings.APIKey)
			return settings, nil
		},
	}
	settings := NewSettingsService(repo, logger.Nop())

	saved, err := settings.SaveSettings(context.Background(), 7, nil)

	require.NoError(t, err)
	assert.Nil(t, saved.APIKey)
}

func TestSettingsService_GetSettings_PropagatesError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &fakeSettingsRepository{
		getUserSettingsFunc: func(_ context.Context, _ int64) (models.UserSettings, error) {
			return models.UserSettings{}, storeErr
		},
	}
	settings := NewSettingsService(repo, logger.Nop())

	_, err := settings.GetSettings(context.Background(), 7)

	assert.ErrorIs(t, err, storeErr)
}
