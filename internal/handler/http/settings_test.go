package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatvault/models"
)

// ─────────────────────────────────────────────
// get settings
// ─────────────────────────────────────────────

// TestGetSettings_Success verifies that the authenticated user's settings
// come back as JSON.
func TestGetSettings_Success(t *testing.T) {
	key := "sk-live-key"
	settings := &mockSettingsService{
		getSettingsFn: func(_ context.Context, userID int64) (models.UserSettings, error) {
			assert.Equal(t, testUserID, userID)
			return models.UserSettings{UserID: userID, APIKey: &key}, nil
		},
	}
	router := newAuthedRouter(t, nil, settings)

	rec := doAuthed(t, router, http.MethodGet, "/api/settings", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.UserSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testUserID, got.UserID)
	require.NotNil(t, got.APIKey)
	assert.Equal(t, key, *got.APIKey)
}

// TestGetSettings_DefaultWhenNeverSaved verifies that a user who never
// saved settings receives the default object with a null api_key, not an
// error.
func TestGetSettings_DefaultWhenNeverSaved(t *testing.T) {
	settings := &mockSettingsService{
		getSettingsFn: func(_ context.Context, userID int64) (models.UserSettings, error) {
			return models.UserSettings{UserID: userID}, nil
		},
	}
	router := newAuthedRouter(t, nil, settings)

	rec := doAuthed(t, router, http.MethodGet, "/api/settings", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.UserSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testUserID, got.UserID)
	assert.Nil(t, got.APIKey)
}

// TestGetSettings_ServiceError verifies that an infrastructure failure maps
// to 500 Internal Server Error.
func TestGetSettings_ServiceError(t *testing.T) {
	settings := &mockSettingsService{
		getSettingsFn: func(_ context.Context, _ int64) (models.UserSettings, error) {
			return models.UserSettings{}, errors.New("connection reset")
		},
	}
	router := newAuthedRouter(t, nil, settings)

	rec := doAuthed(t, router, http.MethodGet, "/api/settings", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// save settings
// ─────────────────────────────────────────────

// TestSaveSettings_Success verifies that a save request forwards the key to
// the service and returns the stored settings.
func TestSaveSettings_Success(t *testing.T) {
	settings := &mockSettingsService{
		saveSettingsFn: func(_ context.Context, userID int64, apiKey *string) (models.UserSettings, error) {
			assert.Equal(t, testUserID, userID)
			require.NotNil(t, apiKey)
			assert.Equal(t, "sk-new-key", *apiKey)
			return models.UserSettings{UserID: userID, APIKey: apiKey}, nil
		},
	}
	router := newAuthedRouter(t, nil, settings)

	key := "sk-new-key"
	body := jsonBody(t, models.SaveSettingsRequest{APIKey: &key})
	rec := doAuthed(t, router, http.MethodPut, "/api/settings", strings.NewReader(body))

	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.UserSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.NotNil(t, saved.APIKey)
	assert.Equal(t, "sk-new-key", *saved.APIKey)
}

// TestSaveSettings_NullKeyClears verifies that a null api_key in the body is
// forwarded as nil, clearing the stored credential.
func TestSaveSettings_NullKeyClears(t *testing.T) {
	settings := &mockSettingsService{
		saveSettingsFn: func(_ context.Context, userID int64, apiKey *string) (models.UserSettings, error) {
			assert.Nil(t, apiKey)
			return models.UserSettings{UserID: userID}, nil
		},
	}
	router := newAuthedRouter(t, nil, settings)

	rec := doAuthed(t, router, http.MethodPut, "/api/settings", strings.NewReader(`{"api_key": null}`))

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestSaveSettings_InvalidJSON verifies that a malformed body results in
// 400 Bad Request.
func TestSaveSettings_InvalidJSON(t *testing.T) {
	router := newAuthedRouter(t, nil, &mockSettingsService{})

	rec := doAuthed(t, router, http.MethodPut, "/api/settings", strings.NewReader("{oops"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
