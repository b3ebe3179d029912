package models

import "time"

// UserSettings holds the optional per-user settings record.
// At most one row exists per user; saves replace the existing record.
type UserSettings struct {
	// UserID references the owning user and is the unique key of the record.
	UserID int64 `json:"user_id"`

	// APIKey is the user's stored API credential. Nil when the user has
	// never saved settings or has cleared the value.
	APIKey *string `json:"api_key"`

	// UpdatedAt is refreshed on every save.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the UserSettings model.
func (s UserSettings) TableName() string {
	return "user_settings"
}
