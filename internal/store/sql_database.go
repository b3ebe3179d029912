// Package store owns the chatvault relational schema and executes all reads
// and writes against it. It exposes one repository per entity (users,
// conversations, messages, user settings) over a shared [DB] handle.
//
// Two backends are supported behind the same query text: the default
// embedded SQLite file store and PostgreSQL. Driver-level failures are
// normalised by an [ErrorClassifier] so repositories can tell uniqueness
// violations apart from infrastructure faults without knowing the driver.
package store

import (
	"context"
	"database/sql"
	"strings"

	"chatvault/internal/config"
	"chatvault/internal/logger"
	"chatvault/migrations"
)

// DB wraps the shared database handle together with its driver-specific
// error classifier and migration dialect.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	dialect         string
	logger          *logger.Logger
}

// NewConnect opens a connection to the backend selected by the DSN:
// a postgres:// or postgresql:// URI selects PostgreSQL, anything else is
// treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate brings the schema up to date for the connected backend.
// Safe to call on every start: applied versions are skipped.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify normalises a driver-level error. A nil classifier treats every
// error as non-retryable, which only happens in hand-constructed test DBs.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassifier == nil {
		return NonRetryable
	}

	return db.errorClassifier.Classify(err)
}
