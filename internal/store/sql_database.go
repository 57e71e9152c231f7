package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/migrations"
)

// DB wraps the shared *sql.DB pool together with the error classifier used by
// repositories to translate driver errors.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Ping reports whether the database answers within ctx.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
