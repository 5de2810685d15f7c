// Package migrations embeds the SQL schema migrations of both supported
// database backends and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnknownDialect is returned for a dialect without embedded migrations.
var ErrUnknownDialect = errors.New("unknown migration dialect")

// migrationDirs maps a database/sql driver dialect to its goose dialect and
// migration directory.
var migrationDirs = map[string]struct {
	gooseDialect string
	dir          string
}{
	"postgres": {gooseDialect: "pgx", dir: "postgres"},
	"sqlite3":  {gooseDialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations of dialect ("postgres" or "sqlite3")
// to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	target, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(target.gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
