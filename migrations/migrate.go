// Package migrations holds the embedded schema of the site profile database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// ErrNilDB is returned by Migrate when no connection is given.
var ErrNilDB = errors.New("db is nil")

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending migration to the SQLite database db. goose
// output is discarded since the terminal belongs to the UI.
func Migrate(db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
