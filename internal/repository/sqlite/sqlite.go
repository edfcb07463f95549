// Package sqlite implements the document-store and object-store
// capabilities on a single SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"bookclub/internal/repository/sqlite/migrations"
)

// DB wraps the SQLite handle and hands out repository implementations.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Apply(ctx, db.SqlDB)
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Profiles returns the SQLite-backed profile repository.
func (db *DB) Profiles() *ProfileRepository { return NewProfileRepository(db) }

// Authors returns the SQLite-backed author repository.
func (db *DB) Authors() *AuthorRepository { return NewAuthorRepository(db) }

// Books returns the SQLite-backed book repository.
func (db *DB) Books() *BookRepository { return NewBookRepository(db) }

// Comments returns the SQLite-backed comment repository.
func (db *DB) Comments() *CommentRepository { return NewCommentRepository(db) }

// Claims returns the SQLite-backed claim store.
func (db *DB) Claims() *ClaimRepository { return NewClaimRepository(db) }

// FileStore returns the SQLite-backed object store. Public URLs for
// stored objects are rooted at baseURL.
func (db *DB) FileStore(baseURL string) *FileStore { return NewFileStore(db, baseURL) }

// isUniqueConstraintError checks if the error is a SQLite unique
// constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && !errors.Is(err, sql.ErrNoRows) &&
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
