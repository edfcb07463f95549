package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookclub/internal/domain"
)

// AuthorRepository implements domain.AuthorRepository using SQLite.
type AuthorRepository struct {
	db *sql.DB
}

// NewAuthorRepository creates a new SQLite-backed AuthorRepository.
func NewAuthorRepository(db *DB) *AuthorRepository {
	return &AuthorRepository{db: db.SqlDB}
}

// Create inserts an author. The unique constraint on name is the
// authoritative duplicate check.
func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (id, name, created_at) VALUES (?, ?, ?)`,
		author.ID, author.Name, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert author: %w", err)
	}

	author.CreatedAt = now
	return nil
}

func (r *AuthorRepository) GetByName(ctx context.Context, name string) (*domain.Author, error) {
	author := &domain.Author{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM authors WHERE name = ?`, name,
	).Scan(&author.ID, &author.Name, &author.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query author by name: %w", err)
	}
	return author, nil
}
