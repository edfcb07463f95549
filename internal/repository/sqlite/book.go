package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookclub/internal/domain"
)

// BookRepository implements domain.BookRepository using SQLite.
type BookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new SQLite-backed BookRepository.
func NewBookRepository(db *DB) *BookRepository {
	return &BookRepository{db: db.SqlDB}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO books (id, title, summary, image_url, author_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		book.ID, book.Title, book.Summary, book.ImageURL, book.AuthorID, now,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}

	book.CreatedAt = now
	return nil
}

func (r *BookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	book := &domain.Book{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, summary, image_url, author_id, created_at
		 FROM books WHERE id = ?`, id,
	).Scan(&book.ID, &book.Title, &book.Summary, &book.ImageURL, &book.AuthorID, &book.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query book by id: %w", err)
	}
	return book, nil
}
