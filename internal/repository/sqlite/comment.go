package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookclub/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new SQLite-backed CommentRepository.
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db.SqlDB}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, content, username, book_id, created)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.Content, comment.Username, comment.BookID, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	comment.Created = now
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	comment := &domain.Comment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, content, username, book_id, created
		 FROM comments WHERE id = ?`, id,
	).Scan(&comment.ID, &comment.Content, &comment.Username, &comment.BookID, &comment.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query comment by id: %w", err)
	}
	return comment, nil
}
