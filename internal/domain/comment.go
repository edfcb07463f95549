package domain

import (
	"context"
	"time"
)

// Comment attaches a profile-holder's text to a book. Username and
// BookID are non-owning references; the book's existence is not checked
// when a comment is created. Comments are immutable once written.
type Comment struct {
	ID       string
	Content  string
	Username string
	BookID   string
	Created  time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
}
