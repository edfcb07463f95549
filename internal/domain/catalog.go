package domain

import (
	"context"
	"time"
)

// Author is a curated catalog entry. Names are unique.
type Author struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Book is a catalog entry whose cover art has already been durably
// stored; ImageURL is the permanent public URL of that asset. AuthorID
// is a plain reference and is not verified at creation time.
type Book struct {
	ID        string
	Title     string
	Summary   string
	ImageURL  string
	AuthorID  string
	CreatedAt time.Time
}

// AuthorRepository defines persistence operations for authors.
type AuthorRepository interface {
	// Create inserts an author. Returns ErrAlreadyExists when an author
	// with the same name already exists.
	Create(ctx context.Context, author *Author) error
	GetByName(ctx context.Context, name string) (*Author, error)
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	Create(ctx context.Context, book *Book) error
	GetByID(ctx context.Context, id string) (*Book, error)
}
