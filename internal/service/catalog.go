package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"bookclub/internal/asset"
	"bookclub/internal/domain"
)

// CatalogService curates the author and book catalog. All operations
// require administrator privilege, enforced by the guard before any
// call reaches this service.
type CatalogService struct {
	authors domain.AuthorRepository
	books   domain.BookRepository
	store   domain.ObjectStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(authors domain.AuthorRepository, books domain.BookRepository, store domain.ObjectStore) *CatalogService {
	return &CatalogService{authors: authors, books: books, store: store}
}

// AddAuthor creates an author with a unique name.
func (s *CatalogService) AddAuthor(ctx context.Context, name string) (*domain.Author, error) {
	if name == "" {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Author name must not be empty")
	}

	_, err := s.authors.GetByName(ctx, name)
	if err == nil {
		return nil, domain.NewError(domain.CodeAlreadyExists, "An author with that name already exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up author by name: %w", err)
	}

	author := &domain.Author{ID: uuid.NewString(), Name: name}
	if err := s.authors.Create(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

// CreateBook decodes the embedded cover image, stores it durably,
// and records the book with the cover's permanent public URL. The
// object is written and its URL obtained before the book document is
// created, so no book ever points at a missing asset. The author is
// referenced as-is; its existence is not verified.
func (s *CatalogService) CreateBook(ctx context.Context, title, summary, authorID, coverDataURI string) (*domain.Book, error) {
	if title == "" {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Book title must not be empty")
	}

	img, err := asset.DecodeDataURI(coverDataURI)
	if err != nil {
		return nil, err
	}

	key := asset.CoverKey(title, img.ContentType)
	if err := s.store.Save(ctx, key, img.ContentType, img.Data); err != nil {
		return nil, fmt.Errorf("store cover image: %w", err)
	}

	book := &domain.Book{
		ID:       uuid.NewString(),
		Title:    title,
		Summary:  summary,
		ImageURL: s.store.PublicURL(key),
		AuthorID: authorID,
	}
	if err := s.books.Create(ctx, book); err != nil {
		// No compensating delete of the stored cover; the orphaned
		// object is harmless and the key is logged for cleanup.
		slog.Warn("book insert failed after cover upload", "key", key, "error", err)
		return nil, err
	}

	return book, nil
}
