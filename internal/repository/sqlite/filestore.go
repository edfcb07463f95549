package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bookclub/internal/domain"
)

// FileStore implements domain.ObjectStore using SQLite BLOBs. Stored
// objects are publicly readable at baseURL + "/assets/" + key for as
// long as they exist.
type FileStore struct {
	db      *sql.DB
	baseURL string
}

// NewFileStore creates a new SQLite-backed FileStore serving public
// URLs rooted at baseURL.
func NewFileStore(db *DB, baseURL string) *FileStore {
	return &FileStore{db: db.SqlDB, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Save stores the object under key, replacing any previous object at
// the same key.
func (s *FileStore) Save(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO file_blobs (storage_key, content_type, data) VALUES (?, ?, ?)
		 ON CONFLICT(storage_key) DO UPDATE SET content_type = excluded.content_type, data = excluded.data`,
		key, contentType, data,
	)
	if err != nil {
		return fmt.Errorf("save file blob: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	var data []byte
	var contentType string
	err := s.db.QueryRowContext(ctx,
		`SELECT data, content_type FROM file_blobs WHERE storage_key = ?`, key,
	).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("get file blob: %w", err)
	}
	return data, contentType, nil
}

// PublicURL returns the permanent public URL for a stored object.
func (s *FileStore) PublicURL(key string) string {
	return s.baseURL + "/assets/" + key
}
