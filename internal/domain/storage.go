package domain

import "context"

// ObjectStore abstracts durable binary storage for cover art.
// The initial implementation stores BLOBs in SQLite; this interface
// allows swapping to filesystem, S3, or another backend later.
type ObjectStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
	// PublicURL returns the long-lived publicly readable URL for a
	// stored object. The URL remains valid for the life of the object.
	PublicURL(key string) string
}
