package domain

import (
	"context"
	"time"
)

// Profile is the public record binding a chosen username to an identity.
// The username doubles as the document key. Profiles are created once and
// never mutated or deleted.
type Profile struct {
	Username  string
	UserID    string
	CreatedAt time.Time
}

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// Create inserts a profile. Returns ErrAlreadyExists when the
	// username or the user ID is already bound to a profile.
	Create(ctx context.Context, profile *Profile) error
	GetByUsername(ctx context.Context, username string) (*Profile, error)
	GetByUserID(ctx context.Context, uid string) (*Profile, error)
}
