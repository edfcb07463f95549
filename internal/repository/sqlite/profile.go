package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookclub/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using SQLite.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new SQLite-backed ProfileRepository.
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db.SqlDB}
}

// Create inserts a profile. The username primary key and the unique
// index on user_id make the insert the authoritative uniqueness check:
// two racing registrations cannot both commit.
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (username, user_id, created_at) VALUES (?, ?, ?)`,
		profile.Username, profile.UserID, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}

	profile.CreatedAt = now
	return nil
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := r.db.QueryRowContext(ctx,
		`SELECT username, user_id, created_at FROM profiles WHERE username = ?`, username,
	).Scan(&profile.Username, &profile.UserID, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query profile by username: %w", err)
	}
	return profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, uid string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := r.db.QueryRowContext(ctx,
		`SELECT username, user_id, created_at FROM profiles WHERE user_id = ?`, uid,
	).Scan(&profile.Username, &profile.UserID, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query profile by user id: %w", err)
	}
	return profile, nil
}
