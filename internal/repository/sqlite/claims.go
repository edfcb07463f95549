package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// ClaimRepository implements domain.ClaimStore using SQLite.
type ClaimRepository struct {
	db *sql.DB
}

// NewClaimRepository creates a new SQLite-backed ClaimRepository.
func NewClaimRepository(db *DB) *ClaimRepository {
	return &ClaimRepository{db: db.SqlDB}
}

// Grant attaches a claim to an identity. INSERT OR IGNORE against the
// (user_id, claim) primary key makes repeated grants a no-op.
func (r *ClaimRepository) Grant(ctx context.Context, uid, claim string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO identity_claims (user_id, claim) VALUES (?, ?)`,
		uid, claim,
	)
	if err != nil {
		return fmt.Errorf("grant claim: %w", err)
	}
	return nil
}

// Claims returns all claims granted to the identity. An identity with
// no granted claims yields an empty map, not an error.
func (r *ClaimRepository) Claims(ctx context.Context, uid string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT claim FROM identity_claims WHERE user_id = ?`, uid,
	)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	defer rows.Close()

	claims := make(map[string]bool)
	for rows.Next() {
		var claim string
		if err := rows.Scan(&claim); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims[claim] = true
	}
	return claims, rows.Err()
}
