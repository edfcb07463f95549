package migrations_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"bookclub/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countApplied(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	return n
}

func TestApplyFreshDatabase(t *testing.T) {
	db := openTestDB(t)

	if err := migrations.Apply(context.Background(), db); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if n := countApplied(t, db); n == 0 {
		t.Fatal("expected at least one recorded migration, got none")
	}

	// The schema must actually be in place.
	if _, err := db.Exec(
		"INSERT INTO profiles (username, user_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)",
		"reader", "user-1",
	); err != nil {
		t.Fatalf("insert into migrated profiles table: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := migrations.Apply(context.Background(), db); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	first := countApplied(t, db)

	if err := migrations.Apply(context.Background(), db); err != nil {
		t.Fatalf("second Apply: %v", err)
	}

	if got := countApplied(t, db); got != first {
		t.Fatalf("expected %d recorded migrations after re-run, got %d", first, got)
	}
}
