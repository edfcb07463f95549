package sqlite_test

import (
	"context"
	"testing"

	"bookclub/internal/domain"
)

func TestClaimRepository_GrantAndClaims(t *testing.T) {
	db := newTestDB(t)
	repo := db.Claims()
	ctx := context.Background()

	if err := repo.Grant(ctx, "uid-a", domain.AdminClaim); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	claims, err := repo.Claims(ctx, "uid-a")
	if err != nil {
		t.Fatalf("Claims: %v", err)
	}
	if !claims[domain.AdminClaim] {
		t.Fatal("expected admin claim to be granted")
	}
}

func TestClaimRepository_Grant_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := db.Claims()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Grant(ctx, "uid-a", domain.AdminClaim); err != nil {
			t.Fatalf("Grant %d: %v", i, err)
		}
	}

	claims, err := repo.Claims(ctx, "uid-a")
	if err != nil {
		t.Fatalf("Claims: %v", err)
	}
	if len(claims) != 1 || !claims[domain.AdminClaim] {
		t.Fatalf("expected exactly the admin claim, got %v", claims)
	}
}

func TestClaimRepository_Claims_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := db.Claims()

	claims, err := repo.Claims(context.Background(), "uid-unknown")
	if err != nil {
		t.Fatalf("Claims: %v", err)
	}
	if len(claims) != 0 {
		t.Fatalf("expected no claims, got %v", claims)
	}
}
