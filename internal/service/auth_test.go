package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookclub/internal/domain"
	"bookclub/internal/repository/sqlite"
	"bookclub/internal/service"
)

const testSecret = "test-secret-key-for-unit-tests-0123456789"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// signToken mints a token the way the identity provider would.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestVerifyToken_Valid(t *testing.T) {
	db := newTestDB(t)
	auth := service.NewAuthService(testSecret, db.Claims())

	token := signToken(t, jwt.MapClaims{"sub": "uid-a", "email": "a@example.com"})
	ident, err := auth.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if ident.UID != "uid-a" || ident.Email != "a@example.com" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
	if ident.Admin() {
		t.Fatal("expected no admin claim")
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	db := newTestDB(t)
	auth := service.NewAuthService(testSecret, db.Claims())
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", func() string {
			s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": "uid-a", "exp": time.Now().Add(time.Hour).Unix(),
			}).SignedString([]byte("some-other-secret-entirely-1234567890"))
			return s
		}()},
		{"expired", signToken(t, jwt.MapClaims{"sub": "uid-a", "exp": time.Now().Add(-time.Hour).Unix()})},
		{"missing sub", signToken(t, jwt.MapClaims{"email": "a@example.com"})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.VerifyToken(ctx, tc.token)
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestVerifyToken_MergesGrantedClaims(t *testing.T) {
	db := newTestDB(t)
	auth := service.NewAuthService(testSecret, db.Claims())
	ctx := context.Background()

	if err := db.Claims().Grant(ctx, "uid-a", domain.AdminClaim); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	// Token carries no admin claim; the granted one must still apply.
	token := signToken(t, jwt.MapClaims{"sub": "uid-a"})
	ident, err := auth.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if !ident.Admin() {
		t.Fatal("expected granted admin claim to be merged")
	}
}

func TestVerifyToken_TokenAdminClaim(t *testing.T) {
	db := newTestDB(t)
	auth := service.NewAuthService(testSecret, db.Claims())

	token := signToken(t, jwt.MapClaims{"sub": "uid-b", "admin": true})
	ident, err := auth.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if !ident.Admin() {
		t.Fatal("expected token-borne admin claim")
	}
}

func TestAuthorize(t *testing.T) {
	admin := &domain.Identity{UID: "uid-a", Claims: map[string]bool{domain.AdminClaim: true}}
	user := &domain.Identity{UID: "uid-b", Claims: map[string]bool{}}

	if err := service.Authorize(nil, false); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for nil identity, got %v", err)
	}
	if err := service.Authorize(nil, true); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for nil identity (admin), got %v", err)
	}
	if err := service.Authorize(user, false); err != nil {
		t.Fatalf("expected signed-in user to pass, got %v", err)
	}
	if err := service.Authorize(user, true); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-admin, got %v", err)
	}
	if err := service.Authorize(admin, true); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}
