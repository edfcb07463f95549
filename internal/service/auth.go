package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"bookclub/internal/domain"
)

// AuthService verifies bearer tokens issued by the identity provider
// and resolves them into identities with their full claim sets.
type AuthService struct {
	secret []byte
	claims domain.ClaimStore
}

// NewAuthService creates a new AuthService. Tokens are verified against
// the shared HMAC secret; claims granted by this system are merged in
// from the claim store.
func NewAuthService(secret string, claims domain.ClaimStore) *AuthService {
	return &AuthService{secret: []byte(secret), claims: claims}
}

// VerifyToken parses and validates a token string and returns the
// caller's identity. Claims carried in the token and claims granted
// through the claim store are merged, so an admin grant takes effect on
// the identity's next request without reissuing the token.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	uid, err := claims.GetSubject()
	if err != nil || uid == "" {
		return nil, domain.ErrUnauthenticated
	}
	email, _ := claims["email"].(string)

	ident := &domain.Identity{
		UID:    uid,
		Email:  email,
		Claims: make(map[string]bool),
	}
	if admin, _ := claims[domain.AdminClaim].(bool); admin {
		ident.Claims[domain.AdminClaim] = true
	}

	granted, err := s.claims.Claims(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("load granted claims: %w", err)
	}
	for claim := range granted {
		ident.Claims[claim] = true
	}

	return ident, nil
}

// Authorize is the guard every operation runs before reading request
// data. A nil identity fails as unauthenticated; when requireAdmin is
// set, an identity without the admin claim is denied. The check is pure
// and has no side effects.
func Authorize(ident *domain.Identity, requireAdmin bool) error {
	if ident == nil {
		return domain.ErrUnauthenticated
	}
	if requireAdmin && !ident.Admin() {
		return domain.ErrPermissionDenied
	}
	return nil
}
