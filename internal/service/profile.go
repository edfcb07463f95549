package service

import (
	"context"
	"errors"
	"fmt"

	"bookclub/internal/domain"
)

// ProfileService registers public profiles, binding a chosen username
// to the caller's identity.
type ProfileService struct {
	profiles   domain.ProfileRepository
	claims     domain.ClaimStore
	adminEmail string
}

// NewProfileService creates a new ProfileService. Identities whose
// verified email matches adminEmail receive the admin claim when they
// register their profile.
func NewProfileService(profiles domain.ProfileRepository, claims domain.ClaimStore, adminEmail string) *ProfileService {
	return &ProfileService{profiles: profiles, claims: claims, adminEmail: adminEmail}
}

// CreateProfile binds username to the caller's identity. It fails when
// the identity already owns a profile or the username is taken. The
// pre-checks give specific messages; the unique constraints on the
// profiles table settle any race the checks miss.
func (s *ProfileService) CreateProfile(ctx context.Context, ident *domain.Identity, username string) (*domain.Profile, error) {
	if username == "" {
		return nil, domain.NewError(domain.CodeInvalidArgument, "Username must not be empty")
	}

	_, err := s.profiles.GetByUserID(ctx, ident.UID)
	if err == nil {
		return nil, domain.NewError(domain.CodeAlreadyExists, "This user already has a public profile")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up profile by user id: %w", err)
	}

	_, err = s.profiles.GetByUsername(ctx, username)
	if err == nil {
		return nil, domain.NewError(domain.CodeAlreadyExists, "This username already belongs to an existing user")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up profile by username: %w", err)
	}

	// Administrator bootstrap: granting is idempotent, so the configured
	// admin re-registering after a failure is harmless.
	if s.adminEmail != "" && ident.Email == s.adminEmail {
		if err := s.claims.Grant(ctx, ident.UID, domain.AdminClaim); err != nil {
			return nil, fmt.Errorf("grant admin claim: %w", err)
		}
	}

	profile := &domain.Profile{Username: username, UserID: ident.UID}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
