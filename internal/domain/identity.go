package domain

import "context"

// AdminClaim is the claim controlling access to catalog administration.
const AdminClaim = "admin"

// Identity is the verified caller principal established by the external
// identity provider, plus the claims attached to it.
type Identity struct {
	UID    string
	Email  string
	Claims map[string]bool
}

// Admin reports whether the identity carries the admin claim.
func (i *Identity) Admin() bool {
	return i != nil && i.Claims[AdminClaim]
}

// ClaimStore persists claims granted to identities by this system.
// Claims set directly at the identity provider are merged in at
// verification time and never pass through here.
type ClaimStore interface {
	// Grant attaches a claim to an identity. Granting an already-held
	// claim is a no-op, not an error.
	Grant(ctx context.Context, uid, claim string) error
	Claims(ctx context.Context, uid string) (map[string]bool, error)
}
