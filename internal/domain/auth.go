package domain

import "time"

// TokenPurpose distinguishes verification tokens by the flow that issued them.
type TokenPurpose string

const (
	TokenPurposeVerifyEmail   TokenPurpose = "VERIFY_EMAIL"
	TokenPurposePasswordReset TokenPurpose = "PASSWORD_RESET"
)

// VerificationToken is a single-use, time-boxed credential bound to an email.
// The (identifier, token) pair is the composite key; multiple rows per
// identifier can coexist and callers delete stale ones on successful use.
type VerificationToken struct {
	Identifier string
	Token      string
	Purpose    TokenPurpose
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the token lapsed at the given instant.
func (t *VerificationToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// Account links a user to an external OAuth provider identity.
type Account struct {
	ID                string
	UserID            string
	Provider          string
	ProviderAccountID string
	CreatedAt         time.Time
}

// Principal is the authenticated identity derived from a session token.
type Principal struct {
	UserID   string
	Role     UserRole
	Active   bool
	Verified bool
}
