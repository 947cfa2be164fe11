package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated identity. Public display data lives in Profile.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	ConfirmedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsConfirmed reports whether the sign-up was confirmed.
func (u *User) IsConfirmed() bool {
	return u.ConfirmedAt != nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// EmailConfirmation is a pending sign-up waiting for its link to be followed.
// Nickname is the one chosen on the sign-up form; it becomes the profile
// username once the address is confirmed.
type EmailConfirmation struct {
	TokenHash string
	UserID    uuid.UUID
	Nickname  *string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the confirmation link can no longer be used.
func (c *EmailConfirmation) IsExpired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}

// Viewer is what the page header knows about the current request.
type Viewer struct {
	UserID   uuid.UUID
	Email    string
	Nickname *string
}

// SignedIn reports whether the request carries a session.
func (v *Viewer) SignedIn() bool {
	return v != nil && v.UserID != uuid.Nil
}

// Label is the header text: nickname when set, email otherwise.
func (v *Viewer) Label() string {
	if v == nil {
		return ""
	}
	if v.Nickname != nil && *v.Nickname != "" {
		return *v.Nickname
	}
	return v.Email
}
