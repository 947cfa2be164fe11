package auth

import (
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// AuthResult is returned by operations that open a session.
type AuthResult struct {
	AccessToken      string
	RefreshToken     string // raw token, NOT hash
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	User             *domain.User
	Profile          *domain.Profile
}

// NeedsNickname reports whether the signed-in user still has to pick a
// nickname before posting.
func (r *AuthResult) NeedsNickname() bool {
	return !r.Profile.HasNickname()
}

// SignUpResult is returned by SignUp. Exactly one of Pending or Session is set.
type SignUpResult struct {
	// Pending means a confirmation link was issued and no session exists yet.
	Pending bool
	Email   string
	Session *AuthResult
}
