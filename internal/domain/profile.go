package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public side of a user. ID equals the user's ID.
type Profile struct {
	ID        uuid.UUID
	Username  *string
	UpdatedAt time.Time
}

// HasNickname reports whether the profile may be used for posting.
func (p *Profile) HasNickname() bool {
	return p != nil && p.Username != nil && *p.Username != ""
}
