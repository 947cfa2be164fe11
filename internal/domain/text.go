package domain

import (
	"strings"
	"unicode"
)

// AnonymousName is shown for posts whose author has no nickname.
const AnonymousName = "（名無し）"

// OptionalText trims s and returns nil when nothing is left.
// Form fields go through it so that blank input is stored as NULL.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeNickname trims a nickname and compresses runs of whitespace
// (including the ideographic space) into a single ASCII space.
func NormalizeNickname(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DisplayName unwraps a joined profile username for display.
func DisplayName(username *string) string {
	if username == nil || strings.TrimSpace(*username) == "" {
		return AnonymousName
	}
	return *username
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
