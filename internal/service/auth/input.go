package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const (
	minPasswordLen = 8
	// bcrypt ignores everything after 72 bytes.
	maxPasswordLen = 72
	maxEmailLen    = 254
	maxNicknameLen = 50
)

// SignUpInput holds parameters for sign-up.
type SignUpInput struct {
	Email    string
	Password string
	Nickname string
}

func (i *SignUpInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.Nickname = domain.NormalizeNickname(i.Nickname)
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	errs = appendNicknameErrors(errs, i.Nickname)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func appendNicknameErrors(errs []domain.FieldError, nickname string) []domain.FieldError {
	switch {
	case nickname == "":
		return append(errs, domain.FieldError{Field: "nickname", Message: "required"})
	case utf8.RuneCountInString(nickname) > maxNicknameLen:
		return append(errs, domain.FieldError{Field: "nickname", Message: "too long"})
	}
	return errs
}
