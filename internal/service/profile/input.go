package profile

import (
	"unicode/utf8"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const maxNicknameLen = 50

// SaveNicknameInput holds parameters for the nickname save operation.
type SaveNicknameInput struct {
	Nickname string
}

// Validate validates the nickname input. Callers normalize first.
func (i SaveNicknameInput) Validate() error {
	var errs []domain.FieldError

	if i.Nickname == "" {
		errs = append(errs, domain.FieldError{Field: "nickname", Message: "required"})
	} else if utf8.RuneCountInString(i.Nickname) > maxNicknameLen {
		errs = append(errs, domain.FieldError{Field: "nickname", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
