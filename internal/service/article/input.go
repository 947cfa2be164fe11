package article

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const (
	maxURLLen   = 2000
	maxTitleLen = 500
)

// CreateInput holds the new-article form. Both fields are raw form values.
type CreateInput struct {
	URL   string
	Title string
}

func (i *CreateInput) normalize() {
	i.URL = strings.TrimSpace(i.URL)
	i.Title = strings.TrimSpace(i.Title)
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendURLErrors(errs, i.URL)

	if utf8.RuneCountInString(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendURLErrors(errs []domain.FieldError, rawURL string) []domain.FieldError {
	switch {
	case rawURL == "":
		return append(errs, domain.FieldError{Field: "url", Message: "required"})
	case len(rawURL) > maxURLLen:
		return append(errs, domain.FieldError{Field: "url", Message: "too long"})
	case !isValidHTTPURL(rawURL):
		return append(errs, domain.FieldError{Field: "url", Message: "must be a valid HTTP(S) URL"})
	}
	return errs
}

// isValidHTTPURL checks if the URL is a valid HTTP or HTTPS URL.
func isValidHTTPURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
