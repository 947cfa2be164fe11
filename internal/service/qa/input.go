package qa

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const (
	maxPhraseLen = 500
	maxTextLen   = 2000
)

// AskQuestionInput holds the question form. Text fields are raw form values.
type AskQuestionInput struct {
	ArticleID uuid.UUID
	Phrase    string
	Comment   string
}

// Validate checks all fields and collects all errors.
func (i AskQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}

	phrase := domain.OptionalText(i.Phrase)
	if phrase == nil {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "required"})
	} else if utf8.RuneCountInString(*phrase) > maxPhraseLen {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "too long"})
	}

	errs = appendTextLen(errs, "comment", domain.OptionalText(i.Comment))

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PostAnswerInput holds an answer form. Any one of the three fields is enough.
type PostAnswerInput struct {
	QuestionID uuid.UUID
	Phrase     string
	Meaning    string
	Nuance     string
}

// Validate checks all fields and collects all errors.
func (i PostAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}

	phrase := domain.OptionalText(i.Phrase)
	meaning := domain.OptionalText(i.Meaning)
	nuance := domain.OptionalText(i.Nuance)

	if phrase == nil && meaning == nil && nuance == nil {
		errs = append(errs, domain.FieldError{
			Field:   "answer",
			Message: "at least one of phrase, meaning, nuance is required",
		})
	}

	errs = appendTextLen(errs, "phrase", phrase)
	errs = appendTextLen(errs, "meaning", meaning)
	errs = appendTextLen(errs, "nuance", nuance)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendTextLen(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v != nil && utf8.RuneCountInString(*v) > maxTextLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
