// Package model holds GraphQL input types and scalar marshalers.
package model

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// CreateArticleInput is the createArticle argument.
type CreateArticleInput struct {
	URL   string
	Title *string
}

// AskQuestionInput is the askQuestion argument.
type AskQuestionInput struct {
	ArticleID uuid.UUID
	Phrase    string
	Comment   *string
}

// PostAnswerInput is the postAnswer argument.
type PostAnswerInput struct {
	QuestionID uuid.UUID
	Phrase     *string
	Meaning    *string
	Nuance     *string
}

// SaveNicknameInput is the saveNickname argument.
type SaveNicknameInput struct {
	Nickname string
}

// UnmarshalCreateArticleInput decodes a validated input object.
func UnmarshalCreateArticleInput(v any) (CreateArticleInput, error) {
	m := asMap(v)
	return CreateArticleInput{
		URL:   stringField(m, "url"),
		Title: optionalField(m, "title"),
	}, nil
}

// UnmarshalAskQuestionInput decodes a validated input object.
func UnmarshalAskQuestionInput(v any) (AskQuestionInput, error) {
	m := asMap(v)
	id, err := uuidField(m, "articleId")
	if err != nil {
		return AskQuestionInput{}, err
	}
	return AskQuestionInput{
		ArticleID: id,
		Phrase:    stringField(m, "phrase"),
		Comment:   optionalField(m, "comment"),
	}, nil
}

// UnmarshalPostAnswerInput decodes a validated input object.
func UnmarshalPostAnswerInput(v any) (PostAnswerInput, error) {
	m := asMap(v)
	id, err := uuidField(m, "questionId")
	if err != nil {
		return PostAnswerInput{}, err
	}
	return PostAnswerInput{
		QuestionID: id,
		Phrase:     optionalField(m, "phrase"),
		Meaning:    optionalField(m, "meaning"),
		Nuance:     optionalField(m, "nuance"),
	}, nil
}

// UnmarshalSaveNicknameInput decodes a validated input object.
func UnmarshalSaveNicknameInput(v any) (SaveNicknameInput, error) {
	return SaveNicknameInput{Nickname: stringField(asMap(v), "nickname")}, nil
}

// Deref returns the empty string for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func optionalField(m map[string]any, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func uuidField(m map[string]any, key string) (uuid.UUID, error) {
	id, err := UnmarshalUUID(m[key])
	if err != nil {
		return uuid.Nil, domain.NewValidationError(key, "must be a valid UUID")
	}
	return id, nil
}
