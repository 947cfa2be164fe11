package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question is a phrase-level comprehension query posted against an article.
type Question struct {
	ID         uuid.UUID
	ArticleID  uuid.UUID
	Phrase     string
	Comment    *string
	UserID     uuid.UUID
	AuthorName *string // joined from profiles; nil when the author has no nickname
	CreatedAt  time.Time
}

// Answer explains a question with any of phrase, meaning and nuance.
type Answer struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	// ArticleID is the article of the answered question. It is not stored
	// with the answer; the Q&A service fills it in.
	ArticleID  uuid.UUID
	Phrase     *string
	Meaning    *string
	Nuance     *string
	UserID     uuid.UUID
	AuthorName *string
	CreatedAt  time.Time
}

// IsEmpty reports whether none of the three answer fields is set.
func (a *Answer) IsEmpty() bool {
	return a.Phrase == nil && a.Meaning == nil && a.Nuance == nil
}

// QuestionThread is a question with its answers in posting order.
type QuestionThread struct {
	Question Question
	Answers  []Answer
}

// ArticleDetail is everything the article page shows.
type ArticleDetail struct {
	Article   Article
	Questions []QuestionThread
}

// GroupAnswers attaches answers to their questions. Questions keep their
// order, answers keep the order they were given in, and every question gets
// a non-nil slice. Answers for unknown questions are dropped.
func GroupAnswers(questions []Question, answers []Answer) []QuestionThread {
	threads := make([]QuestionThread, len(questions))
	index := make(map[uuid.UUID]int, len(questions))
	for i, q := range questions {
		threads[i] = QuestionThread{Question: q, Answers: []Answer{}}
		index[q.ID] = i
	}

	for _, a := range answers {
		i, ok := index[a.QuestionID]
		if !ok {
			continue
		}
		threads[i].Answers = append(threads[i].Answers, a)
	}
	return threads
}
