package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a change notification.
type EventKind string

const (
	// EventQAPosted fires after a question or answer is stored for an article.
	EventQAPosted        EventKind = "qa:posted"
	// EventArticlesChanged fires after the article list changes.
	EventArticlesChanged EventKind = "articles:changed"
)

// Event is a payload-free "something changed" signal. Listeners re-fetch.
type Event struct {
	Kind      EventKind `json:"kind"`
	ArticleID uuid.UUID `json:"articleId"`
	At        time.Time `json:"at"`
}

// NewEvent stamps an event with the current time.
func NewEvent(kind EventKind, articleID uuid.UUID) Event {
	return Event{Kind: kind, ArticleID: articleID, At: time.Now().UTC()}
}
