package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a registered news item.
type Article struct {
	ID        uuid.UUID
	Title     *string
	URL       *string
	CreatedAt time.Time
}

// DisplayTitle returns the title, falling back to the URL.
func (a *Article) DisplayTitle() string {
	if a.Title != nil && *a.Title != "" {
		return *a.Title
	}
	return Deref(a.URL)
}

// ArticleGroup is a run of articles created on the same calendar date.
type ArticleGroup struct {
	Date     time.Time // midnight in the grouping location
	Articles []Article
}

// GroupArticlesByDate splits articles into per-day groups in loc. The input
// order is preserved, so a newest-first list yields newest-first groups.
func GroupArticlesByDate(articles []Article, loc *time.Location) []ArticleGroup {
	if loc == nil {
		loc = time.UTC
	}

	groups := make([]ArticleGroup, 0)
	for _, a := range articles {
		t := a.CreatedAt.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)

		n := len(groups)
		if n > 0 && groups[n-1].Date.Equal(day) {
			groups[n-1].Articles = append(groups[n-1].Articles, a)
			continue
		}
		groups = append(groups, ArticleGroup{Date: day, Articles: []Article{a}})
	}
	return groups
}
