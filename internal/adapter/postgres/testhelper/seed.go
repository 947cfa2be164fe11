package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a confirmed user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		ConfirmedAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, confirmed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.ConfirmedAt, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProfile upserts a profile with the given nickname (nil for none).
func SeedProfile(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, nickname *string) domain.Profile {
	t.Helper()

	p := domain.Profile{ID: userID, Username: nickname, UpdatedAt: time.Now().UTC().Truncate(time.Microsecond)}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, username, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at`,
		p.ID, p.Username, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedArticle inserts an article created at the given time.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, title string, createdAt time.Time) domain.Article {
	t.Helper()

	suffix := uniqueSuffix()
	url := "https://news.example.com/" + suffix
	a := domain.Article{
		ID:        uuid.New(),
		Title:     domain.OptionalText(title),
		URL:       &url,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO articles (id, title, url, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Title, a.URL, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle: %v", err)
	}

	return a
}

// SeedQuestion inserts a question on articleID by userID.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, articleID, userID uuid.UUID, phrase string, createdAt time.Time) domain.Question {
	t.Helper()

	q := domain.Question{
		ID:        uuid.New(),
		ArticleID: articleID,
		Phrase:    phrase,
		UserID:    userID,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO questions (id, article_id, phrase, user_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		q.ID, q.ArticleID, q.Phrase, q.UserID, q.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion: %v", err)
	}

	return q
}

// SeedAnswer inserts an answer with only the meaning field set.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, questionID, userID uuid.UUID, meaning string, createdAt time.Time) domain.Answer {
	t.Helper()

	a := domain.Answer{
		ID:         uuid.New(),
		QuestionID: questionID,
		Meaning:    &meaning,
		UserID:     userID,
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO answers (id, question_id, meaning, user_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.QuestionID, a.Meaning, a.UserID, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer: %v", err)
	}

	return a
}
