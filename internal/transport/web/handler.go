// Package web serves the server-rendered pages: the article list, the
// article page with its question and answer forms, sign-up/sign-in and the
// profile page. Forms post back to the same handlers and follow the
// post/redirect/get pattern on success.
package web

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/article"
	"github.com/heartmarshall/newsqa-backend/internal/service/auth"
	"github.com/heartmarshall/newsqa-backend/internal/service/profile"
	"github.com/heartmarshall/newsqa-backend/internal/service/qa"
	"github.com/heartmarshall/newsqa-backend/internal/transport/session"
)

type articleService interface {
	Create(ctx context.Context, input article.CreateInput) (*domain.Article, error)
	ListGrouped(ctx context.Context) ([]domain.ArticleGroup, error)
}

type qaService interface {
	ArticleDetail(ctx context.Context, articleID uuid.UUID) (*domain.ArticleDetail, error)
	AskQuestion(ctx context.Context, input qa.AskQuestionInput) (*domain.Question, error)
	PostAnswer(ctx context.Context, input qa.PostAnswerInput) (*domain.Answer, error)
}

type authService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.SignUpResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	Confirm(ctx context.Context, token string) (*auth.AuthResult, error)
	SignOut(ctx context.Context) error
}

type profileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	SaveNickname(ctx context.Context, input profile.SaveNicknameInput) (*domain.Profile, error)
}

// Site holds presentation settings shared by every page.
type Site struct {
	Title    string
	Location *time.Location
}

// Handler serves the HTML pages.
type Handler struct {
	articles articleService
	qa       qaService
	auth     authService
	profiles profileService
	cookies  *session.Cookies
	site     Site
	log      *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	logger *slog.Logger,
	articles articleService,
	qa qaService,
	authSvc authService,
	profiles profileService,
	cookies *session.Cookies,
	site Site,
) *Handler {
	if site.Location == nil {
		site.Location = time.UTC
	}
	return &Handler{
		articles: articles,
		qa:       qa,
		auth:     authSvc,
		profiles: profiles,
		cookies:  cookies,
		site:     site,
		log:      logger.With("handler", "web"),
	}
}
