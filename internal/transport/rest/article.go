package rest

import (
	"context"
	"log/slog"
	"net/http"
)

type titleService interface {
	SuggestTitle(ctx context.Context, rawURL string) (string, error)
}

// ArticleHandler serves the title lookup behind the new-article form.
// Articles and Q&A themselves are served over GraphQL.
type ArticleHandler struct {
	articles titleService
	log      *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(articles titleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, log: logger.With("handler", "article")}
}

// SuggestTitle handles GET /articles/title?url=.
func (h *ArticleHandler) SuggestTitle(w http.ResponseWriter, r *http.Request) {
	title, err := h.articles.SuggestTitle(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"title": title})
}
