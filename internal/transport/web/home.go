package web

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

type homeView struct {
	Groups []domain.ArticleGroup
	Error  string
}

// Home handles GET /: articles grouped by day, newest first.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	groups, err := h.articles.ListGrouped(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list articles", slog.String("error", err.Error()))
		h.render(w, r, http.StatusInternalServerError, pageHome, "今日の記事", "/api/articles/events",
			homeView{Error: msgLoadArticles})
		return
	}
	h.render(w, r, http.StatusOK, pageHome, "今日の記事", "/api/articles/events", homeView{Groups: groups})
}
