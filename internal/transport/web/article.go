package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/article"
	"github.com/heartmarshall/newsqa-backend/internal/service/qa"
)

type newArticleView struct {
	Form    form
	Created *domain.Article
}

type articleView struct {
	ArticleID uuid.UUID
	Detail    *domain.ArticleDetail
	NotFound  bool
	Error     string
	Question  form
	// AnswerFor is the question whose answer form carries Answer.
	AnswerFor uuid.UUID
	Answer    form
}

// AnswerTarget reports whether the answer form of question id carries the
// submitted values.
func (v articleView) AnswerTarget(id uuid.UUID) bool {
	return v.AnswerFor != uuid.Nil && v.AnswerFor == id
}

// NewArticle handles GET /new-article.
func (h *Handler) NewArticle(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageNewArticle, "記事を登録", "", newArticleView{})
}

// CreateArticle handles POST /new-article. Success shows a confirmation
// screen with links to the list, the new article and a fresh form.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	f := newForm(r, "url", "title")

	a, err := h.articles.Create(r.Context(), article.CreateInput{URL: f.Get("url"), Title: f.Get("title")})
	if err != nil {
		if gate(w, r, err) {
			return
		}
		status, msgs := h.formError(r, err, msgGeneric)
		f.Errors = msgs
		h.render(w, r, status, pageNewArticle, "記事を登録", "", newArticleView{Form: f})
		return
	}

	h.render(w, r, http.StatusCreated, pageNewArticle, "記事を追加しました", "", newArticleView{Created: a})
}

// Article handles GET /articles/{id}. Unknown and malformed ids render the
// page shell with empty sections and a 404.
func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.renderArticle(w, r, http.StatusNotFound, articleView{NotFound: true})
		return
	}
	h.renderArticle(w, r, http.StatusOK, articleView{ArticleID: id})
}

// AskQuestion handles POST /articles/{id}/questions.
func (h *Handler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.renderArticle(w, r, http.StatusNotFound, articleView{NotFound: true})
		return
	}

	f := newForm(r, "phrase", "comment")
	_, err = h.qa.AskQuestion(r.Context(), qa.AskQuestionInput{
		ArticleID: id,
		Phrase:    f.Get("phrase"),
		Comment:   f.Get("comment"),
	})
	if err != nil {
		if gate(w, r, err) {
			return
		}
		var status int
		if errors.Is(err, domain.ErrNotFound) {
			status, f.Errors = http.StatusNotFound, []string{msgArticleMissing}
		} else {
			status, f.Errors = h.formError(r, err, msgPostFailed)
		}
		h.renderArticle(w, r, status, articleView{ArticleID: id, Question: f})
		return
	}

	redirect(w, r, articlePath(id))
}

// PostAnswer handles POST /questions/{id}/answers. The form's article id is
// only used to re-render the page on failure; success redirects to the
// article the question belongs to.
func (h *Handler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	articleID, _ := uuid.Parse(r.PostFormValue("article_id"))
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.renderArticle(w, r, http.StatusNotFound, articleView{ArticleID: articleID})
		return
	}

	f := newForm(r, "phrase", "meaning", "nuance")
	a, err := h.qa.PostAnswer(r.Context(), qa.PostAnswerInput{
		QuestionID: questionID,
		Phrase:     f.Get("phrase"),
		Meaning:    f.Get("meaning"),
		Nuance:     f.Get("nuance"),
	})
	if err != nil {
		if gate(w, r, err) {
			return
		}
		var status int
		if errors.Is(err, domain.ErrNotFound) {
			status, f.Errors = http.StatusNotFound, []string{msgQuestionGone}
		} else {
			status, f.Errors = h.formError(r, err, msgPostFailed)
		}
		h.renderArticle(w, r, status, articleView{ArticleID: articleID, AnswerFor: questionID, Answer: f})
		return
	}

	redirect(w, r, articlePath(a.ArticleID))
}

// renderArticle loads the detail for v.ArticleID and renders the page with
// the given form state. A missing article downgrades status to 404.
func (h *Handler) renderArticle(w http.ResponseWriter, r *http.Request, status int, v articleView) {
	title := "記事"
	stream := ""

	if v.ArticleID != uuid.Nil && !v.NotFound {
		detail, err := h.qa.ArticleDetail(r.Context(), v.ArticleID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			v.NotFound = true
			status = http.StatusNotFound
		case err != nil:
			h.log.ErrorContext(r.Context(), "load article",
				slog.String("article_id", v.ArticleID.String()),
				slog.String("error", err.Error()),
			)
			v.Error = msgLoadArticle
			status = http.StatusInternalServerError
		default:
			v.Detail = detail
			title = detail.Article.DisplayTitle()
			stream = articlePath(v.ArticleID) + "/events"
		}
	}

	if v.ArticleID == uuid.Nil {
		v.NotFound = true
		status = http.StatusNotFound
	}

	if stream != "" {
		stream = "/api" + stream
	}
	h.render(w, r, status, pageArticle, title, stream, v)
}

func articlePath(id uuid.UUID) string {
	return "/articles/" + id.String()
}
