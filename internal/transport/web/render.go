package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/transport/loader"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome       = "home.html"
	pageNewArticle = "new_article.html"
	pageArticle    = "article.html"
	pageAuth       = "auth.html"
	pageProfile    = "profile.html"
)

var pages = mustParsePages(pageHome, pageNewArticle, pageArticle, pageAuth, pageProfile)

// layoutData is what layout.html sees. Body carries the page-specific view.
type layoutData struct {
	SiteTitle string
	PageTitle string
	Viewer    *domain.Viewer
	// Stream is the event source the page reloads on; empty disables it.
	Stream string
	Body   any
}

// form keeps the submitted values and the messages to show next to a form.
type form struct {
	Values map[string]string
	Errors []string
}

func newForm(r *http.Request, fields ...string) form {
	f := form{Values: make(map[string]string, len(fields))}
	for _, name := range fields {
		f.Values[name] = r.PostFormValue(name)
	}
	return f
}

func (f form) Get(name string) string {
	return f.Values[name]
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"displayName": domain.DisplayName,
		"deref":       domain.Deref,
		"orDash": func(s *string) string {
			if v := domain.Deref(s); v != "" {
				return v
			}
			return "—"
		},
		"date": func(t time.Time) string { return t.Format("2006年1月2日") },
	}
}

func mustParsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(
			template.New(name).Funcs(funcs()).ParseFS(templateFS, "templates/layout.html", "templates/"+name),
		)
	}
	return out
}

// render executes a page into a buffer first so that a template error still
// produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page, title, stream string, body any) {
	tmpl, ok := pages[page]
	if !ok {
		h.log.ErrorContext(r.Context(), "unknown page", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := layoutData{
		SiteTitle: h.site.Title,
		PageTitle: title,
		Viewer:    h.viewer(r),
		Stream:    stream,
		Body:      body,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.ErrorContext(r.Context(), "render page",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck
}

// viewer resolves the header data. A lookup failure degrades to the
// anonymous header rather than failing the page.
func (h *Handler) viewer(r *http.Request) *domain.Viewer {
	v, err := loader.FromContext(r.Context()).Viewer(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "resolve viewer", slog.String("error", err.Error()))
		return &domain.Viewer{}
	}
	return v
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
