package web

import (
	"net/http"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/profile"
	"github.com/heartmarshall/newsqa-backend/internal/transport/loader"
)

type profileView struct {
	Email   string
	Form    form
	Notice  string
	Message string
}

// Profile handles GET /profile. ?notice=nickname explains why the user was
// sent here.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context())
	if err != nil {
		if gate(w, r, err) {
			return
		}
		status, msgs := h.formError(r, err, msgGeneric)
		h.render(w, r, status, pageProfile, "プロフィール", "", profileView{Form: form{Errors: msgs}})
		return
	}

	v := profileView{
		Email: h.viewer(r).Email,
		Form:  form{Values: map[string]string{"nickname": domain.Deref(p.Username)}},
	}
	if r.URL.Query().Get("notice") == "nickname" {
		v.Notice = msgNicknameNotice
	}
	h.render(w, r, http.StatusOK, pageProfile, "プロフィール", "", v)
}

// SaveProfile handles POST /profile.
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	f := newForm(r, "nickname")

	p, err := h.profiles.SaveNickname(r.Context(), profile.SaveNicknameInput{Nickname: f.Get("nickname")})
	if err != nil {
		if gate(w, r, err) {
			return
		}
		var status int
		status, f.Errors = h.formError(r, err, msgSaveFailed)
		h.render(w, r, status, pageProfile, "プロフィール", "", profileView{Email: h.viewer(r).Email, Form: f})
		return
	}

	// The header must show the new nickname.
	loader.FromContext(r.Context()).ForgetProfile(r.Context(), p.ID)

	h.render(w, r, http.StatusOK, pageProfile, "プロフィール", "", profileView{
		Email:   h.viewer(r).Email,
		Form:    form{Values: map[string]string{"nickname": domain.Deref(p.Username)}},
		Message: msgSaved,
	})
}
