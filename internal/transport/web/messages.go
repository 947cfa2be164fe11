package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const (
	msgLoadArticles   = "記事の読み込みに失敗しました"
	msgLoadArticle    = "読み込みに失敗しました"
	msgPostFailed     = "投稿に失敗しました"
	msgSaveFailed     = "保存に失敗しました"
	msgGeneric        = "処理に失敗しました"
	msgSaved          = "保存しました"
	msgNicknameNotice = "まずニックネームを設定してね"
	msgPending        = "確認メールを送信しました。メール内のリンクから登録を完了してね"
	msgBadCredentials = "メールアドレスかパスワードが違います"
	msgNotConfirmed   = "メールアドレスの確認がまだ済んでいません"
	msgEmailTaken     = "このメールアドレスは登録済みです"
	msgBadConfirm     = "確認リンクが無効か期限切れです"
	msgArticleMissing = "記事が見つかりません"
	msgQuestionGone   = "質問が見つかりません"
)

// fieldMessages translates validation failures, keyed by "field:message".
var fieldMessages = map[string]string{
	"url:required":                    "URL は必須だよ",
	"url:too long":                    "URL が長すぎます",
	"url:must be a valid HTTP(S) URL": "URL は http:// か https:// で始めてね",
	"title:too long":                  "タイトルが長すぎます",
	"phrase:required":                 "分からないフレーズを入れてね",
	"phrase:too long":                 "フレーズが長すぎます",
	"comment:too long":                "補足が長すぎます",
	"meaning:too long":                "意味が長すぎます",
	"nuance:too long":                 "ニュアンスが長すぎます",
	"email:required":                  "メールアドレスを入れてね",
	"email:too long":                  "メールアドレスが長すぎます",
	"email:invalid email":             "メールアドレスの形式が正しくありません",
	"password:required":               "パスワードを入れてね",
	"password:too short":              "パスワードは8文字以上にしてね",
	"password:too long":               "パスワードが長すぎます",
	"nickname:required":               "ニックネームは必須です",
	"nickname:too long":               "ニックネームは50文字以内にしてね",

	"answer:at least one of phrase, meaning, nuance is required": "表現・意味・ニュアンスのどれかを入れてね",
}

// validationMessages returns the user-facing messages of a validation error,
// or nil when err is not one.
func validationMessages(err error) []string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		if msg, ok := fieldMessages[fe.Field+":"+fe.Message]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fe.Field+": "+fe.Message)
	}
	return out
}

// gate redirects for the session and nickname checks and reports whether it
// did so.
func gate(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		redirect(w, r, "/auth")
		return true
	case errors.Is(err, domain.ErrNicknameRequired):
		redirect(w, r, "/profile?notice=nickname")
		return true
	}
	return false
}

// formError turns a failed submission into a status and messages for
// re-rendering the form. Unexpected errors are logged and shown as fallback.
func (h *Handler) formError(r *http.Request, err error, fallback string) (int, []string) {
	if msgs := validationMessages(err); msgs != nil {
		return http.StatusBadRequest, msgs
	}
	if errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest, []string{fallback}
	}
	h.log.ErrorContext(r.Context(), "form submission failed", slog.String("error", err.Error()))
	return http.StatusInternalServerError, []string{fallback}
}
