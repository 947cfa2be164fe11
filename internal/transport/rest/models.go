package rest

import (
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/auth"
)

type profileResponse struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname"`
}

type authResponse struct {
	AccessToken      string          `json:"accessToken"`
	RefreshToken     string          `json:"refreshToken"`
	AccessExpiresAt  time.Time       `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time       `json:"refreshExpiresAt"`
	User             userResponse    `json:"user"`
	Profile          profileResponse `json:"profile"`
	NeedsNickname    bool            `json:"needsNickname"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type pendingResponse struct {
	Pending bool   `json:"pending"`
	Email   string `json:"email"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{ID: p.ID.String(), Nickname: p.Username}
}

func toAuthResponse(res *auth.AuthResult) authResponse {
	out := authResponse{
		AccessToken:      res.AccessToken,
		RefreshToken:     res.RefreshToken,
		AccessExpiresAt:  res.AccessExpiresAt,
		RefreshExpiresAt: res.RefreshExpiresAt,
		User:             userResponse{ID: res.User.ID.String(), Email: res.User.Email},
		Profile:          profileResponse{ID: res.User.ID.String()},
		NeedsNickname:    res.NeedsNickname(),
	}
	if res.Profile != nil {
		out.Profile = toProfileResponse(res.Profile)
	}
	return out
}
