package handlers

import (
	"net/http"

	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/transport/http/httperr"
	"media-service/internal/transport/http/middleware"
)

// RefreshCookie — имя cookie с refresh-токеном.
const RefreshCookie = "refreshToken"

// setAuthCookies выставляет http-only cookie с токенами пары.
// Дублирование токенов в теле ответа оставлено для не-браузерных клиентов.
func (h *Handlers) setAuthCookies(w http.ResponseWriter, pair *models.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		Domain:   h.cookies.Domain,
		MaxAge:   int(h.auth.AccessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		Domain:   h.cookies.Domain,
		MaxAge:   int(h.auth.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookies сбрасывает обе cookie.
func (h *Handlers) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{middleware.AccessCookie, RefreshCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   h.cookies.Domain,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.cookies.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), in.Username, in.Email, in.FullName, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userFromModel(user))
}

func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	pair, user, err := h.svc.LoginUser(r.Context(), in.Login, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.setAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, loginResponse{
		User:   userFromModel(user),
		Tokens: tokensFromPair(pair),
	})
}

// RefreshTokens ротирует пару токенов. Refresh-токен берётся из cookie;
// для не-браузерных клиентов допускается передача в теле.
func (h *Handlers) RefreshTokens(w http.ResponseWriter, r *http.Request) {
	var token string
	if c, err := r.Cookie(RefreshCookie); err == nil {
		token = c.Value
	}

	if token == "" && r.Body != nil && r.ContentLength != 0 {
		var in struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := decodeStrict(r, &in); err != nil {
			httperr.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		token = in.RefreshToken
	}

	pair, _, err := h.svc.RefreshTokens(r.Context(), token)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.setAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, tokensFromPair(pair))
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		httperr.WriteError(w, r, service.ErrNoToken)
		return
	}

	if err := h.svc.Logout(r.Context(), user.ID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.clearAuthCookies(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me возвращает профиль текущего пользователя.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		httperr.WriteError(w, r, service.ErrNoToken)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}
