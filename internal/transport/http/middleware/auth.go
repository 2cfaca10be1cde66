package middleware

import (
	"context"
	"net/http"
	"strings"

	"media-service/internal/models"
	"media-service/internal/service"
	"media-service/internal/transport/http/httperr"
)

// AccessCookie — имя cookie с access-токеном.
const AccessCookie = "accessToken"

type ctxKey int

const ctxUser ctxKey = iota

// Authenticator проверяет access-токен и возвращает его владельца.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// Authenticate извлекает access-токен из cookie или заголовка Authorization
// (Bearer), проверяет его и кладёт владельца в контекст. Запрос без токена
// или с негодным токеном проходит дальше анонимно: обязательность
// аутентификации решает RequireUser на конкретных маршрутах.
func Authenticate(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token != "" {
				if user, err := auth.Authenticate(r.Context(), token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), ctxUser, user))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser отклоняет запросы без аутентифицированного пользователя.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFrom(r.Context()); !ok {
				httperr.WriteError(w, r, service.ErrNoToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom возвращает аутентифицированного пользователя из контекста.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ctxUser).(*models.User)
	return user, ok
}

// tokenFromRequest достаёт access-токен: сначала cookie, затем Bearer.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(AccessCookie); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}

	return ""
}
