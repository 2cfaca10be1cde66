package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"media-service/internal/config"
	"media-service/internal/service"
	"media-service/internal/transport/http/handlers"
	"media-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, cfg *config.Config, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики и латентность запросов
		middleware.Authenticate(svc),    // вынимаем пользователя из cookie/Bearer (опционально)
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc, cfg.Auth, cfg.Cookies)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth (публичные).
	r.Post("/auth/register", h.RegisterUser)
	r.Post("/auth/login", h.LoginUser)
	r.Post("/auth/refresh", h.RefreshTokens)

	// публичное чтение.
	r.Get("/users/{id}", h.GetUser)
	r.Get("/users/{id}/tweets", h.ListUserTweets)
	r.Get("/videos", h.ListVideos)
	r.Get("/videos/{id}", h.GetVideo)
	r.Get("/videos/{id}/comments", h.ListComments)
	r.Get("/playlists/{id}", h.GetPlaylist)

	// всё остальное требует аутентификации.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser())

		r.Post("/auth/logout", h.Logout)
		r.Get("/users/me", h.Me)

		r.Post("/users/me/avatar/presign", h.AvatarPresign)
		r.Post("/users/me/avatar/confirm", h.AvatarConfirm)
		r.Post("/users/me/cover/presign", h.CoverPresign)
		r.Post("/users/me/cover/confirm", h.CoverConfirm)

		r.Post("/videos/presign", h.VideoPresign)
		r.Post("/videos", h.CreateVideo)
		r.Get("/users/me/videos", h.ListMyVideos)
		r.Patch("/videos/{id}/publish", h.PublishVideo)
		r.Delete("/videos/{id}", h.DeleteVideo)

		r.Post("/videos/{id}/comments", h.CreateComment)
		r.Delete("/comments/{id}", h.DeleteComment)

		r.Post("/tweets", h.CreateTweet)
		r.Delete("/tweets/{id}", h.DeleteTweet)

		r.Post("/playlists", h.CreatePlaylist)
		r.Get("/users/me/playlists", h.ListMyPlaylists)
		r.Post("/playlists/{id}/videos/{videoID}", h.AddPlaylistVideo)
		r.Delete("/playlists/{id}/videos/{videoID}", h.RemovePlaylistVideo)
		r.Delete("/playlists/{id}", h.DeletePlaylist)
	})
}
