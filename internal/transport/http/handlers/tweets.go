package handlers

import (
	"net/http"

	"media-service/internal/service"
	"media-service/internal/transport/http/httperr"
	"media-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateTweet публикует твит текущего пользователя.
func (h *Handlers) CreateTweet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in struct {
		Content string `json:"content"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	tweet, err := h.svc.CreateTweet(r.Context(), user.ID, in.Content)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tweetFromModel(tweet))
}

// ListUserTweets — твиты пользователя по ID, новые первыми.
func (h *Handlers) ListUserTweets(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	tweets, err := h.svc.ListTweets(r.Context(), ownerID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]tweetResponse, 0, len(tweets))
	for i := range tweets {
		out = append(out, tweetFromModel(&tweets[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// DeleteTweet удаляет твит текущего пользователя.
func (h *Handlers) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	if err := h.svc.DeleteTweet(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
