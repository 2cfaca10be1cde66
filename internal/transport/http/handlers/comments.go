package handlers

import (
	"net/http"

	"media-service/internal/service"
	"media-service/internal/transport/http/httperr"
	"media-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateComment добавляет комментарий к видео.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in struct {
		Content string `json:"content"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), user.ID, chi.URLParam(r, "id"), in.Content)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentFromModel(comment))
}

// ListComments — страница комментариев к видео, новые первыми.
// Анонимный запрос видит только комментарии опубликованных видео.
func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	viewerID := uuid.Nil
	if user, ok := middleware.UserFrom(r.Context()); ok {
		viewerID = user.ID
	}

	page, err := h.svc.ListComments(r.Context(), viewerID, chi.URLParam(r, "id"), listParams(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentPageFromModel(page))
}

// DeleteComment удаляет комментарий текущего пользователя.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	if err := h.svc.DeleteComment(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
