package handlers

import (
	"net/http"

	"media-service/internal/service"
	"media-service/internal/transport/http/httperr"
	"media-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetUser возвращает публичный профиль пользователя по ID.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	user, err := h.svc.UserByID(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

type presignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type confirmRequest struct {
	Key string `json:"key"`
}

type confirmResponse struct {
	URL string `json:"url"`
}

// AvatarPresign выдаёт presigned PUT URL для загрузки аватара текущего пользователя.
func (h *Handlers) AvatarPresign(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	info, err := h.svc.AvatarUploadURL(r.Context(), user.ID, in.ContentType, in.ContentLength)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadFromInfo(info))
}

// AvatarConfirm подтверждает загрузку аватара и возвращает публичный URL.
func (h *Handlers) AvatarConfirm(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in confirmRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	url, err := h.svc.ConfirmAvatarUpload(r.Context(), user.ID, in.Key)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmResponse{URL: url})
}

// CoverPresign выдаёт presigned PUT URL для загрузки обложки профиля.
func (h *Handlers) CoverPresign(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	info, err := h.svc.CoverUploadURL(r.Context(), user.ID, in.ContentType, in.ContentLength)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadFromInfo(info))
}

// CoverConfirm подтверждает загрузку обложки и возвращает публичный URL.
func (h *Handlers) CoverConfirm(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in confirmRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	url, err := h.svc.ConfirmCoverUpload(r.Context(), user.ID, in.Key)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmResponse{URL: url})
}
