package handlers

import (
	"net/http"

	"media-service/internal/service"
	"media-service/internal/storage"
	"media-service/internal/transport/http/httperr"
	"media-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// VideoPresign выдаёт presigned PUT URL для загрузки файла видео или превью.
func (h *Handlers) VideoPresign(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in struct {
		Kind          string `json:"kind"`
		ContentType   string `json:"content_type"`
		ContentLength int64  `json:"content_length"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	info, err := h.svc.VideoUploadURL(r.Context(), user.ID, storage.MediaKind(in.Kind), in.ContentType, in.ContentLength)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadFromInfo(info))
}

// CreateVideo создаёт запись видео по уже загруженным файлам.
func (h *Handlers) CreateVideo(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Duration     float64 `json:"duration"`
		VideoKey     string  `json:"video_key"`
		ThumbnailKey string  `json:"thumbnail_key"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	video, err := h.svc.CreateVideo(r.Context(), user.ID, in.Title, in.Description, in.Duration, in.VideoKey, in.ThumbnailKey)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, videoFromModel(video))
}

// GetVideo возвращает видео по ID. Анонимный запрос видит только
// опубликованные видео; просмотр регистрируется сервисным слоем.
func (h *Handlers) GetVideo(w http.ResponseWriter, r *http.Request) {
	viewerID := uuid.Nil
	if user, ok := middleware.UserFrom(r.Context()); ok {
		viewerID = user.ID
	}

	video, err := h.svc.VideoByID(r.Context(), viewerID, chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoFromModel(video))
}

// ListVideos — публичная лента опубликованных видео.
func (h *Handlers) ListVideos(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListPublishedVideos(r.Context(), listParams(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoPageFromModel(page))
}

// ListMyVideos — видео текущего пользователя, включая черновики.
func (h *Handlers) ListMyVideos(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	page, err := h.svc.ListMyVideos(r.Context(), user.ID, listParams(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videoPageFromModel(page))
}

// PublishVideo переключает флаг публикации видео.
func (h *Handlers) PublishVideo(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in struct {
		Published bool `json:"published"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.SetVideoPublished(r.Context(), chi.URLParam(r, "id"), user.ID, in.Published); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteVideo удаляет видео текущего пользователя.
func (h *Handlers) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	if err := h.svc.DeleteVideo(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
