package handlers

import (
	"net/http"

	"media-service/internal/service"
	"media-service/internal/transport/http/httperr"
	"media-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

// CreatePlaylist создаёт пустой плейлист текущего пользователя.
func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var in struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	playlist, err := h.svc.CreatePlaylist(r.Context(), user.ID, in.Name, in.Description)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, playlistFromModel(playlist))
}

// GetPlaylist возвращает плейлист по ID.
func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.svc.PlaylistByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlistFromModel(playlist))
}

// ListMyPlaylists — плейлисты текущего пользователя, новые первыми.
func (h *Handlers) ListMyPlaylists(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	playlists, err := h.svc.ListPlaylists(r.Context(), user.ID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]playlistResponse, 0, len(playlists))
	for i := range playlists {
		out = append(out, playlistFromModel(&playlists[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// AddPlaylistVideo добавляет видео в плейлист владельца.
func (h *Handlers) AddPlaylistVideo(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	err := h.svc.AddVideoToPlaylist(r.Context(), chi.URLParam(r, "id"), user.ID, chi.URLParam(r, "videoID"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemovePlaylistVideo убирает видео из плейлиста владельца.
func (h *Handlers) RemovePlaylistVideo(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	err := h.svc.RemoveVideoFromPlaylist(r.Context(), chi.URLParam(r, "id"), user.ID, chi.URLParam(r, "videoID"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletePlaylist удаляет плейлист текущего пользователя.
func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	if err := h.svc.DeletePlaylist(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
