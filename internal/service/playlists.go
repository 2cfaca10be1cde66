package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"media-service/internal/models"
	"media-service/internal/storage"

	"github.com/google/uuid"
)

const (
	maxPlaylistNameLen        = 100
	maxPlaylistDescriptionLen = 1000
)

// CreatePlaylist создаёт пустой плейлист пользователя.
func (s *Service) CreatePlaylist(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.Playlist, error) {
	const op = "service.playlists.CreatePlaylist"

	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > maxPlaylistNameLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if len([]rune(description)) > maxPlaylistDescriptionLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	playlist, err := s.content.SavePlaylist(ctx, models.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return playlist, nil
}

// PlaylistByID возвращает плейлист по идентификатору.
func (s *Service) PlaylistByID(ctx context.Context, id string) (*models.Playlist, error) {
	const op = "service.playlists.PlaylistByID"

	playlist, err := s.content.PlaylistByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return playlist, nil
}

// ListPlaylists возвращает плейлисты пользователя, новые первыми.
func (s *Service) ListPlaylists(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error) {
	const op = "service.playlists.ListPlaylists"

	playlists, err := s.content.ListPlaylistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return playlists, nil
}

// AddVideoToPlaylist добавляет существующее видео в плейлист владельца.
func (s *Service) AddVideoToPlaylist(ctx context.Context, playlistID string, ownerID uuid.UUID, videoID string) error {
	const op = "service.playlists.AddVideoToPlaylist"

	video, err := s.content.VideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	// Чужой черновик нельзя ни увидеть, ни прилинковать: для постороннего
	// он не существует.
	if !video.IsPublished && video.OwnerID != ownerID {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if err := s.content.AddVideoToPlaylist(ctx, playlistID, ownerID, videoID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveVideoFromPlaylist убирает видео из плейлиста владельца.
func (s *Service) RemoveVideoFromPlaylist(ctx context.Context, playlistID string, ownerID uuid.UUID, videoID string) error {
	const op = "service.playlists.RemoveVideoFromPlaylist"

	if err := s.content.RemoveVideoFromPlaylist(ctx, playlistID, ownerID, videoID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeletePlaylist удаляет плейлист владельца.
func (s *Service) DeletePlaylist(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "service.playlists.DeletePlaylist"

	if err := s.content.DeletePlaylist(ctx, id, ownerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
