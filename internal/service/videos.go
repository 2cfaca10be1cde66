package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"media-service/internal/models"
	"media-service/internal/pkg/log"
	"media-service/internal/storage"

	"github.com/google/uuid"
)

const (
	maxVideoTitleLen       = 200
	maxVideoDescriptionLen = 5000
)

// VideoUploadURL выдаёт presigned PUT URL для загрузки файла видео
// или его превью. Другие виды медиафайлов обслуживает пакет users.
func (s *Service) VideoUploadURL(ctx context.Context, ownerID uuid.UUID, kind storage.MediaKind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.videos.VideoUploadURL"

	if kind != storage.MediaVideo && kind != storage.MediaThumbnail {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.media.UploadURL(ctx, ownerID, kind, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// CreateVideo создаёт запись видео по уже загруженным файлам.
// Оба ключа обязаны существовать в объектном хранилище и принадлежать владельцу.
// Видео создаётся неопубликованным.
func (s *Service) CreateVideo(ctx context.Context, ownerID uuid.UUID, title, description string, duration float64, videoKey, thumbnailKey string) (*models.Video, error) {
	const op = "service.videos.CreateVideo"

	title = strings.TrimSpace(title)
	if title == "" || len([]rune(title)) > maxVideoTitleLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if len([]rune(description)) > maxVideoDescriptionLen || duration < 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.confirmUpload(ctx, op, ownerID, storage.MediaVideo, videoKey); err != nil {
		return nil, err
	}

	if _, err := s.confirmUpload(ctx, op, ownerID, storage.MediaThumbnail, thumbnailKey); err != nil {
		return nil, err
	}

	video, err := s.content.SaveVideo(ctx, models.Video{
		OwnerID:      ownerID,
		VideoKey:     videoKey,
		ThumbnailKey: thumbnailKey,
		Title:        title,
		Description:  description,
		Duration:     duration,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("video_created",
		slog.String("op", op),
		slog.String("video_id", video.ID),
		slog.String("owner_id", ownerID.String()),
	)

	return video, nil
}

// VideoByID возвращает видео и регистрирует просмотр.
// Неопубликованное видео видит только владелец (viewerID может быть uuid.Nil
// для анонимного запроса). Просмотр владельцем собственного видео не считается.
func (s *Service) VideoByID(ctx context.Context, viewerID uuid.UUID, id string) (*models.Video, error) {
	const op = "service.videos.VideoByID"

	video, err := s.content.VideoByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if video.IsPublished && video.OwnerID != viewerID {
		s.registerView(ctx, video.ID)
	}

	return video, nil
}

// registerView учитывает просмотр: через кэш, если он сконфигурирован,
// иначе — напрямую в БД. Ошибка учёта не роняет выдачу видео.
func (s *Service) registerView(ctx context.Context, videoID string) {
	const op = "service.videos.registerView"

	var err error
	if s.views != nil {
		err = s.views.IncrView(ctx, videoID)
	} else {
		err = s.content.IncrementVideoViews(ctx, videoID, 1)
	}

	if err != nil {
		log.From(ctx).Warn("view_register_failed",
			slog.String("op", op),
			slog.String("video_id", videoID),
			slog.String("err", err.Error()),
		)
	}
}

// FlushViews сбрасывает накопленные в кэше счётчики просмотров в БД.
// Вызывается фоновым флашером; без кэша — no-op.
func (s *Service) FlushViews(ctx context.Context) error {
	const op = "service.videos.FlushViews"

	if s.views == nil {
		return nil
	}

	deltas, err := s.views.Drain(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx)
	for videoID, delta := range deltas {
		if err := s.content.IncrementVideoViews(ctx, videoID, delta); err != nil {
			// Видео могло быть удалено между просмотром и сбросом.
			lg.Warn("view_flush_failed",
				slog.String("op", op),
				slog.String("video_id", videoID),
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

// ListMyVideos — страница видео владельца, включая черновики.
func (s *Service) ListMyVideos(ctx context.Context, ownerID uuid.UUID, p models.ListParams) (*models.VideoPage, error) {
	const op = "service.videos.ListMyVideos"

	page, err := s.content.ListVideosByOwner(ctx, ownerID, p)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// ListPublishedVideos — публичная лента опубликованных видео.
func (s *Service) ListPublishedVideos(ctx context.Context, p models.ListParams) (*models.VideoPage, error) {
	const op = "service.videos.ListPublishedVideos"

	page, err := s.content.ListPublishedVideos(ctx, p)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// SetVideoPublished переключает флаг публикации видео владельца.
func (s *Service) SetVideoPublished(ctx context.Context, id string, ownerID uuid.UUID, published bool) error {
	const op = "service.videos.SetVideoPublished"

	if err := s.content.SetVideoPublished(ctx, id, ownerID, published); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteVideo удаляет видео владельца.
func (s *Service) DeleteVideo(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "service.videos.DeleteVideo"

	if err := s.content.DeleteVideo(ctx, id, ownerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("video_deleted",
		slog.String("op", op),
		slog.String("video_id", id),
		slog.String("owner_id", ownerID.String()),
	)

	return nil
}
