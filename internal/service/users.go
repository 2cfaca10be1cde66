package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"media-service/internal/models"
	"media-service/internal/pkg/log"
	"media-service/internal/storage"

	"github.com/google/uuid"
)

// UserByID возвращает профиль пользователя.
func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "service.users.UserByID"

	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// AvatarUploadURL выдаёт presigned PUT URL для загрузки аватара.
func (s *Service) AvatarUploadURL(ctx context.Context, userID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.users.AvatarUploadURL"

	info, err := s.media.UploadURL(ctx, userID, storage.MediaAvatar, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmAvatarUpload подтверждает загрузку аватара и сохраняет публичный URL.
func (s *Service) ConfirmAvatarUpload(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	const op = "service.users.ConfirmAvatarUpload"

	url, err := s.confirmUpload(ctx, op, userID, storage.MediaAvatar, key)
	if err != nil {
		return "", err
	}

	if url != "" {
		if err := s.users.UpdateAvatarURL(ctx, userID, url); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	log.From(ctx).Info("avatar_updated",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	return url, nil
}

// CoverUploadURL выдаёт presigned PUT URL для загрузки обложки профиля.
func (s *Service) CoverUploadURL(ctx context.Context, userID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.users.CoverUploadURL"

	info, err := s.media.UploadURL(ctx, userID, storage.MediaCover, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmCoverUpload подтверждает загрузку обложки и сохраняет публичный URL.
func (s *Service) ConfirmCoverUpload(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	const op = "service.users.ConfirmCoverUpload"

	url, err := s.confirmUpload(ctx, op, userID, storage.MediaCover, key)
	if err != nil {
		return "", err
	}

	if url != "" {
		if err := s.users.UpdateCoverURL(ctx, userID, url); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	return url, nil
}

// confirmUpload — общее подтверждение факта загрузки в объектное хранилище.
func (s *Service) confirmUpload(ctx context.Context, op string, ownerID uuid.UUID, kind storage.MediaKind, key string) (string, error) {
	url, err := s.media.CheckUpload(ctx, ownerID, kind, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUploadNotFound):
			return "", fmt.Errorf("%s: %w", op, ErrUploadNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	return url, nil
}
