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

const maxCommentLen = 2000

// CreateComment добавляет комментарий к существующему видео.
func (s *Service) CreateComment(ctx context.Context, ownerID uuid.UUID, videoID, content string) (*models.Comment, error) {
	const op = "service.comments.CreateComment"

	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > maxCommentLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	video, err := s.content.VideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Комментировать можно только опубликованное видео; владелец — любое своё.
	if !video.IsPublished && video.OwnerID != ownerID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	comment, err := s.content.SaveComment(ctx, models.Comment{
		VideoID: video.ID,
		OwnerID: ownerID,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

// ListComments — страница комментариев к видео, новые первыми.
// Комментарии черновика видит только владелец (viewerID может быть uuid.Nil
// для анонимного запроса): черновик не должен просачиваться через выдачу
// комментариев.
func (s *Service) ListComments(ctx context.Context, viewerID uuid.UUID, videoID string, p models.ListParams) (*models.CommentPage, error) {
	const op = "service.comments.ListComments"

	video, err := s.content.VideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	page, err := s.content.ListCommentsByVideo(ctx, video.ID, p)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// DeleteComment удаляет комментарий его автора.
func (s *Service) DeleteComment(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "service.comments.DeleteComment"

	if err := s.content.DeleteComment(ctx, id, ownerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
