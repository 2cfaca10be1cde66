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

const maxTweetLen = 280

// CreateTweet публикует твит пользователя.
func (s *Service) CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*models.Tweet, error) {
	const op = "service.tweets.CreateTweet"

	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > maxTweetLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	tweet, err := s.content.SaveTweet(ctx, models.Tweet{
		OwnerID: ownerID,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tweet, nil
}

// ListTweets возвращает твиты пользователя, новые первыми.
func (s *Service) ListTweets(ctx context.Context, ownerID uuid.UUID) ([]models.Tweet, error) {
	const op = "service.tweets.ListTweets"

	tweets, err := s.content.ListTweetsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tweets, nil
}

// DeleteTweet удаляет твит его автора.
func (s *Service) DeleteTweet(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "service.tweets.DeleteTweet"

	if err := s.content.DeleteTweet(ctx, id, ownerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
