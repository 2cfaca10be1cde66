package models

import (
	"time"

	"github.com/google/uuid"
)

// Playlist — плейлист пользователя (MongoDB).
// VideoIDs хранит упорядоченный список hex-идентификаторов видео;
// дубликаты не допускаются (контролируется на уровне стораджа через $addToSet).
type Playlist struct {
	ID          string
	OwnerID     uuid.UUID
	Name        string
	Description string
	VideoIDs    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
