package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — комментарий к видео (MongoDB).
type Comment struct {
	ID        string
	VideoID   string
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentPage — результат постраничной выдачи комментариев.
type CommentPage struct {
	Items         []Comment
	NextPageToken string
}
