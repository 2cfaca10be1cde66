package models

import (
	"time"

	"github.com/google/uuid"
)

// Tweet — короткая текстовая запись пользователя (MongoDB).
type Tweet struct {
	ID        string
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
