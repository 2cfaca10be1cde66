package models

import (
	"time"

	"github.com/google/uuid"
)

// Video — метаданные видеоролика (MongoDB).
//
// Важно:
//   - ID — ObjectID MongoDB, наружу конвертируется в hex-строку;
//   - OwnerID — UUID владельца из PostgreSQL;
//   - VideoKey/ThumbnailKey — ключи объектов в S3; публичные URL строятся
//     на уровне стораджа из PublicBaseURL;
//   - Views — базовый счётчик в документе; инкременты могут копиться в Redis
//     и периодически сбрасываться в документ.
type Video struct {
	ID           string
	OwnerID      uuid.UUID
	VideoKey     string
	ThumbnailKey string
	Title        string
	Description  string
	Duration     float64
	Views        int64
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListParams — базовые параметры постраничной выдачи.
type ListParams struct {
	PageSize  int32
	PageToken string
}

// VideoPage — результат постраничной выдачи видео.
type VideoPage struct {
	Items         []Video
	NextPageToken string
}
