package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"media-service/internal/models"
	"media-service/internal/pkg/log"
	"media-service/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// videoDoc — представление документа коллекции videos.
type videoDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID      string             `bson:"owner_id"`
	VideoKey     string             `bson:"video_key"`
	ThumbnailKey string             `bson:"thumbnail_key"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Duration     float64            `bson:"duration"`
	Views        int64              `bson:"views"`
	IsPublished  bool               `bson:"is_published"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d videoDoc) toModel() models.Video {
	owner, _ := uuid.Parse(d.OwnerID)
	return models.Video{
		ID:           d.ID.Hex(),
		OwnerID:      owner,
		VideoKey:     d.VideoKey,
		ThumbnailKey: d.ThumbnailKey,
		Title:        d.Title,
		Description:  d.Description,
		Duration:     d.Duration,
		Views:        d.Views,
		IsPublished:  d.IsPublished,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// toMS — MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

// SaveVideo вставляет документ видео и возвращает его с заполненным ID.
func (m *Mongo) SaveVideo(ctx context.Context, video models.Video) (*models.Video, error) {
	const op = "storage/mongo/SaveVideo"

	now := toMS(time.Now())
	doc := videoDoc{
		OwnerID:      video.OwnerID.String(),
		VideoKey:     video.VideoKey,
		ThumbnailKey: video.ThumbnailKey,
		Title:        video.Title,
		Description:  video.Description,
		Duration:     video.Duration,
		Views:        0,
		IsPublished:  video.IsPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := m.videos.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := doc.toModel()
	return &out, nil
}

// VideoByID возвращает видео по идентификатору.
// Некорректный формат id трактуется как «нет такой записи».
func (m *Mongo) VideoByID(ctx context.Context, id string) (*models.Video, error) {
	const op = "storage/mongo/VideoByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc videoDoc
	if err := m.videos.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// listVideos — общая постраничная выборка по фильтру.
// Сортировка: created_at DESC, _id DESC; курсор «меньше» для DESC.
func (m *Mongo) listVideos(ctx context.Context, op string, filter bson.D, p models.ListParams) (*models.VideoPage, error) {
	limit := limitOrDefault(p.PageSize)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	if strings.TrimSpace(p.PageToken) != "" {
		t, oid, decErr := decodeCursor(p.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
		}

		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$lt", Value: t}}}},
			bson.D{
				{Key: "created_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}},
			},
		}})
	}

	cur, err := m.videos.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Video
	var lastOID primitive.ObjectID
	for cur.Next(ctx) {
		var doc videoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		lastOID = doc.ID
		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	var next string
	if n := len(items); n > 0 {
		next = encodeCursor(items[n-1].CreatedAt, lastOID)
	}

	return &models.VideoPage{
		Items:         items,
		NextPageToken: next,
	}, nil
}

// ListVideosByOwner — страница видео владельца (включая черновики).
func (m *Mongo) ListVideosByOwner(ctx context.Context, ownerID uuid.UUID, p models.ListParams) (*models.VideoPage, error) {
	const op = "storage/mongo/ListVideosByOwner"

	filter := bson.D{{Key: "owner_id", Value: ownerID.String()}}
	return m.listVideos(ctx, op, filter, p)
}

// ListPublishedVideos — страница опубликованных видео.
func (m *Mongo) ListPublishedVideos(ctx context.Context, p models.ListParams) (*models.VideoPage, error) {
	const op = "storage/mongo/ListPublishedVideos"

	filter := bson.D{{Key: "is_published", Value: true}}
	return m.listVideos(ctx, op, filter, p)
}

// SetVideoPublished переключает флаг публикации.
// Фильтр включает владельца: чужая запись выглядит как отсутствующая.
func (m *Mongo) SetVideoPublished(ctx context.Context, id string, ownerID uuid.UUID, published bool) error {
	const op = "storage/mongo/SetVideoPublished"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.videos.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "owner_id", Value: ownerID.String()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_published", Value: published},
			{Key: "updated_at", Value: toMS(time.Now())},
		}}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// IncrementVideoViews добавляет delta к счётчику просмотров.
func (m *Mongo) IncrementVideoViews(ctx context.Context, id string, delta int64) error {
	const op = "storage/mongo/IncrementVideoViews"

	if delta == 0 {
		return nil
	}

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.videos.UpdateByID(ctx, oid, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "views", Value: delta}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteVideo удаляет видео владельца вместе с его комментариями.
func (m *Mongo) DeleteVideo(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "storage/mongo/DeleteVideo"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.videos.DeleteOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "owner_id", Value: ownerID.String()}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	// Комментарии осиротевшего видео больше не читаются — подчистим.
	// Сбой каскада не откатывает удаление видео, но осиротевшие комментарии
	// должны быть видны в логах.
	if _, err := m.comments.DeleteMany(ctx, bson.D{{Key: "video_id", Value: oid.Hex()}}); err != nil {
		log.From(ctx).Warn("comments_cascade_delete_failed",
			slog.String("op", op),
			slog.String("video_id", oid.Hex()),
			slog.String("err", err.Error()),
		)
	}

	return nil
}
