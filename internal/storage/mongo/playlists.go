package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"media-service/internal/models"
	"media-service/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// playlistDoc — представление документа коллекции playlists.
type playlistDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	VideoIDs    []string           `bson:"video_ids"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d playlistDoc) toModel() models.Playlist {
	owner, _ := uuid.Parse(d.OwnerID)
	return models.Playlist{
		ID:          d.ID.Hex(),
		OwnerID:     owner,
		Name:        d.Name,
		Description: d.Description,
		VideoIDs:    d.VideoIDs,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// SavePlaylist вставляет плейлист и возвращает его с заполненным ID.
func (m *Mongo) SavePlaylist(ctx context.Context, playlist models.Playlist) (*models.Playlist, error) {
	const op = "storage/mongo/SavePlaylist"

	now := toMS(time.Now())
	doc := playlistDoc{
		OwnerID:     playlist.OwnerID.String(),
		Name:        playlist.Name,
		Description: playlist.Description,
		VideoIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := m.playlists.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := doc.toModel()
	return &out, nil
}

// PlaylistByID возвращает плейлист по идентификатору.
func (m *Mongo) PlaylistByID(ctx context.Context, id string) (*models.Playlist, error) {
	const op = "storage/mongo/PlaylistByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc playlistDoc
	if err := m.playlists.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// ListPlaylistsByOwner возвращает плейлисты владельца, новые сверху.
func (m *Mongo) ListPlaylistsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error) {
	const op = "storage/mongo/ListPlaylistsByOwner"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := m.playlists.Find(ctx, bson.D{{Key: "owner_id", Value: ownerID.String()}}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Playlist
	for cur.Next(ctx) {
		var doc playlistDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// AddVideoToPlaylist добавляет видео в плейлист владельца.
// $addToSet — повторное добавление того же видео не дублирует запись.
func (m *Mongo) AddVideoToPlaylist(ctx context.Context, id string, ownerID uuid.UUID, videoID string) error {
	const op = "storage/mongo/AddVideoToPlaylist"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.playlists.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "owner_id", Value: ownerID.String()}},
		bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "video_ids", Value: videoID}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: toMS(time.Now())}}},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// RemoveVideoFromPlaylist убирает видео из плейлиста владельца.
func (m *Mongo) RemoveVideoFromPlaylist(ctx context.Context, id string, ownerID uuid.UUID, videoID string) error {
	const op = "storage/mongo/RemoveVideoFromPlaylist"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.playlists.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "owner_id", Value: ownerID.String()}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "video_ids", Value: videoID}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: toMS(time.Now())}}},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeletePlaylist удаляет плейлист владельца.
func (m *Mongo) DeletePlaylist(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "storage/mongo/DeletePlaylist"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.playlists.DeleteOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "owner_id", Value: ownerID.String()}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
