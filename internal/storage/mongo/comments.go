package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"media-service/internal/models"
	"media-service/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// commentDoc — представление документа коллекции comments.
type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	VideoID   string             `bson:"video_id"`
	OwnerID   string             `bson:"owner_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d commentDoc) toModel() models.Comment {
	owner, _ := uuid.Parse(d.OwnerID)
	return models.Comment{
		ID:        d.ID.Hex(),
		VideoID:   d.VideoID,
		OwnerID:   owner,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// SaveComment вставляет комментарий и возвращает его с заполненным ID.
func (m *Mongo) SaveComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/SaveComment"

	now := toMS(time.Now())
	doc := commentDoc{
		VideoID:   comment.VideoID,
		OwnerID:   comment.OwnerID.String(),
		Content:   comment.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := m.comments.InsertOne(ctx, doc)
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

// ListCommentsByVideo — страница комментариев видео, новые сверху.
func (m *Mongo) ListCommentsByVideo(ctx context.Context, videoID string, p models.ListParams) (*models.CommentPage, error) {
	const op = "storage/mongo/ListCommentsByVideo"

	filter := bson.D{{Key: "video_id", Value: strings.TrimSpace(videoID)}}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limitOrDefault(p.PageSize))

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

	cur, err := m.comments.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Comment
	var lastOID primitive.ObjectID
	for cur.Next(ctx) {
		var doc commentDoc
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

	return &models.CommentPage{
		Items:         items,
		NextPageToken: next,
	}, nil
}

// DeleteComment удаляет комментарий владельца.
func (m *Mongo) DeleteComment(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "storage/mongo/DeleteComment"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.comments.DeleteOne(ctx,
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
