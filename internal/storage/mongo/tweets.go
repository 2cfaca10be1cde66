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

// tweetDoc — представление документа коллекции tweets.
type tweetDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d tweetDoc) toModel() models.Tweet {
	owner, _ := uuid.Parse(d.OwnerID)
	return models.Tweet{
		ID:        d.ID.Hex(),
		OwnerID:   owner,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// SaveTweet вставляет твит и возвращает его с заполненным ID.
func (m *Mongo) SaveTweet(ctx context.Context, tweet models.Tweet) (*models.Tweet, error) {
	const op = "storage/mongo/SaveTweet"

	now := toMS(time.Now())
	doc := tweetDoc{
		OwnerID:   tweet.OwnerID.String(),
		Content:   tweet.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := m.tweets.InsertOne(ctx, doc)
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

// ListTweetsByOwner возвращает все твиты владельца, новые сверху.
func (m *Mongo) ListTweetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tweet, error) {
	const op = "storage/mongo/ListTweetsByOwner"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := m.tweets.Find(ctx, bson.D{{Key: "owner_id", Value: ownerID.String()}}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Tweet
	for cur.Next(ctx) {
		var doc tweetDoc
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

// DeleteTweet удаляет твит владельца.
func (m *Mongo) DeleteTweet(ctx context.Context, id string, ownerID uuid.UUID) error {
	const op = "storage/mongo/DeleteTweet"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.tweets.DeleteOne(ctx,
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
