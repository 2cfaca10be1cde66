// mongo — реализация storage.ContentStorage на базе MongoDB.
// mongo.go — подключение, выбор коллекций и индексация.
// Остальные файлы пакета — операции над отдельными коллекциями:
// videos.go, comments.go, tweets.go, playlists.go.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"media-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	videosCollection    = "videos"
	commentsCollection  = "comments"
	tweetsCollection    = "tweets"
	playlistsCollection = "playlists"
	defaultDBName       = "media"
)

// Лимиты постраничной выдачи.
const (
	defaultPageSize int32 = 20
	maxPageSize     int32 = 100
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	client    *mongodriver.Client
	db        *mongodriver.Database
	videos    *mongodriver.Collection
	comments  *mongodriver.Collection
	tweets    *mongodriver.Collection
	playlists *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции
// и обеспечивает индексацию.
func New(ctx context.Context, mongoURL string) (*Mongo, error) {
	if mongoURL == "" {
		return nil, fmt.Errorf("mongo: empty url")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(mongoURL)
	db := cli.Database(dbName)

	m := &Mongo{
		client:    cli,
		db:        db,
		videos:    db.Collection(videosCollection),
		comments:  db.Collection(commentsCollection),
		tweets:    db.Collection(tweetsCollection),
		playlists: db.Collection(playlistsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые media-сервису:
//   - видео владельца и публичная лента — по created_at(desc);
//   - комментарии видео — video_id + created_at(desc);
//   - твиты и плейлисты — по owner_id + created_at(desc).
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	videoModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("owner_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("published_created_desc"),
		},
	}
	if _, err := m.videos.Indexes().CreateMany(ctx, videoModels); err != nil {
		return fmt.Errorf("mongo ensure indexes (videos): %w", err)
	}

	commentModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "video_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("video_created_desc"),
		},
	}
	if _, err := m.comments.Indexes().CreateMany(ctx, commentModels); err != nil {
		return fmt.Errorf("mongo ensure indexes (comments): %w", err)
	}

	tweetModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("owner_created_desc"),
		},
	}
	if _, err := m.tweets.Indexes().CreateMany(ctx, tweetModels); err != nil {
		return fmt.Errorf("mongo ensure indexes (tweets): %w", err)
	}

	playlistModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("owner_created_desc"),
		},
	}
	if _, err := m.playlists.Indexes().CreateMany(ctx, playlistModels); err != nil {
		return fmt.Errorf("mongo ensure indexes (playlists): %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся расшифровке — возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.ContentStorage = (*Mongo)(nil)
