// cache — Redis-кэш счётчиков просмотров видео.
//
// Просмотры накапливаются инкрементами в Redis и периодически сбрасываются
// в MongoDB фоновым флашером (см. cmd/media-service). Кэш опционален:
// при пустом REDIS_URL сервис пишет просмотры напрямую в БД.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ViewCache — минимальный контракт кэша счётчиков просмотров.
type ViewCache interface {
	// IncrView увеличивает счётчик просмотров видео на единицу.
	IncrView(ctx context.Context, videoID string) error
	// Drain атомарно забирает накопленные счётчики и обнуляет их.
	// Возвращает map videoID -> накопленная дельта.
	Drain(ctx context.Context) (map[string]int64, error)
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "media:views:".
func NewRedisCache(redisURL, prefix string) (ViewCache, error) {
	if prefix == "" {
		prefix = "media:views:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(videoID string) string { return c.prefix + videoID }

func (c *redisCache) IncrView(ctx context.Context, videoID string) error {
	return c.rdb.Incr(ctx, c.key(videoID)).Err()
}

// Drain обходит ключи по префиксу через SCAN и забирает значения GETDEL-ом:
// параллельные инкременты между SCAN и GETDEL не теряются — они либо попадут
// в текущий срез, либо создадут ключ заново и дождутся следующего.
func (c *redisCache) Drain(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)

	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		val, err := c.rdb.GetDel(ctx, key).Int64()
		if err != nil {
			if err == redis.Nil {
				continue
			}

			return nil, err
		}

		if val != 0 {
			out[key[len(c.prefix):]] += val
		}
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *redisCache) Close() error { return c.rdb.Close() }
