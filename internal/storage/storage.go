// storage задаёт контракты хранилищ media-сервиса и их сентинельные ошибки.
//
// Хранилища разнесены по технологиям:
//   - UserStorage — PostgreSQL: учётные записи и слот refresh-токена;
//   - ContentStorage — MongoDB: видео, комментарии, твиты, плейлисты;
//   - MediaStorage — MinIO/S3: presigned-загрузка медиафайлов.
//
// Слой service работает только с этими интерфейсами.
package storage

import (
	"context"
	"errors"
	"time"

	"media-service/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена (или не принадлежит вызывающему).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email/дубликат в плейлисте).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — некорректные параметры на границе стораджа
	// (битый курсор, недопустимый content-type и т.п.).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUploadNotFound — подтверждаемый объект отсутствует в бакете.
	ErrUploadNotFound = errors.New("upload not found")
)

// UserStorage выполняет операции над пользователями и слотом refresh-токена.
type UserStorage interface {
	// SaveUser создаёт нового пользователя.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserByUsernameOrEmail находит пользователя по username или email.
	UserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	// UpdateRefreshToken перезаписывает слот refresh-токена пользователя.
	// Пустая строка очищает слот (logout). Запись атомарна: при гонке двух
	// ротаций выживает последняя.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	// UpdateAvatarURL сохраняет публичный URL аватара.
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, url string) error
	// UpdateCoverURL сохраняет публичный URL обложки профиля.
	UpdateCoverURL(ctx context.Context, id uuid.UUID, url string) error
	Close()
}

// VideoStorage выполняет операции над метаданными видео.
type VideoStorage interface {
	// SaveVideo вставляет документ видео и возвращает его с заполненным ID.
	SaveVideo(ctx context.Context, video models.Video) (*models.Video, error)
	// VideoByID находит видео по hex-идентификатору.
	VideoByID(ctx context.Context, id string) (*models.Video, error)
	// ListVideosByOwner — постраничная выдача видео владельца (включая черновики).
	ListVideosByOwner(ctx context.Context, ownerID uuid.UUID, p models.ListParams) (*models.VideoPage, error)
	// ListPublishedVideos — постраничная выдача опубликованных видео.
	ListPublishedVideos(ctx context.Context, p models.ListParams) (*models.VideoPage, error)
	// SetVideoPublished переключает флаг публикации. Несовпадение владельца — ErrNotFound.
	SetVideoPublished(ctx context.Context, id string, ownerID uuid.UUID, published bool) error
	// IncrementVideoViews добавляет delta к счётчику просмотров.
	IncrementVideoViews(ctx context.Context, id string, delta int64) error
	// DeleteVideo удаляет видео владельца. Несовпадение владельца — ErrNotFound.
	DeleteVideo(ctx context.Context, id string, ownerID uuid.UUID) error
}

// CommentStorage выполняет операции над комментариями.
type CommentStorage interface {
	// SaveComment вставляет комментарий и возвращает его с заполненным ID.
	SaveComment(ctx context.Context, comment models.Comment) (*models.Comment, error)
	// ListCommentsByVideo — постраничная выдача комментариев к видео (новые первыми).
	ListCommentsByVideo(ctx context.Context, videoID string, p models.ListParams) (*models.CommentPage, error)
	// DeleteComment удаляет комментарий владельца. Несовпадение владельца — ErrNotFound.
	DeleteComment(ctx context.Context, id string, ownerID uuid.UUID) error
}

// TweetStorage выполняет операции над твитами.
type TweetStorage interface {
	// SaveTweet вставляет твит и возвращает его с заполненным ID.
	SaveTweet(ctx context.Context, tweet models.Tweet) (*models.Tweet, error)
	// ListTweetsByOwner возвращает твиты владельца (новые первыми).
	ListTweetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tweet, error)
	// DeleteTweet удаляет твит владельца. Несовпадение владельца — ErrNotFound.
	DeleteTweet(ctx context.Context, id string, ownerID uuid.UUID) error
}

// PlaylistStorage выполняет операции над плейлистами.
type PlaylistStorage interface {
	// SavePlaylist вставляет плейлист и возвращает его с заполненным ID.
	SavePlaylist(ctx context.Context, playlist models.Playlist) (*models.Playlist, error)
	// PlaylistByID находит плейлист по hex-идентификатору.
	PlaylistByID(ctx context.Context, id string) (*models.Playlist, error)
	// ListPlaylistsByOwner возвращает плейлисты владельца.
	ListPlaylistsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error)
	// AddVideoToPlaylist добавляет видео в плейлист (без дубликатов).
	AddVideoToPlaylist(ctx context.Context, id string, ownerID uuid.UUID, videoID string) error
	// RemoveVideoFromPlaylist убирает видео из плейлиста.
	RemoveVideoFromPlaylist(ctx context.Context, id string, ownerID uuid.UUID, videoID string) error
	// DeletePlaylist удаляет плейлист владельца. Несовпадение владельца — ErrNotFound.
	DeletePlaylist(ctx context.Context, id string, ownerID uuid.UUID) error
}

// ContentStorage объединяет контракты MongoDB-хранилища контента.
type ContentStorage interface {
	VideoStorage
	CommentStorage
	TweetStorage
	PlaylistStorage
	Close(ctx context.Context) error
}

// MediaKind — вид загружаемого медиафайла; определяет префикс ключа и лимиты.
type MediaKind string

const (
	MediaVideo     MediaKind = "video"
	MediaThumbnail MediaKind = "thumbnail"
	MediaAvatar    MediaKind = "avatar"
	MediaCover     MediaKind = "cover"
)

// UploadInfo — данные для клиентской загрузки по presigned PUT.
type UploadInfo struct {
	UploadURL string
	Key       string
	Expires   time.Duration
	// RequiredHeader — заголовки, которые клиент обязан передать при PUT.
	RequiredHeader map[string]string
}

// MediaStorage выполняет операции над медиафайлами в объектном хранилище.
type MediaStorage interface {
	// UploadURL генерирует presigned PUT URL для загрузки файла указанного вида.
	UploadURL(ctx context.Context, ownerID uuid.UUID, kind MediaKind, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckUpload подтверждает факт загрузки по ключу и возвращает публичный URL
	// (пустая строка, если PublicBaseURL не задан).
	CheckUpload(ctx context.Context, ownerID uuid.UUID, kind MediaKind, key string) (string, error)
}
