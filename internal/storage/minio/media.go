package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"media-service/internal/storage"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
)

// kindPrefix — префикс ключа в бакете для каждого вида медиафайла.
func kindPrefix(kind storage.MediaKind) string {
	switch kind {
	case storage.MediaVideo:
		return "videos"
	case storage.MediaThumbnail:
		return "thumbnails"
	case storage.MediaAvatar:
		return "avatars"
	case storage.MediaCover:
		return "covers"
	default:
		return ""
	}
}

// allowedContentTypes — allow-list типов содержимого по виду медиафайла.
func allowedContentTypes(kind storage.MediaKind) []string {
	if kind == storage.MediaVideo {
		return []string{"video/mp4", "video/webm", "video/quicktime"}
	}

	return []string{"image/jpeg", "image/png", "image/webp"}
}

// extensionFor подбирает расширение ключа по типу содержимого.
func extensionFor(contentType string) string {
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "video/quicktime":
		return ".mov"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

// maxSizeBytes — лимит размера объекта по виду медиафайла.
func (s *MediaStorage) maxSizeBytes(kind storage.MediaKind) int64 {
	if kind == storage.MediaVideo {
		return s.cfg.MaxVideoBytes
	}

	return s.cfg.MaxImageBytes
}

// UploadURL генерирует presigned PUT URL для загрузки медиафайла.
// Валидирует contentType и contentLength согласно виду файла, формирует ключ
// вида "<prefix>/<ownerID>/<uuid>.<ext>", и возвращает также набор заголовков,
// которые клиент должен передать при PUT (будут проверены при подтверждении).
func (s *MediaStorage) UploadURL(ctx context.Context, ownerID uuid.UUID, kind storage.MediaKind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	op := "storage/minio/media/UploadURL"

	prefix := kindPrefix(kind)
	if prefix == "" {
		return nil, storage.ErrInvalidArgument
	}

	if contentLength <= 0 || contentLength > s.maxSizeBytes(kind) {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(allowedContentTypes(kind), contentType) {
		return nil, storage.ErrInvalidArgument
	}

	// Генерация ключа вида: <prefix>/<ownerID>/<uuid>.<ext>
	key := path.Join(prefix, ownerID.String(), uuid.NewString()+extensionFor(contentType))

	url, err := s.client.PresignedPutObject(ctx, s.cfg.Bucket, key, s.cfg.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := &storage.UploadInfo{
		UploadURL: url.String(),
		Key:       key,
		Expires:   s.cfg.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}

	return info, nil
}

// CheckUpload подтверждает факт загрузки по key:
// проверяет, что ключ принадлежит владельцу и виду, что объект существует
// и удовлетворяет ограничениям размера/типа.
// Возвращает публичный URL (если PublicBaseURL задан), иначе — пустую строку.
func (s *MediaStorage) CheckUpload(ctx context.Context, ownerID uuid.UUID, kind storage.MediaKind, key string) (publicURL string, err error) {
	op := "storage/minio/media/CheckUpload"

	keyPrefix := kindPrefix(kind)
	if keyPrefix == "" {
		return "", storage.ErrInvalidArgument
	}

	prefix := keyPrefix + "/" + ownerID.String() + "/"
	if !strings.HasPrefix(key, prefix) {
		return "", storage.ErrInvalidArgument
	}

	objInfo, err := s.client.StatObject(ctx, s.cfg.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return "", storage.ErrUploadNotFound
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if objInfo.Size <= 0 || objInfo.Size > s.maxSizeBytes(kind) {
		return "", storage.ErrInvalidArgument
	}

	if ct := objInfo.ContentType; ct != "" && !isAllowedContentType(allowedContentTypes(kind), ct) {
		return "", storage.ErrInvalidArgument
	}

	if s.cfg.PublicBaseURL == "" {
		return "", nil
	}

	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")

	return base + "/" + key, nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
