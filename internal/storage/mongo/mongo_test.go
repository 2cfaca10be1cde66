package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"media-service/internal/models"
	"media-service/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета mongo:
// — поднимают реальный MongoDB через testcontainers-go (образ mongo:7);
// — проверяют CRUD по всем коллекциям, владельческие фильтры (чужая запись
//   выглядит как отсутствующая) и постраничную выдачу с курсором.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/mongo -v -race -count=1

func startMongo(t *testing.T) (*Mongo, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "27017/tcp")
	uri := fmt.Sprintf("mongodb://%s:%s/media_test", host, port.Port())

	m, err := New(ctx, uri)
	require.NoError(t, err)

	cleanup := func() {
		_ = m.Close(context.Background())
		_ = c.Terminate(context.Background())
	}

	return m, cleanup
}

func TestIntegration_Videos_CRUD_And_Ownership(t *testing.T) {
	m, cleanup := startMongo(t)
	defer cleanup()

	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	saved, err := m.SaveVideo(ctx, models.Video{
		OwnerID:  owner,
		VideoKey: "videos/" + owner.String() + "/v.mp4",
		Title:    "first",
		Duration: 12.5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, owner, saved.OwnerID)
	require.False(t, saved.IsPublished)
	require.Zero(t, saved.Views)

	got, err := m.VideoByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, "first", got.Title)

	// Некорректный hex — как отсутствующая запись.
	_, err = m.VideoByID(ctx, "not-a-hex")
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Публикация: чужой владелец запись не видит.
	err = m.SetVideoPublished(ctx, saved.ID, stranger, true)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, m.SetVideoPublished(ctx, saved.ID, owner, true))
	got, err = m.VideoByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, got.IsPublished)

	// Просмотры.
	require.NoError(t, m.IncrementVideoViews(ctx, saved.ID, 3))
	require.NoError(t, m.IncrementVideoViews(ctx, saved.ID, 0)) // no-op
	got, err = m.VideoByID(ctx, saved.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, got.Views)

	// Удаление: чужой владелец — ErrNotFound, свой — успех.
	err = m.DeleteVideo(ctx, saved.ID, stranger)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, m.DeleteVideo(ctx, saved.ID, owner))
	_, err = m.VideoByID(ctx, saved.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Videos_Pagination(t *testing.T) {
	m, cleanup := startMongo(t)
	defer cleanup()

	ctx := context.Background()
	owner := uuid.New()

	const total = 5
	for i := 0; i < total; i++ {
		_, err := m.SaveVideo(ctx, models.Video{
			OwnerID:     owner,
			Title:       fmt.Sprintf("video-%d", i),
			IsPublished: true,
		})
		require.NoError(t, err)
		// created_at хранится с миллисекундной точностью — разносим документы.
		time.Sleep(5 * time.Millisecond)
	}

	var seen []string
	token := ""
	for {
		page, err := m.ListPublishedVideos(ctx, models.ListParams{PageSize: 2, PageToken: token})
		require.NoError(t, err)
		if len(page.Items) == 0 {
			break
		}

		for _, v := range page.Items {
			seen = append(seen, v.Title)
		}

		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}

	require.Len(t, seen, total)
	// Новые первыми.
	require.Equal(t, "video-4", seen[0])
	require.Equal(t, "video-0", seen[total-1])

	// Битый курсор.
	_, err := m.ListPublishedVideos(ctx, models.ListParams{PageToken: "%%%"})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_Comments_CRUD_And_CascadeOnVideoDelete(t *testing.T) {
	m, cleanup := startMongo(t)
	defer cleanup()

	ctx := context.Background()
	owner := uuid.New()
	commenter := uuid.New()

	video, err := m.SaveVideo(ctx, models.Video{OwnerID: owner, Title: "with comments"})
	require.NoError(t, err)

	c1, err := m.SaveComment(ctx, models.Comment{VideoID: video.ID, OwnerID: commenter, Content: "nice"})
	require.NoError(t, err)
	_, err = m.SaveComment(ctx, models.Comment{VideoID: video.ID, OwnerID: commenter, Content: "very nice"})
	require.NoError(t, err)

	page, err := m.ListCommentsByVideo(ctx, video.ID, models.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	// Чужой комментарий удалить нельзя.
	err = m.DeleteComment(ctx, c1.ID, owner)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, m.DeleteComment(ctx, c1.ID, commenter))

	// Удаление видео подчищает комментарии.
	require.NoError(t, m.DeleteVideo(ctx, video.ID, owner))
	page, err = m.ListCommentsByVideo(ctx, video.ID, models.ListParams{})
	require.NoError(t, err)
	require.Empty(t, page.Items)
}

func TestIntegration_Tweets_CRUD(t *testing.T) {
	m, cleanup := startMongo(t)
	defer cleanup()

	ctx := context.Background()
	owner := uuid.New()

	first, err := m.SaveTweet(ctx, models.Tweet{OwnerID: owner, Content: "hello"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = m.SaveTweet(ctx, models.Tweet{OwnerID: owner, Content: "world"})
	require.NoError(t, err)

	list, err := m.ListTweetsByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "world", list[0].Content)

	require.NoError(t, m.DeleteTweet(ctx, first.ID, owner))
	list, err = m.ListTweetsByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Чужих твитов не видно.
	list, err = m.ListTweetsByOwner(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestIntegration_Playlists_CRUD_And_VideoSet(t *testing.T) {
	m, cleanup := startMongo(t)
	defer cleanup()

	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	pl, err := m.SavePlaylist(ctx, models.Playlist{OwnerID: owner, Name: "favorites"})
	require.NoError(t, err)
	require.NotEmpty(t, pl.ID)
	require.Empty(t, pl.VideoIDs)

	video, err := m.SaveVideo(ctx, models.Video{OwnerID: owner, Title: "clip"})
	require.NoError(t, err)

	// Повторное добавление не дублирует запись.
	require.NoError(t, m.AddVideoToPlaylist(ctx, pl.ID, owner, video.ID))
	require.NoError(t, m.AddVideoToPlaylist(ctx, pl.ID, owner, video.ID))

	got, err := m.PlaylistByID(ctx, pl.ID)
	require.NoError(t, err)
	require.Equal(t, []string{video.ID}, got.VideoIDs)

	// Чужой владелец плейлист не меняет.
	err = m.AddVideoToPlaylist(ctx, pl.ID, stranger, video.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, m.RemoveVideoFromPlaylist(ctx, pl.ID, owner, video.ID))
	got, err = m.PlaylistByID(ctx, pl.ID)
	require.NoError(t, err)
	require.Empty(t, got.VideoIDs)

	list, err := m.ListPlaylistsByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, m.DeletePlaylist(ctx, pl.ID, owner))
	_, err = m.PlaylistByID(ctx, pl.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
