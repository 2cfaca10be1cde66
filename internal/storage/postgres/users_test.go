package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"media-service/internal/models"
	"media-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Файл интеграционных тестов для пакета postgres:
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет миграции из ./migrations (1_init_users.up.sql);
// - проверяет happy-path, уникальность username/email (CITEXT), перезапись
//   слота refresh-токена и сценарии отсутствия записей (storage.ErrNotFound).
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет миграцию users и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// Применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_users.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}

	return st, cleanup
}

// newUser — хелпер создания пользователя в памяти.
func newUser(username, email string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestIntegration_SaveUser_And_Lookups_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("alice", "alice@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	byID, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, byID.Username)
	require.Equal(t, u.Email, byID.Email)
	require.Empty(t, byID.RefreshToken)

	byUsername, err := st.UserByUsernameOrEmail(ctx, "alice", "")
	require.NoError(t, err)
	require.Equal(t, u.ID, byUsername.ID)

	byEmail, err := st.UserByUsernameOrEmail(ctx, "", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestIntegration_SaveUser_UniqueViolation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, st.SaveUser(ctx, newUser("bob", "bob@example.com")))

	// Повтор username (CITEXT — без учёта регистра).
	err := st.SaveUser(ctx, newUser("BOB", "other@example.com"))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	// Повтор email.
	err = st.SaveUser(ctx, newUser("carol", "Bob@Example.com"))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_Lookups_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	_, err := st.UserByID(ctx, uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserByUsernameOrEmail(ctx, "ghost", "ghost@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateRefreshToken_OverwriteAndClear(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("dave", "dave@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	// Запись первого токена.
	require.NoError(t, st.UpdateRefreshToken(ctx, u.ID, "token-1"))
	got, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "token-1", got.RefreshToken)

	// Перезапись: в слоте остаётся только последнее значение.
	require.NoError(t, st.UpdateRefreshToken(ctx, u.ID, "token-2"))
	got, err = st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "token-2", got.RefreshToken)

	// Очистка слота (logout).
	require.NoError(t, st.UpdateRefreshToken(ctx, u.ID, ""))
	got, err = st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, got.RefreshToken)

	// Несуществующий пользователь.
	err = st.UpdateRefreshToken(ctx, uuid.New(), "token-3")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateAvatarAndCoverURL(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("erin", "erin@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	require.NoError(t, st.UpdateAvatarURL(ctx, u.ID, "https://cdn/avatars/a.jpg"))
	require.NoError(t, st.UpdateCoverURL(ctx, u.ID, "https://cdn/covers/c.jpg"))

	got, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "https://cdn/avatars/a.jpg", got.AvatarURL)
	require.Equal(t, "https://cdn/covers/c.jpg", got.CoverURL)

	err = st.UpdateAvatarURL(ctx, uuid.New(), "https://cdn/x.jpg")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
