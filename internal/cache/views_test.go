package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для кэша просмотров:
// — поднимают реальный Redis через testcontainers-go;
// — проверяют накопление инкрементов и атомарный слив Drain.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -race -count=1

func startRedis(t *testing.T) (ViewCache, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")

	vc, err := NewRedisCache(fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "")
	require.NoError(t, err)

	cleanup := func() {
		_ = vc.Close()
		_ = c.Terminate(context.Background())
	}

	return vc, cleanup
}

func TestIntegration_IncrView_And_Drain(t *testing.T) {
	vc, cleanup := startRedis(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, vc.IncrView(ctx, "video-a"))
	require.NoError(t, vc.IncrView(ctx, "video-a"))
	require.NoError(t, vc.IncrView(ctx, "video-b"))

	got, err := vc.Drain(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"video-a": 2, "video-b": 1}, got)

	// Повторный Drain — пусто: счётчики обнулены.
	got, err = vc.Drain(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	// Новые инкременты после слива начинают счёт заново.
	require.NoError(t, vc.IncrView(ctx, "video-a"))
	got, err = vc.Drain(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"video-a": 1}, got)
}
