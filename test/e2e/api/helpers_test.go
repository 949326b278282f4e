package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/myvehicles/internal/api/app"
	"github.com/aussiebroadwan/myvehicles/pkg/fleetsdk"
)

const testSecret = "e2e-secret-0123456789abcdef-0123456789"

// startMongo launches a mongo:7 container and returns its connection URI.
func startMongo(t *testing.T) string {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForListeningPort("27017/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

// setupAPI boots the full application against a fresh MongoDB database and
// returns a client pointed at it.
func setupAPI(t *testing.T) *fleetsdk.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	application, err := app.New(app.Config{
		DatabaseURI:         startMongo(t),
		DatabaseName:        fmt.Sprintf("myvehicles_e2e_%d", time.Now().UnixNano()),
		DatabaseTimeout:     30 * time.Second,
		SecretKey:           testSecret,
		ExpiresIn:           "15m",
		Issuer:              "myvehicles",
		BcryptCost:          4,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                4000,
		ShutdownGracePeriod: time.Second,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown()
	})

	return fleetsdk.NewClient(srv.URL)
}

func requireAPIError(t *testing.T, err error, status int) *fleetsdk.APIError {
	t.Helper()

	var apiErr *fleetsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}
