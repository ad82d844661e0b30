//go:build integration

package storage_test

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"file-agent/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	minioc "github.com/testcontainers/testcontainers-go/modules/minio"
	"go.uber.org/zap"
)

var integrationCfg storage.Config

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := minioc.Run(ctx, "minio/minio:latest")
	if err != nil {
		panic("failed to start minio container: " + err.Error())
	}

	endpoint, err := container.ConnectionString(ctx)
	if err != nil {
		panic("failed to get minio endpoint: " + err.Error())
	}

	integrationCfg = storage.Config{
		Endpoint:       endpoint,
		AccessKey:      container.Username,
		SecretKey:      container.Password,
		Bucket:         "integration-files",
		TimeoutSeconds: 10,
	}

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestGateway_MinIO(t *testing.T) {
	ctx := context.Background()

	client, err := storage.NewClient(integrationCfg)
	require.NoError(t, err)

	// The bucket does not exist yet, so this covers creation on first use.
	gw, err := storage.NewGateway(ctx, client, integrationCfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, gw.EnsureBucket(ctx))

	res := gw.Upload(ctx, "reports/q1.txt", []byte("Q1 summary"), "text/plain")
	require.True(t, res.Success, res.Error)
	assert.Equal(t, int64(10), res.Size)

	data, ok := gw.Download(ctx, "reports/q1.txt")
	require.True(t, ok)
	assert.Equal(t, "Q1 summary", string(data))

	meta, ok := gw.Stat(ctx, "reports/q1.txt")
	require.True(t, ok)
	assert.Equal(t, int64(10), meta.Size)
	assert.Equal(t, "text/plain", meta.ContentType)

	keys, err := gw.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, keys, "reports/q1.txt")

	link, ok := gw.PresignedURL(ctx, "reports/q1.txt", time.Minute)
	require.True(t, ok)
	resp, err := http.Get(link)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, ok = gw.Download(ctx, "missing.txt")
	assert.False(t, ok)
	_, ok = gw.Stat(ctx, "missing.txt")
	assert.False(t, ok)

	assert.True(t, gw.Delete(ctx, "reports/q1.txt"))
	_, ok = gw.Download(ctx, "reports/q1.txt")
	assert.False(t, ok)
}
