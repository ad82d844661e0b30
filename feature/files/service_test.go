package files

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"file-agent/core/storage"
	"file-agent/core/storage/storagetest"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "test-bucket"

func newTestService(t *testing.T, opts ...Option) (*Service, *storagetest.Memory) {
	t.Helper()
	mem := storagetest.NewMemory()
	gw, err := storage.NewGateway(context.Background(), mem, storage.Config{Bucket: testBucket}, zap.NewNop())
	require.NoError(t, err)
	return NewService(gw, zap.NewNop(), opts...), mem
}

// brokenGateway fails every operation.
type brokenGateway struct {
	listErr error
}

func (brokenGateway) Bucket() string { return testBucket }

func (brokenGateway) Upload(context.Context, string, []byte, string) storage.UploadResult {
	return storage.UploadResult{Error: "connection refused"}
}

func (brokenGateway) Download(context.Context, string) ([]byte, bool) { return nil, false }

func (brokenGateway) Delete(context.Context, string) bool { return false }

func (g brokenGateway) List(context.Context, string) ([]string, error) { return nil, g.listErr }

func (brokenGateway) Stat(context.Context, string) (storage.ObjectMeta, bool) {
	return storage.ObjectMeta{}, false
}

func (brokenGateway) PresignedURL(context.Context, string, time.Duration) (string, bool) {
	return "", false
}

func TestService_WriteThenRead(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	w := svc.WriteFile(ctx, "report.txt", "Q1 summary")
	require.True(t, w.Success, w.Error)
	data := w.Data.(WriteFileData)
	assert.Equal(t, "report.txt", data.Filename)
	assert.Equal(t, int64(10), data.Size)
	assert.Equal(t, "report.txt", data.Key)
	assert.Equal(t, testBucket, data.Bucket)
	assert.Equal(t, "text/plain", data.ContentType)
	assert.NotEmpty(t, data.ETag)

	r := svc.ReadFile(ctx, "report.txt")
	require.True(t, r.Success, r.Error)
	assert.Equal(t, ReadFileData{Filename: "report.txt", Content: "Q1 summary", Size: 10}, r.Data)
}

func TestService_WriteOverwrites(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	require.True(t, svc.WriteFile(ctx, "a.txt", "first").Success)
	require.True(t, svc.WriteFile(ctx, "a.txt", "second").Success)

	r := svc.ReadFile(ctx, "a.txt")
	assert.Equal(t, "second", r.Data.(ReadFileData).Content)
	assert.Equal(t, 1, mem.Len(testBucket))
}

func TestService_WriteEmptyContent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	w := svc.WriteFile(ctx, "empty.txt", "")
	require.True(t, w.Success)
	assert.Equal(t, int64(0), w.Data.(WriteFileData).Size)

	r := svc.ReadFile(ctx, "empty.txt")
	require.True(t, r.Success)
	assert.Equal(t, "", r.Data.(ReadFileData).Content)
}

func TestService_WriteContentType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := map[string]string{
		"a.json":    "application/json",
		"a.html":    "text/html",
		"a.csv":     "text/csv",
		"a.txt":     "text/plain",
		"a.bin":     "text/plain",
		"a.JSON":    "text/plain",
		"noext":     "text/plain",
		"dir/x.csv": "text/csv",
	}
	for name, want := range tests {
		w := svc.WriteFile(ctx, name, "x")
		require.True(t, w.Success, name)
		assert.Equal(t, want, w.Data.(WriteFileData).ContentType, name)

		st := svc.StatFile(ctx, name)
		require.True(t, st.Success, name)
		assert.Equal(t, want, st.Data.(StatFileData).ContentType, name)
	}
}

func TestService_WriteTooLarge(t *testing.T) {
	svc, mem := newTestService(t, WithMaxFileSize(8))
	ctx := context.Background()

	w := svc.WriteFile(ctx, "big.txt", "123456789")
	assert.False(t, w.Success)
	assert.Equal(t, "File 'big.txt' exceeds the maximum size of 8 B", w.Error)
	assert.Equal(t, ErrorKindTooLarge, w.Kind())
	assert.Nil(t, w.Data)
	assert.Equal(t, 0, mem.Len(testBucket))

	assert.True(t, svc.WriteFile(ctx, "ok.txt", "12345678").Success)
}

func TestService_WriteSurfacesUploadError(t *testing.T) {
	svc := NewService(brokenGateway{}, zap.NewNop())

	w := svc.WriteFile(context.Background(), "a.txt", "x")
	assert.False(t, w.Success)
	assert.Equal(t, "connection refused", w.Error)
	assert.Equal(t, ErrorKindStorage, w.Kind())
}

func TestService_WriteEmptyFilename(t *testing.T) {
	svc, _ := newTestService(t)

	w := svc.WriteFile(context.Background(), "", "x")
	assert.False(t, w.Success)
	assert.Equal(t, storage.ErrEmptyKey.Error(), w.Error)
}

func TestService_ReadMissing(t *testing.T) {
	svc, _ := newTestService(t)

	r := svc.ReadFile(context.Background(), "missing.txt")
	assert.False(t, r.Success)
	assert.Equal(t, "File 'missing.txt' not found", r.Error)
	assert.Equal(t, ErrorKindNotFound, r.Kind())
}

func TestService_ReadFailureLooksLikeMissing(t *testing.T) {
	svc := NewService(brokenGateway{}, zap.NewNop())

	r := svc.ReadFile(context.Background(), "a.txt")
	assert.False(t, r.Success)
	assert.Equal(t, "File 'a.txt' not found", r.Error)
}

func TestService_ReadBinary(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	_, err := mem.PutObject(ctx, testBucket, "img.png", strings.NewReader("\xff\xd8\xff\xe0"), 4, minio.PutObjectOptions{ContentType: "image/png"})
	require.NoError(t, err)

	r := svc.ReadFile(ctx, "img.png")
	require.True(t, r.Success)
	assert.Equal(t, ReadFileData{Filename: "img.png", Content: "[Binary file, 4 bytes]", Size: 4}, r.Data)
}

func TestService_ListFiles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	l := svc.ListFiles(ctx)
	require.True(t, l.Success)
	assert.Equal(t, ListFilesData{Files: []string{}, Count: 0}, l.Data)

	for _, name := range []string{"b.txt", "a.txt", "dir/c.txt"} {
		require.True(t, svc.WriteFile(ctx, name, name).Success)
	}

	l = svc.ListFiles(ctx)
	require.True(t, l.Success)
	data := l.Data.(ListFilesData)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "dir/c.txt"}, data.Files)
	assert.Equal(t, 3, data.Count)

	require.True(t, svc.DeleteFile(ctx, "b.txt").Success)
	l = svc.ListFiles(ctx)
	assert.Equal(t, 2, l.Data.(ListFilesData).Count)
	assert.NotContains(t, l.Data.(ListFilesData).Files, "b.txt")
}

func TestService_ListFilesFailure(t *testing.T) {
	svc := NewService(brokenGateway{listErr: errors.New("bucket unreachable")}, zap.NewNop())

	l := svc.ListFiles(context.Background())
	assert.False(t, l.Success)
	assert.Equal(t, "bucket unreachable", l.Error)
	assert.Nil(t, l.Data)
}

func TestService_ListFileDetails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.True(t, svc.WriteFile(ctx, "a.txt", "hello").Success)

	env := svc.ListFileDetails(ctx)
	require.True(t, env.Success)
	data := env.Data.(FileDetailsData)
	require.Len(t, data.Files, 1)
	assert.Equal(t, 1, data.Count)
	assert.Equal(t, "a.txt", data.Files[0].Name)
	require.NotNil(t, data.Files[0].Size)
	assert.Equal(t, int64(5), *data.Files[0].Size)
	assert.NotNil(t, data.Files[0].LastModified)
}

func TestService_DeleteFile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.True(t, svc.WriteFile(ctx, "a.txt", "x").Success)

	d := svc.DeleteFile(ctx, "a.txt")
	require.True(t, d.Success)
	assert.Equal(t, DeleteFileData{Filename: "a.txt", Message: "File 'a.txt' deleted successfully"}, d.Data)
	assert.False(t, svc.ReadFile(ctx, "a.txt").Success)

	broken := NewService(brokenGateway{}, zap.NewNop())
	d = broken.DeleteFile(ctx, "a.txt")
	assert.False(t, d.Success)
	assert.Equal(t, "Failed to delete 'a.txt'", d.Error)
}

func TestService_StatMissing(t *testing.T) {
	svc, _ := newTestService(t)

	st := svc.StatFile(context.Background(), "missing.txt")
	assert.False(t, st.Success)
	assert.Equal(t, "File 'missing.txt' not found", st.Error)
}

func TestService_ShareFile(t *testing.T) {
	svc, _ := newTestService(t, WithPresignTTL(10*time.Minute))
	ctx := context.Background()

	require.True(t, svc.WriteFile(ctx, "a.txt", "x").Success)

	env := svc.ShareFile(ctx, "a.txt", 0)
	require.True(t, env.Success, env.Error)
	data := env.Data.(ShareFileData)
	assert.Equal(t, int64(600), data.ExpiresIn)
	assert.Contains(t, data.URL, "/test-bucket/a.txt")

	env = svc.ShareFile(ctx, "a.txt", time.Minute)
	require.True(t, env.Success)
	assert.Equal(t, int64(60), env.Data.(ShareFileData).ExpiresIn)

	env = svc.ShareFile(ctx, "missing.txt", 0)
	assert.False(t, env.Success)
	assert.Equal(t, ErrorKindNotFound, env.Kind())

	// Rejected by the store: longer than the 7 day presign limit.
	env = svc.ShareFile(ctx, "a.txt", 8*24*time.Hour)
	assert.False(t, env.Success)
	assert.Equal(t, "Failed to generate a download URL for 'a.txt'", env.Error)
}

func TestService_Observers(t *testing.T) {
	var seen []Invocation
	obs := ObserverFunc(func(_ context.Context, inv Invocation) {
		seen = append(seen, inv)
	})
	svc, _ := newTestService(t, WithObserver(obs), WithMaxFileSize(4))
	ctx := context.Background()

	svc.WriteFile(ctx, "a.csv", "1,2")
	svc.WriteFile(ctx, "b.csv", "1,2,3")
	svc.ReadFile(ctx, "missing.txt")
	svc.ListFiles(ctx)

	require.Len(t, seen, 4)

	assert.Equal(t, "write_file", seen[0].Operation)
	assert.True(t, seen[0].Success)
	assert.Equal(t, "text/csv", seen[0].ContentType)
	assert.Equal(t, int64(3), seen[0].Size)
	assert.Empty(t, seen[0].ErrorKind)

	assert.False(t, seen[1].Success)
	assert.Equal(t, ErrorKindTooLarge, seen[1].ErrorKind)

	assert.Equal(t, "read_file", seen[2].Operation)
	assert.Equal(t, ErrorKindNotFound, seen[2].ErrorKind)
	assert.Equal(t, "File 'missing.txt' not found", seen[2].Error)

	assert.Equal(t, "list_files", seen[3].Operation)
	assert.True(t, seen[3].Success)
}
