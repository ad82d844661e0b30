package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DefaultContentType is stored when an upload does not name one.
const DefaultContentType = "application/octet-stream"

// ErrEmptyKey is reported when an operation is given an empty object key.
var ErrEmptyKey = errors.New("object key must not be empty")

// UploadResult reports the outcome of Upload. Success is false when Error is set.
type UploadResult struct {
	Success bool   `json:"success"`
	Key     string `json:"key,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
	Size    int64  `json:"size,omitempty"`
	ETag    string `json:"etag,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ObjectMeta describes a stored object.
type ObjectMeta struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
}

// Gateway is keyed blob storage over a single bucket.
//
// Only construction can fail with an error. Every per-object operation reports
// failure in-band: Download, Stat and PresignedURL return ok=false, Delete returns
// false, Upload returns an UploadResult with Success=false. List is the exception
// and returns an error so callers must build their own failure response.
//
// A Gateway is immutable after construction and safe for concurrent use as far as
// the underlying Client is.
type Gateway struct {
	client     Client
	bucket     string
	region     string
	presignTTL time.Duration
	logger     *zap.Logger
}

// NewGateway creates a gateway for cfg.Bucket and makes sure the bucket exists.
func NewGateway(ctx context.Context, client Client, cfg Config, logger *zap.Logger) (*Gateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Gateway{
		client:     client,
		bucket:     cfg.Bucket,
		region:     cfg.Region,
		presignTTL: cfg.PresignTTL(),
		logger:     logger.With(zap.String("bucket", cfg.Bucket)),
	}
	if err := g.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// Bucket returns the bucket name.
func (g *Gateway) Bucket() string {
	return g.bucket
}

// EnsureBucket creates the bucket if it does not exist.
func (g *Gateway) EnsureBucket(ctx context.Context) error {
	exists, err := g.client.BucketExists(ctx, g.bucket)
	if err != nil {
		g.logger.Error("Error ensuring bucket exists", zap.Error(err))
		return fmt.Errorf("failed to check bucket %s: %w", g.bucket, err)
	}
	if exists {
		g.logger.Info("Bucket already exists")
		return nil
	}

	if err := g.client.MakeBucket(ctx, g.bucket, minio.MakeBucketOptions{Region: g.region}); err != nil {
		g.logger.Error("Error creating bucket", zap.Error(err))
		return fmt.Errorf("failed to create bucket %s: %w", g.bucket, err)
	}
	g.logger.Info("Bucket created")
	return nil
}

// Upload stores data at key, replacing any existing object.
func (g *Gateway) Upload(ctx context.Context, key string, data []byte, contentType string) UploadResult {
	if key == "" {
		return UploadResult{Error: ErrEmptyKey.Error()}
	}
	if contentType == "" {
		contentType = DefaultContentType
	}

	size := int64(len(data))
	info, err := g.client.PutObject(ctx, g.bucket, key, bytes.NewReader(data), size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		g.logger.Error("Error uploading file", zap.String("key", key), zap.Error(err))
		return UploadResult{Error: err.Error()}
	}

	g.logger.Info("File uploaded", zap.String("key", key), zap.Int64("size", size))
	return UploadResult{
		Success: true,
		Key:     key,
		Bucket:  g.bucket,
		Size:    size,
		ETag:    info.ETag,
	}
}

// Download returns the full content of key. ok is false when the object is
// missing or could not be read; the two cases are not distinguished.
func (g *Gateway) Download(ctx context.Context, key string) (data []byte, ok bool) {
	if key == "" {
		return nil, false
	}

	obj, err := g.client.GetObject(ctx, g.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		g.logger.Error("Error downloading file", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	defer obj.Close()

	// minio defers the request until the first read, so NoSuchKey shows up here.
	data, err = io.ReadAll(obj)
	if err != nil {
		g.logger.Error("Error downloading file", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	g.logger.Info("File downloaded", zap.String("key", key), zap.Int("size", len(data)))
	return data, true
}

// Delete removes key and reports whether the store accepted the removal.
func (g *Gateway) Delete(ctx context.Context, key string) bool {
	if key == "" {
		return false
	}
	if err := g.client.RemoveObject(ctx, g.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		g.logger.Error("Error deleting file", zap.String("key", key), zap.Error(err))
		return false
	}
	g.logger.Info("File deleted", zap.String("key", key))
	return true
}

// List returns every key starting with prefix. An empty prefix lists the whole bucket.
func (g *Gateway) List(ctx context.Context, prefix string) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	keys := make([]string, 0)
	for obj := range g.client.ListObjects(ctx, g.bucket, opts) {
		if obj.Err != nil {
			g.logger.Error("Error listing files", zap.String("prefix", prefix), zap.Error(obj.Err))
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// Stat returns metadata for key. ok is false when the object is missing or the
// call failed.
func (g *Gateway) Stat(ctx context.Context, key string) (meta ObjectMeta, ok bool) {
	if key == "" {
		return ObjectMeta{}, false
	}
	info, err := g.client.StatObject(ctx, g.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		g.logger.Error("Error getting file metadata", zap.String("key", key), zap.Error(err))
		return ObjectMeta{}, false
	}
	return ObjectMeta{
		Name:         key,
		Size:         info.Size,
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
	}, true
}

// PresignedURL issues a credential-free GET URL for key valid for ttl. A
// non-positive ttl uses the configured default.
func (g *Gateway) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, bool) {
	if key == "" {
		return "", false
	}
	if ttl <= 0 {
		ttl = g.presignTTL
	}
	u, err := g.client.PresignedGetObject(ctx, g.bucket, key, ttl, nil)
	if err != nil {
		g.logger.Error("Error generating presigned URL", zap.String("key", key), zap.Error(err))
		return "", false
	}
	g.logger.Info("Generated presigned URL", zap.String("key", key), zap.Duration("ttl", ttl))
	return u.String(), true
}
