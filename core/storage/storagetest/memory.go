// Package storagetest provides an in-memory storage.Client for tests.
package storagetest

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

type object struct {
	data        []byte
	contentType string
	etag        string
	modified    time.Time
}

// Memory is a map-backed storage.Client with S3 overwrite semantics.
type Memory struct {
	mu      sync.Mutex
	buckets map[string]map[string]object
	now     func() time.Time
}

// NewMemory returns an empty store with the given buckets already created.
func NewMemory(buckets ...string) *Memory {
	m := &Memory{
		buckets: make(map[string]map[string]object),
		now:     time.Now,
	}
	for _, b := range buckets {
		m.buckets[b] = make(map[string]object)
	}
	return m
}

func noSuchKey(bucket, key string) error {
	return minio.ErrorResponse{
		Code:       "NoSuchKey",
		Message:    "The specified key does not exist.",
		BucketName: bucket,
		Key:        key,
		StatusCode: http.StatusNotFound,
	}
}

func noSuchBucket(bucket string) error {
	return minio.ErrorResponse{
		Code:       "NoSuchBucket",
		Message:    "The specified bucket does not exist",
		BucketName: bucket,
		StatusCode: http.StatusNotFound,
	}
}

func (m *Memory) bucket(name string) (map[string]object, error) {
	b, ok := m.buckets[name]
	if !ok {
		return nil, noSuchBucket(name)
	}
	return b, nil
}

// Len returns the number of objects in bucket.
func (m *Memory) Len(bucket string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets[bucket])
}

func (m *Memory) BucketExists(_ context.Context, bucketName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.buckets[bucketName]
	return ok, nil
}

func (m *Memory) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucketName]; ok {
		return minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou", BucketName: bucketName, StatusCode: http.StatusConflict}
	}
	m.buckets[bucketName] = make(map[string]object)
	return nil
}

func (m *Memory) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	if objectSize >= 0 && int64(len(data)) != objectSize {
		return minio.UploadInfo{}, fmt.Errorf("size mismatch: got %d bytes, expected %d", len(data), objectSize)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.bucket(bucketName)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	sum := md5.Sum(data)
	obj := object{
		data:        data,
		contentType: opts.ContentType,
		etag:        hex.EncodeToString(sum[:]),
		modified:    m.now().UTC(),
	}
	b[objectName] = obj

	return minio.UploadInfo{
		Bucket:       bucketName,
		Key:          objectName,
		ETag:         obj.etag,
		Size:         int64(len(data)),
		LastModified: obj.modified,
	}, nil
}

func (m *Memory) GetObject(_ context.Context, bucketName, objectName string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.bucket(bucketName)
	if err != nil {
		return nil, err
	}
	obj, ok := b[objectName]
	if !ok {
		return nil, noSuchKey(bucketName, objectName)
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(obj.data))), nil
}

func (m *Memory) StatObject(_ context.Context, bucketName, objectName string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.bucket(bucketName)
	if err != nil {
		return minio.ObjectInfo{}, err
	}
	obj, ok := b[objectName]
	if !ok {
		return minio.ObjectInfo{}, noSuchKey(bucketName, objectName)
	}
	return minio.ObjectInfo{
		Key:          objectName,
		Size:         int64(len(obj.data)),
		ETag:         obj.etag,
		ContentType:  obj.contentType,
		LastModified: obj.modified,
	}, nil
}

// ListObjects returns keys in lexical order. Only recursive listing is modelled.
func (m *Memory) ListObjects(_ context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, err := m.bucket(bucketName)
	if err != nil {
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: err}
		close(ch)
		return ch
	}

	keys := make([]string, 0, len(b))
	for k := range b {
		if strings.HasPrefix(k, opts.Prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		obj := b[k]
		ch <- minio.ObjectInfo{
			Key:          k,
			Size:         int64(len(obj.data)),
			ETag:         obj.etag,
			LastModified: obj.modified,
		}
	}
	close(ch)
	return ch
}

// RemoveObject succeeds for missing keys, as S3 does.
func (m *Memory) RemoveObject(_ context.Context, bucketName, objectName string, _ minio.RemoveObjectOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.bucket(bucketName)
	if err != nil {
		return err
	}
	delete(b, objectName)
	return nil
}

func (m *Memory) PresignedGetObject(_ context.Context, bucketName, objectName string, expiry time.Duration, _ url.Values) (*url.URL, error) {
	if expiry < time.Second || expiry > 7*24*time.Hour {
		return nil, fmt.Errorf("expires should be between 1 second and 7 days")
	}
	u := &url.URL{
		Scheme:   "http",
		Host:     "memory.local",
		Path:     "/" + bucketName + "/" + objectName,
		RawQuery: url.Values{"X-Amz-Expires": {fmt.Sprintf("%d", int64(expiry.Seconds()))}}.Encode(),
	}
	return u, nil
}
