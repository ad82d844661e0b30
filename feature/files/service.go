package files

import (
	"context"
	"fmt"
	"time"

	"file-agent/core/storage"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Gateway is the storage surface the tools need. *storage.Gateway implements it.
type Gateway interface {
	Bucket() string
	Upload(ctx context.Context, key string, data []byte, contentType string) storage.UploadResult
	Download(ctx context.Context, key string) ([]byte, bool)
	Delete(ctx context.Context, key string) bool
	List(ctx context.Context, prefix string) ([]string, error)
	Stat(ctx context.Context, key string) (storage.ObjectMeta, bool)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, bool)
}

// Names of the operations that are not exposed as tools.
const (
	opDeleteFile      = "delete_file"
	opStatFile        = "stat_file"
	opShareFile       = "share_file"
	opListFileDetails = "list_file_details"
)

// Service is the tool layer: it turns gateway results into Envelopes.
type Service struct {
	gateway     Gateway
	logger      *zap.Logger
	maxFileSize int64
	presignTTL  time.Duration
	observers   []Observer
}

// Option configures a Service.
type Option func(*Service)

// WithMaxFileSize rejects writes larger than n bytes. Zero disables the check.
func WithMaxFileSize(n int64) Option {
	return func(s *Service) { s.maxFileSize = n }
}

// WithPresignTTL sets the lifetime ShareFile uses when none is requested.
func WithPresignTTL(ttl time.Duration) Option {
	return func(s *Service) { s.presignTTL = ttl }
}

// WithObserver adds an observer notified after every operation.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observers = append(s.observers, o) }
}

// NewService creates a new tool service.
func NewService(gateway Gateway, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		gateway:    gateway,
		logger:     logger,
		presignTTL: storage.DefaultPresignTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bucket returns the bucket the service writes to.
func (s *Service) Bucket() string {
	return s.gateway.Bucket()
}

func notFound(filename string) string {
	return fmt.Sprintf("File '%s' not found", filename)
}

func (s *Service) finish(ctx context.Context, inv Invocation, start time.Time, env Envelope) Envelope {
	inv.Success = env.Success
	inv.Duration = time.Since(start)
	if !env.Success {
		inv.Error = env.Error
		if inv.ErrorKind == "" {
			inv.ErrorKind = ErrorKindStorage
		}
		env.kind = inv.ErrorKind
	} else {
		inv.ErrorKind = ""
	}
	for _, o := range s.observers {
		o.Observe(ctx, inv)
	}
	return env
}

// ReadFile returns the content of filename. Content that is not valid UTF-8 is
// summarized as "[Binary file, N bytes]" instead of failing.
func (s *Service) ReadFile(ctx context.Context, filename string) Envelope {
	start := time.Now()
	inv := Invocation{Operation: OpReadFile.String(), Filename: filename}
	s.logger.Info("Reading file", zap.String("filename", filename))

	data, ok := s.gateway.Download(ctx, filename)
	if !ok {
		inv.ErrorKind = ErrorKindNotFound
		return s.finish(ctx, inv, start, Fail(notFound(filename)))
	}

	inv.Size = int64(len(data))
	s.logger.Info("Read file", zap.String("filename", filename), zap.Int("size", len(data)))
	return s.finish(ctx, inv, start, Succeed(ReadFileData{
		Filename: filename,
		Content:  DecodeText(data),
		Size:     int64(len(data)),
	}))
}

// WriteFile stores content under filename, replacing any existing file. The
// content type comes from the filename suffix.
func (s *Service) WriteFile(ctx context.Context, filename, content string) Envelope {
	start := time.Now()
	data := []byte(content)
	contentType := ContentTypeFor(filename)
	inv := Invocation{Operation: OpWriteFile.String(), Filename: filename, Size: int64(len(data)), ContentType: contentType}
	s.logger.Info("Writing file", zap.String("filename", filename), zap.String("content_type", contentType))

	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		inv.ErrorKind = ErrorKindTooLarge
		msg := fmt.Sprintf("File '%s' exceeds the maximum size of %s", filename, humanize.IBytes(uint64(s.maxFileSize)))
		return s.finish(ctx, inv, start, Fail(msg))
	}

	res := s.gateway.Upload(ctx, filename, data, contentType)
	if !res.Success {
		return s.finish(ctx, inv, start, Fail(res.Error))
	}

	s.logger.Info("Wrote file", zap.String("filename", filename), zap.Int64("size", res.Size))
	return s.finish(ctx, inv, start, Succeed(WriteFileData{
		Filename:    filename,
		Size:        res.Size,
		Key:         res.Key,
		Bucket:      res.Bucket,
		ETag:        res.ETag,
		ContentType: contentType,
	}))
}

// ListFiles returns every key in the bucket.
func (s *Service) ListFiles(ctx context.Context) Envelope {
	start := time.Now()
	inv := Invocation{Operation: OpListFiles.String()}
	s.logger.Info("Listing files")

	keys, err := s.gateway.List(ctx, "")
	if err != nil {
		return s.finish(ctx, inv, start, Fail(err.Error()))
	}

	s.logger.Info("Listed files", zap.Int("count", len(keys)))
	return s.finish(ctx, inv, start, Succeed(ListFilesData{Files: keys, Count: len(keys)}))
}

// ListFileDetails lists every key with its size and modification time. Keys
// whose metadata cannot be fetched are still listed, by name only.
func (s *Service) ListFileDetails(ctx context.Context) Envelope {
	start := time.Now()
	inv := Invocation{Operation: opListFileDetails}

	keys, err := s.gateway.List(ctx, "")
	if err != nil {
		return s.finish(ctx, inv, start, Fail(err.Error()))
	}

	details := make([]FileDetail, 0, len(keys))
	for _, key := range keys {
		detail := FileDetail{Name: key}
		if meta, ok := s.gateway.Stat(ctx, key); ok {
			size, modified := meta.Size, meta.LastModified
			detail.Size = &size
			detail.LastModified = &modified
		}
		details = append(details, detail)
	}
	return s.finish(ctx, inv, start, Succeed(FileDetailsData{Files: details, Count: len(details)}))
}

// DeleteFile removes filename.
func (s *Service) DeleteFile(ctx context.Context, filename string) Envelope {
	start := time.Now()
	inv := Invocation{Operation: opDeleteFile, Filename: filename}
	s.logger.Info("Deleting file", zap.String("filename", filename))

	if !s.gateway.Delete(ctx, filename) {
		return s.finish(ctx, inv, start, Fail(fmt.Sprintf("Failed to delete '%s'", filename)))
	}
	return s.finish(ctx, inv, start, Succeed(DeleteFileData{
		Filename: filename,
		Message:  fmt.Sprintf("File '%s' deleted successfully", filename),
	}))
}

// StatFile returns the stored metadata of filename.
func (s *Service) StatFile(ctx context.Context, filename string) Envelope {
	start := time.Now()
	inv := Invocation{Operation: opStatFile, Filename: filename}

	meta, ok := s.gateway.Stat(ctx, filename)
	if !ok {
		inv.ErrorKind = ErrorKindNotFound
		return s.finish(ctx, inv, start, Fail(notFound(filename)))
	}
	inv.Size = meta.Size
	return s.finish(ctx, inv, start, Succeed(StatFileData{ObjectMeta: meta}))
}

// ShareFile issues a presigned download URL for filename valid for ttl. A
// non-positive ttl uses the service default.
func (s *Service) ShareFile(ctx context.Context, filename string, ttl time.Duration) Envelope {
	start := time.Now()
	inv := Invocation{Operation: opShareFile, Filename: filename}
	if ttl <= 0 {
		ttl = s.presignTTL
	}

	if _, ok := s.gateway.Stat(ctx, filename); !ok {
		inv.ErrorKind = ErrorKindNotFound
		return s.finish(ctx, inv, start, Fail(notFound(filename)))
	}

	link, ok := s.gateway.PresignedURL(ctx, filename, ttl)
	if !ok {
		return s.finish(ctx, inv, start, Fail(fmt.Sprintf("Failed to generate a download URL for '%s'", filename)))
	}
	return s.finish(ctx, inv, start, Succeed(ShareFileData{
		Filename:  filename,
		URL:       link,
		ExpiresIn: int64(ttl.Seconds()),
	}))
}
