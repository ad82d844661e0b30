package storage

import "time"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9002" env:"MINIO_ENDPOINT"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin" env:"MINIO_ACCESS_KEY"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin123" env:"MINIO_SECRET_KEY"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false" env:"MINIO_SECURE"`
	// Bucket is the name of the bucket all files live in.
	Bucket string `mapstructure:"bucket" default:"agent-files" env:"MINIO_BUCKET_NAME"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxFileSizeMB caps the size of a single written file.
	MaxFileSizeMB int `mapstructure:"max_file_size_mb" default:"10" env:"MAX_FILE_SIZE_MB"`
	// PresignTTLSeconds is the default lifetime of presigned URLs.
	PresignTTLSeconds int `mapstructure:"presign_ttl_seconds" default:"3600"`
}

// DefaultPresignTTL is used when no positive TTL is configured or requested.
const DefaultPresignTTL = time.Hour

// PresignTTL returns the configured presigned URL lifetime.
func (c Config) PresignTTL() time.Duration {
	if c.PresignTTLSeconds <= 0 {
		return DefaultPresignTTL
	}
	return time.Duration(c.PresignTTLSeconds) * time.Second
}

// MaxFileSizeBytes returns the write limit in bytes, or 0 when unlimited.
func (c Config) MaxFileSizeBytes() int64 {
	if c.MaxFileSizeMB <= 0 {
		return 0
	}
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}
