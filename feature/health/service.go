package health

import (
	"context"
	"fmt"

	"file-agent/core/storage"

	"go.uber.org/zap"
)

// Status values reported by Check.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusOK       = "ok"
	StatusError    = "error"
)

// StorageReport is the result of the storage round trip.
type StorageReport struct {
	Status string `json:"status"`
	Bucket string `json:"bucket"`
	Error  string `json:"error,omitempty"`
}

// Report is the body of GET /health.
type Report struct {
	Status              string        `json:"status"`
	Storage             StorageReport `json:"storage"`
	StorageInitialized  bool          `json:"storage_initialized"`
	AgentInitialized    bool          `json:"agent_initialized"`
	DatabaseInitialized bool          `json:"database_initialized"`
}

// Components reports which parts of the application came up at startup.
type Components struct {
	Storage  bool
	Agent    bool
	Database bool
}

// Service runs health checks.
type Service struct {
	client     storage.Client
	bucket     string
	components Components
	logger     *zap.Logger
}

// NewService creates a new health service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, components Components) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:     client,
		bucket:     bucket,
		components: components,
		logger:     logger,
	}
}

// CheckStorage verifies the bucket is reachable and exists.
func (s *Service) CheckStorage(ctx context.Context) StorageReport {
	report := StorageReport{Status: StatusOK, Bucket: s.bucket}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	switch {
	case err != nil:
		report.Status = StatusError
		report.Error = err.Error()
	case !exists:
		report.Status = StatusError
		report.Error = fmt.Sprintf("bucket %s does not exist", s.bucket)
	}

	if report.Status != StatusOK {
		s.logger.Warn("Storage health check failed", zap.String("bucket", s.bucket), zap.String("error", report.Error))
	}
	return report
}

// Check runs every check. The overall status is degraded when storage fails.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Status:              StatusHealthy,
		Storage:             s.CheckStorage(ctx),
		StorageInitialized:  s.components.Storage,
		AgentInitialized:    s.components.Agent,
		DatabaseInitialized: s.components.Database,
	}
	if report.Storage.Status != StatusOK {
		report.Status = StatusDegraded
	}
	return report
}
