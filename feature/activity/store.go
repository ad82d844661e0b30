package activity

import (
	"context"
	"fmt"
	"time"

	"file-agent/feature/files"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Record is one persisted tool invocation.
type Record struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Operation  string    `gorm:"column:operation;type:varchar(64);not null;index" json:"operation"`
	Filename   string    `gorm:"column:filename;type:varchar(1024)" json:"filename,omitempty"`
	Success    bool      `gorm:"column:success;not null" json:"success"`
	Error      string    `gorm:"column:error;type:text" json:"error,omitempty"`
	Size       int64     `gorm:"column:size" json:"size"`
	DurationMs int64     `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name used by Record.
func (Record) TableName() string {
	return "tool_activities"
}

// Store persists invocations and serves them back.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a store over db.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the activity table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Record{}.TableName(), err)
	}
	return nil
}

// Observe implements files.Observer. Write failures are logged and dropped.
func (s *Store) Observe(ctx context.Context, inv files.Invocation) {
	rec := Record{
		Operation:  inv.Operation,
		Filename:   inv.Filename,
		Success:    inv.Success,
		Error:      inv.Error,
		Size:       inv.Size,
		DurationMs: inv.Duration.Milliseconds(),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		s.logger.Warn("Failed to record tool activity",
			zap.String("operation", inv.Operation),
			zap.Error(err))
	}
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	records := make([]Record, 0, limit)
	err := s.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tool activity: %w", err)
	}
	return records, nil
}
