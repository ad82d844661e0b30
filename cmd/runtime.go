package cmd

import (
	"context"
	"fmt"
	"time"

	"file-agent/core/config"
	"file-agent/core/database"
	"file-agent/core/logger"
	"file-agent/core/storage"
	"file-agent/feature/files"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the components shared by every command.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	gateway *storage.Gateway
}

func loadConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// bootstrap loads configuration, builds the logger and connects to storage.
// The bucket is created if missing; failing that is fatal for every command.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, logg, err := loadConfigAndLogger()
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	initCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	gateway, err := storage.NewGateway(initCtx, client, cfg.Storage, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &runtime{cfg: cfg, logger: logg, client: client, gateway: gateway}, nil
}

// connectDatabase opens the optional database, returning nil when it is unavailable.
func (r *runtime) connectDatabase() *gorm.DB {
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		r.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	r.logger.Info("Connected to activity database", zap.String("driver", r.cfg.Database.Driver))
	return db
}

// fileService builds the tool layer with the configured limits.
func (r *runtime) fileService(opts ...files.Option) *files.Service {
	base := []files.Option{
		files.WithMaxFileSize(r.cfg.Storage.MaxFileSizeBytes()),
		files.WithPresignTTL(r.cfg.Storage.PresignTTL()),
	}
	return files.NewService(r.gateway, r.logger, append(base, opts...)...)
}
