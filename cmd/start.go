package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"file-agent/core/loader"
	"file-agent/core/logger"
	"file-agent/core/metrics"
	"file-agent/core/middleware/rayid"
	"file-agent/core/server"

	"file-agent/feature/activity"
	"file-agent/feature/agent"
	"file-agent/feature/dashboard"
	"file-agent/feature/files"
	"file-agent/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "file-agent/docs/swagger"
)

// @title File Agent API
// @version 1.0
// @description File operations over S3 storage, exposed to an LLM agent and over HTTP.
// @host localhost:8000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the file agent server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and storage
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			log.Fatalf("Startup failed: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		cfg := rt.cfg

		// 2. Optional database for the activity log
		db := rt.connectDatabase()
		activityFeature := activity.NewFeature(db, logg)

		// 3. Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New("file_agent", reg)

		// 4. Tool layer
		observers := []files.Option{files.WithObserver(files.MetricsObserver(m))}
		if store := activityFeature.Store(); store != nil {
			observers = append(observers, files.WithObserver(store))
		}
		svc := rt.fileService(observers...)

		// 5. Agent (optional)
		var ag *agent.Agent
		if cfg.Agent.Enabled() {
			ag = agent.New(agent.NewClient(cfg.Agent), files.NewDispatcher(svc), cfg.Agent, logg)
		} else {
			logg.Warn("AGENT_API_KEY not set, chat is disabled")
		}

		// 6. Features
		agentFeature := agent.NewFeature(ag, logg)
		components := health.Components{
			Storage:  rt.gateway != nil,
			Agent:    agentFeature.Initialized(),
			Database: db != nil,
		}

		mgr := loader.NewManager(logg)
		mgr.Register(health.NewFeature(rt.client, cfg.Storage.Bucket, logg, components))
		mgr.Register(files.NewFeature(svc))
		mgr.Register(agentFeature)
		mgr.Register(activityFeature)
		mgr.Register(dashboard.NewFeature(cfg.Server.StaticDir, logg))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             server.BodyLimit(cfg.Storage.MaxFileSizeBytes()),
		})

		// RayID first so every log line below carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("address", cfg.Server.Address()),
				zap.String("bucket", rt.gateway.Bucket()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
