package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"medalert/docs"
	"medalert/internal/alerting"
	"medalert/internal/config"
	"medalert/internal/database"
	"medalert/internal/database/migration"
	handlers "medalert/internal/http/handler"
	"medalert/internal/http/middleware"
	"medalert/internal/logger"
	"medalert/internal/metrics"
	appotel "medalert/internal/otel"
	"medalert/internal/repository/postgres"
	"medalert/internal/service"
	"medalert/internal/storage"
)

// @title Medicine Alert API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	log := logger.New(cfg.LogLevel, loc)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := appotel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	windows, err := cfg.ExpiryWindows()
	if err != nil {
		log.Fatal("failed to load alert rules", zap.Error(err))
	}
	evaluator := alerting.NewEvaluator(windows)
	log.Info("alert_rules_loaded", zap.Strings("expiry_windows", evaluator.ExpiryWindows()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	alertMetrics, err := metrics.NewAlertMetrics(reg)
	if err != nil {
		log.Fatal("failed to register alert metrics", zap.Error(err))
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	opts := []service.Option{
		service.WithRecorder(alertMetrics),
		service.WithLogger(log),
	}

	// Evaluation history is optional; uploads are evaluated the same way without it.
	var db *sql.DB
	if cfg.HistoryEnabled {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		opts = append(opts, service.WithHistory(postgres.NewReportPostgres(db)))
	}

	if cfg.ArchiveEnabled {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
		opts = append(opts, service.WithArchive(objStore))
	}

	dashSvc := service.NewDashboardService(evaluator, opts...)

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.UploadMaxBytes,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID first so every later middleware can read it.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, dashSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info("server_starting",
			zap.String("addr", addr),
			zap.Bool("history_enabled", cfg.HistoryEnabled),
			zap.Bool("archive_enabled", cfg.ArchiveEnabled),
		)
		if err := app.Listen(addr); err != nil {
			log.Error("server_stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown_started")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("server_shutdown_failed", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
}
