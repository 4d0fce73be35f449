package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/media"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/routes"
	"github.com/BruksfildServices01/barbershop-booking/internal/telemetry"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	}, logger)

	var closers []func() error

	// ======================================================
	// STORAGE
	// ======================================================
	var (
		stores    routes.Stores
		sinks     []audit.Sink
		auditRead audit.Reader
	)

	switch cfg.StorageDriver {
	case "memory":
		mem := memory.NewStores()
		stores = routes.Stores{
			Appointments:   mem.Appointments,
			Clients:        mem.Clients,
			Barbers:        mem.Barbers,
			WorkingWindows: mem.WorkingWindows,
			Services:       mem.Services,
		}
		memSink := audit.NewMemorySink(0)
		sinks = append(sinks, memSink)
		auditRead = memSink
	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, sqlDB.Close)
		}
		repos := repository.NewStores(db)
		stores = routes.Stores{
			Appointments:   repos.Appointments,
			Clients:        repos.Clients,
			Barbers:        repos.Barbers,
			WorkingWindows: repos.WorkingWindows,
			Services:       repos.Services,
		}
		gormSink := audit.NewGormSink(db)
		sinks = append(sinks, gormSink)
		auditRead = gormSink
	}
	logger.Info("storage ready", "driver", cfg.StorageDriver)

	// ======================================================
	// LOCKS
	// ======================================================
	locker, closeLocker, err := buildLocker(ctx, cfg)
	if err != nil {
		return err
	}
	if closeLocker != nil {
		closers = append(closers, closeLocker)
	}
	logger.Info("booking lock ready", "driver", cfg.LockDriver)

	// ======================================================
	// EVENTS & METRICS
	// ======================================================
	m := metrics.New()
	sinks = append(sinks, audit.NewCounterSink(m))

	if cfg.RabbitURL != "" {
		pub, err := audit.NewAMQPPublisher(cfg.RabbitURL, cfg.EventsExchange)
		if err != nil {
			return err
		}
		closers = append(closers, pub.Close)
		sinks = append(sinks, audit.NewAMQPSink(pub))
		logger.Info("publishing events", "exchange", cfg.EventsExchange)
	}

	dispatcher := audit.NewDispatcher(logger, sinks...)

	// ======================================================
	// MEDIA
	// ======================================================
	var blobs media.BlobStore
	if cfg.S3Bucket != "" {
		blobs = media.NewS3Store(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		blobs = media.NewMemoryStore()
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	clock := timeutil.WallClock{Location: timezone.Location(cfg.ShopTimezone)}

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:  cfg,
		Logger:  logger,
		Stores:  stores,
		Locker:  locker,
		Clock:   clock,
		Tokens:  identity.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, timeutil.SystemClock{}),
		Audit:   dispatcher,
		AuditDB: auditRead,
		Photos:  media.NewProcessor(0),
		Blobs:   blobs,
		Metrics: m,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	// ======================================================
	// SHUTDOWN
	// ======================================================
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Error("audit drain", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown", "error", err)
	}
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			logger.Error("close resource", "error", err)
		}
	}
	return nil
}

func buildLocker(ctx context.Context, cfg *config.Config) (lock.Locker, func() error, error) {
	switch cfg.LockDriver {
	case "none":
		return lock.Noop{}, nil, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return lock.NewRedis(client, cfg.LockTTL), client.Close, nil
	default:
		return lock.NewMemory(), nil, nil
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
