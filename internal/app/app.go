package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/auth"
	"github.com/MrSnakeDoc/backoffice/internal/config"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/deps"
	"github.com/MrSnakeDoc/backoffice/internal/kv"
	"github.com/MrSnakeDoc/backoffice/internal/kv/memory"
	kvredis "github.com/MrSnakeDoc/backoffice/internal/kv/redis"
	"github.com/MrSnakeDoc/backoffice/internal/kv/sqlite"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/redis"
	"github.com/MrSnakeDoc/backoffice/internal/repository/local"
	"github.com/MrSnakeDoc/backoffice/internal/scheduler"
	"github.com/MrSnakeDoc/backoffice/internal/sources/seed"
	"github.com/MrSnakeDoc/backoffice/internal/utils"
	"github.com/MrSnakeDoc/backoffice/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
	store  kv.Store
	gc     *scheduler.GarbageCollector
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	app, err := build(context.Background(), cfg, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to initialize: %v", err)
		os.Exit(1)
	}
	return app
}

// build wires storage, seed data, auth and the HTTP server.
func build(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	// Open the store early - fail fast if unavailable
	store, err := OpenStore(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}
	loggerClient.Info("store initialized", logger.String("backend", cfg.StoreBackend))

	if cfg.SeedFile != "" {
		if err := applySeed(ctx, cfg.SeedFile, store, loggerClient); err != nil {
			utils.CloseLogged(store, cfg.StoreBackend, loggerClient)
			return nil, err
		}
	}

	authSvc, err := auth.New(store, auth.Options{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
		ResetTTL: cfg.ResetTTL,
		Logger:   loggerClient.With(logger.String("component", "auth")),
	})
	if err != nil {
		utils.CloseLogged(store, cfg.StoreBackend, loggerClient)
		return nil, err
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		CORSOrigins:  cfg.CORSOrigins,
		Store:        store,
		StoreBackend: cfg.StoreBackend,
		Repos:        local.NewSet(store),
		Auth:         authSvc,
		AuthBurst:    cfg.AuthBurst,
		AuthPerMin:   cfg.AuthPerMinute,
	}

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: httpserver.New(cfg, loggerClient, d),
		store:  store,
		gc:     scheduler.NewGarbageCollector(authSvc, loggerClient, cfg.GCInterval),
	}, nil
}

// OpenStore opens the kv backend named by cfg.StoreBackend.
func OpenStore(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (kv.Store, error) {
	switch cfg.StoreBackend {
	case kv.BackendMemory:
		loggerClient.Warn("memory store selected, data is lost on restart")
		return memory.New(), nil
	case kv.BackendSQLite:
		loggerClient.Info("opening sqlite store", logger.String("dsn", cfg.Redacted().SQLiteDSN))
		return sqlite.Open(ctx, cfg.SQLiteDSN)
	case kv.BackendRedis:
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return kvredis.NewStore(client), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func applySeed(ctx context.Context, path string, store kv.Store, loggerClient logger.Logger) error {
	file, err := seed.NewLoader(path).Load()
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}
	seeded, err := seed.Apply(ctx, store, file, loggerClient)
	if err != nil {
		return fmt.Errorf("failed to apply seed file: %w", err)
	}
	total := 0
	for _, n := range seeded {
		total += n
	}
	loggerClient.Info("seed applied", logger.String("file", path), logger.Int("records", total))
	return nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Backoffice API v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Backoffice %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start garbage collector
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started", logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.gc.Stop()
		utils.CloseLogged(a.store, a.cfg.StoreBackend, a.logger)
		return err
	}

	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	utils.CloseLogged(a.store, a.cfg.StoreBackend, a.logger)
	a.logger.Info("✅ Backoffice API stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
