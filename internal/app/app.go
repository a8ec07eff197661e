package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mflix-space/core/internal/config"
	"github.com/mflix-space/core/internal/database"
	"github.com/mflix-space/core/internal/middleware"
	"github.com/mflix-space/core/internal/modules/comment"
	"github.com/mflix-space/core/internal/modules/movie"
	"github.com/mflix-space/core/internal/modules/recommend"
	pkgredis "github.com/mflix-space/core/internal/pkg/redis"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *database.DB
	redis  *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: Mongo → Redis → completer → routes.
func New(ctx context.Context, logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Warn("ensure indexes failed", zap.Error(err))
	}
	db.LogCatalog(ctx, logger)

	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, idempotence disabled", zap.Error(err))
			rc = nil
		}
	}

	completer, err := recommend.NewCompleter(cfg.AI, nil)
	if err != nil {
		_ = db.Disconnect(ctx)
		if rc != nil {
			_ = rc.Close()
		}
		return nil, fmt.Errorf("ai provider: %w", err)
	}
	if !cfg.AI.HasAPIKey() {
		logger.Warn("no LLM API key configured, recommendations will fail until one is set",
			zap.String("provider", cfg.AI.Provider))
	}

	movies := movie.NewRepository(db.Movies(), db.Comments())
	stores := Stores{
		Movies:   movies,
		Comments: comment.NewRepository(db.Comments()),
		Catalog:  movies,
		Pinger:   db,
	}
	a := build(logger, cfg, stores, completer, rc)
	a.db = db
	return a, nil
}

// build wires the router against the given stores. It performs no I/O.
func build(logger *zap.Logger, cfg *config.AppConfig, stores Stores, completer recommend.Completer, rc *pkgredis.Client) *App {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	if !cfg.Metrics.Disable {
		router.Use(middleware.Metrics())
	}
	router.Use(newCORS(cfg))

	a := &App{cfg: cfg, router: router, redis: rc, logger: logger}
	a.registerRoutes(stores, completer)
	return a
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases the store and Redis connections.
func (a *App) Shutdown(ctx context.Context) {
	if a.db != nil {
		if err := a.db.Disconnect(ctx); err != nil {
			a.logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	}
}
