package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mflix-space/core/internal/metrics"
	"github.com/mflix-space/core/internal/middleware"
	"github.com/mflix-space/core/internal/modules/comment"
	"github.com/mflix-space/core/internal/modules/health"
	"github.com/mflix-space/core/internal/modules/movie"
	"github.com/mflix-space/core/internal/modules/recommend"
	"github.com/mflix-space/core/internal/pkg/response"
)

const apiPrefix = "/api"

// Stores groups the persistence capabilities the routes depend on.
type Stores struct {
	Movies   movie.Store
	Comments comment.Store
	Catalog  recommend.Catalog
	Pinger   health.Pinger
}

func (a *App) registerRoutes(stores Stores, completer recommend.Completer) {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	if !a.cfg.Metrics.Disable {
		r.GET(a.cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	appInfo := gin.H{
		"name":    "mflix-core",
		"version": "1.0.0",
		"env":     a.cfg.Env,
	}

	api := r.Group(apiPrefix)
	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	health.RegisterRoutes(api, stores.Pinger)

	movie.NewHandler(movie.NewService(stores.Movies), a.logger).RegisterRoutes(api)
	recommend.NewHandler(recommend.NewService(stores.Catalog, completer, a.logger), a.logger).RegisterRoutes(api)
	comment.NewHandler(comment.NewService(stores.Comments), a.logger).
		RegisterRoutes(api, middleware.Idempotence(a.redis))
}
