package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes mounts the liveness endpoint. With ?deep=1 the store is
// pinged as well and an unreachable store yields 503.
func RegisterRoutes(rg *gin.RouterGroup, db Pinger) {
	rg.GET("/health", func(c *gin.Context) {
		if !isDeep(c.Query("deep")) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		dbOK := db != nil && db.Ping(ctx) == nil

		status := "ok"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":   status,
			"database": dbOK,
		})
	})
}

func isDeep(v string) bool {
	switch v {
	case "1", "true", "yes":
		return true
	}
	return false
}
