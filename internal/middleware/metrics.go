package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mflix-space/core/internal/metrics"
)

// Metrics counts requests by method, matched route and status. Unmatched
// paths share one label so scanners cannot blow up cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
