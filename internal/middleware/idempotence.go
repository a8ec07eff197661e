package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	pkgredis "github.com/mflix-space/core/internal/pkg/redis"
	"github.com/mflix-space/core/internal/pkg/response"
)

const (
	idempotenceHeader = "x-idempotence"
	idempotenceTTL    = 60 * time.Second
	idempotencePrefix = "mflix:idempotence:"
)

// Idempotence rejects a repeated write while the first one is in flight or
// within 60 seconds of it succeeding. The request is identified by the
// x-idempotence header, or else by a hash of method, URL, body, user agent
// and client IP. A nil client or a Redis failure lets the request through.
func Idempotence(rc *pkgredis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rc == nil || !isWriteMethod(c.Request.Method) {
			c.Next()
			return
		}

		key, err := resolveIdempotenceKey(c)
		if err != nil || key == "" {
			c.Next()
			return
		}

		redisKey := idempotencePrefix + key
		ctx := c.Request.Context()

		acquired, err := rc.SetNX(ctx, redisKey, "0", idempotenceTTL)
		if err != nil {
			c.Next()
			return
		}
		if !acquired {
			msg := "Identical request may only be sent once within 60 seconds"
			if val, _, _ := rc.Get(ctx, redisKey); val == "0" {
				msg = "Identical request is still being processed"
			}
			response.Conflict(c, msg)
			return
		}

		c.Next()

		done := context.WithoutCancel(ctx)
		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			_ = rc.SetKeepTTL(done, redisKey, "1")
		} else {
			_ = rc.Del(done, redisKey)
		}
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// resolveIdempotenceKey returns the idempotence key for the current request.
func resolveIdempotenceKey(c *gin.Context) (string, error) {
	if hdr := c.GetHeader(idempotenceHeader); hdr != "" {
		return hdr, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	ua := c.Request.UserAgent()
	ip := c.ClientIP()
	if len(body) == 0 && ua == "" && ip == "" {
		return "", nil
	}

	raw := c.Request.Method + "|" + c.Request.URL.String() + "|" + string(body) + "|" + ua + "|" + ip
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:]), nil
}
