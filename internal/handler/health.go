package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"ventaslive/internal/backend"
)

// Health reports gateway liveness plus the state of its two upstreams: the
// data backend and Redis. Never exposes addresses or credentials.
func Health(cliente *backend.Client, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		backendStatus := "connected"
		if cliente.Ping(ctx) != nil {
			backendStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if backendStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"backend": backendStatus,
			"redis":   redisStatus,
		})
	}
}
