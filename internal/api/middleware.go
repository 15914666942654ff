package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// requestIdMiddleware keeps the caller's request id or creates one, and
// echoes it back so a response can be matched with the logs.
func requestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set("requestId", id)
		c.Header(RequestIdHeader, id)

		c.Next()

		if len(c.Errors) > 0 {
			routerLogger.Error("request failed", slog.String("requestId", id), slog.String("path", c.FullPath()), slog.String("error", c.Errors.String()))
		}
	}
}
