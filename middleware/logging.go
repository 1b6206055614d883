package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
	"go.uber.org/zap"
)

// RequestLoggingMiddleware writes one structured access-log line per
// request, with the client User-Agent broken out into browser/OS/device
// fields.
func RequestLoggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ua := useragent.Parse(c.Request.UserAgent())

		logger.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("browser", ua.Name),
			zap.String("os", ua.OS),
			zap.Bool("mobile", ua.Mobile),
		)
	}
}
