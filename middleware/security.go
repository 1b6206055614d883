package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxRequestBodyBytes caps incoming request bodies. Note and bookmark
// payloads are small JSON documents; anything near this limit is abuse.
const MaxRequestBodyBytes = 1 << 20

// RequestSizeLimiter rejects oversized requests up front when the client
// declares a Content-Length, and wraps the body so chunked uploads cannot
// stream past the limit either.
func RequestSizeLimiter(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Request body too large"})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
