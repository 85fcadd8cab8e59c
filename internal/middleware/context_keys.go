package middleware

import "github.com/gin-gonic/gin"

// GetRequestIDFromContext returns the id assigned to the current request by
// StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	id := c.Writer.Header().Get(RequestIDHeader)
	if id == "" {
		return "", false
	}
	return id, true
}
