package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	applog "financas/internal/log"
)

type contextKey string

// RequestIDKey is the gin and context key of the request id.
const RequestIDKey contextKey = "request_id"

// HeaderRequestID echoes the request id back to the client.
const HeaderRequestID = "X-Request-ID"

// Middleware assigns a request id, stores a request scoped logger and logs
// the start and completion of each request.
func Middleware(logger *applog.Logger) gin.HandlerFunc {
	httpLogger := logger.WithComponent(applog.ComponentHTTP)
	withLogger := applog.Middleware(logger, RequestIDFromGin)

	return func(c *gin.Context) {
		start := time.Now()

		requestID := GenerateRequestID()
		c.Set(string(RequestIDKey), requestID)
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDKey, requestID))

		structured := applog.NewStructuredLogger(httpLogger.With(applog.FieldRequestID, requestID))
		structured.LogHTTPStart(c.Request.Context(), c)
		withLogger(c)
		structured.LogHTTPEnd(c.Request.Context(), c, time.Since(start))
	}
}

// GenerateRequestID creates a unique request ID for tracing
func GenerateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestIDFromGin returns the id assigned by Middleware.
func RequestIDFromGin(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}
