package log

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

type contextKey string

const loggerContextKey contextKey = "logger"

// NewContext returns ctx carrying logger.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext extracts a logger from ctx, falling back to the slog default.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*Logger); ok {
		return logger
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// Middleware stores a request scoped logger in the request context. The
// logger carries the request id when one was assigned before it.
func Middleware(logger *Logger, requestID func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := logger.WithComponent(ComponentHTTP)
		if requestID != nil {
			if id := requestID(c); id != "" {
				l = l.With(FieldRequestID, id)
			}
		}
		c.Request = c.Request.WithContext(NewContext(c.Request.Context(), l))
		c.Next()
	}
}

// StructuredLogger emits the HTTP and ledger events with a fixed field set.
type StructuredLogger struct {
	logger *Logger
}

func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{logger: logger}
}

func (sl *StructuredLogger) LogHTTPStart(ctx context.Context, c *gin.Context) {
	fields := NewFields().
		WithHTTPRequest(c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery, c.Request.UserAgent()).
		WithClientIP(c.ClientIP())

	sl.logger.LogFields(ctx, slog.LevelInfo, "HTTP request started", fields)
}

// LogHTTPEnd logs at warn for 4xx and error for 5xx responses.
func (sl *StructuredLogger) LogHTTPEnd(ctx context.Context, c *gin.Context, elapsed time.Duration) {
	status := c.Writer.Status()
	level := slog.LevelInfo
	if status >= 400 && status < 500 {
		level = slog.LevelWarn
	} else if status >= 500 {
		level = slog.LevelError
	}

	fields := NewFields().
		WithHTTPRequest(c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery, "").
		WithHTTPResponse(status, elapsed.Milliseconds()).
		WithClientIP(c.ClientIP())
	if len(c.Errors) > 0 {
		fields[FieldError] = c.Errors.String()
	}

	sl.logger.LogFields(ctx, level, "HTTP request completed", fields)
}

// LogError logs err with its component and operation.
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, component, operation string) {
	fields := NewFields().
		WithError(err).
		WithOperation(operation).
		WithComponent(component)

	sl.logger.LogFields(ctx, slog.LevelError, msg, fields)
}
