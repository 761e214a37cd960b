package loggingMiddleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderKey = "X-Request-Id"
	RequestIDKey       = "request_id"
)

// RequestID reuses a valid incoming X-Request-Id or generates a new one,
// stores it in the context and echoes it back in the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeaderKey)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		ctx.Set(RequestIDKey, requestID)
		ctx.Header(RequestIDHeaderKey, requestID)
		ctx.Next()
	}
}

// Logger logs one line per request once the handler chain has finished
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		attrs := []slog.Attr{
			slog.String("requestID", ctx.GetString(RequestIDKey)),
			slog.String("method", ctx.Request.Method),
			slog.String("route", route(ctx)),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("clientIP", ctx.ClientIP()),
		}
		if len(ctx.Errors) > 0 {
			attrs = append(attrs, slog.String("error", ctx.Errors.String()))
		}

		logger.LogAttrs(ctx.Request.Context(), level(status), "request completed", attrs...)
	}
}

func level(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// route is the matched route pattern, so ids do not end up in logs and labels
func route(ctx *gin.Context) string {
	if fullPath := ctx.FullPath(); fullPath != "" {
		return fullPath
	}
	return "unmatched"
}
