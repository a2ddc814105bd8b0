package middleware

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/pkg/logger"
)

// RequestLogger logs incoming HTTP requests using slog. Server errors
// attached with c.Error are forwarded to the request's Sentry hub.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if strings.HasSuffix(path, "/health") {
			return
		}

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		if raw != "" {
			path = path + "?" + raw
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", statusCode),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", latency),
			slog.String("user_agent", c.Request.UserAgent()),
		}

		if errorMessage != "" {
			attrs = append(attrs, slog.String("error", errorMessage))
		}

		if userID, exists := c.Get("userID"); exists {
			attrs = append(attrs, slog.Any("user_id", userID))
		}

		msg := "Incoming request"
		switch {
		case statusCode >= 500:
			logger.Log.Error(msg, attrs...)
			captureErrors(c)
		case statusCode >= 400:
			logger.Log.Warn(msg, attrs...)
		default:
			logger.Log.Info(msg, attrs...)
		}
	}
}

func captureErrors(c *gin.Context) {
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if userID := GetUserID(c); userID != 0 {
			scope.SetUser(sentry.User{ID: strconv.FormatUint(uint64(userID), 10)})
		}
		for _, e := range c.Errors.ByType(gin.ErrorTypePrivate) {
			hub.CaptureException(e.Err)
		}
	})
}
