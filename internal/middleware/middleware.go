package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/pkg/logger"
)

const (
	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"

	contextKeyLogger = "requestLogger"
)

// RequestLogger assigns a request id and logs every request once it completes
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		l := base.With().Str("requestID", requestID).Logger()
		c.Set(contextKeyLogger, &l)

		c.Next()

		status := c.Writer.Status()
		event := l.Info()
		switch {
		case status >= 500:
			event = l.Error()
		case status >= 400:
			event = l.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}

// requestLogger returns the request-scoped logger, or the global one outside RequestLogger
func requestLogger(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(contextKeyLogger); ok {
		if l, ok := v.(*zerolog.Logger); ok {
			return l
		}
	}
	l := logger.Get()
	return &l
}
