package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/quotepulse/internal/logger"
)

// RequestLogger is a Gin middleware that writes one structured line per
// request once the handler chain has finished.
//
// The line is written through the request-scoped logger, so it carries the
// request_id bound by RequestID(). 5xx responses log at error level, 4xx at
// warn, everything else at info.
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-...","method":"GET","path":"/api/v1/quote","symbol":"TSLA","status":200,"latency_ms":412,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		l := logger.FromContext(c.Request.Context())
		ev := levelFor(l, status)
		if sym := c.Query("symbol"); sym != "" {
			ev = ev.Str("symbol", sym)
		}
		ev.Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func levelFor(l *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return l.Error()
	case status >= http.StatusBadRequest:
		return l.Warn()
	default:
		return l.Info()
	}
}
