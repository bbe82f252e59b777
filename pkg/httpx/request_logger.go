package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/cleanpos/internal/ports"
	"github.com/Gunvolt24/cleanpos/pkg/metrics"
)

// RequestLogger — middleware: строка лога и метрики на каждый запрос.
// Уровень зависит от статуса: 5xx — Errorf, 4xx — Warnf, остальное — Infof.
// request_id/trace_id добавляет сам логгер из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		switch route {
		case "/metrics", "/ping":
			return
		case "":
			route = "unmatched"
		}

		status := c.Writer.Status()
		elapsed := time.Since(start)
		metrics.ObserveHTTP(c.Request.Method, route, status, elapsed)

		logf := log.Infof
		switch {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}
		logf(
			c.Request.Context(),
			"request method=%s route=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			route,
			c.Request.URL.Path,
			status,
			c.ClientIP(),
			elapsed,
			c.Writer.Size(),
		)
	}
}
