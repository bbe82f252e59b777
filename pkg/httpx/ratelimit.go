package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter — источник разрешений на запрос; *rate.Limiter ему удовлетворяет.
type RateLimiter interface {
	Allow() bool
}

// NewRateLimiter — token bucket на rps запросов в секунду с запасом burst.
// rps <= 0 отключает ограничение (nil).
func NewRateLimiter(rps float64, burst int) RateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// RateLimit — middleware: без разрешения отвечает 429 и не вызывает хендлер.
func RateLimit(l RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
