package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/cleanpos/pkg/httpx"
)

func TestNewRateLimiter_DisabledWhenNoRPS(t *testing.T) {
	require.Nil(t, httpx.NewRateLimiter(0, 10))
	require.Nil(t, httpx.NewRateLimiter(-1, 10))
}

func TestRateLimit_BurstThen429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 1 rps с burst=2: первые два запроса проходят сразу, третий — нет
	limiter := httpx.NewRateLimiter(1, 2)
	require.NotNil(t, limiter)

	calls := 0
	r := gin.New()
	r.Use(httpx.RateLimit(limiter))
	r.GET("/", func(c *gin.Context) {
		calls++
		c.Status(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			require.Equal(t, "1", w.Header().Get("Retry-After"))
		}
	}

	require.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	require.Equal(t, 2, calls)
}
