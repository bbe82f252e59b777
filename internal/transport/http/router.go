package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/cleanpos/pkg/httpx"
)

// NewRouter — gin-движок со служебными и прикладными маршрутами.
// otelServiceName == "" отключает otelgin; limiter == nil отключает ограничение частоты.
func NewRouter(h *Handler, otelServiceName string, limiter httpx.RateLimiter) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "route not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"}) })

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/")
	if limiter != nil {
		api.Use(httpx.RateLimit(limiter))
	}

	api.POST("/delivery/validate", h.validateDelivery)
	api.GET("/loyalty/transactions", h.listTransactions)
	api.GET("/order/:id", h.getOrderByID)
	api.GET("/branches/:id", h.getBranch)
	api.GET("/branches/:id/name", h.getBranchName)
	api.POST("/branches/cache/invalidate", h.invalidateBranches)
	api.GET("/weather", h.getWeather)

	return r
}
