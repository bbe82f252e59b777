package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

// Services — прикладные сервисы, которые обслуживает HTTP-слой.
type Services struct {
	Orders   ports.OrderReadService
	Branches ports.BranchReader
	Delivery ports.DeliveryValidator
	Loyalty  ports.LoyaltyReader
	Weather  ports.WeatherReader
}

// Handler — HTTP-обработчики поверх Services.
type Handler struct {
	svc     Services
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — timeout ограничивает обработку одного запроса; 0 — без ограничения.
func NewHandler(svc Services, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{svc: svc, log: log, timeout: timeout}
}

// requestContext — контекст запроса с таймаутом хендлера.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return context.WithCancel(c.Request.Context())
}

// statusFor — HTTP-статус для доменной ошибки.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError — ответ {"error": "..."}; детали 5xx остаются в логе.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
