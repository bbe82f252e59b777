package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
	"github.com/Gunvolt24/cleanpos/pkg/httpx"
)

type deliveryRequest struct {
	OrderID       string `json:"orderId"`
	ScheduledTime string `json:"scheduledTime"`
}

func (h *Handler) validateDelivery(c *gin.Context) {
	var req deliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, "validateDelivery", fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.svc.Delivery.ValidateDelivery(ctx, req.OrderID, req.ScheduledTime)
	if err != nil {
		h.writeError(c, "validateDelivery", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) listTransactions(c *gin.Context) {
	limit, err := httpx.QueryInt(c, "limit", 0)
	if err != nil {
		h.writeError(c, "listTransactions", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	page, err := h.svc.Loyalty.Transactions(ctx, ports.TransactionQuery{
		CustomerID: c.Query("customerId"),
		LoyaltyID:  c.Query("loyaltyId"),
		Type:       c.Query("type"),
		Limit:      limit,
	})
	if err != nil {
		h.writeError(c, "listTransactions", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// orderResponse — заказ с именем филиала для отображения.
type orderResponse struct {
	*domain.Order
	BranchName string `json:"branch_name"`
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id := c.Param("id")
	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.svc.Orders.GetOrder(ctx, id)
	if err != nil {
		h.writeError(c, "GetOrder", err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, orderResponse{
		Order:      order,
		BranchName: h.svc.Branches.ResolveName(ctx, order.ProcessingBranchID),
	})
}

func (h *Handler) getBranch(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	branch, err := h.svc.Branches.Resolve(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, "ResolveBranch", err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *Handler) getBranchName(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"branch_id": id, "name": h.svc.Branches.ResolveName(ctx, id)})
}

type invalidateRequest struct {
	BranchID string `json:"branch_id"`
}

// invalidateBranches — пустое тело сбрасывает весь справочник.
func (h *Handler) invalidateBranches(c *gin.Context) {
	var req invalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(c, "invalidateBranches", fmt.Errorf("%w: malformed body", domain.ErrInvalidInput))
		return
	}
	if req.BranchID == "" {
		h.svc.Branches.InvalidateAll(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"invalidated": "all"})
		return
	}
	h.svc.Branches.Invalidate(c.Request.Context(), req.BranchID)
	c.JSON(http.StatusOK, gin.H{"invalidated": req.BranchID})
}

func (h *Handler) getWeather(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	w, err := h.svc.Weather.Current(ctx, c.Query("location"))
	if err != nil {
		h.writeError(c, "CurrentWeather", err)
		return
	}
	c.JSON(http.StatusOK, w)
}
