package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digishoplabs/digishop/internal/domain/model"
	"github.com/digishoplabs/digishop/internal/server/http/dto"
)

// OrderHandler exposes the order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/order/create. The order is placed for the
// authenticated user unless the body names one explicitly.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	userID := req.UserID
	if userID == "" {
		if claims := CurrentClaims(c); claims != nil {
			userID = claims.UserID
		}
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), &model.Order{
		UserID:        userID,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToOrderResponse(*order)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "order placed",
		Order:   &view,
	})
}

// ListForUser handles GET /api/order/user/:userId.
func (h *OrderHandler) ListForUser(c *gin.Context) {
	orders, err := h.facade.OrdersForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Orders:  dto.ToOrderResponses(orders),
	})
}

// ListAll handles GET /api/order/.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Orders:  dto.ToOrderResponses(orders),
	})
}

// SetStatus handles PUT /api/order/.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req dto.SetOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), req.OrderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToOrderResponse(*order)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "order status updated",
		Order:   &view,
	})
}

// Cancel handles POST /api/order/cancel. Only the order's owner may cancel,
// and only while the order is not in a terminal state.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	claims := CurrentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, dto.Fail("authentication required"))
		return
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), req.OrderID, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToOrderResponse(*order)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "order cancelled",
		Order:   &view,
	})
}
