package dto

import (
	"time"

	"github.com/digishoplabs/digishop/internal/domain/model"
)

// OrderItemRequest is a single line of an incoming order.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/order/create-order.
type CreateOrderRequest struct {
	UserID        string             `json:"userId"`
	Items         []OrderItemRequest `json:"items"`
	TotalAmount   float64            `json:"totalAmount"`
	Address       string             `json:"address"`
	PaymentMethod string             `json:"paymentMethod"`
}

// SetOrderStatusRequest is the body of the admin status update endpoint.
type SetOrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// CancelOrderRequest is the body of the customer cancellation endpoint.
type CancelOrderRequest struct {
	OrderID string `json:"orderId"`
}

// OrderItemResponse is a single line of a stored order.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse mirrors the stored order document.
type OrderResponse struct {
	ID            string              `json:"_id"`
	UserID        string              `json:"userId"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   float64             `json:"totalAmount"`
	Address       string              `json:"address"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// ToOrderResponse converts the domain order into its wire form.
func ToOrderResponse(order model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders.
func ToOrderResponses(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, ToOrderResponse(o))
	}
	return result
}
