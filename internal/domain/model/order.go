package model

import (
	"time"

	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
)

// OrderStatus describes order lifecycle. The set is closed: values outside of
// it are rejected on parse rather than stored verbatim.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus converts a raw string into a known status value.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(raw), nil
	}
	return "", domainErrors.ErrInvalidStatus
}

// Terminal reports whether the customer-facing cancel path may still act on
// an order in this status. Admin status updates are not constrained by it.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderItem is a single catalog position within an order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order describes a purchase request placed by a customer.
type Order struct {
	ID            string
	UserID        string
	Items         []OrderItem
	TotalAmount   float64
	Address       string
	PaymentMethod string
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
