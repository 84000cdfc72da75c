package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
	"github.com/digishoplabs/digishop/internal/domain/model"
	"github.com/digishoplabs/digishop/internal/domain/repository"
)

const defaultPaymentMethod = "Cash on Delivery"

// OrderUseCase encapsulates the order lifecycle policy: which status
// transitions are legal and who may request them. Updates are plain
// read-modify-write with no version guard; concurrent writers race and the
// last write wins.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create validates and persists a new order. Status always starts at Pending,
// item quantities default to 1, payment method to cash on delivery.
func (u *OrderUseCase) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domainErrors.ErrInvalidInput)
	}
	if order.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount is required", domainErrors.ErrInvalidInput)
	}
	if order.Address == "" {
		return nil, fmt.Errorf("%w: address is required", domainErrors.ErrInvalidInput)
	}

	if order.PaymentMethod == "" {
		order.PaymentMethod = defaultPaymentMethod
	}
	for i := range order.Items {
		if order.Items[i].Quantity <= 0 {
			order.Items[i].Quantity = 1
		}
	}
	order.Status = model.OrderStatusPending

	return u.orders.Create(ctx, order)
}

// ListAll returns every order, newest first.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// ListByUser returns orders owned by the user, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domainErrors.ErrInvalidInput)
	}
	return u.orders.ListByUser(ctx, userID)
}

// SetStatus overwrites the order status on behalf of an administrator. The
// value must belong to the known status set, but the transition itself is
// unrestricted: admins may move an order out of a terminal state.
func (u *OrderUseCase) SetStatus(ctx context.Context, orderID, rawStatus string) (*model.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domainErrors.ErrInvalidInput)
	}
	if rawStatus == "" {
		return nil, fmt.Errorf("%w: status is required", domainErrors.ErrInvalidInput)
	}

	status, err := model.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Cancel moves the order to Cancelled on behalf of its owner. Orders already
// in a terminal state cannot be cancelled, and only the owning user may
// request cancellation.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID, requestingUserID string) (*model.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domainErrors.ErrInvalidInput)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requestingUserID {
		return nil, domainErrors.ErrForbidden
	}
	if order.Status.Terminal() {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusCancelled
	return order, nil
}
