package test

import (
	"context"

	"github.com/digishoplabs/digishop/internal/domain/model"
	pkgAuth "github.com/digishoplabs/digishop/internal/pkg/auth"
	"github.com/digishoplabs/digishop/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn          func(context.Context, string, string, string) (*model.User, error)
	AuthenticateFn      func(context.Context, string, string) (*model.User, string, error)
	AuthenticateAdminFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn             func(string) (*pkgAuth.Claims, error)
	UsersFn             func(context.Context) ([]model.User, error)
	UpdateUserFn        func(context.Context, usecase.UpdateUserInput) (*model.User, error)
	RemoveUserFn        func(context.Context, string) error
}

// Register returns a created user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: "u-1", Name: name, Email: email}, nil
}

// Authenticate returns user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "u-1", Email: email}, "token", nil
}

// AuthenticateAdmin returns admin user and token.
func (s AuthFacadeStub) AuthenticateAdmin(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateAdminFn != nil {
		return s.AuthenticateAdminFn(ctx, email, password)
	}
	return &model.User{ID: "u-1", Email: email, IsAdmin: true}, "token", nil
}

// ParseToken returns stored claims for authenticated requests.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{UserID: "u-1"}, nil
}

// Users returns the configured user list.
func (s AuthFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: "u-1"}}, nil
}

// UpdateUser delegates to the override or echoes the input.
func (s AuthFacadeStub) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, input)
	}
	return &model.User{ID: input.ID, Name: input.Name, Email: input.Email}, nil
}

// RemoveUser delegates to the override.
func (s AuthFacadeStub) RemoveUser(ctx context.Context, id string) error {
	if s.RemoveUserFn != nil {
		return s.RemoveUserFn(ctx, id)
	}
	return nil
}

// ProductFacadeStub provides controllable behaviour for catalog endpoints.
type ProductFacadeStub struct {
	AddFn    func(context.Context, usecase.AddProductInput) (*model.Product, error)
	RemoveFn func(context.Context, string) error
	ListFn   func(context.Context) ([]model.Product, error)
	GetFn    func(context.Context, string) (*model.Product, error)
	SearchFn func(context.Context, string) ([]model.Product, error)
}

// AddProduct delegates to the override or returns the echoed product.
func (s ProductFacadeStub) AddProduct(ctx context.Context, input usecase.AddProductInput) (*model.Product, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, input)
	}
	return &model.Product{ID: "p-1", Name: input.Name, Price: input.Price}, nil
}

// RemoveProduct delegates to the override.
func (s ProductFacadeStub) RemoveProduct(ctx context.Context, id string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, id)
	}
	return nil
}

// Products returns the configured catalog.
func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Product{{ID: "p-1", Name: "Keyboard"}}, nil
}

// Product returns a single configured entry.
func (s ProductFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

// SearchProducts returns the configured search result.
func (s ProductFacadeStub) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return []model.Product{{ID: "p-1"}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn       func(context.Context, *model.Order) (*model.Order, error)
	OrdersFn      func(context.Context) ([]model.Order, error)
	ForUserFn     func(context.Context, string) ([]model.Order, error)
	SetStatusFn   func(context.Context, string, string) (*model.Order, error)
	CancelOrderFn func(context.Context, string, string) (*model.Order, error)
}

// PlaceOrder delegates to provided function or echoes the order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, order)
	}
	stored := *order
	stored.ID = "o-1"
	stored.Status = model.OrderStatusPending
	return &stored, nil
}

// Orders returns every configured order.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "o-1"}}, nil
}

// OrdersForUser returns predefined orders for given user.
func (s OrderFacadeStub) OrdersForUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.ForUserFn != nil {
		return s.ForUserFn(ctx, userID)
	}
	return []model.Order{{ID: "o-1", UserID: userID}}, nil
}

// SetOrderStatus delegates to the override or returns the updated order.
func (s OrderFacadeStub) SetOrderStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatus(status)}, nil
}

// CancelOrder delegates to the override or returns a cancelled order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID, userID string) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, orderID, userID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	ProductFacadeStub
	OrderFacadeStub
}
