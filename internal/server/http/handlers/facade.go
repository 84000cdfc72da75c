package handlers

import (
	"context"

	"github.com/digishoplabs/digishop/internal/domain/model"
	pkgAuth "github.com/digishoplabs/digishop/internal/pkg/auth"
	"github.com/digishoplabs/digishop/internal/usecase"
)

// AuthFacade describes authentication and user management capabilities
// required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	AuthenticateAdmin(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
	Users(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*model.User, error)
	RemoveUser(ctx context.Context, id string) error
}

// ProductFacade encapsulates catalog operations exposed via HTTP.
type ProductFacade interface {
	AddProduct(ctx context.Context, input usecase.AddProductInput) (*model.Product, error)
	RemoveProduct(ctx context.Context, id string) error
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	OrdersForUser(ctx context.Context, userID string) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, orderID, status string) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, requestingUserID string) (*model.Order, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	ProductFacade
	OrderFacade
}
