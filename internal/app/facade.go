package app

import (
	"context"

	"github.com/digishoplabs/digishop/internal/domain/model"
	pkgAuth "github.com/digishoplabs/digishop/internal/pkg/auth"
	"github.com/digishoplabs/digishop/internal/usecase"
)

// ShopFacade aggregates the application use cases behind a single surface
// consumed by the HTTP layer.
type ShopFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	products *usecase.ProductUseCase
}

func NewShopFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, products *usecase.ProductUseCase) *ShopFacade {
	return &ShopFacade{auth: auth, orders: orders, products: products}
}

func (f *ShopFacade) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) AuthenticateAdmin(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.AuthenticateAdmin(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.ListUsers(ctx)
}

func (f *ShopFacade) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*model.User, error) {
	return f.auth.UpdateUser(ctx, input)
}

func (f *ShopFacade) RemoveUser(ctx context.Context, id string) error {
	return f.auth.RemoveUser(ctx, id)
}

func (f *ShopFacade) AddProduct(ctx context.Context, input usecase.AddProductInput) (*model.Product, error) {
	return f.products.Add(ctx, input)
}

func (f *ShopFacade) RemoveProduct(ctx context.Context, id string) error {
	return f.products.Remove(ctx, id)
}

func (f *ShopFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *ShopFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *ShopFacade) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	return f.products.Search(ctx, query)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *ShopFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *ShopFacade) OrdersForUser(ctx context.Context, userID string) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) SetOrderStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	return f.orders.SetStatus(ctx, orderID, status)
}

func (f *ShopFacade) CancelOrder(ctx context.Context, orderID, requestingUserID string) (*model.Order, error) {
	return f.orders.Cancel(ctx, orderID, requestingUserID)
}
