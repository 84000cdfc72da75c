package test

import (
	"context"
	"fmt"

	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
	"github.com/digishoplabs/digishop/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[string]*model.User
	Next    int
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[string]*model.User),
		Next:    1,
	}
}

// Create registers user unless email is already taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, isAdmin bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           fmt.Sprintf("u-%d", s.Next),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		result = append(result, *u)
	}
	return result, nil
}

// Update overwrites stored user fields.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[user.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, stored.Email)
	*stored = *user
	s.ByEmail[stored.Email] = stored
	return nil
}

// Delete removes stored user by id.
func (s *UserRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.ByEmail, user.Email)
	return nil
}

// OrderRepositoryStub keeps orders in a slice and allows per-method overrides.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	ListByUserFn   func(context.Context, string) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) error

	Orders      []model.Order
	UpdateCalls []OrderUpdateCall
}

// OrderUpdateCall stores information about UpdateStatus invocations.
type OrderUpdateCall struct {
	OrderID string
	Status  model.OrderStatus
}

// Create appends the order with a generated identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	stored := *order
	stored.ID = fmt.Sprintf("o-%d", len(s.Orders)+1)
	s.Orders = append(s.Orders, stored)
	return &stored, nil
}

// GetByID returns a copy of the matching stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns stored orders.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// ListByUser returns stored orders owned by the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// UpdateStatus records the invocation and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps products in a slice and allows overrides.
type ProductRepositoryStub struct {
	CreateFn func(context.Context, *model.Product) (*model.Product, error)
	SearchFn func(context.Context, string, int) ([]model.Product, error)

	Products []model.Product
}

// Create appends the product with a generated identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	stored := *product
	stored.ID = fmt.Sprintf("p-%d", len(s.Products)+1)
	s.Products = append(s.Products, stored)
	return &stored, nil
}

// GetByID returns a copy of the matching stored product.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	return s.Products, nil
}

// SearchByName delegates to the override or returns stored products.
func (s *ProductRepositoryStub) SearchByName(ctx context.Context, query string, limit int) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query, limit)
	}
	return s.Products, nil
}

// Delete removes the product by id.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	for i, p := range s.Products {
		if p.ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
