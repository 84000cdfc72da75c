package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
	"github.com/digishoplabs/digishop/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS orders",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_user ON orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_products_name ON products").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

func TestNew(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		if _, err := New(context.Background(), ":://bad", logger); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmockv3.AnyArg(), "Alex", "alex@example.com", "hash", false).
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at"}).AddRow(time.Now()))

	user, err := repo.Create(context.Background(), "Alex", "alex@example.com", "hash", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if user.Email != "alex@example.com" {
		t.Fatalf("unexpected email %q", user.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmockv3.AnyArg(), "Alex", "alex@example.com", "hash", false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if _, err := repo.Create(context.Background(), "Alex", "alex@example.com", "hash", false); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()

	mock.ExpectQuery("SELECT id, name, email, password_hash, is_admin, created_at FROM users WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.GetByEmail(context.Background(), "missing@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Users()

	mock.ExpectExec("DELETE FROM users").WithArgs("u-1").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM users").WithArgs("u-2").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), "u-2"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(pgxmockv3.AnyArg(), "u-1", pgxmockv3.AnyArg(), 42.0, "1 Main St", "Cash on Delivery", model.OrderStatusPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	order, err := repo.Create(context.Background(), &model.Order{
		UserID:        "u-1",
		Items:         []model.OrderItem{{ProductID: "p-1", Quantity: 2}},
		TotalAmount:   42,
		Address:       "1 Main St",
		PaymentMethod: "Cash on Delivery",
		Status:        model.OrderStatusPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if !order.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created at %s", order.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	mock.ExpectQuery("SELECT id, user_id, items, total_amount, address, payment_method, status, created_at, updated_at FROM orders WHERE id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderRepositoryListByUser(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := pgxmockv3.NewRows([]string{"id", "user_id", "items", "total_amount", "address", "payment_method", "status", "created_at", "updated_at"}).
		AddRow("o-2", "u-1", []byte(`[{"productId":"p-1","quantity":1}]`), 10.0, "addr", "Cash on Delivery", model.OrderStatusPending, newer, newer).
		AddRow("o-1", "u-1", []byte(`[]`), 20.0, "addr", "Card", model.OrderStatusCancelled, older, older)

	mock.ExpectQuery("FROM orders WHERE user_id").WithArgs("u-1").WillReturnRows(rows)

	orders, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != "o-2" || orders[1].ID != "o-1" {
		t.Fatalf("unexpected ordering: %s, %s", orders[0].ID, orders[1].ID)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].ProductID != "p-1" {
		t.Fatalf("unexpected items %+v", orders[0].Items)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusCancelled, "o-1").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), "o-1", model.OrderStatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusCancelled, "missing").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateStatus(context.Background(), "missing", model.OrderStatusCancelled); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProductRepositoryCreateAndScan(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Products()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(pgxmockv3.AnyArg(), "", "Keyboard", "", "", "Mechanical keyboard", 59.0, 0.0, false, true, false, pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at"}).AddRow(time.Now()))

	product, err := repo.Create(context.Background(), &model.Product{
		Name:        "Keyboard",
		Description: "Mechanical keyboard",
		Price:       59,
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID == "" {
		t.Fatal("expected store-assigned id")
	}
}

func TestProductRepositorySearchByName(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Products()

	rows := pgxmockv3.NewRows([]string{"id", "type", "name", "category", "brand", "description", "price", "discounted_percentage", "badge", "is_available", "offer", "tags", "images", "created_at"}).
		AddRow("p-1", "", "Keyboard", "", "", "desc", 59.0, 0.0, false, true, false, []byte(`["tech"]`), []byte(`["https://cdn/x.png"]`), time.Now())

	mock.ExpectQuery("FROM products WHERE name ILIKE").WithArgs("key", 50).WillReturnRows(rows)

	products, err := repo.SearchByName(context.Background(), "key", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Keyboard" {
		t.Fatalf("unexpected result %+v", products)
	}
	if len(products[0].Tags) != 1 || products[0].Tags[0] != "tech" {
		t.Fatalf("unexpected tags %+v", products[0].Tags)
	}
	if len(products[0].Images) != 1 {
		t.Fatalf("unexpected images %+v", products[0].Images)
	}
}
