package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
	"github.com/digishoplabs/digishop/internal/domain/model"
	testhelpers "github.com/digishoplabs/digishop/internal/test"
	"github.com/digishoplabs/digishop/internal/usecase"
)

func TestOrderUseCaseCreateDefaults(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	order, err := uc.Create(context.Background(), &model.Order{
		UserID:      "u1",
		TotalAmount: 42,
		Address:     "1 Main St",
		Items:       []model.OrderItem{{ProductID: "p1"}, {ProductID: "p2", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.PaymentMethod != "Cash on Delivery" {
		t.Fatalf("expected default payment method, got %q", order.PaymentMethod)
	}
	if order.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity default 1, got %d", order.Items[0].Quantity)
	}
	if order.Items[1].Quantity != 3 {
		t.Fatalf("expected explicit quantity kept, got %d", order.Items[1].Quantity)
	}
	if order.ID == "" {
		t.Fatal("expected store-assigned id")
	}
}

func TestOrderUseCaseCreateValidation(t *testing.T) {
	uc := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{
		CreateFn: func(context.Context, *model.Order) (*model.Order, error) {
			t.Fatal("create should not be called for invalid input")
			return nil, nil
		},
	})

	cases := []struct {
		name  string
		order model.Order
	}{
		{"missing user", model.Order{TotalAmount: 1, Address: "a"}},
		{"missing total", model.Order{UserID: "u1", Address: "a"}},
		{"negative total", model.Order{UserID: "u1", TotalAmount: -5, Address: "a"}},
		{"missing address", model.Order{UserID: "u1", TotalAmount: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := tc.order
			if _, err := uc.Create(context.Background(), &order); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestOrderUseCaseCancelActiveOrders(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusProcessing} {
		t.Run(string(status), func(t *testing.T) {
			repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "o-1", UserID: "u1", Status: status}}}
			uc := usecase.NewOrderUseCase(repo)

			order, err := uc.Cancel(context.Background(), "o-1", "u1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.Status != model.OrderStatusCancelled {
				t.Fatalf("expected cancelled, got %s", order.Status)
			}
			if repo.Orders[0].Status != model.OrderStatusCancelled {
				t.Fatalf("expected stored status cancelled, got %s", repo.Orders[0].Status)
			}
		})
	}
}

func TestOrderUseCaseCancelTerminalOrders(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "o-1", UserID: "u1", Status: status}}}
			uc := usecase.NewOrderUseCase(repo)

			if _, err := uc.Cancel(context.Background(), "o-1", "u1"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
				t.Fatalf("expected invalid transition, got %v", err)
			}
			if repo.Orders[0].Status != status {
				t.Fatalf("expected state unchanged, got %s", repo.Orders[0].Status)
			}
			if len(repo.UpdateCalls) != 0 {
				t.Fatal("expected no status write")
			}
		})
	}
}

func TestOrderUseCaseCancelIdempotentRejection(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "o-1", UserID: "u1", Status: model.OrderStatusPending}}}
	uc := usecase.NewOrderUseCase(repo)

	if _, err := uc.Cancel(context.Background(), "o-1", "u1"); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := uc.Cancel(context.Background(), "o-1", "u1"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
			t.Fatalf("repeat cancel %d: expected invalid transition, got %v", i, err)
		}
	}
	if repo.Orders[0].Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", repo.Orders[0].Status)
	}
}

func TestOrderUseCaseCancelOwnershipGuard(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "o-1", UserID: "u1", Status: model.OrderStatusPending}}}
	uc := usecase.NewOrderUseCase(repo)

	if _, err := uc.Cancel(context.Background(), "o-1", "someone-else"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if repo.Orders[0].Status != model.OrderStatusPending {
		t.Fatalf("expected state unchanged, got %s", repo.Orders[0].Status)
	}
}

func TestOrderUseCaseCancelMissingOrder(t *testing.T) {
	uc := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{})

	if _, err := uc.Cancel(context.Background(), "missing", "u1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.Cancel(context.Background(), "", "u1"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestOrderUseCaseSetStatus(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "o-1", UserID: "u1", Status: model.OrderStatusPending}}}
	uc := usecase.NewOrderUseCase(repo)

	order, err := uc.SetStatus(context.Background(), "o-1", "Processing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("expected processing, got %s", order.Status)
	}
	if repo.Orders[0].Status != model.OrderStatusProcessing {
		t.Fatalf("expected stored status processing, got %s", repo.Orders[0].Status)
	}
}

func TestOrderUseCaseSetStatusValidation(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "o-1", UserID: "u1", Status: model.OrderStatusPending}}}
	uc := usecase.NewOrderUseCase(repo)

	if _, err := uc.SetStatus(context.Background(), "", "Processing"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing id, got %v", err)
	}
	if _, err := uc.SetStatus(context.Background(), "o-1", ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing status, got %v", err)
	}
	if _, err := uc.SetStatus(context.Background(), "o-1", "Shipped"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if repo.Orders[0].Status != model.OrderStatusPending {
		t.Fatalf("expected state unchanged, got %s", repo.Orders[0].Status)
	}
}

func TestOrderUseCaseSetStatusMissingOrder(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	if _, err := uc.SetStatus(context.Background(), "missing", "Completed"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.UpdateCalls) != 0 {
		t.Fatal("expected no status write for missing order")
	}
}

// Admins may overwrite a terminal status; the terminal set only binds the
// customer cancel path.
func TestOrderUseCaseAdminOverridesTerminalState(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "o-1", UserID: "u1", Status: model.OrderStatusCancelled}}}
	uc := usecase.NewOrderUseCase(repo)

	order, err := uc.SetStatus(context.Background(), "o-1", "Completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", order.Status)
	}
}

func TestOrderUseCaseLifecycleScenario(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	order, err := uc.Create(context.Background(), &model.Order{UserID: "u1", TotalAmount: 42, Address: "1 Main St"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending after create, got %s", order.Status)
	}

	order, err = uc.SetStatus(context.Background(), order.ID, "Processing")
	if err != nil {
		t.Fatalf("set processing: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("expected processing, got %s", order.Status)
	}

	order, err = uc.Cancel(context.Background(), order.ID, "u1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}

	// Admin override of a terminal state is still permitted.
	order, err = uc.SetStatus(context.Background(), order.ID, "Completed")
	if err != nil {
		t.Fatalf("set completed after cancel: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", order.Status)
	}
}

func TestOrderUseCaseListByUser(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{
		{ID: "o-1", UserID: "u1"},
		{ID: "o-2", UserID: "u2"},
		{ID: "o-3", UserID: "u1"},
	}}
	uc := usecase.NewOrderUseCase(repo)

	orders, err := uc.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.UserID != "u1" {
			t.Fatalf("unexpected foreign order %s", o.ID)
		}
	}

	if _, err := uc.ListByUser(context.Background(), ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
