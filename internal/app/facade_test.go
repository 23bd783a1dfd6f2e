package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/domain/model"
	testhelpers "github.com/polkiloo/loyaltycart/internal/test"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

func newFacade() (*LoyaltyFacade, *testhelpers.CustomerRepositoryStub, *testhelpers.OperationRepositoryStub, *testhelpers.HealthFacadeStub) {
	customers := testhelpers.NewCustomerRepositoryStub(
		&model.Customer{ID: 1, Name: "Alice", TierID: 3, Bonus: 100},
	)
	products := &testhelpers.ProductRepositoryStub{Catalog: map[int64]model.Product{
		1: {ID: 1, Name: "A", Modifier: model.ModifierDiscount, Value: 5},
	}}
	tiers := &testhelpers.TierRepositoryStub{Tiers: map[int64]model.Tier{
		3: {ID: 3, Name: model.TierGold, Discount: 15, Cashback: 0},
	}}
	operations := testhelpers.NewOperationRepositoryStub(customers)
	health := &testhelpers.HealthFacadeStub{}

	checkoutUC := usecase.NewCheckoutUseCase(customers, products, tiers, operations)
	operationUC := usecase.NewOperationUseCase(customers, operations)

	facade := NewLoyaltyFacade(checkoutUC, operationUC, health)
	return facade, customers, operations, health
}

func ptr[T any](v T) *T { return &v }

func TestLoyaltyFacadeCheckoutAndConfirm(t *testing.T) {
	facade, customers, operations, _ := newFacade()

	result, err := facade.Calculate(context.Background(), 1, []usecase.LineItemInput{
		{ID: ptr(int64(1)), Price: ptr(100.0), Quantity: ptr(2)},
	})
	if err != nil {
		t.Fatalf("calculate returned error: %v", err)
	}
	if result.OperationID == 0 {
		t.Fatal("expected pending operation to be created")
	}
	if result.Cart.TotalDiscount != 40 {
		t.Fatalf("expected gold discount of 40, got %v", result.Cart.TotalDiscount)
	}

	stored, err := operations.GetByID(context.Background(), result.OperationID)
	if err != nil {
		t.Fatalf("operation not stored: %v", err)
	}
	if stored.Done {
		t.Fatal("expected operation to start pending")
	}

	receipt, err := facade.Confirm(context.Background(), usecase.CustomerClaim{ID: 1, Bonus: 100}, result.OperationID, 30)
	if err != nil {
		t.Fatalf("confirm returned error: %v", err)
	}
	if receipt.NewBalance != customers.Customers[1].Bonus {
		t.Fatalf("receipt balance %v diverges from stored %v", receipt.NewBalance, customers.Customers[1].Bonus)
	}

	history, err := facade.History(context.Background(), 1)
	if err != nil || len(history) != 1 {
		t.Fatalf("unexpected history result: %v err=%v", history, err)
	}
	if !history[0].Done {
		t.Fatal("expected confirmed operation in history")
	}
}

func TestLoyaltyFacadeCalculateUnknownCustomer(t *testing.T) {
	facade, _, _, _ := newFacade()
	_, err := facade.Calculate(context.Background(), 42, []usecase.LineItemInput{
		{ID: ptr(int64(1)), Price: ptr(10.0), Quantity: ptr(1)},
	})
	if !errors.Is(err, domainErrors.ErrCustomerNotFound) {
		t.Fatalf("expected customer not found, got %v", err)
	}
}

func TestLoyaltyFacadeHealthCheck(t *testing.T) {
	facade, _, _, health := newFacade()
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}

	health.Err = errors.New("db down")
	if err := facade.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health check error")
	}
}
