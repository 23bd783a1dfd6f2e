package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/domain/model"
	testhelpers "github.com/polkiloo/loyaltycart/internal/test"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

func ptrTo[T any](v T) *T { return &v }

func newCheckoutFixture() (*usecase.CheckoutUseCase, *testhelpers.CustomerRepositoryStub, *testhelpers.OperationRepositoryStub) {
	customers := testhelpers.NewCustomerRepositoryStub(
		&model.Customer{ID: 1, Name: "Alice", TierID: 2, Bonus: 100},
	)
	products := &testhelpers.ProductRepositoryStub{Catalog: map[int64]model.Product{
		10: {ID: 10, Name: "A", Modifier: model.ModifierDiscount, Value: 10},
		11: {ID: 11, Name: "B", Modifier: model.ModifierIncreasedCashback, Value: 7},
	}}
	tiers := &testhelpers.TierRepositoryStub{Tiers: map[int64]model.Tier{
		2: {ID: 2, Name: model.TierSilver, Discount: 10, Cashback: 5},
	}}
	operations := testhelpers.NewOperationRepositoryStub(customers)
	return usecase.NewCheckoutUseCase(customers, products, tiers, operations), customers, operations
}

func TestCheckoutCalculateCreatesPendingOperation(t *testing.T) {
	uc, _, operations := newCheckoutFixture()

	result, err := uc.Calculate(context.Background(), 1, []usecase.LineItemInput{
		{ID: ptrTo(int64(10)), Price: ptrTo(100.0), Quantity: ptrTo(2)},
		{ID: ptrTo(int64(11)), Price: ptrTo(50.0), Quantity: ptrTo(1)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OperationID == 0 {
		t.Fatal("expected operation id to be assigned")
	}
	if result.Customer.Name != "Alice" || result.Tier.Name != model.TierSilver {
		t.Fatalf("unexpected snapshot: %+v", result)
	}

	op, err := operations.GetByID(context.Background(), result.OperationID)
	if err != nil {
		t.Fatalf("operation not persisted: %v", err)
	}
	if op.Done || op.WriteOff != 0 {
		t.Fatalf("operation must start pending: %+v", op)
	}
	if op.CheckSum != result.Cart.TotalSum || op.AllowedWriteOff != result.Cart.AllowWriteOff {
		t.Fatalf("operation must mirror cart aggregates: %+v vs %+v", op, result.Cart)
	}
	if op.Cashback != 14 || op.Discount != 40 {
		t.Fatalf("unexpected aggregates: %+v", op)
	}
}

func TestCheckoutCalculateValidationShortCircuits(t *testing.T) {
	uc, _, operations := newCheckoutFixture()

	_, err := uc.Calculate(context.Background(), 1, []usecase.LineItemInput{{ID: ptrTo(int64(10))}})
	if !errors.Is(err, domainErrors.ErrInvalidLineItems) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var validation *usecase.ValidationError
	if !errors.As(err, &validation) || len(validation.Issues) == 0 {
		t.Fatalf("expected issue list, got %v", err)
	}
	if len(operations.Operations) != 0 {
		t.Fatal("no operation may be created on validation failure")
	}
}

func TestCheckoutCalculateCustomerNotFound(t *testing.T) {
	uc, _, _ := newCheckoutFixture()

	_, err := uc.Calculate(context.Background(), 404, []usecase.LineItemInput{
		{ID: ptrTo(int64(10)), Price: ptrTo(10.0), Quantity: ptrTo(1)},
	})
	if !errors.Is(err, domainErrors.ErrCustomerNotFound) {
		t.Fatalf("expected customer not found, got %v", err)
	}
}

func TestCheckoutCalculatePersistFailure(t *testing.T) {
	uc, _, operations := newCheckoutFixture()
	operations.CreateErr = errors.New("connection reset")

	_, err := uc.Calculate(context.Background(), 1, []usecase.LineItemInput{
		{ID: ptrTo(int64(10)), Price: ptrTo(10.0), Quantity: ptrTo(1)},
	})
	if !errors.Is(err, domainErrors.ErrPersistence) {
		t.Fatalf("expected persistence failure, got %v", err)
	}
}

func TestCheckoutCalculateUnknownProductStillSucceeds(t *testing.T) {
	uc, _, _ := newCheckoutFixture()

	result, err := uc.Calculate(context.Background(), 1, []usecase.LineItemInput{
		{ID: ptrTo(int64(10)), Price: ptrTo(100.0), Quantity: ptrTo(1)},
		{ID: ptrTo(int64(999)), Price: ptrTo(20.0), Quantity: ptrTo(1)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Cart.Items[1].Found {
		t.Fatal("expected second item to be annotated not found")
	}
}
