package app

import (
	"context"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

// HealthChecker reports storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// LoyaltyFacade aggregates the application's use cases behind one surface
// consumed by the HTTP layer.
type LoyaltyFacade struct {
	checkout   *usecase.CheckoutUseCase
	operations *usecase.OperationUseCase
	health     HealthChecker
}

// NewLoyaltyFacade constructs LoyaltyFacade.
func NewLoyaltyFacade(checkout *usecase.CheckoutUseCase, operations *usecase.OperationUseCase, health HealthChecker) *LoyaltyFacade {
	return &LoyaltyFacade{checkout: checkout, operations: operations, health: health}
}

// Calculate prices a cart and opens a pending operation.
func (f *LoyaltyFacade) Calculate(ctx context.Context, customerID int64, items []usecase.LineItemInput) (*usecase.CheckoutResult, error) {
	return f.checkout.Calculate(ctx, customerID, items)
}

// Confirm settles a pending operation.
func (f *LoyaltyFacade) Confirm(ctx context.Context, claim usecase.CustomerClaim, operationID int64, writeOff float64) (*model.ConfirmationReceipt, error) {
	return f.operations.Confirm(ctx, claim, operationID, writeOff)
}

// History lists a customer's operations, newest first.
func (f *LoyaltyFacade) History(ctx context.Context, customerID int64) ([]model.Operation, error) {
	return f.operations.History(ctx, customerID)
}

// HealthCheck verifies storage connectivity.
func (f *LoyaltyFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
