package test

import (
	"context"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

// CheckoutFacadeStub provides controllable behaviour for pricing endpoints.
type CheckoutFacadeStub struct {
	CalculateFn func(context.Context, int64, []usecase.LineItemInput) (*usecase.CheckoutResult, error)
}

// Calculate delegates to provided function or returns an empty result.
func (s CheckoutFacadeStub) Calculate(ctx context.Context, customerID int64, items []usecase.LineItemInput) (*usecase.CheckoutResult, error) {
	if s.CalculateFn != nil {
		return s.CalculateFn(ctx, customerID, items)
	}
	return &usecase.CheckoutResult{Customer: model.Customer{ID: customerID}}, nil
}

// OperationFacadeStub simulates settlement operations.
type OperationFacadeStub struct {
	ConfirmFn func(context.Context, usecase.CustomerClaim, int64, float64) (*model.ConfirmationReceipt, error)
	HistoryFn func(context.Context, int64) ([]model.Operation, error)
}

// Confirm executes configured confirmation handler.
func (s OperationFacadeStub) Confirm(ctx context.Context, claim usecase.CustomerClaim, operationID int64, writeOff float64) (*model.ConfirmationReceipt, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, claim, operationID, writeOff)
	}
	return &model.ConfirmationReceipt{OperationID: operationID, CustomerID: claim.ID, WriteOff: writeOff}, nil
}

// History returns preconfigured operations.
func (s OperationFacadeStub) History(ctx context.Context, customerID int64) ([]model.Operation, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, customerID)
	}
	return nil, nil
}

// HealthFacadeStub reports configured availability.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// LoyaltyFacadeStub aggregates the endpoint stubs into one facade.
type LoyaltyFacadeStub struct {
	CheckoutFacadeStub
	OperationFacadeStub
	HealthFacadeStub
}
