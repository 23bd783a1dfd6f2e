package handlers

import (
	"context"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

// CheckoutFacade describes cart pricing exposed via HTTP.
type CheckoutFacade interface {
	Calculate(ctx context.Context, customerID int64, items []usecase.LineItemInput) (*usecase.CheckoutResult, error)
}

// OperationFacade describes operation settlement and history.
type OperationFacade interface {
	Confirm(ctx context.Context, claim usecase.CustomerClaim, operationID int64, writeOff float64) (*model.ConfirmationReceipt, error)
	History(ctx context.Context, customerID int64) ([]model.Operation, error)
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// LoyaltyFacade aggregates the full set of operations used across handlers.
type LoyaltyFacade interface {
	CheckoutFacade
	OperationFacade
	HealthFacade
}
