package repository

import (
	"context"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
)

// OperationRepository describes persistence operations for checkout operations.
type OperationRepository interface {
	Create(ctx context.Context, op *model.Operation) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Operation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Operation, error)
	// ApplyConfirmation atomically deducts writeOff from the customer balance,
	// credits the operation's cashback, and marks the operation done. The
	// preconditions (pending operation, sufficient balance) are re-validated
	// under row locks, so concurrent confirmations of one operation resolve
	// to exactly one success.
	ApplyConfirmation(ctx context.Context, customerID, operationID int64, writeOff float64) (*model.ConfirmationReceipt, error)
}
