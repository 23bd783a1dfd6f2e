package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/domain/model"
	"github.com/polkiloo/loyaltycart/internal/domain/repository"
)

// balanceTolerance bounds the allowed drift between the balance a client
// claims to have seen and the stored one.
const balanceTolerance = 0.0001

// CustomerClaim is the client's view of a customer at confirmation time.
type CustomerClaim struct {
	ID    int64
	Bonus float64
}

// OperationUseCase manages the pending-to-confirmed operation lifecycle.
type OperationUseCase struct {
	customers  repository.CustomerRepository
	operations repository.OperationRepository
}

// NewOperationUseCase constructs OperationUseCase.
func NewOperationUseCase(customers repository.CustomerRepository, operations repository.OperationRepository) *OperationUseCase {
	return &OperationUseCase{customers: customers, operations: operations}
}

// Confirm settles a pending operation: it validates the claim against stored
// state, then atomically writes off the requested bonus amount and credits
// the operation's cashback. Every precondition is checked before the write;
// a failed confirmation leaves customer and operation untouched.
func (u *OperationUseCase) Confirm(ctx context.Context, claim CustomerClaim, operationID int64, writeOff float64) (*model.ConfirmationReceipt, error) {
	customer, err := u.customers.GetByID(ctx, claim.ID)
	if err != nil {
		return nil, err
	}

	if math.Abs(customer.Bonus-claim.Bonus) > balanceTolerance {
		return nil, &domainErrors.BalanceMismatchError{Claimed: claim.Bonus, Stored: customer.Bonus}
	}

	operation, err := u.operations.GetByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if operation.Done {
		return nil, domainErrors.ErrOperationConfirmed
	}

	if writeOff < 0 || writeOff > operation.AllowedWriteOff {
		return nil, &domainErrors.WriteOffLimitError{Allowed: operation.AllowedWriteOff, Attempted: writeOff}
	}
	if writeOff > customer.Bonus {
		return nil, &domainErrors.InsufficientBalanceError{Available: customer.Bonus, Attempted: writeOff}
	}

	receipt, err := u.operations.ApplyConfirmation(ctx, customer.ID, operationID, writeOff)
	if err != nil {
		// The repository re-validates under row locks; a concurrent confirm
		// loses with the same typed errors the precondition checks produce.
		if errors.Is(err, domainErrors.ErrOperationConfirmed) ||
			errors.Is(err, domainErrors.ErrInsufficientBalance) ||
			errors.Is(err, domainErrors.ErrOperationNotFound) ||
			errors.Is(err, domainErrors.ErrCustomerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: confirm operation: %w", domainErrors.ErrPersistence, err)
	}

	return receipt, nil
}

// History returns a customer's operations, newest first.
func (u *OperationUseCase) History(ctx context.Context, customerID int64) ([]model.Operation, error) {
	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return u.operations.ListByCustomer(ctx, customerID)
}
