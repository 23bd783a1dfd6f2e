package errors

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrTierNotFound        = errors.New("tier not found")
	ErrOperationNotFound   = errors.New("operation not found")
	ErrOperationConfirmed  = errors.New("operation has already been confirmed")
	ErrBalanceMismatch     = errors.New("customer bonus in request does not match stored balance")
	ErrWriteOffLimit       = errors.New("write-off exceeds allowed limit")
	ErrInsufficientBalance = errors.New("insufficient bonus balance")
	ErrInvalidLineItems    = errors.New("invalid line items")
	ErrPersistence         = errors.New("persistence failure")
)

// WriteOffLimitError reports an attempted write-off above the operation limit.
type WriteOffLimitError struct {
	Allowed   float64
	Attempted float64
}

func (e *WriteOffLimitError) Error() string {
	return fmt.Sprintf("write-off exceeds allowed limit: allowed %.2f, attempted %.2f", e.Allowed, e.Attempted)
}

func (e *WriteOffLimitError) Is(target error) bool { return target == ErrWriteOffLimit }

// InsufficientBalanceError reports an attempted write-off above the customer balance.
type InsufficientBalanceError struct {
	Available float64
	Attempted float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient bonus balance: available %.2f, attempted %.2f", e.Available, e.Attempted)
}

func (e *InsufficientBalanceError) Is(target error) bool { return target == ErrInsufficientBalance }

// BalanceMismatchError reports a stale client view of the bonus balance.
type BalanceMismatchError struct {
	Claimed float64
	Stored  float64
}

func (e *BalanceMismatchError) Error() string {
	return fmt.Sprintf("bonus balance mismatch: claimed %.2f, stored %.2f", e.Claimed, e.Stored)
}

func (e *BalanceMismatchError) Is(target error) bool { return target == ErrBalanceMismatch }
