package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/domain/model"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	Customers map[int64]*model.Customer
	Err       error
}

// NewCustomerRepositoryStub constructs stub repository with initialized map.
func NewCustomerRepositoryStub(customers ...*model.Customer) *CustomerRepositoryStub {
	stub := &CustomerRepositoryStub{Customers: make(map[int64]*model.Customer)}
	for _, c := range customers {
		stub.Customers[c.ID] = c
	}
	return stub
}

// GetByID fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Customers[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domainErrors.ErrCustomerNotFound
}

// ProductRepositoryStub resolves products from a fixed catalog.
type ProductRepositoryStub struct {
	Catalog map[int64]model.Product
	Err     error
}

// GetBatch returns the subset of the catalog matching ids.
func (s *ProductRepositoryStub) GetBatch(ctx context.Context, ids []int64) (map[int64]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make(map[int64]model.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.Catalog[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

// TierRepositoryStub serves a fixed tier table.
type TierRepositoryStub struct {
	Tiers map[int64]model.Tier
	Err   error
}

// GetByID fetches tier by identifier or returns not found.
func (s *TierRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Tier, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if t, ok := s.Tiers[id]; ok {
		copied := t
		return &copied, nil
	}
	return nil, domainErrors.ErrTierNotFound
}

// List returns all configured tiers.
func (s *TierRepositoryStub) List(ctx context.Context) ([]model.Tier, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Tier, 0, len(s.Tiers))
	for _, t := range s.Tiers {
		result = append(result, t)
	}
	return result, nil
}

// OperationRepositoryStub keeps operations in-memory and mirrors the
// transactional confirm semantics of the real repository, including the
// exactly-one-success guarantee under concurrent confirmation.
type OperationRepositoryStub struct {
	mu         sync.Mutex
	Operations map[int64]*model.Operation
	Customers  *CustomerRepositoryStub
	Next       int64
	CreateErr  error
	ConfirmErr error
}

// NewOperationRepositoryStub constructs the stub over a customer stub used
// for balance mutation during confirmation.
func NewOperationRepositoryStub(customers *CustomerRepositoryStub) *OperationRepositoryStub {
	return &OperationRepositoryStub{
		Operations: make(map[int64]*model.Operation),
		Customers:  customers,
		Next:       1,
	}
}

// Create stores operation and assigns the next identifier.
func (s *OperationRepositoryStub) Create(ctx context.Context, op *model.Operation) (int64, error) {
	if s.CreateErr != nil {
		return 0, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *op
	stored.ID = s.Next
	s.Next++
	s.Operations[stored.ID] = &stored
	return stored.ID, nil
}

// GetByID fetches operation by identifier or returns not found.
func (s *OperationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if op, ok := s.Operations[id]; ok {
		copied := *op
		return &copied, nil
	}
	return nil, domainErrors.ErrOperationNotFound
}

// ListByCustomer returns the customer's operations in insertion order.
func (s *OperationRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Operation
	for id := int64(1); id < s.Next; id++ {
		if op, ok := s.Operations[id]; ok && op.CustomerID == customerID {
			result = append(result, *op)
		}
	}
	return result, nil
}

// ApplyConfirmation re-validates preconditions under the stub lock and
// applies both mutations together, like the transactional implementation.
func (s *OperationRepositoryStub) ApplyConfirmation(ctx context.Context, customerID, operationID int64, writeOff float64) (*model.ConfirmationReceipt, error) {
	if s.ConfirmErr != nil {
		return nil, s.ConfirmErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.Customers.Customers[customerID]
	if !ok {
		return nil, domainErrors.ErrCustomerNotFound
	}
	op, ok := s.Operations[operationID]
	if !ok || op.CustomerID != customerID {
		return nil, domainErrors.ErrOperationNotFound
	}
	if op.Done {
		return nil, domainErrors.ErrOperationConfirmed
	}
	if writeOff < 0 || writeOff > op.AllowedWriteOff {
		return nil, &domainErrors.WriteOffLimitError{Allowed: op.AllowedWriteOff, Attempted: writeOff}
	}
	if writeOff > customer.Bonus {
		return nil, &domainErrors.InsufficientBalanceError{Available: customer.Bonus, Attempted: writeOff}
	}

	customer.Bonus = customer.Bonus - writeOff + op.Cashback
	op.WriteOff = writeOff
	op.Done = true

	return &model.ConfirmationReceipt{
		OperationID:     operationID,
		CustomerID:      customerID,
		CheckSum:        op.CheckSum,
		Discount:        op.Discount,
		DiscountPercent: op.DiscountPercent,
		Cashback:        op.Cashback,
		CashbackPercent: op.CashbackPercent,
		WriteOff:        writeOff,
		NewBalance:      customer.Bonus,
	}, nil
}
